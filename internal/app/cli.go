package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func usageText(kind Kind) string {
	return fmt.Sprintf("Usage: %[1]s [flags] <path_up_to_%[1]s_folder> <book_name>\nExample: %[1]s 9th_class/biology/chapter1/%[1]s biology\n", kind.Name)
}

// ParseArgs builds a Config from command-line arguments. Precedence is
// flags, then environment (after loading dotenv files), then the optional
// config file, then defaults.
func ParseArgs(kind Kind, args []string, stderr io.Writer) (Config, error) {
	cfg := Config{Kind: kind}
	var (
		configPath  string
		envFile     string
		showVersion bool
	)
	fs := flag.NewFlagSet(kind.Name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.OutputRoot, "out", "", "Root directory for CSV tables (default \"csv\")")
	fs.StringVar(&cfg.Class, "class", "", "Class folder under the output root (default \"9th_class\")")
	fs.StringVar(&cfg.Charset, "charset", "", "Charset for pages that are not UTF-8 and declare none, e.g. windows-1256")
	fs.StringVar(&cfg.DatabaseURL, "db.url", "", "PostgreSQL URL; when set rows are also copied into the database")
	fs.StringVar(&cfg.ManifestPath, "manifest", "", "Path to write a JSON manifest of the run")
	fs.StringVar(&cfg.PDFPath, "pdf", "", "Path to write a printable worksheet PDF of the extracted questions")
	fs.StringVar(&configPath, "config", "", "Path to a YAML or JSON config file")
	fs.StringVar(&envFile, "env", ".env", "Dotenv file to load before reading the environment")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose logging")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageText(kind))
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if showVersion {
		fmt.Fprintln(fs.Output(), versionString(kind))
		return cfg, flag.ErrHelp
	}
	if fs.NArg() < 2 {
		return cfg, fmt.Errorf("%w: expected <input_dir> <book_name>", ErrUsage)
	}
	cfg.InputDir = fs.Arg(0)
	cfg.Book = fs.Arg(1)

	if err := LoadEnvFiles(envFile); err != nil {
		return cfg, fmt.Errorf("load env file: %w", err)
	}
	ApplyEnvToConfig(&cfg)
	if configPath != "" {
		fc, err := LoadConfigFile(configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		ApplyFileConfig(&cfg, fc)
	}
	ApplyDefaults(&cfg)
	return cfg, nil
}

// Main runs one program invocation and returns the process exit status:
// 0 on success, -h or -version, 1 on usage or run errors.
func Main(ctx context.Context, kind Kind, args []string, stderr io.Writer) int {
	cfg, err := ParseArgs(kind, args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err == nil {
		if cfg.Verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
		err = run(ctx, cfg)
	}
	if err != nil {
		if errors.Is(err, ErrUsage) {
			fmt.Fprint(stderr, usageText(kind))
		}
		log.Error().Err(err).Msg("run failed")
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg Config) error {
	a, err := New(cfg)
	if err != nil {
		return err
	}
	_, err = a.Run(ctx)
	return err
}
