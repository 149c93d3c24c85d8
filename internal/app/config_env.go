package app

import (
	"os"
	"strings"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	setString := func(dst *string, envKey string) {
		if *dst != "" {
			return
		}
		*dst = strings.TrimSpace(os.Getenv(envKey))
	}
	setString(&cfg.OutputRoot, "QEXTRACT_OUTPUT_ROOT")
	setString(&cfg.Class, "QEXTRACT_CLASS")
	setString(&cfg.Charset, "QEXTRACT_CHARSET")
	setString(&cfg.ManifestPath, "QEXTRACT_MANIFEST")
	setString(&cfg.PDFPath, "QEXTRACT_PDF")
	setString(&cfg.DatabaseURL, "DATABASE_URL")

	if !cfg.Verbose {
		switch strings.ToLower(strings.TrimSpace(os.Getenv("VERBOSE"))) {
		case "1", "true", "yes", "on":
			cfg.Verbose = true
		}
	}
}
