package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema.
type FileConfig struct {
	Output struct {
		Root  string `yaml:"root" json:"root"`
		Class string `yaml:"class" json:"class"`
	} `yaml:"output" json:"output"`

	Input struct {
		Charset string `yaml:"charset" json:"charset"`
	} `yaml:"input" json:"input"`

	Database struct {
		URL string `yaml:"url" json:"url"`
	} `yaml:"database" json:"database"`

	Manifest string `yaml:"manifest" json:"manifest"`
	PDF      string `yaml:"pdf" json:"pdf"`
	Verbose  bool   `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// still unset after flags and env.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.OutputRoot == "" && fc.Output.Root != "" {
		cfg.OutputRoot = fc.Output.Root
	}
	if cfg.Class == "" && fc.Output.Class != "" {
		cfg.Class = fc.Output.Class
	}
	if cfg.Charset == "" && fc.Input.Charset != "" {
		cfg.Charset = fc.Input.Charset
	}
	if cfg.DatabaseURL == "" && fc.Database.URL != "" {
		cfg.DatabaseURL = fc.Database.URL
	}
	if cfg.ManifestPath == "" && fc.Manifest != "" {
		cfg.ManifestPath = fc.Manifest
	}
	if cfg.PDFPath == "" && fc.PDF != "" {
		cfg.PDFPath = fc.PDF
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig checks the invocation before any output is produced.
func ValidateConfig(cfg Config) error {
	if trim(cfg.InputDir) == "" {
		return fmt.Errorf("%w: input directory is required", ErrUsage)
	}
	if trim(cfg.Book) == "" {
		return fmt.Errorf("%w: book name is required", ErrUsage)
	}
	if cfg.Kind.Extractor == nil || cfg.Kind.Name == "" {
		return errors.New("config: question kind is not set")
	}
	st, err := os.Stat(cfg.InputDir)
	if err != nil || !st.IsDir() {
		return fmt.Errorf("%w: not a directory: %s", ErrUsage, cfg.InputDir)
	}
	return nil
}

func trim(s string) string {
	i := 0
	j := len(s)
	for i < j && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	for j > i && (s[j-1] == ' ' || s[j-1] == '\t' || s[j-1] == '\n' || s[j-1] == '\r') {
		j--
	}
	return s[i:j]
}
