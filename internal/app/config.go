package app

import (
	"github.com/hyperifyio/qextract/internal/extract"
	"github.com/hyperifyio/qextract/internal/table"
)

const (
	defaultOutputRoot = "csv"
	defaultClass      = "9th_class"
)

// Kind selects the question type a program extracts. Its Name doubles as the
// output subdirectory.
type Kind struct {
	Name      string
	Columns   []string
	Extractor extract.Extractor
}

var (
	KindShort = Kind{Name: "short", Columns: table.QuestionColumns, Extractor: extract.QuestionExtractor{}}
	KindLong  = Kind{Name: "long", Columns: table.QuestionColumns, Extractor: extract.QuestionExtractor{}}
	KindMCQs  = Kind{Name: "mcqs", Columns: table.MCQColumns, Extractor: extract.MCQExtractor{}}
)

// Config holds runtime configuration for one extraction run.
type Config struct {
	InputDir string
	Book     string
	Kind     Kind

	// Output
	OutputRoot string
	Class      string

	// Input decoding; empty means UTF-8 or the page's declared charset
	Charset string

	// Optional sinks and artifacts
	DatabaseURL  string
	ManifestPath string
	PDFPath      string

	Verbose bool
}

// ApplyDefaults fills output settings left unset by flags, env and file.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if trim(cfg.OutputRoot) == "" {
		cfg.OutputRoot = defaultOutputRoot
	}
	if trim(cfg.Class) == "" {
		cfg.Class = defaultClass
	}
}
