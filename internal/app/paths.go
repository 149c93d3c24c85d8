package app

import (
	"strings"

	"github.com/hyperifyio/qextract/internal/table"
)

// OutputPath returns the CSV a run appends to:
// <root>/<class>/<kind>/<book>.csv.
func OutputPath(cfg Config) string {
	return table.Path(cfg.OutputRoot, cfg.Class, cfg.Kind.Name, strings.TrimSpace(cfg.Book))
}

// inputDir strips trailing separators so "chapter1/short/" and
// "chapter1/short" resolve the same way.
func inputDir(p string) string {
	if s := strings.TrimRight(p, `\/`); s != "" {
		return s
	}
	return p
}
