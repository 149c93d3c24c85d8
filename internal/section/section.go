package section

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Section identifies one HTML file within a chapter folder, e.g.
// "1.1.malaria_an_example.html" -> {Number: "1.1", Name: "malaria_an_example"}.
type Section struct {
	Number string
	Name   string
}

var chapterRe = regexp.MustCompile(`(?i)chapter\d+`)

// FromFilename derives the section number and name from a file name. Only the
// final extension is removed. Names with fewer than two dot-separated parts
// have no number; the whole stem becomes the name.
func FromFilename(name string) Section {
	base := filepath.Base(name)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	parts := strings.SplitN(stem, ".", 3)
	if len(parts) < 2 {
		return Section{Name: stem}
	}
	s := Section{Number: parts[0] + "." + parts[1]}
	if len(parts) == 3 {
		s.Name = parts[2]
	}
	return s
}

// ChapterFromPath returns the first "chapter<digits>" segment found in path,
// matched case-insensitively with the original case preserved.
func ChapterFromPath(path string) string {
	return chapterRe.FindString(strings.ReplaceAll(path, `\`, "/"))
}
