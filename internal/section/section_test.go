package section

import (
	"path/filepath"
	"testing"
)

func TestFromFilename(t *testing.T) {
	cases := []struct {
		in         string
		num, name string
	}{
		{"1.1.malaria_an_example.html", "1.1", "malaria_an_example"},
		{"2.3.html", "2.3", ""},
		{"intro.html", "", "intro"},
		{"1.2.part.two.html", "1.2", "part.two"},
		{"chapter1/short/4.5.cells.html", "4.5", "cells"},
		{"noext", "", "noext"},
	}
	for _, c := range cases {
		got := FromFilename(c.in)
		if got.Number != c.num || got.Name != c.name {
			t.Fatalf("FromFilename(%q) = %+v, want {%q %q}", c.in, got, c.num, c.name)
		}
	}
}

func TestFromFilename_Backslash(t *testing.T) {
	in := `chapter1\short\4.5.cells.html`
	want := Section{Number: "4.5", Name: "cells"}
	if filepath.Separator == '/' {
		// a backslash is an ordinary file name character here
		want = Section{Number: `chapter1\short\4.5`, Name: "cells"}
	}
	if got := FromFilename(in); got != want {
		t.Fatalf("FromFilename(%q) = %+v, want %+v", in, got, want)
	}
}

func TestChapterFromPath(t *testing.T) {
	cases := map[string]string{
		"9th_class/biology/chapter1/short":  "chapter1",
		"9th_class/biology/Chapter12/mcqs/": "Chapter12",
		`C:\books\CHAPTER3\long`:            "CHAPTER3",
		"9th_class/biology/ch1/short":       "",
		"chapter/short":                     "",
		"a/chapter7b/chapter8":              "chapter7",
	}
	for in, want := range cases {
		if got := ChapterFromPath(in); got != want {
			t.Fatalf("ChapterFromPath(%q) = %q, want %q", in, got, want)
		}
	}
}
