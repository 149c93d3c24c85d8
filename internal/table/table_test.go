package table

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readAll(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	recs, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	return recs
}

func TestOpenAppend_HeaderOnceAcrossRuns(t *testing.T) {
	path := Path(t.TempDir(), "9th_class", "short", "biology")
	row := []string{"chapter1", "1.1", "intro", "Q1", "What?", "کیا؟"}
	for i := 0; i < 2; i++ {
		w, err := OpenAppend(path, QuestionColumns)
		if err != nil {
			t.Fatalf("open %d: %v", i, err)
		}
		if err := w.Write(row); err != nil {
			t.Fatalf("write: %v", err)
		}
		if w.Rows() != 1 {
			t.Fatalf("rows = %d", w.Rows())
		}
		if w.Path() != path {
			t.Fatalf("path = %q, want %q", w.Path(), path)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	}
	recs := readAll(t, path)
	if len(recs) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(recs))
	}
	if strings.Join(recs[0], ",") != "chapter_no,section_no,section_name,id,english,urdu" {
		t.Fatalf("unexpected header %q", recs[0])
	}
	if recs[1][5] != "کیا؟" || strings.Join(recs[1], "|") != strings.Join(recs[2], "|") {
		t.Fatalf("rows differ: %q vs %q", recs[1], recs[2])
	}
}

func TestOpenAppend_EmptyExistingFileGetsHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mcqs.csv")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	w, err := OpenAppend(path, MCQColumns)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	recs := readAll(t, path)
	if len(recs) != 1 || len(recs[0]) != 15 || recs[0][14] != "correct_option" {
		t.Fatalf("unexpected content %q", recs)
	}
}

func TestWrite_CRLFAndQuoting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	w, err := OpenAppend(path, QuestionColumns)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := w.Write([]string{"c", "1.1", "n", "id", `say "hi", twice`, ""}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	b, _ := os.ReadFile(path)
	s := string(b)
	if !strings.HasSuffix(s, "\r\n") {
		t.Fatalf("expected CRLF line endings: %q", s)
	}
	if !strings.Contains(s, `"say ""hi"", twice"`) {
		t.Fatalf("expected quoted field: %q", s)
	}
}

func TestWrite_RejectsWrongWidth(t *testing.T) {
	w, err := OpenAppend(filepath.Join(t.TempDir(), "x.csv"), QuestionColumns)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer w.Close()
	if err := w.Write([]string{"only", "three", "fields"}); err == nil {
		t.Fatalf("expected width error")
	}
}

func TestPath(t *testing.T) {
	got := Path("csv", "9th_class", "short", "biology")
	if got != filepath.Join("csv", "9th_class", "short", "biology.csv") {
		t.Fatalf("Path = %q", got)
	}
}
