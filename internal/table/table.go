package table

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// MetaColumns lead every output row.
var MetaColumns = []string{"chapter_no", "section_no", "section_name"}

// QuestionColumns is the header of long/short question tables.
var QuestionColumns = withMeta("id", "english", "urdu")

// MCQColumns is the header of multiple-choice tables.
var MCQColumns = withMeta(
	"id", "question_en", "question_ur",
	"option_a_en", "option_a_ur",
	"option_b_en", "option_b_ur",
	"option_c_en", "option_c_ur",
	"option_d_en", "option_d_ur",
	"correct_option",
)

func withMeta(cols ...string) []string {
	out := make([]string, 0, len(MetaColumns)+len(cols))
	out = append(out, MetaColumns...)
	return append(out, cols...)
}

// Path returns <root>/<class>/<kind>/<book>.csv.
func Path(root, class, kind, book string) string {
	return filepath.Join(root, class, kind, book+".csv")
}

// Writer appends rows to a CSV file. The header is written only when the file
// was new or empty at open time.
type Writer struct {
	path    string
	f       *os.File
	w       *csv.Writer
	columns []string
	rows    int
}

// OpenAppend opens path for appending, creating parent directories as needed.
func OpenAppend(path string, columns []string) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	// existing tables were written with CRLF line endings
	w.UseCRLF = true
	tw := &Writer{path: path, f: f, w: w, columns: columns}
	if st.Size() == 0 {
		if err := w.Write(columns); err != nil {
			f.Close()
			return nil, fmt.Errorf("write header: %w", err)
		}
	}
	return tw, nil
}

// Write appends one row. Its length must match the header.
func (t *Writer) Write(row []string) error {
	if len(row) != len(t.columns) {
		return fmt.Errorf("row has %d fields, header has %d", len(row), len(t.columns))
	}
	if err := t.w.Write(row); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	t.rows++
	return nil
}

// Rows returns the number of rows written since open.
func (t *Writer) Rows() int { return t.rows }

// Path returns the file being written.
func (t *Writer) Path() string { return t.path }

// Close flushes buffered rows and closes the file. The file is closed even
// when the flush fails.
func (t *Writer) Close() error {
	t.w.Flush()
	ferr := t.w.Error()
	cerr := t.f.Close()
	if ferr != nil {
		return fmt.Errorf("flush %s: %w", t.path, ferr)
	}
	return cerr
}
