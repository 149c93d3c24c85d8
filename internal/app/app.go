package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/qextract/internal/extract"
	"github.com/hyperifyio/qextract/internal/pgsink"
	"github.com/hyperifyio/qextract/internal/section"
	"github.com/hyperifyio/qextract/internal/table"
	"github.com/hyperifyio/qextract/internal/validate"
)

// ErrUsage marks invocation problems: missing arguments or an input path
// that is not a directory. Nothing has been written when it is returned.
var ErrUsage = errors.New("usage")

// rowSink receives complete output rows (metadata + record values).
type rowSink interface {
	Write(row []string) error
	Close(ctx context.Context) error
}

type csvSink struct{ *table.Writer }

func (s csvSink) Close(context.Context) error { return s.Writer.Close() }

// App runs one extraction of an input folder into the configured sinks.
type App struct {
	cfg   Config
	runID string
}

// New validates cfg and prepares a run.
func New(cfg Config) (*App, error) {
	ApplyDefaults(&cfg)
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return &App{cfg: cfg, runID: uuid.NewString()}, nil
}

// Run walks the input folder in lexical order and appends every extracted
// record to the output table. Unreadable pages are logged and skipped.
func (a *App) Run(ctx context.Context) (Result, error) {
	dir := inputDir(a.cfg.InputDir)
	res := Result{
		RunID:    a.runID,
		Version:  BuildVersion,
		Kind:     a.cfg.Kind.Name,
		Book:     a.cfg.Book,
		Chapter:  section.ChapterFromPath(dir),
		InputDir: dir,
		CSVPath:  OutputPath(a.cfg),
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return res, fmt.Errorf("read input dir: %w", err)
	}

	out, sinks, err := a.openSinks(ctx, res.CSVPath)
	if err != nil {
		return res, err
	}
	items, runErr := a.appendAll(dir, entries, sinks, &res)
	closeErr := closeSinks(ctx, sinks)
	res.GeneratedAt = time.Now().UTC()
	if runErr != nil {
		return res, runErr
	}
	if closeErr != nil {
		return res, closeErr
	}

	log.Info().
		Int("rows", out.Rows()).
		Int("skipped", res.Skipped).
		Str("chapter", res.Chapter).
		Str("csv", out.Path()).
		Msgf("appended %d %s questions", res.Rows, res.Kind)
	if n := validate.Summary(res.Issues).Total(); n > 0 {
		log.Warn().Int("issues", n).Interface("by_problem", res.Issues).Msg("records with missing fields")
	}

	// Manifest and PDF failures are warnings only.
	if p := strings.TrimSpace(a.cfg.ManifestPath); p != "" {
		if err := writeManifest(p, res); err != nil {
			log.Warn().Err(err).Str("path", p).Msg("write manifest failed")
		}
	}
	if p := strings.TrimSpace(a.cfg.PDFPath); p != "" {
		title := fmt.Sprintf("%s / %s / %s", a.cfg.Book, res.Chapter, res.Kind)
		if err := writeWorksheetPDF(title, items, p); err != nil {
			log.Warn().Err(err).Str("path", p).Msg("write worksheet pdf failed")
		} else {
			log.Info().Str("pdf", p).Int("questions", len(items)).Msg("wrote worksheet")
		}
	}
	return res, nil
}

// openSinks opens the database sink before the CSV so a failed connection
// leaves no new CSV file behind.
func (a *App) openSinks(ctx context.Context, csvPath string) (*table.Writer, []rowSink, error) {
	var extra []rowSink
	if url := strings.TrimSpace(a.cfg.DatabaseURL); url != "" {
		pg, err := pgsink.Open(ctx, url, pgsink.TableName(a.cfg.Kind.Name), a.cfg.Kind.Columns, a.cfg.Book, a.runID)
		if err != nil {
			return nil, nil, err
		}
		extra = append(extra, pg)
	}
	w, err := table.OpenAppend(csvPath, a.cfg.Kind.Columns)
	if err != nil {
		_ = closeSinks(ctx, extra)
		return nil, nil, err
	}
	return w, append([]rowSink{csvSink{w}}, extra...), nil
}

func closeSinks(ctx context.Context, sinks []rowSink) error {
	var errs []error
	for _, s := range sinks {
		if err := s.Close(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (a *App) appendAll(dir string, entries []os.DirEntry, sinks []rowSink, res *Result) ([]worksheetItem, error) {
	issues := validate.Summary{}
	var items []worksheetItem
	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(strings.ToLower(name), ".html") {
			continue
		}
		path := filepath.Join(dir, name)
		sec := section.FromFilename(name)
		fr := FileResult{Name: name, SectionNo: sec.Number, SectionName: sec.Name}

		page, raw, err := readPage(path, a.cfg.Charset)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("skipping file")
			fr.Skipped = err.Error()
			res.Skipped++
			res.Files = append(res.Files, fr)
			continue
		}
		fr.SHA256 = computeSHA256Hex(raw)
		fr.Bytes = len(raw)

		for _, rec := range a.cfg.Kind.Extractor.Extract(page) {
			found := validate.Record(rec)
			for _, is := range found {
				log.Debug().Str("file", name).Str("id", is.ID).Msg(is.Problem)
			}
			issues.Add(found)

			row := make([]string, 0, len(a.cfg.Kind.Columns))
			row = append(row, res.Chapter, sec.Number, sec.Name)
			row = append(row, rec.Values()...)
			for _, s := range sinks {
				if err := s.Write(row); err != nil {
					return items, fmt.Errorf("append rows from %s: %w", name, err)
				}
			}
			fr.Rows++
			res.Rows++
			if a.cfg.PDFPath != "" {
				if it, ok := worksheetItemFor(sec.Number, rec); ok {
					items = append(items, it)
				}
			}
		}
		log.Debug().Str("file", name).Int("rows", fr.Rows).Msg("extracted")
		res.Files = append(res.Files, fr)
	}
	if len(issues) > 0 {
		res.Issues = issues
	}
	return items, nil
}

// readPage returns the decoded markup along with the raw bytes read.
func readPage(path, charset string) ([]byte, []byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	page, err := extract.Decode(raw, charset)
	if err != nil {
		return nil, raw, err
	}
	return page, raw, nil
}
