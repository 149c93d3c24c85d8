package pgsink

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TableName maps a question kind (short, long, mcqs) to its table.
func TableName(kind string) string {
	switch kind {
	case "mcqs":
		return "mcqs"
	default:
		return kind + "_questions"
	}
}

// CreateTableSQL returns the DDL for a kind's table: run_id and book followed
// by one text column per CSV column.
func CreateTableSQL(table string, columns []string) string {
	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS ")
	b.WriteString(pgx.Identifier{table}.Sanitize())
	b.WriteString(" (\n\trun_id text NOT NULL,\n\tbook text NOT NULL")
	for _, c := range columns {
		b.WriteString(",\n\t")
		b.WriteString(pgx.Identifier{c}.Sanitize())
		b.WriteString(" text NOT NULL DEFAULT ''")
	}
	b.WriteString(",\n\tinserted_at timestamptz NOT NULL DEFAULT now()\n)")
	return b.String()
}

// Sink mirrors appended rows into PostgreSQL. Rows are buffered and copied
// in one batch on Close; it never updates existing rows.
type Sink struct {
	pool    *pgxpool.Pool
	table   string
	columns []string
	book    string
	runID   string
	rows    [][]any
}

// Open connects to the database and makes sure the table exists.
func Open(ctx context.Context, url, table string, columns []string, book, runID string) (*Sink, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if _, err := pool.Exec(ctx, CreateTableSQL(table, columns)); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create table %s: %w", table, err)
	}
	return &Sink{pool: pool, table: table, columns: columns, book: book, runID: runID}, nil
}

// Write buffers one row.
func (s *Sink) Write(row []string) error {
	if len(row) != len(s.columns) {
		return fmt.Errorf("row has %d fields, table has %d", len(row), len(s.columns))
	}
	s.rows = append(s.rows, copyRow(s.runID, s.book, row))
	return nil
}

// Close copies buffered rows and releases the pool.
func (s *Sink) Close(ctx context.Context) error {
	if s.pool == nil {
		return errors.New("pgsink: not connected")
	}
	defer s.pool.Close()
	if len(s.rows) == 0 {
		return nil
	}
	cols := append([]string{"run_id", "book"}, s.columns...)
	n, err := s.pool.CopyFrom(ctx, pgx.Identifier{s.table}, cols, pgx.CopyFromRows(s.rows))
	if err != nil {
		return fmt.Errorf("copy into %s: %w", s.table, err)
	}
	if int(n) != len(s.rows) {
		return fmt.Errorf("copy into %s: wrote %d of %d rows", s.table, n, len(s.rows))
	}
	s.rows = nil
	return nil
}

func copyRow(runID, book string, row []string) []any {
	out := make([]any, 0, len(row)+2)
	out = append(out, runID, book)
	for _, v := range row {
		out = append(out, v)
	}
	return out
}
