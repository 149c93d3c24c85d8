package app

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileResult records what happened to one input page.
type FileResult struct {
	Name        string `json:"name"`
	SectionNo   string `json:"section_no"`
	SectionName string `json:"section_name"`
	SHA256      string `json:"sha256,omitempty"`
	Bytes       int    `json:"bytes"`
	Rows        int    `json:"rows"`
	Skipped     string `json:"skipped,omitempty"`
}

// Result summarizes a run. It is also the JSON manifest layout.
type Result struct {
	RunID       string         `json:"run_id"`
	Version     string         `json:"version"`
	Kind        string         `json:"kind"`
	Book        string         `json:"book"`
	Chapter     string         `json:"chapter_no"`
	InputDir    string         `json:"input_dir"`
	CSVPath     string         `json:"csv"`
	Rows        int            `json:"rows"`
	Skipped     int            `json:"skipped"`
	Issues      map[string]int `json:"issues,omitempty"`
	Files       []FileResult   `json:"files"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// computeSHA256Hex returns a lowercase hex-encoded SHA-256 of b.
func computeSHA256Hex(b []byte) string {
	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:])
}

// writeManifest encodes a machine-readable record of the run.
func writeManifest(path string, res Result) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
