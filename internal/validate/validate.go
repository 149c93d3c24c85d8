package validate

import (
	"github.com/hyperifyio/qextract/internal/extract"
)

// Issue describes a quality problem in one extracted record. Issues are
// reported, never used to drop rows.
type Issue struct {
	ID      string
	Problem string
}

// Record checks one extracted record.
func Record(r extract.Record) []Issue {
	switch v := r.(type) {
	case extract.Question:
		return question(v)
	case extract.MCQ:
		return mcq(v)
	}
	return nil
}

func question(q extract.Question) []Issue {
	var out []Issue
	if q.ID == "" {
		out = append(out, Issue{Problem: "row has no id"})
	}
	if q.English == "" && q.Urdu == "" {
		out = append(out, Issue{ID: q.ID, Problem: "question text is empty"})
	} else if q.English == "" {
		out = append(out, Issue{ID: q.ID, Problem: "english text is empty"})
	}
	return out
}

func mcq(m extract.MCQ) []Issue {
	out := question(extract.Question{ID: m.ID, English: m.QuestionEn, Urdu: m.QuestionUr})
	for i, o := range m.Options {
		if o.En == "" && o.Ur == "" {
			out = append(out, Issue{ID: m.ID, Problem: "option " + extract.Letters[i] + " is empty"})
		}
	}
	switch m.Correct {
	case "":
		out = append(out, Issue{ID: m.ID, Problem: "no correct option marked"})
	case "A", "B", "C", "D":
	default:
		out = append(out, Issue{ID: m.ID, Problem: "correct option " + m.Correct + " is not A-D"})
	}
	return out
}

// Summary counts issues by problem across a run.
type Summary map[string]int

// Add records issues into the summary.
func (s Summary) Add(issues []Issue) {
	for _, is := range issues {
		s[is.Problem]++
	}
}

// Total returns the number of issues recorded.
func (s Summary) Total() int {
	n := 0
	for _, c := range s {
		n += c
	}
	return n
}
