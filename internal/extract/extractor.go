package extract

// Record is one extracted row. Values are the record's output columns that
// follow the chapter/section metadata.
type Record interface {
	Values() []string
}

// Extractor turns one section page into records. Implementations must be
// deterministic and free of side effects.
type Extractor interface {
	Extract(input []byte) []Record
}

// QuestionExtractor extracts long/short answer questions.
type QuestionExtractor struct{}

// Extract returns the plain questions in input as records.
func (QuestionExtractor) Extract(input []byte) []Record {
	qs := Questions(input)
	out := make([]Record, 0, len(qs))
	for _, q := range qs {
		out = append(out, q)
	}
	return out
}

// MCQExtractor extracts multiple-choice questions.
type MCQExtractor struct{}

// Extract returns the multiple-choice questions in input as records.
func (MCQExtractor) Extract(input []byte) []Record {
	ms := MCQs(input)
	out := make([]Record, 0, len(ms))
	for _, m := range ms {
		out = append(out, m)
	}
	return out
}
