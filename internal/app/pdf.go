package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/hyperifyio/qextract/internal/extract"
)

// worksheetItem is one printable question.
type worksheetItem struct {
	Section string
	Text    string
	Options []string
	Answer  string
}

func worksheetItemFor(sectionNo string, rec extract.Record) (worksheetItem, bool) {
	switch v := rec.(type) {
	case extract.Question:
		return worksheetItem{Section: sectionNo, Text: v.English}, v.English != ""
	case extract.MCQ:
		it := worksheetItem{Section: sectionNo, Text: v.QuestionEn, Answer: v.Correct}
		for i, o := range v.Options {
			if o.En != "" {
				it.Options = append(it.Options, "("+extract.Letters[i]+") "+o.En)
			}
		}
		return it, v.QuestionEn != ""
	}
	return worksheetItem{}, false
}

// writeWorksheetPDF renders English question text as a numbered worksheet,
// grouped by section, followed by an answer key when answers are known.
// Core fonts only cover Latin text, so Urdu columns are not rendered.
func writeWorksheetPDF(title string, items []worksheetItem, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	section := ""
	var key []string
	for i, it := range items {
		if it.Section != section {
			section = it.Section
			pdf.Ln(3)
			pdf.SetFont("Helvetica", "B", 12)
			pdf.CellFormat(0, 7, tr("Section "+section), "", 1, "L", false, 0, "")
		}
		n := strconv.Itoa(i + 1)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 5, tr(n+". "+it.Text), "", "L", false)
		for _, o := range it.Options {
			pdf.SetX(pdf.GetX() + 6)
			pdf.MultiCell(0, 5, tr(o), "", "L", false)
		}
		pdf.Ln(2)
		if it.Answer != "" {
			key = append(key, n+". "+it.Answer)
		}
	}

	if len(key) > 0 {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 7, "Answer key", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, k := range key {
			pdf.CellFormat(0, 5, k, "", 1, "L", false, 0, "")
		}
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	return pdf.OutputFileAndClose(outPath)
}
