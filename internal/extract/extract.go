package extract

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	rowSelector      = "#chooseQuestionsByChapterIDs .TableHover"
	englishSelector  = ".EnglishDiv p"
	urduSelector     = ".UrduDiv p"
	optionSelector   = "ul > li"
	optionEnSelector = ".En p"
	optionUrSelector = ".Ur p"
	correctClass     = "correctAnswer"
	correctAttr      = "thiscorrect"
)

// Letters are the option slots of a multiple-choice question, in column order.
var Letters = [4]string{"A", "B", "C", "D"}

var correctAttrRe = regexp.MustCompile(`(?i)-\(([A-D])\)`)

// Question is one long- or short-answer row.
type Question struct {
	ID      string
	English string
	Urdu    string
}

// Values returns id, english, urdu.
func (q Question) Values() []string {
	return []string{q.ID, q.English, q.Urdu}
}

// Option holds both language variants of a multiple-choice option.
type Option struct {
	En string
	Ur string
}

// MCQ is one multiple-choice row. Options are indexed A..D; Correct is one of
// the letters or empty when the markup did not mark an answer.
type MCQ struct {
	ID         string
	QuestionEn string
	QuestionUr string
	Options    [4]Option
	Correct    string
}

// Values returns id, question_en, question_ur, the eight option columns and
// correct_option.
func (m MCQ) Values() []string {
	out := make([]string, 0, 12)
	out = append(out, m.ID, m.QuestionEn, m.QuestionUr)
	for _, o := range m.Options {
		out = append(out, o.En, o.Ur)
	}
	return append(out, m.Correct)
}

// Questions extracts the long/short question rows of a section page in
// document order. Missing elements yield empty fields; markup that cannot be
// parsed yields no rows.
func Questions(input []byte) []Question {
	doc := parse(input)
	if doc == nil {
		return nil
	}
	var out []Question
	doc.Find(rowSelector).Each(func(_ int, row *goquery.Selection) {
		id, _ := row.Attr("id")
		out = append(out, Question{
			ID:      id,
			English: Text(row.Find(englishSelector).First()),
			Urdu:    Text(row.Find(urduSelector).First()),
		})
	})
	return out
}

// MCQs extracts multiple-choice rows in document order.
func MCQs(input []byte) []MCQ {
	doc := parse(input)
	if doc == nil {
		return nil
	}
	var out []MCQ
	doc.Find(rowSelector).Each(func(_ int, row *goquery.Selection) {
		id, _ := row.Attr("id")
		m := MCQ{
			ID:         id,
			QuestionEn: Text(row.Find(englishSelector).First()),
			QuestionUr: Text(row.Find(urduSelector).First()),
		}
		row.Find(optionSelector).Each(func(_ int, li *goquery.Selection) {
			letter := optionLabel(li)
			if i := slot(letter); i >= 0 {
				m.Options[i] = Option{
					En: Text(li.Find(optionEnSelector).First()),
					Ur: Text(li.Find(optionUrSelector).First()),
				}
			}
			if !li.HasClass(correctClass) {
				return
			}
			// the last marked item wins
			if letter != "" {
				m.Correct = letter
				return
			}
			if sub := correctAttrRe.FindStringSubmatch(li.AttrOr(correctAttr, "")); sub != nil {
				m.Correct = strings.ToUpper(sub[1])
			}
		})
		out = append(out, m)
	})
	return out
}

func parse(input []byte) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(input))
	if err != nil {
		return nil
	}
	return doc
}

// optionLabel reads "(A)"-style labels from the first span of an option item.
func optionLabel(li *goquery.Selection) string {
	raw := li.Find("span").First().Text()
	label := strings.TrimFunc(raw, func(r rune) bool {
		return unicode.IsSpace(r) || r == '(' || r == ')'
	})
	return strings.ToUpper(label)
}

func slot(letter string) int {
	for i, l := range Letters {
		if l == letter {
			return i
		}
	}
	return -1
}

// Text returns the normalized text of the first node in sel: text nodes are
// trimmed and joined with single spaces, non-breaking spaces become plain
// spaces and whitespace runs collapse. Empty selections yield "".
func Text(sel *goquery.Selection) string {
	if sel == nil || sel.Length() == 0 {
		return ""
	}
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
			return
		case html.CommentNode:
			return
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(sel.Get(0))
	return Normalize(strings.Join(parts, " "))
}

// Normalize rewrites non-breaking spaces as plain spaces, collapses
// whitespace runs and trims. Other characters are left untouched.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}
