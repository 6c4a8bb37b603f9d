package survey

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// NoNumber is the ordering key of questions without a "Qn:" prefix.
const NoNumber = 999

var questionNumberRe = regexp.MustCompile(`^[Qq](\d+):`)

// QuestionNumber extracts n from a leading "Qn:" prefix, or NoNumber.
func QuestionNumber(question string) int {
	m := questionNumberRe.FindStringSubmatch(question)
	if m == nil {
		return NoNumber
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return NoNumber
	}
	return n
}

// MergesOther reports whether a question carries the Q4/Q5 catch-all
// options that are folded into a single "Other".
func MergesOther(question string) bool {
	return strings.Contains(question, "Q4:") || strings.Contains(question, "Q5:")
}

// Table maps questions to their option counts, ordered by first appearance.
type Table struct {
	questions []string
	counts    map[string]*OptionCounts
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{counts: make(map[string]*OptionCounts)}
}

// Options returns the counts for question, creating them if needed.
func (t *Table) Options(question string) *OptionCounts {
	if c, ok := t.counts[question]; ok {
		return c
	}
	c := &OptionCounts{}
	t.counts[question] = c
	t.questions = append(t.questions, question)
	return c
}

// Get returns the counts for question if present.
func (t *Table) Get(question string) (*OptionCounts, bool) {
	if t == nil {
		return nil, false
	}
	c, ok := t.counts[question]
	return c, ok
}

// Len returns the number of questions.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.questions)
}

// Questions returns question labels in first-appearance order.
func (t *Table) Questions() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.questions...)
}

// Numbered returns questions sorted by question number, keeping only those
// numbered at most max. Ties keep first-appearance order.
func (t *Table) Numbered(max int) []string {
	qs := t.Questions()
	sort.SliceStable(qs, func(i, j int) bool {
		return QuestionNumber(qs[i]) < QuestionNumber(qs[j])
	})
	out := qs[:0]
	for _, q := range qs {
		if QuestionNumber(q) <= max {
			out = append(out, q)
		}
	}
	return out
}
