package survey

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/KaramelBytes/surveyboard/internal/loader"
)

// Column names of the general tabulation.
const (
	ColQuestion = "question"
	ColOption   = "option"
	ColCount    = "count"
)

// Options folded together for Q4/Q5 questions.
const (
	OptionOther           = "Other"
	OptionOtherElaborated = "Other (elaborated answ)"
)

// MissingColumnsError reports required columns absent from a table.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// ParseCount coerces a cell to a count. Blank and non-numeric values are
// zero; decimals are truncated toward zero and clamped to the int range.
func ParseCount(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	switch {
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}

// Aggregate groups (question, option, count) rows into a Table. Later rows
// overwrite earlier ones for the same pair. Q4/Q5 questions get their
// catch-all options merged, see MergeOther.
func Aggregate(t *loader.Table) (*Table, error) {
	var missing []string
	for _, col := range []string{ColQuestion, ColOption, ColCount} {
		if !t.Has(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return NewTable(), &MissingColumnsError{Missing: missing}
	}

	out := NewTable()
	for i := 0; i < t.Len(); i++ {
		q, _ := t.Cell(i, ColQuestion)
		o, _ := t.Cell(i, ColOption)
		c, _ := t.Cell(i, ColCount)
		q, o = strings.TrimSpace(q), strings.TrimSpace(o)
		if q == "" || o == "" {
			continue
		}
		out.Options(q).Set(o, ParseCount(c))
	}
	for _, q := range out.Questions() {
		if MergesOther(q) {
			c, _ := out.Get(q)
			MergeOther(c)
		}
	}
	return out, nil
}

// MergeOther replaces "Other" and "Other (elaborated answ)" with a single
// "Other" holding their sum, placed last. Nothing changes when both are
// absent or zero.
func MergeOther(c *OptionCounts) {
	other, _ := c.Get(OptionOther)
	elab, _ := c.Get(OptionOtherElaborated)
	if other == 0 && elab == 0 {
		return
	}
	c.Delete(OptionOther)
	c.Delete(OptionOtherElaborated)
	c.Set(OptionOther, other+elab)
}

// HideOther drops options mentioning "other" from Q4/Q5 questions for
// display. Questions with no responses are returned unchanged.
func HideOther(question string, c *OptionCounts) *OptionCounts {
	if !MergesOther(question) || c.Total() == 0 {
		return c
	}
	return c.Without(func(option string) bool {
		return strings.Contains(strings.ToLower(option), "other")
	})
}
