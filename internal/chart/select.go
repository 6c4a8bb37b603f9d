package chart

import (
	"log/slog"

	"github.com/KaramelBytes/surveyboard/internal/survey"
)

// Rule maps counts matching When to a chart kind.
type Rule struct {
	Name string
	When func(c *survey.OptionCounts) bool
	Kind Kind
}

// Selector is an ordered decision table; the first matching rule wins.
// Empty or all-zero counts always select None.
type Selector []Rule

// Select returns the chart kind for c.
func (s Selector) Select(c *survey.OptionCounts) Kind {
	if c.Empty() {
		return None
	}
	for _, r := range s {
		if r.When(c) {
			slog.Debug("chart rule matched", "rule", r.Name, "kind", string(r.Kind), "options", c.Len())
			return r.Kind
		}
	}
	return Bar
}

func always(*survey.OptionCounts) bool { return true }

// GeneralRules picks a chart for the question-by-question page.
var GeneralRules = Selector{
	{Name: "few options", Kind: Pie, When: func(c *survey.OptionCounts) bool {
		return c.Len() <= 5
	}},
	{Name: "long labels or many options", Kind: HorizontalBar, When: func(c *survey.OptionCounts) bool {
		return c.MaxLabelLen() > 20 || c.Len() > 10
	}},
	{Name: "default", Kind: Bar, When: always},
}

// GroupRules picks a chart for each flag group on the specialized page.
var GroupRules = Selector{
	{Name: "five or more options", Kind: Bar, When: func(c *survey.OptionCounts) bool {
		return c.Len() >= 5
	}},
	{Name: "default", Kind: Pie, When: always},
}

// Choose returns the override when it names a chart type, otherwise the
// selector's choice. A None choice falls back to Bar.
func Choose(s Selector, c *survey.OptionCounts, override string) Kind {
	if k, ok := ParseKind(override); ok {
		return k
	}
	if k := s.Select(c); k != None {
		return k
	}
	return Bar
}
