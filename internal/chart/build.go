package chart

import (
	"errors"
	"fmt"

	"github.com/KaramelBytes/surveyboard/internal/survey"
)

// ErrNoData is returned when no data point survives cleaning.
var ErrNoData = errors.New("no valid data points found")

const (
	pieHover  = "<b>%{label}</b><br>Count: %{value}<br>Percentage: %{percent}<extra></extra>"
	hbarHover = "<b>%{y}</b><br>Count: %{x}<extra></extra>"
	barHover  = "<b>%{x}</b><br>Count: %{y}<extra></extra>"
)

// Build describes counts as a chart of the given kind. Empty labels become
// "Unknown" and negative counts are dropped. The title is used as given;
// callers wrap it first when needed.
func Build(kind Kind, c *survey.OptionCounts, title string) (*Figure, error) {
	var labels []string
	var values []float64
	for _, e := range c.Entries() {
		if e.Count < 0 {
			continue
		}
		label := e.Option
		if label == "" {
			label = "Unknown"
		}
		labels = append(labels, label)
		values = append(values, float64(e.Count))
	}
	if len(labels) == 0 {
		return nil, ErrNoData
	}

	f := newFigure(kind, title)
	f.Labels = labels
	f.Values = values
	switch kind {
	case Pie:
		n := min(len(labels), len(Palette))
		f.Colors = append([]string(nil), Palette[:n]...)
		f.HoverTemplate = pieHover
	case HorizontalBar:
		f.Colors = []string{Palette[0]}
		f.HoverTemplate = hbarHover
		f.XAxisTitle, f.YAxisTitle = "Count", "Category"
	case Bar:
		f.Colors = []string{Palette[0]}
		f.HoverTemplate = barHover
		f.XAxisTitle, f.YAxisTitle = "Category", "Count"
	default:
		return nil, fmt.Errorf("unsupported chart type %q", kind)
	}
	return f, nil
}

// NoData is the placeholder drawn for empty or all-zero counts.
func NoData(text, title string) *Figure {
	f := newFigure(None, title)
	f.Annotation = &Annotation{Text: text, Size: 16, Color: "#7f8c8d"}
	return f
}

// ErrorFigure is the placeholder drawn when a chart cannot be built.
func ErrorFigure(err error, title string) *Figure {
	if title == "" {
		title = "Chart Error"
	}
	f := newFigure(None, title)
	f.Height = ErrorHeight
	f.HideLegend = true
	f.Annotation = &Annotation{
		Text:  fmt.Sprintf("Chart Error: %v<br>Please try selecting a different question or chart type.", err),
		Size:  14,
		Color: "#e74c3c",
	}
	return f
}

// Compose builds a chart or, on failure, the error placeholder. The error
// is returned alongside so callers can surface it.
func Compose(kind Kind, c *survey.OptionCounts, title string) (*Figure, error) {
	f, err := Build(kind, c, title)
	if err != nil {
		return ErrorFigure(err, title), err
	}
	return f, nil
}
