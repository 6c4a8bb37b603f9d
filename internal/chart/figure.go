package chart

import "github.com/google/uuid"

// Layout shared by every figure.
const (
	DefaultHeight = 500
	ErrorHeight   = 400
	TitleFontSize = 20
	FontFamily    = "Arial"
	Background    = "white"
)

// Palette is the fixed series colour order.
var Palette = []string{
	"#3498db", "#e74c3c", "#2ecc71", "#f39c12", "#9b59b6",
	"#1abc9c", "#34495e", "#e67e22", "#95a5a6", "#f1c40f",
	"#8e44ad", "#16a085", "#2c3e50", "#d35400", "#7f8c8d",
}

// Annotation is centred text drawn in place of data.
type Annotation struct {
	Text  string
	Size  int
	Color string
}

// Figure describes one chart independently of how it is drawn.
type Figure struct {
	ID            string
	Kind          Kind
	Title         string
	Labels        []string
	Values        []float64
	Colors        []string
	HoverTemplate string
	XAxisTitle    string
	YAxisTitle    string
	Height        int
	HideLegend    bool
	Annotation    *Annotation
}

func newFigure(kind Kind, title string) *Figure {
	return &Figure{
		ID:     "chart-" + uuid.NewString(),
		Kind:   kind,
		Title:  title,
		Height: DefaultHeight,
	}
}

// HasData reports whether the figure carries a data series.
func (f *Figure) HasData() bool {
	return f.Kind != None && len(f.Labels) > 0
}

// Plotly returns the figure as a Plotly {data, layout} object.
func (f *Figure) Plotly() map[string]any {
	layout := map[string]any{
		"title": map[string]any{
			"text":    f.Title,
			"x":       0.5,
			"xanchor": "center",
			"font":    map[string]any{"size": TitleFontSize},
		},
		"height":        f.Height,
		"paper_bgcolor": Background,
		"plot_bgcolor":  Background,
		"font":          map[string]any{"family": FontFamily},
	}
	if f.XAxisTitle != "" {
		layout["xaxis"] = map[string]any{"title": map[string]any{"text": f.XAxisTitle}}
	}
	if f.YAxisTitle != "" {
		layout["yaxis"] = map[string]any{"title": map[string]any{"text": f.YAxisTitle}}
	}
	if f.HideLegend {
		layout["showlegend"] = false
	}

	data := []any{}
	if f.HasData() {
		data = append(data, f.trace())
	}
	if a := f.Annotation; a != nil {
		layout["annotations"] = []any{map[string]any{
			"text":      a.Text,
			"xref":      "paper",
			"yref":      "paper",
			"x":         0.5,
			"y":         0.5,
			"showarrow": false,
			"align":     "center",
			"font":      map[string]any{"size": a.Size, "color": a.Color},
		}}
		layout["xaxis"] = map[string]any{"visible": false}
		layout["yaxis"] = map[string]any{"visible": false}
	}
	return map[string]any{"data": data, "layout": layout}
}

func (f *Figure) trace() map[string]any {
	t := map[string]any{"hovertemplate": f.HoverTemplate}
	switch f.Kind {
	case Pie:
		t["type"] = "pie"
		t["labels"] = f.Labels
		t["values"] = f.Values
		t["marker"] = map[string]any{"colors": f.Colors}
	case HorizontalBar:
		t["type"] = "bar"
		t["orientation"] = "h"
		t["x"] = f.Values
		t["y"] = f.Labels
		t["marker"] = map[string]any{"color": f.firstColor()}
	default:
		t["type"] = "bar"
		t["x"] = f.Labels
		t["y"] = f.Values
		t["marker"] = map[string]any{"color": f.firstColor()}
	}
	return t
}

func (f *Figure) firstColor() string {
	if len(f.Colors) == 0 {
		return Palette[0]
	}
	return f.Colors[0]
}
