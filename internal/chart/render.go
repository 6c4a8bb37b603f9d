package chart

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Renderer writes a figure in one output format.
type Renderer interface {
	ContentType() string
	Render(w io.Writer, f *Figure) error
}

// PlotlyJSON writes the Plotly {data, layout} object.
type PlotlyJSON struct{}

func (PlotlyJSON) ContentType() string { return "application/json" }

func (PlotlyJSON) Render(w io.Writer, f *Figure) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(f.Plotly())
}

// Snapshot draws a static PNG: pies through go-chart, bars and
// placeholders through gonum/plot. Height comes from the figure.
type Snapshot struct {
	Width int
}

const snapshotDPI = 96

func (Snapshot) ContentType() string { return "image/png" }

func (s Snapshot) Render(w io.Writer, f *Figure) error {
	width := s.Width
	if width <= 0 {
		width = 900
	}
	height := f.Height
	if height <= 0 {
		height = DefaultHeight
	}
	if f.Kind == Pie && f.HasData() {
		return renderPie(w, f, width, height)
	}
	return renderPlot(w, f, width, height)
}

func renderPie(w io.Writer, f *Figure, width, height int) error {
	values := make([]gochart.Value, len(f.Labels))
	for i, label := range f.Labels {
		v := gochart.Value{Label: label, Value: f.Values[i]}
		if i < len(f.Colors) {
			v.Style = gochart.Style{FillColor: hexColor(f.Colors[i]), StrokeColor: drawing.ColorWhite}
		}
		values[i] = v
	}
	pie := gochart.PieChart{
		Title:  strings.Join(TitleLines(f.Title), " "),
		Width:  width,
		Height: height,
		Values: values,
	}
	if err := pie.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("render pie: %w", err)
	}
	return nil
}

func renderPlot(w io.Writer, f *Figure, width, height int) error {
	p := plot.New()
	p.Title.Text = strings.Join(TitleLines(f.Title), "\n")
	p.BackgroundColor = color.White

	switch {
	case f.Annotation != nil || !f.HasData():
		p.HideAxes()
		if f.Annotation != nil {
			p.Title.Text += "\n\n" + strings.ReplaceAll(f.Annotation.Text, LineBreak, "\n")
		}
	default:
		bars, err := plotter.NewBarChart(plotter.Values(f.Values), vg.Points(20))
		if err != nil {
			return fmt.Errorf("bar chart: %w", err)
		}
		bars.Color = hexColor(f.firstColor())
		bars.LineStyle.Width = 0
		p.Add(bars)
		p.X.Label.Text = f.XAxisTitle
		p.Y.Label.Text = f.YAxisTitle
		if f.Kind == HorizontalBar {
			bars.Horizontal = true
			p.NominalY(f.Labels...)
		} else {
			p.NominalX(f.Labels...)
		}
	}

	wt, err := p.WriterTo(pixels(width), pixels(height), "png")
	if err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

func pixels(n int) vg.Length {
	return vg.Length(n) * vg.Inch / snapshotDPI
}

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
