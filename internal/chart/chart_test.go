package chart_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/surveyboard/internal/chart"
	"github.com/KaramelBytes/surveyboard/internal/survey"
)

func counts(pairs ...any) *survey.OptionCounts {
	c := &survey.OptionCounts{}
	for i := 0; i+1 < len(pairs); i += 2 {
		c.Set(pairs[i].(string), pairs[i+1].(int))
	}
	return c
}

func numbered(n int, label string) *survey.OptionCounts {
	c := &survey.OptionCounts{}
	for i := 0; i < n; i++ {
		c.Set(label+strconv.Itoa(i), i+1)
	}
	return c
}

func TestGeneralRules(t *testing.T) {
	cases := []struct {
		name string
		in   *survey.OptionCounts
		want chart.Kind
	}{
		{"empty", counts(), chart.None},
		{"all zero", counts("a", 0, "b", 0), chart.None},
		{"five options", numbered(5, "opt"), chart.Pie},
		{"six short labels", numbered(6, "opt"), chart.Bar},
		{"long label", counts("a", 1, "b", 1, "c", 1, "d", 1, "e", 1, strings.Repeat("x", 21), 1), chart.HorizontalBar},
		{"eleven options", numbered(11, "o"), chart.HorizontalBar},
		{"ten options", numbered(10, "o"), chart.Bar},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, chart.GeneralRules.Select(tc.in))
			assert.Equal(t, tc.want, chart.GeneralRules.Select(tc.in), "selection is deterministic")
		})
	}
}

func TestGroupRules(t *testing.T) {
	assert.Equal(t, chart.Pie, chart.GroupRules.Select(numbered(4, "g")))
	assert.Equal(t, chart.Bar, chart.GroupRules.Select(numbered(5, "g")))
	assert.Equal(t, chart.None, chart.GroupRules.Select(counts()))
}

func TestChoose(t *testing.T) {
	c := counts("Yes", 3, "No", 1)
	assert.Equal(t, chart.Pie, chart.Choose(chart.GeneralRules, c, ""))
	assert.Equal(t, chart.HorizontalBar, chart.Choose(chart.GeneralRules, c, "Horizontal_Bar"))
	assert.Equal(t, chart.Pie, chart.Choose(chart.GeneralRules, c, "donut"))
	assert.Equal(t, chart.Bar, chart.Choose(chart.GeneralRules, counts(), ""))
}

func TestWrapTitle(t *testing.T) {
	short := "Q2: Are you aware of the call for action?"
	assert.Equal(t, short, chart.WrapTitle(short))

	long := "Q3: " + strings.Repeat("word ", 17) + "end"
	require.Greater(t, len(long), 80)
	got := chart.WrapTitle(long)
	lines := chart.TitleLines(got)
	require.Len(t, lines, 2)
	assert.Equal(t, "Q3: "+strings.TrimSpace(strings.Repeat("word ", 9)), lines[0])
	assert.Equal(t, strings.Repeat("word ", 8)+"end", lines[1])

	oneWord := "Q3:" + strings.Repeat("x", 85)
	assert.Equal(t, "Q3:<br>"+strings.Repeat("x", 85), chart.WrapTitle(oneWord))

	general := "Q1: How many youth employment outputs did your department deliver this year"
	for _, line := range chart.TitleLines(chart.WrapTitle(general)) {
		assert.LessOrEqual(t, len(line), 50)
	}
	assert.Equal(t, "Q1: How many youth employment outputs did your<br>department deliver this year", chart.WrapTitle(general))
	assert.Equal(t, "Q1: short", chart.WrapTitle("Q1: short"))
	assert.Equal(t, "", chart.WrapTitle(""))
}

func TestPercentTable(t *testing.T) {
	rows := chart.PercentTable(counts("No", 20, "Yes", 30))
	assert.Equal(t, []chart.Row{
		{Option: "Yes", Count: 30, Percentage: "60.0%"},
		{Option: "No", Count: 20, Percentage: "40.0%"},
	}, rows)

	ties := chart.PercentTable(counts("a", 1, "b", 1, "c", 1))
	assert.Equal(t, []string{"a", "b", "c"}, []string{ties[0].Option, ties[1].Option, ties[2].Option})

	sum := 0.0
	for _, r := range ties {
		assert.Equal(t, "33.3%", r.Percentage)
		v, err := strconv.ParseFloat(strings.TrimSuffix(r.Percentage, "%"), 64)
		require.NoError(t, err)
		sum += v
	}
	assert.InDelta(t, 100, sum, 0.15)

	halves := chart.PercentTable(counts("a", 1, "b", 15))
	assert.Equal(t, "93.8%", halves[0].Percentage)
	assert.Equal(t, "6.2%", halves[1].Percentage, "exact halves round to even")
	assert.Equal(t, "12.5%", chart.PercentTable(counts("a", 1, "b", 7))[1].Percentage)

	for _, r := range chart.PercentTable(counts("a", 0, "b", 0)) {
		assert.Equal(t, "0%", r.Percentage)
	}
}

func TestBuild_GeneralExample(t *testing.T) {
	c := counts("Yes", 30, "No", 20)
	kind := chart.GeneralRules.Select(c)
	require.Equal(t, chart.Pie, kind)

	f, err := chart.Build(kind, c, chart.WrapTitle("Q1: X"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Yes", "No"}, f.Labels)
	assert.Equal(t, []float64{30, 20}, f.Values)
	assert.Equal(t, chart.Palette[:2], f.Colors)
	assert.Equal(t, chart.DefaultHeight, f.Height)
	assert.True(t, strings.HasPrefix(f.ID, "chart-"))
}

func TestBuild_Orientation(t *testing.T) {
	c := counts("a", 1)
	h, err := chart.Build(chart.HorizontalBar, c, "t")
	require.NoError(t, err)
	assert.Equal(t, "Count", h.XAxisTitle)
	assert.Equal(t, "Category", h.YAxisTitle)

	payload := h.Plotly()
	trace := payload["data"].([]any)[0].(map[string]any)
	assert.Equal(t, "h", trace["orientation"])
	assert.Equal(t, []float64{1}, trace["x"])

	v, err := chart.Build(chart.Bar, c, "t")
	require.NoError(t, err)
	assert.Equal(t, "Category", v.XAxisTitle)
	assert.NotEqual(t, h.ID, v.ID)
}

func TestBuild_Errors(t *testing.T) {
	_, err := chart.Build(chart.Bar, counts(), "t")
	assert.True(t, errors.Is(err, chart.ErrNoData))

	_, err = chart.Build(chart.None, counts("a", 1), "t")
	assert.Error(t, err)

	f, err := chart.Compose(chart.Bar, counts(), "")
	require.Error(t, err)
	assert.Equal(t, "Chart Error", f.Title)
	assert.Equal(t, chart.ErrorHeight, f.Height)
	require.NotNil(t, f.Annotation)
	assert.Equal(t, "#e74c3c", f.Annotation.Color)
	assert.Contains(t, f.Annotation.Text, "Chart Error: no valid data points found<br>")
}

func TestPlotlyJSON(t *testing.T) {
	f := chart.NoData("No data available for Q3", "Q3 Response Distribution")
	var buf bytes.Buffer
	r := chart.PlotlyJSON{}
	require.NoError(t, r.Render(&buf, f))
	assert.Equal(t, "application/json", r.ContentType())

	var decoded struct {
		Data   []any `json:"data"`
		Layout struct {
			Height      int `json:"height"`
			Annotations []struct {
				Text string `json:"text"`
			} `json:"annotations"`
		} `json:"layout"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Empty(t, decoded.Data)
	assert.Equal(t, 500, decoded.Layout.Height)
	require.Len(t, decoded.Layout.Annotations, 1)
	assert.Equal(t, "No data available for Q3", decoded.Layout.Annotations[0].Text)
	assert.NotContains(t, buf.String(), `<`)
}

func TestSnapshot_WritesPNG(t *testing.T) {
	pngMagic := []byte("\x89PNG\r\n\x1a\n")
	figures := map[string]*chart.Figure{}
	for _, k := range chart.Kinds {
		f, err := chart.Build(k, counts("Yes", 30, "No", 20), chart.WrapTitle("Q1: X"))
		require.NoError(t, err)
		figures[string(k)] = f
	}
	figures["placeholder"] = chart.NoData("No data available for Q4", "Q4 Response Distribution")

	r := chart.Snapshot{Width: 640}
	assert.Equal(t, "image/png", r.ContentType())
	for name, f := range figures {
		var buf bytes.Buffer
		require.NoError(t, r.Render(&buf, f), name)
		assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic), "%s: not a PNG", name)
	}
}

func TestParseKind(t *testing.T) {
	k, ok := chart.ParseKind(" PIE ")
	assert.True(t, ok)
	assert.Equal(t, chart.Pie, k)
	_, ok = chart.ParseKind("table")
	assert.False(t, ok)
	assert.Equal(t, "Horizontal Bar", chart.HorizontalBar.Label())
}
