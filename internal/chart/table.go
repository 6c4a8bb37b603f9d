package chart

import (
	"math"
	"sort"
	"strconv"

	"github.com/montanaflynn/stats"

	"github.com/KaramelBytes/surveyboard/internal/survey"
)

// Row is one line of the percentage table.
type Row struct {
	Option     string
	Count      int
	Percentage string
}

// PercentTable lists counts by descending count, ties in input order,
// with each share of the total rounded to one decimal, halves to even. Every share is "0%"
// when the total is zero.
func PercentTable(c *survey.OptionCounts) []Row {
	entries := c.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	total := c.Total()
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		label := e.Option
		if label == "" {
			label = "Unknown"
		}
		rows = append(rows, Row{Option: label, Count: e.Count, Percentage: percent(e.Count, total)})
	}
	return rows
}

func percent(n, total int) string {
	if total <= 0 {
		return "0%"
	}
	return strconv.FormatFloat(round1(float64(n)/float64(total)*100), 'f', 1, 64) + "%"
}

// round1 rounds to one decimal, taking exact halves to the even digit.
func round1(p float64) float64 {
	scaled := p * 10
	if _, frac := math.Modf(scaled); frac == 0.5 {
		return math.RoundToEven(scaled) / 10
	}
	r, err := stats.Round(p, 1)
	if err != nil {
		return 0
	}
	return r
}
