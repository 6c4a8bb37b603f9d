package survey

import (
	"sort"
	"strings"

	"github.com/KaramelBytes/surveyboard/internal/loader"
)

// All is the "no filter" sentinel for years and regions.
const All = "All"

// ColRegion holds the respondent's organizational region in flag tables.
const ColRegion = "Department/Region"

var yearColumns = []string{"YEAR", "year"}

// Filter is the read-only selection applied to every page pipeline.
type Filter struct {
	Year   string
	Region string
}

// YearSelected reports whether a concrete year is chosen.
func (f Filter) YearSelected() bool {
	return isSelected(f.Year)
}

// RegionSelected reports whether a concrete region is chosen.
func (f Filter) RegionSelected() bool {
	return isSelected(f.Region)
}

func isSelected(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, All)
}

func yearColumn(t *loader.Table) (string, bool) {
	for _, col := range yearColumns {
		if t.Has(col) {
			return col, true
		}
	}
	return "", false
}

// FilterYear keeps rows whose YEAR (or year) column matches the selected
// year after trimming. Tables without a year column are returned as is.
func FilterYear(t *loader.Table, year string) *loader.Table {
	if !isSelected(year) {
		return t
	}
	col, ok := yearColumn(t)
	if !ok {
		return t
	}
	want := strings.TrimSpace(year)
	return t.Where(col, func(v string) bool { return strings.TrimSpace(v) == want })
}

// FilterRegion keeps rows whose Department/Region equals region. A table
// without the column has no matching rows.
func FilterRegion(t *loader.Table, region string) *loader.Table {
	if !isSelected(region) {
		return t
	}
	if !t.Has(ColRegion) {
		return loader.NewTable(t.Name, t.Header, nil)
	}
	return t.Where(ColRegion, func(v string) bool { return v == region })
}

// Apply runs both filters.
func (f Filter) Apply(t *loader.Table) *loader.Table {
	return FilterRegion(FilterYear(t, f.Year), f.Region)
}

// Regions returns All followed by the sorted distinct non-empty regions in
// t, or nil when the table has no region data.
func Regions(t *loader.Table) []string {
	return withAll(t.Column(ColRegion), func(v string) string { return v })
}

func withAll(values []string, norm func(string) string) []string {
	seen := map[string]bool{}
	var out []string
	for _, v := range values {
		v = norm(v)
		if strings.TrimSpace(v) == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	sort.Strings(out)
	return append([]string{All}, out...)
}

// Years returns All followed by the sorted distinct trimmed years in t, or
// nil when the table has no year column.
func Years(t *loader.Table) []string {
	col, ok := yearColumn(t)
	if !ok {
		return nil
	}
	return withAll(t.Column(col), strings.TrimSpace)
}
