package survey_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/surveyboard/internal/loader"
	"github.com/KaramelBytes/surveyboard/internal/survey"
)

func general(rows ...[]string) *loader.Table {
	return loader.NewTable("part1.csv", []string{"question", "option", "count"}, rows)
}

func TestAggregate_AssignsCoercedCounts(t *testing.T) {
	tbl := general(
		[]string{" Q1: Consent ", "Yes", "30"},
		[]string{"Q1: Consent", " No", "20.9"},
		[]string{"Q1: Consent", "Maybe", "n/a"},
		[]string{"Q1: Consent", "Yes", "31"},
		[]string{"", "Ghost", "4"},
		[]string{"Q2: Aware", "", "4"},
		[]string{"Q2: Aware", "Yes", ""},
	)
	got, err := survey.Aggregate(tbl)
	require.NoError(t, err)
	assert.Equal(t, []string{"Q1: Consent", "Q2: Aware"}, got.Questions())

	q1, ok := got.Get("Q1: Consent")
	require.True(t, ok)
	assert.Equal(t, []survey.Entry{{"Yes", 31}, {"No", 20}, {"Maybe", 0}}, q1.Entries())

	q2, _ := got.Get("Q2: Aware")
	n, ok := q2.Get("Yes")
	assert.True(t, ok)
	assert.Equal(t, 0, n)
}

func TestAggregate_MissingColumns(t *testing.T) {
	tbl := loader.NewTable("bad.csv", []string{"question", "Option"}, [][]string{{"Q1", "a"}})
	got, err := survey.Aggregate(tbl)
	require.Error(t, err)
	var mc *survey.MissingColumnsError
	require.True(t, errors.As(err, &mc))
	assert.Equal(t, []string{"option", "count"}, mc.Missing)
	assert.Equal(t, 0, got.Len())
}

func TestAggregate_MergesOtherForQ4AndQ5(t *testing.T) {
	tbl := general(
		[]string{"Q4: Pillars", "Other", "3"},
		[]string{"Q4: Pillars", "Labour", "10"},
		[]string{"Q4: Pillars", "Other (elaborated answ)", "4"},
		[]string{"Q5: Groups", "Other (elaborated answ)", "2"},
		[]string{"Q5: Groups", "Women", "8"},
		[]string{"Q2: Aware", "Other", "1"},
		[]string{"Q2: Aware", "Other (elaborated answ)", "1"},
	)
	got, err := survey.Aggregate(tbl)
	require.NoError(t, err)

	q4, _ := got.Get("Q4: Pillars")
	assert.Equal(t, []survey.Entry{{"Labour", 10}, {"Other", 7}}, q4.Entries())

	q5, _ := got.Get("Q5: Groups")
	assert.Equal(t, []survey.Entry{{"Women", 8}, {"Other", 2}}, q5.Entries())

	q2, _ := got.Get("Q2: Aware")
	assert.Equal(t, 2, q2.Len(), "only Q4/Q5 questions merge")
}

func TestMergeOther_NoopWhenBothZero(t *testing.T) {
	c := survey.NewOptionCounts(
		survey.Entry{Option: "Other", Count: 0},
		survey.Entry{Option: "Yes", Count: 5},
	)
	survey.MergeOther(c)
	assert.Equal(t, []string{"Other", "Yes"}, c.Options())
}

func TestParseCount(t *testing.T) {
	cases := map[string]int{
		"": 0, " 7 ": 7, "3.99": 3, "-2.5": -2, "abc": 0, "NaN": 0, "1e2": 100,
		"1e30": math.MaxInt, "-1e30": math.MinInt, "99999999999999999999": math.MaxInt,
	}
	for in, want := range cases {
		assert.Equal(t, want, survey.ParseCount(in), "input %q", in)
	}
}

func TestOptionCounts_NegativeDropsAndKeepsOrder(t *testing.T) {
	c := &survey.OptionCounts{}
	c.Set("b", 1)
	c.Set("a", 2)
	c.Set("neg", -1)
	c.Set("b", 5)
	assert.Equal(t, []string{"b", "a"}, c.Options())
	assert.Equal(t, 7, c.Total())
	assert.False(t, c.Empty())

	c.Set("c", 4)
	c.Set("c", -4)
	_, ok := c.Get("c")
	assert.False(t, ok, "a later negative count removes the option")
	assert.Equal(t, []string{"b", "a"}, c.Options())

	c.Delete("b")
	c.Delete("missing")
	assert.Equal(t, []string{"a"}, c.Options())

	var zero survey.OptionCounts
	assert.True(t, zero.Empty())
	assert.True(t, survey.NewOptionCounts(survey.Entry{Option: "x"}).Empty())
}

func TestQuestionNumberOrdering(t *testing.T) {
	assert.Equal(t, 3, survey.QuestionNumber("Q3: Clusters"))
	assert.Equal(t, 12, survey.QuestionNumber("q12: lower"))
	assert.Equal(t, survey.NoNumber, survey.QuestionNumber("Intro"))
	assert.Equal(t, survey.NoNumber, survey.QuestionNumber(" Q1: leading space"))

	tbl := survey.NewTable()
	for _, q := range []string{"Q6: late", "Q3: c", "Intro", "Q2: b", "Q3: again"} {
		tbl.Options(q)
	}
	assert.Equal(t, []string{"Q2: b", "Q3: c", "Q3: again"}, tbl.Numbered(5))
	assert.Len(t, tbl.Numbered(survey.NoNumber), 5)
}

func TestCountFlags(t *testing.T) {
	rows := make([][]string, 0, 8)
	for i := 0; i < 6; i++ {
		rows = append(rows, []string{"YES", ""})
	}
	rows = append(rows, []string{"yes", "no"}, []string{"", " YES"})
	tbl := loader.NewTable("q.csv", []string{"A. ", "B. "}, rows)

	got := survey.CountFlags(tbl, []string{"A. ", "B. ", "C. "})
	assert.Equal(t, []survey.Entry{{"A", 6}}, got.Entries())
}

func TestCleanLabel(t *testing.T) {
	assert.Equal(t, "Advocacy and partnerships", survey.CleanLabel("Advocacy and partnerships. "))
	assert.Equal(t, "Young rural workers", survey.CleanLabel("Young rural workers  "))
	assert.Equal(t, "etc.", survey.CleanLabel("etc.."))
}

func TestFilters(t *testing.T) {
	tbl := loader.NewTable("q3.csv", []string{"YEAR", survey.ColRegion, "A"}, [][]string{
		{"2023", "Africa", "YES"},
		{" 2024", "Asia", "YES"},
		{"2024", "Africa", ""},
		{"2024", " ", "YES"},
	})

	assert.Equal(t, 4, survey.FilterYear(tbl, survey.All).Len())
	assert.Equal(t, 3, survey.FilterYear(tbl, "2024").Len())
	assert.Equal(t, 2, survey.FilterRegion(tbl, "Africa").Len())

	f := survey.Filter{Year: "2024", Region: "Africa"}
	assert.True(t, f.YearSelected())
	assert.Equal(t, 1, f.Apply(tbl).Len())

	noYear := loader.NewTable("x.csv", []string{"year2"}, [][]string{{"1"}})
	assert.Equal(t, 1, survey.FilterYear(noYear, "2024").Len())
	assert.Equal(t, 1, survey.FilterRegion(noYear, survey.All).Len())
	noRegion := survey.FilterRegion(noYear, "Africa")
	assert.Equal(t, 0, noRegion.Len(), "no region column means no row matches")
	assert.Equal(t, []string{"year2"}, noRegion.Header)

	lower := loader.NewTable("x.csv", []string{"year"}, [][]string{{"2023"}, {"2024"}})
	assert.Equal(t, 1, survey.FilterYear(lower, "2023").Len())

	assert.Equal(t, []string{"All", "Africa", "Asia"}, survey.Regions(tbl))
	assert.Nil(t, survey.Regions(noYear))
	assert.Equal(t, []string{"All", "2023", "2024"}, survey.Years(tbl))
	assert.Nil(t, survey.Years(noYear))
}

func TestGroupByID(t *testing.T) {
	g, ok := survey.GroupByID("q4")
	require.True(t, ok)
	assert.Len(t, g.Columns, 5)
	_, ok = survey.GroupByID("q9")
	assert.False(t, ok)
}

func TestHideOther(t *testing.T) {
	c := survey.NewOptionCounts(
		survey.Entry{Option: "Labour", Count: 4},
		survey.Entry{Option: "Mothers", Count: 2},
		survey.Entry{Option: "Other", Count: 3},
	)
	assert.Equal(t, []string{"Labour"}, survey.HideOther("Q4: Pillars", c).Options())
	assert.Equal(t, 3, survey.HideOther("Q2: Aware", c).Len())

	zero := survey.NewOptionCounts(survey.Entry{Option: "Other", Count: 0})
	assert.Equal(t, 1, survey.HideOther("Q5: Groups", zero).Len())
}
