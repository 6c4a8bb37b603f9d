package survey

import (
	"strings"

	"github.com/KaramelBytes/surveyboard/internal/loader"
)

// Flag is the cell value that counts a respondent towards a column.
const Flag = "YES"

// Group is one column-flag question: a file with one row per respondent
// and a YES/blank column per option. Column names are matched verbatim,
// trailing whitespace included.
type Group struct {
	ID      string
	Title   string
	Columns []string
}

// Groups lists the specialized-page questions in display order.
var Groups = []Group{
	{
		ID:    "Q3",
		Title: "Distribution Of Outputs Across The Clusters Of The Implementation Framework",
		Columns: []string{
			"Knowledge development and dissemination. ",
			"Technical assistance and capacity-building of constituents. ",
			"Advocacy and partnerships. ",
		},
	},
	{
		ID:    "Q4",
		Title: "Distribution Of Outputs Across The Pillars Of The Call For Action On Youth Employment",
		Columns: []string{
			"Employment and economic policies for youth employment. ",
			"Employability – Education, training and skills, and the school-to-work transition. ",
			"Labour market policies. ",
			"Youth entrepreneurship and self-employment. ",
			"Rights for young people. ",
		},
	},
	{
		ID:    "Q5",
		Title: "Distribution Of Outputs Across Target Youth Groups, When Applicable",
		Columns: []string{
			"Young women",
			"Young people not in employment, education or training (NEET) ",
			"Young migrant workers ",
			"Young refugees ",
			"Young people - sexual orientation and gender identity ",
			"Young people with disabilities ",
			"Young rural workers  ",
			"Young indigenous people ",
		},
	},
}

// GroupByID finds a group case-insensitively.
func GroupByID(id string) (Group, bool) {
	for _, g := range Groups {
		if strings.EqualFold(g.ID, id) {
			return g, true
		}
	}
	return Group{}, false
}

// CleanLabel trims whitespace and then a single trailing period.
func CleanLabel(col string) string {
	return strings.TrimSuffix(strings.TrimSpace(col), ".")
}

// CountFlags counts rows equal to Flag for each of columns present in t.
// Options keep the order of columns; zero counts are omitted.
func CountFlags(t *loader.Table, columns []string) *OptionCounts {
	out := &OptionCounts{}
	for _, col := range columns {
		n := 0
		for _, v := range t.Column(col) {
			if v == Flag {
				n++
			}
		}
		if n > 0 {
			out.Set(CleanLabel(col), n)
		}
	}
	return out
}
