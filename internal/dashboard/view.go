// Package dashboard serves the survey report pages over HTTP.
package dashboard

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/KaramelBytes/surveyboard/internal/chart"
	"github.com/KaramelBytes/surveyboard/internal/loader"
	"github.com/KaramelBytes/surveyboard/internal/notice"
	"github.com/KaramelBytes/surveyboard/internal/survey"
)

// Options locates the input files and carries the shared filter state.
type Options struct {
	GeneralPath string
	GroupPaths  map[string]string // keyed by group ID
	Regions     []string
	MaxQuestion int
	Defaults    survey.Filter

	// SnapshotWidth is the PNG width in pixels.
	SnapshotWidth int
}

// HeaderTitle is the banner text for a filter.
func HeaderTitle(f survey.Filter) string {
	if f.YearSelected() {
		return f.Year + " YEAP Survey Analysis"
	}
	return "YEAP Survey Analysis"
}

// Page holds what every report page shows above its charts.
type Page struct {
	Title   string
	Filter  survey.Filter
	Years   []string
	Notices []notice.Notice
}

// GeneralQuery is the user's selection on the general page.
type GeneralQuery struct {
	Filter   survey.Filter
	Question string
	Chart    string
}

// GeneralView is the rendered state of the general page.
type GeneralView struct {
	Page
	Questions []string
	Selected  string
	Kinds     []chart.Kind
	Auto      chart.Kind
	Kind      chart.Kind
	Options   int
	Figure    *chart.Figure
	Rows      []chart.Row
}

// BuildGeneral runs the question-by-question pipeline against freshly read
// data. It never fails; problems surface as notices.
func BuildGeneral(opts Options, q GeneralQuery) *GeneralView {
	notes := &notice.List{}
	v := &GeneralView{Kinds: chart.Kinds}
	v.Filter = q.Filter
	v.Title = HeaderTitle(q.Filter)
	defer func() { v.Notices = notes.Items() }()

	raw := loader.LoadOrEmpty(opts.GeneralPath, notes)
	v.Years = survey.Years(raw)
	table, err := survey.Aggregate(survey.FilterYear(raw, q.Filter.Year))
	var missing *survey.MissingColumnsError
	switch {
	case errors.As(err, &missing):
		slog.Warn("general table rejected", "path", opts.GeneralPath, "err", err)
		if !raw.IsEmpty() {
			notes.Errorf("CSV file must contain 'question', 'option', and 'count' columns")
		}
	case table.Len() > 0:
		notes.Successf("Successfully loaded %d questions", table.Len())
	default:
		notes.Errorf("No valid data found in the file")
	}
	if table.Len() == 0 {
		notes.Errorf("No data available. Please check the data files.")
		return v
	}

	limit := opts.MaxQuestion
	if limit <= 0 {
		limit = 5
	}
	v.Questions = table.Numbered(limit)
	if len(v.Questions) == 0 {
		notes.Warnf("No questions available for analysis.")
		return v
	}
	v.Selected = v.Questions[0]
	if slices.Contains(v.Questions, q.Question) {
		v.Selected = q.Question
	}

	counts, _ := table.Get(v.Selected)
	v.Options = counts.Len()
	v.Auto = chart.GeneralRules.Select(counts)
	v.Kind = chart.Choose(chart.GeneralRules, counts, q.Chart)

	shown := survey.HideOther(v.Selected, counts)
	title := chart.WrapTitle(v.Selected)
	if shown.Empty() {
		v.Figure = chart.NoData("No response data available for this question.", title)
		notes.Infof("No response data available for this question.")
		return v
	}
	fig, err := chart.Compose(v.Kind, shown, title)
	if err != nil {
		slog.Warn("build chart failed", "question", v.Selected, "kind", v.Kind, "err", err)
		notes.Errorf("Error creating chart: %v", err)
	}
	v.Figure = fig
	v.Rows = chart.PercentTable(shown)
	return v
}

// GroupView is one flag group's chart.
type GroupView struct {
	Group  survey.Group
	Kind   chart.Kind
	Counts *survey.OptionCounts
	Figure *chart.Figure
}

// SpecializedView is the rendered state of the specialized page.
type SpecializedView struct {
	Page
	Regions []string
	Region  string
	Groups  []GroupView
}

// Group returns the view for a group ID.
func (v *SpecializedView) Group(id string) (GroupView, bool) {
	for _, g := range v.Groups {
		if g.Group.ID == id {
			return g, true
		}
	}
	return GroupView{}, false
}

// BuildSpecialized runs the flag-group pipeline for Q3, Q4 and Q5.
func BuildSpecialized(opts Options, f survey.Filter) *SpecializedView {
	notes := &notice.List{}
	v := &SpecializedView{Region: survey.All}
	v.Filter = f
	v.Title = HeaderTitle(f)
	defer func() { v.Notices = notes.Items() }()

	tables := make(map[string]*loader.Table, len(survey.Groups))
	for _, g := range survey.Groups {
		raw := loader.LoadOrEmpty(opts.GroupPaths[g.ID], notes)
		if v.Years == nil {
			v.Years = survey.Years(raw)
		}
		tables[g.ID] = raw
	}

	switch {
	case len(opts.Regions) > 0:
		v.Regions = opts.Regions
	default:
		v.Regions = survey.Regions(survey.FilterYear(tables["Q3"], f.Year))
	}
	if v.Regions == nil {
		notes.Infof("Regional filtering not available - no region data found.")
	} else if f.RegionSelected() && slices.Contains(v.Regions, f.Region) {
		v.Region = f.Region
		notes.Infof("Showing data for: %s", v.Region)
	}
	v.Filter.Region = v.Region

	for _, g := range survey.Groups {
		t := tables[g.ID]
		if v.Filter.RegionSelected() && !t.IsEmpty() && !t.Has(survey.ColRegion) {
			notes.Warnf("No %s column in %s data; no responses match %s.", survey.ColRegion, g.ID, v.Region)
		}
		counts := survey.CountFlags(v.Filter.Apply(t), g.Columns)
		gv := GroupView{Group: g, Counts: counts, Kind: chart.GroupRules.Select(counts)}
		if gv.Kind == chart.None {
			gv.Figure = chart.NoData(
				fmt.Sprintf("No data available for %s", g.ID),
				fmt.Sprintf("%s Response Distribution", g.ID),
			)
		} else {
			fig, err := chart.Compose(gv.Kind, counts, g.Title)
			if err != nil {
				slog.Warn("build group chart failed", "group", g.ID, "err", err)
				notes.Errorf("Error creating chart: %v", err)
			}
			gv.Figure = fig
		}
		v.Groups = append(v.Groups, gv)
	}
	return v
}
