// Package chart chooses, describes and renders survey charts.
package chart

import "strings"

// Kind is a chart type.
type Kind string

const (
	None          Kind = ""
	Bar           Kind = "bar"
	Pie           Kind = "pie"
	HorizontalBar Kind = "horizontal_bar"
)

// Kinds lists the user-selectable chart types in menu order.
var Kinds = []Kind{Bar, Pie, HorizontalBar}

// ParseKind accepts a chart type name, case-insensitively.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return None, false
}

// Label is the menu text for k.
func (k Kind) Label() string {
	switch k {
	case Bar:
		return "Bar Chart"
	case Pie:
		return "Pie Chart"
	case HorizontalBar:
		return "Horizontal Bar"
	}
	return "None"
}
