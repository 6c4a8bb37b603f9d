// Package notice collects user-facing messages produced while a page renders.
package notice

import "fmt"

// Level classifies a notice for display.
type Level string

const (
	Info    Level = "info"
	Success Level = "success"
	Warning Level = "warning"
	Error   Level = "error"
)

// Notice is a single message shown above page content.
type Notice struct {
	Level Level
	Text  string
}

// Icon returns the status glyph used in terminal and HTML output.
func (n Notice) Icon() string {
	switch n.Level {
	case Success:
		return "✓"
	case Warning:
		return "⚠"
	case Error:
		return "✗"
	default:
		return "ℹ"
	}
}

// List accumulates notices in emission order. The zero value is ready to use.
type List struct {
	items []Notice
}

func (l *List) add(level Level, format string, args ...any) {
	l.items = append(l.items, Notice{Level: level, Text: fmt.Sprintf(format, args...)})
}

func (l *List) Infof(format string, args ...any)    { l.add(Info, format, args...) }
func (l *List) Successf(format string, args ...any) { l.add(Success, format, args...) }
func (l *List) Warnf(format string, args ...any)    { l.add(Warning, format, args...) }
func (l *List) Errorf(format string, args ...any)   { l.add(Error, format, args...) }

// Items returns a copy of the collected notices.
func (l *List) Items() []Notice {
	out := make([]Notice, len(l.items))
	copy(out, l.items)
	return out
}
