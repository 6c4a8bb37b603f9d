package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	colorGreen  = color.New(color.FgGreen)
	colorYellow = color.New(color.FgYellow)
	colorRed    = color.New(color.FgRed)
	colorKey    = color.New(color.FgCyan)
)

func successf(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, colorGreen.Sprint("✓"), fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, colorYellow.Sprint("⚠ Warning:"), fmt.Sprintf(format, args...))
}
