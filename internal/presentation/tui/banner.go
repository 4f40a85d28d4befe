package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the fsa banner with the given subtitle.
func PrintBanner(w io.Writer, subtitle string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"   __           ", "#818cf8"},
		{"  / _|___  __ _ ", "#a78bfa"},
		{" |  _(_-< / _` |", "#c084fc"},
		{" |_| /__/ \\__,_|", "#e879f9"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	if subtitle != "" {
		fmt.Fprintln(w, termenv.String(" "+subtitle).Faint())
	}
	fmt.Fprintln(w)
}
