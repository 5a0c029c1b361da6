package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the ASCII art banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.EnvColorProfile()
	// Teal to indigo, one colour per line
	lines := []struct{ text, color string }{
		{"              _                        _        ", "#2dd4bf"},
		{"   __ _ _   _| |_ ___  _ __ ___   __ _| |_ __ _ ", "#22d3ee"},
		{"  / _` | | | | __/ _ \\| '_ ` _ \\ / _` | __/ _` |", "#38bdf8"},
		{" | (_| | |_| | || (_) | | | | | | (_| | || (_| |", "#60a5fa"},
		{"  \\__,_|\\__,_|\\__\\___/|_| |_| |_|\\__,_|\\__\\__,_|", "#818cf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}

// Verdict renders accepted or rejected, coloured when the terminal allows.
func Verdict(accepted bool) string {
	p := termenv.EnvColorProfile()
	if accepted {
		return termenv.String("accepted").Foreground(p.Color("#22c55e")).Bold().String()
	}
	return termenv.String("rejected").Foreground(p.Color("#ef4444")).Bold().String()
}
