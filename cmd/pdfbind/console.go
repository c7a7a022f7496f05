package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const consoleWidth = 70

func banner(w io.Writer, title string) {
	line := strings.Repeat("=", consoleWidth)
	fmt.Fprintf(w, "\n%s\n%s\n%s\n", line, color.New(color.Bold).Sprint(title), line)
}

func divider(w io.Writer) {
	fmt.Fprintf(w, "\n%s\n", strings.Repeat("-", consoleWidth))
}

// renderBar redraws an in-place progress bar on the current line.
func renderBar(w io.Writer, verb string, i, total int, label string) {
	const width = 40
	filled := width * i / total
	bar := strings.Repeat("█", filled) + strings.Repeat("-", width-filled)
	pct := float64(i) / float64(total) * 100
	fmt.Fprintf(w, "\r%s: |%s| %d/%d (%.1f%%) - %-30.30s", verb, bar, i, total, pct, label)
}

func warnf(w io.Writer, format string, args ...any) {
	color.New(color.FgYellow).Fprintf(w, format, args...)
}

func sizeMB(bytes int64) float64 {
	return float64(bytes) / (1024 * 1024)
}
