package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

const NoRowsMessage = "no matching rows"

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	noteStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#888888"))
)

// TerminalChart draws bars as horizontal blocks scaled to width cells.
func TerminalChart(w io.Writer, title string, bars []Bar, width int) error {
	if width <= 0 {
		width = 40
	}
	if title == "" {
		title = DefaultTitle
	}
	if _, err := fmt.Fprintln(w, titleStyle.Render(title)); err != nil {
		return err
	}
	if len(bars) == 0 {
		_, err := fmt.Fprintln(w, noteStyle.Render(NoRowsMessage))
		return err
	}

	labelWidth := lo.Max(lo.Map(bars, func(b Bar, _ int) int { return lipgloss.Width(b.Label) }))
	maxV := lo.MaxBy(bars, func(a, b Bar) bool { return a.Mean > b.Mean }).Mean
	labelStyle := lipgloss.NewStyle().Width(labelWidth)

	for _, b := range bars {
		n := 0
		if maxV > 0 {
			n = int(b.Mean / maxV * float64(width))
		}
		block := lipgloss.NewStyle().Foreground(lipgloss.Color(b.Color)).Render(strings.Repeat("█", n))
		if _, err := fmt.Fprintf(w, "%s │%s %.3f\n", labelStyle.Render(b.Label), block, b.Mean); err != nil {
			return err
		}
	}
	return nil
}

// Notice prints a dimmed single-line message, e.g. the empty-selection prompt.
func Notice(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, noteStyle.Render(msg))
	return err
}
