package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/geoquiz/internal/ui/theme"
)

// ProgressBar shows how many questions have been answered.
type ProgressBar struct {
	Label string
	Done  int
	Total int
	Width int // total width including label and counter
}

// NewProgressBar creates a progress bar for done out of total.
func NewProgressBar(label string, done, total, width int) ProgressBar {
	return ProgressBar{Label: label, Done: done, Total: total, Width: width}
}

// Fraction returns Done/Total clamped to [0, 1].
func (p ProgressBar) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	return max(0, min(float64(p.Done)/float64(p.Total), 1))
}

// View renders the bar as "label  ████░░░░  done/total".
func (p ProgressBar) View() string {
	var prefix string
	if p.Label != "" {
		prefix = theme.Muted.Render(p.Label) + "  "
	}
	counter := theme.Muted.Render(fmt.Sprintf("  %d/%d", p.Done, p.Total))

	cells := max(p.Width-lipgloss.Width(prefix)-lipgloss.Width(counter), 4)
	filled := int(float64(cells) * p.Fraction())

	return prefix +
		theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", cells-filled)) +
		counter
}
