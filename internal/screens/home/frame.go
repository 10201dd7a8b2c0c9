package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/geoquiz/internal/ui/components"
	"github.com/abhisek/geoquiz/internal/ui/layout"
	"github.com/abhisek/geoquiz/internal/ui/theme"
)

// Block-letter title.
const titleFull = `  ██████╗ ███████╗ ██████╗  ██████╗ ██╗   ██╗██╗███████╗
 ██╔════╝ ██╔════╝██╔═══██╗██╔═══██╗██║   ██║██║╚══███╔╝
 ██║  ███╗█████╗  ██║   ██║██║   ██║██║   ██║██║  ███╔╝
 ██║   ██║██╔══╝  ██║   ██║██║▄▄ ██║██║   ██║██║ ███╔╝
 ╚██████╔╝███████╗╚██████╔╝╚██████╔╝╚██████╔╝██║███████╗
  ╚═════╝ ╚══════╝ ╚═════╝  ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝`

const titleCompact = "G · E · O · Q · U · I · Z"

// titleFullWidth is the widest line of titleFull.
const titleFullWidth = 56

// contentWidth is the shared inner width of the title, stats box and menu:
// the frame minus its border and padding, kept between 20 and 60 columns.
func contentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 60)
}

func renderTitle(cw int, compact bool) string {
	title := titleFull
	if compact || cw < titleFullWidth {
		title = titleCompact
	}
	return layout.Centered(lipgloss.NewStyle(), cw,
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(title))
}

// renderStatsBar shows the bank name, its size and where a saved quiz
// would resume. savedAt is negative when nothing is saved.
func renderStatsBar(bankTitle string, questions, savedAt, cw int) string {
	saved := theme.Muted.Render("NO SAVED QUIZ")
	if savedAt >= 0 {
		saved = theme.Heading.Render(fmt.Sprintf("SAVED AT Q%d", savedAt+1))
	}

	line := strings.Join([]string{
		theme.Position.Render(strings.ToUpper(bankTitle)),
		theme.Caution.Render(fmt.Sprintf("%d QUESTIONS", questions)),
		saved,
	}, "  ")

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw-2).
		Padding(0, 1).
		Align(lipgloss.Center).
		Render(line)
}

const buttonWidth = 22

// buttonStyle picks the look of a menu entry. Compact entries drop the
// border so three of them fit in a short terminal.
func buttonStyle(item components.MenuItem, selected, compact bool) lipgloss.Style {
	st := lipgloss.NewStyle().Foreground(theme.Text)
	switch {
	case item.Disabled:
		st = st.Foreground(theme.TextDim)
	case selected:
		st = st.Bold(true).Foreground(theme.BgDark).Background(theme.Secondary)
	}
	if compact {
		return st
	}

	border := theme.Border
	if selected && !item.Disabled {
		border = theme.Secondary
	}
	return st.Width(buttonWidth).
		Align(lipgloss.Center).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border)
}

// renderMenu draws the menu as buttons, or as plain lines when compact.
func renderMenu(menu components.Menu, cw int, compact bool) string {
	lines := make([]string, 0, len(menu.Items))
	for i, item := range menu.Items {
		selected := i == menu.Selected
		label := item.Label
		switch {
		case selected && !item.Disabled:
			label = "▸ " + label
		case compact:
			label = "  " + label
		}
		if compact {
			label = " " + label + " "
		}
		lines = append(lines, buttonStyle(item, selected, compact).Render(label))
	}
	return layout.Centered(lipgloss.NewStyle(), cw, strings.Join(lines, "\n"))
}

// renderFrame centers content inside a double border filling the area.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
