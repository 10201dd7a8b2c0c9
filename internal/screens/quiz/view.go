package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/geoquiz/internal/quiz"
	"github.com/abhisek/geoquiz/internal/ui/components"
	"github.com/abhisek/geoquiz/internal/ui/layout"
	"github.com/abhisek/geoquiz/internal/ui/theme"
)

func statusLine(c *qz.Controller) string {
	return fmt.Sprintf("%d/%d answered", c.AnsweredCount(), c.Len())
}

// renderQuestionView renders the current question, the controls and the
// notice banner.
func (s *QuizScreen) renderQuestionView(width, height int) string {
	c := s.ctrl
	q := c.CurrentQuestion()

	var b strings.Builder

	// Position line.
	infoLeft := theme.Position.Render(fmt.Sprintf("  Question %d/%d", c.Index()+1, c.Len()))
	infoRight := theme.Muted.Render(fmt.Sprintf("%s %d", theme.Correct.Render("*"), c.Correct()))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(theme.Divider.Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("Answered", c.AnsweredCount(), c.Len(), min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(theme.Prompt, width, s.deps.Catalog.Text(q.PromptID)))
	b.WriteString("\n")
	if c.IsAnswered(c.Index()) {
		b.WriteString(layout.Centered(theme.Hint, width, "(answered)"))
	}
	b.WriteString("\n\n")

	b.WriteString(s.renderControls(width))

	if banner := s.renderBanner(width); banner != "" {
		b.WriteString("\n\n")
		b.WriteString(banner)
	}

	return b.String()
}

// renderControls renders the answer row and the navigation row.
func (s *QuizScreen) renderControls(width int) string {
	ctl := s.ctrl.Controls()
	cat := s.deps.Catalog

	answers := lipgloss.JoinHorizontal(lipgloss.Center,
		components.NewButton(cat.Text("true_button"), "T", ctl.True).View(),
		"   ",
		components.NewButton(cat.Text("false_button"), "F", ctl.False).View(),
	)
	nav := lipgloss.JoinHorizontal(lipgloss.Center,
		components.NewButton(cat.Text("prev_button"), "←", ctl.Previous).View(),
		"   ",
		components.NewButton(cat.Text("next_button"), "→", ctl.Next).View(),
	)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, answers) + "\n\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, nav)
}

// renderBanner renders the pending notices, or "" when none are showing.
func (s *QuizScreen) renderBanner(width int) string {
	if len(s.notices) == 0 {
		return ""
	}

	lines := make([]string, 0, len(s.notices))
	for _, n := range s.notices {
		lines = append(lines, noticeStyle(n.Kind).Render(s.deps.Catalog.Notice(n)))
	}
	banner := theme.Banner.Render(strings.Join(lines, "\n"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, banner)
}

func noticeStyle(k qz.NoticeKind) lipgloss.Style {
	switch k {
	case qz.NoticeCorrect, qz.NoticeScore:
		return theme.Correct
	case qz.NoticeIncorrect:
		return theme.Incorrect
	default:
		return lipgloss.NewStyle().Foreground(theme.Accent)
	}
}

// renderError renders an error message.
func renderLoading(width int) string {
	return "\n\n" + layout.Centered(theme.Hint, width, "Loading saved position...")
}

func renderError(width, height int, msg string) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Error).Bold(true), width,
		"Something went wrong"))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.TextDim), width, msg))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(theme.Hint, width, "Press any key to go back"))
	return b.String()
}
