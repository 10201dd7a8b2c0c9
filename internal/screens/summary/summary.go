package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/geoquiz/internal/catalog"
	"github.com/abhisek/geoquiz/internal/quiz"
	"github.com/abhisek/geoquiz/internal/router"
	"github.com/abhisek/geoquiz/internal/screen"
	"github.com/abhisek/geoquiz/internal/ui/layout"
	"github.com/abhisek/geoquiz/internal/ui/theme"
)

// SummaryScreen displays the final score of a quiz.
type SummaryScreen struct {
	result  quiz.Result
	catalog *catalog.Catalog
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. A nil catalog uses the built-in texts.
func New(result quiz.Result, cat *catalog.Catalog) *SummaryScreen {
	if cat == nil {
		cat = catalog.Default()
	}
	return &SummaryScreen{result: result, catalog: cat}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Quiz Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Review"},
		{Key: "H", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			// Back to the finished quiz.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "h", "H":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result

	var b strings.Builder

	title := "Quiz complete!"
	if r.Answered < r.Total {
		title = "Quiz in progress"
	}
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), width, title))
	b.WriteString("\n\n")

	score := s.catalog.Text("quiz_score") + " " + quiz.FormatScore(r.Score)
	b.WriteString(layout.Centered(scoreStyle(r.Score), width, score))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Questions: %d        Answered: %d        Correct: %d",
		r.Total, r.Answered, r.Correct)
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Text), width, stats))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(min(width-8, 60), 0)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.TextDim), width,
		fmt.Sprintf("%d/%d correct", r.Correct, r.Total)))

	return b.String()
}

func scoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 75:
		return theme.Correct
	case score >= 50:
		return lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	default:
		return theme.Incorrect
	}
}
