package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette: sea blues and land greens.
var (
	Primary   = lipgloss.Color("#3B82F6") // ocean
	Secondary = lipgloss.Color("#14B8A6") // lagoon
	Accent    = lipgloss.Color("#F59E0B") // desert
	Success   = lipgloss.Color("#22C55E") // forest
	Error     = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#0F172A")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

// Text styles.
var (
	Prompt   = lipgloss.NewStyle().Foreground(Text).Bold(true)
	Position = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	Muted    = lipgloss.NewStyle().Foreground(TextDim)
	Hint     = Muted.Italic(true)
	Heading  = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Divider  = lipgloss.NewStyle().Foreground(Border)
)

// Feedback tones used by notices and scores.
var (
	Correct   = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect = lipgloss.NewStyle().Foreground(Error).Bold(true)
	Caution   = lipgloss.NewStyle().Foreground(Accent).Bold(true)
)

// Controls.
var (
	// ButtonActive and ButtonInactive share padding so rows keep their width
	// when a control toggles.
	ButtonActive   = lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(Text).Background(Primary)
	ButtonInactive = lipgloss.NewStyle().Padding(0, 2).Foreground(Border).Background(BgCard)

	ProgressFilled = lipgloss.NewStyle().Background(Secondary)
	ProgressEmpty  = lipgloss.NewStyle().Background(Border)

	Banner = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
)
