// Package screen holds the contract between the router and the screens it
// stacks, plus the optional capabilities a screen can opt into.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/geoquiz/internal/ui/layout"
)

// Screen is one page of the terminal UI. View receives the area left
// between header and footer.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// KeyHintProvider replaces the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider supplies the right-hand side of the header.
type StatusProvider interface {
	Status() string
}

// Suspender saves whatever the screen would lose when it is left or the
// program quits.
type Suspender interface {
	Suspend()
}

// Focuser is notified when the screen is on top again after a pop.
type Focuser interface {
	Focus() tea.Cmd
}
