package quiz

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/geoquiz/internal/ui/layout"
)

type keyMap struct {
	True     key.Binding
	False    key.Binding
	Previous key.Binding
	Next     key.Binding
	Cycle    key.Binding
	Summary  key.Binding
}

var keys = keyMap{
	True: key.NewBinding(
		key.WithKeys("t", "T"),
		key.WithHelp("T", "True"),
	),
	False: key.NewBinding(
		key.WithKeys("f", "F"),
		key.WithHelp("F", "False"),
	),
	Previous: key.NewBinding(
		key.WithKeys("left", "p", "h"),
		key.WithHelp("←", "Prev"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "n", "l"),
		key.WithHelp("→", "Next"),
	),
	Cycle: key.NewBinding(
		key.WithKeys("space", "enter"),
		key.WithHelp("Space", "Skip ahead"),
	),
	Summary: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("S", "Score"),
	),
}

func hint(b key.Binding) layout.KeyHint {
	return layout.KeyHint{Key: b.Help().Key, Description: b.Help().Desc}
}
