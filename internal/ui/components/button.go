package components

import "github.com/abhisek/geoquiz/internal/ui/theme"

// Button is a labelled control with its shortcut key. Disabled buttons are
// drawn dimmed; the screen decides whether the key is honoured.
type Button struct {
	Label   string
	Key     string
	Enabled bool
}

func NewButton(label, key string, enabled bool) Button {
	return Button{Label: label, Key: key, Enabled: enabled}
}

func (b Button) View() string {
	style := theme.ButtonInactive
	if b.Enabled {
		style = theme.ButtonActive
	}
	if b.Key == "" {
		return style.Render(b.Label)
	}
	return style.Render("[" + b.Key + "] " + b.Label)
}
