package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/geoquiz/internal/ui/theme"
)

var (
	menuUp     = key.NewBinding(key.WithKeys("up", "k"))
	menuDown   = key.NewBinding(key.WithKeys("down", "j"))
	menuSelect = key.NewBinding(key.WithKeys("enter"))

	menuCursor   = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	menuEnabled  = lipgloss.NewStyle().Foreground(theme.Text)
	menuDisabled = lipgloss.NewStyle().Foreground(theme.Border)
)

// MenuItem is one selectable entry. Disabled items are skipped by the cursor.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list with a cursor that never rests on a disabled item.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu places the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	if next, ok := m.step(-1, 1); ok {
		m.Selected = next
	}
	return m
}

// step walks from index from in direction dir and returns the first enabled
// item it meets. It does not wrap.
func (m Menu) step(from, dir int) (int, bool) {
	for i := from + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			return i, true
		}
	}
	return from, false
}

// Update moves the cursor or runs the selected item's action.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, menuUp):
		m.Selected, _ = m.step(m.Selected, -1)
	case key.Matches(kmsg, menuDown):
		m.Selected, _ = m.step(m.Selected, 1)
	case key.Matches(kmsg, menuSelect):
		if m.Selected < 0 || m.Selected >= len(m.Items) {
			return m, nil
		}
		if item := m.Items[m.Selected]; !item.Disabled && item.Action != nil {
			return m, item.Action()
		}
	}
	return m, nil
}

// View renders one line per item.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		switch {
		case i == m.Selected:
			b.WriteString(menuCursor.Render("  ▸ " + item.Label))
		case item.Disabled:
			b.WriteString(menuDisabled.Render("    " + item.Label))
		default:
			b.WriteString(menuEnabled.Render("    " + item.Label))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
