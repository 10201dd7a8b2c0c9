package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/geoquiz/internal/router"
	"github.com/abhisek/geoquiz/internal/screen"
	quizscreen "github.com/abhisek/geoquiz/internal/screens/quiz"
	"github.com/abhisek/geoquiz/internal/ui/components"
)

const (
	itemStart = iota
	itemResume
	itemExit
)

var menuLabels = []string{"START QUIZ", "RESUME", "EXIT"}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps    quizscreen.Deps
	menu    components.Menu
	savedAt int // index of the saved position, -1 when there is none
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Focuser = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps quizscreen.Deps) *HomeScreen {
	h := &HomeScreen{deps: deps.WithDefaults()}
	h.refresh()
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Focus re-reads the saved position when the home screen is shown again.
func (h *HomeScreen) Focus() tea.Cmd {
	h.refresh()
	return nil
}

// CanResume reports whether a saved position exists for the current bank.
func (h *HomeScreen) CanResume() bool {
	return h.savedAt >= 0
}

func (h *HomeScreen) refresh() {
	h.savedAt = -1
	if h.deps.Snapshots != nil {
		snap, err := h.deps.Snapshots.Latest(context.Background(), h.deps.Bank.Fingerprint())
		if err != nil {
			h.deps.Logger.Warn("load saved position failed", zap.Error(err))
		} else if snap != nil && snap.Data.CurrentIndex < len(h.deps.Bank.Questions) {
			h.savedAt = snap.Data.CurrentIndex
		}
	}

	items := []components.MenuItem{
		{Label: menuLabels[itemStart], Action: func() tea.Cmd { return h.startQuiz(false) }},
		{Label: menuLabels[itemResume], Action: func() tea.Cmd { return h.startQuiz(true) }, Disabled: !h.CanResume()},
		{Label: menuLabels[itemExit], Action: func() tea.Cmd { return tea.Quit }},
	}
	selected := h.menu.Selected
	h.menu = components.NewMenu(items)
	if selected >= 0 && selected < len(items) && !items[selected].Disabled {
		h.menu.Selected = selected
	}
}

func (h *HomeScreen) startQuiz(resume bool) tea.Cmd {
	s, err := quizscreen.New(h.deps, resume)
	if err != nil {
		h.deps.Logger.Error("start quiz failed", zap.Error(err))
		return nil
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 80

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderStatsBar(h.deps.Bank.Title, len(h.deps.Bank.Questions), h.savedAt, cw),
		renderMenu(h.menu, cw, compact),
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
