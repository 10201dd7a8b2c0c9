package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/geoquiz/internal/router"
	"github.com/abhisek/geoquiz/internal/screen"
	"github.com/abhisek/geoquiz/internal/screens/home"
	quizscreen "github.com/abhisek/geoquiz/internal/screens/quiz"
	"github.com/abhisek/geoquiz/internal/ui/layout"
)

// Options configures the program.
type Options struct {
	Deps quizscreen.Deps

	// StartQuiz opens the quiz screen straight away instead of the menu.
	StartQuiz bool
	// Resume restores the saved position when the quiz opens.
	Resume bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	logger *zap.Logger
	start  tea.Cmd
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen at the bottom of
// the stack.
func newAppModel(opts Options) (AppModel, error) {
	deps := opts.Deps.WithDefaults()
	m := AppModel{
		router: router.New(home.New(deps), deps.Logger),
		logger: deps.Logger,
	}
	if opts.StartQuiz || opts.Resume {
		qs, err := quizscreen.New(deps, opts.Resume)
		if err != nil {
			return AppModel{}, err
		}
		m.start = func() tea.Msg { return router.PushScreenMsg{Screen: qs} }
	}
	return m, nil
}

func (m AppModel) Init() tea.Cmd {
	return m.start
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.suspendActive()
			m.logger.Info("quit", zap.String("screen", m.router.Active().Title()))
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				m.suspendActive()
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// suspendActive lets the top screen save its state before it goes away.
func (m AppModel) suspendActive() {
	if s, ok := m.router.Active().(screen.Suspender); ok {
		s.Suspend()
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if kp, ok := active.(screen.KeyHintProvider); ok {
		return append(kp.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m, err := newAppModel(opts)
	if err != nil {
		return fmt.Errorf("start quiz: %w", err)
	}

	m.logger.Info("program started",
		zap.Bool("start_quiz", opts.StartQuiz),
		zap.Bool("resume", opts.Resume))

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	m.logger.Info("program exited")
	return nil
}
