package router

import (
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/geoquiz/internal/screen"
)

// Navigation messages. Screens return them as commands; the app model hands
// them to the router before anything else sees them.

// PushScreenMsg puts Screen on top of the stack.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg returns to the screen below the active one.
type PopScreenMsg struct{}

// PopToRootMsg returns to the first screen.
type PopToRootMsg struct{}

// ReplaceScreenMsg swaps the active screen for Screen.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router keeps the stack of screens; only the top one receives input.
type Router struct {
	stack  []screen.Screen
	logger *zap.Logger
}

// New creates a new Router with the given initial screen. A nil logger
// disables logging.
func New(initial screen.Screen, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		stack:  []screen.Screen{initial},
		logger: logger,
	}
}

// Push adds a screen on top of the stack and calls its Init().
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	r.logger.Debug("screen pushed", zap.String("screen", s.Title()), zap.Int("depth", len(r.stack)))
	return s.Init()
}

// Pop removes the top screen. The bottom screen is never removed.
func (r *Router) Pop() tea.Cmd {
	return r.truncate(len(r.stack)-1, "screen popped")
}

// PopToRoot removes every screen above the bottom one.
func (r *Router) PopToRoot() tea.Cmd {
	return r.truncate(1, "popped to root")
}

// truncate shrinks the stack to depth screens and lets the screen that is
// now on top refresh itself.
func (r *Router) truncate(depth int, event string) tea.Cmd {
	if depth < 1 || depth >= len(r.stack) {
		return nil
	}
	left := r.stack[len(r.stack)-1].Title()
	r.stack = r.stack[:depth]
	r.logger.Debug(event,
		zap.String("left", left),
		zap.String("screen", r.Active().Title()),
		zap.Int("depth", depth))

	if f, ok := r.Active().(screen.Focuser); ok {
		return f.Focus()
	}
	return nil
}

// Replace swaps the top screen for s and calls its Init().
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.stack[len(r.stack)-1] = s
	r.logger.Debug("screen replaced", zap.String("screen", s.Title()), zap.Int("depth", len(r.stack)))
	return s.Init()
}

// Active returns the top screen on the stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update applies navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case PopToRootMsg:
		return r.PopToRoot()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
