package quiz

import (
	"context"
	"errors"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	qz "github.com/abhisek/geoquiz/internal/quiz"
	"github.com/abhisek/geoquiz/internal/router"
	"github.com/abhisek/geoquiz/internal/screen"
	"github.com/abhisek/geoquiz/internal/screens/summary"
	"github.com/abhisek/geoquiz/internal/store"
	"github.com/abhisek/geoquiz/internal/ui/layout"
)

// QuizScreen is the UI shell around a quiz controller. It translates key
// presses into controller commands and renders the resulting state.
type QuizScreen struct {
	deps      Deps
	ctrl      *qz.Controller
	sessionID string
	bankID    string
	resume    bool
	loading   bool // saved position requested but not yet applied

	notices   []qz.Notice
	noticeSeq int
	errMsg    string
	suspended bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)
var _ screen.Suspender = (*QuizScreen)(nil)
var _ screen.Focuser = (*QuizScreen)(nil)

// New creates a quiz screen for deps.Bank. With resume set, the latest saved
// position for the bank is restored once the screen starts.
func New(deps Deps, resume bool) (*QuizScreen, error) {
	deps = deps.WithDefaults()
	ctrl, err := qz.NewController(deps.Bank.Questions)
	if err != nil {
		return nil, err
	}
	return &QuizScreen{
		deps:      deps,
		ctrl:      ctrl,
		sessionID: uuid.NewString(),
		bankID:    deps.Bank.Fingerprint(),
		resume:    resume,
	}, nil
}

// Controller exposes the underlying controller.
func (s *QuizScreen) Controller() *qz.Controller {
	return s.ctrl
}

func (s *QuizScreen) Init() tea.Cmd {
	s.deps.Logger.Info("quiz started",
		zap.String("session", s.sessionID),
		zap.String("bank", s.bankID),
		zap.Int("questions", s.ctrl.Len()),
		zap.Bool("resume", s.resume))
	if s.resume && s.deps.Snapshots != nil {
		s.loading = true
		return s.loadResume()
	}
	return nil
}

func (s *QuizScreen) Title() string {
	if s.deps.Bank.Title != "" {
		return s.deps.Bank.Title + " Quiz"
	}
	return "Quiz"
}

func (s *QuizScreen) Status() string {
	return statusLine(s.ctrl)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	}
	if s.loading {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	hints := []layout.KeyHint{hint(keys.True), hint(keys.False), hint(keys.Previous), hint(keys.Next)}
	if s.ctrl.Completed() {
		hints = append(hints, hint(keys.Summary))
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Save & leave"})
}

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.loading {
		return renderLoading(width)
	}
	return s.renderQuestionView(width, height)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resumeLoadedMsg:
		return s.handleResume(msg)

	case noticeExpiredMsg:
		if msg.Seq == s.noticeSeq {
			s.notices = nil
		}
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// Suspend saves the current position. Completed sessions are not saved, and
// neither is a session still waiting for its saved position.
func (s *QuizScreen) Suspend() {
	if s.suspended || s.loading || s.deps.Snapshots == nil || s.ctrl.Completed() {
		return
	}
	s.suspended = true

	ctx := context.Background()
	snap := &store.Snapshot{
		SessionID: s.sessionID,
		Bank:      s.bankID,
		Timestamp: time.Now(),
		Data:      s.ctrl.Snapshot(),
	}
	if err := s.deps.Snapshots.Save(ctx, snap); err != nil {
		s.deps.Logger.Warn("save snapshot failed", zap.Error(err))
		return
	}
	if err := s.deps.Snapshots.Prune(ctx, s.deps.KeepSnapshots); err != nil {
		s.deps.Logger.Warn("prune snapshots failed", zap.Error(err))
	}
	s.deps.Logger.Info("quiz suspended",
		zap.String("session", s.sessionID),
		zap.Int("index", snap.Data.CurrentIndex))
}

func (s *QuizScreen) loadResume() tea.Cmd {
	repo, bankID := s.deps.Snapshots, s.bankID
	return func() tea.Msg {
		snap, err := repo.Latest(context.Background(), bankID)
		return resumeLoadedMsg{Snap: snap, Err: err}
	}
}

func (s *QuizScreen) handleResume(msg resumeLoadedMsg) (screen.Screen, tea.Cmd) {
	s.loading = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	if msg.Snap == nil {
		s.deps.Logger.Info("no saved position", zap.String("bank", s.bankID))
		return s, nil
	}
	if err := s.ctrl.Restore(msg.Snap.Data); err != nil {
		s.deps.Logger.Warn("discarding saved position", zap.Error(err))
		return s, nil
	}
	s.deps.Logger.Info("quiz resumed",
		zap.String("from_session", msg.Snap.SessionID),
		zap.Int("index", msg.Snap.Data.CurrentIndex))
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	// Restore resets the session, so nothing may be answered before it.
	if s.loading {
		return s, nil
	}

	var cmd qz.Command
	switch {
	case key.Matches(msg, keys.True):
		cmd = qz.AnswerCmd(true)
	case key.Matches(msg, keys.False):
		cmd = qz.AnswerCmd(false)
	case key.Matches(msg, keys.Previous):
		cmd = qz.PreviousCmd
	case key.Matches(msg, keys.Next):
		cmd = qz.NextCmd
	case key.Matches(msg, keys.Cycle):
		cmd = qz.CycleCmd
	case key.Matches(msg, keys.Summary):
		if s.ctrl.Completed() {
			return s, s.showSummary()
		}
		return s, nil
	default:
		return s, nil
	}

	// Disabled controls swallow their key.
	if !s.ctrl.Controls().Allows(cmd) {
		return s, nil
	}
	return s.dispatch(cmd)
}

// dispatch forwards a command to the controller and turns the notices it
// returns into a banner.
func (s *QuizScreen) dispatch(cmd qz.Command) (screen.Screen, tea.Cmd) {
	notices, err := s.ctrl.Dispatch(cmd)
	if err != nil {
		if errors.Is(err, qz.ErrAlreadyAnswered) {
			return s, nil
		}
		s.errMsg = err.Error()
		return s, nil
	}
	s.deps.Logger.Debug("command",
		zap.Stringer("cmd", cmd),
		zap.Int("index", s.ctrl.Index()),
		zap.Int("answered", s.ctrl.AnsweredCount()),
		zap.Int("correct", s.ctrl.Correct()))

	if len(notices) == 0 {
		return s, nil
	}

	s.notices = notices
	s.noticeSeq++
	seq := s.noticeSeq
	expire := tea.Tick(s.deps.NoticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{Seq: seq}
	})

	for _, n := range notices {
		if n.Kind == qz.NoticeScore {
			s.deps.Logger.Info("quiz completed",
				zap.String("session", s.sessionID),
				zap.String("score", qz.FormatScore(n.Score)))
			return s, tea.Batch(expire, s.showSummary())
		}
	}
	return s, expire
}

func (s *QuizScreen) showSummary() tea.Cmd {
	result := s.ctrl.Result()
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: summary.New(result, s.deps.Catalog)}
	}
}

// Focus drops a banner that outlived its tick while another screen was on top.
func (s *QuizScreen) Focus() tea.Cmd {
	s.notices = nil
	return nil
}
