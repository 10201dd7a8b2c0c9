package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/geoquiz/internal/bank"
	"github.com/abhisek/geoquiz/internal/router"
	quizscreen "github.com/abhisek/geoquiz/internal/screens/quiz"
	"github.com/abhisek/geoquiz/internal/store"
)

type memSnapshots struct {
	saved []*store.Snapshot
}

func (m *memSnapshots) Save(_ context.Context, snap *store.Snapshot) error {
	m.saved = append(m.saved, snap)
	return nil
}
func (m *memSnapshots) Latest(context.Context, string) (*store.Snapshot, error) {
	if len(m.saved) == 0 {
		return nil, nil
	}
	return m.saved[len(m.saved)-1], nil
}
func (m *memSnapshots) List(context.Context, int) ([]store.Snapshot, error) {
	out := make([]store.Snapshot, 0, len(m.saved))
	for i := len(m.saved) - 1; i >= 0; i-- {
		out = append(out, *m.saved[i])
	}
	return out, nil
}

func (m *memSnapshots) Prune(context.Context, int) error { return nil }
func (m *memSnapshots) Clear(context.Context) (int64, error) {
	n := int64(len(m.saved))
	m.saved = nil
	return n, nil
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am, cmd
}

func startedQuiz(t *testing.T, repo store.SnapshotRepo) AppModel {
	t.Helper()
	m, err := newAppModel(Options{Deps: quizscreen.Deps{Snapshots: repo}, StartQuiz: true})
	require.NoError(t, err)

	cmd := m.Init()
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	require.Equal(t, 2, m.router.Depth())
	return m
}

func TestNewAppModel_HomeOnly(t *testing.T) {
	m, err := newAppModel(Options{})
	require.NoError(t, err)

	assert.Nil(t, m.Init())
	assert.Equal(t, "Home", m.router.Active().Title())
}

func TestNewAppModel_EmptyBank(t *testing.T) {
	_, err := newAppModel(Options{Deps: quizscreen.Deps{Bank: &bank.Bank{}}, StartQuiz: true})
	assert.Error(t, err)
}

func TestEscSavesAndPops(t *testing.T) {
	repo := &memSnapshots{}
	m := startedQuiz(t, repo)

	m, _ = update(t, m, tea.KeyPressMsg{Code: 'n', Text: "n"})
	m, _ = update(t, m, tea.KeyPressMsg{Code: 'n', Text: "n"})

	m, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	require.Len(t, repo.saved, 1)
	assert.Equal(t, 2, repo.saved[0].Data.CurrentIndex)

	m, _ = update(t, m, cmd())
	assert.Equal(t, 1, m.router.Depth())
	assert.Contains(t, m.router.View(100, 40), "SAVED AT Q3")
}

func TestEscAtRootIsNoop(t *testing.T) {
	m, err := newAppModel(Options{})
	require.NoError(t, err)

	_, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
}

func TestCtrlCSavesAndQuits(t *testing.T) {
	repo := &memSnapshots{}
	m := startedQuiz(t, repo)

	_, cmd := update(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Len(t, repo.saved, 1)
}

func TestResumeOption(t *testing.T) {
	repo := &memSnapshots{}
	first := startedQuiz(t, repo)
	for range 3 {
		first, _ = update(t, first, tea.KeyPressMsg{Code: 'n', Text: "n"})
	}
	update(t, first, tea.KeyPressMsg{Code: tea.KeyEscape})

	m, err := newAppModel(Options{Deps: quizscreen.Deps{Snapshots: repo}, Resume: true})
	require.NoError(t, err)
	m, cmd := update(t, m, m.Init()())
	require.NotNil(t, cmd, "expected the quiz screen to load the saved position")
	m, _ = update(t, m, cmd())

	qs, ok := m.router.Active().(*quizscreen.QuizScreen)
	require.True(t, ok)
	assert.Equal(t, 3, qs.Controller().Index())
}

func TestView(t *testing.T) {
	m := startedQuiz(t, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	frame := m.render()
	assert.Contains(t, frame, "Geography Quiz")
	assert.Contains(t, frame, "0/6 answered")
	assert.Contains(t, frame, "Ctrl+C")
	assert.True(t, m.View().AltScreen)
}

func TestViewTooSmall(t *testing.T) {
	m, err := newAppModel(Options{})
	require.NoError(t, err)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	assert.Contains(t, m.render(), "Terminal too small!")
}

func TestPopMsgIsRouted(t *testing.T) {
	m := startedQuiz(t, nil)
	m, _ = update(t, m, router.PopScreenMsg{})
	assert.Equal(t, 1, m.router.Depth())
}
