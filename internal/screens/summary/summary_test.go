package summary

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/geoquiz/internal/quiz"
	"github.com/abhisek/geoquiz/internal/router"
)

func testResult() quiz.Result {
	return quiz.Result{Total: 6, Answered: 6, Correct: 4, Score: 400.0 / 6}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testResult(), nil)
	assert.Equal(t, "Quiz Summary", s.Title())
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testResult(), nil)
	view := s.View(80, 24)

	assert.Contains(t, view, "Your score: 66.67%")
	assert.Contains(t, view, "4/6 correct")
	assert.Contains(t, view, "Quiz complete!")
}

func TestSummaryScreen_DisplayIncomplete(t *testing.T) {
	s := New(quiz.Result{Total: 6, Answered: 2, Correct: 1, Score: 100.0 / 6}, nil)
	assert.Contains(t, s.View(80, 24), "Quiz in progress")
}

func TestSummaryScreen_Navigation(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyPressMsg
		want tea.Msg
	}{
		{"enter", tea.KeyPressMsg{Code: tea.KeyEnter}, router.PopScreenMsg{}},
		{"esc", tea.KeyPressMsg{Code: tea.KeyEscape}, router.PopScreenMsg{}},
		{"home", tea.KeyPressMsg{Code: 'h', Text: "h"}, router.PopToRootMsg{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(testResult(), nil)
			_, cmd := s.Update(tt.key)
			require.NotNil(t, cmd)
			assert.Equal(t, tt.want, cmd())
		})
	}
}

func TestSummaryScreen_IgnoresOtherKeys(t *testing.T) {
	s := New(testResult(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Nil(t, cmd)
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testResult(), nil)
	assert.Len(t, s.KeyHints(), 2)
}
