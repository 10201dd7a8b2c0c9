package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/geoquiz/internal/bank"
	"github.com/abhisek/geoquiz/internal/catalog"
	"github.com/abhisek/geoquiz/internal/quiz"
)

func runShell(t *testing.T, input string) (*askShell, string) {
	t.Helper()
	ctrl, err := quiz.NewController(bank.Default().Questions)
	require.NoError(t, err)

	var out bytes.Buffer
	sh := &askShell{ctrl: ctrl, catalog: catalog.Default(), logger: zap.NewNop(), out: &out}
	require.NoError(t, sh.run("Geography", strings.NewReader(input)))
	return sh, out.String()
}

func TestAsk_FullSession(t *testing.T) {
	sh, out := runShell(t, "t\nn\nt\nn\nf\nn\nf\nn\nt\nn\nt\n")

	assert.True(t, sh.ctrl.Completed())
	assert.Equal(t, 6, sh.ctrl.Correct())
	assert.Contains(t, out, "Geography quiz: 6 questions")
	assert.Contains(t, out, "[1/6] Canberra is the capital of Australia.")
	assert.Contains(t, out, "Correct!")
	assert.Contains(t, out, "Your score: 100.00%")
}

func TestAsk_BoundariesAndUnknown(t *testing.T) {
	sh, out := runShell(t, "p\np\nmaybe\n\nq\nn\n")

	assert.Equal(t, 0, sh.ctrl.Index(), "input after quit must be ignored")
	assert.Contains(t, out, "You are at the first question.")
	assert.Contains(t, out, "prev is not available right now.")
	assert.Contains(t, out, `Unknown command "maybe"`)
	assert.Contains(t, out, "Answered 0/6, 0 correct.")
	assert.NotContains(t, out, "Your score:")
}

func TestAsk_RepeatAnswer(t *testing.T) {
	sh, out := runShell(t, "f\nt\n")

	assert.Equal(t, 1, sh.ctrl.AnsweredCount())
	assert.Equal(t, 0, sh.ctrl.Correct())
	assert.Contains(t, out, "Incorrect!")
	assert.Contains(t, out, "(answered)")
	assert.Contains(t, out, "true is not available right now.")
}

func TestAsk_PastEndWithUnanswered(t *testing.T) {
	sh, out := runShell(t, strings.Repeat("n\n", 6))

	assert.Equal(t, 5, sh.ctrl.Index())
	assert.Contains(t, out, "You are at the last question.")
	assert.Contains(t, out, "You still have unanswered questions.")
}

func TestAsk_CycleWraps(t *testing.T) {
	sh, _ := runShell(t, strings.Repeat("c\n", 7))
	assert.Equal(t, 1, sh.ctrl.Index())
}

func TestAsk_DefaultTitle(t *testing.T) {
	ctrl, err := quiz.NewController(bank.Default().Questions)
	require.NoError(t, err)

	var out bytes.Buffer
	sh := &askShell{ctrl: ctrl, catalog: catalog.Default(), logger: zap.NewNop(), out: &out}
	require.NoError(t, sh.run("", strings.NewReader("")))
	assert.Contains(t, out.String(), "GeoQuiz quiz: 6 questions")
}
