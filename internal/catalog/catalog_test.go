package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/geoquiz/internal/quiz"
)

func TestDefault_HasQuestionPrompts(t *testing.T) {
	c := Default()
	for _, id := range []string{
		"question_australia", "question_oceans", "question_mideast",
		"question_africa", "question_americas", "question_asia",
	} {
		_, ok := c.Lookup(id)
		assert.True(t, ok, "missing %s", id)
	}
}

func TestText_FallsBackToID(t *testing.T) {
	c := New(nil)
	assert.Equal(t, "no_such_key", c.Text("no_such_key"))
}

func TestAdd_Overrides(t *testing.T) {
	c := New(map[string]string{"a": "one"})
	c.Add(map[string]string{"a": "uno", "b": "dos"})
	assert.Equal(t, "uno", c.Text("a"))
	assert.Equal(t, "dos", c.Text("b"))
}

func TestNew_CopiesInput(t *testing.T) {
	in := map[string]string{"a": "one"}
	c := New(in)
	in["a"] = "changed"
	assert.Equal(t, "one", c.Text("a"))
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("- not\n- a map\n"))
	require.Error(t, err)
}

func TestNotice(t *testing.T) {
	c := Default()
	tests := []struct {
		notice quiz.Notice
		want   string
	}{
		{quiz.Notice{Kind: quiz.NoticeCorrect}, "Correct!"},
		{quiz.Notice{Kind: quiz.NoticeIncorrect}, "Incorrect!"},
		{quiz.Notice{Kind: quiz.NoticeBeginningReached}, "You are at the first question."},
		{quiz.Notice{Kind: quiz.NoticeUnanswered}, "You still have unanswered questions."},
		{quiz.Notice{Kind: quiz.NoticeScore, Score: 100 * 4.0 / 6.0}, "Your score: 66.67%"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Notice(tt.notice))
	}
}
