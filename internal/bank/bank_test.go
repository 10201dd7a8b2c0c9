package bank

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/geoquiz/internal/catalog"
	"github.com/abhisek/geoquiz/internal/quiz"
)

const capitalsYAML = `title: Capitals
questions:
  - id: q_paris
    prompt: Paris is the capital of France.
    answer: true
  - id: q_sydney
    prompt: Sydney is the capital of Australia.
    answer: false
`

func TestDefault(t *testing.T) {
	b := Default()
	require.Len(t, b.Questions, 6)

	var answers []bool
	for _, q := range b.Questions {
		answers = append(answers, q.Answer)
	}
	assert.Equal(t, []bool{true, true, false, false, true, true}, answers)
}

func TestDefault_PromptsInCatalog(t *testing.T) {
	c := catalog.Default()
	for _, q := range Default().Questions {
		_, ok := c.Lookup(q.PromptID)
		assert.True(t, ok, "no text for %s", q.PromptID)
	}
}

func TestParse_YAML(t *testing.T) {
	b, err := Parse([]byte(capitalsYAML), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "Capitals", b.Title)
	assert.Equal(t, []quiz.Question{
		{PromptID: "q_paris", Answer: true},
		{PromptID: "q_sydney", Answer: false},
	}, b.Questions)
	assert.Equal(t, "Paris is the capital of France.", b.Prompts["q_paris"])
}

func TestParse_JSON(t *testing.T) {
	doc := `{"questions":[{"id":"a","prompt":"Water is wet.","answer":true}]}`
	b, err := Parse([]byte(doc), FormatJSON)
	require.NoError(t, err)
	require.Len(t, b.Questions, 1)
	assert.True(t, b.Questions[0].Answer)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		format Format
	}{
		{"empty questions", `{"questions":[]}`, FormatJSON},
		{"missing answer", `{"questions":[{"id":"a","prompt":"x"}]}`, FormatJSON},
		{"answer not bool", "questions:\n  - id: a\n    prompt: x\n    answer: maybe\n", FormatYAML},
		{"unknown field", `{"questions":[{"id":"a","prompt":"x","answer":true,"extra":1}]}`, FormatJSON},
		{"not json", `{`, FormatJSON},
		{"not yaml", "questions: [\n", FormatYAML},
		{"duplicate id", `{"questions":[{"id":"a","prompt":"x","answer":true},{"id":"a","prompt":"y","answer":false}]}`, FormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), tt.format)
			require.Error(t, err)
			var vErr *ValidationError
			assert.True(t, errors.As(err, &vErr), "got %T", err)
		})
	}
}

func TestLoad_PicksFormatFromExtension(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "capitals.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(capitalsYAML), 0o644))
	b, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Len(t, b.Questions, 2)

	jsonPath := filepath.Join(dir, "one.JSON")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"questions":[{"id":"a","prompt":"x","answer":false}]}`), 0o644))
	b, err = Load(jsonPath)
	require.NoError(t, err)
	assert.Len(t, b.Questions, 1)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFingerprint(t *testing.T) {
	a := Default()
	b := Default()
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.Len(t, a.Fingerprint(), 16)

	b.Questions[0].Answer = !b.Questions[0].Answer
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}
