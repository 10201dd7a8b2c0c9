package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args in an isolated environment.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("GEOQUIZ_DB", "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validBank = `title: Capitals
questions:
  - id: paris
    prompt: Paris is the capital of France.
    answer: true
  - id: sydney
    prompt: Sydney is the capital of Australia.
    answer: false
`

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "geoquiz "), out)
}

func TestBankValidate_OK(t *testing.T) {
	path := writeFile(t, "capitals.yaml", validBank)

	out, err := execute(t, "bank", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "OK")
	assert.Contains(t, out, "Capitals")
	assert.Contains(t, out, "questions:   2")
}

func TestBankValidate_Invalid(t *testing.T) {
	path := writeFile(t, "broken.yaml", "questions: []\n")

	out, err := execute(t, "bank", "validate", path)
	require.Error(t, err)
	assert.Contains(t, out, "invalid bank")
}

func TestBankShow_Default(t *testing.T) {
	out, err := execute(t, "bank", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "question_australia")
	assert.Contains(t, out, "6 questions")
}

func TestLoadBank_RegistersPrompts(t *testing.T) {
	path := writeFile(t, "capitals.yaml", validBank)

	b, cat, err := loadBank(path)
	require.NoError(t, err)
	assert.Len(t, b.Questions, 2)
	assert.Equal(t, "Paris is the capital of France.", cat.Text("paris"))
	assert.Equal(t, "Correct!", cat.Text("correct_toast"))
}

func TestLoadBank_Missing(t *testing.T) {
	_, _, err := loadBank(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestResetAndSaved(t *testing.T) {
	db := filepath.Join(t.TempDir(), "geoquiz.db")

	out, err := execute(t, "saved", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No saved positions.")

	out, err = execute(t, "reset", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Removed 0 saved position(s).")
}
