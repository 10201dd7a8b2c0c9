package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into a scratch directory so no stray geoquiz.yaml or .env
// from the working tree is picked up.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t)

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "", cfg.DB)
	assert.Equal(t, "", cfg.Bank)
	assert.Equal(t, 2*time.Second, cfg.NoticeDuration)
	assert.Equal(t, 5, cfg.KeepSnapshots)
}

func TestLoad_Env(t *testing.T) {
	chdir(t)
	t.Setenv("GEOQUIZ_DB", "/tmp/q.db")
	t.Setenv("GEOQUIZ_NOTICE_DURATION", "500ms")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/q.db", cfg.DB)
	assert.Equal(t, 500*time.Millisecond, cfg.NoticeDuration)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("GEOQUIZ_BANK=capitals.yaml\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("GEOQUIZ_BANK") })

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "capitals.yaml", cfg.Bank)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_file: quiz.log\nkeep_snapshots: 2\n"), 0o644))

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "quiz.log", cfg.LogFile)
	assert.Equal(t, 2, cfg.KeepSnapshots)
}

func TestLoad_SearchPath(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "geoquiz.yaml"), []byte("bank: local.yaml\n"), 0o644))

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "local.yaml", cfg.Bank)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := chdir(t)
	_, err := Load(New(), filepath.Join(dir, "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	chdir(t)

	v := New()
	v.Set("keep_snapshots", 0)
	_, err := Load(v, "")
	assert.Error(t, err)

	v = New()
	v.Set("notice_duration", "0s")
	_, err = Load(v, "")
	assert.Error(t, err)
}
