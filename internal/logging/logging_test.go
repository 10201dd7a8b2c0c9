package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_Nop(t *testing.T) {
	logger, err := New("")
	require.NoError(t, err)
	logger.Info("dropped")
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geoquiz.log")
	logger, err := New(path)
	require.NoError(t, err)

	logger.Info("screen pushed", zap.String("screen", "Quiz"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "screen pushed")
	assert.Contains(t, string(data), "Quiz")
}
