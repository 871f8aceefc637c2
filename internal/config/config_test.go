package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, 9, config.Rows)
	assert.Equal(t, 9, config.Cols)
	assert.Equal(t, 10, config.Mines)
	assert.Equal(t, uint64(0), config.Seed)
	assert.False(t, config.TUI)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, "mines.log", config.LogFile)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MINES_ROWS", "16")
	t.Setenv("MINES_COLS", "30")
	t.Setenv("MINES_COUNT", "99")
	t.Setenv("MINES_SEED", "1234")
	t.Setenv("MINES_LOG_LEVEL", "debug")

	config, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, 16, config.Rows)
	assert.Equal(t, 30, config.Cols)
	assert.Equal(t, 99, config.Mines)
	assert.Equal(t, uint64(1234), config.Seed)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := "rows: 5\ncols: 6\nmines: 7\ntui: true\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, config.Rows)
	assert.Equal(t, 6, config.Cols)
	assert.Equal(t, 7, config.Mines)
	assert.True(t, config.TUI)
	assert.Equal(t, "info", config.LogLevel, "file omissions keep defaults")
}
