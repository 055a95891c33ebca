package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, ModeNews, cfg.Report.Mode)
	assert.Equal(t, 12, cfg.Report.MaxRows)
	assert.Equal(t, 8, cfg.Report.TopEachSide)
	assert.Equal(t, 50, cfg.Report.NewsLimit)
	assert.Equal(t, 2, cfg.Report.NewsPerTicker)
	assert.Equal(t, "docs", cfg.Report.OutputDir)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 10, cfg.Clients.Polygon.RateLimit)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, ModeNews, cfg.Report.Mode)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daybrief.toml")
	content := `
[report]
mode = "snapshot"
max_rows = 8
output_dir = "out"

[logging]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ModeSnapshot, cfg.Report.Mode)
	assert.Equal(t, 8, cfg.Report.MaxRows)
	assert.Equal(t, "out", cfg.Report.OutputDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched values keep defaults
	assert.Equal(t, 8, cfg.Report.TopEachSide)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DAYBRIEF_MODE", "INDEX")
	t.Setenv("DAYBRIEF_LOG_LEVEL", "warn")
	t.Setenv("DAYBRIEF_MAX_ROWS", "5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ModeIndex, cfg.Report.Mode)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 5, cfg.Report.MaxRows)
}

func TestLoadConfig_UnknownModeFallsBack(t *testing.T) {
	t.Setenv("DAYBRIEF_MODE", "mystery")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ModeNews, cfg.Report.Mode)
}

func TestResolveAPIKey(t *testing.T) {
	t.Setenv("DAYBRIEF_TEST_KEY", "from-env")

	key, err := ResolveAPIKey([]string{"DAYBRIEF_TEST_KEY"}, "from-config")
	require.NoError(t, err)
	assert.Equal(t, "from-env", key)

	key, err = ResolveAPIKey([]string{"DAYBRIEF_TEST_KEY_UNSET"}, "from-config")
	require.NoError(t, err)
	assert.Equal(t, "from-config", key)

	_, err = ResolveAPIKey([]string{"DAYBRIEF_TEST_KEY_UNSET"}, "")
	assert.Error(t, err)
}
