package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.Paths.DataDir)
	assert.Equal(t, "data/processed", cfg.Paths.ProcessedDir)
	assert.Equal(t, "reports", cfg.Paths.ReportsDir)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.History.Enabled)
	assert.True(t, cfg.Cleaning.DropDuplicates)
	assert.Equal(t, 4, cfg.Cleaning.BatchConcurrency)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CLEANPRO_LOGGING_LEVEL", "debug")
	t.Setenv("CLEANPRO_CLEANING_DROP_DUPLICATES", "false")
	t.Setenv("CLEANPRO_HISTORY_PATH", "/tmp/history.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Cleaning.DropDuplicates)
	assert.Equal(t, "/tmp/history.db", cfg.History.Path)
}

func TestLoadValidation(t *testing.T) {
	t.Setenv("CLEANPRO_LOGGING_LEVEL", "verbose")

	_, err := Load()
	assert.Error(t, err, "unknown log level must fail validation")
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "cleanpro.yml")
	require.NoError(t, os.WriteFile(file, []byte("logging:\n  level: warn\npaths:\n  reports_dir: out/reports\n"), 0644))
	t.Setenv("CLEANPRO_CONFIG_FILE", file)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "out/reports", cfg.Paths.ReportsDir)
	// Untouched fields keep their defaults.
	assert.Equal(t, "data", cfg.Paths.DataDir)
}

func TestLoadFileWinsOverEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "cleanpro.yml")
	require.NoError(t, os.WriteFile(file, []byte("logging:\n  level: warn\n"), 0644))
	t.Setenv("CLEANPRO_CONFIG_FILE", file)
	t.Setenv("CLEANPRO_LOGGING_LEVEL", "error")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level, "keys present in the file take precedence")
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := &Config{
		Paths: PathsConfig{
			DataDir:      filepath.Join(base, "data"),
			RawDir:       filepath.Join(base, "data", "raw"),
			ProcessedDir: filepath.Join(base, "data", "processed"),
			ReportsDir:   filepath.Join(base, "reports"),
		},
		Logging: LoggingConfig{Output: "stdout"},
		History: HistoryConfig{Enabled: true, Path: filepath.Join(base, "data", "runs.db")},
	}

	require.NoError(t, cfg.EnsureDirectories())
	assert.DirExists(t, filepath.Join(base, "data", "raw"))
	assert.DirExists(t, filepath.Join(base, "reports"))
}
