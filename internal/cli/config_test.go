package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("seed", "", "")
	fs.Bool("no-color", false, "")
	fs.String("log-level", "", "")
	fs.String("log-format", "", "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SHELF_LOG_LEVEL", "")
	cfg, err := loadConfig(t.TempDir(), testFlags(t))
	require.NoError(t, err)
	assert.Equal(t, types.DefaultConfig(), cfg)
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(
		"color: false\nlog_level: info\nlog_format: json\nseed_file: from-file.yaml\n"), 0o644))

	t.Run("file overrides defaults", func(t *testing.T) {
		cfg, err := loadConfig(dir, testFlags(t))
		require.NoError(t, err)
		assert.Equal(t, types.Config{
			Color:     false,
			LogLevel:  types.LogLevelInfo,
			LogFormat: types.LogFormatJSON,
			SeedFile:  "from-file.yaml",
		}, cfg)
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("SHELF_LOG_LEVEL", "error")
		cfg, err := loadConfig(dir, testFlags(t))
		require.NoError(t, err)
		assert.Equal(t, types.LogLevelError, cfg.LogLevel)
	})

	t.Run("flag overrides env", func(t *testing.T) {
		t.Setenv("SHELF_LOG_LEVEL", "error")
		cfg, err := loadConfig(dir, testFlags(t, "--log-level", "debug", "--seed", "flag.yaml"))
		require.NoError(t, err)
		assert.Equal(t, types.LogLevelDebug, cfg.LogLevel)
		assert.Equal(t, "flag.yaml", cfg.SeedFile)
	})
}

func TestLoadConfig_NoColorFlag(t *testing.T) {
	cfg, err := loadConfig(t.TempDir(), testFlags(t, "--no-color"))
	require.NoError(t, err)
	assert.False(t, cfg.Color)
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log_level: loud\n"), 0o644))

	_, err := loadConfig(dir, testFlags(t))
	assert.ErrorIs(t, err, types.ErrLogLevelUnknown)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(types.Config{LogLevel: types.LogLevelInfo, LogFormat: types.LogFormatJSON}, &buf)
	logger.Debug("hidden")
	logger.Info("shown", "k", "v")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}
