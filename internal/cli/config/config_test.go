package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "baldguard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringP("output", "o", "", "")
	fs.BoolP("verbose", "v", false, "")
	fs.Int("max-depth", 0, "")
	fs.String("color", "", "")
	return fs
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	defer ResetConfig()

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, DefaultMaxDepth, cfg.MaxDepth)
	assert.Equal(t, DefaultColor, cfg.Color)
	assert.Equal(t, DefaultHistoryFile, cfg.HistoryFile)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, GetConfigFileUsed())
	assert.Same(t, cfg, GetCurrentConfig())
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	defer ResetConfig()
	writeConfig(t, dir, "output: yaml\nmax_depth: 10\ncolor: never\n")

	t.Run("file over defaults", func(t *testing.T) {
		cfg, err := LoadConfig("", nil)
		require.NoError(t, err)
		assert.Equal(t, "yaml", cfg.OutputFormat)
		assert.Equal(t, 10, cfg.MaxDepth)
		assert.Equal(t, "never", cfg.Color)
		assert.Equal(t, filepath.Join(dir, "baldguard.yaml"), GetConfigFileUsed())
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("BALDGUARD_MAX_DEPTH", "20")
		cfg, err := LoadConfig("", nil)
		require.NoError(t, err)
		assert.Equal(t, 20, cfg.MaxDepth)
		assert.Equal(t, "yaml", cfg.OutputFormat)
	})

	t.Run("flags over env", func(t *testing.T) {
		t.Setenv("BALDGUARD_MAX_DEPTH", "20")
		t.Setenv("BALDGUARD_OUTPUT", "text")
		fs := newFlags()
		require.NoError(t, fs.Parse([]string{"--max-depth", "30"}))

		cfg, err := LoadConfig("", fs)
		require.NoError(t, err)
		assert.Equal(t, 30, cfg.MaxDepth)
		assert.Equal(t, "text", cfg.OutputFormat)
	})

	t.Run("unchanged flags ignored", func(t *testing.T) {
		cfg, err := LoadConfig("", newFlags())
		require.NoError(t, err)
		assert.Equal(t, "yaml", cfg.OutputFormat)
		assert.Equal(t, 10, cfg.MaxDepth)
	})
}

func TestLoadConfig_UpwardSearch(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "output: json\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	t.Chdir(nested)
	defer ResetConfig()

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.OutputFormat)
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())
	defer ResetConfig()

	other := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(other, []byte("verbose: true\n"), 0o600))

	cfg, err := LoadConfig(other, nil)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, other, GetConfigFileUsed())

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	defer ResetConfig()
	writeConfig(t, dir, "output: markdown\n")

	_, err := LoadConfig("", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		errSubstr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "text output", mutate: func(c *Config) { c.OutputFormat = "text" }},
		{name: "bad output", mutate: func(c *Config) { c.OutputFormat = "xml" }, errSubstr: "invalid output format"},
		{name: "bad color", mutate: func(c *Config) { c.Color = "sometimes" }, errSubstr: "invalid color mode"},
		{name: "zero depth", mutate: func(c *Config) { c.MaxDepth = 0 }, errSubstr: "max_depth must be positive"},
		{name: "negative depth", mutate: func(c *Config) { c.MaxDepth = -3 }, errSubstr: "max_depth must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errSubstr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "hist"), expandHome("~/hist"))
	assert.Equal(t, "/tmp/hist", expandHome("/tmp/hist"))
	assert.Equal(t, "hist", expandHome("hist"))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, false)
	logger.Debug("hidden")
	logger.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	NewLogger(&buf, true).Debug("visible")
	assert.Contains(t, buf.String(), "visible")

	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, GetLogger(ctx))
	assert.NotNil(t, GetLogger(context.Background()))
}
