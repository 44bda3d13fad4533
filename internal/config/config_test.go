package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/spotlight/pkg/spotlight"
)

// chdir moves into a fresh temp dir with an isolated user config dir.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestGetConfigPath_ReturnsLocalConfig_When_FileExists(t *testing.T) {
	dir := chdir(t)
	writeFile(t, filepath.Join(dir, FileName), "theme: mono\n")

	assert.Equal(t, FileName, getConfigPath())
}

func TestGetConfigPath_UsesXDGPath_When_LocalMissing(t *testing.T) {
	chdir(t)
	home, err := os.UserConfigDir()
	require.NoError(t, err)
	xdg := filepath.Join(home, "spotlight", FileName)
	writeFile(t, xdg, "theme: mono\n")

	assert.Equal(t, xdg, getConfigPath())
}

func TestGetConfigPath_ReturnsEmpty_When_NothingFound(t *testing.T) {
	chdir(t)
	assert.Empty(t, getConfigPath())
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	chdir(t)

	cfg, path, err := LoadConfig("")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadConfig_MergesFile(t *testing.T) {
	dir := chdir(t)
	writeFile(t, filepath.Join(dir, FileName), `
theme: night
no_color: true
width: 100
prefix: "$ "
trace_file: trace.log
themes:
  night:
    warning: "#ffaa00"
    bar_primary: "12"
`)

	cfg, path, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, FileName, path)
	assert.Equal(t, "night", cfg.Theme)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, "$ ", cfg.Prefix)
	assert.Equal(t, "trace.log", cfg.TraceFile)

	night := cfg.Themes["night"]
	assert.Equal(t, "#ffaa00", night.Warning)
	assert.Equal(t, "12", night.BarPrimary)
	assert.Equal(t, spotlight.DefaultPalette().Error, night.Error, "unnamed colours keep the default")
	assert.Contains(t, cfg.Themes, "mono")
}

func TestLoadConfig_ExplicitPath(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, "elsewhere.yaml")
	writeFile(t, path, "theme: mono\n")

	cfg, got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.Equal(t, "mono", cfg.Theme)
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := chdir(t)

	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed yaml", content: "theme: [\n"},
		{name: "negative width", content: "width: -3\n"},
		{name: "bad theme shape", content: "themes:\n  x: [1, 2]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "bad.yaml")
			writeFile(t, path, tt.content)

			cfg, _, err := LoadConfig(path)
			assert.Error(t, err)
			assert.Equal(t, Defaults(), cfg)
		})
	}

	_, _, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
