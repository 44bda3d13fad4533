package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/spotlight/pkg/spotlight"
)

// FileName is the name of the configuration file.
const FileName = ".spotlight.yaml"

// Defaults.
const (
	DefaultThemeName = "default"
	DefaultPrefix    = "> "
)

// AppConfig represents the contents of .spotlight.yaml.
type AppConfig struct {
	Theme     string `yaml:"theme"`
	NoColor   bool   `yaml:"no_color"`
	Width     int    `yaml:"width"`
	Prefix    string `yaml:"prefix"`
	Debug     bool   `yaml:"debug"`
	TraceFile string `yaml:"trace_file"`

	Themes map[string]spotlight.Palette `yaml:"-"`
}

type fileThemes struct {
	Themes map[string]yaml.Node `yaml:"themes"`
}

// Defaults returns the configuration used when no file is found.
func Defaults() *AppConfig {
	return &AppConfig{
		Theme:  DefaultThemeName,
		Prefix: DefaultPrefix,
		Themes: spotlight.Palettes(),
	}
}

// LoadConfig loads the configuration file at path, or the discovered file
// when path is empty. A missing discovered file is not an error.
func LoadConfig(path string) (*AppConfig, string, error) {
	cfg := Defaults()

	if path == "" {
		path = getConfigPath()
		if path == "" {
			return cfg, "", nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, path, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := parse(cfg, data); err != nil {
		return Defaults(), path, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, path, nil
}

// parse merges YAML data onto cfg.
func parse(cfg *AppConfig, data []byte) error {
	var file AppConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return err
	}
	var themes fileThemes
	if err := yaml.Unmarshal(data, &themes); err != nil {
		return err
	}

	if file.Theme != "" {
		cfg.Theme = file.Theme
	}
	cfg.NoColor = file.NoColor
	if file.Width < 0 {
		return fmt.Errorf("width must not be negative, got %d", file.Width)
	}
	cfg.Width = file.Width
	if file.Prefix != "" {
		cfg.Prefix = file.Prefix
	}
	cfg.Debug = file.Debug
	cfg.TraceFile = file.TraceFile

	for name, node := range themes.Themes {
		p := spotlight.DefaultPalette()
		if err := node.Decode(&p); err != nil {
			return fmt.Errorf("theme %q: %w", name, err)
		}
		cfg.Themes[name] = p
	}
	return nil
}

// getConfigPath tries to find the .spotlight.yaml configuration file.
// It checks the local directory first, then the user config directory.
func getConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "spotlight", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}

// ErrUnknownTheme is returned when a theme name matches no theme.
var ErrUnknownTheme = errors.New("unknown theme")
