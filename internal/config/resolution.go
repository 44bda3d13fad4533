package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/dkoosis/spotlight/pkg/spotlight"
)

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	ConfigPath string
	ThemeName  string
	NoColor    bool
	Width      int
	TraceFile  string
	Debug      bool

	// Flags to track if they were explicitly set by the user
	NoColorSet bool
	WidthSet   bool
	DebugSet   bool
}

// ResolvedConfig holds the final configuration after applying all priority rules.
type ResolvedConfig struct {
	ThemeName string
	Palette   spotlight.Palette

	NoColor   bool
	Width     int
	Prefix    string
	Debug     bool
	TraceFile string

	// Resolution metadata (for debugging)
	Path          string // config file read, if any
	ThemeSource   string // "cli", "env", "file", "default"
	NoColorSource string // "cli", "env", "file", "default"
}

// ResolveConfig resolves configuration from all sources with explicit priority order.
func ResolveConfig(flags CliFlags) (*ResolvedConfig, error) {
	appCfg, path, err := LoadConfig(flags.ConfigPath)
	if err != nil {
		return nil, err
	}
	return resolve(flags, appCfg, path)
}

func resolve(flags CliFlags, appCfg *AppConfig, path string) (*ResolvedConfig, error) {
	resolved := &ResolvedConfig{
		NoColor:       appCfg.NoColor,
		Width:         appCfg.Width,
		Prefix:        appCfg.Prefix,
		Debug:         appCfg.Debug,
		TraceFile:     appCfg.TraceFile,
		Path:          path,
		NoColorSource: "file",
	}
	if path == "" {
		resolved.NoColorSource = "default"
	}

	name, source := resolveThemeName(flags, appCfg)
	palette, ok := appCfg.Themes[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %v)", ErrUnknownTheme, name, themeNames(appCfg))
	}
	resolved.ThemeName, resolved.Palette, resolved.ThemeSource = name, palette, source

	if flags.NoColorSet {
		resolved.NoColor = flags.NoColor
		resolved.NoColorSource = "cli"
	} else if env := getEnvBool("SPOTLIGHT_NO_COLOR", "NO_COLOR"); env != nil {
		resolved.NoColor = *env
		resolved.NoColorSource = "env"
	}

	if flags.WidthSet {
		if flags.Width < 0 {
			return nil, fmt.Errorf("width must not be negative, got %d", flags.Width)
		}
		resolved.Width = flags.Width
	}

	if flags.DebugSet {
		resolved.Debug = flags.Debug
	} else if os.Getenv("SPOTLIGHT_DEBUG") != "" {
		resolved.Debug = true
	}

	if flags.TraceFile != "" {
		resolved.TraceFile = flags.TraceFile
	}

	return resolved, nil
}

// resolveThemeName picks the theme name with priority: CLI > ENV > file > default.
func resolveThemeName(flags CliFlags, appCfg *AppConfig) (string, string) {
	if flags.ThemeName != "" {
		return flags.ThemeName, "cli"
	}
	if env := os.Getenv("SPOTLIGHT_THEME"); env != "" {
		return env, "env"
	}
	if appCfg.Theme != DefaultThemeName {
		return appCfg.Theme, "file"
	}
	return DefaultThemeName, "default"
}

func themeNames(appCfg *AppConfig) []string {
	names := make([]string, 0, len(appCfg.Themes))
	for name := range appCfg.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// getEnvBool reads a boolean from environment variables, trying multiple keys.
// Returns nil if none are set, or a pointer to the boolean value.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
		}
	}
	return nil
}
