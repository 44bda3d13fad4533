// Package config handles configuration loading and merging for spotlight.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--theme, --no-color, --width, --trace, --debug)
//  2. Environment variables (SPOTLIGHT_THEME, SPOTLIGHT_NO_COLOR, NO_COLOR, SPOTLIGHT_DEBUG)
//  3. YAML config file (.spotlight.yaml in local directory or ~/.config/spotlight/.spotlight.yaml)
//  4. Hardcoded defaults
//
// # Themes
//
// The built-in themes are "default" and "mono". A theme defined under
// themes: in the YAML file starts from the default palette, so it only has
// to name the colours it changes. A file theme with a built-in name
// replaces the built-in.
//
// # Environment Variables
//
//   - SPOTLIGHT_THEME: theme name
//   - SPOTLIGHT_NO_COLOR or NO_COLOR: "true" or "1" disables colours
//   - SPOTLIGHT_DEBUG: any non-empty value enables debug logging
package config
