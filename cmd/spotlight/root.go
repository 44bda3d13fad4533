package main

import (
	"github.com/spf13/cobra"

	"github.com/dkoosis/spotlight/internal/config"
	"github.com/dkoosis/spotlight/internal/version"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	theme      string
	noColor    bool
	width      int
	trace      string
	debug      bool
}

// cliFlags converts the parsed flags, noting which ones the user set.
func (g *globalFlags) cliFlags(cmd *cobra.Command) config.CliFlags {
	flags := cmd.Flags()
	return config.CliFlags{
		ConfigPath: g.configPath,
		ThemeName:  g.theme,
		NoColor:    g.noColor,
		Width:      g.width,
		TraceFile:  g.trace,
		Debug:      g.debug,
		NoColorSet: flags.Changed("no-color"),
		WidthSet:   flags.Changed("width"),
		DebugSet:   flags.Changed("debug"),
	}
}

// NewRootCommand creates and returns the root cobra command for spotlight.
func NewRootCommand() *cobra.Command {
	g := &globalFlags{}
	cmd := &cobra.Command{
		Use:   "spotlight",
		Short: "Benchmark console output with a live progress bar",
		Long: `spotlight keeps hints, warnings, errors and result tables of a
benchmark run on screen and shows everything else in a two-row live
region: a progress bar and the latest message.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "config file (default .spotlight.yaml, then the user config dir)")
	pf.StringVar(&g.theme, "theme", "", "colour theme")
	pf.BoolVar(&g.noColor, "no-color", false, "disable colours")
	pf.IntVar(&g.width, "width", 0, "terminal width in cells (0 asks the terminal)")
	pf.StringVar(&g.trace, "trace", "", "write state transitions to this file")
	pf.BoolVar(&g.debug, "debug", false, "log state transitions to stderr")

	cmd.AddCommand(newReplayCommand(g))
	cmd.AddCommand(newThemesCommand(g))
	return cmd
}
