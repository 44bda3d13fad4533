package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dkoosis/spotlight/internal/config"
	"github.com/dkoosis/spotlight/internal/logx"
	"github.com/dkoosis/spotlight/internal/replay"
	"github.com/dkoosis/spotlight/pkg/host"
	"github.com/dkoosis/spotlight/pkg/live"
	"github.com/dkoosis/spotlight/pkg/spotlight"
)

func newReplayCommand(g *globalFlags) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "replay [file]",
		Short: "Replay a recorded console stream",
		Long: `Replay reads JSON lines of recorded logger calls from file, or from
stdin when file is omitted or "-", and feeds them to the spotlight logger.

Each line looks like {"kind":"Header","text":"...","op":"line"}; op is
"line", "write" or "empty".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := config.ResolveConfig(g.cliFlags(cmd))
			if err != nil {
				return err
			}

			trace, flush, err := logx.New(resolved.TraceFile, resolved.Debug)
			if err != nil {
				return err
			}
			defer flush()
			trace.Debug("config resolved",
				zap.String("path", resolved.Path),
				zap.String("theme", resolved.ThemeName),
				zap.String("theme_source", resolved.ThemeSource),
				zap.Bool("no_color", resolved.NoColor),
				zap.String("no_color_source", resolved.NoColorSource),
			)

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening recording: %w", err)
				}
				defer f.Close()
				in = f
			}

			out := cmd.OutOrStdout()
			base := host.NewDefaultConfig(out)
			var runner host.Config = base
			if !plain {
				runner = spotlight.NewConfig(base, newLogger(out, resolved, trace))
			}

			stats, err := replay.Stream(cmd.Context(), in, host.Tee(runner.Loggers()...))
			trace.Debug("replay finished", zap.Int("played", stats.Played), zap.Int("malformed", stats.Malformed))
			if stats.Malformed > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipped %d malformed record(s)\n", stats.Malformed)
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "write every line through the plain console logger")
	return cmd
}

// newLogger builds the spotlight logger drawing on out.
func newLogger(out io.Writer, resolved *config.ResolvedConfig, trace *zap.Logger) *spotlight.Logger {
	r := newRenderer(out, resolved.NoColor)
	theme := spotlight.NewTheme(r, resolved.ThemeName, resolved.Palette)
	console := live.NewConsole(
		live.NewANSIScreen(out, resolved.Width),
		live.WithRenderer(r),
		live.WithPrefix(resolved.Prefix),
		live.WithMessageStyle(theme.Live),
	)
	return spotlight.NewLogger(console, spotlight.WithTheme(theme), spotlight.WithTrace(trace))
}

// newRenderer picks the colour profile for out. Colours are only used on a
// terminal; cursor movement is emitted regardless.
func newRenderer(out io.Writer, noColor bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(out)
	if noColor || !isTerminal(out) {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
