package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dkoosis/spotlight/internal/config"
)

func newThemesCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the available colour themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			appCfg, _, err := config.LoadConfig(g.configPath)
			if err != nil {
				return err
			}
			resolved, err := config.ResolveConfig(g.cliFlags(cmd))
			if err != nil {
				return err
			}

			names := make([]string, 0, len(appCfg.Themes))
			for name := range appCfg.Themes {
				names = append(names, name)
			}
			sort.Strings(names)

			out := cmd.OutOrStdout()
			for _, name := range names {
				marker := " "
				if name == resolved.ThemeName {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s\n", marker, name)
			}
			return nil
		},
	}
}
