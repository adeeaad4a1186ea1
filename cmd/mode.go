package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/themer-cli/themer/icon"
	"github.com/themer-cli/themer/style"
	"github.com/themer-cli/themer/theme"
)

func modeNames() []string { return stringsOf(theme.Modes()) }

func init() {
	rootCmd.AddCommand(modeCmd)
	modeCmd.AddCommand(modeToggleCmd)
}

var modeCmd = &cobra.Command{
	Use:               "mode [light|dark|auto]",
	Short:             "Print or set the light/dark mode",
	Annotations:       needsProvider,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeFrom(modeNames),
	Run: func(cmd *cobra.Command, args []string) {
		p := themeProvider(cmd)

		if len(args) == 0 {
			s := p.Snapshot()
			fmt.Fprintln(cmd.OutOrStdout(), s.Mode.String())
			return
		}

		mode, err := theme.ParseMode(expand(args[0], modeNames()))
		handleErr(err)

		s := p.SetMode(mode)
		success(cmd.OutOrStdout(), "mode set to %s %s", icon.Mode(s.Mode), style.Bold(s.Mode.String()))
	},
}

var modeToggleCmd = &cobra.Command{
	Use:         "toggle",
	Short:       "Switch to the explicit mode opposite to the one in effect",
	Annotations: needsProvider,
	Args:        cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := themeProvider(cmd).ToggleMode()
		success(cmd.OutOrStdout(), "mode set to %s %s", icon.Mode(s.Mode), style.Bold(s.Mode.String()))
	},
}
