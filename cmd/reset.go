package cmd

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resetCmd)
	addYesFlag(resetCmd)
}

var resetCmd = &cobra.Command{
	Use:         "reset",
	Short:       "Forget saved theme preferences and return to defaults",
	Annotations: needsProvider,
	Args:        cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if !confirm(cmd, "Forget the saved theme?") {
			return
		}

		s := themeProvider(cmd).Reset()
		success(cmd.OutOrStdout(), "theme reset to %s / %s / %s", s.Mode, s.Scheme, s.Design)
	},
}
