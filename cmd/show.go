package cmd

import (
	"encoding/json"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/themer-cli/themer/key"
)

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolP("json", "j", false, "Print the snapshot as JSON")
	showCmd.Flags().BoolP("swatches", "s", false, "Always render color swatches")
}

var showCmd = &cobra.Command{
	Use:         "show",
	Short:       "Print the current theme with its resolved colors",
	Annotations: needsProvider,
	Args:        cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		snapshot := themeProvider(cmd).Snapshot()

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(toJSON(snapshot)))
			return
		}

		swatches := viper.GetBool(key.CliPreview) || lo.Must(cmd.Flags().GetBool("swatches"))
		printSnapshot(cmd.OutOrStdout(), snapshot, swatches)
	},
}
