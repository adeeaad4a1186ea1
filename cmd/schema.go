package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"github.com/themer-cli/themer/prefs"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the saved preferences record",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(prefs.Schema()))
	},
}
