package cmd

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/themer-cli/themer/util"
	"github.com/themer-cli/themer/where"
)

// clearTarget is a file or directory `themer clear` can remove.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), where.Cache},
	{"logs directory", "logs", mo.Some("l"), where.Logs},
	{"preferences file", "storage", mo.Some("s"), where.Storage},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}

	addYesFlag(clearCmd)
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove cached and generated files",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			if target.argLong == "storage" && !confirm(cmd, "Delete the saved theme preferences?") {
				continue
			}

			if err := util.Delete(target.location()); err != nil && !os.IsNotExist(err) {
				handleErr(err)
			}
			success(cmd.OutOrStdout(), "%s cleared", util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
