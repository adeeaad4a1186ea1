package cmd

import (
	"fmt"

	"errors"
	"os/signal"
	"syscall"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/themer-cli/themer/log"
	"github.com/themer-cli/themer/provider"
	"github.com/themer-cli/themer/storage"
	"github.com/themer-cli/themer/style"
)

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolP("json", "j", false, "Print each snapshot as a JSON line")
}

var watchCmd = &cobra.Command{
	Use:         "watch",
	Short:       "Print the theme every time it changes",
	Long:        "Print the theme every time the host appearance flips or the saved preferences are changed by another process.",
	Annotations: needsProvider,
	Args:        cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		p := themeProvider(cmd)
		asJSON := lo.Must(cmd.Flags().GetBool("json"))

		emit := func(s provider.Snapshot) {
			if asJSON {
				handleErr(jsonLine(cmd.OutOrStdout(), toJSON(s)))
				return
			}

			printSnapshot(cmd.OutOrStdout(), s, false)
			fmt.Fprintln(cmd.OutOrStdout())
		}

		emit(p.Snapshot())
		unsubscribe := p.Subscribe(emit)
		defer unsubscribe()

		if local, ok := session.slot.(*storage.Local); ok {
			err := local.Watch(ctx, func() { p.Rehydrate() })
			if err != nil && !errors.Is(err, storage.ErrWatchUnsupported) {
				handleErr(err)
			}
		} else {
			log.WithField("backend", session.slot.Name()).Info("external changes are not watched for this backend")
			cmd.PrintErrln(style.Faint("following host appearance only, " + session.slot.Name() + " storage cannot be watched"))
		}

		<-ctx.Done()
	},
}
