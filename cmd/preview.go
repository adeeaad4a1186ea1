package cmd

import (
	"fmt"
	"io"

	"github.com/muesli/reflow/indent"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/themer-cli/themer/palette"
	"github.com/themer-cli/themer/style"
	"github.com/themer-cli/themer/theme"
	"github.com/themer-cli/themer/util"
)

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringSliceP("scheme", "s", nil, "Only preview these schemes")
	lo.Must0(previewCmd.RegisterFlagCompletionFunc("scheme", completeFrom(schemeNames)))
}

var previewCmd = &cobra.Command{
	Use:         "preview",
	Short:       "Render every color scheme in both variants",
	Annotations: needsProvider,
	Args:        cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		schemes := theme.Schemes()

		if names := lo.Must(cmd.Flags().GetStringSlice("scheme")); len(names) > 0 {
			schemes = lo.Map(names, func(name string, _ int) theme.Scheme {
				scheme, err := theme.ParseScheme(expand(name, schemeNames()))
				handleErr(err)
				return scheme
			})
		}

		renderPreview(cmd.OutOrStdout(), schemes, themeProvider(cmd).Snapshot().Custom)
	},
}

// renderPreview writes both variants of each scheme. The custom scheme uses
// the stored user palette when there is one.
func renderPreview(out io.Writer, schemes []theme.Scheme, custom mo.Option[theme.Custom]) {
	for i, scheme := range schemes {
		title := style.Title(util.Capitalize(scheme.String()))
		if scheme == theme.SchemeCustom && custom.IsAbsent() {
			title += style.Faint(" (no palette stored, same as default)")
		}
		fmt.Fprintln(out, title)

		state := theme.State{Scheme: scheme, Custom: custom}
		for _, dark := range []bool{false, true} {
			variant := lo.Ternary(dark, "dark", "light")
			fmt.Fprintln(out, indent.String(style.Faint(variant), 2))
			fmt.Fprintln(out, indent.String(renderPalette(palette.Resolve(state, dark)), 4))
		}

		if i < len(schemes)-1 {
			fmt.Fprintln(out)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, style.Faint(util.Quantify(len(schemes), "scheme", "schemes")+" in light and dark"))
}
