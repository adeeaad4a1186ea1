package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/themer-cli/themer/palette"
	"github.com/themer-cli/themer/theme"
)

func init() {
	rootCmd.AddCommand(customCmd)
	customCmd.AddCommand(customSetCmd)
	customCmd.AddCommand(customClearCmd)

	base := palette.Light(theme.SchemeDefault)
	for _, role := range base.Colors() {
		customSetCmd.Flags().String(role.Name, "", "Hex color for "+role.Name)
	}
	customSetCmd.Flags().StringP("from", "f", "", "Start from a built-in scheme instead of the current palette")
	lo.Must0(customSetCmd.RegisterFlagCompletionFunc("from", completeFrom(schemeNames)))
}

var customCmd = &cobra.Command{
	Use:         "custom",
	Short:       "Print or edit the user palette used by the custom scheme",
	Annotations: needsProvider,
	Args:        cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := themeProvider(cmd).Snapshot()

		custom, ok := s.Custom.Get()
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "no custom palette, the custom scheme renders as default")
			return
		}

		fmt.Fprintln(cmd.OutOrStdout(), renderPalette(palette.FromCustom(custom)))
	},
}

var customSetCmd = &cobra.Command{
	Use:         "set",
	Short:       "Store a custom palette and select the custom scheme",
	Long:        "Store a custom palette and select the custom scheme.\nWithout role flags every role is asked for interactively.",
	Example:     "  themer custom set --from blue --primary '#0F766E' --accent '#F59E0B'",
	Annotations: needsProvider,
	Args:        cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		p := themeProvider(cmd)
		current := p.Snapshot()

		base := palette.Light(theme.SchemeDefault)
		if custom, ok := current.Custom.Get(); ok {
			base = palette.FromCustom(custom)
		} else if current.Scheme != theme.SchemeCustom {
			base = palette.Light(current.Scheme)
		}

		if from := lo.Must(cmd.Flags().GetString("from")); from != "" {
			scheme, err := theme.ParseScheme(expand(from, schemeNames()))
			handleErr(err)
			base = palette.Light(scheme)
		}

		custom := base.ToCustom()
		fields := map[string]*string{
			"primary":              &custom.Primary,
			"secondary":            &custom.Secondary,
			"accent":               &custom.Accent,
			"background.primary":   &custom.BackgroundPrimary,
			"background.secondary": &custom.BackgroundSecondary,
			"text.primary":         &custom.TextPrimary,
			"text.secondary":       &custom.TextSecondary,
			"border":               &custom.Border,
		}

		changed := lo.Filter(lo.Keys(fields), func(name string, _ int) bool {
			return cmd.Flags().Changed(name)
		})

		if len(changed) == 0 && stdinIsTerminal() {
			answers, err := askColors(base.Colors())
			handleErr(err)

			for name, hex := range answers {
				*fields[name] = hex
			}
		}

		for _, name := range changed {
			*fields[name] = lo.Must(cmd.Flags().GetString(name))
		}

		s, err := p.SetCustomPalette(custom)
		handleErr(err)

		success(cmd.OutOrStdout(), "custom palette saved")
		fmt.Fprintln(cmd.OutOrStdout(), renderPalette(s.Colors))
	},
}

var customClearCmd = &cobra.Command{
	Use:         "clear",
	Short:       "Forget the custom palette",
	Annotations: needsProvider,
	Args:        cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		themeProvider(cmd).ClearCustomPalette()
		success(cmd.OutOrStdout(), "custom palette cleared")
	},
}
