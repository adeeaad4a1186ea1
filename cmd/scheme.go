package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/themer-cli/themer/color"
	"github.com/themer-cli/themer/icon"
	"github.com/themer-cli/themer/palette"
	"github.com/themer-cli/themer/style"
	"github.com/themer-cli/themer/theme"
	"github.com/themer-cli/themer/util"
)

func schemeNames() []string { return palette.Names() }
func designNames() []string { return stringsOf(theme.Designs()) }

func init() {
	rootCmd.AddCommand(schemeCmd)
	schemeCmd.AddCommand(schemeListCmd)

	rootCmd.AddCommand(designCmd)
	designCmd.AddCommand(designListCmd)
}

var schemeCmd = &cobra.Command{
	Use:               "scheme [name]",
	Short:             "Print or set the color scheme",
	Annotations:       needsProvider,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeFrom(schemeNames),
	Run: func(cmd *cobra.Command, args []string) {
		p := themeProvider(cmd)

		if len(args) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), p.Snapshot().Scheme.String())
			return
		}

		scheme, err := theme.ParseScheme(expand(args[0], schemeNames()))
		handleErr(err)

		s := p.SetColorScheme(scheme)
		success(cmd.OutOrStdout(), "color scheme set to %s", style.Build(s.Colors, s.Design).RenderTitle(s.Scheme.String()))
	},
}

var schemeListCmd = &cobra.Command{
	Use:         "list",
	Short:       "List color schemes",
	Annotations: needsProvider,
	Args:        cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		current := themeProvider(cmd).Snapshot()

		for _, scheme := range theme.Schemes() {
			colors := palette.For(scheme, current.IsDark)
			if scheme == current.Scheme {
				colors = current.Colors
			}

			marker := "  "
			if scheme == current.Scheme {
				marker = style.Fg(color.Green)(icon.Get(icon.Selected)) + " "
			}

			cmd.Printf("%s%-8s %s\n", marker, scheme, style.Swatch(colors.Primary))
		}

		fmt.Fprintln(cmd.OutOrStdout(), style.Faint(util.Quantify(len(theme.Schemes()), "scheme", "schemes")))
	},
}

var designCmd = &cobra.Command{
	Use:               "design [name]",
	Short:             "Print or set the ui design",
	Annotations:       needsProvider,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeFrom(designNames),
	Run: func(cmd *cobra.Command, args []string) {
		p := themeProvider(cmd)

		if len(args) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), p.Snapshot().Design.String())
			return
		}

		design, err := theme.ParseDesign(expand(args[0], designNames()))
		handleErr(err)

		s := p.SetUIDesign(design)
		success(cmd.OutOrStdout(), "ui design set to %s", style.Fg(color.Cyan)(s.Design.String()))
	},
}

var designListCmd = &cobra.Command{
	Use:         "list",
	Short:       "List ui designs",
	Annotations: needsProvider,
	Args:        cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		current := themeProvider(cmd).Snapshot()

		for _, design := range theme.Designs() {
			marker := "  "
			if design == current.Design {
				marker = style.Fg(color.Green)(icon.Get(icon.Selected)) + " "
			}

			styles := style.Build(current.Colors, design)
			fmt.Fprintln(cmd.OutOrStdout(), marker + styles.RenderTitle(util.Capitalize(design.String())) + style.Faint(fmt.Sprintf(" (%s)", design)))
		}
	},
}
