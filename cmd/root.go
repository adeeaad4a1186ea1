// Package cmd implements the themer command-line interface.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/themer-cli/themer/appearance"
	"github.com/themer-cli/themer/color"
	"github.com/themer-cli/themer/constant"
	"github.com/themer-cli/themer/icon"
	"github.com/themer-cli/themer/key"
	"github.com/themer-cli/themer/log"
	"github.com/themer-cli/themer/provider"
	"github.com/themer-cli/themer/storage"
	"github.com/themer-cli/themer/style"
	"github.com/themer-cli/themer/tui"
	"github.com/themer-cli/themer/version"
)

// annotationProvider marks commands that run with a theme provider in their context.
const annotationProvider = "provider"

var needsProvider = map[string]string{annotationProvider: "true"}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the icon variant (plain, emoji, nerd)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("storage", "S", "", "Where preferences are persisted (local, keyring, memory)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("storage", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return storage.Backends(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.StorageBackend, rootCmd.PersistentFlags().Lookup("storage")))

	rootCmd.PersistentFlags().StringP("appearance", "A", appearance.OverrideSystem, "Host appearance to assume (light, dark, system)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("appearance", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{appearance.OverrideLight, appearance.OverrideDark, appearance.OverrideSystem}, cobra.ShellCompDirectiveNoFileComp
	}))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd opens the interactive settings screen.
var rootCmd = &cobra.Command{
	Use:   constant.Themer,
	Short: "Manage terminal theme preferences",
	Long: style.New().Bold(true).Foreground(color.HiPurple).Render(constant.Themer) + "\n" +
		style.New().Italic(true).Foreground(color.HiCyan).Render("    - Pick a mode, color scheme and ui design once and share them everywhere"),
	Annotations: needsProvider,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations[annotationProvider] != "true" {
			return nil
		}

		ctx, err := openProvider(cmd)
		if err != nil {
			return err
		}

		cmd.SetContext(ctx)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeProvider()
	},
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(tui.Run(cmd.Context()))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		closeProvider()
		handleErr(err)
	}
}

func handleErr(err error) {
	if err != nil {
		closeProvider()
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

// themeProvider returns the provider opened for cmd.
func themeProvider(cmd *cobra.Command) *provider.Provider {
	return provider.MustFromContext(cmd.Context())
}
