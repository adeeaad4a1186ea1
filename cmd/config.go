package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/themer-cli/themer/appearance"
	"github.com/themer-cli/themer/color"
	"github.com/themer-cli/themer/config"
	"github.com/themer-cli/themer/constant"
	"github.com/themer-cli/themer/filesystem"
	"github.com/themer-cli/themer/icon"
	"github.com/themer-cli/themer/key"
	"github.com/themer-cli/themer/open"
	"github.com/themer-cli/themer/storage"
	"github.com/themer-cli/themer/style"
	"github.com/themer-cli/themer/theme"
	"github.com/themer-cli/themer/where"
)

func errUnknownKey(k string) error {
	return &theme.UnknownValueError{
		Field: "config key",
		Value: k,
		Known: lo.Keys(config.Default),
	}
}

// allowed lists the accepted values of enumerated config keys.
var allowed = map[string]func() []string{
	key.StorageBackend:      storage.Backends,
	key.IconsVariant:        icon.AvailableVariants,
	key.AppearanceDetectors: appearance.DetectorNames,
	key.LogsLevel: func() []string {
		return []string{"panic", "fatal", "error", "warn", "info", "debug", "trace"}
	},
}

// parseValue converts raw command line values into the type of field.
func parseValue(field config.Field, raw []string) (any, error) {
	if len(raw) == 0 {
		return nil, errors.New("value is required")
	}

	check := func(values ...string) error {
		known, ok := allowed[field.Key]
		if !ok {
			return nil
		}

		for _, v := range values {
			if !lo.Contains(known(), v) {
				return &theme.UnknownValueError{Field: field.Key, Value: v, Known: known()}
			}
		}
		return nil
	}

	switch field.Value.(type) {
	case string:
		return raw[0], check(raw[0])
	case int:
		parsed, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid integer value: %s", raw[0])
		}
		return parsed, nil
	case bool:
		parsed, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value: %s", raw[0])
		}
		return parsed, nil
	case time.Duration:
		parsed, err := time.ParseDuration(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid duration value: %s", raw[0])
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("duration must be positive: %s", raw[0])
		}
		return parsed, nil
	case []string:
		return raw, check(raw...)
	default:
		return nil, fmt.Errorf("unsupported type %T", field.Value)
	}
}

func writeConfig() error {
	switch err := viper.WriteConfig(); err.(type) {
	case viper.ConfigFileNotFoundError:
		return viper.SafeWriteConfig()
	default:
		return err
	}
}

func configFilePath() string {
	return filepath.Join(where.Config(), fmt.Sprintf("%s.%s", constant.Themer, "toml"))
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage themer configuration",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Configuration keys to describe")
	configInfoCmd.Flags().BoolP("json", "j", false, "Output as json")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configInfoCmd.SetOut(os.Stdout)
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe configuration fields",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			keys   = lo.Must(cmd.Flags().GetStringSlice("key"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			fields = lo.Values(config.Default)
		)

		if len(keys) > 0 {
			fields = make([]config.Field, 0, len(keys))

			for _, k := range keys {
				field, ok := config.Default[k]
				if !ok {
					handleErr(errUnknownKey(k))
				}

				fields = append(fields, field)
			}
		}

		sort.Slice(fields, func(i, j int) bool {
			return fields[i].Key < fields[j].Key
		})

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			lo.Must0(encoder.Encode(lo.ToSlicePtr(fields)))
			return
		}

		for i, field := range fields {
			cmd.Print(field.Pretty())

			if i < len(fields)-1 {
				fmt.Fprintln(cmd.OutOrStdout())
				fmt.Fprintln(cmd.OutOrStdout())
			}
		}
		fmt.Fprintln(cmd.OutOrStdout())
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configSetCmd.Flags().StringP("key", "k", "", "The key to set")
	configSetCmd.Flags().StringSliceP("value", "v", []string{}, "The new value")
	_ = configSetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configSetCmd = &cobra.Command{
	Use:               "set [key] [value...]",
	Short:             "Set a configuration value",
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			k     string
			value []string
		)

		flagKey := lo.Must(cmd.Flags().GetString("key"))
		flagValue := lo.Must(cmd.Flags().GetStringSlice("value"))

		switch {
		case len(args) >= 1:
			k = args[0]
		case flagKey != "":
			k = flagKey
		default:
			handleErr(errors.New("key is required as an argument or --key flag"))
		}

		switch {
		case len(args) >= 2:
			value = args[1:]
		case len(flagValue) > 0:
			value = flagValue
		default:
			handleErr(errors.New("value is required as an argument or --value flag"))
		}

		field, ok := config.Default[k]
		if !ok {
			handleErr(errUnknownKey(k))
		}

		v, err := parseValue(field, value)
		handleErr(err)

		viper.Set(k, v)
		handleErr(writeConfig())

		success(
			cmd.OutOrStdout(),
			"set %s to %s",
			style.Fg(color.Purple)(k),
			style.Fg(color.Yellow)(fmt.Sprintf("%v", v)),
		)
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configGetCmd.Flags().StringP("key", "k", "", "The key to get")
	_ = configGetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Print a configuration value",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		var k string
		flagKey := lo.Must(cmd.Flags().GetString("key"))

		switch {
		case len(args) >= 1:
			k = args[0]
		case flagKey != "":
			k = flagKey
		default:
			handleErr(errors.New("key is required as an argument or --key flag"))
		}

		if _, ok := config.Default[k]; !ok {
			handleErr(errUnknownKey(k))
		}

		fmt.Fprintln(cmd.OutOrStdout(), viper.Get(k))
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current configuration to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := configFilePath()

		if lo.Must(cmd.Flags().GetBool("force")) {
			handleErr(filesystem.API().Remove(path))
		}

		handleErr(viper.SafeWriteConfig())
		success(cmd.OutOrStdout(), "wrote config to %s", path)
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Delete the config file",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(filesystem.API().Remove(configFilePath()))
		success(cmd.OutOrStdout(), "deleted config")
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)

	configResetCmd.Flags().StringP("key", "k", "", "The key to reset")
	configResetCmd.Flags().BoolP("all", "a", false, "Reset every key")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	_ = configResetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore configuration defaults",
	PreRun: func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("key") && !cmd.Flags().Changed("all") {
			handleErr(errors.New("either --key or --all must be set"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		var (
			k   = lo.Must(cmd.Flags().GetString("key"))
			all = lo.Must(cmd.Flags().GetBool("all"))
		)

		if all {
			for k, field := range config.Default {
				viper.Set(k, field.Value)
			}
		} else if field, ok := config.Default[k]; !ok {
			handleErr(errUnknownKey(k))
		} else {
			viper.Set(k, field.Value)
		}

		handleErr(writeConfig())

		if all {
			success(cmd.OutOrStdout(), "reset all config values")
			return
		}

		success(
			cmd.OutOrStdout(),
			"reset %s to default value %s",
			style.Fg(color.Purple)(k),
			style.Fg(color.Yellow)(fmt.Sprintf("%v", config.Default[k].Value)),
		)
	},
}

func init() {
	configCmd.AddCommand(configEditCmd)
	configEditCmd.Flags().StringP("with", "w", "", "Application to open the config file with")
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file, creating it first if needed",
	Run: func(cmd *cobra.Command, args []string) {
		path := configFilePath()

		exists, err := filesystem.API().Exists(path)
		handleErr(err)

		if !exists {
			handleErr(viper.SafeWriteConfig())
		}

		handleErr(open.StartWith(path, lo.Must(cmd.Flags().GetString("with"))))
	},
}
