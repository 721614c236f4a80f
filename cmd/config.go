package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spectra-cli/spectra/config"
	"github.com/spectra-cli/spectra/icon"
	"github.com/spectra-cli/spectra/where"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func errUnknownKey(key string) error {
	closest := lo.MinBy(lo.Keys(config.Default), func(a, b string) bool {
		return levenshtein.Distance(key, a) < levenshtein.Distance(key, b)
	})
	return fmt.Errorf("unknown key %s, did you mean %s?", strconv.Quote(key), strconv.Quote(closest))
}

func completionConfigKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Various config actions",
	Args:  cobra.NoArgs,
}

func init() {
	configCmd.AddCommand(configInfoCmd)

	configInfoCmd.Flags().StringP("key", "k", "", "Show only the given key")
	lo.Must0(configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys))
	configInfoCmd.Flags().BoolP("json", "j", false, "Output as JSON")
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the info for each config field with description",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		asJson := lo.Must(cmd.Flags().GetBool("json"))

		printField := func(f config.Field) {
			if asJson {
				fmt.Println(string(lo.Must(json.Marshal(&f))))
			} else {
				fmt.Print(f.Pretty())
			}
		}

		if key := lo.Must(cmd.Flags().GetString("key")); key != "" {
			field, ok := config.Default[key]
			if !ok {
				handleErr(errUnknownKey(key))
			}

			printField(field)
			return
		}

		fields := lo.Values(config.Default)
		for _, field := range fields {
			printField(field)
		}
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)

	configSetCmd.Flags().StringP("key", "k", "", "Key to set")
	lo.Must0(configSetCmd.MarkFlagRequired("key"))
	lo.Must0(configSetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys))

	configSetCmd.Flags().StringP("value", "v", "", "Value to set")
	lo.Must0(configSetCmd.MarkFlagRequired("value"))
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set a config value",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		key := lo.Must(cmd.Flags().GetString("key"))
		raw := lo.Must(cmd.Flags().GetString("value"))

		field, ok := config.Default[key]
		if !ok {
			handleErr(errUnknownKey(key))
		}

		var value any
		var err error

		switch field.Value.(type) {
		case string:
			value = raw
		case int:
			value, err = strconv.Atoi(raw)
			handleErr(err)
		case bool:
			value, err = strconv.ParseBool(raw)
			handleErr(err)
		default:
			handleErr(fmt.Errorf("unsupported type %T for key %s", field.Value, key))
		}

		viper.Set(key, value)

		switch err := viper.WriteConfig(); err.(type) {
		case viper.ConfigFileNotFoundError:
			handleErr(viper.SafeWriteConfig())
		default:
			handleErr(err)
		}

		fmt.Printf("%s set %s to %v\n", icon.Get(icon.Success), key, value)
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)

	configGetCmd.Flags().StringP("key", "k", "", "Key to get")
	lo.Must0(configGetCmd.MarkFlagRequired("key"))
	lo.Must0(configGetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys))
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a config value",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		key := lo.Must(cmd.Flags().GetString("key"))

		if _, ok := config.Default[key]; !ok {
			handleErr(errUnknownKey(key))
		}

		fmt.Println(viper.Get(key))
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write current config to the file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		switch err := viper.WriteConfig(); err.(type) {
		case viper.ConfigFileNotFoundError:
			handleErr(viper.SafeWriteConfig())
		default:
			handleErr(err)
		}

		fmt.Printf("%s wrote config to %s\n", icon.Get(icon.Success), where.Config())
	},
}
