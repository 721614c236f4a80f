package cmd

import (
	"strings"

	"github.com/samber/lo"
	"github.com/spectra-cli/spectra/key"
	"github.com/spectra-cli/spectra/style"
	"github.com/spectra-cli/spectra/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringP("text", "t", "", "Initial text to preview")
}

var previewCmd = &cobra.Command{
	Use:     "preview",
	Short:   "Interactively preview gradients in the terminal",
	Aliases: []string{"tui"},
	Args:    cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		text := lo.Must(cmd.Flags().GetString("text"))
		if text == "" {
			text = strings.Join(args, " ")
		}

		base, err := style.Parse(viper.GetString(key.StyleDefault))
		handleErr(err)

		handleErr(tui.Run(&tui.Options{
			Text:    text,
			Hues:    viper.GetInt(key.GradientHues),
			Rainbow: viper.GetBool(key.GradientRainbow),
			Invert:  viper.GetBool(key.GradientInvert),
			Style:   base,
		}))
	},
}
