// Package cmd implements the command-line interface for spectra.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spectra-cli/spectra/color"
	"github.com/spectra-cli/spectra/constant"
	"github.com/spectra-cli/spectra/icon"
	"github.com/spectra-cli/spectra/inline"
	"github.com/spectra-cli/spectra/key"
	"github.com/spectra-cli/spectra/log"
	"github.com/spectra-cli/spectra/palette"
	"github.com/spectra-cli/spectra/style"
	"github.com/spectra-cli/spectra/util"
	"github.com/spectra-cli/spectra/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().StringSliceP("colors", "c", []string{}, "Explicit anchor colors (names, hex strings, or rgb() tuples)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("colors", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return color.Names(), cobra.ShellCompDirectiveNoFileComp
	}))

	rootCmd.Flags().StringP("palette", "p", "", "Use a named palette for the anchor colors")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("palette", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, p := range palette.Builtins() {
			names = append(names, p.Name)
		}
		customs, _ := palette.Customs()
		for _, p := range customs {
			names = append(names, p.Name)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}))

	rootCmd.Flags().IntP("hues", "H", 0, "Number of anchor colors for auto-generated palettes")
	lo.Must0(viper.BindPFlag(key.GradientHues, rootCmd.Flags().Lookup("hues")))

	rootCmd.Flags().BoolP("rainbow", "r", false, "Span the full 10-hue spectrum")
	lo.Must0(viper.BindPFlag(key.GradientRainbow, rootCmd.Flags().Lookup("rainbow")))

	rootCmd.Flags().BoolP("invert", "i", false, "Reverse the direction of auto-generated palettes")
	lo.Must0(viper.BindPFlag(key.GradientInvert, rootCmd.Flags().Lookup("invert")))

	rootCmd.Flags().BoolP("sample", "b", false, "Replace every character with a full block, showing colors only")
	rootCmd.Flags().StringP("style", "s", "", "Base style composed under every span, e.g. \"bold italic\"")
	lo.Must0(viper.BindPFlag(key.StyleDefault, rootCmd.Flags().Lookup("style")))

	rootCmd.Flags().IntP("wrap", "w", 0, "Wrap output at this column (0 = terminal width, -1 = off)")
	lo.Must0(viper.BindPFlag(key.OutputWrap, rootCmd.Flags().Lookup("wrap")))

	rootCmd.Flags().BoolP("json", "j", false, "Emit the computed spans as a JSON document instead of ANSI output")

	rootCmd.MarkFlagsMutuallyExclusive("colors", "palette")
	rootCmd.MarkFlagsMutuallyExclusive("colors", "rainbow")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd renders a gradient over the argument text, or stdin when piped.
var rootCmd = &cobra.Command{
	Use:   constant.Spectra + " [text...]",
	Short: "Render text as a smooth color gradient on the terminal",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.Violet.Lipgloss()).Render("    - Render text as a smooth color gradient on the terminal"),
	Example: "  spectra \"the quick brown fox\" -c red,magenta,violet -s bold\n" +
		"  fortune | spectra --rainbow",
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		text := strings.Join(args, " ")
		if text == "" {
			stdin, err := io.ReadAll(cmd.InOrStdin())
			handleErr(err)
			text = strings.TrimRight(string(stdin), "\n")
		}
		if text == "" {
			handleErr(cmd.Help())
			return
		}

		wrap := viper.GetInt(key.OutputWrap)
		if wrap == 0 {
			if width, _, err := util.TerminalSize(); err == nil {
				wrap = width
			}
		}

		options := &inline.Options{
			Text:        text,
			ColorTokens: lo.Must(cmd.Flags().GetStringSlice("colors")),
			Hues:        viper.GetInt(key.GradientHues),
			Rainbow:     viper.GetBool(key.GradientRainbow),
			Invert:      viper.GetBool(key.GradientInvert),
			Sample:      lo.Must(cmd.Flags().GetBool("sample")),
			Wrap:        wrap,
			Json:        lo.Must(cmd.Flags().GetBool("json")),
			Out:         cmd.OutOrStdout(),
		}

		if name := lo.Must(cmd.Flags().GetString("palette")); name != "" {
			options.Palette = mo.Some(name)
		}
		if raw := viper.GetString(key.StyleDefault); raw != "" {
			options.Style = mo.Some(raw)
		}

		handleErr(inline.Run(options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiMagenta + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
