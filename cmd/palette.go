package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spectra-cli/spectra/color"
	"github.com/spectra-cli/spectra/constant"
	"github.com/spectra-cli/spectra/filesystem"
	"github.com/spectra-cli/spectra/gradient"
	"github.com/spectra-cli/spectra/icon"
	"github.com/spectra-cli/spectra/palette"
	"github.com/spectra-cli/spectra/render"
	"github.com/spectra-cli/spectra/style"
	"github.com/spectra-cli/spectra/util"
	"github.com/spectra-cli/spectra/where"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(paletteCmd)

	paletteCmd.Flags().BoolP("pick", "p", false, "Interactively pick a palette and print its name")
	paletteCmd.Flags().BoolP("customs-only", "c", false, "List only custom palettes")
}

var paletteCmd = &cobra.Command{
	Use:     "palette",
	Short:   "List available color palettes",
	Aliases: []string{"palettes"},
	Run: func(cmd *cobra.Command, args []string) {
		customsOnly := lo.Must(cmd.Flags().GetBool("customs-only"))

		var palettes []palette.Palette
		if !customsOnly {
			palettes = palette.Builtins()
		}

		customs, errs := palette.Customs()
		for _, err := range errs {
			fmt.Printf("%s %s\n", icon.Get(icon.Fail), err)
		}
		palettes = append(palettes, customs...)

		if lo.Must(cmd.Flags().GetBool("pick")) {
			names := lo.Map(palettes, func(p palette.Palette, _ int) string {
				return p.Name
			})

			var picked string
			handleErr(survey.AskOne(&survey.Select{
				Message: "Pick a palette",
				Options: names,
			}, &picked))

			fmt.Println(picked)
			return
		}

		for _, p := range palettes {
			fmt.Printf("%s %s %s\n", icon.Get(icon.Palette), style.Bold(p.Name), swatches(p.Colors))
		}
	},
}

func init() {
	paletteCmd.AddCommand(paletteNewCmd)

	paletteNewCmd.Flags().StringP("name", "n", "", "Name of the new palette")
	lo.Must0(paletteNewCmd.MarkFlagRequired("name"))
}

// paletteNewCmd scaffolds a Lua palette file in the palettes directory.
var paletteNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Scaffold a new Lua palette file using a predefined template",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SetOut(os.Stdout)

		var author string
		usr, err := user.Current()
		if err == nil {
			author = usr.Username
		} else {
			author = "Anonymous"
		}

		s := struct {
			Name     string
			Author   string
			ColorsFn string
		}{
			Name:     lo.Must(cmd.Flags().GetString("name")),
			Author:   author,
			ColorsFn: constant.PaletteColorsFn,
		}

		funcMap := template.FuncMap{
			"repeat": strings.Repeat,
			"plus":   func(a, b int) int { return a + b },
			"max":    util.Max[int],
		}

		tmpl, err := template.New("palette").Funcs(funcMap).Parse(constant.PaletteTemplate)
		handleErr(err)

		target := filepath.Join(where.Palettes(), util.SanitizeFilename(s.Name)+".lua")
		f, err := filesystem.API().Create(target)
		handleErr(err)

		defer util.Ignore(f.Close)

		handleErr(tmpl.Execute(f, s))

		cmd.Println(target)
	},
}

// swatches renders one block per anchor color so a palette can be
// eyeballed without generating a gradient.
func swatches(colors []color.Color) string {
	var b strings.Builder
	for _, c := range colors {
		b.WriteString(style.Render(c)(gradient.SampleBlock))
	}
	return b.String()
}

// preview of a palette applied to its own name, used by the run command.
func paletteLine(name string, colors []color.Color) (string, error) {
	g, err := gradient.New(gradient.Plain(name), gradient.Options{Colors: colors})
	if err != nil {
		return "", err
	}

	return render.FromGradient(g).Render(), nil
}
