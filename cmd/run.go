package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spectra-cli/spectra/filesystem"
	"github.com/spectra-cli/spectra/icon"
	"github.com/spectra-cli/spectra/palette/custom"
	"github.com/spectra-cli/spectra/util"
	"github.com/spectra-cli/spectra/where"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("install", "i", false, "Copy the file into the palettes directory after loading it")
}

// runCmd loads a Lua palette script, reports the colors it yields, and
// optionally installs it so ByName picks it up.
var runCmd = &cobra.Command{
	Use:   "run <file.lua>",
	Short: "Load a Lua palette file and preview its colors",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]

		name, colors, err := custom.Load(path)
		handleErr(err)

		line, err := paletteLine(name, colors)
		handleErr(err)

		fmt.Printf("%s %s %s\n", icon.Get(icon.Lua), line, swatches(colors))

		if install, _ := cmd.Flags().GetBool("install"); install {
			target := filepath.Join(where.Palettes(), util.FileStem(path)+".lua")

			contents, err := filesystem.API().ReadFile(path)
			handleErr(err)
			handleErr(filesystem.API().WriteFile(target, contents, 0644))

			fmt.Printf("%s Installed as %s\n", icon.Get(icon.Success), target)
		}
	},
}
