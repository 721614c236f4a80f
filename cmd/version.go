package cmd

import (
	"fmt"
	"runtime"

	"github.com/spectra-cli/spectra/color"
	"github.com/spectra-cli/spectra/constant"
	"github.com/spectra-cli/spectra/style"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the " + constant.Spectra + " version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf(
			"%s version %s %s/%s\n",
			style.Render(color.Magenta)(constant.Spectra),
			style.Bold(constant.Version),
			runtime.GOOS,
			runtime.GOARCH,
		)
	},
}
