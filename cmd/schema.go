package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spectra-cli/spectra/inline"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
}

// schemaCmd prints the JSON schema of the machine-readable output emitted
// by the root command's --json flag.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the --json output format",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := jsonschema.Reflector{
			DoNotReference: true,
			ExpandedStruct: true,
		}

		schema := reflector.Reflect(&inline.Output{})
		fmt.Println(string(lo.Must(json.MarshalIndent(schema, "", "  "))))
	},
}
