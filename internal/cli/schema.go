package cli

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/oleworks/vbactl/pkg/vbacmd"
)

func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the result document",
		RunE: func(cc *cobra.Command, _ []string) error {
			r := &jsonschema.Reflector{
				DoNotReference: true,
				ExpandedStruct: true,
			}
			schema := r.Reflect(&vbacmd.Result{})

			data, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal schema: %w", err)
			}
			cc.Println(string(data))

			return nil
		},
		SilenceUsage: true,
	}
}
