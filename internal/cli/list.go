package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available contracts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := rootOpts.registry.Names()
			out := cmd.OutOrStdout()

			if rootOpts.Format == "json" {
				return json.NewEncoder(out).Encode(map[string]any{"contracts": names})
			}
			for _, name := range names {
				if _, err := fmt.Fprintln(out, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
