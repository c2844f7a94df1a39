package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the release of the circle CLI.
const Version = "0.1.0"

const modulePath = "github.com/mesh-intelligence/circles"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the circle version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "circle v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
