package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPiCmd(a *app) *cobra.Command {
	var f circleFlags
	cmd := &cobra.Command{
		Use:     "pi",
		Short:   "Print the value of pi for the configured precision",
		Example: "  circle pi --precision 4 --round",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.build(cmd, &f)
			if err != nil {
				return err
			}
			asJSON, err := a.jsonOutput(cmd)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]float64{"pi": c.Pi()})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatFloat(c.Pi()))
			return err
		},
	}
	cmd.Flags().StringVar(&f.precision, "precision", "", "decimal places kept in pi, 0-15 (default: config or full precision)")
	cmd.Flags().BoolVar(&f.round, "round", false, "round the last digit of pi instead of truncating (requires a precision)")
	return cmd
}
