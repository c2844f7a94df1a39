package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/circles/pkg/circle"
)

// comparison is the printable result of classifying a point.
type comparison struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Result   int     `json:"result"`
	Position string  `json:"position"`
}

func newCompareCmd(a *app) *cobra.Command {
	var (
		f         circleFlags
		tolerance string
	)
	cmd := &cobra.Command{
		Use:   "compare <x> <y>",
		Short: "Report whether a point is inside (-1), on (0) or outside (1) a circle",
		Long: "compare measures the distance from the point to the center of the circle.\n" +
			"The boundary test is exact unless --tolerance is given. Use -- before\n" +
			"negative coordinates.",
		Example: "  circle compare --radius 5 3 4\n" +
			"  circle compare --radius 1 --tolerance 1e-9 -- -0.6 0.8",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			px, err := circle.ParseNumber(args[0], "point x")
			if err != nil {
				return err
			}
			py, err := circle.ParseNumber(args[1], "point y")
			if err != nil {
				return err
			}
			tol := 0.0
			if cmd.Flags().Changed("tolerance") {
				if tol, err = circle.ParseNumber(tolerance, "tolerance"); err != nil {
					return err
				}
			}

			c, err := a.build(cmd, &f)
			if err != nil {
				return err
			}
			pos, err := c.ComparePointWithin(px, py, tol)
			if err != nil {
				return err
			}
			a.log.Debug("point classified",
				zap.Float64("x", px),
				zap.Float64("y", py),
				zap.Float64("tolerance", tol),
				zap.Stringer("position", pos))

			asJSON, err := a.jsonOutput(cmd)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), comparison{X: px, Y: py, Result: int(pos), Position: pos.String()})
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", int(pos), pos)
			return err
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&tolerance, "tolerance", "", "distance from the boundary still counted as on it (default exact)")
	return cmd
}
