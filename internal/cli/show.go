package cli

import (
	"encoding/json"
	"math"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/circles/pkg/circle"
)

// circleReport is the printable form of a circle.
type circleReport struct {
	Radius        float64 `json:"radius"`
	Diameter      float64 `json:"diameter"`
	Area          float64 `json:"area"`
	Circumference float64 `json:"circumference"`
	CenterX       float64 `json:"center_x"`
	CenterY       float64 `json:"center_y"`
	Pi            float64 `json:"pi"`
}

func newCircleReport(c *circle.Circle) circleReport {
	x, y := c.Center()
	return circleReport{
		Radius:        c.Radius(),
		Diameter:      c.Diameter(),
		Area:          c.Area(),
		Circumference: c.Circumference(),
		CenterX:       x,
		CenterY:       y,
		Pi:            c.Pi(),
	}
}

// MarshalJSON writes non-finite values, which a valid but very large circle
// can produce, as the same strings the text output uses ("+Inf").
func (r circleReport) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Radius        any `json:"radius"`
		Diameter      any `json:"diameter"`
		Area          any `json:"area"`
		Circumference any `json:"circumference"`
		CenterX       any `json:"center_x"`
		CenterY       any `json:"center_y"`
		Pi            any `json:"pi"`
	}{
		Radius:        jsonNumber(r.Radius),
		Diameter:      jsonNumber(r.Diameter),
		Area:          jsonNumber(r.Area),
		Circumference: jsonNumber(r.Circumference),
		CenterX:       jsonNumber(r.CenterX),
		CenterY:       jsonNumber(r.CenterY),
		Pi:            jsonNumber(r.Pi),
	})
}

func jsonNumber(f float64) any {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return formatFloat(f)
	}
	return f
}

func (r circleReport) rows() [][2]string {
	return [][2]string{
		{"radius", formatFloat(r.Radius)},
		{"diameter", formatFloat(r.Diameter)},
		{"area", formatFloat(r.Area)},
		{"circumference", formatFloat(r.Circumference)},
		{"center x", formatFloat(r.CenterX)},
		{"center y", formatFloat(r.CenterY)},
		{"pi", formatFloat(r.Pi)},
	}
}

func newShowCmd(a *app) *cobra.Command {
	var f circleFlags
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print every property of a circle",
		Example: "  circle show --radius 5\n" +
			"  circle show --area 50 --precision 2 --json",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.build(cmd, &f)
			if err != nil {
				return err
			}
			report := newCircleReport(c)
			asJSON, err := a.jsonOutput(cmd)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			return writeTable(cmd.OutOrStdout(), report.rows())
		},
	}
	f.register(cmd)
	return cmd
}
