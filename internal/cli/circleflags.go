package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/circles/pkg/circle"
)

// circleFlags holds the flags that describe a circle. Values are kept as text
// and parsed by circle.ParseNumber so that malformed input is reported as a
// type mismatch naming the field.
type circleFlags struct {
	radius        string
	diameter      string
	area          string
	circumference string
	x             string
	y             string
	precision     string
	round         bool
}

// errRoundNeedsPrecision rejects --round when no precision is given by flag
// or configuration.
var errRoundNeedsPrecision = errors.New("--round requires --precision or a configured precision")

// sizeFlags lists the size flags, each named after the circle property it sets.
var sizeFlags = []string{
	circle.PropertyRadius,
	circle.PropertyDiameter,
	circle.PropertyArea,
	circle.PropertyCircumference,
}

func (f *circleFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.radius, circle.PropertyRadius, "", "radius of the circle")
	fs.StringVar(&f.diameter, circle.PropertyDiameter, "", "diameter of the circle")
	fs.StringVar(&f.area, circle.PropertyArea, "", "area of the circle")
	fs.StringVar(&f.circumference, circle.PropertyCircumference, "", "circumference of the circle")
	fs.StringVar(&f.x, "x", "", "x-coordinate of the center (default 0)")
	fs.StringVar(&f.y, "y", "", "y-coordinate of the center (default 0)")
	fs.StringVar(&f.precision, "precision", "", "decimal places kept in pi, 0-15 (default: config or full precision)")
	fs.BoolVar(&f.round, "round", false, "round the last digit of pi instead of truncating (requires a precision)")
	cmd.MarkFlagsMutuallyExclusive(sizeFlags...)
}

func (f *circleFlags) size(property string) string {
	switch property {
	case circle.PropertyRadius:
		return f.radius
	case circle.PropertyDiameter:
		return f.diameter
	case circle.PropertyArea:
		return f.area
	default:
		return f.circumference
	}
}

// build assembles a circle. Precision is applied first so that an area or
// circumference is converted with the configured pi.
func (a *app) build(cmd *cobra.Command, f *circleFlags) (*circle.Circle, error) {
	c := circle.New()

	if err := a.applyPrecision(cmd, f, c); err != nil {
		return nil, err
	}

	for _, property := range sizeFlags {
		if !cmd.Flags().Changed(property) {
			continue
		}
		v, err := circle.ParseNumber(f.size(property), property)
		if err != nil {
			return nil, err
		}
		if err := c.Set(property, v); err != nil {
			return nil, err
		}
	}

	for _, coord := range []struct{ name, value string }{{"x", f.x}, {"y", f.y}} {
		if !cmd.Flags().Changed(coord.name) {
			continue
		}
		v, err := circle.ParseNumber(coord.value, coord.name)
		if err != nil {
			return nil, err
		}
		if err := c.Set(coord.name, v); err != nil {
			return nil, err
		}
	}

	x, y := c.Center()
	a.log.Debug("circle built",
		zap.Float64("radius", c.Radius()),
		zap.Float64("pi", c.Pi()),
		zap.Float64("x", x),
		zap.Float64("y", y))
	return c, nil
}

// applyPrecision sets pi from --precision/--round, falling back to the config
// file for whichever flag was not given. Nothing happens when no precision is
// configured anywhere, except that an explicit --round is rejected.
func (a *app) applyPrecision(cmd *cobra.Command, f *circleFlags, c *circle.Circle) error {
	var places, round any
	switch {
	case cmd.Flags().Changed("precision"):
		p, err := circle.ParseNumber(f.precision, "precision")
		if err != nil {
			return err
		}
		places = p
	case a.config.IsSet(cfgKeyPrecision):
		places = configValue(a.config, cfgKeyPrecision)
	case cmd.Flags().Changed("round"):
		return errRoundNeedsPrecision
	default:
		return nil
	}

	if cmd.Flags().Changed("round") {
		round = f.round
	} else {
		round = configValue(a.config, cfgKeyRound)
	}
	return c.SetPrecisionValue(places, round)
}
