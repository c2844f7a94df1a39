package circle

import "math"

// MaxDecimalPlaces is the largest precision SetPrecision keeps; larger
// requests are clamped to it.
const MaxDecimalPlaces = 15

// SetPrecision replaces this circle's π with math.Pi cut to decimalPlaces
// digits after the point. decimalPlaces is rounded to the nearest integer
// and clamped into [0, MaxDecimalPlaces]. The last digit is rounded when
// round is true and truncated otherwise.
//
// The stored radius is left alone; only later area and circumference
// computations see the new π.
func (c *Circle) SetPrecision(decimalPlaces float64, round bool) error {
	if err := checkFinite(decimalPlaces, fieldDecimalPlaces); err != nil {
		return err
	}
	c.pi = piWithPrecision(clampDecimalPlaces(decimalPlaces), round)
	return nil
}

// SetPrecisionValue is SetPrecision for untyped input, such as values decoded
// from a config file. decimalPlaces must be a Go numeric kind and round a bool.
func (c *Circle) SetPrecisionValue(decimalPlaces, round any) error {
	places, err := toNumber(decimalPlaces, fieldDecimalPlaces)
	if err != nil {
		return err
	}
	r, ok := round.(bool)
	if !ok {
		return typeMismatch(fieldRound, "boolean")
	}
	c.pi = piWithPrecision(clampDecimalPlaces(places), r)
	return nil
}

// clampDecimalPlaces rounds half away from zero, then clamps.
func clampDecimalPlaces(decimalPlaces float64) int {
	places := math.Round(decimalPlaces)
	switch {
	case places < 0:
		return 0
	case places > MaxDecimalPlaces:
		return MaxDecimalPlaces
	default:
		return int(places)
	}
}

func piWithPrecision(places int, round bool) float64 {
	factor := math.Pow10(places)
	scaled := math.Pi * factor
	if round {
		scaled = math.Round(scaled)
	} else {
		scaled = math.Trunc(scaled)
	}
	return scaled / factor
}
