package circle

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Position is where a point lies relative to a circle. Its integer values
// follow the comparison convention: negative inside, zero on, positive outside.
type Position int

const (
	Inside     Position = -1
	OnBoundary Position = 0
	Outside    Position = 1
)

func (p Position) String() string {
	switch p {
	case Inside:
		return "inside"
	case OnBoundary:
		return "on"
	case Outside:
		return "outside"
	default:
		return "unknown"
	}
}

// ComparePointToCircle classifies the point (x, y) by its distance from the
// center. The boundary test is an exact floating-point comparison, so points
// that are on the circle mathematically may be reported as Inside or Outside
// after rounding. Use ComparePointWithin when that matters.
func (c *Circle) ComparePointToCircle(x, y float64) (Position, error) {
	return c.ComparePointWithin(x, y, 0)
}

// ComparePointWithin is ComparePointToCircle with a tolerance: a point whose
// distance from the boundary is at most tolerance is OnBoundary.
func (c *Circle) ComparePointWithin(x, y, tolerance float64) (Position, error) {
	if err := checkFinite(x, fieldPointX); err != nil {
		return OnBoundary, err
	}
	if err := checkFinite(y, fieldPointY); err != nil {
		return OnBoundary, err
	}
	if err := checkSize(tolerance, fieldTolerance); err != nil {
		return OnBoundary, err
	}

	d := c.distance(r2.Vec{X: x, Y: y})
	switch {
	case math.Abs(d-c.radius) <= tolerance:
		return OnBoundary, nil
	case d < c.radius:
		return Inside, nil
	default:
		return Outside, nil
	}
}

// distance returns sqrt(dx²+dy²) from the center to p. It must stay exact for
// integer triples such as (99, 20) on radius 101, which math.Hypot is not.
func (c *Circle) distance(p r2.Vec) float64 {
	return math.Sqrt(r2.Norm2(r2.Sub(p, r2.Vec{X: c.centerX, Y: c.centerY})))
}
