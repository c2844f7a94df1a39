package circle

import "math"

// Circle is a circle whose size is stored only as its radius. Diameter, area
// and circumference are computed from the radius and the instance's π on
// read, and converted back into a radius on write, so no two size
// properties can disagree.
type Circle struct {
	pi      float64 // 0 means math.Pi; SetPrecision never stores 0.
	radius  float64
	centerX float64
	centerY float64
}

// New returns a circle of radius 0 centered at the origin.
func New() *Circle {
	return &Circle{}
}

// NewWithRadius returns a circle centered at the origin with the given radius.
// The radius is checked the same way SetRadius checks it.
func NewWithRadius(radius float64) (*Circle, error) {
	c := New()
	if err := c.SetRadius(radius); err != nil {
		return nil, err
	}
	return c, nil
}

// Pi returns the value of π this circle uses for area and circumference.
func (c *Circle) Pi() float64 {
	if c.pi == 0 {
		return math.Pi
	}
	return c.pi
}

// Radius returns the stored radius.
func (c *Circle) Radius() float64 {
	return c.radius
}

// SetRadius stores a finite, non-negative radius.
func (c *Circle) SetRadius(value float64) error {
	if err := checkSize(value, fieldRadius); err != nil {
		return err
	}
	c.radius = value
	return nil
}

// Diameter returns twice the radius.
func (c *Circle) Diameter() float64 {
	return 2 * c.radius
}

// SetDiameter stores half of value as the radius.
func (c *Circle) SetDiameter(value float64) error {
	if err := checkSize(value, fieldDiameter); err != nil {
		return err
	}
	c.radius = value / 2
	return nil
}

// Area returns π·r².
func (c *Circle) Area() float64 {
	return c.Pi() * c.radius * c.radius
}

// SetArea stores sqrt(value/π) as the radius.
func (c *Circle) SetArea(value float64) error {
	if err := checkSize(value, fieldArea); err != nil {
		return err
	}
	c.radius = math.Sqrt(value / c.Pi())
	return nil
}

// Circumference returns 2·π·r.
func (c *Circle) Circumference() float64 {
	return 2 * c.Pi() * c.radius
}

// SetCircumference stores value/2/π as the radius.
func (c *Circle) SetCircumference(value float64) error {
	if err := checkSize(value, fieldCircumference); err != nil {
		return err
	}
	c.radius = value / 2 / c.Pi()
	return nil
}

// CenterX returns the x-coordinate of the center.
func (c *Circle) CenterX() float64 {
	return c.centerX
}

// SetCenterX sets the x-coordinate of the center. Any finite value is accepted.
func (c *Circle) SetCenterX(value float64) error {
	if err := checkFinite(value, fieldX); err != nil {
		return err
	}
	c.centerX = value
	return nil
}

// CenterY returns the y-coordinate of the center.
func (c *Circle) CenterY() float64 {
	return c.centerY
}

// SetCenterY sets the y-coordinate of the center. Any finite value is accepted.
func (c *Circle) SetCenterY(value float64) error {
	if err := checkFinite(value, fieldY); err != nil {
		return err
	}
	c.centerY = value
	return nil
}

// Center returns both center coordinates.
func (c *Circle) Center() (x, y float64) {
	return c.centerX, c.centerY
}

// SetCenter moves the center. Both coordinates are checked before either is
// stored.
func (c *Circle) SetCenter(x, y float64) error {
	if err := checkFinite(x, fieldX); err != nil {
		return err
	}
	if err := checkFinite(y, fieldY); err != nil {
		return err
	}
	c.centerX, c.centerY = x, y
	return nil
}
