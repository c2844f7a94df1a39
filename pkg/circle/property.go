package circle

import "strings"

// Property names accepted by Set and Get. Matching is case-insensitive, and
// "x" and "y" are accepted for the center coordinates.
const (
	PropertyRadius        = "radius"
	PropertyDiameter      = "diameter"
	PropertyArea          = "area"
	PropertyCircumference = "circumference"
	PropertyCenterX       = "centerX"
	PropertyCenterY       = "centerY"
)

// Properties lists the canonical property names in display order.
var Properties = []string{
	PropertyRadius,
	PropertyDiameter,
	PropertyArea,
	PropertyCircumference,
	PropertyCenterX,
	PropertyCenterY,
}

type accessor struct {
	get func(c *Circle) float64
	set func(c *Circle, v float64) error
	// field names the value in error messages.
	field string
}

var accessors = map[string]accessor{
	"radius":        {(*Circle).Radius, (*Circle).SetRadius, fieldRadius},
	"diameter":      {(*Circle).Diameter, (*Circle).SetDiameter, fieldDiameter},
	"area":          {(*Circle).Area, (*Circle).SetArea, fieldArea},
	"circumference": {(*Circle).Circumference, (*Circle).SetCircumference, fieldCircumference},
	"centerx":       {(*Circle).CenterX, (*Circle).SetCenterX, fieldX},
	"x":             {(*Circle).CenterX, (*Circle).SetCenterX, fieldX},
	"centery":       {(*Circle).CenterY, (*Circle).SetCenterY, fieldY},
	"y":             {(*Circle).CenterY, (*Circle).SetCenterY, fieldY},
}

func lookup(property string) (accessor, error) {
	a, ok := accessors[strings.ToLower(property)]
	if !ok {
		return accessor{}, &FieldError{Field: property, Reason: "is not a circle property", Err: ErrUnknownProperty}
	}
	return a, nil
}

// Set assigns value to the named property. value must be a Go numeric kind;
// anything else, a string included, fails with ErrTypeMismatch.
func (c *Circle) Set(property string, value any) error {
	a, err := lookup(property)
	if err != nil {
		return err
	}
	v, err := toNumber(value, a.field)
	if err != nil {
		return err
	}
	return a.set(c, v)
}

// Get returns the current value of the named property.
func (c *Circle) Get(property string) (float64, error) {
	a, err := lookup(property)
	if err != nil {
		return 0, err
	}
	return a.get(c), nil
}
