package circle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

// approxEqual compares with a relative tolerance that degrades to an absolute
// one near zero.
func approxEqual(t *testing.T, want, got float64) {
	t.Helper()
	assert.True(t, scalar.EqualWithinAbsOrRel(want, got, 1e-12, 1e-12), "want %v, got %v", want, got)
}

var sampleRadii = []float64{0, 1e-9, 0.5, 1, 2.75, 5, 10, 1234.5678, 1e9}

func TestNewDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, 0.0, c.Radius())
	assert.Equal(t, 0.0, c.CenterX())
	assert.Equal(t, 0.0, c.CenterY())
	assert.Equal(t, math.Pi, c.Pi())

	var zero Circle
	assert.Equal(t, math.Pi, zero.Pi(), "zero value uses math.Pi")
	assert.Equal(t, 0.0, zero.Area())
}

func TestNewWithRadius(t *testing.T) {
	for _, r := range sampleRadii {
		c, err := NewWithRadius(r)
		require.NoError(t, err)
		assert.Equal(t, r, c.Radius())
	}

	tests := []struct {
		name    string
		radius  float64
		wantErr error
	}{
		{"negative", -1, ErrNegativeValue},
		{"NaN", math.NaN(), ErrInvalidNumber},
		{"+Inf", math.Inf(1), ErrInvalidNumber},
		{"-Inf", math.Inf(-1), ErrInvalidNumber},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewWithRadius(tt.radius)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, c)
		})
	}
}

func TestDerivedProperties(t *testing.T) {
	c, err := NewWithRadius(5)
	require.NoError(t, err)

	assert.Equal(t, 10.0, c.Diameter())
	approxEqual(t, math.Pi*25, c.Area())
	assert.Equal(t, 2*math.Pi*5, c.Circumference())
}

func TestSizeRoundTrips(t *testing.T) {
	for _, r := range sampleRadii {
		c := New()

		require.NoError(t, c.SetDiameter(2*r))
		approxEqual(t, r, c.Radius())

		require.NoError(t, c.SetArea(c.Pi()*r*r))
		approxEqual(t, r, c.Radius())

		require.NoError(t, c.SetCircumference(2*c.Pi()*r))
		approxEqual(t, r, c.Radius())
	}
}

func TestSizeRoundTripsWithReducedPi(t *testing.T) {
	c := New()
	require.NoError(t, c.SetPrecision(2, false))
	require.Equal(t, 3.14, c.Pi())

	for _, r := range sampleRadii {
		require.NoError(t, c.SetArea(3.14*r*r))
		approxEqual(t, r, c.Radius())

		require.NoError(t, c.SetCircumference(2*3.14*r))
		approxEqual(t, r, c.Radius())
	}
}

func TestReadBackWriteBack(t *testing.T) {
	c, err := NewWithRadius(3.3)
	require.NoError(t, err)

	require.NoError(t, c.SetDiameter(c.Diameter()))
	approxEqual(t, 3.3, c.Radius())
	require.NoError(t, c.SetArea(c.Area()))
	approxEqual(t, 3.3, c.Radius())
	require.NoError(t, c.SetCircumference(c.Circumference()))
	approxEqual(t, 3.3, c.Radius())
}

func TestSettersKeepPropertiesConsistent(t *testing.T) {
	c := New()

	require.NoError(t, c.SetArea(math.Pi*16))
	approxEqual(t, 4, c.Radius())
	approxEqual(t, 8, c.Diameter())
	approxEqual(t, 8*math.Pi, c.Circumference())

	require.NoError(t, c.SetCircumference(20*math.Pi))
	approxEqual(t, 10, c.Radius())
	approxEqual(t, 20, c.Diameter())
	approxEqual(t, 100*math.Pi, c.Area())
}

func TestNegativeSizeRejected(t *testing.T) {
	setters := map[string]func(c *Circle, v float64) error{
		"radius":        (*Circle).SetRadius,
		"diameter":      (*Circle).SetDiameter,
		"area":          (*Circle).SetArea,
		"circumference": (*Circle).SetCircumference,
	}

	for name, set := range setters {
		t.Run(name, func(t *testing.T) {
			c, err := NewWithRadius(7)
			require.NoError(t, err)
			require.NoError(t, c.SetCenter(1, 2))
			before := *c

			err = set(c, -0.001)
			assert.ErrorIs(t, err, ErrNegativeValue)
			assert.EqualError(t, err, name+" cannot be negative")
			assert.Equal(t, before, *c, "circle should not change on error")
		})
	}
}

func TestNonFiniteSizeRejected(t *testing.T) {
	setters := map[string]func(c *Circle, v float64) error{
		"radius":        (*Circle).SetRadius,
		"diameter":      (*Circle).SetDiameter,
		"area":          (*Circle).SetArea,
		"circumference": (*Circle).SetCircumference,
		"x":             (*Circle).SetCenterX,
		"y":             (*Circle).SetCenterY,
	}
	values := map[string]float64{
		"NaN":  math.NaN(),
		"+Inf": math.Inf(1),
		"-Inf": math.Inf(-1),
	}

	for name, set := range setters {
		for label, v := range values {
			t.Run(name+"/"+label, func(t *testing.T) {
				c, err := NewWithRadius(2)
				require.NoError(t, err)
				before := *c

				err = set(c, v)
				assert.ErrorIs(t, err, ErrInvalidNumber)
				assert.Contains(t, err.Error(), name)
				assert.Equal(t, before, *c)
			})
		}
	}
}

func TestNonFiniteReportedBeforeNegative(t *testing.T) {
	err := New().SetRadius(math.Inf(-1))
	assert.ErrorIs(t, err, ErrInvalidNumber, "-Inf is invalid, not negative")
	assert.EqualError(t, err, "radius cannot be Infinity nor -Infinity")

	err = New().SetRadius(math.NaN())
	assert.EqualError(t, err, "radius cannot be NaN")
}

func TestCenterAcceptsAnyFiniteValue(t *testing.T) {
	c := New()
	for _, v := range []float64{-1e9, -3.5, 0, 2, 1e300} {
		require.NoError(t, c.SetCenterX(v))
		require.NoError(t, c.SetCenterY(-v))
		assert.Equal(t, v, c.CenterX())
		assert.Equal(t, -v, c.CenterY())
	}
}

func TestSetCenterIsAllOrNothing(t *testing.T) {
	c := New()
	require.NoError(t, c.SetCenter(3, 4))

	err := c.SetCenter(10, math.NaN())
	assert.ErrorIs(t, err, ErrInvalidNumber)

	x, y := c.Center()
	assert.Equal(t, 3.0, x, "x must not be written when y is rejected")
	assert.Equal(t, 4.0, y)
}

func TestCenterDoesNotAffectSize(t *testing.T) {
	c, err := NewWithRadius(2)
	require.NoError(t, err)
	require.NoError(t, c.SetCenter(-100, 50))
	assert.Equal(t, 2.0, c.Radius())
	assert.Equal(t, 4.0, c.Diameter())
}
