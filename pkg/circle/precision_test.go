package circle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPrecision(t *testing.T) {
	tests := []struct {
		name   string
		places float64
		round  bool
		want   float64
	}{
		{"truncate 2", 2, false, 3.14},
		{"round 2", 2, true, 3.14},
		{"truncate 4", 4, false, 3.1415},
		{"round 4", 4, true, 3.1416},
		{"truncate 0", 0, false, 3},
		{"round 0", 0, true, 3},
		{"truncate 1", 1, false, 3.1},
		{"round 3", 3, true, 3.142},
		{"truncate 3", 3, false, 3.141},
		{"fraction rounds down", 1.4, false, 3.1},
		{"fraction rounds up", 1.5, false, 3.14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			require.NoError(t, c.SetPrecision(tt.places, tt.round))
			assert.Equal(t, tt.want, c.Pi())
		})
	}
}

func TestSetPrecisionClamps(t *testing.T) {
	for _, round := range []bool{false, true} {
		low, high := New(), New()
		atZero, atMax := New(), New()

		require.NoError(t, low.SetPrecision(-5, round))
		require.NoError(t, atZero.SetPrecision(0, round))
		assert.Equal(t, atZero.Pi(), low.Pi())
		assert.Equal(t, 3.0, low.Pi())

		require.NoError(t, high.SetPrecision(100, round))
		require.NoError(t, atMax.SetPrecision(MaxDecimalPlaces, round))
		assert.Equal(t, atMax.Pi(), high.Pi())
		assert.InDelta(t, math.Pi, high.Pi(), 1e-14)
	}
}

func TestSetPrecisionRejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		c := New()
		require.NoError(t, c.SetPrecision(2, false))

		err := c.SetPrecision(v, true)
		assert.ErrorIs(t, err, ErrInvalidNumber)
		assert.Contains(t, err.Error(), "decimal places")
		assert.Equal(t, 3.14, c.Pi(), "pi should not change on error")
	}
}

func TestSetPrecisionKeepsRadius(t *testing.T) {
	c, err := NewWithRadius(10)
	require.NoError(t, err)

	require.NoError(t, c.SetPrecision(0, false))
	assert.Equal(t, 10.0, c.Radius())
	assert.Equal(t, 300.0, c.Area())
	assert.Equal(t, 60.0, c.Circumference())

	require.NoError(t, c.SetArea(300))
	assert.Equal(t, 10.0, c.Radius(), "area uses the reduced pi on write too")
}

func TestSetPrecisionIsPerInstance(t *testing.T) {
	a, b := New(), New()
	require.NoError(t, a.SetPrecision(1, false))
	assert.Equal(t, 3.1, a.Pi())
	assert.Equal(t, math.Pi, b.Pi())
}

func TestSetPrecisionValue(t *testing.T) {
	tests := []struct {
		name    string
		places  any
		round   any
		want    float64
		wantErr error
		wantMsg string
	}{
		{name: "int places", places: 4, round: true, want: 3.1416},
		{name: "int64 places", places: int64(2), round: false, want: 3.14},
		{name: "float places", places: 4.0, round: false, want: 3.1415},
		{name: "uint8 places", places: uint8(1), round: false, want: 3.1},
		{name: "string places", places: "4", round: true, wantErr: ErrTypeMismatch, wantMsg: "decimal places must be a number"},
		{name: "nil places", places: nil, round: true, wantErr: ErrTypeMismatch},
		{name: "NaN places", places: math.NaN(), round: true, wantErr: ErrInvalidNumber},
		{name: "string round", places: 2, round: "yes", wantErr: ErrTypeMismatch, wantMsg: "round must be a boolean"},
		{name: "int round", places: 2, round: 1, wantErr: ErrTypeMismatch},
		{name: "places checked before round", places: "x", round: "y", wantErr: ErrTypeMismatch, wantMsg: "decimal places must be a number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			err := c.SetPrecisionValue(tt.places, tt.round)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				if tt.wantMsg != "" {
					assert.EqualError(t, err, tt.wantMsg)
				}
				assert.Equal(t, math.Pi, c.Pi())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Pi())
		})
	}
}
