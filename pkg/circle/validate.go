package circle

import (
	"errors"
	"math"
	"strconv"
)

// Field names used in error messages.
const (
	fieldRadius        = "radius"
	fieldDiameter      = "diameter"
	fieldArea          = "area"
	fieldCircumference = "circumference"
	fieldX             = "x"
	fieldY             = "y"
	fieldPointX        = "point x"
	fieldPointY        = "point y"
	fieldTolerance     = "tolerance"
	fieldDecimalPlaces = "decimal places"
	fieldRound         = "round"
)

// checkFinite rejects NaN before infinities so the message names the more
// specific problem.
func checkFinite(value float64, field string) error {
	if math.IsNaN(value) {
		return &FieldError{Field: field, Reason: "cannot be NaN", Err: ErrInvalidNumber}
	}
	if math.IsInf(value, 0) {
		return &FieldError{Field: field, Reason: "cannot be Infinity nor -Infinity", Err: ErrInvalidNumber}
	}
	return nil
}

// checkSize runs checkFinite and then rejects negative values.
func checkSize(value float64, field string) error {
	if err := checkFinite(value, field); err != nil {
		return err
	}
	if value < 0 {
		return negative(field)
	}
	return nil
}

// toNumber converts any Go numeric kind to float64 and validates it.
// Anything else is a type mismatch.
func toNumber(value any, field string) (float64, error) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int8:
		f = float64(v)
	case int16:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint8:
		f = float64(v)
	case uint16:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	default:
		return 0, typeMismatch(field, "number")
	}
	if err := checkFinite(f, field); err != nil {
		return 0, err
	}
	return f, nil
}

// ParseNumber converts text into a validated number. Text that is not a
// number fails with ErrTypeMismatch; the NaN and infinity spellings that
// strconv accepts fail with ErrInvalidNumber.
func ParseNumber(s, field string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, &FieldError{Field: field, Reason: "cannot be Infinity nor -Infinity", Err: ErrInvalidNumber}
		}
		return 0, typeMismatch(field, "number")
	}
	if err := checkFinite(f, field); err != nil {
		return 0, err
	}
	return f, nil
}
