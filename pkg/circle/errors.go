package circle

import "errors"

// Validation errors. Every error returned by this package wraps one of these
// in a *FieldError, so callers test for them with errors.Is.
var (
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrInvalidNumber   = errors.New("invalid number")
	ErrNegativeValue   = errors.New("negative value")
	ErrUnknownProperty = errors.New("unknown property")
)

// FieldError reports a rejected input together with the field it was meant for.
type FieldError struct {
	Field  string // Name of the offending field, e.g. "radius".
	Reason string // Human-readable reason, e.g. "cannot be negative".
	Err    error  // One of the sentinel errors above.
}

func (e *FieldError) Error() string {
	return e.Field + " " + e.Reason
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func typeMismatch(field, want string) error {
	return &FieldError{Field: field, Reason: "must be a " + want, Err: ErrTypeMismatch}
}

func negative(field string) error {
	return &FieldError{Field: field, Reason: "cannot be negative", Err: ErrNegativeValue}
}
