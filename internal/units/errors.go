package units

import "errors"

// ErrInvalidUnit indicates a unit outside the supported set.
var ErrInvalidUnit = errors.New("units: invalid unit")

// UnitError wraps ErrInvalidUnit with the offending value.
type UnitError struct {
	Kind  string
	Value string
}

func (e *UnitError) Error() string {
	return "units: invalid " + e.Kind + " unit " + quote(e.Value)
}

func (e *UnitError) Unwrap() error {
	return ErrInvalidUnit
}

func quote(s string) string {
	return "\"" + s + "\""
}
