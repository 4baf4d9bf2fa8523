package types

import "errors"

// Error categories. Call sites wrap these with context.
var (
	// ErrConfig reports an invalid satellite number or abundance regime.
	ErrConfig = errors.New("invalid configuration")

	// ErrLengthMismatch reports arrays that must pair element-wise but differ in length.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrDomain reports a ratio, temperature, flux or emission measure outside
	// the range the active calibration supports.
	ErrDomain = errors.New("value outside valid domain")

	// ErrOrdering reports a timestamp sequence that goes backwards.
	ErrOrdering = errors.New("timestamps not chronological")

	// ErrMalformedCall reports an unusable combination of optional inputs,
	// such as cumulative integration without timestamps.
	ErrMalformedCall = errors.New("malformed call")

	// ErrType reports an input that is neither raw arrays nor a lightcurve.
	ErrType = errors.New("unsupported input type")

	// ErrUnit reports a quantity whose unit cannot be converted to the one required.
	ErrUnit = errors.New("incompatible unit")
)
