package minimize

import "errors"

// Sentinel errors for minimization.
var (
	// ErrInvalidInterval indicates bracket endpoints that do not satisfy a < b.
	ErrInvalidInterval = errors.New("minimize: interval must satisfy a < b")

	// ErrTooFewSamples indicates an inspection sample count below two.
	ErrTooFewSamples = errors.New("minimize: sampling requires at least two points")
)
