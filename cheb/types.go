package cheb

import "errors"

// Sentinel errors for Chebyshev approximation construction.
var (
	// ErrInvalidInterval indicates interval endpoints that do not satisfy a <= b.
	ErrInvalidInterval = errors.New("cheb: interval must satisfy a <= b")

	// ErrInvalidNodeCount indicates a negative sample-node count.
	ErrInvalidNodeCount = errors.New("cheb: node count must be non-negative")
)
