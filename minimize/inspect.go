package minimize

import "github.com/katalvlaran/uniarity/core"

// ByInspection samples f at n evenly spaced points across [a, b], endpoints
// included, and returns the (x, f(x)) pair with the smallest value. The
// first of several equal minima wins.
//
// Requires n >= 2 (ErrTooFewSamples) and a < b (ErrInvalidInterval).
//
// Complexity: exactly n evaluations of f.
func ByInspection(f core.Func, a, b float64, n int) (float64, float64, error) {
	if a >= b {
		return 0, 0, ErrInvalidInterval
	}
	if n < 2 {
		return 0, 0, ErrTooFewSamples
	}

	step := (b - a) / float64(n-1)

	bestX := a
	bestF := f(a)
	for i := 1; i < n; i++ {
		x := a + float64(i)*step
		if fx := f(x); fx < bestF {
			bestX, bestF = x, fx
		}
	}

	return bestX, bestF, nil
}
