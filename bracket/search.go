package bracket

import (
	"math"

	"github.com/katalvlaran/uniarity/core"
)

// FindRoot determines a bracket around a root of f by evaluating at start
// and then walking in the direction of step with successively doubling step
// sizes until the sign of f changes.
//
// The walk is unbounded: it stops only when the walked coordinate is no
// longer finite (overflow to ±Inf, or NaN from f feeding back into the
// coordinate via a non-finite value), in which case ErrNoBracket is
// returned. Both endpoints of the returned bracket carry their evaluations.
//
// Complexity: O(log(|root − start| / |step|)) evaluations of f.
func FindRoot(f core.Func, start core.Point, step float64) (core.Bracket, error) {
	x, fx := start.Resolve(f)
	sign := math.Signbit(fx)

	for !math.IsNaN(x) && !math.IsInf(x, 0) {
		newX := x + step
		newFx := f(newX)

		if math.Signbit(newFx) != sign {
			return core.Bracket{A: core.Known(x, fx), B: core.Known(newX, newFx)}, nil
		}

		x, fx = newX, newFx
		step *= 2
	}

	return core.Bracket{}, ErrNoBracket
}

// FindMin determines a bracket around a minimum of f by evaluating at start
// and then walking in the direction of step with successively doubling step
// sizes, until f is observed to increase past the current candidate.
//
// The search assumes f(start) >= 0 (ErrNegativeStart otherwise) and that f
// decreases in the direction of step. On success the lower endpoint is
// pulled back by half the last step, so the true minimum lies strictly
// inside the returned bracket. If the walk exits [minX, maxX] before f
// turns upward, ErrNoBracket is returned.
func FindMin(f core.Func, start core.Point, minX, maxX, step float64) (core.Bracket, error) {
	a, fa := start.Resolve(f)
	if fa < 0 {
		return core.Bracket{}, ErrNegativeStart
	}

	b := a
	var fb float64

	for {
		b += step
		fb = f(b)

		// Explored up to the boundary without finding a bracket.
		if b < minX || b > maxX {
			return core.Bracket{}, ErrNoBracket
		}

		if fb > fa {
			a -= 0.5 * step

			return core.Bracket{A: core.Unknown(a), B: core.Known(b, fb)}, nil
		}

		a, fa = b, fb
		step *= 2
	}
}

// FindNegative locates a point where f is negative by evaluating at start
// and then walking in the direction of step with successively doubling step
// sizes. The search assumes f(start) is non-negative and that f decreases
// in the direction of step.
//
// Three ways the walk resolves:
//
//  1. f(start) is already sign-negative: start is returned immediately.
//  2. A walked value is negative: that point is returned.
//  3. f turns upward before going negative: the walk has bracketed a
//     minimum, and LocateNegative probes that bracket at tol = 1e-15.
//
// If the walk exits [minX, maxX], or the locator shrinks its bracket below
// tolerance without a hit, ErrNoNegative is returned.
func FindNegative(f core.Func, start core.Point, step, minX, maxX float64) (core.Point, error) {
	a, fa := start.Resolve(f)
	if math.Signbit(fa) {
		return core.Known(a, fa), nil
	}

	b := a
	var fb float64

	for {
		b += step
		fb = f(b)

		// Explored up to the boundary without finding a negative value.
		if b < minX || b > maxX {
			return core.Point{}, ErrNoNegative
		}

		if fb < 0 {
			return core.Known(b, fb), nil
		}

		// f turned upward: a minima bracket formed; search inside it.
		if fb > fa {
			lo := a - 0.5*step

			return LocateNegative(f, core.Unknown(math.Min(lo, b)), core.Unknown(math.Max(lo, b)), 1e-15)
		}

		a, fa = b, fb
		step *= 2
	}
}
