package bracket

import (
	"math"

	"github.com/katalvlaran/uniarity/core"
)

// Bisection locates the root within a root bracket by classic halving.
// Requires that f is continuous and that f(a) and f(b) have opposite signs.
//
// Every iteration evaluates the midpoint and replaces the endpoint whose
// value shares the midpoint's sign, preserving the invariant that the
// tracked lower endpoint keeps the original sign of f(a). Terminates when
// the interval width drops to core.Epsilon(a, b, tol) and returns the
// midpoint of the final interval.
//
// An endpoint that evaluates to exactly zero is returned immediately.
// Returns ErrInvalidBracket unless a.X() < b.X(), and ErrSameSign when the
// endpoint values do not straddle zero.
//
// Complexity: exactly ceil(log2((b−a)/epsilon)) midpoint evaluations.
func Bisection(f core.Func, a, b core.Point, tol float64) (float64, error) {
	if a.X() >= b.X() {
		return 0, ErrInvalidBracket
	}

	ax, fa := a.Resolve(f)
	bx, fb := b.Resolve(f)

	if fa == 0 {
		return ax, nil
	}
	if fb == 0 {
		return bx, nil
	}
	if math.Signbit(fa) == math.Signbit(fb) {
		return 0, ErrSameSign
	}

	epsilon := core.Epsilon(ax, bx, tol)
	faSign := math.Signbit(fa)

	for bx-ax > epsilon {
		x := 0.5 * (ax + bx)
		if math.Signbit(f(x)) == faSign {
			ax = x
		} else {
			bx = x
		}
	}

	return 0.5 * (ax + bx), nil
}
