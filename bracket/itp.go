package bracket

import (
	"math"

	"github.com/katalvlaran/uniarity/core"
)

// ITP method parameters. k1 is additionally scaled by 1/(b−a) at call time
// so truncation behaves identically across bracket widths.
const (
	itpK1 = 0.2
	itpK2 = 2
	itpN0 = 5
)

// ITP locates the root within a root bracket using the ITP
// (interpolate–truncate–project) method. Requires that f is continuous and
// that f(a) and f(b) have opposite signs.
//
// Each iteration forms the secant (regula falsi) estimate, truncates it
// toward the midpoint by at most k1·(b−a)^k2, and projects the result into
// a minimal-interval-reduction radius r that shrinks on an exponential
// schedule derived from the iteration budget
//
//	n_max = n0 + max(ceil(log2((b−a)/epsilon)) − 1, 0)
//
// which yields average-case superlinear convergence while never doing worse
// than bisection. The interval-update branching assumes f(a) <= f(b); when
// the bracket is oriented the other way a negate flag flips the comparison.
// A point that evaluates to exactly zero is returned immediately.
//
// Terminates when the interval width drops to twice
// core.Epsilon(a, b, tol) and returns the midpoint of the final interval.
// Returns ErrInvalidBracket unless a.X() < b.X(), and ErrSameSign when the
// endpoint values do not straddle zero.
//
// Reference: Oliveira & Takahashi, "An Enhancement of the Bisection Method
// Average Performance Preserving Minmax Optimality",
// https://dl.acm.org/doi/10.1145/3423597
func ITP(f core.Func, a, b core.Point, tol float64) (float64, error) {
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

	k1 := itpK1 / (bx - ax)
	epsilon := core.Epsilon(ax, bx, tol)

	n12 := int(math.Max(math.Ceil(math.Log2((bx-ax)/epsilon))-1, 0))
	nMax := itpN0 + n12
	scaledEpsilon := epsilon * math.Pow(2, float64(nMax))

	// The update branching assumes f(a) <= f(b); correct for the other
	// orientation.
	negate := fb < fa

	for bx-ax > 2*epsilon {
		x12 := 0.5 * (ax + bx)
		r := scaledEpsilon - 0.5*(bx-ax)
		delta := k1 * math.Pow(bx-ax, itpK2)

		// Interpolation: the secant estimate.
		xf := (fb*ax - fa*bx) / (fb - fa)

		// Truncation: nudge the estimate toward the midpoint, bounded by delta.
		sigma := x12 - xf
		xt := x12
		if delta <= math.Abs(sigma) {
			xt = xf + math.Copysign(delta, sigma)
		}

		// Projection: clamp to the shrinking minimal-reduction radius.
		xITP := xt
		if math.Abs(xt-x12) > r {
			xITP = x12 - math.Copysign(r, sigma)
		}

		// Update the interval.
		fITP := f(xITP)

		switch {
		case fITP == 0:
			return xITP, nil
		case negate != (fITP > 0):
			bx, fb = xITP, fITP
		default:
			ax, fa = xITP, fITP
		}

		scaledEpsilon *= 0.5
	}

	return 0.5 * (ax + bx), nil
}
