package bracket

import (
	"math"

	"github.com/katalvlaran/uniarity/core"
)

// LocateNegative finds a point with f(x) < 0 inside a bracket [a, b] known
// (by the caller) to contain a sub-zero value.
//
// Both endpoints are probed first for an early exit. Otherwise the interval
// is shrunk by golden-section: the two interior points at the inverse
// golden ratio (φ⁻¹ ≈ 0.618) are probed, each an early exit if negative,
// and the side with the larger value is discarded, guaranteeing geometric
// shrinkage. Once the interval width drops below core.Epsilon(a, b, tol),
// ErrNoNegative is returned: no negative value was found within tolerance.
// That is not necessarily a contradiction of the caller's certificate; the
// negative region may simply be narrower than the tolerance.
//
// Returns ErrInvalidBracket unless a.X() < b.X().
func LocateNegative(f core.Func, a, b core.Point, tol float64) (core.Point, error) {
	if a.X() >= b.X() {
		return core.Point{}, ErrInvalidBracket
	}

	ax, fa := a.Resolve(f)
	if fa < 0 {
		return core.Known(ax, fa), nil
	}

	bx, fb := b.Resolve(f)
	if fb < 0 {
		return core.Known(bx, fb), nil
	}

	epsilon := core.Epsilon(ax, bx, tol)

	phiInv := 2 / (1 + math.Sqrt(5))

	c := bx - (bx-ax)*phiInv
	d := ax + (bx-ax)*phiInv

	for bx-ax > epsilon {
		fc := f(c)
		if fc < 0 {
			return core.Known(c, fc), nil
		}

		fd := f(d)
		if fd < 0 {
			return core.Known(d, fd), nil
		}

		// Discard the side with the larger of the two probes.
		if fc < fd {
			bx = d
		} else {
			ax = c
		}

		c = bx - (bx-ax)*phiInv
		d = ax + (bx-ax)*phiInv
	}

	return core.Point{}, ErrNoNegative
}
