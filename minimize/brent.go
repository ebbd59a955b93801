package minimize

import (
	"math"

	"github.com/katalvlaran/uniarity/core"
)

const (
	// cGold is the golden-section step ratio (φ−1)².
	cGold = 0.3819660112501052

	// zEps guards tol1 against collapsing to zero when x ≈ 0, which would
	// otherwise permit degenerate zero-width steps.
	zEps = 1e-10
)

// Brent returns a local minimum (x, f(x)) of f within the bracket [a, b],
// using Brent's method. No sign condition is assumed on f, only that a
// minimum lies within the bracket.
//
// The algorithm tracks the classical triple of best (x), second-best (w),
// and third-best (v) points. When the previous step size, point ordering,
// and step-decrease constraints admit it, the next trial point is the
// minimum of the parabola through (x, w, v); otherwise a golden-section
// step into the larger half is taken. No trial is ever placed closer than
// tol1 = tol_abs·|x| + zEps to an existing point, which prevents stagnation
// on floating-point-indistinguishable steps.
//
// Terminates when the bracket width collapses below 2·tol1. There is no
// iteration cap: the stopping rule is tolerance-scaled and guarantees
// termination even for a constant f (where it depends on tol alone).
//
// Returns ErrInvalidInterval unless a < b. The relative tolerance tol is
// converted via core.Epsilon(a, b, tol).
func Brent(f core.Func, a, b, tol float64) (float64, float64, error) {
	if a >= b {
		return 0, 0, ErrInvalidInterval
	}

	bx := 0.5 * (a + b)
	tolAbs := core.Epsilon(a, b, tol)

	var d float64
	v, w, x := bx, bx, bx
	e := 0.0
	fx := f(x)
	fv, fw := fx, fx

	for {
		xm := 0.5 * (a + b)
		tol1 := tolAbs*math.Abs(x) + zEps
		tol2 := 2 * tol1

		if math.Abs(x-xm) <= tol2-0.5*(b-a) {
			return x, f(x), nil
		}

		if math.Abs(e) > tol1 {
			// Trial parabolic fit through (x, fx), (w, fw), (v, fv).
			r := (x - w) * (fx - fv)
			q := (x - v) * (fx - fw)
			p := (x-v)*q - (x-w)*r

			q = 2 * (q - r)
			if q > 0 {
				p = -p
			} else {
				q = -q
			}

			ePrev := e
			e = d
			if math.Abs(p) >= math.Abs(0.5*q*ePrev) || p <= q*(a-x) || p >= q*(b-x) {
				// Parabolic step inadmissible: golden-section into the larger half.
				if x >= xm {
					e = a - x
				} else {
					e = b - x
				}
				d = cGold * e
			} else {
				d = p / q
				u := x + d
				if u-a < tol2 || b-u < tol2 {
					d = math.Copysign(tol1, xm-x)
				}
			}
		} else {
			if x >= xm {
				e = a - x
			} else {
				e = b - x
			}
			d = cGold * e
		}

		// Never evaluate closer than tol1 to the current best point.
		var u float64
		if math.Abs(d) >= tol1 {
			u = x + d
		} else {
			u = x + math.Copysign(tol1, d)
		}

		fu := f(u)

		if fu <= fx {
			if u >= x {
				a = x
			} else {
				b = x
			}

			v, w, x = w, x, u
			fv, fw, fx = fw, fx, fu
		} else {
			if u < x {
				a = u
			} else {
				b = u
			}
		}

		if fu <= fw || w == x {
			v, fv = w, fw
			w, fw = u, fu
		} else if fu <= fv || v == x || v == w {
			v, fv = u, fu
		}
	}
}
