package refine

import (
	"math"

	"github.com/katalvlaran/uniarity/core"
)

// Laguerre locates a root of f from the initial value x using Laguerre's
// method, with fp and fpp supplying the first and second derivatives and m
// acting as an acceleration parameter (for a polynomial, the degree).
//
// Each step computes the logarithmic derivatives
//
//	G = f'(x)/f(x)
//	H = G² − f''(x)/f(x)
//
// and updates x ← x − m / (G ± sqrt((m−1)(m·H − G²))), choosing the sign
// that maximizes the denominator's magnitude (the step that moves least).
// A negative discriminant is clamped to zero: for a non-polynomial f the
// Laguerre discriminant can dip below zero near inflection points, and the
// real part of the complex step is the sensible descent. At m = 1 the
// discriminant vanishes and the update reduces exactly to Newton's.
//
// Terminates when |f(x)| <= tol, when the chosen denominator's magnitude is
// <= tol (no usable step), or after the iteration cap. Returns the best
// current estimate in all three cases; callers needing a guarantee must
// verify the residual.
func Laguerre(f, fp, fpp core.Func, m, x, tol float64, opts ...Option) float64 {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	fx := f(x)

	iterations := 0
	for math.Abs(fx) > tol && iterations < cfg.MaxIterations {
		g := fp(x) / fx
		h := g*g - fpp(x)/fx

		root := math.Sqrt(math.Max((m-1)*(m*h-g*g), 0))

		// Pick the larger-magnitude denominator.
		denom := g + root
		if math.Abs(g-root) > math.Abs(denom) {
			denom = g - root
		}

		if math.Abs(denom) <= tol {
			break
		}

		x -= m / denom
		fx = f(x)
		iterations++
	}

	return x
}
