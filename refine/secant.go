package refine

import (
	"math"

	"github.com/katalvlaran/uniarity/core"
)

// Secant locates a root of f from the initial pair x0, x1 using the secant
// method, a derivative-free two-point update:
//
//	x ← x1 − f(x1)·(x1 − x0) / (f(x1) − f(x0))
//
// Terminates when |x1 − x0| <= tol, when |f(x1) − f(x0)| <= tol (the update
// denominator has collapsed), or after the iteration cap. Returns the most
// recent estimate x1 in all three cases; callers needing a guarantee must
// verify the residual.
func Secant(f core.Func, x0, x1, tol float64, opts ...Option) float64 {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	f0 := f(x0)
	f1 := f(x1)

	iterations := 0
	for math.Abs(x1-x0) > tol && math.Abs(f1-f0) > tol && iterations < cfg.MaxIterations {
		x := x1 - f1*(x1-x0)/(f1-f0)
		x0, f0 = x1, f1
		x1, f1 = x, f(x)
		iterations++
	}

	return x1
}
