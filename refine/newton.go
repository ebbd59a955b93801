package refine

import (
	"math"

	"github.com/katalvlaran/uniarity/core"
)

// Newton locates a root of f from the initial value x using Newton's
// method, x ← x − f(x)/f'(x), with fp supplying the derivative.
//
// Terminates when |f(x)| <= tol, when |f'(x)| <= tol (a near-flat
// derivative would blow the next step up, so stop instead), or after the
// iteration cap. Returns the best current estimate in all three cases;
// callers needing a guarantee must verify the residual.
func Newton(f, fp core.Func, x, tol float64, opts ...Option) float64 {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	fx := f(x)
	gx := fp(x)

	iterations := 0
	for math.Abs(fx) > tol && math.Abs(gx) > tol && iterations < cfg.MaxIterations {
		x -= fx / gx
		fx = f(x)
		gx = fp(x)
		iterations++
	}

	return x
}
