// Package cheb_test validates the Chebyshev approximation pipeline:
// coefficient truncation invariants, Clenshaw evaluation fidelity, and the
// companion-matrix root extraction across a sweep of node counts, with a
// secant polish confirming each raw root refines to machine accuracy.
package cheb_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/uniarity/cheb"
	"github.com/katalvlaran/uniarity/core"
	"github.com/katalvlaran/uniarity/refine"
)

// machEps is the float64 machine epsilon.
const machEps = 2.220446049250313e-16

// chebCases are functions with exactly one root in [a, b]. n is the
// smallest node count expected to resolve that root; the tests sweep n
// through n+19 to confirm the count is stable under over-sampling.
var chebCases = []struct {
	name string
	f    core.Func
	a, b float64
	n    int
}{
	{"linear", func(x float64) float64 { return 0.72*x - 1 }, -5, 5, 4},
	{"quadratic", func(x float64) float64 { return 0.72*x*x - 1 }, -1, 5, 4},
	{"cubic", func(x float64) float64 { return x*x*x - x + 0.5 }, -2, 2, 4},
	{"x*exp(x)", func(x float64) float64 { return x*math.Exp(x) - 1 }, 0, 2, 6},
	{"kepler-like", func(x float64) float64 { return x - math.Sin(x) - 1.2 }, 0, 2 * math.Pi, 6},
	{"kepler scaled 1e6", func(x float64) float64 { return x/1e6 - math.Sin(x/1e6) - 1.2 }, 0, 2 * math.Pi * 1e6, 6},
	{"flat degree 11", func(x float64) float64 { return -math.Pow(x, 11) + 1e-10 }, -1, 1, 12},
	{"oscillating tanh", func(x float64) float64 { return math.Sin(20*x) + 10*math.Tanh(x) + 1 }, -1, 1, 40},
}

// TestRoots_SingleRootSweep is the workhorse: for every case and every node
// count in [n, n+20), the extraction must find exactly one root, the raw
// root must be within 1e-1 residual, and one secant pass must polish it to
// machine accuracy.
func TestRoots_SingleRootSweep(t *testing.T) {
	for _, tc := range chebCases {
		t.Run(tc.name, func(t *testing.T) {
			for n := tc.n; n < tc.n+20; n++ {
				c, err := cheb.New(tc.f, tc.a, tc.b, n)
				require.NoError(t, err)

				roots := c.Roots()
				require.Len(t, roots, 1, "n=%d", n)

				// The root should be approximately right...
				x := roots[0]
				assert.InDelta(t, 0, tc.f(x), 1e-1, "n=%d raw root x=%v", n, x)

				// ...and close enough that one secant pass lands on the true root.
				x = refine.Secant(tc.f, x, x+1e-6, machEps)
				assert.InDelta(t, 0, tc.f(x), 1e-13, "n=%d polished root x=%v", n, x)
			}
		})
	}
}

// TestRoots_MultipleSorted verifies every root on the interval is found and
// the result comes back sorted ascending.
func TestRoots_MultipleSorted(t *testing.T) {
	// (x+3)(x)(x-2) = x³ + x² − 6x: roots −3, 0, 2.
	f := func(x float64) float64 { return x*x*x + x*x - 6*x }

	c, err := cheb.New(f, -5, 5, 8)
	require.NoError(t, err)

	roots := c.Roots()
	require.Len(t, roots, 3)
	assert.True(t, sort.Float64sAreSorted(roots), "roots must be sorted ascending")

	for i, want := range []float64{-3, 0, 2} {
		assert.InDelta(t, want, roots[i], 1e-6)
	}
}

// TestCoefficients_TruncationInvariant verifies the data-model invariant:
// the retained slice ends on a non-negligible coefficient, and the zeroth
// is halved.
func TestCoefficients_TruncationInvariant(t *testing.T) {
	// Quadratic sampled at many more nodes than its degree: everything past
	// c₂ must be truncated.
	f := func(x float64) float64 { return 2*x*x - 1 }

	c, err := cheb.New(f, -1, 1, 16)
	require.NoError(t, err)

	coeffs := c.Coefficients()
	require.Len(t, coeffs, 3, "a quadratic retains exactly three coefficients")
	assert.NotZero(t, coeffs[len(coeffs)-1], "the last retained coefficient must be non-zero")

	// On [-1,1], 2x²−1 is exactly T₂, so c = [0, 0, 1], except c₀ is
	// stored halved and T₂'s own constant shift makes c₀ = 0 here.
	assert.InDelta(t, 1.0, coeffs[2], 1e-12)
}

// TestZeroPolynomial verifies the all-negligible path: no coefficients, no
// roots, and evaluation pinned to zero.
func TestZeroPolynomial(t *testing.T) {
	f := func(float64) float64 { return 0 }

	c, err := cheb.New(f, -1, 1, 8)
	require.NoError(t, err)

	assert.Empty(t, c.Coefficients())
	assert.Empty(t, c.Roots())
	assert.Zero(t, c.Evaluate(0.3))
}

// TestConstant_NoRoots verifies a non-zero constant keeps one coefficient
// and yields no roots.
func TestConstant_NoRoots(t *testing.T) {
	f := func(float64) float64 { return 4.2 }

	c, err := cheb.New(f, 0, 1, 8)
	require.NoError(t, err)

	require.Len(t, c.Coefficients(), 1)
	assert.Empty(t, c.Roots())
	assert.InDelta(t, 4.2, c.Evaluate(0.5), 1e-12)
}

// TestEvaluate_ReproducesFunction verifies the approximation reproduces the
// sampled function at the interval endpoints and interior points within the
// truncation tolerance (generous margin: the cubic is represented exactly).
func TestEvaluate_ReproducesFunction(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - 2*x + 0.5 }

	c, err := cheb.New(f, -2, 3, 12)
	require.NoError(t, err)

	for _, x := range []float64{-2, -1.3, 0, 0.7, 1.9, 3} {
		assert.InDelta(t, f(x), c.Evaluate(x), 1e-11, "x=%v", x)
	}
}

// TestEvaluate_LinearExact verifies the n=2 direct linear solve hits the
// exact root of a line.
func TestEvaluate_LinearExact(t *testing.T) {
	f := func(x float64) float64 { return 0.72*x - 1 }

	c, err := cheb.New(f, -5, 5, 2)
	require.NoError(t, err)

	roots := c.Roots()
	require.Len(t, roots, 1)
	assert.InDelta(t, 1/0.72, roots[0], 1e-12)
}

// TestSample verifies evenly spaced sampling of the interpolant, endpoints
// included, with values carried as Known points.
func TestSample(t *testing.T) {
	f := func(x float64) float64 { return x * x }

	c, err := cheb.New(f, 0, 4, 8)
	require.NoError(t, err)

	points := c.Sample(5)
	require.Len(t, points, 5)

	assert.Equal(t, 0.0, points[0].X())
	assert.Equal(t, 4.0, points[4].X())
	for i, p := range points {
		assert.InDelta(t, float64(i), p.X(), 1e-12)
		fx, known := p.FX()
		require.True(t, known)
		assert.InDelta(t, p.X()*p.X(), fx, 1e-10)
	}

	assert.Nil(t, c.Sample(1), "fewer than two samples is meaningless")
}

// TestNew_ContractViolations verifies the constructor's fail-fast checks.
func TestNew_ContractViolations(t *testing.T) {
	f := func(x float64) float64 { return x }

	_, err := cheb.New(f, 2, 1, 4)
	assert.ErrorIs(t, err, cheb.ErrInvalidInterval)

	_, err = cheb.New(f, 0, 1, -1)
	assert.ErrorIs(t, err, cheb.ErrInvalidNodeCount)
}

// TestNew_ZeroNodes verifies n=0 yields the zero polynomial rather than an
// error.
func TestNew_ZeroNodes(t *testing.T) {
	c, err := cheb.New(func(x float64) float64 { return x }, 0, 1, 0)
	require.NoError(t, err)
	assert.Empty(t, c.Coefficients())
	assert.Empty(t, c.Roots())
}
