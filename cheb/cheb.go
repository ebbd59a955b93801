package cheb

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/uniarity/core"
)

// machineEpsilon is the difference between 1.0 and the next representable
// float64 (2^-52). Floor for the coefficient-truncation threshold.
const machineEpsilon = 0x1p-52

// localSpace maps an x-value from [a, b] to the reference interval [-1, 1].
func localSpace(a, b, x float64) float64 {
	return (2*x - a - b) / (b - a)
}

// functionSpace maps an x-value from the reference interval [-1, 1] to [a, b].
func functionSpace(a, b, x float64) float64 {
	return 0.5 * (x*(b-a) + a + b)
}

// Cheb is an immutable Chebyshev polynomial approximation of a function on
// an interval [a, b]:
//
//	f(x) ≈ Σ cᵢ·Tᵢ(localSpace(x))
//
// after truncation of negligible high-order terms. The coefficient slice is
// non-empty only if at least one coefficient exceeded the truncation
// threshold, and its last element is then non-zero. An empty slice is the
// zero polynomial.
type Cheb struct {
	a, b float64
	c    []float64
}

// New constructs a Chebyshev approximation of f on [a, b] by sampling at n
// Chebyshev nodes cos(π(i+0.5)/n) mapped into the interval and applying a
// discrete cosine transform. n = 0 yields the zero polynomial.
//
// Returns ErrInvalidInterval unless a <= b, and ErrInvalidNodeCount for
// negative n.
//
// Complexity: n evaluations of f, plus O(n²) for the cosine transform.
func New(f core.Func, a, b float64, n int) (*Cheb, error) {
	if b < a {
		return nil, ErrInvalidInterval
	}
	if n < 0 {
		return nil, ErrInvalidNodeCount
	}

	if n == 0 {
		return &Cheb{a: a, b: b}, nil
	}

	return &Cheb{a: a, b: b, c: computeCoefficients(f, a, b, n)}, nil
}

// computeCoefficients samples f at the n Chebyshev nodes and computes the
// degree-(n-1) coefficient vector as a cosine-basis matrix-vector product:
//
//	cⱼ = (2/n) · Σᵢ cos(πj(i+0.5)/n) · f(xᵢ)
//
// Trailing coefficients below max(1e-14·max|cᵢ|, machine ε) are truncated,
// and the retained zeroth coefficient is halved (standard Chebyshev
// normalization). If every coefficient is negligible the result is nil:
// the zero polynomial.
func computeCoefficients(f core.Func, a, b float64, n int) []float64 {
	ff := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		x := math.Cos(math.Pi * (float64(i) + 0.5) / float64(n))
		ff.SetVec(i, f(functionSpace(a, b, x)))
	}

	basis := mat.NewDense(n, n, nil)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			basis.Set(j, i, math.Cos(math.Pi*float64(j)*(float64(i)+0.5)/float64(n)))
		}
	}

	var prod mat.VecDense
	prod.MulVec(basis, ff)

	c := make([]float64, n)
	for j := range c {
		c[j] = 2 * prod.AtVec(j) / float64(n)
	}

	// Find the last coefficient at or above the truncation threshold and
	// drop everything after it.
	maxVal := floats.Norm(c, math.Inf(1))
	tol := math.Max(1e-14*maxVal, machineEpsilon)

	last := -1
	for k := n - 1; k >= 0; k-- {
		if math.Abs(c[k]) >= tol {
			last = k

			break
		}
	}
	if last < 0 {
		return nil
	}

	c = c[:last+1]
	c[0] *= 0.5

	return c
}

// Interval returns the approximation's domain [a, b].
func (c *Cheb) Interval() (a, b float64) {
	return c.a, c.b
}

// Coefficients returns a copy of the retained series coefficients. An empty
// result means the approximation is the zero polynomial.
func (c *Cheb) Coefficients() []float64 {
	out := make([]float64, len(c.c))
	copy(out, c.c)

	return out
}

// Evaluate computes the approximation at x using Clenshaw's recurrence over
// the retained coefficients, which is numerically stable and never forms
// explicit monomial powers. The zero polynomial evaluates to 0 everywhere.
func (c *Cheb) Evaluate(x float64) float64 {
	if len(c.c) == 0 {
		return 0
	}

	x = localSpace(c.a, c.b, x)

	var d, dd float64
	for i := len(c.c) - 1; i >= 1; i-- {
		d, dd = 2*x*d-dd+c.c[i], d
	}

	return x*d - dd + c.c[0]
}

// Sample returns n evaluated points evenly spaced along the approximation,
// endpoints included. Useful for plotting or inspecting the interpolant.
// Requires n >= 2; smaller n yields nil.
func (c *Cheb) Sample(n int) []core.Point {
	if n < 2 {
		return nil
	}

	points := make([]core.Point, n)
	for i := range points {
		x := c.a + (c.b-c.a)*(float64(i)/float64(n-1))
		points[i] = core.Known(x, c.Evaluate(x))
	}

	return points
}
