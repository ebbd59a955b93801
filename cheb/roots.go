package cheb

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Eigenvalue acceptance tolerances: an eigenvalue counts as a real root of
// the series when its imaginary part is within imagTol of zero and its real
// part within realTol of the reference interval [-1, 1] (numerical
// overshoot at the boundary is tolerated).
const (
	imagTol = 1e-8
	realTol = 1e-8
)

// Roots returns all real roots of the Chebyshev approximation within the
// approximation's interval, sorted ascending. Roots are derived lazily from
// the coefficients on each call, never cached.
//
// A constant or zero approximation has no roots. A linear approximation is
// solved directly. Otherwise the roots are the real eigenvalues of the
// Chebyshev companion matrix: a near-tridiagonal matrix with 0.5
// off-diagonal entries, a doubled (0,1) entry, and a final row encoding the
// leading-coefficient ratios −cᵢ/(2·c_last). The eigenvalue decomposition
// (which must admit complex eigenvalues, filtered by imagTol) is delegated
// to gonum's mat.Eigen.
//
// This is an approximate method: returned roots may carry O(1e-1)-scale
// residual error. Callers typically polish each with a local refiner such
// as refine.Secant.
func (c *Cheb) Roots() []float64 {
	n := len(c.c)

	// Trivial cases.
	if n <= 1 {
		return nil
	}

	if n == 2 {
		x := -c.c[0] / c.c[1]

		return []float64{functionSpace(c.a, c.b, x)}
	}

	// Set up the Chebyshev companion matrix.
	A := mat.NewDense(n-1, n-1, nil)

	for i := 0; i < n-2; i++ {
		A.Set(i+1, i, 0.5)
		A.Set(i, i+1, 0.5)
	}

	A.Set(0, 1, A.At(0, 1)+0.5)

	last := c.c[n-1]
	for i := 0; i < n-1; i++ {
		A.Set(n-2, i, A.At(n-2, i)-c.c[i]/(2*last))
	}

	// Compute eigenvalues, and from them, roots.
	var eig mat.Eigen
	if ok := eig.Factorize(A, mat.EigenNone); !ok {
		// Eigenvalue iteration failed to converge; no roots extractable.
		return nil
	}

	var roots []float64
	for _, z := range eig.Values(nil) {
		if math.Abs(imag(z)) > imagTol {
			continue
		}
		if math.Abs(real(z)) > 1+realTol {
			continue
		}
		roots = append(roots, functionSpace(c.a, c.b, real(z)))
	}

	sort.Float64s(roots)

	return roots
}
