// Package cheb approximates a function on an interval by a truncated
// Chebyshev series and extracts every real root of the approximation:
// a global rootfinder for black-box univariate functions.
//
// 🚀 How it works:
//
//  1. Sample f at the n Chebyshev nodes cos(π(i+0.5)/n) mapped into [a, b].
//  2. Interpolate: a discrete cosine transform (a cosine-basis
//     matrix-vector product) yields the series coefficients; trailing
//     coefficients below max(1e-14·max|cᵢ|, machine ε) are truncated.
//  3. Roots: the eigenvalues of the (deg×deg) Chebyshev companion matrix
//     are the roots of the series; real eigenvalues inside [-1, 1] (with a
//     1e-8 tolerance for imaginary parts and boundary overshoot) map back
//     to [a, b].
//
// The method is typically more expensive than the classic refiners in
// bracket/ and refine/, but it is general: it finds all the roots on an
// interval at once. Extracted roots are approximate (expect O(1e-1)
// residual error) and are meant to be polished with a local refiner:
//
//	c, _ := cheb.New(f, a, b, 16)
//	for _, r := range c.Roots() {
//	    x := refine.Secant(f, r, r+1e-6, 1e-15)
//	    ...
//	}
//
// Evaluation of the approximation uses Clenshaw's recurrence, which is
// numerically stable and never forms explicit monomial powers.
//
// Linear algebra (the cosine transform and the companion-matrix eigenvalue
// decomposition) is delegated to gonum.org/v1/gonum/mat.
//
// This implementation follows the CPR paper
// (https://epubs.siam.org/doi/pdf/10.1137/110838297) and uses ideas from
// chebfun (https://github.com/chebfun/chebfun).
package cheb
