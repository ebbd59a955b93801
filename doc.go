// Package uniarity is a toolkit for probing a continuous, single-argument,
// real-valued function to locate its roots and local minima. The function is
// supplied only as a callable and may be expensive to evaluate.
//
// 🚀 What is uniarity?
//
//	A library for numerical analysis of black-box univariate functions:
//		• Bracket search: exponential walks that certify a root, minimum,
//		  or negative value inside an interval
//		• Bracket refiners: bisection and ITP with guaranteed convergence
//		• Initial-guess refiners: Newton, secant, Laguerre
//		• Global rootfinding: Chebyshev approximation + companion-matrix
//		  eigenvalues to enumerate every root on an interval
//		• Minimization: Brent's derivative-free minimizer
//
// ✨ Why choose uniarity?
//
//   - Evaluation-frugal – every algorithm reuses known function values
//     (core.Point) and never evaluates the target more than it must
//   - Scale-invariant – tolerances anchor to the bracket's magnitude,
//     so the same tol works on [0,1] and [0,1e6]
//   - Honest failure – "no root in range" is a sentinel error, never a
//     bogus number; malformed brackets fail fast
//   - Pure functions – no shared state, safe from concurrent call sites
//
// Everything is organized under five subpackages:
//
//	core/     – Func, Point (known/unknown evaluation), Bracket, Epsilon
//	bracket/  – bracket search, golden-section locator, bisection, ITP
//	refine/   – Newton, secant, Laguerre from an initial guess
//	cheb/     – Chebyshev global rootfinder (all roots on an interval)
//	minimize/ – Brent's method and minimization by inspection
//
// Typical flow: bracket.FindRoot walks to a sign change, bracket.ITP
// narrows it to a root; or cheb.New(...).Roots() enumerates candidates
// that refine.Secant polishes to machine accuracy.
//
//	go get github.com/katalvlaran/uniarity
package uniarity
