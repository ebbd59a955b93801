// Package refine locates a root of a univariate function from an initial
// approximation, without requiring a bracket.
//
// Three refiners, in increasing derivative demand:
//
//   - Secant   – two starting points, no derivatives; superlinear (~1.618).
//   - Newton   – f and f'; quadratic near a simple root.
//   - Laguerre – f, f', and f'' plus an acceleration parameter m; cubic
//     near a simple root, degenerating to Newton's update at m = 1.
//
// Unlike the bracket-based refiners, none of these carries a convergence
// guarantee: each stops on its tolerance conditions or after a fixed
// iteration cap (default 100, see WithMaxIterations) and returns its best
// current estimate with no explicit signal. Callers needing a correctness
// guarantee must verify the residual |f(x)| themselves; this is a
// documented contract, not hidden behavior.
package refine
