// This file declares Func, Point, Bracket, and the Epsilon tolerance
// conversion used by every interval algorithm in the module.
package core

import "math"

// Func is a continuous, single-argument, real-valued target function.
// Implementations must be reentrant if the caller invokes uniarity
// algorithms from multiple goroutines.
type Func func(x float64) float64

// Point is an x-coordinate on a function, along with a potentially-known
// evaluation at that coordinate. It is a tagged value: either the function
// value at X is known exactly as previously computed, or it is unknown and
// will be computed on Resolve. Point is immutable, so a known value can
// never go stale.
type Point struct {
	x     float64
	fx    float64
	known bool
}

// Unknown constructs a Point whose function value has not been computed.
func Unknown(x float64) Point {
	return Point{x: x}
}

// Known constructs a Point whose function value fx was previously computed
// as f(x). Callers are responsible for fx actually being f(x); algorithms
// trust it and will not re-evaluate.
func Known(x, fx float64) Point {
	return Point{x: x, fx: fx, known: true}
}

// X returns the x-coordinate, regardless of whether the evaluation is known.
func (p Point) X() float64 {
	return p.x
}

// FX returns the known function value and true, or zero and false when the
// value has not been computed yet.
func (p Point) FX() (float64, bool) {
	return p.fx, p.known
}

// Resolve returns the coordinate and its function value, evaluating f
// exactly once iff the value is unknown.
func (p Point) Resolve(f Func) (float64, float64) {
	if p.known {
		return p.x, p.fx
	}

	return p.x, f(p.x)
}

// Bracket is an ordered pair of points (A.X() < B.X()) certifying that the
// interval between them contains a root or a minimum:
//
//   - root bracket:   f(A) and f(B) have opposite signs, so by the
//     intermediate value theorem a continuous f has a root inside;
//   - minima bracket: f was observed to increase past a candidate in both
//     directions, so a minimum lies strictly inside.
type Bracket struct {
	// A is the lower endpoint.
	A Point

	// B is the upper endpoint.
	B Point
}

// Epsilon converts the relative tolerance tol into an absolute width
// anchored to the magnitude of the interval [a, b]:
//
//	epsilon = 2·tol·max(|a|, |b|)
//
// Anchoring to the bracket keeps convergence criteria scale-invariant: the
// same tol terminates at the same relative accuracy whether the bracket
// spans [0, 1] or [0, 1e6].
func Epsilon(a, b, tol float64) float64 {
	return 2 * tol * math.Max(math.Abs(a), math.Abs(b))
}
