// Package core defines the primitives shared by every uniarity algorithm:
// the target-function type, evaluation points that remember whether their
// function value is already known, brackets, and the scale-invariant
// tolerance conversion.
//
// The target function is a black box that may be arbitrarily expensive, so
// the central design concern is never evaluating it redundantly. Point is
// the mechanism: callers construct one from a bare coordinate (Unknown) or
// a coordinate whose value they already computed (Known), and each
// algorithm entry point calls Resolve exactly once, which evaluates the
// function only when the value is missing.
//
// All types are immutable values; there is no shared state and every
// function here is safe to call from concurrent call sites.
package core
