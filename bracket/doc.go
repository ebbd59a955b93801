// Package bracket locates intervals that certify a root, minimum, or
// negative value of a black-box function, and refines root brackets to a
// precise root.
//
// A root bracket is a pair of abscissae a < b such that f(a) and f(b) have
// different signs; by the intermediate value theorem a continuous f must
// have a root between them. A minima bracket is a pair a < b such that both
// f(a) and f(b) exceed some minimum contained between them.
//
// Search (exponential step-doubling walks):
//
//   - FindRoot     – walk until a sign change; no bounds, stops when the
//     walked coordinate is no longer finite.
//   - FindMin      – walk downhill until f increases past a candidate,
//     bounded by [minX, maxX]; the returned bracket is widened backward by
//     half the last step so the minimum lies strictly inside.
//   - FindNegative – walk downhill until a negative value is observed, or a
//     minima bracket forms and is handed to LocateNegative.
//
// Refinement (guaranteed convergence on a valid root bracket):
//
//   - Bisection – classic halving; width shrinks by 2 each iteration.
//   - ITP       – interpolate, truncate, project; superlinear on average
//     with worst-case bisection guarantees.
//
// LocateNegative golden-section-shrinks a bracket known to contain a
// sub-zero value, probing both interior points for an early exit.
//
// Tolerances are relative and converted via core.Epsilon, so termination is
// scale-invariant. Search exhaustion is reported as ErrNoBracket or
// ErrNoNegative: an expected outcome the caller must handle, distinct from
// the contract errors (ErrInvalidBracket, ErrSameSign, ErrNegativeStart)
// that signal a malformed call.
package bracket
