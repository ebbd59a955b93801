package bracket

import "errors"

// Sentinel errors for bracket search and refinement.
//
// The first three are contract violations: the caller handed the algorithm
// inputs that break its preconditions, and no meaningful numeric result
// exists. The last two are search exhaustion: well-formed inputs for which
// the sought feature simply was not found in range, an expected outcome.
var (
	// ErrInvalidBracket indicates bracket endpoints that do not satisfy a < b.
	ErrInvalidBracket = errors.New("bracket: endpoints must satisfy a < b")

	// ErrSameSign indicates a root bracket whose endpoint values share a sign,
	// so no root is certified to lie inside.
	ErrSameSign = errors.New("bracket: f(a) and f(b) must have opposite signs")

	// ErrNegativeStart indicates a minima search started where f is already
	// negative; the search assumes a non-negative starting value.
	ErrNegativeStart = errors.New("bracket: minima search requires f(start) >= 0")

	// ErrNoBracket indicates the walk exhausted its bounds (or walked to a
	// non-finite coordinate) without certifying a bracket.
	ErrNoBracket = errors.New("bracket: no bracket found within the search range")

	// ErrNoNegative indicates no negative value was found: either the walk
	// exhausted its bounds, or the golden-section locator shrank its interval
	// below tolerance with every probe still non-negative.
	ErrNoNegative = errors.New("bracket: no negative value found within tolerance")
)
