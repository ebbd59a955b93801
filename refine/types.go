package refine

import "errors"

// ErrBadMaxIterations reports a non-positive iteration cap passed to
// WithMaxIterations.
var ErrBadMaxIterations = errors.New("refine: MaxIterations must be positive")

// DefaultMaxIterations is the iteration cap applied when no option
// overrides it. The cap is a pragmatic safety net, not a convergence
// guarantee: exhausting it is not reported as an error, the best available
// estimate is returned.
const DefaultMaxIterations = 100

// Options configures the refiners.
//
// MaxIterations – hard cap on update steps (must be positive).
type Options struct {
	MaxIterations int
}

// Option is a functional option for configuring a refiner.
type Option func(*Options)

// WithMaxIterations overrides the iteration cap. The observable defaults of
// the refiners do not change unless this option is supplied.
// Panics on n <= 0.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = n
	}
}

// DefaultOptions returns the Options every refiner starts from before
// applying functional overrides.
func DefaultOptions() Options {
	return Options{MaxIterations: DefaultMaxIterations}
}
