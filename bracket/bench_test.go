package bracket_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/uniarity/bracket"
	"github.com/katalvlaran/uniarity/core"
)

// BenchmarkBisection measures the fixed-rate refiner on a transcendental
// root at full precision.
func BenchmarkBisection(b *testing.B) {
	f := func(x float64) float64 { return x*math.Exp(x) - 1 }

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bracket.Bisection(f, core.Unknown(0), core.Unknown(2), machEps)
	}
}

// BenchmarkITP measures the superlinear refiner on the same root; expect a
// small fraction of bisection's evaluations.
func BenchmarkITP(b *testing.B) {
	f := func(x float64) float64 { return x*math.Exp(x) - 1 }

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bracket.ITP(f, core.Unknown(0), core.Unknown(2), machEps)
	}
}
