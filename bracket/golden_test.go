package bracket_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/uniarity/bracket"
	"github.com/katalvlaran/uniarity/core"
)

// TestLocateNegative_EndpointEarlyExit verifies both endpoint early exits:
// a negative endpoint is returned without any interior probing.
func TestLocateNegative_EndpointEarlyExit(t *testing.T) {
	calls := 0
	f := func(x float64) float64 {
		calls++

		return x
	}

	p, err := bracket.LocateNegative(f, core.Unknown(-1), core.Unknown(1), 1e-12)
	require.NoError(t, err)
	assert.Equal(t, -1.0, p.X())
	assert.Equal(t, 1, calls, "a negative lower endpoint must exit before evaluating anything else")

	// Pre-evaluated endpoints must be trusted, costing zero evaluations.
	calls = 0
	p, err = bracket.LocateNegative(f, core.Known(-1, -1), core.Known(1, 1), 1e-12)
	require.NoError(t, err)
	assert.Equal(t, -1.0, p.X())
	assert.Zero(t, calls)
}

// TestLocateNegative_InteriorDip verifies golden-section shrinkage digs a
// negative value out of a narrow interior dip.
func TestLocateNegative_InteriorDip(t *testing.T) {
	f := func(x float64) float64 { return (x-1)*(x-1) - 0.01 }

	p, err := bracket.LocateNegative(f, core.Unknown(0), core.Unknown(2), 1e-12)
	require.NoError(t, err)

	fx, known := p.FX()
	require.True(t, known)
	assert.Negative(t, fx)
	assert.InDelta(t, 1.0, p.X(), 0.1, "the hit must land inside the dip around x=1")
}

// TestLocateNegative_NoNegative verifies exhaustion on a strictly positive
// function: the interval shrinks below tolerance and ErrNoNegative comes
// back instead of a fabricated point.
func TestLocateNegative_NoNegative(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }

	_, err := bracket.LocateNegative(f, core.Unknown(-1), core.Unknown(1), 1e-10)
	assert.ErrorIs(t, err, bracket.ErrNoNegative)
}

// TestLocateNegative_InvalidBracket verifies the a < b contract.
func TestLocateNegative_InvalidBracket(t *testing.T) {
	f := func(x float64) float64 { return x }

	_, err := bracket.LocateNegative(f, core.Unknown(1), core.Unknown(1), 1e-12)
	assert.ErrorIs(t, err, bracket.ErrInvalidBracket)

	_, err = bracket.LocateNegative(f, core.Unknown(2), core.Unknown(1), 1e-12)
	assert.ErrorIs(t, err, bracket.ErrInvalidBracket)
}
