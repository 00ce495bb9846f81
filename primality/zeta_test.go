package primality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPrimeZeta_AgreesWithSieve(t *testing.T) {
	limit := uint64(1_000_000)
	if testing.Short() {
		limit = 100_000
	}
	ref := referenceSieve(limit + 1)
	for n := uint64(0); n <= limit; n++ {
		require.Equal(t, ref[n], IsPrimeZeta(n), "n=%d", n)
	}
}

func TestIsPrimeZeta_Scenarios(t *testing.T) {
	tests := []struct {
		n    uint64
		want bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{97, true},
		{99, false},
		{10_007, true},
		{1_000_000_007, true},
		{1_000_000_008, false},
		{100_000_000_003, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPrimeZeta(tt.n), "n=%d", tt.n)
	}
}

func TestIsPrimeZeta_SemiprimesWithLargeFactors(t *testing.T) {
	// Both factors clear the small-prime screen, so only the exact
	// verification step can reject these.
	semiprimes := []uint64{
		101 * 103,
		10_007 * 10_009,
		1_000_003 * 1_000_033,
	}
	for _, n := range semiprimes {
		assert.False(t, IsPrimeZeta(n), "n=%d", n)
	}
}

func TestZetaCoherence_NeverOverridesVerification(t *testing.T) {
	// Whatever the zero count, and hence the score and chosen strategy,
	// the verdict must match the exact sieve.
	for _, zeros := range []int{1, 5, 20, 50} {
		algo, err := NewZeta(WithZeros(zeros))
		require.NoError(t, err)
		for n := uint64(0); n <= 5_000; n++ {
			require.Equal(t, IsPrimeSieve(n), algo.IsPrime(n),
				"zeros=%d n=%d", zeros, n)
		}
	}
}

func TestNewZeta(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		algo, err := NewZeta()
		require.NoError(t, err)
		assert.Equal(t, "Riemann Zeta", algo.Name())
		assert.True(t, algo.IsPrime(17))
	})

	t.Run("zeros out of range", func(t *testing.T) {
		_, err := NewZeta(WithZeros(100))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")

		_, err = NewZeta(WithZeros(-1))
		require.Error(t, err)
	})
}

func TestCoherenceScore_Bounded(t *testing.T) {
	for _, n := range []uint64{5, 101, 99991, 1_000_000_007} {
		score := coherenceScore(n, 50)
		assert.GreaterOrEqual(t, score, -1.0, "n=%d", n)
		assert.LessOrEqual(t, score, 1.0, "n=%d", n)
	}
}
