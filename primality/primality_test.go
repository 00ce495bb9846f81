package primality

import (
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Test = SieveAlgorithm{}
	_ Test = MillerRabinAlgorithm{}
	_ Test = ZetaAlgorithm{}
)

func TestMulMod_AgainstBigInt(t *testing.T) {
	cases := []struct{ a, b, m uint64 }{
		{3, 5, 7},
		{1 << 32, 1 << 32, 1_000_000_007},
		{18_446_744_073_709_551_556, 18_446_744_073_709_551_556, 18_446_744_073_709_551_557},
		{9_999_999_999_999_999_999, 123_456_789_123_456_789, 9_223_372_036_854_775_783},
	}
	for _, tc := range cases {
		want := new(big.Int).Mul(new(big.Int).SetUint64(tc.a), new(big.Int).SetUint64(tc.b))
		want.Mod(want, new(big.Int).SetUint64(tc.m))
		got := mulMod(tc.a%tc.m, tc.b%tc.m, tc.m)
		require.Equal(t, want.Uint64(), got, "a=%d b=%d m=%d", tc.a, tc.b, tc.m)
	}
}

func TestPowMod_AgainstBigInt(t *testing.T) {
	cases := []struct{ base, exp, m uint64 }{
		{2, 10, 1_000},
		{2, 1 << 40, 1_000_000_007},
		{12_345_678_901, 98_765_432_109, 18_446_744_073_709_551_557},
	}
	for _, tc := range cases {
		want := new(big.Int).Exp(
			new(big.Int).SetUint64(tc.base),
			new(big.Int).SetUint64(tc.exp),
			new(big.Int).SetUint64(tc.m),
		)
		require.Equal(t, want.Uint64(), powMod(tc.base, tc.exp, tc.m), "base=%d exp=%d m=%d", tc.base, tc.exp, tc.m)
	}
}

func TestAlgorithms_ConcurrentInvocation(t *testing.T) {
	algos := []Test{SieveAlgorithm{}, MillerRabinAlgorithm{}, ZetaAlgorithm{}}
	inputs := []uint64{0, 1, 2, 97, 100, 1009, 1_000_003, 1_000_000_007}

	var wg sync.WaitGroup
	for _, algo := range algos {
		for g := 0; g < 8; g++ {
			wg.Add(1)
			go func(algo Test) {
				defer wg.Done()
				for _, n := range inputs {
					assert.Equal(t, IsPrimeSieve(n), algo.IsPrime(n), "n=%d", n)
				}
			}(algo)
		}
	}
	wg.Wait()
}
