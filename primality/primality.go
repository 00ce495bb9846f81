package primality

import "math/bits"

// Test is the capability contract implemented by every primality algorithm.
// Implementations are immutable after construction: IsPrime is a pure
// function of n, never panics, and may be called concurrently without
// locking.
type Test interface {
	// Name returns a fixed human-readable label for the algorithm.
	// It is a display label, not an identifier: the registry does not
	// require names to be unique.
	Name() string

	// IsPrime reports whether n is prime. 0 and 1 are composite by
	// convention. The result is defined for every value of n.
	IsPrime(n uint64) bool
}

// mulMod returns (a * b) mod m without overflow. The 128-bit intermediate
// product is required for correctness near the top of the uint64 range, not
// as an optimization.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	// a and b are already reduced mod m, so hi < m and Div64 cannot panic.
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// powMod returns base^exp mod m using binary exponentiation.
func powMod(base, exp, m uint64) uint64 {
	if m == 1 {
		return 0
	}
	result := uint64(1)
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, m)
		}
		exp >>= 1
		base = mulMod(base, base, m)
	}
	return result
}
