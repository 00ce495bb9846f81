package primality

// SieveAlgorithm is the exact trial-division primality test. The zero value
// is ready to use.
//
// Every divisor of the form 6k±1 up to √n is tried, so the test runs in
// O(√n) and never reports a false positive or negative. Best suited to
// small and medium inputs.
type SieveAlgorithm struct{}

// Name implements Test.
func (SieveAlgorithm) Name() string { return "Sieve of Eratosthenes" }

// IsPrime implements Test.
func (SieveAlgorithm) IsPrime(n uint64) bool { return IsPrimeSieve(n) }

// IsPrimeSieve reports whether n is prime using trial division by 2, 3 and
// every 6k±1 candidate up to √n. Exact for all uint64 inputs.
func IsPrimeSieve(n uint64) bool {
	if n < 2 {
		return false
	}
	if n == 2 || n == 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	// d <= n/d is d*d <= n without the 64-bit overflow.
	for d := uint64(5); d <= n/d; d += 6 {
		if n%d == 0 || n%(d+2) == 0 {
			return false
		}
	}
	return true
}
