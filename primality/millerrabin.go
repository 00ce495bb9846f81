package primality

import "fmt"

// deterministicWitnesses is exact for every n representable in 64 bits:
// no composite below 2^64 passes all twelve bases.
var deterministicWitnesses = [...]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// millerRabinConfig holds the tunables for MillerRabinAlgorithm.
type millerRabinConfig struct {
	// Rounds bounds how many witnesses are drawn from the deterministic
	// base set. 0, or any value of at least 12, selects the full set and
	// makes the test exact for all uint64 inputs.
	Rounds uint32 `json:"rounds" validate:"lte=64"`
}

func defaultMillerRabinConfig() millerRabinConfig {
	return millerRabinConfig{Rounds: 0}
}

// MillerRabinOption configures a MillerRabinAlgorithm.
type MillerRabinOption func(*millerRabinConfig)

// WithRounds bounds the number of witnesses used per call. Fewer rounds
// trade a false-positive probability of at most 4^-rounds for speed;
// increasing rounds can only move a verdict from "probably prime" toward
// "composite", never the other way.
func WithRounds(rounds uint32) MillerRabinOption {
	return func(c *millerRabinConfig) {
		c.Rounds = rounds
	}
}

// MillerRabinAlgorithm is the Miller-Rabin primality test. The zero value
// uses the full deterministic witness set and is ready to use; NewMillerRabin
// builds a round-limited instance.
//
// Runs in O(k log³ n) for k witnesses, which makes it the algorithm of
// choice for large inputs.
type MillerRabinAlgorithm struct {
	rounds uint32
}

// NewMillerRabin creates a MillerRabinAlgorithm with the given options.
func NewMillerRabin(opts ...MillerRabinOption) (MillerRabinAlgorithm, error) {
	cfg := defaultMillerRabinConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateConfig(&cfg); err != nil {
		return MillerRabinAlgorithm{}, fmt.Errorf("miller-rabin: %w", err)
	}
	return MillerRabinAlgorithm{rounds: cfg.Rounds}, nil
}

// Name implements Test.
func (MillerRabinAlgorithm) Name() string { return "Miller-Rabin" }

// IsPrime implements Test.
func (a MillerRabinAlgorithm) IsPrime(n uint64) bool { return IsPrimeMillerRabin(n, a.rounds) }

// ConfigModel exposes the algorithm's tunables for schema generation.
func (MillerRabinAlgorithm) ConfigModel() any { return millerRabinConfig{} }

// IsPrimeMillerRabin reports whether n is prime using the Miller-Rabin test
// with the first min(rounds, 12) bases of the deterministic witness set.
// rounds of 0, or of 12 and above, selects the full set, which makes the
// result exact for every uint64 input; smaller values bound the
// false-positive probability by 4^-rounds.
func IsPrimeMillerRabin(n uint64, rounds uint32) bool {
	if n < 2 {
		return false
	}
	if n == 2 || n == 3 {
		return true
	}
	if n%2 == 0 {
		return false
	}

	// Express n-1 as d * 2^s with d odd.
	d := n - 1
	s := uint(0)
	for d%2 == 0 {
		d >>= 1
		s++
	}

	witnesses := deterministicWitnesses[:]
	if rounds > 0 && int(rounds) < len(witnesses) {
		witnesses = witnesses[:rounds]
	}

	for _, a := range witnesses {
		a %= n
		if a == 0 {
			continue
		}
		if !witnessPasses(a, d, s, n) {
			return false
		}
	}
	return true
}

// witnessPasses reports whether base a is consistent with n being prime.
// A false return proves n composite.
func witnessPasses(a, d uint64, s uint, n uint64) bool {
	x := powMod(a, d, n)
	if x == 1 || x == n-1 {
		return true
	}
	for i := uint(1); i < s; i++ {
		x = mulMod(x, x, n)
		if x == n-1 {
			return true
		}
	}
	return false
}
