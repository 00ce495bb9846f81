package primality

import (
	"fmt"
	"math"
)

// zetaZeros holds the imaginary parts of the first 50 non-trivial zeros of
// the Riemann zeta function on the critical line. Read-only after process
// start; the frequencies drive the oscillatory signature below.
var zetaZeros = [50]float64{
	14.134725142, 21.022039639, 25.010857580, 30.424876126, 32.935061588,
	37.586178159, 40.918719012, 43.327073281, 48.005150881, 49.773832478,
	52.970321478, 56.446247697, 59.347044003, 60.831778525, 65.112544048,
	67.079810529, 69.546401711, 72.067157674, 75.704690699, 77.144840069,
	79.337375020, 82.910380854, 84.735492981, 87.425274613, 88.809111208,
	92.491899271, 94.651344041, 95.870634228, 98.831194218, 101.317851006,
	103.725538040, 105.446623052, 107.168611184, 111.029535543, 111.874659177,
	114.320220915, 116.226680321, 118.790782866, 121.370125002, 122.946829294,
	124.256818554, 127.516683880, 129.578704200, 131.087688531, 133.497737203,
	134.756509753, 138.116042055, 139.736208952, 141.123707404, 143.111845808,
}

// smallPrimes screens candidates below 100² before any spectral analysis.
var smallPrimes = [...]uint64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47,
	53, 59, 61, 67, 71, 73, 79, 83, 89, 97,
}

// zetaConfig holds the tunables for ZetaAlgorithm.
type zetaConfig struct {
	// Zeros is how many entries of the zero-frequency table contribute to
	// the coherence score. 0 selects the adaptive default, which uses more
	// zeros as n grows.
	Zeros int `json:"zeros" validate:"gte=0,lte=50"`
}

func defaultZetaConfig() zetaConfig {
	return zetaConfig{Zeros: 0}
}

// ZetaOption configures a ZetaAlgorithm.
type ZetaOption func(*zetaConfig)

// WithZeros fixes the number of zeta zeros used for the coherence score.
// More zeros sharpen the signature at the cost of more cosine evaluations;
// the final verdict is unaffected either way.
func WithZeros(n int) ZetaOption {
	return func(c *zetaConfig) {
		c.Zeros = n
	}
}

// ZetaAlgorithm is a hybrid spectral primality test. The zero value is
// ready to use.
//
// The Riemann-von Mangoldt explicit formula ties the prime-counting
// function to oscillations at the zero frequencies γ: under RH each zero
// contributes a cos(γ·ln n) term. Summing those terms gives a coherence
// score that correlates with prime density, and the score picks which
// exact verifier to run first: a coherent signature suggests a prime, for
// which the deterministic Miller-Rabin pass is fastest, while an
// incoherent one suggests a composite, for which ascending trial division
// finds a small factor quickly. The heuristic only orders the search; the
// published answer always comes from the exact verifier.
type ZetaAlgorithm struct {
	zeros int
}

// NewZeta creates a ZetaAlgorithm with the given options.
func NewZeta(opts ...ZetaOption) (ZetaAlgorithm, error) {
	cfg := defaultZetaConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateConfig(&cfg); err != nil {
		return ZetaAlgorithm{}, fmt.Errorf("zeta: %w", err)
	}
	return ZetaAlgorithm{zeros: cfg.Zeros}, nil
}

// Name implements Test.
func (ZetaAlgorithm) Name() string { return "Riemann Zeta" }

// IsPrime implements Test.
func (a ZetaAlgorithm) IsPrime(n uint64) bool { return isPrimeZeta(n, a.zeros) }

// ConfigModel exposes the algorithm's tunables for schema generation.
func (ZetaAlgorithm) ConfigModel() any { return zetaConfig{} }

// IsPrimeZeta reports whether n is prime using the spectral test with the
// adaptive zero count. Exact for all uint64 inputs: the zeta signature
// chooses the verification strategy but never the answer.
func IsPrimeZeta(n uint64) bool { return isPrimeZeta(n, 0) }

func isPrimeZeta(n uint64, zeros int) bool {
	if n < 2 {
		return false
	}
	if n == 2 || n == 3 {
		return true
	}
	if n%2 == 0 {
		return false
	}

	for _, p := range smallPrimes {
		if n == p {
			return true
		}
		if n%p == 0 {
			return false
		}
	}

	if zeros == 0 {
		zeros = adaptiveZeroCount(n)
	}

	// The sign of the coherence score selects the verifier: constructive
	// interference is the prime-like signature.
	if coherenceScore(n, zeros) >= 0 {
		return IsPrimeMillerRabin(n, 0)
	}
	return trialDivideFrom101(n)
}

// adaptiveZeroCount trades accuracy of the signature against cosine count.
// Larger n needs more frequencies before the oscillations resolve.
func adaptiveZeroCount(n uint64) int {
	switch {
	case n < 1_000:
		return 20
	case n < 10_000:
		return 30
	default:
		return 40
	}
}

// coherenceScore sums cos(γ·ln n) over the first zeros entries of the
// frequency table, normalized to [-1, 1]. Primes tend toward constructive
// interference (positive score), composites toward destructive.
func coherenceScore(n uint64, zeros int) float64 {
	logN := math.Log(float64(n))
	sum := 0.0
	for _, gamma := range zetaZeros[:zeros] {
		sum += math.Cos(gamma * logN)
	}
	return sum / float64(zeros)
}

// trialDivideFrom101 is the exact composite-leaning verifier. Divisibility
// by every prime below 100 has already been screened, so candidates start
// at 101 and walk the 6k±1 ladder up to √n.
func trialDivideFrom101(n uint64) bool {
	for d := uint64(101); d <= n/d; d += 6 {
		if n%d == 0 || n%(d+2) == 0 {
			return false
		}
	}
	return true
}
