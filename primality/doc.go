// Package primality provides interchangeable primality tests for 64-bit
// unsigned integers behind a single capability contract.
//
// Three implementations are included: an exact trial-division sieve, a
// Miller-Rabin test that is deterministic for every uint64 input, and a
// spectral test that steers its exact verification step with the imaginary
// parts of the first 50 non-trivial Riemann zeta zeros. Every implementation
// is stateless after construction and safe for concurrent use.
package primality
