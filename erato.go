package erato

import "github.com/erato-dev/erato/go/primality"

// IsPrime reports whether n is prime using the library default algorithm,
// the zeta spectral test. The spectral signature only steers the search;
// the result is always exact.
func IsPrime(n uint64) bool {
	return primality.IsPrimeZeta(n)
}
