// Package erato is the Go SDK of the erato primality-testing project.
//
// The library decides whether a 64-bit unsigned integer is prime using
// several interchangeable algorithms with different accuracy/speed
// tradeoffs. The algorithms live in the primality subpackage; the registry
// subpackage enumerates them behind a uniform capability contract.
//
// For callers who just want an answer, IsPrime uses the library default.
package erato
