// Package numtheory implements the number theory underneath textbook RSA:
// square-and-multiply modular exponentiation, exact and Fermat primality tests,
// bounded prime search, the extended Euclidean modular inverse and the random
// sources the prime search draws from.
//
// All routines operate on math/big values and never mutate their arguments.
package numtheory
