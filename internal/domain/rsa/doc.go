// Package rsa defines the core types and contracts of the textbook RSA toolkit:
// key material, ciphertext, key generation options, persisted key records and the
// interfaces implemented by the number theory and cryptography layers.
//
// Nothing in this package is suitable for protecting real data. There is no padding,
// the default randomness source is predictable and exponents are small.
package rsa
