// Package cryptography implements textbook RSA on top of the numtheory package:
// key generation with a regeneration watchdog and per-character encryption.
//
// Nothing here is padded or constant time. Keys and ciphertexts are suitable for
// teaching and experimentation only.
package cryptography
