package rsa

import "errors"

var (
	// ErrInvalidModulus is returned when a modulus <= 1 is passed to modular exponentiation.
	ErrInvalidModulus = errors.New("rsa: modulus must be greater than 1")

	// ErrNegativeExponent is returned when modular exponentiation is asked for a negative power.
	ErrNegativeExponent = errors.New("rsa: exponent must not be negative")

	// ErrDegenerateInverse is returned when a modulus <= 1 is passed to the modular inverse.
	ErrDegenerateInverse = errors.New("rsa: modular inverse undefined for modulus <= 1")

	// ErrNotInvertible is returned when gcd(a, m) != 1.
	ErrNotInvertible = errors.New("rsa: value is not invertible modulo m")

	// ErrInvalidRange is returned for prime search bounds that describe an empty or negative range.
	ErrInvalidRange = errors.New("rsa: invalid prime search range")

	// ErrNoPrimeInRange is returned when a bounded prime search wrapped twice without a hit.
	ErrNoPrimeInRange = errors.New("rsa: no prime found in range")

	// ErrKeyGenerationTimeout is returned when the exponent watchdog fired more often than allowed.
	ErrKeyGenerationTimeout = errors.New("rsa: key generation timed out")

	// ErrKeyGenerationExhausted is returned when the distinct prime search ran out of attempts.
	ErrKeyGenerationExhausted = errors.New("rsa: key generation exhausted")

	// ErrMalformedNumber is returned when a decimal token cannot be parsed.
	ErrMalformedNumber = errors.New("rsa: malformed decimal number")

	// ErrInvalidKeyMaterial is returned when key components violate the RSA invariants.
	ErrInvalidKeyMaterial = errors.New("rsa: invalid key material")

	// ErrKeyNotFound is returned by repositories when no key matches an ID.
	ErrKeyNotFound = errors.New("rsa: key not found")
)
