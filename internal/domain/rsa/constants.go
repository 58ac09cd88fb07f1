package rsa

// DefaultExponentLowerBound is the smallest public exponent the generator draws.
const DefaultExponentLowerBound = 3

// Prime modes recorded with every persisted key
const (
	// PrimeModeExact marks keys whose primes were confirmed by trial division.
	PrimeModeExact = "exact"

	// PrimeModeQuick marks keys whose primes passed the Fermat test only.
	PrimeModeQuick = "quick"

	// PrimeModeManual marks keys built from user supplied primes.
	PrimeModeManual = "manual"
)

// Random source names
const (
	// RandomSourceTick selects the tick-seeded, non-cryptographic source.
	RandomSourceTick = "tick"

	// RandomSourceCrypto selects crypto/rand.
	RandomSourceCrypto = "crypto"
)
