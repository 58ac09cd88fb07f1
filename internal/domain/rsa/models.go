package rsa

import (
	"fmt"
	"math/big"
	"time"
)

var one = big.NewInt(1)

// PublicKey is the (n, e) half of a key pair.
type PublicKey struct {
	N *big.Int
	E *big.Int
}

// PrivateKey is the (n, d) half of a key pair.
type PrivateKey struct {
	N *big.Int
	D *big.Int
}

// Ciphertext holds one encrypted value per plaintext byte, in plaintext order.
type Ciphertext []*big.Int

// KeyMaterial is a complete textbook RSA key: both primes, the modulus, the totient
// and both exponents. It is immutable; every accessor returns a copy.
type KeyMaterial struct {
	p1, p2 *big.Int
	n, m   *big.Int
	e, d   *big.Int
}

// NewKeyMaterial derives n and m from the primes and checks e*d ≡ 1 (mod m).
// Primality of p1 and p2 is the caller's responsibility.
func NewKeyMaterial(p1, p2, e, d *big.Int) (*KeyMaterial, error) {
	if p1 == nil || p2 == nil || e == nil || d == nil {
		return nil, fmt.Errorf("%w: all of p1, p2, e and d are required", ErrInvalidKeyMaterial)
	}

	n := new(big.Int).Mul(p1, p2)
	m := new(big.Int).Mul(new(big.Int).Sub(p1, one), new(big.Int).Sub(p2, one))

	k := &KeyMaterial{
		p1: new(big.Int).Set(p1),
		p2: new(big.Int).Set(p2),
		n:  n,
		m:  m,
		e:  new(big.Int).Set(e),
		d:  new(big.Int).Set(d),
	}
	if err := k.Validate(); err != nil {
		return nil, err
	}
	return k, nil
}

// Validate checks the structural invariants of the key.
func (k *KeyMaterial) Validate() error {
	if k.p1.Cmp(k.p2) == 0 {
		return fmt.Errorf("%w: p1 and p2 must differ", ErrInvalidKeyMaterial)
	}
	if k.p1.Cmp(one) <= 0 || k.p2.Cmp(one) <= 0 {
		return fmt.Errorf("%w: primes must be greater than 1", ErrInvalidKeyMaterial)
	}
	if k.n.Cmp(new(big.Int).Mul(k.p1, k.p2)) != 0 {
		return fmt.Errorf("%w: n != p1*p2", ErrInvalidKeyMaterial)
	}
	if k.m.Sign() <= 0 {
		return fmt.Errorf("%w: totient must be positive", ErrInvalidKeyMaterial)
	}
	if k.m.Cmp(one) == 0 {
		// every residue is congruent modulo 1
		return nil
	}
	ed := new(big.Int).Mul(k.e, k.d)
	if ed.Mod(ed, k.m).Cmp(one) != 0 {
		return fmt.Errorf("%w: e*d mod m != 1", ErrInvalidKeyMaterial)
	}
	return nil
}

// P1 returns the first prime factor.
func (k *KeyMaterial) P1() *big.Int { return new(big.Int).Set(k.p1) }

// P2 returns the second prime factor.
func (k *KeyMaterial) P2() *big.Int { return new(big.Int).Set(k.p2) }

// N returns the modulus.
func (k *KeyMaterial) N() *big.Int { return new(big.Int).Set(k.n) }

// M returns the totient.
func (k *KeyMaterial) M() *big.Int { return new(big.Int).Set(k.m) }

// E returns the public exponent.
func (k *KeyMaterial) E() *big.Int { return new(big.Int).Set(k.e) }

// D returns the private exponent.
func (k *KeyMaterial) D() *big.Int { return new(big.Int).Set(k.d) }

// PublicKey returns (n, e).
func (k *KeyMaterial) PublicKey() PublicKey {
	return PublicKey{N: k.N(), E: k.E()}
}

// PrivateKey returns (n, d).
func (k *KeyMaterial) PrivateKey() PrivateKey {
	return PrivateKey{N: k.N(), D: k.D()}
}

// KeyGenOptions controls a single key generation run. Nil fields fall back to
// auto-generation; supplied values are passed through unchecked for primality.
type KeyGenOptions struct {
	// Lower and Upper bound the prime search. Both nil selects the default range
	// of the chosen predicate.
	Lower *big.Int
	Upper *big.Int

	// Quick selects the Fermat predicate instead of trial division.
	Quick bool

	// P1 and P2 are user supplied primes. Either both or neither must be set.
	P1 *big.Int
	P2 *big.Int

	// E is a user supplied public exponent.
	E *big.Int

	// OnRegenerate is called each time the exponent watchdog replaces the prime pair.
	OnRegenerate func(event RegenerationEvent)
}

// RegenerationEvent describes one firing of the exponent search watchdog.
type RegenerationEvent struct {
	Attempt int
	Elapsed time.Duration
	Reason  string
}

const (
	// RegenerationReasonTimeout means the exponent search exceeded the watchdog timeout.
	RegenerationReasonTimeout = "timeout"

	// RegenerationReasonAttempts means the exponent search used up its draw budget.
	RegenerationReasonAttempts = "attempts"
)

// KeyGenReport summarizes how a key was produced.
type KeyGenReport struct {
	PrimeAttempts    int
	ExponentAttempts int
	Regenerations    int
	Duration         time.Duration
}
