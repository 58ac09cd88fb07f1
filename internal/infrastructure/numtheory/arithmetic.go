package numtheory

import (
	"math/big"
	"math/bits"
)

// Arithmetic is the set of operations modular exponentiation needs from an
// integer representation. Implementations must not mutate their arguments.
type Arithmetic[T any] interface {
	Zero() T
	One() T
	Cmp(x, y T) int
	Mod(x, m T) T
	MulMod(x, y, m T) T
	IsZero(x T) bool
	IsOdd(x T) bool
	Half(x T) T
}

// BigArithmetic implements Arithmetic for *big.Int.
type BigArithmetic struct{}

// Zero returns 0.
func (BigArithmetic) Zero() *big.Int { return new(big.Int) }

// One returns 1.
func (BigArithmetic) One() *big.Int { return big.NewInt(1) }

// Cmp compares x and y.
func (BigArithmetic) Cmp(x, y *big.Int) int { return x.Cmp(y) }

// Mod returns the Euclidean remainder, always in [0, m).
func (BigArithmetic) Mod(x, m *big.Int) *big.Int { return new(big.Int).Mod(x, m) }

// MulMod returns x*y mod m.
func (BigArithmetic) MulMod(x, y, m *big.Int) *big.Int {
	z := new(big.Int).Mul(x, y)
	return z.Mod(z, m)
}

// IsZero reports whether x == 0.
func (BigArithmetic) IsZero(x *big.Int) bool { return x.Sign() == 0 }

// IsOdd reports whether the lowest bit of x is set.
func (BigArithmetic) IsOdd(x *big.Int) bool { return x.Bit(0) == 1 }

// Half returns x >> 1.
func (BigArithmetic) Half(x *big.Int) *big.Int { return new(big.Int).Rsh(x, 1) }

// Uint64Arithmetic implements Arithmetic for machine words. Products are formed
// in 128 bits so any uint64 modulus is safe.
type Uint64Arithmetic struct{}

// Zero returns 0.
func (Uint64Arithmetic) Zero() uint64 { return 0 }

// One returns 1.
func (Uint64Arithmetic) One() uint64 { return 1 }

// Cmp compares x and y.
func (Uint64Arithmetic) Cmp(x, y uint64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// Mod returns x mod m.
func (Uint64Arithmetic) Mod(x, m uint64) uint64 { return x % m }

// MulMod returns x*y mod m without overflow.
func (Uint64Arithmetic) MulMod(x, y, m uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	return bits.Rem64(hi, lo, m)
}

// IsZero reports whether x == 0.
func (Uint64Arithmetic) IsZero(x uint64) bool { return x == 0 }

// IsOdd reports whether x is odd.
func (Uint64Arithmetic) IsOdd(x uint64) bool { return x&1 == 1 }

// Half returns x >> 1.
func (Uint64Arithmetic) Half(x uint64) uint64 { return x >> 1 }
