package numtheory

import (
	"fmt"
	"math/big"

	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
)

// ModPowWith computes base^exp mod mod by binary square-and-multiply using the
// supplied arithmetic. mod must be greater than one and exp must not be negative.
func ModPowWith[T any](a Arithmetic[T], base, exp, mod T) (T, error) {
	if a.Cmp(mod, a.One()) <= 0 {
		return a.Zero(), rsa.ErrInvalidModulus
	}
	if a.Cmp(exp, a.Zero()) < 0 {
		return a.Zero(), rsa.ErrNegativeExponent
	}

	base = a.Mod(base, mod)
	result := a.Mod(a.One(), mod)
	for !a.IsZero(exp) {
		if a.IsOdd(exp) {
			result = a.MulMod(result, base, mod)
		}
		base = a.MulMod(base, base, mod)
		exp = a.Half(exp)
	}
	return result, nil
}

// ModPow returns base^exp mod mod. Operands that fit in a machine word take the
// uint64 path; everything else runs on math/big.
func ModPow(base, exp, mod *big.Int) (*big.Int, error) {
	if mod.Cmp(big.NewInt(1)) <= 0 {
		return nil, fmt.Errorf("failed to compute modpow for modulus %s: %w", mod, rsa.ErrInvalidModulus)
	}
	if exp.Sign() < 0 {
		return nil, fmt.Errorf("failed to compute modpow for exponent %s: %w", exp, rsa.ErrNegativeExponent)
	}

	if base.IsUint64() && exp.IsUint64() && mod.IsUint64() {
		r, err := ModPowWith[uint64](Uint64Arithmetic{}, base.Uint64(), exp.Uint64(), mod.Uint64())
		if err != nil {
			return nil, err
		}
		return new(big.Int).SetUint64(r), nil
	}

	return ModPowWith[*big.Int](BigArithmetic{}, base, exp, mod)
}
