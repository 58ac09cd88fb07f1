package numtheory

import (
	"fmt"
	"math/big"

	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
)

// ModInverse returns x in [0, m) with a*x ≡ 1 (mod m). It runs the iterative
// extended Euclidean algorithm and only tracks the Bézout coefficient of a.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m.Cmp(one) <= 0 {
		return nil, fmt.Errorf("failed to invert %s modulo %s: %w", a, m, rsa.ErrDegenerateInverse)
	}

	r0 := new(big.Int).Mod(a, m)
	r1 := new(big.Int).Set(m)
	x0, x1 := new(big.Int), big.NewInt(1)
	q, t := new(big.Int), new(big.Int)

	for r0.Cmp(one) > 0 {
		if r1.Sign() == 0 {
			return nil, fmt.Errorf("failed to invert %s modulo %s, gcd is %s: %w", a, m, r0, rsa.ErrNotInvertible)
		}
		q.Div(r0, r1)
		t.Set(r1)
		r1.Mod(r0, r1)
		r0.Set(t)

		t.Set(x0)
		x0.Sub(x1, new(big.Int).Mul(q, x0))
		x1.Set(t)
	}
	if r0.Sign() == 0 {
		return nil, fmt.Errorf("failed to invert %s modulo %s: %w", a, m, rsa.ErrNotInvertible)
	}

	if x1.Sign() < 0 {
		x1.Add(x1, m)
	}
	return x1, nil
}
