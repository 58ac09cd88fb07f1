//go:build unit
// +build unit

package numtheory

import (
	"math/big"
	"testing"

	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModInverse(t *testing.T) {
	tests := []struct {
		name     string
		a, m     int64
		expected int64
	}{
		{"textbook key", 17, 3120, 2753},
		{"small prime modulus", 3, 7, 5},
		{"a larger than m", 10, 7, 5},
		{"one", 1, 5, 1},
		{"negative a", -3, 7, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := ModInverse(big.NewInt(tt.a), big.NewInt(tt.m))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, inv.Int64())
		})
	}
}

func TestModInverse_CoprimePairs(t *testing.T) {
	for m := int64(2); m < 200; m++ {
		bm := big.NewInt(m)
		for a := int64(1); a < 250; a++ {
			ba := big.NewInt(a)
			if new(big.Int).GCD(nil, nil, ba, bm).Cmp(one) != 0 {
				continue
			}
			inv, err := ModInverse(ba, bm)
			require.NoError(t, err)
			assert.True(t, inv.Sign() >= 0 && inv.Cmp(bm) < 0, "inverse %s out of range for m=%d", inv, m)

			product := new(big.Int).Mul(ba, inv)
			assert.Equal(t, int64(1), product.Mod(product, bm).Int64(), "a=%d m=%d", a, m)
		}
	}
}

func TestModInverse_Failures(t *testing.T) {
	_, err := ModInverse(big.NewInt(3), big.NewInt(1))
	assert.ErrorIs(t, err, rsa.ErrDegenerateInverse)

	_, err = ModInverse(big.NewInt(3), big.NewInt(0))
	assert.ErrorIs(t, err, rsa.ErrDegenerateInverse)

	_, err = ModInverse(big.NewInt(10), big.NewInt(4))
	assert.ErrorIs(t, err, rsa.ErrNotInvertible)

	_, err = ModInverse(big.NewInt(14), big.NewInt(7))
	assert.ErrorIs(t, err, rsa.ErrNotInvertible)
}
