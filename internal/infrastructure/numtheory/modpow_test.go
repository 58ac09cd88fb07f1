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

func TestModPow(t *testing.T) {
	tests := []struct {
		name     string
		base     int64
		exp      int64
		mod      int64
		expected int64
	}{
		{"encrypt A with e=17", 65, 17, 3233, 2790},
		{"decrypt with d=2753", 2790, 2753, 3233, 65},
		{"zero exponent", 12345, 0, 97, 1},
		{"first power reduces base", 200, 1, 97, 200 % 97},
		{"zero base", 0, 5, 13, 0},
		{"modulus two", 7, 3, 2, 1},
		{"negative base is reduced first", -2, 3, 7, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ModPow(big.NewInt(tt.base), big.NewInt(tt.exp), big.NewInt(tt.mod))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Int64())
		})
	}
}

func TestModPow_InvalidArguments(t *testing.T) {
	for _, mod := range []int64{1, 0, -5} {
		_, err := ModPow(big.NewInt(3), big.NewInt(2), big.NewInt(mod))
		assert.ErrorIs(t, err, rsa.ErrInvalidModulus, "modulus %d", mod)
	}

	_, err := ModPow(big.NewInt(3), big.NewInt(-1), big.NewInt(7))
	assert.ErrorIs(t, err, rsa.ErrNegativeExponent)
}

func TestModPow_MatchesMathBig(t *testing.T) {
	mod, ok := new(big.Int).SetString("170141183460469231731687303715884105727", 10) // 2^127-1
	require.True(t, ok)
	base, _ := new(big.Int).SetString("98765432109876543210987654321", 10)
	exp, _ := new(big.Int).SetString("123456789123456789123456789", 10)

	result, err := ModPow(base, exp, mod)
	require.NoError(t, err)
	assert.Equal(t, 0, new(big.Int).Exp(base, exp, mod).Cmp(result))

	zero, err := ModPow(base, big.NewInt(0), mod)
	require.NoError(t, err)
	assert.Equal(t, int64(1), zero.Int64())
}

func TestModPowWith_ArithmeticsAgree(t *testing.T) {
	moduli := []uint64{2, 3, 97, 3233, 1<<61 - 1, 1<<64 - 59}
	for _, m := range moduli {
		for _, b := range []uint64{0, 1, 2, 65, 1<<63 + 12345} {
			for _, e := range []uint64{0, 1, 2, 17, 65537, 1<<40 + 7} {
				small, err := ModPowWith[uint64](Uint64Arithmetic{}, b, e, m)
				require.NoError(t, err)

				large, err := ModPowWith[*big.Int](BigArithmetic{},
					new(big.Int).SetUint64(b), new(big.Int).SetUint64(e), new(big.Int).SetUint64(m))
				require.NoError(t, err)

				assert.Equal(t, large.Uint64(), small, "base=%d exp=%d mod=%d", b, e, m)
			}
		}
	}
}

func TestModPowWith_RejectsDegenerateModulus(t *testing.T) {
	_, err := ModPowWith[uint64](Uint64Arithmetic{}, 5, 3, 1)
	assert.ErrorIs(t, err, rsa.ErrInvalidModulus)
}
