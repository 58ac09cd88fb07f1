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

func TestTickSource_DeterministicForSeed(t *testing.T) {
	max := new(big.Int).Lsh(big.NewInt(1), 200)

	first := NewTickSource(42)
	second := NewTickSource(42)

	for i := 0; i < 5; i++ {
		a, err := first.Intn(max)
		require.NoError(t, err)
		b, err := second.Intn(max)
		require.NoError(t, err)
		assert.Equal(t, 0, a.Cmp(b))
	}
}

func TestTickSource_AdvancesTickPerDraw(t *testing.T) {
	source := NewTickSource(100)

	_, err := source.Intn(big.NewInt(1000))
	require.NoError(t, err)
	assert.Equal(t, int64(100+tickDraws), source.Tick())

	a, _ := source.Intn(big.NewInt(1 << 40))
	b, _ := source.Intn(big.NewInt(1 << 40))
	assert.NotEqual(t, 0, a.Cmp(b), "consecutive draws must differ")
}

func TestSources_StayInRange(t *testing.T) {
	sources := map[string]Source{
		"tick":     NewTickSource(7),
		"crypto":   NewCryptoSource(),
		"sequence": NewSequenceSource(5, 99, 1234567),
	}
	max := big.NewInt(97)

	for name, source := range sources {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				v, err := source.Intn(max)
				require.NoError(t, err)
				assert.True(t, v.Sign() >= 0 && v.Cmp(max) < 0, "value %s out of range", v)
			}
		})
	}
}

func TestSources_RejectNonPositiveMax(t *testing.T) {
	for _, source := range []Source{NewTickSource(1), NewCryptoSource(), NewSequenceSource(1)} {
		_, err := source.Intn(big.NewInt(0))
		assert.ErrorIs(t, err, rsa.ErrInvalidRange)
	}
}

func TestSequenceSource_Cycles(t *testing.T) {
	source := NewSequenceSource(3, 15)
	max := big.NewInt(10)

	var got []int64
	for i := 0; i < 4; i++ {
		v, err := source.Intn(max)
		require.NoError(t, err)
		got = append(got, v.Int64())
	}
	assert.Equal(t, []int64{3, 5, 3, 5}, got)

	_, err := NewSequenceSource().Intn(max)
	assert.Error(t, err)
}

func TestNewSource(t *testing.T) {
	source, err := NewSource(rsa.RandomSourceTick)
	require.NoError(t, err)
	assert.IsType(t, &TickSource{}, source)

	source, err = NewSource(rsa.RandomSourceCrypto)
	require.NoError(t, err)
	assert.IsType(t, &CryptoSource{}, source)

	_, err = NewSource("dice")
	assert.Error(t, err)
}
