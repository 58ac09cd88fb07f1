//go:build unit
// +build unit

package app

import (
	"context"
	"math/big"
	"testing"

	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
	"github.com/kylepxiao/RSA-Encryption/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimeService_Generate(t *testing.T) {
	ctx := context.Background()
	lower, upper := big.NewInt(10), big.NewInt(20)

	exact := &mockPrimeGenerator{}
	quick := &mockPrimeGenerator{}
	exact.On("Generate", ctx, lower, upper).Return(big.NewInt(13), nil)
	exact.On("GenerateDefault", ctx).Return(big.NewInt(9223372036854775783), nil)
	quick.On("Generate", ctx, lower, upper).Return(big.NewInt(17), nil)

	service, err := NewPrimeService(exact, quick, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	p, err := service.Generate(ctx, false, lower, upper)
	require.NoError(t, err)
	assert.Equal(t, "13", p.String())

	p, err = service.Generate(ctx, true, lower, upper)
	require.NoError(t, err)
	assert.Equal(t, "17", p.String())

	p, err = service.Generate(ctx, false, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "9223372036854775783", p.String())

	_, err = service.Generate(ctx, false, lower, nil)
	assert.ErrorIs(t, err, rsa.ErrInvalidRange)

	exact.AssertExpectations(t)
	quick.AssertExpectations(t)
}

func TestPrimeService_PropagatesErrors(t *testing.T) {
	ctx := context.Background()
	lower, upper := big.NewInt(24), big.NewInt(28)

	exact := &mockPrimeGenerator{}
	exact.On("Generate", ctx, lower, upper).Return(nil, rsa.ErrNoPrimeInRange)

	service, err := NewPrimeService(exact, &mockPrimeGenerator{}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = service.Generate(ctx, false, lower, upper)
	assert.ErrorIs(t, err, rsa.ErrNoPrimeInRange)
}

func TestNewPrimeService_RequiresLogger(t *testing.T) {
	_, err := NewPrimeService(&mockPrimeGenerator{}, &mockPrimeGenerator{}, nil)
	assert.EqualError(t, err, "logger cannot be nil")
}
