//go:build unit
// +build unit

package app

import (
	"context"
	"math/big"

	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
	"github.com/stretchr/testify/mock"
)

type mockKeyGenerator struct {
	mock.Mock
}

func (m *mockKeyGenerator) GenerateKeys(ctx context.Context, opts *rsa.KeyGenOptions) (*rsa.KeyMaterial, *rsa.KeyGenReport, error) {
	args := m.Called(ctx, opts)
	key, _ := args.Get(0).(*rsa.KeyMaterial)
	report, _ := args.Get(1).(*rsa.KeyGenReport)
	return key, report, args.Error(2)
}

type mockKeyRepository struct {
	mock.Mock
}

func (m *mockKeyRepository) Create(ctx context.Context, key *rsa.KeyRecord) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockKeyRepository) List(ctx context.Context, query *rsa.KeyQuery) ([]*rsa.KeyRecord, error) {
	args := m.Called(ctx, query)
	records, _ := args.Get(0).([]*rsa.KeyRecord)
	return records, args.Error(1)
}

func (m *mockKeyRepository) GetByID(ctx context.Context, keyID string) (*rsa.KeyRecord, error) {
	args := m.Called(ctx, keyID)
	record, _ := args.Get(0).(*rsa.KeyRecord)
	return record, args.Error(1)
}

func (m *mockKeyRepository) DeleteByID(ctx context.Context, keyID string) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}

type mockPrimeGenerator struct {
	mock.Mock
}

func (m *mockPrimeGenerator) Generate(ctx context.Context, lower, upper *big.Int) (*big.Int, error) {
	args := m.Called(ctx, lower, upper)
	p, _ := args.Get(0).(*big.Int)
	return p, args.Error(1)
}

func (m *mockPrimeGenerator) GenerateDefault(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).(*big.Int)
	return p, args.Error(1)
}
