//go:build unit
// +build unit

package v1

import (
	"context"
	"math/big"

	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
	"github.com/stretchr/testify/mock"
)

// MockKeyService is a mock implementation of rsa.KeyService
type MockKeyService struct {
	mock.Mock
}

func (m *MockKeyService) Generate(ctx context.Context, opts *rsa.KeyGenOptions) (*rsa.KeyRecord, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rsa.KeyRecord), args.Error(1)
}

func (m *MockKeyService) List(ctx context.Context, query *rsa.KeyQuery) ([]*rsa.KeyRecord, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rsa.KeyRecord), args.Error(1)
}

func (m *MockKeyService) GetByID(ctx context.Context, keyID string) (*rsa.KeyRecord, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rsa.KeyRecord), args.Error(1)
}

func (m *MockKeyService) DeleteByID(ctx context.Context, keyID string) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}

// MockTransformService is a mock implementation of rsa.TransformService
type MockTransformService struct {
	mock.Mock
}

func (m *MockTransformService) Encrypt(ctx context.Context, keyID string, message []byte) (rsa.Ciphertext, error) {
	args := m.Called(ctx, keyID, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(rsa.Ciphertext), args.Error(1)
}

func (m *MockTransformService) Decrypt(ctx context.Context, keyID string, cipher rsa.Ciphertext) ([]byte, error) {
	args := m.Called(ctx, keyID, cipher)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockPrimeService is a mock implementation of rsa.PrimeService
type MockPrimeService struct {
	mock.Mock
}

func (m *MockPrimeService) Generate(ctx context.Context, quick bool, lower, upper *big.Int) (*big.Int, error) {
	args := m.Called(ctx, quick, lower, upper)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}
