package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
	"github.com/kylepxiao/RSA-Encryption/internal/pkg/logger"
)

// transformService implements the rsa.TransformService interface
type transformService struct {
	transformer rsa.Transformer
	repository  rsa.KeyRepository
	logger      logger.Logger
}

// NewTransformService creates a new instance of TransformService
func NewTransformService(transformer rsa.Transformer, repository rsa.KeyRepository, logger logger.Logger) (rsa.TransformService, error) {
	if transformer == nil || repository == nil {
		return nil, errors.New("transformer and repository are required")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &transformService{
		transformer: transformer,
		repository:  repository,
		logger:      logger,
	}, nil
}

// Encrypt encrypts message with the public half of the stored key.
func (s *transformService) Encrypt(ctx context.Context, keyID string, message []byte) (rsa.Ciphertext, error) {
	key, err := s.loadKey(ctx, keyID)
	if err != nil {
		return nil, err
	}
	return s.transformer.Encrypt(ctx, message, key.PublicKey())
}

// Decrypt decrypts cipher with the private half of the stored key.
func (s *transformService) Decrypt(ctx context.Context, keyID string, cipher rsa.Ciphertext) ([]byte, error) {
	key, err := s.loadKey(ctx, keyID)
	if err != nil {
		return nil, err
	}
	return s.transformer.Decrypt(ctx, cipher, key.PrivateKey())
}

func (s *transformService) loadKey(ctx context.Context, keyID string) (*rsa.KeyMaterial, error) {
	record, err := s.repository.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get key: %w", err)
	}
	key, err := record.KeyMaterial()
	if err != nil {
		return nil, err
	}
	return key, nil
}
