package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
	"github.com/kylepxiao/RSA-Encryption/internal/pkg/logger"
)

// keyService implements the rsa.KeyService interface
type keyService struct {
	generator  rsa.KeyGenerator
	repository rsa.KeyRepository
	logger     logger.Logger
	now        func() time.Time
}

// NewKeyService creates a new instance of KeyService
func NewKeyService(generator rsa.KeyGenerator, repository rsa.KeyRepository, logger logger.Logger) (rsa.KeyService, error) {
	if generator == nil || repository == nil {
		return nil, errors.New("key generator and repository are required")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &keyService{
		generator:  generator,
		repository: repository,
		logger:     logger,
		now:        time.Now,
	}, nil
}

// Generate creates key material according to opts and persists it under a fresh ID.
func (s *keyService) Generate(ctx context.Context, opts *rsa.KeyGenOptions) (*rsa.KeyRecord, error) {
	if opts == nil {
		opts = &rsa.KeyGenOptions{}
	}

	key, report, err := s.generator.GenerateKeys(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}

	record := rsa.NewKeyRecord(uuid.New().String(), key, PrimeMode(opts), report.Regenerations, s.now())
	if err := s.repository.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store key: %w", err)
	}

	s.logger.Info(fmt.Sprintf("Stored %s key %s (%d bit modulus) generated in %s", record.PrimeMode, record.ID, record.ModulusBits, report.Duration))
	return record, nil
}

// List retrieves keys matching query
func (s *keyService) List(ctx context.Context, query *rsa.KeyQuery) ([]*rsa.KeyRecord, error) {
	records, err := s.repository.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	return records, nil
}

// GetByID retrieves a key by its ID
func (s *keyService) GetByID(ctx context.Context, keyID string) (*rsa.KeyRecord, error) {
	record, err := s.repository.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get key: %w", err)
	}
	return record, nil
}

// DeleteByID removes a key by its ID
func (s *keyService) DeleteByID(ctx context.Context, keyID string) error {
	if err := s.repository.DeleteByID(ctx, keyID); err != nil {
		return fmt.Errorf("failed to delete key: %w", err)
	}
	s.logger.Info("Deleted key ", keyID)
	return nil
}

// PrimeMode names how the primes behind opts are chosen.
func PrimeMode(opts *rsa.KeyGenOptions) string {
	switch {
	case opts.P1 != nil || opts.P2 != nil:
		return rsa.PrimeModeManual
	case opts.Quick:
		return rsa.PrimeModeQuick
	default:
		return rsa.PrimeModeExact
	}
}
