package app

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
	"github.com/kylepxiao/RSA-Encryption/internal/pkg/logger"
)

// primeService implements the rsa.PrimeService interface
type primeService struct {
	exact  rsa.PrimeGenerator
	quick  rsa.PrimeGenerator
	logger logger.Logger
}

// NewPrimeService creates a prime service backed by an exact and a probabilistic generator.
func NewPrimeService(exact, quick rsa.PrimeGenerator, logger logger.Logger) (rsa.PrimeService, error) {
	if exact == nil || quick == nil {
		return nil, errors.New("exact and quick prime generators are required")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &primeService{exact: exact, quick: quick, logger: logger}, nil
}

// Generate searches [lower, upper] with the requested predicate.
func (s *primeService) Generate(ctx context.Context, quick bool, lower, upper *big.Int) (*big.Int, error) {
	generator := s.exact
	if quick {
		generator = s.quick
	}

	var (
		p   *big.Int
		err error
	)
	switch {
	case lower == nil && upper == nil:
		p, err = generator.GenerateDefault(ctx)
	case lower == nil || upper == nil:
		return nil, fmt.Errorf("both lower and upper bounds must be supplied: %w", rsa.ErrInvalidRange)
	default:
		p, err = generator.Generate(ctx, lower, upper)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to generate prime: %w", err)
	}

	s.logger.Debug("Generated prime ", p.String())
	return p, nil
}
