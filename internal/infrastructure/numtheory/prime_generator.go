package numtheory

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
)

// pollInterval is how many candidates are tested between context checks.
const pollInterval = 256

// DefaultExactBounds returns [LONG_MAX/4, LONG_MAX], small enough for trial division.
func DefaultExactBounds() (lower, upper *big.Int) {
	upper = big.NewInt(math.MaxInt64)
	lower = new(big.Int).Rsh(upper, 2)
	return lower, upper
}

// DefaultQuickBounds returns [(2^63-1)^3, (2^63-1)^4] for the Fermat predicate.
func DefaultQuickBounds() (lower, upper *big.Int) {
	base := big.NewInt(math.MaxInt64)
	lower = new(big.Int).Exp(base, big.NewInt(3), nil)
	upper = new(big.Int).Exp(base, big.NewInt(4), nil)
	return lower, upper
}

type primeGenerator struct {
	source       Source
	isPrime      Predicate
	defaultLower *big.Int
	defaultUpper *big.Int
}

// NewPrimeGenerator creates a generator that draws from source and accepts
// candidates passing predicate. lower and upper are the GenerateDefault bounds.
func NewPrimeGenerator(source Source, predicate Predicate, lower, upper *big.Int) (rsa.PrimeGenerator, error) {
	if source == nil {
		return nil, errors.New("random source cannot be nil")
	}
	if predicate == nil {
		return nil, errors.New("primality predicate cannot be nil")
	}
	if err := checkRange(lower, upper); err != nil {
		return nil, err
	}

	return &primeGenerator{
		source:       source,
		isPrime:      predicate,
		defaultLower: new(big.Int).Set(lower),
		defaultUpper: new(big.Int).Set(upper),
	}, nil
}

// NewExactPrimeGenerator pairs trial division with DefaultExactBounds.
func NewExactPrimeGenerator(source Source) (rsa.PrimeGenerator, error) {
	lower, upper := DefaultExactBounds()
	return NewPrimeGenerator(source, IsPrimeContext, lower, upper)
}

// NewQuickPrimeGenerator pairs the base-3 Fermat test with DefaultQuickBounds.
func NewQuickPrimeGenerator(source Source) (rsa.PrimeGenerator, error) {
	return NewFermatPrimeGenerator(source)
}

// NewFermatPrimeGenerator pairs a Fermat test over witnesses (default 3) with
// DefaultQuickBounds.
func NewFermatPrimeGenerator(source Source, witnesses ...int64) (rsa.PrimeGenerator, error) {
	lower, upper := DefaultQuickBounds()
	return NewPrimeGenerator(source, NewFermatTest(witnesses...).Test, lower, upper)
}

// Generate draws a random candidate in [lower, upper), forces it odd by
// decrementing, then walks down by two until the predicate accepts. Falling below
// lower wraps the walk to upper (forced odd). A second wrap means no candidate in
// range passes and ErrNoPrimeInRange is returned.
func (g *primeGenerator) Generate(ctx context.Context, lower, upper *big.Int) (*big.Int, error) {
	if err := checkRange(lower, upper); err != nil {
		return nil, err
	}

	width := new(big.Int).Sub(upper, lower)
	offset, err := g.source.Intn(width)
	if err != nil {
		return nil, fmt.Errorf("failed to draw prime candidate: %w", err)
	}

	candidate := offset.Add(offset, lower)
	forceOdd(candidate)

	wraps := 0
	for checked := 0; ; checked++ {
		if candidate.Cmp(lower) < 0 {
			wraps++
			if wraps > 1 {
				return nil, fmt.Errorf("failed to find prime in [%s, %s]: %w", lower, upper, rsa.ErrNoPrimeInRange)
			}
			candidate.Set(upper)
			forceOdd(candidate)
		}

		if checked%pollInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("prime search cancelled: %w", err)
			}
		}

		ok, err := g.isPrime(ctx, candidate)
		if err != nil {
			return nil, fmt.Errorf("prime search cancelled: %w", err)
		}
		if ok {
			return candidate, nil
		}
		candidate.Sub(candidate, two)
	}
}

// GenerateDefault runs Generate over the generator's default bounds.
func (g *primeGenerator) GenerateDefault(ctx context.Context) (*big.Int, error) {
	return g.Generate(ctx, g.defaultLower, g.defaultUpper)
}

func forceOdd(v *big.Int) {
	if v.Bit(0) == 0 {
		v.Sub(v, one)
	}
}

func checkRange(lower, upper *big.Int) error {
	if lower == nil || upper == nil {
		return fmt.Errorf("prime search bounds are required: %w", rsa.ErrInvalidRange)
	}
	if lower.Sign() < 0 || upper.Cmp(lower) <= 0 {
		return fmt.Errorf("lower bound %s must be non-negative and below upper bound %s: %w", lower, upper, rsa.ErrInvalidRange)
	}
	return nil
}
