package cryptography

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
	"github.com/kylepxiao/RSA-Encryption/internal/infrastructure/numtheory"
	"github.com/kylepxiao/RSA-Encryption/internal/pkg/config"
	"github.com/kylepxiao/RSA-Encryption/internal/pkg/logger"
)

var minExponent = big.NewInt(rsa.DefaultExponentLowerBound)

// KeyGeneratorOption customizes a key generator.
type KeyGeneratorOption func(*keyGenerator)

// WithClock replaces time.Now as the watchdog clock.
func WithClock(now func() time.Time) KeyGeneratorOption {
	return func(g *keyGenerator) {
		g.now = now
	}
}

// keyGenerator implements rsa.KeyGenerator
type keyGenerator struct {
	settings  *config.KeyGenSettings
	exact     rsa.PrimeGenerator
	quick     rsa.PrimeGenerator
	exponents rsa.PrimeGenerator
	logger    logger.Logger
	now       func() time.Time
}

// NewKeyGenerator creates a key generator drawing every random number from source.
func NewKeyGenerator(settings *config.KeyGenSettings, source numtheory.Source, logger logger.Logger, opts ...KeyGeneratorOption) (rsa.KeyGenerator, error) {
	if settings == nil {
		return nil, errors.New("key generation settings cannot be nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	exact, err := numtheory.NewExactPrimeGenerator(source)
	if err != nil {
		return nil, fmt.Errorf("failed to create exact prime generator: %w", err)
	}

	quick, err := numtheory.NewFermatPrimeGenerator(source, settings.QuickWitnesses...)
	if err != nil {
		return nil, fmt.Errorf("failed to create quick prime generator: %w", err)
	}

	g := &keyGenerator{
		settings:  settings,
		exact:     exact,
		quick:     quick,
		exponents: exact,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// GenerateKeys selects two distinct primes, a public exponent coprime to the
// totient and its inverse. A nil opts generates everything with trial division
// over the default range.
func (g *keyGenerator) GenerateKeys(ctx context.Context, opts *rsa.KeyGenOptions) (*rsa.KeyMaterial, *rsa.KeyGenReport, error) {
	if opts == nil {
		opts = &rsa.KeyGenOptions{}
	}
	started := g.now()
	report := &rsa.KeyGenReport{}

	p1, p2, err := g.selectPrimes(ctx, opts, report)
	if err != nil {
		return nil, nil, err
	}

	e, err := g.selectExponent(ctx, opts, &p1, &p2, report)
	if err != nil {
		return nil, nil, err
	}

	m := totient(p1, p2)
	d, err := numtheory.ModInverse(e, m)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to derive private exponent: %w", err)
	}

	key, err := rsa.NewKeyMaterial(p1, p2, e, d)
	if err != nil {
		return nil, nil, err
	}

	report.Duration = g.now().Sub(started)
	g.logger.Info(fmt.Sprintf("Generated RSA key with %d bit modulus after %d regeneration(s)", key.N().BitLen(), report.Regenerations))
	return key, report, nil
}

func (g *keyGenerator) selectPrimes(ctx context.Context, opts *rsa.KeyGenOptions, report *rsa.KeyGenReport) (*big.Int, *big.Int, error) {
	if opts.P1 != nil || opts.P2 != nil {
		if opts.P1 == nil || opts.P2 == nil {
			return nil, nil, fmt.Errorf("%w: both primes must be supplied", rsa.ErrInvalidKeyMaterial)
		}
		if opts.P1.Cmp(opts.P2) == 0 {
			return nil, nil, fmt.Errorf("%w: p1 and p2 must differ", rsa.ErrInvalidKeyMaterial)
		}
		return new(big.Int).Set(opts.P1), new(big.Int).Set(opts.P2), nil
	}
	if (opts.Lower == nil) != (opts.Upper == nil) {
		return nil, nil, fmt.Errorf("both lower and upper bounds must be supplied: %w", rsa.ErrInvalidRange)
	}

	generator := g.exact
	if opts.Quick {
		generator = g.quick
	}

	draw := func() (*big.Int, error) {
		report.PrimeAttempts++
		if opts.Lower != nil {
			return generator.Generate(ctx, opts.Lower, opts.Upper)
		}
		return generator.GenerateDefault(ctx)
	}

	for attempt := 0; attempt < g.settings.MaxPrimeAttempts; attempt++ {
		p1, err := draw()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to generate first prime: %w", err)
		}
		p2, err := draw()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to generate second prime: %w", err)
		}
		if p1.Cmp(p2) != 0 {
			return p1, p2, nil
		}
		g.logger.Debug("Drew the same prime twice, retrying")
	}

	return nil, nil, fmt.Errorf("no distinct prime pair after %d attempts: %w", g.settings.MaxPrimeAttempts, rsa.ErrKeyGenerationExhausted)
}

// selectExponent draws a prime e below min(ExponentBound, m) that does not divide m.
// When the watchdog fires the prime pair behind p1 and p2 is replaced.
func (g *keyGenerator) selectExponent(ctx context.Context, opts *rsa.KeyGenOptions, p1, p2 **big.Int, report *rsa.KeyGenReport) (*big.Int, error) {
	if opts.E != nil {
		if opts.E.Sign() <= 0 {
			return nil, fmt.Errorf("%w: public exponent must be positive", rsa.ErrInvalidKeyMaterial)
		}
		return new(big.Int).Set(opts.E), nil
	}

	bound := big.NewInt(g.settings.ExponentBound)
	manual := opts.P1 != nil

	m := totient(*p1, *p2)
	started := g.now()
	tries := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("exponent search cancelled: %w", err)
		}

		elapsed := g.now().Sub(started)
		reason := ""
		switch {
		case elapsed > g.settings.WatchdogTimeout:
			reason = rsa.RegenerationReasonTimeout
		case tries >= g.settings.MaxExponentAttempts:
			reason = rsa.RegenerationReasonAttempts
		}

		if reason != "" {
			if manual {
				return nil, fmt.Errorf("no public exponent found for the supplied primes: %w", rsa.ErrKeyGenerationExhausted)
			}
			report.Regenerations++
			if report.Regenerations > g.settings.MaxRegenerations {
				return nil, fmt.Errorf("gave up after %d regeneration(s): %w", g.settings.MaxRegenerations, rsa.ErrKeyGenerationTimeout)
			}

			event := rsa.RegenerationEvent{Attempt: report.Regenerations, Elapsed: elapsed, Reason: reason}
			g.logger.Warn(fmt.Sprintf("Exponent search %s after %s, regenerating primes (attempt %d)", reason, elapsed, event.Attempt))
			if opts.OnRegenerate != nil {
				opts.OnRegenerate(event)
			}

			np1, np2, err := g.selectPrimes(ctx, opts, report)
			if err != nil {
				return nil, err
			}
			*p1, *p2 = np1, np2
			m = totient(np1, np2)
			started = g.now()
			tries = 0
			continue
		}

		tries++
		report.ExponentAttempts++

		upper := bound
		if m.Cmp(upper) < 0 {
			upper = m
		}
		if upper.Cmp(minExponent) <= 0 {
			// totient too small for any exponent in range
			tries = g.settings.MaxExponentAttempts
			continue
		}

		e, err := g.exponents.Generate(ctx, minExponent, upper)
		if err != nil {
			if errors.Is(err, rsa.ErrNoPrimeInRange) {
				tries = g.settings.MaxExponentAttempts
				continue
			}
			return nil, fmt.Errorf("failed to generate public exponent: %w", err)
		}

		if new(big.Int).Mod(m, e).Sign() != 0 {
			return e, nil
		}
	}
}

func totient(p1, p2 *big.Int) *big.Int {
	a := new(big.Int).Sub(p1, big.NewInt(1))
	b := new(big.Int).Sub(p2, big.NewInt(1))
	return a.Mul(a, b)
}
