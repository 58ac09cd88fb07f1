package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Key generation defaults
const (
	DefaultExponentBound       = 65536
	DefaultWatchdogTimeout     = 10 * time.Second
	DefaultMaxRegenerations    = 10
	DefaultMaxPrimeAttempts    = 100
	DefaultMaxExponentAttempts = 10000
	DefaultRandomSource        = "tick"
)

// KeyGenSettings tunes the prime and exponent search of key generation
type KeyGenSettings struct {
	ExponentBound       int64         `mapstructure:"exponent_bound" validate:"required,gt=3"`
	WatchdogTimeout     time.Duration `mapstructure:"watchdog_timeout" validate:"required,gt=0"`
	MaxRegenerations    int           `mapstructure:"max_regenerations" validate:"gte=0"`
	MaxPrimeAttempts    int           `mapstructure:"max_prime_attempts" validate:"required,gt=0"`
	MaxExponentAttempts int           `mapstructure:"max_exponent_attempts" validate:"required,gt=0"`
	RandomSource        string        `mapstructure:"random_source" validate:"required,oneof=tick crypto"`
	QuickWitnesses      []int64       `mapstructure:"quick_witnesses" validate:"dive,gt=1"`
	TransformWorkers    int           `mapstructure:"transform_workers" validate:"gte=0"`
}

// NewDefaultKeyGenSettings returns the settings matching the classic behavior:
// exponents below 65536, a 10 second watchdog and the tick seeded random source.
func NewDefaultKeyGenSettings() *KeyGenSettings {
	return &KeyGenSettings{
		ExponentBound:       DefaultExponentBound,
		WatchdogTimeout:     DefaultWatchdogTimeout,
		MaxRegenerations:    DefaultMaxRegenerations,
		MaxPrimeAttempts:    DefaultMaxPrimeAttempts,
		MaxExponentAttempts: DefaultMaxExponentAttempts,
		RandomSource:        DefaultRandomSource,
		QuickWitnesses:      []int64{3},
	}
}

// Validate checks that all fields in KeyGenSettings are valid
func (s *KeyGenSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for KeyGenSettings: %w", err)
	}

	return nil
}
