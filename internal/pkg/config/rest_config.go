package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// RestConfig is the configuration of the REST API
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required"`
	Database DatabaseSettings `mapstructure:"database" validate:"required"`
	Logger   LoggerSettings   `mapstructure:"logger" validate:"required"`
	KeyGen   KeyGenSettings   `mapstructure:"key_gen" validate:"required"`
}

// Validate validates the nested settings
func (c *RestConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.KeyGen.Validate()
}

// InitializeRestConfig reads a YAML file, applies RSA_ prefixed environment
// overrides (e.g. RSA_DATABASE_DSN) and validates the result.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("RSA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := NewDefaultKeyGenSettings()
	v.SetDefault("port", "8080")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("key_gen.exponent_bound", defaults.ExponentBound)
	v.SetDefault("key_gen.watchdog_timeout", defaults.WatchdogTimeout)
	v.SetDefault("key_gen.max_regenerations", defaults.MaxRegenerations)
	v.SetDefault("key_gen.max_prime_attempts", defaults.MaxPrimeAttempts)
	v.SetDefault("key_gen.max_exponent_attempts", defaults.MaxExponentAttempts)
	v.SetDefault("key_gen.random_source", defaults.RandomSource)
	v.SetDefault("key_gen.quick_witnesses", defaults.QuickWitnesses)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
