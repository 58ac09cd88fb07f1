package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// PostgresDbType selects the PostgreSQL driver
const PostgresDbType = "postgres"

// SqliteDbType selects the SQLite driver
const SqliteDbType = "sqlite"

// DatabaseSettings holds the connection settings of the key store
type DatabaseSettings struct {
	Type   string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`
	DSN    string `mapstructure:"dsn" validate:"required"`
	DBName string `mapstructure:"db_name" validate:"required"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	return nil
}
