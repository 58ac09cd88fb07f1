package commands

import (
	"fmt"
	"math/big"

	"github.com/kylepxiao/RSA-Encryption/internal/domain/rsa"
	"github.com/kylepxiao/RSA-Encryption/internal/infrastructure/numtheory"
	"github.com/kylepxiao/RSA-Encryption/internal/infrastructure/persistence"
	"github.com/kylepxiao/RSA-Encryption/internal/pkg/config"
	"github.com/kylepxiao/RSA-Encryption/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// Persistent flags registered on the root command.
const (
	FlagDB       = "db"
	FlagLogLevel = "log-level"
	FlagRandom   = "random"
)

// DefaultDBPath is the sqlite file the CLI stores keys in.
const DefaultDBPath = "rsa-keys.db"

// RegisterPersistentFlags adds the flags shared by every sub-command.
func RegisterPersistentFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String(FlagDB, DefaultDBPath, "Path to the sqlite database holding saved keys")
	rootCmd.PersistentFlags().String(FlagLogLevel, config.LogLevelInfo, "Log level (debug, info, warning, error, critical)")
	rootCmd.PersistentFlags().String(FlagRandom, rsa.RandomSourceTick, "Random source for prime and exponent draws (tick, crypto)")
}

func setupLogger(level string) (logger.Logger, error) {
	settings := config.NewConsoleLoggerSettings(level)
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", FlagLogLevel, err)
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// session holds what one invocation needs, resolved from the persistent flags.
type session struct {
	logger logger.Logger
	source numtheory.Source
	dbPath string
}

func newSession(cmd *cobra.Command) (*session, error) {
	level, err := cmd.Flags().GetString(FlagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", FlagLogLevel, err)
	}
	kind, err := cmd.Flags().GetString(FlagRandom)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", FlagRandom, err)
	}
	dbPath, err := cmd.Flags().GetString(FlagDB)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", FlagDB, err)
	}

	loggerInstance, err := setupLogger(level)
	if err != nil {
		return nil, err
	}
	source, err := numtheory.NewSource(kind)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", FlagRandom, err)
	}

	return &session{logger: loggerInstance, source: source, dbPath: dbPath}, nil
}

// openKeyRepository connects to the sqlite store. The returned func closes it.
func (s *session) openKeyRepository() (rsa.KeyRepository, func(), error) {
	db, err := persistence.NewDBConnection(config.DatabaseSettings{
		Type:   config.SqliteDbType,
		DSN:    s.dbPath,
		DBName: "rsa_keys",
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open key store: %w", err)
	}

	repo, err := persistence.NewGormKeyRepository(db, s.logger)
	if err != nil {
		_ = persistence.CloseDB(db)
		return nil, nil, fmt.Errorf("failed to create key repository: %w", err)
	}

	return repo, func() {
		if err := persistence.CloseDB(db); err != nil {
			s.logger.Warn("Failed to close key store: ", err)
		}
	}, nil
}

// decimalFlag reads an optional base-10 integer flag. Unset flags yield nil.
func decimalFlag(cmd *cobra.Command, name string) (*big.Int, error) {
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", name, err)
	}
	if raw == "" {
		return nil, nil
	}
	v, err := numtheory.ParseDecimal(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return v, nil
}
