package testutil

import (
	"testing"

	"github.com/kylepxiao/RSA-Encryption/internal/pkg/config"
	"github.com/kylepxiao/RSA-Encryption/internal/pkg/logger"
	"github.com/stretchr/testify/require"
)

// SetupTestLogger returns the process logger, initializing it at debug level on first use.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	err := logger.InitLogger(config.NewConsoleLoggerSettings(config.LogLevelDebug))
	require.NoError(t, err)

	log, err := logger.GetLogger()
	require.NoError(t, err)

	return log
}
