package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/kylepxiao/RSA-Encryption/internal/pkg/config"
)

var (
	loggerInstance Logger
	loggerErr      error
	loggerOnce     sync.Once
)

// ErrMissingLogFile is returned when a file logger is requested without a path.
var ErrMissingLogFile = errors.New("file path required for file logger")

// InitLogger initializes the process wide logger. Only the first call has an effect.
func InitLogger(settings *config.LoggerSettings) error {
	loggerOnce.Do(func() {
		loggerInstance, loggerErr = NewLogger(settings)
	})
	return loggerErr
}

// GetLogger returns the initialized logger instance.
func GetLogger() (Logger, error) {
	if loggerInstance == nil {
		return nil, fmt.Errorf("logger not initialized: call InitLogger first")
	}
	return loggerInstance, nil
}

// sinks builds a Logger per supported log type from already validated settings.
var sinks = map[string]func(s *config.LoggerSettings) (Logger, error){
	config.LogTypeConsole: func(s *config.LoggerSettings) (Logger, error) {
		return NewConsoleLogger(s.LogLevel), nil
	},
	config.LogTypeFile: func(s *config.LoggerSettings) (Logger, error) {
		if strings.TrimSpace(s.FilePath) == "" {
			return nil, ErrMissingLogFile
		}
		return NewFileLogger(s.LogLevel, s.FilePath, s.MaxSize, s.MaxBackups, s.MaxAge), nil
	},
}

// NewLogger builds a standalone logger from settings without touching the singleton.
func NewLogger(settings *config.LoggerSettings) (Logger, error) {
	if settings == nil {
		return nil, fmt.Errorf("logger settings are required")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	build, ok := sinks[settings.LogType]
	if !ok {
		return nil, fmt.Errorf("unsupported log type: %s", settings.LogType)
	}
	return build(settings)
}

// parseLevel maps config levels onto slog; critical has no slog equivalent and
// logs as error. Unknown levels fall back to info.
func parseLevel(level string) slog.Level {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelWarning:
		return slog.LevelWarn
	case config.LogLevelError, config.LogLevelCritical:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func formatArgs(args ...interface{}) string {
	if len(args) == 0 {
		return ""
	}
	return fmt.Sprint(args...)
}
