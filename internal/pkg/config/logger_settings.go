package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Log level constants
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Rotation limits accepted for file logs (sizes in MB, ages in days).
const (
	MaxLogFileSize    = 100
	MaxLogFileBackups = 10
	MaxLogFileAge     = 365
)

// LoggerSettings selects the log sink and, for file logs, its rotation policy
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=info debug error warning critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path" validate:"required_if=LogType file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// NewConsoleLoggerSettings returns settings for a console logger at level.
func NewConsoleLoggerSettings(level string) *LoggerSettings {
	return &LoggerSettings{
		LogLevel: level,
		LogType:  LogTypeConsole,
	}
}

// Validate checks the level and sink, and the rotation policy of file logs
func (s *LoggerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}

	if s.LogType != LogTypeFile {
		return nil
	}
	for _, limit := range []struct {
		name       string
		value, max int
	}{
		{"max_size", s.MaxSize, MaxLogFileSize},
		{"max_backups", s.MaxBackups, MaxLogFileBackups},
		{"max_age", s.MaxAge, MaxLogFileAge},
	} {
		if limit.value < 1 || limit.value > limit.max {
			return fmt.Errorf("%s of file logger must be between 1 and %d, got %d", limit.name, limit.max, limit.value)
		}
	}

	return nil
}
