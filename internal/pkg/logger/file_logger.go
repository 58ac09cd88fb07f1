package logger

import (
	"log/slog"

	"github.com/natefinch/lumberjack"
)

// NewFileLogger writes JSON records to filePath, rotating it after maxSize MB and
// keeping maxBackups compressed files for at most maxAge days.
func NewFileLogger(level string, filePath string, maxSize int, maxBackups int, maxAge int) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}
	return newSlogLogger(slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: parseLevel(level)}))
}
