// Package logging builds the zap loggers used for structured run logs.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewFileLogger returns a JSON logger writing to a rotating file in logDir.
func NewFileLogger(logDir, fileName string) (*zap.Logger, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}
	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(logDir, fileName),
		MaxSize:    10, // MB
		MaxBackups: 5,
		MaxAge:     14, // days
		Compress:   true,
	})
	return zap.New(zapcore.NewCore(newEncoder(), w, zap.InfoLevel)), nil
}

// NewConsoleLogger returns a JSON logger writing to stderr.
func NewConsoleLogger() *zap.Logger {
	core := zapcore.NewCore(newEncoder(), zapcore.Lock(os.Stderr), zap.InfoLevel)
	return zap.New(core)
}

func newEncoder() zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewJSONEncoder(cfg)
}
