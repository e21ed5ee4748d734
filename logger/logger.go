// Package logger configures the process-wide zap logger.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// L is the shared logger. It defaults to a no-op logger so packages can
// log before Init runs (tests mostly skip Init entirely).
var L = zap.NewNop()

// Options controls logger construction.
type Options struct {
	// Level is one of debug, info, warn, error.
	Level string
	// File, when set, duplicates output to a size-rotated log file.
	File string
	// Console disables stdout output when false.
	Console bool
}

// Init builds the shared logger. Console output uses a human-oriented
// encoder; file output rotates at 20 MB keeping 3 backups for a week.
func Init(opts Options) *zap.Logger {
	level := parseLevel(opts.Level)

	encoderCfg := zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeTime:       zapcore.TimeEncoderOfLayout("15:04:05"),
		EncodeLevel:      zapcore.CapitalColorLevelEncoder,
		ConsoleSeparator: " ",
	}

	var cores []zapcore.Core
	if opts.Console {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderCfg),
			zapcore.AddSync(os.Stdout),
			level,
		))
	}

	if opts.File != "" {
		fileCfg := encoderCfg
		fileCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		fileCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(fileCfg),
			zapcore.AddSync(&lumberjack.Logger{
				Filename:   opts.File,
				MaxSize:    20,
				MaxBackups: 3,
				MaxAge:     7,
				LocalTime:  true,
			}),
			level,
		))
	}

	L = zap.New(zapcore.NewTee(cores...))
	return L
}

// Sync flushes buffered entries; call on shutdown.
func Sync() {
	_ = L.Sync()
}

func parseLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
