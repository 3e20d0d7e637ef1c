// Package logging provides the process-wide diagnostic logger. Logs go to a
// rotated file so stdout stays reserved for search results.
package logging

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logger = zap.NewNop().Sugar()
	sink   *lumberjack.Logger
)

// L returns the global logger. It is a no-op until Init succeeds.
func L() *zap.SugaredLogger {
	return logger
}

// Init writes JSON logs to <state dir>/<appName>/<appName>.log at the given
// level. Unknown levels fall back to info.
func Init(appName, level string) error {
	dir := stateDir(appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	sink = &lumberjack.Logger{
		Filename:   filepath.Join(dir, appName+".log"),
		MaxSize:    5, // MB
		MaxBackups: 3,
		MaxAge:     14, // days
		Compress:   true,
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(sink),
		ParseLevel(level),
	)
	logger = zap.New(core).Sugar()
	return nil
}

// Set replaces the global logger, mainly for tests.
func Set(l *zap.SugaredLogger) {
	if l == nil {
		l = zap.NewNop().Sugar()
	}
	logger = l
}

// Sync flushes buffered entries and closes the log file.
func Sync() {
	_ = logger.Sync()
	if sink != nil {
		_ = sink.Close()
		sink = nil
	}
}

func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zap.DebugLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

func stateDir(appName string) string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state", appName)
	}
	return filepath.Join(os.TempDir(), appName)
}
