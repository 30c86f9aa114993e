package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log общий логгер приложения. До Init ничего не пишет
var Log = zap.NewNop()

// Init Создать production-логгер с заданным уровнем (debug, info, warn, error)
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = l
	return nil
}
