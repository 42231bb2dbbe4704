package logger

import (
	"go.uber.org/zap"
)

// Log is global logger
var Log *zap.Logger = zap.NewNop()

// Initialize builds production logger with given level and sets Log
func Initialize(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	zl, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = zl
	return nil
}
