package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel parses a log level name ("debug", "info", "warn", "error").
func ParseLevel(name string) (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(name)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("config error: invalid log_level %q", name)
	}
	return lvl, nil
}

// NewLogger builds a production JSON logger whose level can be changed at runtime
// through the returned AtomicLevel.
func NewLogger(level string) (*zap.Logger, zap.AtomicLevel, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, zap.AtomicLevel{}, err
	}

	atom := zap.NewAtomicLevelAt(lvl)
	cfg := zap.NewProductionConfig()
	cfg.Level = atom

	logger, err := cfg.Build()
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, atom, nil
}

// WatchLogLevel re-applies log_level whenever the config file changes. It does nothing
// when no config file was read.
func WatchLogLevel(v *viper.Viper, atom zap.AtomicLevel, logger *zap.Logger) {
	if v.ConfigFileUsed() == "" {
		return
	}
	v.OnConfigChange(logLevelReloader(v, atom, logger))
	v.WatchConfig()
}

func logLevelReloader(v *viper.Viper, atom zap.AtomicLevel, logger *zap.Logger) func(fsnotify.Event) {
	return func(e fsnotify.Event) {
		name := v.GetString("log_level")
		lvl, err := ParseLevel(name)
		if err != nil {
			logger.Warn("Ignoring invalid log level from config", zap.String("file", e.Name), zap.String("level", name))
			return
		}
		if lvl != atom.Level() {
			atom.SetLevel(lvl)
			logger.Info("Log level changed", zap.String("file", e.Name), zap.Stringer("level", lvl))
		}
	}
}
