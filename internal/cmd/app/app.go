// Package app is helper for simple cli apps.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LevelEnv is environment variable that overrides log level.
const LevelEnv = "SBO_LOG_LEVEL"

// Logger returns development logger with level from LevelEnv.
func Logger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level.SetLevel(zap.InfoLevel)
	if v := os.Getenv(LevelEnv); v != "" {
		lvl, err := zapcore.ParseLevel(v)
		if err != nil {
			return nil, err
		}
		cfg.Level.SetLevel(lvl)
	}
	return cfg.Build()
}

// Run calls run with context that is canceled on interrupt.
func Run(run func(ctx context.Context, lg *zap.Logger) error) {
	lg, err := Logger()
	if err != nil {
		panic(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, lg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(2)
	}
}
