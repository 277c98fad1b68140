package app

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogger(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		t.Setenv(LevelEnv, "")
		lg, err := Logger()
		require.NoError(t, err)
		require.True(t, lg.Core().Enabled(zap.InfoLevel))
		require.False(t, lg.Core().Enabled(zap.DebugLevel))
	})
	t.Run("Debug", func(t *testing.T) {
		t.Setenv(LevelEnv, "debug")
		lg, err := Logger()
		require.NoError(t, err)
		require.True(t, lg.Core().Enabled(zap.DebugLevel))
	})
	t.Run("Invalid", func(t *testing.T) {
		t.Setenv(LevelEnv, "loud")
		_, err := Logger()
		require.Error(t, err)
	})
}
