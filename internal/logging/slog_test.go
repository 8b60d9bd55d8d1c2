package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luckydeignan/audioFloInterpolationGenerator/types"
)

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlog(slog.New(handler))

	var _ types.Logger = logger

	t.Run("writes structured fields", func(t *testing.T) {
		buf.Reset()
		logger.Info("plan computed", "partitions", 3, "bottleneck", 40)

		out := buf.String()
		require.Contains(t, out, "plan computed")
		require.Contains(t, out, "partitions=3")
		require.Contains(t, out, "bottleneck=40")
	})

	t.Run("respects levels", func(t *testing.T) {
		buf.Reset()
		logger.Debug("debug message")
		logger.Warn("warn message")
		logger.Error("error message")

		out := buf.String()
		require.Contains(t, out, "debug message")
		require.Contains(t, out, "warn message")
		require.Contains(t, out, "error message")
	})
}

func TestNewSlogDefault(t *testing.T) {
	logger := NewSlogDefault()

	require.NotNil(t, logger)
	require.IsType(t, &SlogLogger{}, logger)
}
