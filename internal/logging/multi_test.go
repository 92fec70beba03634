package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMultiHandler(t *testing.T) {
	var a, b bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelDebug}),
	}}
	logger := slog.New(h)

	t.Run("records reach every handler", func(t *testing.T) {
		logger.Info("hello", "key", "value")
		require.Contains(t, a.String(), "hello")
		require.Contains(t, b.String(), "hello")
	})

	t.Run("per-handler levels are respected", func(t *testing.T) {
		logger.Debug("quiet")
		require.NotContains(t, a.String(), "quiet")
		require.Contains(t, b.String(), "quiet")
	})

	t.Run("enabled when any handler is enabled", func(t *testing.T) {
		require.True(t, h.Enabled(context.Background(), slog.LevelDebug))
	})

	t.Run("with-attrs propagates", func(t *testing.T) {
		slog.New(h.WithAttrs([]slog.Attr{slog.String("component", "test")})).Info("tagged")
		require.Contains(t, a.String(), "component=test")
	})
}
