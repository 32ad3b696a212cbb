package graphis

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		require.False(t, h.Enabled(context.Background(), level))
	}
	require.NoError(t, h.Handle(context.Background(), slog.Record{}))
	require.IsType(t, nopHandler{}, h.WithAttrs(nil))
	require.IsType(t, nopHandler{}, h.WithGroup("g"))
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))
	SetLogger(l)
	require.Same(t, l, Logger())

	Logger().Info("hello")
	require.Contains(t, buf.String(), "hello")

	SetLogger(nil)
	require.NotNil(t, Logger())
	require.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
