package outline

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.False(t, h.Enabled(context.Background(), level), "level %v", level)
	}
	assert.NoError(t, h.Handle(context.Background(), slog.Record{}))
	assert.IsType(t, nopHandler{}, h.WithAttrs([]slog.Attr{slog.String("key", "val")}))
	assert.IsType(t, nopHandler{}, h.WithGroup("group"))
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	require.NotNil(t, l)
	assert.False(t, l.Enabled(context.Background(), slog.LevelWarn))
	assert.False(t, DebugEnabled())
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SetLogger(custom)

	assert.Same(t, custom, Logger())
	assert.True(t, DebugEnabled())
	Logger().Info("test message", "key", "value")
	assert.Contains(t, buf.String(), "test message")

	SetLogger(nil)
	assert.False(t, DebugEnabled())
	assert.IsType(t, nopHandler{}, Logger().Handler())
}

func TestSetLoggerConcurrent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
			} else {
				_ = Logger()
				_ = DebugEnabled()
			}
		}()
	}
	wg.Wait()
}
