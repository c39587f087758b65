package xr

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/xr/graphics"
	"github.com/gogpu/xr/runtime"
	"github.com/gogpu/xr/runtime/sim"
)

// loggingLoader records the last logger handed to it.
type loggingLoader struct {
	runtime.Loader
	logger atomic.Pointer[slog.Logger]
}

func (l *loggingLoader) SetLogger(lg *slog.Logger) { l.logger.Store(lg) }

func newLoggingLoader() *loggingLoader { return &loggingLoader{Loader: sim.New()} }

func TestLoggerDefaultSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)
	l := Logger()
	require.NotNil(t, l)
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestSetLoggerPropagatesToLoader(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	loader := newLoggingLoader()
	NewEntry(loader)

	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	SetLogger(custom)
	assert.Same(t, custom, loader.logger.Load())

	// nil reaches the loader as the silent logger, never as nil.
	SetLogger(nil)
	got := loader.logger.Load()
	require.NotNil(t, got)
	assert.False(t, got.Enabled(context.Background(), slog.LevelError))
}

func TestNewEntryPropagatesCurrentLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	SetLogger(custom)

	loader := newLoggingLoader()
	NewEntry(loader)
	assert.Same(t, custom, loader.logger.Load())
}

func TestSetLoggerReachesLatestLoaderOnly(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	first, second := newLoggingLoader(), newLoggingLoader()
	NewEntry(first)
	NewEntry(second)
	before := first.logger.Load()

	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	SetLogger(custom)
	assert.Same(t, custom, second.logger.Load())
	assert.Same(t, before, first.logger.Load(), "replaced loader still receives loggers")
}

func TestLifecycleLogging(t *testing.T) {
	logs := captureLogs(t)
	entry, _ := newTestEntry(t)
	ts := newTestSession(t, entry, graphics.BackendVulkan)
	require.NoError(t, ts.session.Begin(runtime.ViewConfigurationPrimaryStereo))
	require.NoError(t, ts.session.RequestExit())
	require.NoError(t, ts.session.End())

	for _, msg := range []string{"instance created", "graphics initialized", "session created", "session started", "session ended"} {
		assert.Equal(t, 1, logs.count(slog.LevelInfo, msg), msg)
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	loader := newLoggingLoader()
	NewEntry(loader)

	var wg sync.WaitGroup
	const goroutines = 100
	for range goroutines {
		wg.Add(2)
		go func() {
			defer wg.Done()
			l := Logger()
			assert.NotNil(t, l)
			l.Debug("xr: concurrent read")
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}
	wg.Wait()
	assert.NotNil(t, loader.logger.Load())
}
