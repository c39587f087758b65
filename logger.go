package xr

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gogpu/xr/runtime"
)

// nopHandler is a slog.Handler that discards all records. Enabled returns
// false so callers skip building attributes.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

// activeLoader is the loader of the most recently created Entry. It
// receives the logger on every SetLogger call.
var (
	activeMu     sync.Mutex
	activeLoader runtime.Loader
)

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for xr. By default xr produces no log
// output. Pass nil to restore the silent default.
//
// Log levels used by xr:
//   - [slog.LevelDebug]: swapchain formats with no engine equivalent
//   - [slog.LevelInfo]: instance and session lifecycle
//   - [slog.LevelWarn]: dropped composition layers, teardown failures
//
// The logger is also passed to the runtime loader of the last Entry when
// the loader has a SetLogger method.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	activeMu.Lock()
	loader := activeLoader
	activeMu.Unlock()
	if loader != nil {
		propagateLogger(loader, l)
	}
}

// Logger returns the current logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

type loggerSetter interface {
	SetLogger(*slog.Logger)
}

func propagateLogger(loader runtime.Loader, l *slog.Logger) {
	if ls, ok := loader.(loggerSetter); ok {
		ls.SetLogger(l)
	}
}

func setActiveLoader(loader runtime.Loader) {
	activeMu.Lock()
	activeLoader = loader
	activeMu.Unlock()
	propagateLogger(loader, Logger())
}
