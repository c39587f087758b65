package xr

import (
	"errors"
	"fmt"

	"github.com/gogpu/xr/graphics"
)

var (
	// ErrUnavailableBackend matches *UnavailableBackendError.
	ErrUnavailableBackend = errors.New("xr: backend unavailable")

	// ErrGraphicsBackendMismatch matches *GraphicsBackendMismatchError.
	ErrGraphicsBackendMismatch = errors.New("xr: graphics backend mismatch")

	// ErrConversion matches *ConversionError.
	ErrConversion = errors.New("xr: unsupported swapchain description")

	// ErrRuntimeQuery matches *RuntimeQueryError.
	ErrRuntimeQuery = errors.New("xr: runtime query failed")

	// ErrInvalidGraphicsInfo is returned by CreateSession for a zero
	// SessionGraphicsInfo.
	ErrInvalidGraphicsInfo = errors.New("xr: invalid session graphics info")

	// ErrNoDevice is returned by InitGraphics when an initializer reports
	// success without a device.
	ErrNoDevice = errors.New("xr: initializer returned no device")

	// ErrNoCandidate is returned by the Choose helpers when nothing is
	// available.
	ErrNoCandidate = errors.New("xr: no candidate available")
)

// UnavailableBackendError reports that the runtime lacks extensions a
// backend requires.
type UnavailableBackendError struct {
	Backend graphics.Backend
	Missing graphics.Extensions
}

func (e *UnavailableBackendError) Error() string {
	return fmt.Sprintf("xr: backend %s unavailable: missing %s", e.Backend, e.Missing)
}

func (e *UnavailableBackendError) Is(target error) bool { return target == ErrUnavailableBackend }

// GraphicsBackendMismatchError reports an object of one backend used
// where another backend was expected.
type GraphicsBackendMismatchError struct {
	Item     string
	Expected graphics.Backend
	Actual   graphics.Backend
}

func (e *GraphicsBackendMismatchError) Error() string {
	return fmt.Sprintf("xr: %s uses backend %s, expected %s", e.Item, e.Actual, e.Expected)
}

func (e *GraphicsBackendMismatchError) Is(target error) bool {
	return target == ErrGraphicsBackendMismatch
}

// ConversionError reports a swapchain description the backend cannot
// express.
type ConversionError struct {
	Backend graphics.Backend
	Field   string
	Reason  string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("xr: %s swapchain %s: %s", e.Backend, e.Field, e.Reason)
}

func (e *ConversionError) Is(target error) bool { return target == ErrConversion }

// RuntimeQueryError wraps a failed runtime loader query.
type RuntimeQueryError struct {
	Op  string
	Err error
}

func (e *RuntimeQueryError) Error() string {
	return fmt.Sprintf("xr: %s: %v", e.Op, e.Err)
}

func (e *RuntimeQueryError) Unwrap() error { return e.Err }

func (e *RuntimeQueryError) Is(target error) bool { return target == ErrRuntimeQuery }
