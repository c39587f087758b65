package xr

import (
	"fmt"

	"github.com/gogpu/xr/graphics"
	"github.com/gogpu/xr/runtime"
)

// Entry wraps a runtime loader.
type Entry struct {
	loader runtime.Loader
}

// NewEntry returns an Entry for loader.
func NewEntry(loader runtime.Loader) *Entry {
	setActiveLoader(loader)
	return &Entry{loader: loader}
}

// LoadEntry returns an Entry for the loader registered under name. An
// empty name selects the preferred registered loader.
func LoadEntry(name string) (*Entry, error) {
	var (
		loader runtime.Loader
		err    error
	)
	if name == "" {
		loader, name, err = runtime.Best()
	} else {
		loader, err = runtime.Get(name)
	}
	if err != nil {
		return nil, fmt.Errorf("xr: load entry: %w", err)
	}
	Logger().Debug("xr: runtime loaded", "runtime", name)
	return NewEntry(loader), nil
}

// Loader returns the wrapped loader.
func (e *Entry) Loader() runtime.Loader { return e.loader }

// EnumerateExtensions returns the extensions the runtime supports.
func (e *Entry) EnumerateExtensions() (graphics.Extensions, error) {
	names, err := e.loader.EnumerateExtensions()
	if err != nil {
		return graphics.Extensions{}, &RuntimeQueryError{Op: "enumerate extensions", Err: err}
	}
	return graphics.NewExtensions(names...), nil
}

// AvailableBackends returns, in preference order, the backends whose
// required extensions the runtime supports.
func (e *Entry) AvailableBackends() ([]graphics.Backend, error) {
	exts, err := e.EnumerateExtensions()
	if err != nil {
		return nil, err
	}
	return graphics.AvailableBackends(exts), nil
}

// CreateInstance creates an instance bound to backend. The instance enables
// exts plus the extensions backend requires.
//
// It returns an *UnavailableBackendError before creating anything when the
// runtime does not support backend.
func (e *Entry) CreateInstance(app AppInfo, exts graphics.Extensions, layers []string, backend graphics.Backend) (*Instance, error) {
	if !backend.Valid() {
		return nil, fmt.Errorf("%w: %d", graphics.ErrUnknownBackend, backend)
	}
	available, err := e.EnumerateExtensions()
	if err != nil {
		return nil, err
	}
	required := backend.RequiredExtensions()
	if !backend.IsAvailable(available) {
		return nil, &UnavailableBackendError{
			Backend: backend,
			Missing: required.Difference(available),
		}
	}

	enabled := exts.Union(required)
	raw, err := e.loader.CreateInstance(&runtime.InstanceDescriptor{
		ApplicationName:    app.Name,
		ApplicationVersion: app.Version.Pack(),
		EngineName:         EngineName,
		EngineVersion:      EngineVersion.Pack(),
		Extensions:         enabled.Names(),
		Layers:             layers,
	})
	if err != nil {
		return nil, fmt.Errorf("xr: create instance: %w", err)
	}

	Logger().Info("xr: instance created",
		"app", app.Name, "version", app.Version, "backend", backend, "extensions", enabled.Len())
	return &Instance{
		raw:        raw,
		backend:    backend,
		app:        app,
		extensions: enabled,
		started:    new(SessionStarted),
	}, nil
}
