package xr

import (
	"fmt"

	"github.com/gogpu/xr/graphics"
	"github.com/gogpu/xr/runtime"
)

// Instance is a runtime instance bound to one graphics backend for its
// lifetime.
type Instance struct {
	raw        runtime.Instance
	backend    graphics.Backend
	app        AppInfo
	extensions graphics.Extensions
	started    *SessionStarted
}

// Backend returns the backend the instance was created for.
func (i *Instance) Backend() graphics.Backend { return i.backend }

// AppInfo returns the application info the instance was created with.
func (i *Instance) AppInfo() AppInfo { return i.app }

// Extensions returns the enabled extensions.
func (i *Instance) Extensions() graphics.Extensions { return i.extensions }

// SessionStarted returns the flag shared by every session of the instance.
func (i *Instance) SessionStarted() *SessionStarted { return i.started }

// Raw returns the native instance.
func (i *Instance) Raw() runtime.Instance { return i.raw }

// System returns the system for formFactor.
func (i *Instance) System(formFactor runtime.FormFactor) (runtime.SystemID, error) {
	id, err := i.raw.System(formFactor)
	if err != nil {
		return 0, fmt.Errorf("xr: get system: %w", err)
	}
	return id, nil
}

// GraphicsRequirements returns the runtime's device constraints for the
// instance's backend. InitGraphics calls it; callers building a
// SessionGraphicsInfo by hand must call it before CreateSession.
func (i *Instance) GraphicsRequirements(system runtime.SystemID) (graphics.Requirements, error) {
	req, err := i.raw.GraphicsRequirements(system, i.backend)
	if err != nil {
		return graphics.Requirements{}, fmt.Errorf("xr: %s graphics requirements: %w", i.backend, err)
	}
	return req, nil
}

// InitGraphics creates the graphics device for the instance's backend with
// the initializer registered in package graphics. The returned
// SessionGraphicsInfo is tagged with the instance's backend.
func (i *Instance) InitGraphics(system runtime.SystemID) (*graphics.Device, SessionGraphicsInfo, error) {
	switch i.backend {
	case graphics.BackendVulkan:
		return initGraphics[graphics.Vulkan](i, system)
	case graphics.BackendD3D11:
		return initGraphics[graphics.D3D11](i, system)
	case graphics.BackendD3D12:
		return initGraphics[graphics.D3D12](i, system)
	case graphics.BackendOpenGLES:
		return initGraphics[graphics.OpenGLES](i, system)
	case graphics.BackendMetal:
		return initGraphics[graphics.Metal](i, system)
	}
	panic(graphics.Unreachable(i.backend))
}

func initGraphics[G graphics.API](i *Instance, system runtime.SystemID) (*graphics.Device, SessionGraphicsInfo, error) {
	b := graphics.BackendOf[G]()
	req, err := i.GraphicsRequirements(system)
	if err != nil {
		return nil, SessionGraphicsInfo{}, err
	}
	initializer, err := graphics.InitializerFor(b)
	if err != nil {
		return nil, SessionGraphicsInfo{}, fmt.Errorf("xr: init graphics: %w", err)
	}
	dev, binding, err := initializer.InitGraphics(&graphics.DeviceDescriptor{
		AppName:      i.app.Name,
		AppVersion:   i.app.Version.Pack(),
		Requirements: req,
	})
	if err != nil {
		return nil, SessionGraphicsInfo{}, fmt.Errorf("xr: init %s graphics: %w", b, err)
	}
	if dev == nil {
		return nil, SessionGraphicsInfo{}, fmt.Errorf("xr: init %s graphics: %w", b, ErrNoDevice)
	}
	if binding == nil || binding.Backend() != b {
		actual := graphics.Backend(0)
		if binding != nil {
			actual = binding.Backend()
		}
		dev.Destroy()
		return nil, SessionGraphicsInfo{}, &GraphicsBackendMismatchError{
			Item: "device binding", Expected: b, Actual: actual,
		}
	}

	Logger().Info("xr: graphics initialized",
		"backend", b, "adapter", dev.AdapterInfo().Name)
	return dev, wrapGraphicsInfo[G](binding), nil
}

// CreateSession creates a session from info together with its frame
// waiter and frame stream.
//
// info must carry the instance's backend; otherwise CreateSession returns
// a *GraphicsBackendMismatchError and makes no runtime call. The runtime
// trusts the native handles in info: the caller guarantees they are live
// objects of the claimed backend.
func (i *Instance) CreateSession(system runtime.SystemID, info SessionGraphicsInfo) (*Session, *FrameWaiter, *FrameStream, error) {
	if !info.w.Valid() {
		return nil, nil, nil, ErrInvalidGraphicsInfo
	}
	if !info.w.Using(i.backend) {
		return nil, nil, nil, &GraphicsBackendMismatchError{
			Item:     "session graphics info",
			Expected: i.backend,
			Actual:   info.w.Backend(),
		}
	}
	return info.w.Value().createSession(i, system)
}

// PollEvent returns the next runtime event, or nil when none is pending.
func (i *Instance) PollEvent() (runtime.Event, error) {
	ev, err := i.raw.PollEvent()
	if err != nil {
		return nil, fmt.Errorf("xr: poll event: %w", err)
	}
	return ev, nil
}

// Destroy releases the instance. Failures are logged and returned; they
// are not retried.
func (i *Instance) Destroy() error {
	if err := i.raw.Destroy(); err != nil {
		Logger().Warn("xr: instance destroy failed", "err", err)
		return fmt.Errorf("xr: destroy instance: %w", err)
	}
	return nil
}
