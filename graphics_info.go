package xr

import (
	"fmt"

	"github.com/gogpu/xr/graphics"
	"github.com/gogpu/xr/runtime"
)

// SessionGraphicsInfo holds the native handles a session is created with,
// tagged with their backend. The zero value is invalid.
type SessionGraphicsInfo struct {
	w graphics.Wrap[sessionCreateInfoKind]
}

// NewSessionGraphicsInfo wraps binding. The tag comes from the concrete
// binding type; bindings of other types yield the zero SessionGraphicsInfo.
func NewSessionGraphicsInfo(binding graphics.Binding) SessionGraphicsInfo {
	switch binding.(type) {
	case graphics.VulkanBinding:
		return wrapGraphicsInfo[graphics.Vulkan](binding)
	case graphics.D3D11Binding:
		return wrapGraphicsInfo[graphics.D3D11](binding)
	case graphics.D3D12Binding:
		return wrapGraphicsInfo[graphics.D3D12](binding)
	case graphics.OpenGLESBinding:
		return wrapGraphicsInfo[graphics.OpenGLES](binding)
	case graphics.MetalBinding:
		return wrapGraphicsInfo[graphics.Metal](binding)
	}
	return SessionGraphicsInfo{}
}

func wrapGraphicsInfo[G graphics.API](binding graphics.Binding) SessionGraphicsInfo {
	return SessionGraphicsInfo{w: graphics.WrapValue[sessionCreateInfoKind](sessionCreateInfo[G]{binding: binding})}
}

// Backend returns the tag, or zero for an invalid info.
func (s SessionGraphicsInfo) Backend() graphics.Backend { return s.w.Backend() }

// Valid reports whether the info carries a backend tag.
func (s SessionGraphicsInfo) Valid() bool { return s.w.Valid() }

// Using reports whether the info is tagged with b.
func (s SessionGraphicsInfo) Using(b graphics.Backend) bool { return s.w.Using(b) }

// Binding returns the wrapped native handles, or nil for an invalid info.
func (s SessionGraphicsInfo) Binding() graphics.Binding {
	if !s.w.Valid() {
		return nil
	}
	return s.w.Value().nativeBinding()
}

type sessionCreateInfoKind interface {
	graphics.Specialized
	nativeBinding() graphics.Binding
	createSession(i *Instance, system runtime.SystemID) (*Session, *FrameWaiter, *FrameStream, error)
}

type sessionCreateInfo[G graphics.API] struct {
	binding graphics.Binding
}

func (sessionCreateInfo[G]) Backend() graphics.Backend { return graphics.BackendOf[G]() }

func (c sessionCreateInfo[G]) nativeBinding() graphics.Binding { return c.binding }

func (c sessionCreateInfo[G]) createSession(i *Instance, system runtime.SystemID) (*Session, *FrameWaiter, *FrameStream, error) {
	b := graphics.BackendOf[G]()
	raw, err := i.raw.CreateSession(system, c.binding)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("xr: create %s session: %w", b, err)
	}

	s := &Session{
		instance: i,
		raw:      raw,
		w:        graphics.WrapValue[sessionKind](session[G]{raw: raw}),
		started:  i.started,
	}
	waiter := &FrameWaiter{raw: raw}
	stream := &FrameStream{w: graphics.WrapValue[frameStreamKind](frameStream[G]{raw: raw})}
	Logger().Info("xr: session created", "backend", b)
	return s, waiter, stream, nil
}
