// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package graphics

import (
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
	"github.com/gogpu/wgpu/hal"
)

// Requirements are the constraints an XR runtime places on the graphics
// device used with a session.
type Requirements struct {
	// MinAPIVersion and MaxAPIVersion bound the native API version, packed
	// the way the runtime reports them. Zero means unconstrained.
	MinAPIVersion uint64
	MaxAPIVersion uint64

	// VendorID and DeviceID select the adapter the runtime is attached to.
	// Zero matches any adapter.
	VendorID uint32
	DeviceID uint32
}

// DeviceDescriptor describes the device an Initializer should create.
type DeviceDescriptor struct {
	// AppName and AppVersion identify the application to the driver.
	AppName    string
	AppVersion uint32

	// Requirements are the runtime's graphics requirements.
	Requirements Requirements
}

// Initializer creates the graphics device for one backend and returns the
// native handles an XR session must be bound to.
type Initializer interface {
	InitGraphics(desc *DeviceDescriptor) (*Device, Binding, error)
}

// InitializerFunc adapts a function to the Initializer interface.
type InitializerFunc func(desc *DeviceDescriptor) (*Device, Binding, error)

// InitGraphics calls f(desc).
func (f InitializerFunc) InitGraphics(desc *DeviceDescriptor) (*Device, Binding, error) {
	return f(desc)
}

var initializers = gpucontext.NewRegistry[Initializer]()

func init() {
	for _, b := range allBackends {
		if b.HALVariant() == gputypes.BackendEmpty {
			continue
		}
		RegisterInitializer(b, HALInitializer{Backend: b})
	}
}

// RegisterInitializer sets the device initializer for b, replacing any
// previous one.
func RegisterInitializer(b Backend, init Initializer) {
	initializers.Register(b.String(), func() Initializer { return init })
}

// UnregisterInitializer removes the device initializer for b.
func UnregisterInitializer(b Backend) {
	initializers.Unregister(b.String())
}

// InitializerFor returns the device initializer registered for b.
func InitializerFor(b Backend) (Initializer, error) {
	if !initializers.Has(b.String()) {
		return nil, fmt.Errorf("%w: %s", ErrNoInitializer, b)
	}
	return initializers.Get(b.String()), nil
}

// BindingProvider is implemented by HAL devices that can report the native
// handles backing them.
type BindingProvider interface {
	SessionBinding() (Binding, error)
}

// HALInitializer creates devices through the gogpu HAL backend registered
// for Backend.HALVariant(). The opened HAL device must implement
// BindingProvider.
type HALInitializer struct {
	Backend Backend
}

// InitGraphics opens the first adapter that satisfies desc.Requirements.
func (h HALInitializer) InitGraphics(desc *DeviceDescriptor) (*Device, Binding, error) {
	variant := h.Backend.HALVariant()
	halBackend, ok := hal.GetBackend(variant)
	if variant == gputypes.BackendEmpty || !ok {
		return nil, nil, fmt.Errorf("%w: no HAL backend for %s", ErrNoInitializer, h.Backend)
	}

	instance, err := halBackend.CreateInstance(&hal.InstanceDescriptor{
		Backends: gputypes.Backends(1) << variant,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("graphics: %s instance creation failed: %w", h.Backend, err)
	}

	exposed, ok := selectAdapter(instance.EnumerateAdapters(nil), desc.Requirements)
	if !ok {
		instance.Destroy()
		return nil, nil, fmt.Errorf("%w: %s", ErrNoAdapter, h.Backend)
	}

	open, err := exposed.Adapter.Open(0, exposed.Capabilities.Limits)
	if err != nil {
		exposed.Adapter.Destroy()
		instance.Destroy()
		return nil, nil, fmt.Errorf("graphics: %s device creation failed: %w", h.Backend, err)
	}

	provider, ok := open.Device.(BindingProvider)
	if !ok {
		open.Device.Destroy()
		exposed.Adapter.Destroy()
		instance.Destroy()
		return nil, nil, fmt.Errorf("%w: %s", ErrNoNativeHandles, h.Backend)
	}
	binding, err := provider.SessionBinding()
	if err == nil && binding.Backend() != h.Backend {
		err = fmt.Errorf("%w: device reported %s handles", ErrNoNativeHandles, binding.Backend())
	}
	if err != nil {
		open.Device.Destroy()
		exposed.Adapter.Destroy()
		instance.Destroy()
		return nil, nil, err
	}

	dev := NewDevice(h.Backend, open, exposed.Info)
	dev.release = func() {
		exposed.Adapter.Destroy()
		instance.Destroy()
	}
	return dev, binding, nil
}

// selectAdapter picks the adapter matching req, preferring discrete GPUs.
func selectAdapter(adapters []hal.ExposedAdapter, req Requirements) (hal.ExposedAdapter, bool) {
	best := -1
	for i, a := range adapters {
		if req.VendorID != 0 && a.Info.VendorID != req.VendorID {
			continue
		}
		if req.DeviceID != 0 && a.Info.DeviceID != req.DeviceID {
			continue
		}
		if best < 0 || (a.Info.DeviceType == gputypes.DeviceTypeDiscreteGPU &&
			adapters[best].Info.DeviceType != gputypes.DeviceTypeDiscreteGPU) {
			best = i
		}
	}
	if best < 0 {
		return hal.ExposedAdapter{}, false
	}
	return adapters[best], true
}

// Device is the graphics device state produced by an Initializer.
// It implements gpucontext.DeviceProvider so renderers can share it.
type Device struct {
	backend Backend
	device  hal.Device
	queue   hal.Queue
	info    gputypes.AdapterInfo

	mu            sync.Mutex
	surfaceFormat gputypes.TextureFormat
	wgpuDevice    *wgpu.Device
	release       func()
	destroyed     bool
}

var _ gpucontext.DeviceProvider = (*Device)(nil)

// NewDevice wraps an opened HAL device. Ownership of open passes to the
// returned Device.
func NewDevice(b Backend, open hal.OpenDevice, info gputypes.AdapterInfo) *Device {
	return &Device{
		backend: b,
		device:  open.Device,
		queue:   open.Queue,
		info:    info,
	}
}

// Backend returns the backend the device was created for.
func (d *Device) Backend() Backend { return d.backend }

// HAL returns the HAL device, or nil after Destroy.
func (d *Device) HAL() hal.Device {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destroyed {
		return nil
	}
	return d.device
}

// Device returns the HAL device as a gpucontext.Device.
func (d *Device) Device() gpucontext.Device { return d.HAL() }

// Queue returns the HAL queue.
func (d *Device) Queue() gpucontext.Queue {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destroyed {
		return nil
	}
	return d.queue
}

// SurfaceFormat returns the format chosen for the XR swapchains, or
// TextureFormatUndefined before SetSurfaceFormat.
func (d *Device) SurfaceFormat() gputypes.TextureFormat {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.surfaceFormat
}

// SetSurfaceFormat records the negotiated swapchain format.
func (d *Device) SetSurfaceFormat(f gputypes.TextureFormat) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.surfaceFormat = f
}

// Adapter returns nil; the adapter is owned by the initializer.
func (d *Device) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo returns adapter metadata.
func (d *Device) AdapterInfo() gpucontext.AdapterInfo {
	t := gpucontext.AdapterTypeUnknown
	switch d.info.DeviceType {
	case gputypes.DeviceTypeDiscreteGPU:
		t = gpucontext.AdapterTypeDiscrete
	case gputypes.DeviceTypeIntegratedGPU:
		t = gpucontext.AdapterTypeIntegrated
	case gputypes.DeviceTypeCPU:
		t = gpucontext.AdapterTypeSoftware
	}
	return gpucontext.AdapterInfo{Name: d.info.Name, Type: t}
}

// WGPU returns the device wrapped as a *wgpu.Device, creating the wrapper
// on first use. Swapchain images are imported against it. After the first
// call the wgpu.Device owns the HAL device and queue.
func (d *Device) WGPU() (*wgpu.Device, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destroyed {
		return nil, ErrDeviceDestroyed
	}
	if d.wgpuDevice == nil {
		dev, err := wgpu.NewDeviceFromHAL(d.device, d.queue, 0, wgpu.DefaultLimits(), "xr "+d.backend.String())
		if err != nil {
			return nil, fmt.Errorf("graphics: wrap %s device: %w", d.backend, err)
		}
		d.wgpuDevice = dev
	}
	return d.wgpuDevice, nil
}

// Destroy releases the device. Calling it again has no effect.
func (d *Device) Destroy() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destroyed {
		return
	}
	d.destroyed = true
	switch {
	case d.wgpuDevice != nil:
		d.wgpuDevice.Release()
	case d.device != nil:
		d.device.Destroy()
	}
	if d.release != nil {
		d.release()
	}
}
