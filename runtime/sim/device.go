// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sim

import (
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/xr/graphics"
)

// VendorID is the PCI vendor ID reported by simulated adapters.
const VendorID uint32 = 0x5157

// Device is a HAL device backed by the noop backend. It reports fake
// native handles and imports runtime images without touching a GPU.
type Device struct {
	*noop.Device
	backend graphics.Backend

	mu       sync.Mutex
	imported []uint64
}

var (
	_ hal.Device               = (*Device)(nil)
	_ graphics.BindingProvider = (*Device)(nil)
	_ graphics.ImageImporter   = (*Device)(nil)
)

// NewDevice returns a simulated HAL device for b.
func NewDevice(b graphics.Backend) *Device {
	return &Device{Device: &noop.Device{}, backend: b}
}

// SessionBinding returns nonzero fake handles for the device's backend.
func (d *Device) SessionBinding() (graphics.Binding, error) {
	const h = uintptr(0xD0)
	switch d.backend {
	case graphics.BackendVulkan:
		return graphics.VulkanBinding{Instance: h, PhysicalDevice: h + 1, Device: h + 2}, nil
	case graphics.BackendD3D11:
		return graphics.D3D11Binding{Device: h}, nil
	case graphics.BackendD3D12:
		return graphics.D3D12Binding{Device: h, Queue: h + 1}, nil
	case graphics.BackendOpenGLES:
		return graphics.OpenGLESBinding{GetProcAddress: h, Display: h + 1, Config: h + 2, Context: h + 3}, nil
	case graphics.BackendMetal:
		return graphics.MetalBinding{CommandQueue: h}, nil
	}
	return nil, fmt.Errorf("%w: %s", graphics.ErrUnknownBackend, d.backend)
}

// ImportImage wraps handle as a texture. The texture's NativeHandle is the
// runtime handle.
func (d *Device) ImportImage(b graphics.Backend, handle uint64, desc *hal.TextureDescriptor) (hal.Texture, error) {
	if b != d.backend {
		return nil, fmt.Errorf("sim: %s image imported into %s device", b, d.backend)
	}
	d.mu.Lock()
	d.imported = append(d.imported, handle)
	d.mu.Unlock()
	return &Texture{handle: handle, desc: *desc}, nil
}

// Imported returns the handles passed to ImportImage, in call order.
func (d *Device) Imported() []uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]uint64, len(d.imported))
	copy(out, d.imported)
	return out
}

// Texture is an imported runtime image.
type Texture struct {
	noop.Texture
	handle uint64
	desc   hal.TextureDescriptor
}

// NativeHandle returns the runtime image handle.
func (t *Texture) NativeHandle() uintptr { return uintptr(t.handle) }

// Descriptor returns the descriptor the image was imported with.
func (t *Texture) Descriptor() hal.TextureDescriptor { return t.desc }

// Initializer returns a graphics initializer that creates simulated
// devices for b.
func Initializer(b graphics.Backend) graphics.Initializer {
	return graphics.InitializerFunc(func(desc *graphics.DeviceDescriptor) (*graphics.Device, graphics.Binding, error) {
		if desc.Requirements.VendorID != 0 && desc.Requirements.VendorID != VendorID {
			return nil, nil, fmt.Errorf("%w: %s vendor %#x", graphics.ErrNoAdapter, b, desc.Requirements.VendorID)
		}
		halDevice := NewDevice(b)
		binding, err := halDevice.SessionBinding()
		if err != nil {
			return nil, nil, err
		}
		dev := graphics.NewDevice(b, hal.OpenDevice{Device: halDevice, Queue: &noop.Queue{}}, gputypes.AdapterInfo{
			Name:       "gogpu simulated " + b.String(),
			Vendor:     "gogpu",
			VendorID:   VendorID,
			DeviceType: gputypes.DeviceTypeCPU,
		})
		logger().Debug("sim: device created", "backend", b, "app", desc.AppName)
		return dev, binding, nil
	})
}

// InstallInitializers registers Initializer for every backend, replacing
// the HAL initializers.
func InstallInitializers() {
	for _, b := range graphics.Backends() {
		graphics.RegisterInitializer(b, Initializer(b))
	}
}
