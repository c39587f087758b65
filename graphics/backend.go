// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package graphics

import (
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"
)

// Backend identifies a native graphics API an XR session can be bound to.
// The set is closed.
type Backend uint8

const (
	// BackendVulkan binds sessions through XR_KHR_vulkan_enable2.
	BackendVulkan Backend = iota + 1
	// BackendD3D11 binds sessions through XR_KHR_D3D11_enable.
	BackendD3D11
	// BackendD3D12 binds sessions through XR_KHR_D3D12_enable.
	BackendD3D12
	// BackendOpenGLES binds sessions through XR_KHR_opengl_es_enable.
	BackendOpenGLES
	// BackendMetal binds sessions through XR_KHR_metal_enable.
	BackendMetal
)

// Runtime extensions required by each backend.
const (
	ExtVulkanEnable2  = "XR_KHR_vulkan_enable2"
	ExtD3D11Enable    = "XR_KHR_D3D11_enable"
	ExtD3D12Enable    = "XR_KHR_D3D12_enable"
	ExtOpenGLESEnable = "XR_KHR_opengl_es_enable"
	ExtMetalEnable    = "XR_KHR_metal_enable"
)

// allBackends lists every supported backend in preference order.
var allBackends = []Backend{
	BackendVulkan,
	BackendD3D12,
	BackendD3D11,
	BackendMetal,
	BackendOpenGLES,
}

// Backends returns every supported backend in preference order.
func Backends() []Backend {
	out := make([]Backend, len(allBackends))
	copy(out, allBackends)
	return out
}

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case BackendVulkan:
		return "Vulkan"
	case BackendD3D11:
		return "D3D11"
	case BackendD3D12:
		return "D3D12"
	case BackendOpenGLES:
		return "OpenGLES"
	case BackendMetal:
		return "Metal"
	default:
		return fmt.Sprintf("Backend(%d)", uint8(b))
	}
}

// Valid reports whether b is one of the supported backends.
func (b Backend) Valid() bool {
	return b >= BackendVulkan && b <= BackendMetal
}

// ParseBackend parses a backend name. Matching is case-insensitive and
// accepts the common aliases "vk", "gles", "dx11" and "dx12".
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "vulkan", "vk":
		return BackendVulkan, nil
	case "d3d11", "dx11":
		return BackendD3D11, nil
	case "d3d12", "dx12":
		return BackendD3D12, nil
	case "opengles", "gles", "opengl_es":
		return BackendOpenGLES, nil
	case "metal", "mtl":
		return BackendMetal, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// RequiredExtensions returns the runtime extensions the backend needs.
func (b Backend) RequiredExtensions() Extensions {
	switch b {
	case BackendVulkan:
		return NewExtensions(ExtVulkanEnable2)
	case BackendD3D11:
		return NewExtensions(ExtD3D11Enable)
	case BackendD3D12:
		return NewExtensions(ExtD3D12Enable)
	case BackendOpenGLES:
		return NewExtensions(ExtOpenGLESEnable)
	case BackendMetal:
		return NewExtensions(ExtMetalEnable)
	}
	panic(Unreachable(b))
}

// IsAvailable reports whether every extension the backend requires is
// present in available.
func (b Backend) IsAvailable(available Extensions) bool {
	return available.ContainsAll(b.RequiredExtensions())
}

// AvailableBackends returns, in preference order, the backends whose
// required extensions are all present in available.
func AvailableBackends(available Extensions) []Backend {
	var out []Backend
	for _, b := range allBackends {
		if b.IsAvailable(available) {
			out = append(out, b)
		}
	}
	return out
}

// HALVariant returns the gogpu HAL backend used to create devices for b.
// D3D11 has no HAL implementation and maps to gputypes.BackendEmpty.
func (b Backend) HALVariant() gputypes.Backend {
	switch b {
	case BackendVulkan:
		return gputypes.BackendVulkan
	case BackendD3D12:
		return gputypes.BackendDX12
	case BackendOpenGLES:
		return gputypes.BackendGL
	case BackendMetal:
		return gputypes.BackendMetal
	default:
		return gputypes.BackendEmpty
	}
}

// Unreachable returns the panic value used when dispatch meets a backend
// outside the closed set. Reaching it means a Backend value was forged.
func Unreachable(b Backend) string {
	return fmt.Sprintf("graphics: unreachable backend %d", uint8(b))
}
