// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package graphics

import "github.com/gogpu/gputypes"

// API is implemented by the zero-size backend marker types. It is sealed:
// only the markers declared in this package satisfy it, which keeps the set
// of instantiations of backend-generic code closed.
type API interface {
	// Backend returns the backend the marker stands for.
	Backend() Backend

	// ToTextureFormat converts a native swapchain format to the engine
	// format. It reports false when the format has no engine equivalent.
	ToTextureFormat(native int64) (gputypes.TextureFormat, bool)

	// FromTextureFormat converts an engine format to the native swapchain
	// format. It reports false when the backend cannot express it.
	FromTextureFormat(format gputypes.TextureFormat) (int64, bool)

	sealed()
}

// Vulkan is the marker for BackendVulkan.
type Vulkan struct{}

// D3D11 is the marker for BackendD3D11.
type D3D11 struct{}

// D3D12 is the marker for BackendD3D12.
type D3D12 struct{}

// OpenGLES is the marker for BackendOpenGLES.
type OpenGLES struct{}

// Metal is the marker for BackendMetal.
type Metal struct{}

func (Vulkan) Backend() Backend   { return BackendVulkan }
func (D3D11) Backend() Backend    { return BackendD3D11 }
func (D3D12) Backend() Backend    { return BackendD3D12 }
func (OpenGLES) Backend() Backend { return BackendOpenGLES }
func (Metal) Backend() Backend    { return BackendMetal }

func (Vulkan) sealed()   {}
func (D3D11) sealed()    {}
func (D3D12) sealed()    {}
func (OpenGLES) sealed() {}
func (Metal) sealed()    {}

func (Vulkan) ToTextureFormat(native int64) (gputypes.TextureFormat, bool) {
	return vulkanFormats.toEngine(native)
}

func (Vulkan) FromTextureFormat(format gputypes.TextureFormat) (int64, bool) {
	return vulkanFormats.toNative(format)
}

func (D3D11) ToTextureFormat(native int64) (gputypes.TextureFormat, bool) {
	return dxgiFormats.toEngine(native)
}

func (D3D11) FromTextureFormat(format gputypes.TextureFormat) (int64, bool) {
	return dxgiFormats.toNative(format)
}

func (D3D12) ToTextureFormat(native int64) (gputypes.TextureFormat, bool) {
	return dxgiFormats.toEngine(native)
}

func (D3D12) FromTextureFormat(format gputypes.TextureFormat) (int64, bool) {
	return dxgiFormats.toNative(format)
}

func (OpenGLES) ToTextureFormat(native int64) (gputypes.TextureFormat, bool) {
	return glFormats.toEngine(native)
}

func (OpenGLES) FromTextureFormat(format gputypes.TextureFormat) (int64, bool) {
	return glFormats.toNative(format)
}

func (Metal) ToTextureFormat(native int64) (gputypes.TextureFormat, bool) {
	return metalFormats.toEngine(native)
}

func (Metal) FromTextureFormat(format gputypes.TextureFormat) (int64, bool) {
	return metalFormats.toNative(format)
}

// BackendOf returns the backend of the marker type G.
func BackendOf[G API]() Backend {
	var g G
	return g.Backend()
}

// APIFor returns the marker value for b.
func APIFor(b Backend) API {
	switch b {
	case BackendVulkan:
		return Vulkan{}
	case BackendD3D11:
		return D3D11{}
	case BackendD3D12:
		return D3D12{}
	case BackendOpenGLES:
		return OpenGLES{}
	case BackendMetal:
		return Metal{}
	}
	panic(Unreachable(b))
}
