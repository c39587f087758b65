// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package graphics

import "github.com/gogpu/gputypes"

// formatTable is a bidirectional mapping between native swapchain formats
// and engine texture formats. Entries are listed in native preference order;
// the first native value listed for an engine format wins on the reverse
// lookup.
type formatTable struct {
	entries []formatEntry
}

type formatEntry struct {
	native int64
	engine gputypes.TextureFormat
}

func (t *formatTable) toEngine(native int64) (gputypes.TextureFormat, bool) {
	for _, e := range t.entries {
		if e.native == native {
			return e.engine, true
		}
	}
	return gputypes.TextureFormatUndefined, false
}

func (t *formatTable) toNative(format gputypes.TextureFormat) (int64, bool) {
	for _, e := range t.entries {
		if e.engine == format {
			return e.native, true
		}
	}
	return 0, false
}

// VkFormat values.
var vulkanFormats = &formatTable{entries: []formatEntry{
	{43, gputypes.TextureFormatRGBA8UnormSrgb},        // VK_FORMAT_R8G8B8A8_SRGB
	{50, gputypes.TextureFormatBGRA8UnormSrgb},        // VK_FORMAT_B8G8R8A8_SRGB
	{37, gputypes.TextureFormatRGBA8Unorm},            // VK_FORMAT_R8G8B8A8_UNORM
	{44, gputypes.TextureFormatBGRA8Unorm},            // VK_FORMAT_B8G8R8A8_UNORM
	{38, gputypes.TextureFormatRGBA8Snorm},            // VK_FORMAT_R8G8B8A8_SNORM
	{97, gputypes.TextureFormatRGBA16Float},           // VK_FORMAT_R16G16B16A16_SFLOAT
	{109, gputypes.TextureFormatRGBA32Float},          // VK_FORMAT_R32G32B32A32_SFLOAT
	{64, gputypes.TextureFormatRGB10A2Unorm},          // VK_FORMAT_A2B10G10R10_UNORM_PACK32
	{122, gputypes.TextureFormatRG11B10Ufloat},        // VK_FORMAT_B10G11R11_UFLOAT_PACK32
	{126, gputypes.TextureFormatDepth32Float},         // VK_FORMAT_D32_SFLOAT
	{124, gputypes.TextureFormatDepth16Unorm},         // VK_FORMAT_D16_UNORM
	{129, gputypes.TextureFormatDepth24PlusStencil8},  // VK_FORMAT_D24_UNORM_S8_UINT
	{130, gputypes.TextureFormatDepth32FloatStencil8}, // VK_FORMAT_D32_SFLOAT_S8_UINT
}}

// DXGI_FORMAT values, shared by D3D11 and D3D12.
var dxgiFormats = &formatTable{entries: []formatEntry{
	{29, gputypes.TextureFormatRGBA8UnormSrgb},       // DXGI_FORMAT_R8G8B8A8_UNORM_SRGB
	{91, gputypes.TextureFormatBGRA8UnormSrgb},       // DXGI_FORMAT_B8G8R8A8_UNORM_SRGB
	{28, gputypes.TextureFormatRGBA8Unorm},           // DXGI_FORMAT_R8G8B8A8_UNORM
	{87, gputypes.TextureFormatBGRA8Unorm},           // DXGI_FORMAT_B8G8R8A8_UNORM
	{31, gputypes.TextureFormatRGBA8Snorm},           // DXGI_FORMAT_R8G8B8A8_SNORM
	{10, gputypes.TextureFormatRGBA16Float},          // DXGI_FORMAT_R16G16B16A16_FLOAT
	{2, gputypes.TextureFormatRGBA32Float},           // DXGI_FORMAT_R32G32B32A32_FLOAT
	{24, gputypes.TextureFormatRGB10A2Unorm},         // DXGI_FORMAT_R10G10B10A2_UNORM
	{26, gputypes.TextureFormatRG11B10Ufloat},        // DXGI_FORMAT_R11G11B10_FLOAT
	{40, gputypes.TextureFormatDepth32Float},         // DXGI_FORMAT_D32_FLOAT
	{55, gputypes.TextureFormatDepth16Unorm},         // DXGI_FORMAT_D16_UNORM
	{45, gputypes.TextureFormatDepth24PlusStencil8},  // DXGI_FORMAT_D24_UNORM_S8_UINT
	{20, gputypes.TextureFormatDepth32FloatStencil8}, // DXGI_FORMAT_D32_FLOAT_S8X24_UINT
}}

// GL internal formats.
var glFormats = &formatTable{entries: []formatEntry{
	{0x8C43, gputypes.TextureFormatRGBA8UnormSrgb},       // GL_SRGB8_ALPHA8
	{0x8058, gputypes.TextureFormatRGBA8Unorm},           // GL_RGBA8
	{0x8F97, gputypes.TextureFormatRGBA8Snorm},           // GL_RGBA8_SNORM
	{0x881A, gputypes.TextureFormatRGBA16Float},          // GL_RGBA16F
	{0x8814, gputypes.TextureFormatRGBA32Float},          // GL_RGBA32F
	{0x8059, gputypes.TextureFormatRGB10A2Unorm},         // GL_RGB10_A2
	{0x8C3A, gputypes.TextureFormatRG11B10Ufloat},        // GL_R11F_G11F_B10F
	{0x8CAC, gputypes.TextureFormatDepth32Float},         // GL_DEPTH_COMPONENT32F
	{0x81A5, gputypes.TextureFormatDepth16Unorm},         // GL_DEPTH_COMPONENT16
	{0x88F0, gputypes.TextureFormatDepth24PlusStencil8},  // GL_DEPTH24_STENCIL8
	{0x8CAD, gputypes.TextureFormatDepth32FloatStencil8}, // GL_DEPTH32F_STENCIL8
}}

// MTLPixelFormat values.
var metalFormats = &formatTable{entries: []formatEntry{
	{71, gputypes.TextureFormatRGBA8UnormSrgb},        // MTLPixelFormatRGBA8Unorm_sRGB
	{81, gputypes.TextureFormatBGRA8UnormSrgb},        // MTLPixelFormatBGRA8Unorm_sRGB
	{70, gputypes.TextureFormatRGBA8Unorm},            // MTLPixelFormatRGBA8Unorm
	{80, gputypes.TextureFormatBGRA8Unorm},            // MTLPixelFormatBGRA8Unorm
	{72, gputypes.TextureFormatRGBA8Snorm},            // MTLPixelFormatRGBA8Snorm
	{115, gputypes.TextureFormatRGBA16Float},          // MTLPixelFormatRGBA16Float
	{125, gputypes.TextureFormatRGBA32Float},          // MTLPixelFormatRGBA32Float
	{90, gputypes.TextureFormatRGB10A2Unorm},          // MTLPixelFormatRGB10A2Unorm
	{92, gputypes.TextureFormatRG11B10Ufloat},         // MTLPixelFormatRG11B10Float
	{252, gputypes.TextureFormatDepth32Float},         // MTLPixelFormatDepth32Float
	{250, gputypes.TextureFormatDepth16Unorm},         // MTLPixelFormatDepth16Unorm
	{255, gputypes.TextureFormatDepth24PlusStencil8},  // MTLPixelFormatDepth24Unorm_Stencil8
	{260, gputypes.TextureFormatDepth32FloatStencil8}, // MTLPixelFormatDepth32Float_Stencil8
}}
