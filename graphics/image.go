// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package graphics

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
	"github.com/gogpu/wgpu/hal"
)

// SwapchainImageUsage is the usage given to imported swapchain images.
const SwapchainImageUsage = gputypes.TextureUsageRenderAttachment |
	gputypes.TextureUsageTextureBinding |
	gputypes.TextureUsageCopyDst

// ImageImporter is implemented by HAL devices that can wrap a native image
// owned by someone else (here, the XR runtime) as a HAL texture.
//
// The handle must be a live image of backend b with the format and size in
// desc. Importers cannot check this; violating it is undefined behavior in
// the native layer.
type ImageImporter interface {
	ImportImage(b Backend, handle uint64, desc *hal.TextureDescriptor) (hal.Texture, error)
}

// ImportImage wraps the native swapchain image handle as a texture of
// device. The device's HAL device must implement ImageImporter.
//
// The same precondition as ImageImporter applies: handle must be a valid
// image of backend b with the given format and size.
func ImportImage(device *wgpu.Device, b Backend, handle uint64, format gputypes.TextureFormat, width, height uint32) (*wgpu.Texture, error) {
	if handle == 0 || width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: handle %#x, %dx%d", ErrInvalidImage, handle, width, height)
	}
	if device == nil {
		return nil, ErrImportUnsupported
	}
	importer, ok := device.HalDevice().(ImageImporter)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrImportUnsupported, b)
	}

	tex, err := importer.ImportImage(b, handle, &hal.TextureDescriptor{
		Label:         fmt.Sprintf("xr swapchain image %#x", handle),
		Size:          hal.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        format,
		Usage:         SwapchainImageUsage,
	})
	if err != nil {
		return nil, fmt.Errorf("graphics: import %s image %#x: %w", b, handle, err)
	}
	return wgpu.NewTextureFromHAL(tex, device, format), nil
}
