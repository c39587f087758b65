// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package graphics

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type importedTexture struct {
	noop.Texture
	handle uint64
}

func (t *importedTexture) NativeHandle() uintptr { return uintptr(t.handle) }

type importingDevice struct {
	*noop.Device
	last *hal.TextureDescriptor
	err  error
}

func (d *importingDevice) ImportImage(_ Backend, handle uint64, desc *hal.TextureDescriptor) (hal.Texture, error) {
	if d.err != nil {
		return nil, d.err
	}
	d.last = desc
	return &importedTexture{handle: handle}, nil
}

func newWGPU(t *testing.T, halDevice hal.Device) *wgpu.Device {
	t.Helper()
	dev, err := wgpu.NewDeviceFromHAL(halDevice, &noop.Queue{}, 0, wgpu.DefaultLimits(), "test")
	require.NoError(t, err)
	t.Cleanup(dev.Release)
	return dev
}

func TestImportImage(t *testing.T) {
	importer := &importingDevice{Device: &noop.Device{}}
	dev := newWGPU(t, importer)

	tex, err := ImportImage(dev, BackendVulkan, 0xBEEF, gputypes.TextureFormatRGBA8UnormSrgb, 128, 64)
	require.NoError(t, err)
	assert.Equal(t, uintptr(0xBEEF), tex.HalTexture().NativeHandle())
	assert.Equal(t, gputypes.TextureFormatRGBA8UnormSrgb, tex.Format())

	require.NotNil(t, importer.last)
	assert.Equal(t, hal.Extent3D{Width: 128, Height: 64, DepthOrArrayLayers: 1}, importer.last.Size)
	assert.Equal(t, SwapchainImageUsage, importer.last.Usage)
	assert.Equal(t, gputypes.TextureDimension2D, importer.last.Dimension)
}

func TestImportImageErrors(t *testing.T) {
	plain := newWGPU(t, &noop.Device{})
	failing := newWGPU(t, &importingDevice{Device: &noop.Device{}, err: errors.New("bad handle")})
	format := gputypes.TextureFormatRGBA8UnormSrgb

	_, err := ImportImage(plain, BackendVulkan, 0, format, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidImage)
	_, err = ImportImage(plain, BackendVulkan, 1, format, 0, 1)
	assert.ErrorIs(t, err, ErrInvalidImage)
	_, err = ImportImage(nil, BackendVulkan, 1, format, 1, 1)
	assert.ErrorIs(t, err, ErrImportUnsupported)
	_, err = ImportImage(plain, BackendVulkan, 1, format, 1, 1)
	assert.ErrorIs(t, err, ErrImportUnsupported)
	_, err = ImportImage(failing, BackendVulkan, 1, format, 1, 1)
	assert.ErrorContains(t, err, "bad handle")
}
