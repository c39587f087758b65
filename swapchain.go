package xr

import (
	"fmt"
	"sync"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"

	"github.com/gogpu/xr/graphics"
	"github.com/gogpu/xr/runtime"
)

// SwapchainCreateInfo describes a swapchain in engine terms.
type SwapchainCreateInfo struct {
	CreateFlags runtime.SwapchainCreateFlags
	UsageFlags  runtime.SwapchainUsageFlags
	Format      gputypes.TextureFormat
	SampleCount uint32
	Width       uint32
	Height      uint32
	// FaceCount is 1, or 6 for cube maps.
	FaceCount uint32
	ArraySize uint32
	MipCount  uint32
}

func toNativeSwapchainInfo[G graphics.API](info *SwapchainCreateInfo) (*runtime.SwapchainCreateInfo, error) {
	var api G
	fail := func(field, reason string) error {
		return &ConversionError{Backend: api.Backend(), Field: field, Reason: reason}
	}

	const colorDepth = runtime.SwapchainUsageColorAttachment | runtime.SwapchainUsageDepthStencilAttachment
	switch {
	case info.Width == 0 || info.Height == 0:
		return nil, fail("extent", fmt.Sprintf("%dx%d is empty", info.Width, info.Height))
	case info.SampleCount == 0:
		return nil, fail("sample count", "must be at least 1")
	case info.ArraySize == 0:
		return nil, fail("array size", "must be at least 1")
	case info.MipCount == 0:
		return nil, fail("mip count", "must be at least 1")
	case info.FaceCount != 1 && info.FaceCount != 6:
		return nil, fail("face count", fmt.Sprintf("%d is neither 1 nor 6", info.FaceCount))
	case info.UsageFlags&colorDepth == colorDepth:
		return nil, fail("usage", "color and depth-stencil attachment are exclusive")
	}

	format, ok := api.FromTextureFormat(info.Format)
	if !ok {
		return nil, fail("format", fmt.Sprintf("%v has no native equivalent", info.Format))
	}
	return &runtime.SwapchainCreateInfo{
		CreateFlags: info.CreateFlags,
		UsageFlags:  info.UsageFlags,
		Format:      format,
		SampleCount: info.SampleCount,
		Width:       info.Width,
		Height:      info.Height,
		FaceCount:   info.FaceCount,
		ArraySize:   info.ArraySize,
		MipCount:    info.MipCount,
	}, nil
}

// Swapchain is a ring of presentable images. It is safe to share between
// goroutines; each method holds the swapchain lock for its runtime call
// only. The acquire, wait and release cycle itself must be driven by one
// goroutine at a time.
type Swapchain struct {
	mu     sync.Mutex
	w      graphics.Wrap[swapchainKind]
	info   SwapchainCreateInfo
	images *SwapchainImages
}

// Backend returns the swapchain's backend.
func (s *Swapchain) Backend() graphics.Backend { return s.w.Backend() }

// Info returns the description the swapchain was created with.
func (s *Swapchain) Info() SwapchainCreateInfo { return s.info }

// Raw returns the native swapchain, or nil for a nil Swapchain.
func (s *Swapchain) Raw() runtime.Swapchain {
	if s == nil {
		return nil
	}
	return s.w.Value().native()
}

// AcquireImage reserves the next image of the ring and returns its index.
func (s *Swapchain) AcquireImage() (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Value().acquire()
}

// WaitImage blocks until the acquired image is ready for rendering or
// timeout elapses. On timeout the error matches runtime.TimeoutExpired.
func (s *Swapchain) WaitImage(timeout time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Value().wait(timeout)
}

// ReleaseImage hands the rendered image back to the runtime.
func (s *Swapchain) ReleaseImage() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Value().release()
}

// EnumerateImages imports every image of the ring as a texture of device
// with the given format and size. The result is computed once; later calls
// return the same *SwapchainImages regardless of their arguments.
//
// The runtime's image handles are trusted to be live images of the
// swapchain's backend with the given format and size. The HAL device of
// device must implement graphics.ImageImporter.
func (s *Swapchain) EnumerateImages(device *wgpu.Device, format gputypes.TextureFormat, width, height uint32) (*SwapchainImages, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.images != nil {
		return s.images, nil
	}
	images, err := s.w.Value().images(device, format, width, height)
	if err != nil {
		return nil, err
	}
	s.images = images
	return images, nil
}

// Destroy releases the swapchain. Textures returned by EnumerateImages
// must not be used afterwards.
func (s *Swapchain) Destroy() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.w.Value().native().Destroy(); err != nil {
		Logger().Warn("xr: swapchain destroy failed", "backend", s.Backend(), "err", err)
		return fmt.Errorf("xr: destroy swapchain: %w", err)
	}
	return nil
}

// SwapchainImages are the textures of a swapchain's images in ring order.
// The runtime owns the underlying images.
type SwapchainImages struct {
	Textures []*wgpu.Texture
	Format   gputypes.TextureFormat
	Width    uint32
	Height   uint32
}

// Len returns the number of images.
func (s *SwapchainImages) Len() int { return len(s.Textures) }

// At returns the texture for the image index returned by AcquireImage.
func (s *SwapchainImages) At(index uint32) *wgpu.Texture { return s.Textures[index] }

type swapchainKind interface {
	graphics.Specialized
	native() runtime.Swapchain
	acquire() (uint32, error)
	wait(timeout time.Duration) error
	release() error
	images(device *wgpu.Device, format gputypes.TextureFormat, width, height uint32) (*SwapchainImages, error)
}

type swapchain[G graphics.API] struct {
	raw runtime.Swapchain
}

func (swapchain[G]) Backend() graphics.Backend { return graphics.BackendOf[G]() }

func (s swapchain[G]) native() runtime.Swapchain { return s.raw }

func (s swapchain[G]) acquire() (uint32, error) {
	idx, err := s.raw.AcquireImage()
	if err != nil {
		return 0, fmt.Errorf("xr: acquire %s image: %w", graphics.BackendOf[G](), err)
	}
	return idx, nil
}

func (s swapchain[G]) wait(timeout time.Duration) error {
	if err := s.raw.WaitImage(timeout); err != nil {
		return fmt.Errorf("xr: wait %s image: %w", graphics.BackendOf[G](), err)
	}
	return nil
}

func (s swapchain[G]) release() error {
	if err := s.raw.ReleaseImage(); err != nil {
		return fmt.Errorf("xr: release %s image: %w", graphics.BackendOf[G](), err)
	}
	return nil
}

func (s swapchain[G]) images(device *wgpu.Device, format gputypes.TextureFormat, width, height uint32) (*SwapchainImages, error) {
	b := graphics.BackendOf[G]()
	handles, err := s.raw.EnumerateImages()
	if err != nil {
		return nil, fmt.Errorf("xr: enumerate %s images: %w", b, err)
	}
	textures := make([]*wgpu.Texture, 0, len(handles))
	for _, h := range handles {
		tex, err := graphics.ImportImage(device, b, h, format, width, height)
		if err != nil {
			for _, t := range textures {
				t.Release()
			}
			return nil, fmt.Errorf("xr: %w", err)
		}
		textures = append(textures, tex)
	}
	return &SwapchainImages{Textures: textures, Format: format, Width: width, Height: height}, nil
}
