package xr

import (
	"log/slog"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/xr/graphics"
	"github.com/gogpu/xr/runtime"
	"github.com/gogpu/xr/runtime/sim"
)

func TestEnumerateSwapchainFormats(t *testing.T) {
	entry, _ := newTestEntry(t)
	for _, b := range graphics.Backends() {
		t.Run(b.String(), func(t *testing.T) {
			logs := captureLogs(t)
			ts := newTestSession(t, entry, b)

			native, err := ts.sim().EnumerateSwapchainFormats()
			require.NoError(t, err)
			got, err := ts.session.EnumerateSwapchainFormats()
			require.NoError(t, err)

			// Every default list ends with one format the engine lacks.
			require.Len(t, got, len(native)-1)
			assert.Equal(t, gputypes.TextureFormatRGBA8UnormSrgb, got[0])
			assert.Equal(t, 1, logs.count(slog.LevelDebug, "skipping swapchain format"))
		})
	}
}

func TestEnumerateSwapchainFormatsKeepsOrder(t *testing.T) {
	entry, _ := newTestEntry(t, sim.WithFormats(graphics.BackendVulkan, 129, 4, 44, 43))
	ts := newTestSession(t, entry, graphics.BackendVulkan)

	got, err := ts.session.EnumerateSwapchainFormats()
	require.NoError(t, err)
	assert.Equal(t, []gputypes.TextureFormat{
		gputypes.TextureFormatDepth24PlusStencil8,
		gputypes.TextureFormatBGRA8Unorm,
		gputypes.TextureFormatRGBA8UnormSrgb,
	}, got)
}

func TestCreateSwapchainConversion(t *testing.T) {
	entry, _ := newTestEntry(t)
	ts := newTestSession(t, entry, graphics.BackendD3D12)

	tests := []struct {
		name   string
		modify func(*SwapchainCreateInfo)
		field  string
	}{
		{"zero width", func(i *SwapchainCreateInfo) { i.Width = 0 }, "extent"},
		{"zero height", func(i *SwapchainCreateInfo) { i.Height = 0 }, "extent"},
		{"zero samples", func(i *SwapchainCreateInfo) { i.SampleCount = 0 }, "sample count"},
		{"zero array", func(i *SwapchainCreateInfo) { i.ArraySize = 0 }, "array size"},
		{"zero mips", func(i *SwapchainCreateInfo) { i.MipCount = 0 }, "mip count"},
		{"three faces", func(i *SwapchainCreateInfo) { i.FaceCount = 3 }, "face count"},
		{"color and depth", func(i *SwapchainCreateInfo) {
			i.UsageFlags |= runtime.SwapchainUsageDepthStencilAttachment
		}, "usage"},
		{"unmapped format", func(i *SwapchainCreateInfo) { i.Format = gputypes.TextureFormatR8Unorm }, "format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := colorSwapchain
			tt.modify(&info)
			_, err := ts.session.CreateSwapchain(info)
			var cerr *ConversionError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.field, cerr.Field)
			assert.Equal(t, graphics.BackendD3D12, cerr.Backend)
			assert.ErrorIs(t, err, ErrConversion)
		})
	}
	assert.Empty(t, ts.sim().Swapchains(), "runtime created swapchains for rejected descriptions")
}

func TestCreateSwapchain(t *testing.T) {
	entry, _ := newTestEntry(t)
	for _, b := range graphics.Backends() {
		t.Run(b.String(), func(t *testing.T) {
			ts := newTestSession(t, entry, b)
			sc := newTestSwapchain(t, ts)
			assert.Equal(t, b, sc.Backend())
			assert.Equal(t, colorSwapchain, sc.Info())

			native := sc.Raw().(*sim.Swapchain).Info()
			want, _ := graphics.APIFor(b).FromTextureFormat(colorSwapchain.Format)
			assert.Equal(t, want, native.Format)
			assert.Equal(t, uint32(64), native.Width)
			assert.Equal(t, uint32(32), native.Height)
		})
	}
}

func TestCreateSwapchainRuntimeRejectsFormat(t *testing.T) {
	// RGBA8UnormSrgb maps to a native format the runtime does not offer.
	entry, _ := newTestEntry(t, sim.WithFormats(graphics.BackendVulkan, 50))
	ts := newTestSession(t, entry, graphics.BackendVulkan)

	_, err := ts.session.CreateSwapchain(colorSwapchain)
	assert.ErrorIs(t, err, runtime.ErrorSwapchainFormatUnsupported)
}

func TestSessionBeginEnd(t *testing.T) {
	entry, _ := newTestEntry(t)
	ts := newTestSession(t, entry, graphics.BackendVulkan)
	started := ts.session.Started()

	require.False(t, started.Get(), "new session reports started")
	require.NoError(t, ts.session.Begin(runtime.ViewConfigurationPrimaryStereo))
	assert.True(t, started.Get(), "Begin() did not set Started")

	err := ts.session.Begin(runtime.ViewConfigurationPrimaryStereo)
	assert.ErrorIs(t, err, runtime.ErrorSessionRunning)
	assert.True(t, started.Get(), "failed Begin() cleared Started")

	require.NoError(t, ts.session.RequestExit())
	require.NoError(t, ts.session.End())
	assert.False(t, started.Get(), "End() did not clear Started")
	assert.ErrorIs(t, ts.session.End(), runtime.ErrorSessionNotRunning)
}

func TestSessionBlendModesAndSpaces(t *testing.T) {
	entry, _ := newTestEntry(t, sim.WithBlendModes(runtime.BlendModeAlphaBlend, runtime.BlendModeOpaque))
	ts := newTestSession(t, entry, graphics.BackendOpenGLES)

	modes, err := ts.session.EnumerateEnvironmentBlendModes(runtime.ViewConfigurationPrimaryStereo)
	require.NoError(t, err)
	assert.Equal(t, []runtime.EnvironmentBlendMode{runtime.BlendModeAlphaBlend, runtime.BlendModeOpaque}, modes)

	_, err = ts.session.EnumerateEnvironmentBlendModes(7)
	assert.ErrorIs(t, err, runtime.ErrorViewConfigurationTypeUnsupported)

	_, err = ts.session.CreateReferenceSpace(runtime.ReferenceSpaceStage, runtime.IdentityPose)
	assert.NoError(t, err)
}

func TestSessionDestroy(t *testing.T) {
	logs := captureLogs(t)
	entry, _ := newTestEntry(t)
	ts := newTestSession(t, entry, graphics.BackendMetal)

	require.NoError(t, ts.session.Destroy())
	assert.True(t, ts.sim().Destroyed())
	assert.ErrorIs(t, ts.session.Destroy(), runtime.ErrorHandleInvalid)
	assert.Equal(t, 1, logs.count(slog.LevelWarn, "destroy failed"))
}

func TestSessionStartedSharedByInstance(t *testing.T) {
	entry, _ := newTestEntry(t)
	ts := newTestSession(t, entry, graphics.BackendMetal)
	other, _, _, err := ts.instance.CreateSession(sim.System, NewSessionGraphicsInfo(bindingFor(graphics.BackendMetal)))
	require.NoError(t, err)
	require.Same(t, ts.instance.SessionStarted(), other.Started())
	require.Same(t, ts.session.Started(), other.Started())

	require.NoError(t, ts.session.Begin(runtime.ViewConfigurationPrimaryStereo))
	assert.True(t, other.Started().Get(), "Begin() on one session not visible through the other")
	require.NoError(t, other.Destroy())
	assert.False(t, ts.instance.SessionStarted().Get(), "Destroy() did not clear the instance flag")
}
