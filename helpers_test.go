package xr

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/xr/graphics"
	"github.com/gogpu/xr/runtime"
	"github.com/gogpu/xr/runtime/sim"
)

var installSim sync.Once

var testApp = AppInfo{Name: "xr test", Version: Version{Major: 1, Minor: 2, Patch: 3}}

// newTestEntry returns an Entry over a fresh simulated runtime with the
// simulator's device initializers installed.
func newTestEntry(t *testing.T, opts ...sim.Option) (*Entry, *sim.Runtime) {
	t.Helper()
	installSim.Do(sim.InstallInitializers)
	rt := sim.New(opts...)
	return NewEntry(rt), rt
}

func newTestInstance(t *testing.T, entry *Entry, b graphics.Backend) *Instance {
	t.Helper()
	inst, err := entry.CreateInstance(testApp, graphics.Extensions{}, nil, b)
	require.NoError(t, err, "CreateInstance(%s)", b)
	return inst
}

type testSession struct {
	instance *Instance
	device   *graphics.Device
	session  *Session
	waiter   *FrameWaiter
	stream   *FrameStream
}

func (s *testSession) sim() *sim.Session { return s.session.Raw().(*sim.Session) }

func newTestSession(t *testing.T, entry *Entry, b graphics.Backend) *testSession {
	t.Helper()
	inst := newTestInstance(t, entry, b)
	system, err := inst.System(runtime.FormFactorHeadMountedDisplay)
	require.NoError(t, err)
	dev, info, err := inst.InitGraphics(system)
	require.NoError(t, err)
	t.Cleanup(dev.Destroy)
	s, w, fs, err := inst.CreateSession(system, info)
	require.NoError(t, err)
	return &testSession{instance: inst, device: dev, session: s, waiter: w, stream: fs}
}

func bindingFor(b graphics.Backend) graphics.Binding {
	switch b {
	case graphics.BackendVulkan:
		return graphics.VulkanBinding{Device: 1}
	case graphics.BackendD3D11:
		return graphics.D3D11Binding{Device: 1}
	case graphics.BackendD3D12:
		return graphics.D3D12Binding{Device: 1, Queue: 2}
	case graphics.BackendOpenGLES:
		return graphics.OpenGLESBinding{Context: 1}
	case graphics.BackendMetal:
		return graphics.MetalBinding{CommandQueue: 1}
	}
	return nil
}

// newTestSwapchain creates a colorSwapchain on ts.
func newTestSwapchain(t *testing.T, ts *testSession) *Swapchain {
	t.Helper()
	sc, err := ts.session.CreateSwapchain(colorSwapchain)
	require.NoError(t, err)
	return sc
}

var colorSwapchain = SwapchainCreateInfo{
	UsageFlags:  runtime.SwapchainUsageColorAttachment | runtime.SwapchainUsageSampled,
	Format:      gputypes.TextureFormatRGBA8UnormSrgb,
	SampleCount: 1,
	Width:       64,
	Height:      32,
	FaceCount:   1,
	ArraySize:   1,
	MipCount:    1,
}

// recordHandler keeps every record logged through it.
type recordHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	h.records = append(h.records, r)
	h.mu.Unlock()
	return nil
}

func (h *recordHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordHandler) WithGroup(string) slog.Handler      { return h }

// count returns the number of xr records at level whose message contains
// substr.
func (h *recordHandler) count(level slog.Level, substr string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, r := range h.records {
		if r.Level == level && strings.HasPrefix(r.Message, "xr:") && strings.Contains(r.Message, substr) {
			n++
		}
	}
	return n
}

func captureLogs(t *testing.T) *recordHandler {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	h := &recordHandler{}
	SetLogger(slog.New(h))
	return h
}
