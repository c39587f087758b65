package xr

import (
	"fmt"
	"sync"

	"github.com/gogpu/xr/graphics"
	"github.com/gogpu/xr/runtime"
)

// noCopy may be embedded in structs that must not be copied after first
// use. See go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// FrameWaiter paces the frame loop. It has exactly one owner and must not
// be copied or shared.
type FrameWaiter struct {
	_   noCopy
	raw runtime.Session
}

// Wait blocks until the runtime is ready for the next frame. Call it from
// a goroutine whose blocking does not stall unrelated work.
func (w *FrameWaiter) Wait() (runtime.FrameState, error) {
	state, err := w.raw.WaitFrame()
	if err != nil {
		return runtime.FrameState{}, fmt.Errorf("xr: wait frame: %w", err)
	}
	return state, nil
}

// FrameStream brackets and submits frames for one session. It is safe to
// share between goroutines; Begin and End are serialized.
type FrameStream struct {
	mu sync.Mutex
	w  graphics.Wrap[frameStreamKind]
}

// Backend returns the stream's backend.
func (s *FrameStream) Backend() graphics.Backend { return s.w.Backend() }

// Begin starts a frame. Calling it inside an open frame fails with the
// runtime's error.
func (s *FrameStream) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Value().begin()
}

// End submits layers for the frame begun last and closes it.
//
// A layer that reads any swapchain of another backend is dropped with a
// warning; the remaining layers are submitted in their original order.
// Nil layers are skipped.
func (s *FrameStream) End(displayTime runtime.Time, blendMode runtime.EnvironmentBlendMode, layers ...CompositionLayer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Value().end(displayTime, blendMode, layers)
}

type frameStreamKind interface {
	graphics.Specialized
	begin() error
	end(displayTime runtime.Time, blendMode runtime.EnvironmentBlendMode, layers []CompositionLayer) error
}

type frameStream[G graphics.API] struct {
	raw runtime.Session
}

func (frameStream[G]) Backend() graphics.Backend { return graphics.BackendOf[G]() }

func (s frameStream[G]) begin() error {
	if err := s.raw.BeginFrame(); err != nil {
		return fmt.Errorf("xr: begin frame: %w", err)
	}
	return nil
}

func (s frameStream[G]) end(displayTime runtime.Time, blendMode runtime.EnvironmentBlendMode, layers []CompositionLayer) error {
	b := graphics.BackendOf[G]()
	headers := make([]runtime.CompositionLayer, 0, len(layers))
	for i, l := range layers {
		if l == nil {
			continue
		}
		if sc := foreignSwapchain(l, b); sc != nil {
			Logger().Warn("xr: dropping composition layer with foreign swapchain",
				"index", i, "layer_backend", sc.Backend(), "stream_backend", b)
			continue
		}
		headers = append(headers, l.Header())
	}

	err := s.raw.EndFrame(&runtime.FrameEndInfo{
		DisplayTime: displayTime,
		BlendMode:   blendMode,
		Layers:      headers,
	})
	if err != nil {
		return fmt.Errorf("xr: end frame: %w", err)
	}
	return nil
}

// foreignSwapchain returns the first swapchain of l that is not of backend
// b, or nil when all of them are.
func foreignSwapchain(l CompositionLayer, b graphics.Backend) *Swapchain {
	for _, sc := range l.Swapchains() {
		if !sc.w.Using(b) {
			return sc
		}
	}
	return nil
}
