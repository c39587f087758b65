// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sim

import (
	"slices"
	"sync"
	"time"

	"github.com/gogpu/xr/graphics"
	"github.com/gogpu/xr/runtime"
)

const defaultPeriod = 11 * time.Millisecond

// Frame records one EndFrame call.
type Frame struct {
	DisplayTime runtime.Time
	BlendMode   runtime.EnvironmentBlendMode
	Layers      []runtime.CompositionLayer
}

// Session is a simulated session.
type Session struct {
	inst    *Instance
	backend graphics.Backend
	binding graphics.Binding

	mu         sync.Mutex
	running    bool
	view       runtime.ViewConfigurationType
	exiting    bool
	waited     int
	inFrame    bool
	frames     []Frame
	swapchains []*Swapchain
	spaces     runtime.Space
	destroyed  bool

	// WaitFrame runs concurrently with BeginFrame and EndFrame.
	clockMu sync.Mutex
	clock   runtime.Time
}

// Backend returns the backend of the session's binding.
func (s *Session) Backend() graphics.Backend { return s.backend }

// Binding returns the native handles the session was created with.
func (s *Session) Binding() graphics.Binding { return s.binding }

// Running reports whether Begin succeeded and End has not been called.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Frames returns every submitted frame.
func (s *Session) Frames() []Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.frames)
}

// Swapchains returns every swapchain created from the session.
func (s *Session) Swapchains() []*Swapchain {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.swapchains)
}

// Destroyed reports whether Destroy was called.
func (s *Session) Destroyed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.destroyed
}

// EnumerateSwapchainFormats returns the configured formats of the
// session's backend in preference order.
func (s *Session) EnumerateSwapchainFormats() ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed {
		return nil, runtime.ErrorHandleInvalid
	}
	return slices.Clone(s.inst.rt.cfg.formats[s.backend]), nil
}

// EnumerateEnvironmentBlendModes returns the configured blend modes.
func (s *Session) EnumerateEnvironmentBlendModes(view runtime.ViewConfigurationType) ([]runtime.EnvironmentBlendMode, error) {
	if err := checkView(view); err != nil {
		return nil, err
	}
	return slices.Clone(s.inst.rt.cfg.blendModes), nil
}

func checkView(view runtime.ViewConfigurationType) error {
	switch view {
	case runtime.ViewConfigurationPrimaryMono, runtime.ViewConfigurationPrimaryStereo:
		return nil
	}
	return runtime.ErrorViewConfigurationTypeUnsupported
}

// CreateSwapchain creates a swapchain. The format must be one reported by
// EnumerateSwapchainFormats.
func (s *Session) CreateSwapchain(info *runtime.SwapchainCreateInfo) (runtime.Swapchain, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed {
		return nil, runtime.ErrorHandleInvalid
	}
	if info == nil || info.Width == 0 || info.Height == 0 {
		return nil, runtime.ErrorValidationFailure
	}
	if !slices.Contains(s.inst.rt.cfg.formats[s.backend], info.Format) {
		return nil, runtime.ErrorSwapchainFormatUnsupported
	}

	n := s.inst.rt.cfg.imageCount
	images := make([]uint64, n)
	for i := range images {
		images[i] = s.inst.rt.nextHandle()
	}
	sc := &Swapchain{session: s, info: *info, images: images}
	s.swapchains = append(s.swapchains, sc)

	logger().Debug("sim: swapchain created",
		"format", info.Format, "width", info.Width, "height", info.Height, "images", n)
	return sc, nil
}

// CreateReferenceSpace returns a new space handle.
func (s *Session) CreateReferenceSpace(t runtime.ReferenceSpaceType, _ runtime.Posef) (runtime.Space, error) {
	if t < runtime.ReferenceSpaceView || t > runtime.ReferenceSpaceStage {
		return 0, runtime.ErrorReferenceSpaceUnsupported
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spaces++
	return s.spaces, nil
}

// Begin starts the session and queues the synchronized, visible and
// focused transitions.
func (s *Session) Begin(view runtime.ViewConfigurationType) error {
	if err := checkView(view); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return runtime.ErrorSessionRunning
	}
	s.running = true
	s.view = view
	for _, st := range []runtime.SessionState{
		runtime.SessionStateSynchronized,
		runtime.SessionStateVisible,
		runtime.SessionStateFocused,
	} {
		s.inst.queue(runtime.SessionStateChanged{Session: s, State: st, Time: s.now()})
	}
	return nil
}

// End stops a running session.
func (s *Session) End() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return runtime.ErrorSessionNotRunning
	}
	s.running = false
	s.inFrame = false
	s.waited = 0
	next := runtime.SessionStateIdle
	if s.exiting {
		next = runtime.SessionStateExiting
	}
	s.inst.queue(runtime.SessionStateChanged{Session: s, State: next, Time: s.now()})
	return nil
}

// RequestExit asks the application to end the session.
func (s *Session) RequestExit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return runtime.ErrorSessionNotRunning
	}
	s.exiting = true
	s.inst.queue(runtime.SessionStateChanged{
		Session: s, State: runtime.SessionStateStopping, Time: s.now(),
	})
	return nil
}

func (s *Session) now() runtime.Time {
	s.clockMu.Lock()
	defer s.clockMu.Unlock()
	return s.clock
}

// WaitFrame advances the predicted display time by one period. With
// WithDisplayPeriod it also sleeps for the period.
func (s *Session) WaitFrame() (runtime.FrameState, error) {
	s.mu.Lock()
	running := s.running
	s.mu.Unlock()
	if !running {
		return runtime.FrameState{}, runtime.ErrorSessionNotRunning
	}

	period := s.inst.rt.cfg.displayPeriod
	if period > 0 {
		time.Sleep(period)
	} else {
		period = defaultPeriod
	}

	s.clockMu.Lock()
	s.clock += runtime.Time(period)
	state := runtime.FrameState{
		PredictedDisplayTime:   s.clock,
		PredictedDisplayPeriod: period,
		ShouldRender:           true,
	}
	s.clockMu.Unlock()

	s.mu.Lock()
	s.waited++
	s.mu.Unlock()
	return state, nil
}

// BeginFrame fails with ErrorCallOrderInvalid unless a WaitFrame is
// outstanding and no frame is open.
func (s *Session) BeginFrame() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case !s.running:
		return runtime.ErrorSessionNotRunning
	case s.inFrame, s.waited == 0:
		return runtime.ErrorCallOrderInvalid
	}
	s.waited--
	s.inFrame = true
	return nil
}

// EndFrame submits layers. Every sub-image must reference a swapchain of
// this session.
func (s *Session) EndFrame(info *runtime.FrameEndInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case !s.running:
		return runtime.ErrorSessionNotRunning
	case !s.inFrame:
		return runtime.ErrorCallOrderInvalid
	case info == nil:
		return runtime.ErrorValidationFailure
	case info.DisplayTime <= 0:
		return runtime.ErrorTimeInvalid
	case !slices.Contains(s.inst.rt.cfg.blendModes, info.BlendMode):
		return runtime.ErrorEnvironmentBlendModeUnsupported
	}
	for _, l := range info.Layers {
		if l == nil {
			return runtime.ErrorLayerInvalid
		}
		for _, sub := range l.SubImages() {
			sc, ok := sub.Swapchain.(*Swapchain)
			if !ok || sc.session != s {
				return runtime.ErrorLayerInvalid
			}
		}
	}

	s.inFrame = false
	s.frames = append(s.frames, Frame{
		DisplayTime: info.DisplayTime,
		BlendMode:   info.BlendMode,
		Layers:      slices.Clone(info.Layers),
	})
	return nil
}

// Destroy marks the session destroyed.
func (s *Session) Destroy() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed {
		return runtime.ErrorHandleInvalid
	}
	s.destroyed = true
	s.running = false
	return nil
}
