package xr

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/xr/graphics"
	"github.com/gogpu/xr/runtime"
)

// Session is an active session bound to one backend. It is safe to share
// between goroutines; the runtime serializes the native calls it makes.
type Session struct {
	instance *Instance
	raw      runtime.Session
	w        graphics.Wrap[sessionKind]
	started  *SessionStarted
}

// Backend returns the session's backend.
func (s *Session) Backend() graphics.Backend { return s.w.Backend() }

// Instance returns the instance the session was created from.
func (s *Session) Instance() *Instance { return s.instance }

// Raw returns the native session for calls that do not depend on the
// backend.
func (s *Session) Raw() runtime.Session { return s.raw }

// Started returns the instance's session-started flag. Begin sets it and
// End or Destroy clear it.
func (s *Session) Started() *SessionStarted { return s.started }

// EnumerateSwapchainFormats returns the engine formats the runtime can
// create swapchains with, in the runtime's preference order. Native formats
// with no engine equivalent are left out.
func (s *Session) EnumerateSwapchainFormats() ([]gputypes.TextureFormat, error) {
	return s.w.Value().swapchainFormats()
}

// EnumerateEnvironmentBlendModes returns the blend modes supported for
// view.
func (s *Session) EnumerateEnvironmentBlendModes(view runtime.ViewConfigurationType) ([]runtime.EnvironmentBlendMode, error) {
	modes, err := s.raw.EnumerateEnvironmentBlendModes(view)
	if err != nil {
		return nil, fmt.Errorf("xr: enumerate blend modes: %w", err)
	}
	return modes, nil
}

// CreateSwapchain creates a swapchain. It returns a *ConversionError when
// the backend cannot express info.
func (s *Session) CreateSwapchain(info SwapchainCreateInfo) (*Swapchain, error) {
	w, err := s.w.Value().createSwapchain(&info)
	if err != nil {
		return nil, err
	}
	return &Swapchain{w: w, info: info}, nil
}

// CreateReferenceSpace creates a reference space of type t at pose.
func (s *Session) CreateReferenceSpace(t runtime.ReferenceSpaceType, pose runtime.Posef) (runtime.Space, error) {
	space, err := s.raw.CreateReferenceSpace(t, pose)
	if err != nil {
		return 0, fmt.Errorf("xr: create reference space: %w", err)
	}
	return space, nil
}

// Begin starts the session for view and sets Started.
func (s *Session) Begin(view runtime.ViewConfigurationType) error {
	if err := s.raw.Begin(view); err != nil {
		return fmt.Errorf("xr: begin session: %w", err)
	}
	s.started.Set(true)
	Logger().Info("xr: session started", "backend", s.Backend())
	return nil
}

// End stops the session and clears Started.
func (s *Session) End() error {
	if err := s.raw.End(); err != nil {
		return fmt.Errorf("xr: end session: %w", err)
	}
	s.started.Set(false)
	Logger().Info("xr: session ended", "backend", s.Backend())
	return nil
}

// RequestExit asks the runtime to move the session toward exiting.
func (s *Session) RequestExit() error {
	if err := s.raw.RequestExit(); err != nil {
		return fmt.Errorf("xr: request exit: %w", err)
	}
	return nil
}

// Destroy releases the session. Failures are logged and returned; they are
// not retried.
func (s *Session) Destroy() error {
	s.started.Set(false)
	if err := s.raw.Destroy(); err != nil {
		Logger().Warn("xr: session destroy failed", "backend", s.Backend(), "err", err)
		return fmt.Errorf("xr: destroy session: %w", err)
	}
	return nil
}

type sessionKind interface {
	graphics.Specialized
	swapchainFormats() ([]gputypes.TextureFormat, error)
	createSwapchain(info *SwapchainCreateInfo) (graphics.Wrap[swapchainKind], error)
}

type session[G graphics.API] struct {
	raw runtime.Session
}

func (session[G]) Backend() graphics.Backend { return graphics.BackendOf[G]() }

func (s session[G]) swapchainFormats() ([]gputypes.TextureFormat, error) {
	var api G
	native, err := s.raw.EnumerateSwapchainFormats()
	if err != nil {
		return nil, fmt.Errorf("xr: enumerate %s swapchain formats: %w", api.Backend(), err)
	}
	formats := make([]gputypes.TextureFormat, 0, len(native))
	for _, n := range native {
		f, ok := api.ToTextureFormat(n)
		if !ok {
			Logger().Debug("xr: skipping swapchain format", "backend", api.Backend(), "native", n)
			continue
		}
		formats = append(formats, f)
	}
	return formats, nil
}

func (s session[G]) createSwapchain(info *SwapchainCreateInfo) (graphics.Wrap[swapchainKind], error) {
	native, err := toNativeSwapchainInfo[G](info)
	if err != nil {
		return graphics.Wrap[swapchainKind]{}, err
	}
	raw, err := s.raw.CreateSwapchain(native)
	if err != nil {
		return graphics.Wrap[swapchainKind]{}, fmt.Errorf("xr: create %s swapchain: %w", graphics.BackendOf[G](), err)
	}
	Logger().Debug("xr: swapchain created", "backend", graphics.BackendOf[G](),
		"format", info.Format, "width", info.Width, "height", info.Height)
	return graphics.WrapValue[swapchainKind](swapchain[G]{raw: raw}), nil
}
