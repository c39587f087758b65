// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sim

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/gogpu/xr/graphics"
	"github.com/gogpu/xr/runtime"
)

// System is the system ID the simulator reports for head-mounted displays.
const System runtime.SystemID = 1

// DefaultExtensions are the extensions the simulator reports by default.
var DefaultExtensions = []string{
	graphics.ExtVulkanEnable2,
	graphics.ExtD3D11Enable,
	graphics.ExtD3D12Enable,
	graphics.ExtOpenGLESEnable,
	graphics.ExtMetalEnable,
	"XR_KHR_composition_layer_depth",
	"XR_EXT_debug_utils",
}

// Native swapchain formats reported by default. Each list ends with a
// 16-bit color format that has no engine equivalent.
var defaultFormats = map[graphics.Backend][]int64{
	graphics.BackendVulkan:   {43, 50, 37, 44, 97, 126, 129, 4},
	graphics.BackendD3D11:    {29, 91, 28, 87, 10, 40, 45, 85},
	graphics.BackendD3D12:    {29, 91, 28, 87, 10, 40, 45, 85},
	graphics.BackendOpenGLES: {0x8C43, 0x8058, 0x881A, 0x8CAC, 0x88F0, 0x8D62},
	graphics.BackendMetal:    {71, 81, 70, 80, 115, 252, 260, 40},
}

func init() {
	runtime.Register("sim", func() runtime.Loader { return New() })
}

type config struct {
	extensions    []string
	layers        []string
	formats       map[graphics.Backend][]int64
	imageCount    int
	blendModes    []runtime.EnvironmentBlendMode
	displayPeriod time.Duration
	requirements  graphics.Requirements
	enumerateErr  error
}

// Option configures a Runtime.
type Option func(*config)

// WithExtensions replaces the reported extension list.
func WithExtensions(names ...string) Option {
	return func(c *config) { c.extensions = slices.Clone(names) }
}

// WithLayers sets the API layers the simulator accepts.
func WithLayers(names ...string) Option {
	return func(c *config) { c.layers = slices.Clone(names) }
}

// WithFormats replaces the native swapchain formats reported for sessions
// of backend b.
func WithFormats(b graphics.Backend, formats ...int64) Option {
	return func(c *config) { c.formats[b] = slices.Clone(formats) }
}

// WithImageCount sets the number of images per swapchain. The default is 3.
func WithImageCount(n int) Option {
	return func(c *config) { c.imageCount = n }
}

// WithBlendModes sets the supported environment blend modes.
func WithBlendModes(modes ...runtime.EnvironmentBlendMode) Option {
	return func(c *config) { c.blendModes = slices.Clone(modes) }
}

// WithDisplayPeriod makes WaitFrame sleep for d per frame. The default
// does not sleep and advances predicted display time by 11ms.
func WithDisplayPeriod(d time.Duration) Option {
	return func(c *config) { c.displayPeriod = d }
}

// WithRequirements sets the graphics requirements reported for every
// backend.
func WithRequirements(req graphics.Requirements) Option {
	return func(c *config) { c.requirements = req }
}

// WithEnumerateError makes EnumerateExtensions fail with err.
func WithEnumerateError(err error) Option {
	return func(c *config) { c.enumerateErr = err }
}

// Runtime is a simulated runtime loader.
type Runtime struct {
	cfg config

	mu        sync.Mutex
	instances []*Instance
	handles   uint64
}

// New returns a simulated runtime.
func New(opts ...Option) *Runtime {
	cfg := config{
		extensions: slices.Clone(DefaultExtensions),
		formats:    make(map[graphics.Backend][]int64, len(defaultFormats)),
		imageCount: 3,
		blendModes: []runtime.EnvironmentBlendMode{runtime.BlendModeOpaque},
	}
	for b, f := range defaultFormats {
		cfg.formats[b] = slices.Clone(f)
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Runtime{cfg: cfg}
}

// SetLogger sets the simulator's logger.
func (r *Runtime) SetLogger(l *slog.Logger) { SetLogger(l) }

// EnumerateExtensions returns the configured extension list.
func (r *Runtime) EnumerateExtensions() ([]string, error) {
	if r.cfg.enumerateErr != nil {
		return nil, r.cfg.enumerateErr
	}
	return slices.Clone(r.cfg.extensions), nil
}

// CreateInstance fails with ErrorExtensionNotPresent or
// ErrorAPILayerNotPresent when desc asks for something not configured.
func (r *Runtime) CreateInstance(desc *runtime.InstanceDescriptor) (runtime.Instance, error) {
	if desc == nil {
		return nil, runtime.ErrorValidationFailure
	}
	for _, e := range desc.Extensions {
		if !slices.Contains(r.cfg.extensions, e) {
			logger().Debug("sim: extension not present", "extension", e)
			return nil, runtime.ErrorExtensionNotPresent
		}
	}
	for _, l := range desc.Layers {
		if !slices.Contains(r.cfg.layers, l) {
			return nil, runtime.ErrorAPILayerNotPresent
		}
	}

	inst := &Instance{
		rt:       r,
		desc:     *desc,
		required: make(map[graphics.Backend]bool),
	}
	inst.desc.Extensions = slices.Clone(desc.Extensions)
	inst.desc.Layers = slices.Clone(desc.Layers)

	r.mu.Lock()
	r.instances = append(r.instances, inst)
	r.mu.Unlock()

	logger().Info("sim: instance created",
		"app", desc.ApplicationName, "extensions", len(desc.Extensions))
	return inst, nil
}

// Instances returns every instance created so far.
func (r *Runtime) Instances() []*Instance {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.instances)
}

func (r *Runtime) nextHandle() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handles++
	return 0x1000 + r.handles
}

// Instance is a simulated runtime instance.
type Instance struct {
	rt   *Runtime
	desc runtime.InstanceDescriptor

	mu        sync.Mutex
	required  map[graphics.Backend]bool
	events    []runtime.Event
	sessions  []*Session
	destroyed bool
}

// Descriptor returns the descriptor the instance was created with.
func (i *Instance) Descriptor() runtime.InstanceDescriptor {
	return i.desc
}

// Sessions returns every session created from the instance.
func (i *Instance) Sessions() []*Session {
	i.mu.Lock()
	defer i.mu.Unlock()
	return slices.Clone(i.sessions)
}

// Destroyed reports whether Destroy was called.
func (i *Instance) Destroyed() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.destroyed
}

func (i *Instance) enabled(b graphics.Backend) bool {
	return b.Valid() && graphics.NewExtensions(i.desc.Extensions...).ContainsAll(b.RequiredExtensions())
}

// System returns System for head-mounted displays.
func (i *Instance) System(formFactor runtime.FormFactor) (runtime.SystemID, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.destroyed {
		return 0, runtime.ErrorHandleInvalid
	}
	if formFactor != runtime.FormFactorHeadMountedDisplay {
		return 0, runtime.ErrorFormFactorUnavailable
	}
	return System, nil
}

// GraphicsRequirements returns the configured requirements. The backend's
// extension must be enabled on the instance.
func (i *Instance) GraphicsRequirements(system runtime.SystemID, b graphics.Backend) (graphics.Requirements, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.destroyed {
		return graphics.Requirements{}, runtime.ErrorHandleInvalid
	}
	if system != System {
		return graphics.Requirements{}, runtime.ErrorSystemInvalid
	}
	if !i.enabled(b) {
		return graphics.Requirements{}, runtime.ErrorFunctionUnsupported
	}
	i.required[b] = true
	return i.rt.cfg.requirements, nil
}

// CreateSession creates a session for binding. As with a native runtime,
// GraphicsRequirements must have been called for the binding's backend.
func (i *Instance) CreateSession(system runtime.SystemID, binding graphics.Binding) (runtime.Session, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	switch {
	case i.destroyed:
		return nil, runtime.ErrorHandleInvalid
	case system != System:
		return nil, runtime.ErrorSystemInvalid
	case binding == nil:
		return nil, runtime.ErrorValidationFailure
	case !i.enabled(binding.Backend()):
		return nil, runtime.ErrorGraphicsDeviceInvalid
	case !i.required[binding.Backend()]:
		return nil, runtime.ErrorGraphicsRequirementsCallMissing
	}

	s := &Session{
		inst:    i,
		backend: binding.Backend(),
		binding: binding,
	}
	i.sessions = append(i.sessions, s)
	i.queueLocked(runtime.SessionStateChanged{Session: s, State: runtime.SessionStateIdle})
	i.queueLocked(runtime.SessionStateChanged{Session: s, State: runtime.SessionStateReady})

	logger().Info("sim: session created", "backend", s.backend)
	return s, nil
}

func (i *Instance) queue(ev runtime.Event) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.queueLocked(ev)
}

func (i *Instance) queueLocked(ev runtime.Event) {
	i.events = append(i.events, ev)
}

// PollEvent pops the oldest queued event.
func (i *Instance) PollEvent() (runtime.Event, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.destroyed {
		return nil, runtime.ErrorHandleInvalid
	}
	if len(i.events) == 0 {
		return nil, nil
	}
	ev := i.events[0]
	i.events = i.events[1:]
	return ev, nil
}

// Destroy marks the instance destroyed. A second call fails with
// ErrorHandleInvalid.
func (i *Instance) Destroy() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.destroyed {
		return runtime.ErrorHandleInvalid
	}
	i.destroyed = true
	return nil
}
