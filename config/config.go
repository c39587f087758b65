// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config loads the YAML startup configuration used by the xr
// command-line tools.
//
// A minimal file:
//
//	runtime: sim
//	backend: vulkan
//	app:
//	  name: hello
//	  version: 1.0.0
//	formats: [RGBA8UnormSrgb, BGRA8UnormSrgb]
//	resolutions: [{width: 1832, height: 1920}]
//	blend_modes: [opaque]
//	frames: 90
//
// Empty fields keep their defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gogpu/gputypes"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/xr"
	"github.com/gogpu/xr/graphics"
	"github.com/gogpu/xr/runtime"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid configuration")

// App identifies the application.
type App struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// Resolution is a preferred swapchain size.
type Resolution struct {
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`
}

// Config is the startup configuration.
type Config struct {
	// Runtime is the registered runtime name. Empty selects the best one.
	Runtime string `yaml:"runtime"`

	// Backend is the graphics backend name, for example "vulkan".
	Backend string `yaml:"backend"`

	App App `yaml:"app"`

	// Extensions and Layers are enabled in addition to the backend's
	// required extensions.
	Extensions []string `yaml:"extensions"`
	Layers     []string `yaml:"layers"`

	// Formats, Resolutions and BlendModes are preference lists, most
	// preferred first. Formats use gputypes names such as "RGBA8UnormSrgb".
	Formats     []string     `yaml:"formats"`
	Resolutions []Resolution `yaml:"resolutions"`
	BlendModes  []string     `yaml:"blend_modes"`

	// Frames is the number of frames the demo loop submits.
	Frames int `yaml:"frames"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Backend:     graphics.BackendVulkan.String(),
		App:         App{Name: "xrinfo", Version: "0.1.0"},
		Formats:     []string{gputypes.TextureFormatRGBA8UnormSrgb.String(), gputypes.TextureFormatBGRA8UnormSrgb.String()},
		Resolutions: []Resolution{{Width: 1024, Height: 1024}},
		BlendModes:  []string{runtime.BlendModeOpaque.String()},
		Frames:      3,
	}
}

// Load reads and validates the YAML file at path on top of Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML data on top of Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field that names something.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.GraphicsBackend(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.AppInfo(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.TextureFormats(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.EnvironmentBlendModes(); err != nil {
		errs = append(errs, err)
	}
	for i, r := range c.Resolutions {
		if r.Width == 0 || r.Height == 0 {
			errs = append(errs, fmt.Errorf("resolutions[%d]: zero extent %dx%d", i, r.Width, r.Height))
		}
	}
	if c.Frames < 0 {
		errs = append(errs, fmt.Errorf("frames: negative count %d", c.Frames))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// GraphicsBackend returns the configured backend.
func (c Config) GraphicsBackend() (graphics.Backend, error) {
	return graphics.ParseBackend(c.Backend)
}

// AppInfo returns the configured application identity.
func (c Config) AppInfo() (xr.AppInfo, error) {
	v := xr.Version{}
	if c.App.Version != "" {
		var err error
		if v, err = xr.ParseVersion(c.App.Version); err != nil {
			return xr.AppInfo{}, err
		}
	}
	return xr.AppInfo{Name: c.App.Name, Version: v}, nil
}

// TextureFormats returns the preferred formats.
func (c Config) TextureFormats() ([]gputypes.TextureFormat, error) {
	formats := make([]gputypes.TextureFormat, 0, len(c.Formats))
	for _, name := range c.Formats {
		f, err := ParseTextureFormat(name)
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return formats, nil
}

// EnvironmentBlendModes returns the preferred blend modes.
func (c Config) EnvironmentBlendModes() ([]runtime.EnvironmentBlendMode, error) {
	modes := make([]runtime.EnvironmentBlendMode, 0, len(c.BlendModes))
	for _, name := range c.BlendModes {
		m, err := runtime.ParseBlendMode(name)
		if err != nil {
			return nil, err
		}
		modes = append(modes, m)
	}
	return modes, nil
}

// SessionCreateInfo returns the preference lists in the form the xr
// negotiation helpers take. GraphicsInfo is left zero; it comes from
// Instance.InitGraphics.
func (c Config) SessionCreateInfo() (xr.SessionCreateInfo, error) {
	formats, err := c.TextureFormats()
	if err != nil {
		return xr.SessionCreateInfo{}, err
	}
	modes, err := c.EnvironmentBlendModes()
	if err != nil {
		return xr.SessionCreateInfo{}, err
	}
	res := make([]xr.Resolution, len(c.Resolutions))
	for i, r := range c.Resolutions {
		res[i] = xr.Resolution{Width: r.Width, Height: r.Height}
	}
	return xr.SessionCreateInfo{BlendModes: modes, Formats: formats, Resolutions: res}, nil
}

// lastTextureFormat is the highest format value gputypes defines.
const lastTextureFormat = gputypes.TextureFormatASTC12x12UnormSrgb

// ParseTextureFormat parses a gputypes texture format name, ignoring case.
func ParseTextureFormat(name string) (gputypes.TextureFormat, error) {
	want := strings.TrimSpace(name)
	for f := gputypes.TextureFormatR8Unorm; f <= lastTextureFormat; f++ {
		if strings.EqualFold(f.String(), want) {
			return f, nil
		}
	}
	return gputypes.TextureFormatUndefined, fmt.Errorf("config: unknown texture format %q", name)
}
