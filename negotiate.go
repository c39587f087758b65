package xr

import (
	"slices"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/xr/runtime"
)

// Resolution is a swapchain size in pixels.
type Resolution struct {
	Width, Height uint32
}

// SessionCreateInfo carries the application's preferences for a session.
// Each list is in order of preference.
type SessionCreateInfo struct {
	BlendModes   []runtime.EnvironmentBlendMode
	Formats      []gputypes.TextureFormat
	Resolutions  []Resolution
	GraphicsInfo SessionGraphicsInfo
}

// ChooseFormat returns the first preferred format that is available, or
// the first available format when none is.
func ChooseFormat(available, preferred []gputypes.TextureFormat) (gputypes.TextureFormat, error) {
	return choose(available, preferred)
}

// ChooseResolution returns the first preferred resolution that is
// available, or the first available resolution when none is.
func ChooseResolution(available, preferred []Resolution) (Resolution, error) {
	return choose(available, preferred)
}

// ChooseBlendMode returns the first preferred blend mode that is
// available, or the first available mode when none is.
func ChooseBlendMode(available, preferred []runtime.EnvironmentBlendMode) (runtime.EnvironmentBlendMode, error) {
	return choose(available, preferred)
}

func choose[T comparable](available, preferred []T) (T, error) {
	if len(available) == 0 {
		var zero T
		return zero, ErrNoCandidate
	}
	for _, p := range preferred {
		if slices.Contains(available, p) {
			return p, nil
		}
	}
	return available[0], nil
}
