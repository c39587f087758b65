// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package runtime

import (
	"fmt"
	"strings"
	"time"
)

// SystemID identifies an XR system (a headset or handheld device).
type SystemID uint64

// Time is a runtime timestamp in nanoseconds.
type Time int64

// Space is an opaque reference space handle.
type Space uint64

// FormFactor selects the kind of XR system.
type FormFactor int32

const (
	FormFactorHeadMountedDisplay FormFactor = 1
	FormFactorHandheldDisplay    FormFactor = 2
)

// ViewConfigurationType selects how many views a session renders.
type ViewConfigurationType int32

const (
	ViewConfigurationPrimaryMono   ViewConfigurationType = 1
	ViewConfigurationPrimaryStereo ViewConfigurationType = 2
)

// ReferenceSpaceType selects the origin of a reference space.
type ReferenceSpaceType int32

const (
	ReferenceSpaceView  ReferenceSpaceType = 1
	ReferenceSpaceLocal ReferenceSpaceType = 2
	ReferenceSpaceStage ReferenceSpaceType = 3
)

// EnvironmentBlendMode describes how rendered frames combine with the
// physical environment.
type EnvironmentBlendMode int32

const (
	BlendModeOpaque     EnvironmentBlendMode = 1
	BlendModeAdditive   EnvironmentBlendMode = 2
	BlendModeAlphaBlend EnvironmentBlendMode = 3
)

// String returns the blend mode name.
func (m EnvironmentBlendMode) String() string {
	switch m {
	case BlendModeOpaque:
		return "opaque"
	case BlendModeAdditive:
		return "additive"
	case BlendModeAlphaBlend:
		return "alpha_blend"
	default:
		return fmt.Sprintf("EnvironmentBlendMode(%d)", int32(m))
	}
}

// ParseBlendMode parses a blend mode name as returned by String.
func ParseBlendMode(s string) (EnvironmentBlendMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "opaque":
		return BlendModeOpaque, nil
	case "additive":
		return BlendModeAdditive, nil
	case "alpha_blend", "alphablend", "alpha-blend":
		return BlendModeAlphaBlend, nil
	}
	return 0, fmt.Errorf("runtime: unknown blend mode %q", s)
}

// SessionState is the runtime-driven lifecycle state of a session.
type SessionState int32

const (
	SessionStateUnknown SessionState = iota
	SessionStateIdle
	SessionStateReady
	SessionStateSynchronized
	SessionStateVisible
	SessionStateFocused
	SessionStateStopping
	SessionStateLossPending
	SessionStateExiting
)

var sessionStateNames = [...]string{
	"unknown", "idle", "ready", "synchronized", "visible",
	"focused", "stopping", "loss_pending", "exiting",
}

func (s SessionState) String() string {
	if s >= 0 && int(s) < len(sessionStateNames) {
		return sessionStateNames[s]
	}
	return fmt.Sprintf("SessionState(%d)", int32(s))
}

// Event is a runtime event returned by Instance.PollEvent.
type Event interface {
	event()
}

// SessionStateChanged reports a session lifecycle transition.
type SessionStateChanged struct {
	Session Session
	State   SessionState
	Time    Time
}

// InstanceLossPending reports that the instance will be lost at LossTime.
type InstanceLossPending struct {
	LossTime Time
}

func (SessionStateChanged) event() {}
func (InstanceLossPending) event() {}

// FrameState is returned by Session.WaitFrame.
type FrameState struct {
	PredictedDisplayTime   Time
	PredictedDisplayPeriod time.Duration
	ShouldRender           bool
}

// InstanceDescriptor describes the instance a Loader should create.
type InstanceDescriptor struct {
	ApplicationName    string
	ApplicationVersion uint32
	EngineName         string
	EngineVersion      uint32
	Extensions         []string
	Layers             []string
}

// SwapchainCreateFlags are native swapchain creation flags.
type SwapchainCreateFlags uint64

const (
	SwapchainCreateProtectedContent SwapchainCreateFlags = 1 << iota
	SwapchainCreateStaticImage
)

// SwapchainUsageFlags are native swapchain usage flags.
type SwapchainUsageFlags uint64

const (
	SwapchainUsageColorAttachment SwapchainUsageFlags = 1 << iota
	SwapchainUsageDepthStencilAttachment
	SwapchainUsageUnorderedAccess
	SwapchainUsageTransferSrc
	SwapchainUsageTransferDst
	SwapchainUsageSampled
	SwapchainUsageMutableFormat
)

// SwapchainCreateInfo is the native swapchain description. Format is a
// native format of the session's backend.
type SwapchainCreateInfo struct {
	CreateFlags SwapchainCreateFlags
	UsageFlags  SwapchainUsageFlags
	Format      int64
	SampleCount uint32
	Width       uint32
	Height      uint32
	FaceCount   uint32
	ArraySize   uint32
	MipCount    uint32
}

// Vector3f is a position in meters.
type Vector3f struct{ X, Y, Z float32 }

// Quaternionf is a rotation.
type Quaternionf struct{ X, Y, Z, W float32 }

// Posef is a rigid transform.
type Posef struct {
	Orientation Quaternionf
	Position    Vector3f
}

// IdentityPose is the pose with no rotation or translation.
var IdentityPose = Posef{Orientation: Quaternionf{W: 1}}

// Fovf is a field of view given by four angles in radians.
type Fovf struct {
	AngleLeft, AngleRight, AngleUp, AngleDown float32
}

// Rect2Di is an image rectangle in pixels.
type Rect2Di struct {
	X, Y          int32
	Width, Height int32
}

// Extent2Df is a size in meters.
type Extent2Df struct{ Width, Height float32 }

// SwapchainSubImage references a region of a swapchain's current image.
type SwapchainSubImage struct {
	Swapchain  Swapchain
	Rect       Rect2Di
	ArrayIndex uint32
}

// LayerFlags are composition layer flags.
type LayerFlags uint64

const (
	LayerCorrectChromaticAberration LayerFlags = 1 << iota
	LayerBlendTextureSourceAlpha
	LayerUnpremultipliedAlpha
)

// EyeVisibility selects which eyes a quad layer is shown to.
type EyeVisibility int32

const (
	EyeVisibilityBoth  EyeVisibility = 0
	EyeVisibilityLeft  EyeVisibility = 1
	EyeVisibilityRight EyeVisibility = 2
)

// CompositionLayer is the native submission header of a layer.
type CompositionLayer interface {
	// SubImages returns every swapchain region the layer reads.
	SubImages() []SwapchainSubImage
}

// ProjectionView is one view of a projection layer.
type ProjectionView struct {
	Pose     Posef
	Fov      Fovf
	SubImage SwapchainSubImage
}

// ProjectionLayer is a layer rendered with one projection per view.
type ProjectionLayer struct {
	Flags LayerFlags
	Space Space
	Views []ProjectionView
}

// SubImages returns the sub-image of every view.
func (l *ProjectionLayer) SubImages() []SwapchainSubImage {
	out := make([]SwapchainSubImage, len(l.Views))
	for i, v := range l.Views {
		out[i] = v.SubImage
	}
	return out
}

// QuadLayer is a flat rectangle placed in a space.
type QuadLayer struct {
	Flags         LayerFlags
	Space         Space
	EyeVisibility EyeVisibility
	SubImage      SwapchainSubImage
	Pose          Posef
	Size          Extent2Df
}

// SubImages returns the quad's sub-image.
func (l *QuadLayer) SubImages() []SwapchainSubImage {
	return []SwapchainSubImage{l.SubImage}
}

// FrameEndInfo is passed to Session.EndFrame.
type FrameEndInfo struct {
	DisplayTime Time
	BlendMode   EnvironmentBlendMode
	Layers      []CompositionLayer
}
