// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package runtime

import (
	"time"

	"github.com/gogpu/xr/graphics"
)

// Loader is the runtime loader: the entry point into a native XR runtime.
type Loader interface {
	// EnumerateExtensions lists the extensions the runtime supports.
	EnumerateExtensions() ([]string, error)

	// CreateInstance creates an instance with exactly the extensions and
	// API layers in desc.
	CreateInstance(desc *InstanceDescriptor) (Instance, error)
}

// Instance is a created runtime instance.
type Instance interface {
	// System returns the system for a form factor.
	System(formFactor FormFactor) (SystemID, error)

	// GraphicsRequirements returns the device constraints for using
	// backend b with system.
	GraphicsRequirements(system SystemID, b graphics.Backend) (graphics.Requirements, error)

	// CreateSession creates a session bound to the native handles in
	// binding. The runtime trusts the handles.
	CreateSession(system SystemID, binding graphics.Binding) (Session, error)

	// PollEvent returns the next pending event, or nil when the queue is
	// empty.
	PollEvent() (Event, error)

	// Destroy releases the instance.
	Destroy() error
}

// Session is a native session. Methods are not safe for concurrent use
// unless noted; the xr package serializes them.
type Session interface {
	EnumerateSwapchainFormats() ([]int64, error)
	EnumerateEnvironmentBlendModes(view ViewConfigurationType) ([]EnvironmentBlendMode, error)
	CreateSwapchain(info *SwapchainCreateInfo) (Swapchain, error)
	CreateReferenceSpace(t ReferenceSpaceType, pose Posef) (Space, error)

	// Begin starts the session for a view configuration; End stops it.
	Begin(view ViewConfigurationType) error
	End() error
	RequestExit() error

	// WaitFrame blocks until the runtime is ready for the next frame.
	// It may be called concurrently with BeginFrame and EndFrame.
	WaitFrame() (FrameState, error)
	BeginFrame() error
	EndFrame(info *FrameEndInfo) error

	Destroy() error
}

// Swapchain is a native ring of presentable images.
type Swapchain interface {
	// EnumerateImages returns the native image handles in ring order.
	EnumerateImages() ([]uint64, error)

	AcquireImage() (uint32, error)
	WaitImage(timeout time.Duration) error
	ReleaseImage() error

	Destroy() error
}
