// Package xr binds an XR runtime's session, frame and swapchain lifecycle
// to one of several graphics backends chosen at runtime.
//
// # Overview
//
// A runtime exposes the same session API for Vulkan, D3D11, D3D12,
// OpenGL ES and Metal, but every session is tied to the backend of the
// device it was created with. xr keeps that backend in the type of the
// objects it creates and hides it behind one handle per object kind, so
// application code holds a *Session or *Swapchain without knowing which
// backend sits underneath.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/xr"
//	    _ "github.com/gogpu/xr/runtime/sim"
//	)
//
//	entry, _ := xr.LoadEntry("")
//	inst, _ := entry.CreateInstance(app, graphics.Extensions{}, nil, graphics.BackendVulkan)
//	system, _ := inst.System(runtime.FormFactorHeadMountedDisplay)
//	device, info, _ := inst.InitGraphics(system)
//	session, waiter, stream, _ := inst.CreateSession(system, info)
//
//	for {
//	    state, _ := waiter.Wait()
//	    stream.Begin()
//	    idx, _ := swapchain.AcquireImage()
//	    swapchain.WaitImage(time.Second)
//	    // render into images.At(idx)
//	    swapchain.ReleaseImage()
//	    stream.End(state.PredictedDisplayTime, runtime.BlendModeOpaque, layer)
//	}
//
// # Backends
//
// An Instance is created for one backend and every object derived from it
// carries the same backend. Handing an object of another backend to
// Instance.CreateSession is reported as a *GraphicsBackendMismatchError
// before any runtime call. FrameStream.End drops composition layers whose
// swapchain belongs to another backend and logs a warning instead of
// failing the frame.
//
// # Concurrency
//
// Session, FrameStream and Swapchain may be shared between goroutines.
// FrameStream and Swapchain serialize their runtime calls with a mutex held
// only for the duration of each call. FrameWaiter has a single owner.
//
// # Native handles
//
// The runtime trusts the native handles passed to CreateSession and the
// image handles imported by Swapchain.EnumerateImages. xr checks what it
// can (the backend tag) and documents the rest as caller preconditions.
package xr
