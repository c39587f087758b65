// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package runtime defines the native XR runtime layer the xr package wraps.
//
// The interfaces here mirror the runtime's C surface: handles are untyped
// with respect to the graphics backend, formats are native integers and
// swapchain images are native handles. Type safety over the backend is
// added one level up, in package xr.
//
// Runtime implementations register a Loader factory by name:
//
//	func init() {
//		runtime.Register("sim", func() runtime.Loader { return sim.New() })
//	}
//
// and callers pick one with Get or Best.
package runtime
