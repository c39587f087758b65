// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package sim provides an in-process simulated XR runtime.
//
// The simulator implements runtime.Loader and enforces the call-order
// rules of a real runtime: frames must be waited, begun and ended in
// order, and swapchain images must be acquired, waited and released in
// order. Violations return the same result codes a native runtime would.
// Submitted frames are recorded so tests can inspect them.
//
// Importing the package registers the simulator under the name "sim":
//
//	import _ "github.com/gogpu/xr/runtime/sim"
//
// The simulator does not create GPU devices. InstallInitializers registers
// device initializers that open a no-op HAL device able to import the
// simulator's swapchain images.
package sim
