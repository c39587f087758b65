// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package graphics describes the native graphics backends an XR session can
// be bound to.
//
// A [Backend] names one of the mutually exclusive graphics APIs (Vulkan,
// D3D11, D3D12, OpenGL ES, Metal) together with the runtime extensions it
// needs. The zero-size marker types [Vulkan], [D3D11], [D3D12], [OpenGLES]
// and [Metal] implement the sealed [API] interface and are used as type
// parameters by code that is generic over the backend.
//
// # Erasure
//
// Values that are specialized for one backend are stored in a [Wrap]. The
// wrap's tag is derived from the value itself at construction time, so the
// tag and the payload always agree:
//
//	w := graphics.WrapValue(v) // v.Backend() decides the tag
//	if w.Using(graphics.BackendVulkan) {
//		...
//	}
//
// # Devices
//
// Per-backend device initialization is pluggable. Register an [Initializer]
// for a backend with [RegisterInitializer]; the HAL-based initializer from
// github.com/gogpu/wgpu is registered for every backend the HAL supports.
package graphics
