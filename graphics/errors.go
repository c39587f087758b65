// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package graphics

import "errors"

// Package errors.
var (
	// ErrUnknownBackend is returned by ParseBackend for unrecognized names.
	ErrUnknownBackend = errors.New("graphics: unknown backend")

	// ErrNoInitializer is returned when no device initializer is registered
	// for a backend.
	ErrNoInitializer = errors.New("graphics: no device initializer registered")

	// ErrNoAdapter is returned when no GPU adapter satisfies the runtime's
	// graphics requirements.
	ErrNoAdapter = errors.New("graphics: no compatible adapter found")

	// ErrNoNativeHandles is returned when a HAL device cannot report the
	// native handles needed to bind an XR session.
	ErrNoNativeHandles = errors.New("graphics: device does not expose native handles")

	// ErrImportUnsupported is returned when a HAL device cannot wrap native
	// swapchain images.
	ErrImportUnsupported = errors.New("graphics: device cannot import native images")

	// ErrDeviceDestroyed is returned when using a destroyed Device.
	ErrDeviceDestroyed = errors.New("graphics: device destroyed")

	// ErrInvalidImage is returned for zero image handles or extents.
	ErrInvalidImage = errors.New("graphics: invalid native image")
)
