// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package graphics

import (
	// Registers the platform's HAL backends for HALInitializer.
	_ "github.com/gogpu/wgpu/hal/allbackends"
)
