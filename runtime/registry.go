// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package runtime

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/gpucontext"
)

// ErrNoLoader is returned when no runtime loader is registered under a name.
var ErrNoLoader = errors.New("runtime: no loader registered")

// loaders holds registered runtime loaders. Native runtimes are preferred
// over the simulator.
var loaders = gpucontext.NewRegistry[Loader](
	gpucontext.WithPriority("openxr", "sim"),
)

// Register registers a loader factory under name, replacing any previous
// registration. It is typically called from init.
func Register(name string, factory func() Loader) {
	loaders.Register(name, factory)
}

// Unregister removes the loader registered under name.
func Unregister(name string) {
	loaders.Unregister(name)
}

// Available returns the registered loader names in sorted order.
func Available() []string {
	names := loaders.Available()
	slices.Sort(names)
	return names
}

// Get creates the loader registered under name.
func Get(name string) (Loader, error) {
	if !loaders.Has(name) {
		return nil, fmt.Errorf("%w: %q", ErrNoLoader, name)
	}
	return loaders.Get(name), nil
}

// Best creates the highest priority registered loader and returns its name.
func Best() (Loader, string, error) {
	name := loaders.BestName()
	if name == "" {
		return nil, "", ErrNoLoader
	}
	return loaders.Get(name), name, nil
}
