// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sim

import (
	"slices"
	"sync"
	"time"

	"github.com/gogpu/xr/runtime"
)

// Swapchain is a simulated image ring. Images are acquired in ring order
// and released in acquisition order.
type Swapchain struct {
	session *Session
	info    runtime.SwapchainCreateInfo
	images  []uint64

	mu         sync.Mutex
	next       uint32
	acquired   []uint32
	waited     int
	stalled    bool
	enumerated int
	destroyed  bool
}

// Info returns the description the swapchain was created with.
func (s *Swapchain) Info() runtime.SwapchainCreateInfo { return s.info }

// Stall makes WaitImage time out until Resume is called.
func (s *Swapchain) Stall() {
	s.mu.Lock()
	s.stalled = true
	s.mu.Unlock()
}

// Resume undoes Stall.
func (s *Swapchain) Resume() {
	s.mu.Lock()
	s.stalled = false
	s.mu.Unlock()
}

// EnumerateCalls returns how many times EnumerateImages reached the
// simulator.
func (s *Swapchain) EnumerateCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enumerated
}

// Destroyed reports whether Destroy was called.
func (s *Swapchain) Destroyed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.destroyed
}

// EnumerateImages returns the image handles in ring order.
func (s *Swapchain) EnumerateImages() ([]uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed {
		return nil, runtime.ErrorHandleInvalid
	}
	s.enumerated++
	return slices.Clone(s.images), nil
}

// AcquireImage returns the next index in the ring. It fails with
// ErrorCallOrderInvalid when every image is already acquired.
func (s *Swapchain) AcquireImage() (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed {
		return 0, runtime.ErrorHandleInvalid
	}
	if len(s.acquired) == len(s.images) {
		return 0, runtime.ErrorCallOrderInvalid
	}
	idx := s.next
	s.next = (s.next + 1) % uint32(len(s.images))
	s.acquired = append(s.acquired, idx)
	return idx, nil
}

// WaitImage waits on the oldest acquired image that has not been waited.
// A stalled swapchain sleeps for timeout and reports TimeoutExpired.
func (s *Swapchain) WaitImage(timeout time.Duration) error {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return runtime.ErrorHandleInvalid
	}
	if s.waited >= len(s.acquired) {
		s.mu.Unlock()
		return runtime.ErrorCallOrderInvalid
	}
	if s.stalled {
		s.mu.Unlock()
		time.Sleep(timeout)
		return runtime.TimeoutExpired
	}
	s.waited++
	s.mu.Unlock()
	return nil
}

// ReleaseImage releases the oldest waited image.
func (s *Swapchain) ReleaseImage() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed {
		return runtime.ErrorHandleInvalid
	}
	if s.waited == 0 {
		return runtime.ErrorCallOrderInvalid
	}
	s.acquired = s.acquired[1:]
	s.waited--
	return nil
}

// Destroy marks the swapchain destroyed.
func (s *Swapchain) Destroy() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed {
		return runtime.ErrorHandleInvalid
	}
	s.destroyed = true
	return nil
}
