package xr

import "sync/atomic"

// SessionStarted reports whether a session is running. It may be read and
// written from any goroutine.
type SessionStarted struct {
	v atomic.Bool
}

// Get reports whether the session is running.
func (s *SessionStarted) Get() bool { return s.v.Load() }

// Set records whether the session is running.
func (s *SessionStarted) Set(started bool) { s.v.Store(started) }
