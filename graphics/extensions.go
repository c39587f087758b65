// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package graphics

import (
	"slices"
	"strings"
)

// Extensions is an immutable set of XR runtime extension names.
// The zero value is the empty set. Operations return new sets.
type Extensions struct {
	names map[string]struct{}
}

// NewExtensions returns a set holding the given names. Empty names are
// ignored.
func NewExtensions(names ...string) Extensions {
	e := Extensions{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		if n != "" {
			e.names[n] = struct{}{}
		}
	}
	return e
}

// Len returns the number of extensions in the set.
func (e Extensions) Len() int { return len(e.names) }

// Contains reports whether name is in the set.
func (e Extensions) Contains(name string) bool {
	_, ok := e.names[name]
	return ok
}

// ContainsAll reports whether every extension of other is in e.
func (e Extensions) ContainsAll(other Extensions) bool {
	for n := range other.names {
		if !e.Contains(n) {
			return false
		}
	}
	return true
}

// Union returns the extensions present in e or other.
func (e Extensions) Union(other Extensions) Extensions {
	out := Extensions{names: make(map[string]struct{}, len(e.names)+len(other.names))}
	for n := range e.names {
		out.names[n] = struct{}{}
	}
	for n := range other.names {
		out.names[n] = struct{}{}
	}
	return out
}

// Difference returns the extensions present in e but not in other.
func (e Extensions) Difference(other Extensions) Extensions {
	out := Extensions{names: make(map[string]struct{}, len(e.names))}
	for n := range e.names {
		if !other.Contains(n) {
			out.names[n] = struct{}{}
		}
	}
	return out
}

// Intersect returns the extensions present in both e and other.
func (e Extensions) Intersect(other Extensions) Extensions {
	out := Extensions{names: make(map[string]struct{})}
	for n := range e.names {
		if other.Contains(n) {
			out.names[n] = struct{}{}
		}
	}
	return out
}

// Names returns the extension names in sorted order.
func (e Extensions) Names() []string {
	out := make([]string, 0, len(e.names))
	for n := range e.names {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// String returns the sorted names joined by spaces.
func (e Extensions) String() string {
	return "{" + strings.Join(e.Names(), " ") + "}"
}
