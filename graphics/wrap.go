// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package graphics

// Specialized is implemented by values that are instantiated for exactly one
// backend. Implementations derive Backend from their backend type parameter,
// never from a stored field.
type Specialized interface {
	Backend() Backend
}

// Wrap stores a backend-specialized value together with the backend that
// produced it. The zero Wrap holds nothing and reports Valid() == false.
//
// T is the erased view of the value, typically an interface whose
// implementations are the instantiations of one generic type over the
// backend markers. Calling a method of Value() runs the backend-specific
// branch with the backend statically known.
type Wrap[T Specialized] struct {
	backend Backend
	value   T
}

// WrapValue wraps v, tagging it with v.Backend(). This is the only way to
// pair a tag with a payload.
func WrapValue[T Specialized](v T) Wrap[T] {
	b := v.Backend()
	if !b.Valid() {
		panic(Unreachable(b))
	}
	return Wrap[T]{backend: b, value: v}
}

// Backend returns the tag.
func (w Wrap[T]) Backend() Backend { return w.backend }

// Using reports whether the wrap holds a value for backend b. It does not
// touch the payload.
func (w Wrap[T]) Using(b Backend) bool { return w.backend == b && b.Valid() }

// Valid reports whether the wrap holds a value.
func (w Wrap[T]) Valid() bool { return w.backend.Valid() }

// Value returns the stored specialization.
func (w Wrap[T]) Value() T { return w.value }
