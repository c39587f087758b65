// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type specialized interface {
	Specialized
	name() string
}

type item[G API] struct{}

func (item[G]) Backend() Backend { return BackendOf[G]() }
func (item[G]) name() string     { return BackendOf[G]().String() }

func wrapFor(b Backend) Wrap[specialized] {
	switch b {
	case BackendVulkan:
		return WrapValue[specialized](item[Vulkan]{})
	case BackendD3D11:
		return WrapValue[specialized](item[D3D11]{})
	case BackendD3D12:
		return WrapValue[specialized](item[D3D12]{})
	case BackendOpenGLES:
		return WrapValue[specialized](item[OpenGLES]{})
	case BackendMetal:
		return WrapValue[specialized](item[Metal]{})
	}
	panic(Unreachable(b))
}

func TestWrapUsing(t *testing.T) {
	for _, b1 := range Backends() {
		w := wrapFor(b1)
		assert.True(t, w.Valid())
		assert.Equal(t, b1, w.Backend())
		assert.Equal(t, b1.String(), w.Value().name())
		for _, b2 := range Backends() {
			assert.Equal(t, b1 == b2, w.Using(b2), "wrap %s using %s", b1, b2)
		}
		assert.False(t, w.Using(0))
	}
}

func TestWrapZero(t *testing.T) {
	var w Wrap[specialized]
	assert.False(t, w.Valid())
	for _, b := range Backends() {
		assert.False(t, w.Using(b))
	}
	assert.False(t, w.Using(0))
}

type forged struct{}

func (forged) Backend() Backend { return 42 }

func TestWrapValueRejectsInvalidBackend(t *testing.T) {
	assert.Panics(t, func() { WrapValue[Specialized](forged{}) })
}

func TestAPIFor(t *testing.T) {
	for _, b := range Backends() {
		assert.Equal(t, b, APIFor(b).Backend())
	}
	assert.Equal(t, BackendMetal, BackendOf[Metal]())
	assert.Panics(t, func() { APIFor(0) })
}
