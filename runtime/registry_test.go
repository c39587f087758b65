// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package runtime

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedLoader string

func (namedLoader) EnumerateExtensions() ([]string, error) { return nil, nil }

func (namedLoader) CreateInstance(*InstanceDescriptor) (Instance, error) {
	return nil, ErrorRuntimeFailure
}

func register(t *testing.T, name string) {
	t.Helper()
	Register(name, func() Loader { return namedLoader(name) })
	t.Cleanup(func() { Unregister(name) })
}

func TestRegistryPriority(t *testing.T) {
	_, _, err := Best()
	require.ErrorIs(t, err, ErrNoLoader)

	register(t, "vendor")
	register(t, "sim")
	assert.Equal(t, []string{"sim", "vendor"}, Available())

	loader, name, err := Best()
	require.NoError(t, err)
	assert.Equal(t, "sim", name)
	assert.Equal(t, namedLoader("sim"), loader)

	register(t, "openxr")
	_, name, err = Best()
	require.NoError(t, err)
	assert.Equal(t, "openxr", name)
}

func TestRegistryGet(t *testing.T) {
	register(t, "vendor")

	loader, err := Get("vendor")
	require.NoError(t, err)
	assert.Equal(t, namedLoader("vendor"), loader)

	_, err = Get("missing")
	assert.ErrorIs(t, err, ErrNoLoader)

	Unregister("vendor")
	_, err = Get("vendor")
	assert.ErrorIs(t, err, ErrNoLoader)
}

func TestResult(t *testing.T) {
	assert.False(t, Result(0).Failed())
	assert.False(t, TimeoutExpired.Failed())
	assert.True(t, ErrorCallOrderInvalid.Failed())
	assert.Equal(t, "XR_TIMEOUT_EXPIRED", TimeoutExpired.Error())

	var err error = ErrorSessionNotRunning
	assert.True(t, errors.Is(err, ErrorSessionNotRunning))
	assert.False(t, errors.Is(err, ErrorSessionRunning))
}

func TestBlendModeNames(t *testing.T) {
	for _, m := range []EnvironmentBlendMode{BlendModeOpaque, BlendModeAdditive, BlendModeAlphaBlend} {
		got, err := ParseBlendMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := ParseBlendMode("glass")
	assert.Error(t, err)
	assert.Equal(t, "focused", SessionStateFocused.String())
	assert.Equal(t, "SessionState(42)", SessionState(42).String())
}
