package xr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/xr/graphics"
	"github.com/gogpu/xr/runtime"
	"github.com/gogpu/xr/runtime/sim"
)

func TestLoadEntry(t *testing.T) {
	entry, err := LoadEntry("sim")
	require.NoError(t, err)
	assert.IsType(t, &sim.Runtime{}, entry.Loader())

	// Only the simulator is registered in tests.
	entry, err = LoadEntry("")
	require.NoError(t, err)
	assert.IsType(t, &sim.Runtime{}, entry.Loader())

	_, err = LoadEntry("missing")
	assert.ErrorIs(t, err, runtime.ErrNoLoader)
}

func TestEnumerateExtensions(t *testing.T) {
	entry, _ := newTestEntry(t, sim.WithExtensions("A", "B"))
	exts, err := entry.EnumerateExtensions()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, exts.Names())
}

func TestEnumerateExtensionsError(t *testing.T) {
	boom := errors.New("loader gone")
	entry, _ := newTestEntry(t, sim.WithEnumerateError(boom))

	_, err := entry.EnumerateExtensions()
	var qerr *RuntimeQueryError
	require.ErrorAs(t, err, &qerr)
	assert.ErrorIs(t, err, ErrRuntimeQuery)
	assert.ErrorIs(t, err, boom)

	_, err = entry.AvailableBackends()
	assert.ErrorIs(t, err, boom)
	_, err = entry.CreateInstance(testApp, graphics.Extensions{}, nil, graphics.BackendVulkan)
	assert.ErrorIs(t, err, ErrRuntimeQuery)
}

func TestAvailableBackends(t *testing.T) {
	tests := []struct {
		name string
		exts []string
		want []graphics.Backend
	}{
		{"none", nil, nil},
		{"unrelated", []string{"XR_EXT_hand_tracking"}, nil},
		{"vulkan", []string{graphics.ExtVulkanEnable2, "XR_EXT_b"}, []graphics.Backend{graphics.BackendVulkan}},
		{
			"d3d",
			[]string{graphics.ExtD3D11Enable, graphics.ExtD3D12Enable},
			[]graphics.Backend{graphics.BackendD3D12, graphics.BackendD3D11},
		},
		{"all", sim.DefaultExtensions, graphics.Backends()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, _ := newTestEntry(t, sim.WithExtensions(tt.exts...))
			got, err := entry.AvailableBackends()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateInstanceAvailability(t *testing.T) {
	for _, b := range graphics.Backends() {
		t.Run(b.String(), func(t *testing.T) {
			// Available: every extension present.
			entry, rt := newTestEntry(t)
			inst, err := entry.CreateInstance(testApp, graphics.NewExtensions("XR_EXT_debug_utils"), nil, b)
			require.NoError(t, err)
			assert.Equal(t, b, inst.Backend())

			desc := rt.Instances()[0].Descriptor()
			want := graphics.NewExtensions("XR_EXT_debug_utils").Union(b.RequiredExtensions()).Names()
			assert.Equal(t, want, desc.Extensions)
			assert.Equal(t, testApp.Version.Pack(), desc.ApplicationVersion)
			assert.Equal(t, EngineName, desc.EngineName)

			// Unavailable: everything except b's extensions.
			others := graphics.NewExtensions(sim.DefaultExtensions...).Difference(b.RequiredExtensions())
			entry, rt = newTestEntry(t, sim.WithExtensions(others.Names()...))
			_, err = entry.CreateInstance(testApp, graphics.Extensions{}, nil, b)
			var uerr *UnavailableBackendError
			require.ErrorAs(t, err, &uerr)
			assert.Equal(t, b, uerr.Backend)
			assert.ErrorIs(t, err, ErrUnavailableBackend)
			assert.True(t, uerr.Missing.ContainsAll(b.RequiredExtensions()), "Missing = %v", uerr.Missing)
			assert.Empty(t, rt.Instances(), "runtime created an instance for an unavailable backend")
		})
	}
}

func TestCreateInstanceScenario(t *testing.T) {
	// The runtime offers {A, B}; Vulkan requires {A}.
	entry, _ := newTestEntry(t, sim.WithExtensions(graphics.ExtVulkanEnable2, "XR_EXT_b"))

	backends, err := entry.AvailableBackends()
	require.NoError(t, err)
	require.Contains(t, backends, graphics.BackendVulkan)

	inst, err := entry.CreateInstance(testApp, graphics.Extensions{}, nil, graphics.BackendVulkan)
	require.NoError(t, err)
	assert.Equal(t, graphics.BackendVulkan, inst.Backend())
	assert.Equal(t, testApp, inst.AppInfo())
}

func TestCreateInstanceRuntimeFailure(t *testing.T) {
	entry, _ := newTestEntry(t)

	// The simulator rejects API layers it does not know.
	_, err := entry.CreateInstance(testApp, graphics.Extensions{}, []string{"XR_APILAYER_missing"}, graphics.BackendVulkan)
	assert.ErrorIs(t, err, runtime.ErrorAPILayerNotPresent)

	_, err = entry.CreateInstance(testApp, graphics.Extensions{}, nil, graphics.Backend(0))
	assert.ErrorIs(t, err, graphics.ErrUnknownBackend)
}
