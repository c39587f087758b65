package xr

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/xr/runtime"
)

func TestChooseFormat(t *testing.T) {
	srgb := gputypes.TextureFormatRGBA8UnormSrgb
	bgra := gputypes.TextureFormatBGRA8UnormSrgb
	f16 := gputypes.TextureFormatRGBA16Float

	tests := []struct {
		name      string
		available []gputypes.TextureFormat
		preferred []gputypes.TextureFormat
		want      gputypes.TextureFormat
		wantErr   error
	}{
		{"first preferred", []gputypes.TextureFormat{srgb, bgra}, []gputypes.TextureFormat{bgra, srgb}, bgra, nil},
		{"skip unavailable", []gputypes.TextureFormat{srgb, bgra}, []gputypes.TextureFormat{f16, bgra}, bgra, nil},
		{"fallback", []gputypes.TextureFormat{srgb, bgra}, []gputypes.TextureFormat{f16}, srgb, nil},
		{"no preference", []gputypes.TextureFormat{bgra}, nil, bgra, nil},
		{"nothing available", nil, []gputypes.TextureFormat{srgb}, gputypes.TextureFormatUndefined, ErrNoCandidate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ChooseFormat(tt.available, tt.preferred)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChooseResolution(t *testing.T) {
	available := []Resolution{{2064, 2208}, {1440, 1600}}
	got, err := ChooseResolution(available, []Resolution{{1440, 1600}})
	require.NoError(t, err)
	assert.Equal(t, Resolution{1440, 1600}, got)

	got, err = ChooseResolution(available, []Resolution{{800, 600}})
	require.NoError(t, err)
	assert.Equal(t, available[0], got, "fallback")

	_, err = ChooseResolution(nil, nil)
	assert.ErrorIs(t, err, ErrNoCandidate)
}

func TestChooseBlendMode(t *testing.T) {
	available := []runtime.EnvironmentBlendMode{runtime.BlendModeOpaque, runtime.BlendModeAdditive}
	got, err := ChooseBlendMode(available, []runtime.EnvironmentBlendMode{runtime.BlendModeAlphaBlend, runtime.BlendModeAdditive})
	require.NoError(t, err)
	assert.Equal(t, runtime.BlendModeAdditive, got)
}
