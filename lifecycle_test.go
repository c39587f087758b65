package xr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/xr/graphics"
	"github.com/gogpu/xr/runtime"
	"github.com/gogpu/xr/runtime/sim"
)

// TestLifecycle drives every backend through the complete frame loop.
func TestLifecycle(t *testing.T) {
	for _, b := range graphics.Backends() {
		t.Run(b.String(), func(t *testing.T) {
			entry, _ := newTestEntry(t)
			inst := newTestInstance(t, entry, b)
			system, err := inst.System(runtime.FormFactorHeadMountedDisplay)
			require.NoError(t, err)
			device, info, err := inst.InitGraphics(system)
			require.NoError(t, err)
			defer device.Destroy()

			session, waiter, stream, err := inst.CreateSession(system, info)
			require.NoError(t, err)

			formats, err := session.EnumerateSwapchainFormats()
			require.NoError(t, err)
			format, err := ChooseFormat(formats, nil)
			require.NoError(t, err)
			device.SetSurfaceFormat(format)

			scInfo := colorSwapchain
			scInfo.Format = format
			sc, err := session.CreateSwapchain(scInfo)
			require.NoError(t, err)
			wdev, err := device.WGPU()
			require.NoError(t, err)
			images, err := sc.EnumerateImages(wdev, format, scInfo.Width, scInfo.Height)
			require.NoError(t, err)

			space, err := session.CreateReferenceSpace(runtime.ReferenceSpaceLocal, runtime.IdentityPose)
			require.NoError(t, err)
			require.NoError(t, session.Begin(runtime.ViewConfigurationPrimaryStereo))

			const frames = 5
			for i := range frames {
				state, err := waiter.Wait()
				require.NoError(t, err, "frame %d", i)
				require.NoError(t, stream.Begin(), "frame %d", i)
				idx, err := sc.AcquireImage()
				require.NoError(t, err, "frame %d", i)
				require.NoError(t, sc.WaitImage(time.Second), "frame %d", i)
				require.NotNil(t, images.At(idx), "frame %d: image %d", i, idx)
				require.NoError(t, sc.ReleaseImage(), "frame %d", i)
				layer := NewProjectionLayer().Space(space).Views(
					ProjectionView{Pose: runtime.IdentityPose, SubImage: FullImage(sc)},
					ProjectionView{Pose: runtime.IdentityPose, SubImage: FullImage(sc)},
				)
				require.NoError(t, stream.End(state.PredictedDisplayTime, runtime.BlendModeOpaque, layer), "frame %d", i)
			}

			require.NoError(t, session.RequestExit())
			require.NoError(t, session.End())
			require.NoError(t, sc.Destroy())
			require.NoError(t, session.Destroy())
			require.NoError(t, inst.Destroy())

			got := session.Raw().(*sim.Session).Frames()
			require.Len(t, got, frames)
			for i := 1; i < len(got); i++ {
				assert.Greater(t, got[i].DisplayTime, got[i-1].DisplayTime, "frame %d", i)
			}
			assert.Equal(t, format, device.SurfaceFormat())
		})
	}
}
