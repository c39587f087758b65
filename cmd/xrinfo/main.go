// Command xrinfo lists what an XR runtime offers and optionally drives a
// session through a number of frames.
//
// Usage:
//
//	xrinfo [-config xr.yaml] [-runtime sim] [-backend vulkan] [-frames 90] [-v]
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/xr"
	"github.com/gogpu/xr/config"
	"github.com/gogpu/xr/graphics"
	"github.com/gogpu/xr/runtime"
	"github.com/gogpu/xr/runtime/sim"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML configuration file")
		runtimeArg = flag.String("runtime", "", "runtime name (default: best available)")
		backendArg = flag.String("backend", "", "graphics backend (overrides config)")
		frames     = flag.Int("frames", -1, "frames to submit, 0 to only list (overrides config)")
		verbose    = flag.Bool("v", false, "log library events to stderr")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if *runtimeArg != "" {
		cfg.Runtime = *runtimeArg
	}
	if *backendArg != "" {
		cfg.Backend = *backendArg
	}
	if *frames >= 0 {
		cfg.Frames = *frames
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	if *verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		xr.SetLogger(logger)
		sim.SetLogger(logger)
	}

	entry, err := xr.LoadEntry(cfg.Runtime)
	if err != nil {
		log.Fatalf("Failed to load runtime: %v", err)
	}
	if _, ok := entry.Loader().(*sim.Runtime); ok {
		sim.InstallInitializers()
	}

	exts, err := entry.EnumerateExtensions()
	if err != nil {
		log.Fatal(err)
	}
	backends, err := entry.AvailableBackends()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Runtimes:   %v\n", runtime.Available())
	fmt.Printf("Extensions: %s\n", exts)
	fmt.Printf("Backends:   %v\n", backends)

	if cfg.Frames == 0 {
		return
	}
	if err := run(entry, cfg); err != nil {
		log.Fatal(err)
	}
}

// run creates a session on the configured backend and submits cfg.Frames
// projection frames.
func run(entry *xr.Entry, cfg config.Config) error {
	backend, _ := cfg.GraphicsBackend()
	app, _ := cfg.AppInfo()
	prefs, err := cfg.SessionCreateInfo()
	if err != nil {
		return err
	}

	inst, err := entry.CreateInstance(app, graphics.NewExtensions(cfg.Extensions...), cfg.Layers, backend)
	if err != nil {
		return err
	}
	defer inst.Destroy()

	system, err := inst.System(runtime.FormFactorHeadMountedDisplay)
	if err != nil {
		return err
	}
	device, info, err := inst.InitGraphics(system)
	if err != nil {
		return err
	}
	defer device.Destroy()
	log.Printf("Device: %s (%s)", device.AdapterInfo().Name, info.Backend())

	session, waiter, stream, err := inst.CreateSession(system, info)
	if err != nil {
		return err
	}
	defer session.Destroy()

	available, err := session.EnumerateSwapchainFormats()
	if err != nil {
		return err
	}
	format, err := xr.ChooseFormat(available, prefs.Formats)
	if err != nil {
		return err
	}
	modes, err := session.EnumerateEnvironmentBlendModes(runtime.ViewConfigurationPrimaryStereo)
	if err != nil {
		return err
	}
	blend, err := xr.ChooseBlendMode(modes, prefs.BlendModes)
	if err != nil {
		return err
	}
	// The runtime reports no recommended view resolutions, so the first
	// configured one is used.
	res, err := xr.ChooseResolution(prefs.Resolutions, nil)
	if err != nil {
		return err
	}
	device.SetSurfaceFormat(format)
	log.Printf("Swapchain: %s %dx%d, blend %s", format, res.Width, res.Height, blend)

	sc, err := session.CreateSwapchain(xr.SwapchainCreateInfo{
		UsageFlags:  runtime.SwapchainUsageColorAttachment | runtime.SwapchainUsageSampled,
		Format:      format,
		SampleCount: 1,
		Width:       res.Width,
		Height:      res.Height,
		FaceCount:   1,
		ArraySize:   1,
		MipCount:    1,
	})
	if err != nil {
		return err
	}
	defer sc.Destroy()

	wdev, err := device.WGPU()
	if err != nil {
		return err
	}
	images, err := sc.EnumerateImages(wdev, format, res.Width, res.Height)
	if err != nil {
		return err
	}
	log.Printf("Images: %d", images.Len())
	space, err := session.CreateReferenceSpace(runtime.ReferenceSpaceLocal, runtime.IdentityPose)
	if err != nil {
		return err
	}

	if err := session.Begin(runtime.ViewConfigurationPrimaryStereo); err != nil {
		return err
	}
	start := time.Now()
	for i := 0; i < cfg.Frames; i++ {
		state, err := waiter.Wait()
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		if err := stream.Begin(); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		if _, err := sc.AcquireImage(); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		if err := sc.WaitImage(time.Second); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		if err := sc.ReleaseImage(); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}

		var layers []xr.CompositionLayer
		if state.ShouldRender {
			view := xr.ProjectionView{Pose: runtime.IdentityPose, SubImage: xr.FullImage(sc)}
			layers = append(layers, xr.NewProjectionLayer().Space(space).Views(view, view))
		}
		if err := stream.End(state.PredictedDisplayTime, blend, layers...); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	log.Printf("Submitted %d frames in %v", cfg.Frames, time.Since(start).Round(time.Millisecond))

	if err := session.RequestExit(); err != nil {
		return err
	}
	for {
		ev, err := inst.PollEvent()
		if err != nil {
			return err
		}
		if ev == nil {
			break
		}
		if changed, ok := ev.(runtime.SessionStateChanged); ok {
			log.Printf("Session state: %s", changed.State)
		}
	}
	return session.End()
}
