package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/Carmen-Shannon/oxy-gallery/common"
	"github.com/Carmen-Shannon/oxy-gallery/engine"
	"github.com/Carmen-Shannon/oxy-gallery/engine/camera"
	"github.com/Carmen-Shannon/oxy-gallery/engine/input"
	"github.com/Carmen-Shannon/oxy-gallery/engine/window"
	"github.com/Carmen-Shannon/oxy-gallery/internal/config"
	"github.com/Carmen-Shannon/oxy-gallery/internal/log"
	"github.com/Carmen-Shannon/oxy-gallery/internal/web"
)

func main() {
	configPath := flag.String("config", "", "path to a gallery YAML file (built-in room when empty)")
	headless := flag.Bool("headless", false, "run without a window; the camera is driven by idle motion and the tour")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Error("load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	log.Init(cfg.LogLevel)

	if err := run(cfg, *headless); err != nil {
		log.Error("gallery stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, headless bool) error {
	g, err := cfg.BuildGallery()
	if err != nil {
		return err
	}
	ctrlOpts, err := cfg.CameraOptions(g)
	if err != nil {
		return err
	}
	ctrl := camera.NewCameraController(ctrlOpts...)
	tracker := input.NewTracker()

	lensOpts := append(cfg.LensOptions(), camera.WithController(ctrl))
	engineOpts := cfg.EngineOptions()

	if !headless {
		win, err := window.NewWindow(
			window.WithTitle(cfg.Window.Title),
			window.WithSize(cfg.Window.Width, cfg.Window.Height),
			window.WithMinSize(cfg.Window.MinWidth, cfg.Window.MinHeight),
			window.WithMaxSize(cfg.Window.MaxWidth, cfg.Window.MaxHeight),
		)
		if err != nil {
			return errors.Wrap(err, "open window")
		}
		win.SetKeyDownCallback(func(key string) {
			if key == common.KeyNameT && !ctrl.IsTourMode() {
				ctrl.StartIntroAnimation()
				return
			}
			tracker.KeyDown(key)
		})
		win.SetKeyUpCallback(tracker.KeyUp)
		win.SetPointerMoveCallback(tracker.PointerMove)
		win.SetPointerLockCallback(tracker.SetPointerLock)

		lensOpts = append(lensOpts, camera.WithAspect(win.Aspect()))
		engineOpts = append(engineOpts, engine.WithSurface(win))
	}

	cam := camera.NewCamera(lensOpts...)
	engineOpts = append(engineOpts,
		engine.WithCamera(cam),
		engine.WithTickCallback(func(deltaTime float32) {
			ctrl.Update(deltaTime, tracker.Snapshot())
			cam.Update()
		}),
	)
	eng := engine.NewEngine(engineOpts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)

	group, gctx := errgroup.WithContext(ctx)
	hub := web.NewHub()
	group.Go(func() error {
		return hub.Forward(gctx, ctrl.Events())
	})
	if cfg.Web.Enabled {
		srv := web.NewServer(ctrl, g, hub, web.WithProfiler(eng.Profiler()), web.WithCamera(cam))
		group.Go(func() error {
			return srv.ListenAndServe(gctx, cfg.Web.Addr)
		})
	}
	group.Go(func() error {
		select {
		case <-gctx.Done():
			eng.Quit()
		case <-eng.Done():
			cancel()
		}
		return nil
	})

	if cfg.Camera.TourAutoplay && !ctrl.StartIntroAnimation() {
		log.Warn("tour autoplay requested but no tour path is configured")
	}

	log.Info("gallery running", "artworks", len(g.Artworks), "web", cfg.Web.Enabled, "headless", headless)
	eng.Run()
	cancel()

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
