// Package app wires the window, renderer, scenes and page state into the
// main loop.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/neurosummit/internal/assets"
	"github.com/Faultbox/neurosummit/internal/config"
	"github.com/Faultbox/neurosummit/internal/countdown"
	"github.com/Faultbox/neurosummit/internal/engine/audio"
	"github.com/Faultbox/neurosummit/internal/engine/camera"
	"github.com/Faultbox/neurosummit/internal/engine/debug"
	"github.com/Faultbox/neurosummit/internal/engine/input"
	"github.com/Faultbox/neurosummit/internal/engine/picking"
	"github.com/Faultbox/neurosummit/internal/engine/renderer"
	"github.com/Faultbox/neurosummit/internal/engine/ui2d"
	"github.com/Faultbox/neurosummit/internal/engine/window"
	"github.com/Faultbox/neurosummit/internal/hud"
	"github.com/Faultbox/neurosummit/internal/landing"
	"github.com/Faultbox/neurosummit/internal/logger"
	"github.com/Faultbox/neurosummit/internal/neuralnet"
	"github.com/Faultbox/neurosummit/internal/procgen"
	"github.com/Faultbox/neurosummit/pkg/math"
)

// Title is the window title.
const Title = "NeuroSummit"

// App is the running landing page.
type App struct {
	cfg *config.Config

	window   *window.Window
	renderer *renderer.Renderer
	ui       *ui2d.Renderer
	input    *input.Input
	audio    *audio.Manager
	assets   *assets.Manager
	shots    *debug.Screenshots

	scenes    *Scenes
	loop      *landing.Loop
	state     *landing.State
	reactor   *landing.Reactor
	loading   *landing.Loading
	countdown *countdown.Countdown
	hud       *hud.HUD

	neural      *neuralnet.Surface
	neuralImage *ui2d.Image

	fps         float64
	pendingShot bool
}

// New opens the window and builds both scenes.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int64("seed", cfg.Scene.Seed),
	)

	a := &App{
		cfg:   cfg,
		input: input.New(),
		hud:   hud.New(),
		shots: debug.NewScreenshots(cfg.Assets.ScreenshotDir, "neurosummit", cfg.Assets.ScreenshotFormat),
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		MSAA:       cfg.Graphics.MSAA,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	dw, dh := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{Width: dw, Height: dh})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	w, h := a.window.GetSize()
	a.ui, err = ui2d.New(w, h)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create overlay: %w", err)
	}

	a.assets = assets.NewManager()
	if cfg.Assets.Dir != "" {
		if err := a.assets.AddDir(cfg.Assets.Dir); err != nil {
			logger.Warn("asset directory unavailable", zap.String("dir", cfg.Assets.Dir), zap.Error(err))
		}
	}
	if err := a.assets.AddDir("."); err != nil {
		logger.Warn("working directory unavailable", zap.Error(err))
	}

	a.initAudio()

	rng := procgen.NewRand(cfg.Scene.Seed)
	a.scenes = BuildScenes(cfg, a.assets, rng)
	if a.scenes.Network != nil {
		a.neural = neuralnet.NewSurface(a.scenes.Network, hud.NeuralWidth, hud.NeuralHeight)
		a.neuralImage = ui2d.NewImage()
	}

	a.state = landing.NewState(w, h)
	a.reactor = landing.NewReactor(cfg.Scene.Sections)
	aspect := float32(w) / float32(max(h, 1))
	heroCam := camera.NewHero(aspect, a.state.Device.Profile().CameraZ)
	var interiorCam *camera.Perspective
	if a.scenes.Interior != nil {
		interiorCam = camera.NewInterior(aspect)
	}

	now := time.Now()
	a.loop = landing.NewLoop(a.scenes.Hero, a.scenes.Interior, heroCam, interiorCam, a.renderer, now)
	a.loading = landing.NewLoading(now, rng)
	if cfg.Scene.LoadingDelay > 0 {
		a.loading.Delay = cfg.Scene.LoadingDelay
	}
	if cfg.Scene.LoadingFade > 0 {
		a.loading.Fade = cfg.Scene.LoadingFade
	}

	if cfg.Countdown.Enabled {
		target, err := countdown.ParseTarget(cfg.Countdown.Target, time.Local)
		if err != nil {
			logger.Warn("countdown disabled", zap.Error(err))
		} else {
			a.countdown = countdown.New(target)
		}
	}

	logger.Info("initialized",
		zap.Bool("procedural_brain", a.scenes.Hero.Procedural),
		zap.Bool("interior", a.scenes.Interior != nil),
		zap.Stringer("device", a.state.Device),
	)
	return a, nil
}

func (a *App) initAudio() {
	a.audio = audio.New()
	if err := a.audio.Init(); err != nil {
		logger.Warn("audio disabled", zap.Error(err))
		return
	}
	ac := a.cfg.Audio
	a.audio.SetMasterVolume(float64(ac.MasterVolume))
	a.audio.SetTickVolume(float64(ac.TickVolume))
	a.audio.SetAmbientVolume(float64(ac.AmbientVolume))
	a.audio.SetMuted(ac.Muted)

	if path := a.cfg.Assets.AmbientTrack; path != "" {
		data, err := a.assets.Load(path)
		if err == nil {
			err = a.audio.PlayAmbient(data, path, true)
		}
		if err != nil {
			logger.Warn("ambient track unavailable", zap.String("path", path), zap.Error(err))
		}
	}
}

// Run drives the frame loop until the window closes, Escape is pressed
// or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	logger.Info("starting main loop")

	var limit time.Duration
	if a.cfg.Graphics.FPSLimit > 0 {
		limit = time.Second / time.Duration(a.cfg.Graphics.FPSLimit)
	}

	last := time.Now()
	frames := 0
	fpsTimer := last
	for {
		select {
		case <-ctx.Done():
			logger.Info("stopping", zap.Error(ctx.Err()))
			return nil
		default:
		}

		now := time.Now()
		dt := now.Sub(last)
		last = now

		if !a.handleInput(now) {
			return nil
		}
		a.frame(now, dt)

		frames++
		if e := time.Since(fpsTimer); e >= time.Second {
			a.fps = float64(frames) / e.Seconds()
			logger.Debug("fps", zap.Float64("fps", a.fps), zap.Duration("dt", dt))
			frames = 0
			fpsTimer = time.Now()
		}
		if limit > 0 {
			if spare := limit - time.Since(now); spare > 0 {
				time.Sleep(spare)
			}
		}
	}
}

// handleInput applies this frame's events and reports whether to keep
// running.
func (a *App) handleInput(now time.Time) bool {
	if a.input.Update() {
		return false
	}

	screenshot := false
	for _, ev := range a.input.Events() {
		switch ev.Type {
		case input.EventWindowResize:
			a.resize(ev.Width, ev.Height)
		case input.EventMouseMove:
			a.movePointer(now, ev.MouseX, ev.MouseY)
		case input.EventKeyDown:
			if ev.Repeat {
				continue
			}
			switch ev.Key {
			case keyEscape:
				return false
			case keyFullscreen:
				if err := a.window.ToggleFullscreen(); err != nil {
					logger.Warn("fullscreen toggle failed", zap.Error(err))
				}
			case keyMute:
				logger.Info("audio", zap.Bool("muted", a.audio.ToggleMute()))
			case keyHome:
				a.reactor.ScrollTo(a.state, 0)
			case keyEnd:
				a.reactor.ScrollTo(a.state, float64(a.reactor.Sections*a.state.Height))
			case keyScreenshot:
				screenshot = true
			}
		}
	}
	a.reactor.Scroll(a.state, a.input.ScrollDelta(a.state.Height))
	a.pendingShot = a.pendingShot || screenshot
	return true
}

// frame advances the page and draws one frame.
func (a *App) frame(now time.Time, dt time.Duration) {
	a.reactor.Update(a.state, dt)

	ls := a.loading.Update(now)
	if ls.Done && !a.state.Loaded {
		a.state.Loaded = true
		logger.Info("loading complete")
	}

	var display countdown.Display
	if a.countdown != nil {
		d, ev := a.countdown.Update(now)
		display = d
		a.hud.Observe(now, ev)
		if ev.Pulse {
			if err := a.audio.PlayTick(); err != nil {
				logger.Debug("tick not played", zap.Error(err))
			}
		}
		if ev.WentLive {
			logger.Info("conference is live")
		}
	}

	if a.neural != nil && a.state.Loaded && a.neuralVisible() {
		a.neuralImage.Upload(a.neural.Frame())
	}

	a.loop.Tick(now, a.state)
	a.renderer.Present()

	a.ui.Begin()
	a.hud.Draw(a.ui, hud.Frame{
		Now:           now,
		State:         a.state,
		Countdown:     display,
		ShowCountdown: a.countdown != nil,
		Loading:       ls,
		Neural:        a.neuralImage,
		FPS:           a.fps,
		ShowFPS:       a.cfg.Graphics.ShowFPS,
		Muted:         a.audio.Muted(),
	})
	a.ui.End()

	if a.pendingShot {
		a.pendingShot = false
		path, err := a.shots.Save(a.renderer.Capture())
		if err != nil {
			logger.Warn("screenshot failed", zap.Error(err))
		} else {
			logger.Info("screenshot saved", zap.String("path", path))
		}
	}

	a.window.SwapBuffers()
}

// movePointer tracks the cursor once the page has loaded.
func (a *App) movePointer(now time.Time, x, y int) {
	if !a.state.Loaded {
		return
	}
	a.state.Pointer = PointerNDC(x, y, a.state.Width, a.state.Height)
	a.loop.PointerMoved(now, a.state)
}

func (a *App) neuralVisible() bool {
	top := hud.SectionTop(a.state, hud.NeuralSection)
	return hud.OnScreen(top, float32(a.state.Height), a.state.Height)
}

// resize propagates a window size change in screen coordinates.
func (a *App) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	a.reactor.Resize(a.state, width, height)
	a.loop.HeroCamera.SetAspect(width, height)
	if a.loop.InteriorCamera != nil {
		a.loop.InteriorCamera.SetAspect(width, height)
	}
	dw, dh := a.window.DrawableSize()
	a.renderer.Resize(dw, dh)
	a.ui.Resize(width, height)
	logger.Debug("resized",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Stringer("device", a.state.Device),
	)
}

// Close releases everything in reverse order of creation.
func (a *App) Close() {
	logger.Info("closing")

	if a.neuralImage != nil {
		a.neuralImage.Destroy()
	}
	if a.ui != nil {
		a.ui.Close()
	}
	if a.loop != nil {
		a.loop.Close()
	} else if a.renderer != nil {
		a.renderer.Close()
	}
	if a.audio != nil {
		a.audio.Close()
	}
	if a.assets != nil {
		a.assets.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

// PointerNDC converts a window position to normalized device coordinates
// with +Y up.
func PointerNDC(x, y, width, height int) math.Vec2 {
	nx, ny := picking.ScreenToNDC(float32(x), float32(y), float32(width), float32(height))
	return math.Vec2{X: nx, Y: ny}
}
