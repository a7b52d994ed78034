// Package renderer draws the hero and interior scenes into the window.
package renderer

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/neurosummit/internal/engine/camera"
	"github.com/Faultbox/neurosummit/internal/engine/framebuffer"
	"github.com/Faultbox/neurosummit/internal/engine/lighting"
	"github.com/Faultbox/neurosummit/internal/engine/scene"
	"github.com/Faultbox/neurosummit/internal/logger"
	"github.com/Faultbox/neurosummit/internal/procgen"
)

// Config holds renderer configuration. Sizes are drawable pixels.
type Config struct {
	Width  int
	Height int
}

// Renderer implements the frame loop's drawing. The interior is rendered
// offscreen as soon as it is requested; the hero is deferred to Present so
// it can be drawn over the interior directly into the multisampled window
// framebuffer.
type Renderer struct {
	config Config

	scene    *scene.Scene
	interior *framebuffer.Framebuffer

	heroLights     lighting.Rig
	interiorLights lighting.Rig

	hero         *procgen.BrainRig
	heroCam      *camera.Perspective
	interiorDone bool
}

// New creates a renderer.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	r := &Renderer{
		config:         cfg,
		heroLights:     lighting.HeroRig(),
		interiorLights: lighting.UnlitRig(),
	}

	var err error
	r.scene, err = scene.New()
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	r.interior, err = framebuffer.New(int32(cfg.Width), int32(cfg.Height))
	if err != nil {
		r.scene.Destroy()
		return nil, fmt.Errorf("interior target: %w", err)
	}

	gl.Enable(gl.MULTISAMPLE)
	gl.ClearColor(0, 0, 0, 1)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))
	return r, nil
}

// RenderHero queues the hero scene for Present.
func (r *Renderer) RenderHero(rig *procgen.BrainRig, cam *camera.Perspective) {
	r.hero, r.heroCam = rig, cam
}

// RenderInterior draws the interior scene into the offscreen target.
func (r *Renderer) RenderInterior(in *procgen.Interior, cam *camera.Perspective) {
	if in == nil || cam == nil {
		return
	}
	r.interior.Bind()
	r.interior.Clear(0, 0, 0, 1)
	r.scene.Render(in.Root, cam, r.interiorLights, r.config.Height)
	r.interior.Unbind()
	r.interiorDone = true
}

// Present composes the frame into the window framebuffer: the interior
// backdrop when one was rendered this frame, then the hero scene. The
// overlay is drawn afterwards by the caller.
func (r *Renderer) Present() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(r.config.Width), int32(r.config.Height))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if r.interiorDone {
		r.scene.Composite(r.interior.ColorTexture(), 1)
	}
	if r.hero != nil && r.heroCam != nil {
		gl.Clear(gl.DEPTH_BUFFER_BIT)
		r.scene.Render(r.hero.Scene, r.heroCam, r.heroLights, r.config.Height)
	}

	r.hero, r.heroCam, r.interiorDone = nil, nil, false
}

// Resize handles a drawable size change.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	r.interior.Resize(int32(width), int32(height))
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the drawable size in pixels.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Capture reads the composed frame back. Call it before swapping buffers.
func (r *Renderer) Capture() *image.RGBA {
	return framebuffer.ReadScreen(r.config.Width, r.config.Height)
}

// Close releases every GPU resource.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.interior != nil {
		r.interior.Destroy()
	}
	if r.scene != nil {
		r.scene.Destroy()
	}
}
