// Package demo runs the cube grid: window, renderer and the frame loop.
package demo

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/cubegrid/internal/config"
	"github.com/Faultbox/cubegrid/internal/engine/camera"
	"github.com/Faultbox/cubegrid/internal/engine/debug"
	"github.com/Faultbox/cubegrid/internal/engine/input"
	"github.com/Faultbox/cubegrid/internal/engine/renderer"
	"github.com/Faultbox/cubegrid/internal/engine/window"
	"github.com/Faultbox/cubegrid/internal/logger"
	"github.com/Faultbox/cubegrid/internal/scene"
	"github.com/Faultbox/cubegrid/pkg/math"
)

// Demo is the running application.
type Demo struct {
	cfg *config.Config

	window      *window.Window
	renderer    *renderer.Renderer
	input       *input.Input
	camera      *camera.OrbitCamera
	grid        scene.Grid
	screenshots *debug.ScreenshotCapture

	running bool
	paused  bool
	elapsed float32
	models  []math.Mat4
}

// New acquires the window and the renderer. On failure everything
// acquired so far is released before returning.
func New(cfg *config.Config) (*Demo, error) {
	logger.Info("initializing demo",
		zap.String("title", cfg.Window.Title),
		zap.Int("grid", cfg.Scene.GridSize),
	)

	d := &Demo{
		cfg:   cfg,
		input: input.New(),
		camera: camera.NewOrbitCamera(
			cfg.Scene.Distance,
			cfg.Scene.Tilt,
			cfg.Scene.SpinSpeed,
		),
		grid: scene.Grid{
			Size:       cfg.Scene.GridSize,
			Spacing:    cfg.Scene.Spacing,
			CubeSize:   cfg.Scene.CubeSize,
			PulseSpeed: cfg.Scene.PulseSpeed,
		},
		screenshots: debug.NewScreenshotCapture(cfg.Screenshot.Dir, cfg.Screenshot.Prefix),
	}
	d.models = make([]math.Mat4, 0, d.grid.Count())

	var err error
	d.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The drawable size can differ from the requested one (HiDPI, fullscreen)
	width, height := d.window.Size()
	d.renderer, err = renderer.New(renderer.Config{
		Width:  width,
		Height: height,
		Color:  cfg.Scene.Color,
	})
	if err != nil {
		d.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	logger.Info("demo initialized")
	return d, nil
}

// Run drives the frame loop until the window closes or Escape is pressed.
// Frame time comes from the SDL millisecond clock.
func (d *Demo) Run() error {
	d.running = true

	lastTicks := d.window.Ticks()
	fps := fpsCounter{start: lastTicks}

	logger.Info("starting frame loop")

	for d.running {
		now := d.window.Ticks()
		dt := frameDelta(lastTicks, now)
		lastTicks = now

		if d.input.Update() {
			d.running = false
			break
		}
		d.handleEvents(d.input.Events())

		d.update(dt)
		d.render()

		if d.input.IsKeyPressed(sdl.SCANCODE_F12) {
			d.screenshot()
		}

		d.window.SwapBuffers()

		if count, ok := fps.frame(now); ok {
			logger.Debug("fps",
				zap.Int("count", count),
				zap.Float32("dt_ms", dt*1000),
			)
			d.window.SetTitle(fpsTitle(d.cfg.Window.Title, count))
		}
	}

	return nil
}

// frameDelta returns the seconds between two tick readings.
func frameDelta(last, now uint64) float32 {
	if now <= last {
		return 0
	}
	return float32(now-last) / 1000
}

// fpsCounter counts frames and reports once per elapsed second.
type fpsCounter struct {
	start  uint64
	frames int
}

// frame records one frame at tick now. It returns the frame count and true
// once a second has passed since the last report.
func (c *fpsCounter) frame(now uint64) (int, bool) {
	c.frames++
	if now-c.start < 1000 {
		return 0, false
	}
	count := c.frames
	c.frames = 0
	c.start = now
	return count, true
}

func fpsTitle(title string, fps int) string {
	return fmt.Sprintf("%s - %d fps", title, fps)
}

// Close releases the renderer, then the window.
func (d *Demo) Close() {
	logger.Info("closing demo")

	if d.renderer != nil {
		d.renderer.Close()
	}
	if d.window != nil {
		d.window.Close()
	}
}

func (d *Demo) handleEvents(events []input.Event) {
	for _, event := range events {
		switch event.Type {
		case input.EventWindowResize:
			// Minimized windows report 0, which would break the aspect ratio
			if event.Width <= 0 || event.Height <= 0 {
				continue
			}
			// The event is in points; the viewport needs pixels
			if w, h := d.window.Size(); w > 0 && h > 0 {
				d.renderer.Resize(w, h)
			}
		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				d.running = false
			case sdl.SCANCODE_SPACE:
				d.paused = !d.paused
				logger.Info("animation toggled", zap.Bool("paused", d.paused))
			case sdl.SCANCODE_UP:
				d.camera.HandlePitch(5)
				d.logCamera()
			case sdl.SCANCODE_DOWN:
				d.camera.HandlePitch(-5)
				d.logCamera()
			case sdl.SCANCODE_EQUALS:
				d.camera.HandleZoom(0.1)
				d.logCamera()
			case sdl.SCANCODE_MINUS:
				d.camera.HandleZoom(-0.1)
				d.logCamera()
			}
		}
	}
}

func (d *Demo) logCamera() {
	pos := d.camera.Position()
	logger.Debug("camera moved",
		zap.Float32("pitch", d.camera.Pitch),
		zap.Float32("distance", d.camera.Distance),
		zap.Float32("x", pos.X), zap.Float32("y", pos.Y), zap.Float32("z", pos.Z),
	)
}

func (d *Demo) update(dt float32) {
	if d.paused {
		return
	}
	d.elapsed += dt
	d.camera.Update(dt)
}

func (d *Demo) render() {
	width, height := d.renderer.Size()
	p := d.cfg.Projection
	proj := math.Perspective(p.FOV, float32(width), float32(height), p.Near, p.Far)

	d.renderer.Begin()
	d.renderer.SetCamera(proj.Mul(d.camera.ViewMatrix()))

	d.models = d.grid.Models(d.elapsed, d.models)
	for _, model := range d.models {
		d.renderer.DrawCube(model)
	}

	d.renderer.End()
}

func (d *Demo) screenshot() {
	pixels, width, height := d.renderer.ReadPixels()
	path, err := d.screenshots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}
