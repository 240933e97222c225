// Package app wires the window, renderer, scene and view controller into
// the frame loop.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/houseview/internal/config"
	"github.com/Faultbox/houseview/internal/engine/debug"
	"github.com/Faultbox/houseview/internal/engine/input"
	"github.com/Faultbox/houseview/internal/engine/lighting"
	"github.com/Faultbox/houseview/internal/engine/mesh"
	"github.com/Faultbox/houseview/internal/engine/renderer"
	"github.com/Faultbox/houseview/internal/engine/scene"
	"github.com/Faultbox/houseview/internal/engine/texture"
	"github.com/Faultbox/houseview/internal/engine/view"
	"github.com/Faultbox/houseview/internal/engine/window"
	"github.com/Faultbox/houseview/internal/logger"
)

// App is the running viewer.
type App struct {
	cfg     *config.Config
	running bool

	window      *window.Window
	renderer    *renderer.Renderer
	scene       *scene.Scene
	view        *view.Controller
	screenshots *debug.Screenshots
}

// New opens the window and prepares the scene. Any error here is fatal.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	a := &App{cfg: cfg}

	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context the window just created.
	fbWidth, fbHeight := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{Width: fbWidth, Height: fbHeight})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	sink := a.renderer.Program()
	sink.Use()

	a.scene = scene.New(scene.Options{
		Sink:       sink,
		Meshes:     mesh.NewLibrary(mesh.GLDevice{}),
		Textures:   texture.NewRegistry(texture.FileDecoder{}, texture.GLDevice{}),
		Lights:     lighting.NewRegistry(),
		State:      scene.GLState{},
		TextureDir: cfg.Scene.TextureDir,
	})
	if err := a.scene.Prepare(); err != nil {
		a.renderer.Close()
		a.window.Close()
		return nil, err
	}

	a.view = view.New(view.Options{
		Sink:   sink,
		Keys:   window.NewKeyboard(nil),
		Clock:  window.NewClock(),
		Width:  fbWidth,
		Height: fbHeight,
	})
	a.screenshots = debug.NewScreenshots(cfg.Screenshot.Dir, cfg.Screenshot.Prefix)

	logger.Info("viewer initialized")
	return a, nil
}

// Run drives the frame loop until the window closes or Escape is pressed.
func (a *App) Run() error {
	a.running = true

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for a.running {
		if a.window.PollEvents(a) {
			break
		}

		a.renderer.Begin()
		a.view.Frame()

		edges := a.view.Edges()
		if edges.Held(input.Quit) {
			a.running = false
		}

		a.scene.Render()

		// Read back before the swap, while the frame is still in the back buffer.
		if edges.JustPressed(input.Screenshot) {
			a.captureScreenshot()
		}

		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.window.SetTitle(fpsTitle(a.cfg.Window.Title, frameCount, a.view.Elapsed()))
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", a.view.Elapsed()*1000)),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) captureScreenshot() {
	w, h := a.renderer.Size()
	if _, err := a.screenshots.Capture(debug.GLPixelReader{}, w, h); err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
	}
}

// OnCursor implements window.Handler.
func (a *App) OnCursor(x, y float32) {
	a.view.OnCursor(x, y)
}

// OnScroll implements window.Handler.
func (a *App) OnScroll(dx, dy float32) {
	a.view.OnScroll(dx, dy)
}

// OnResize implements window.Handler.
func (a *App) OnResize(width, height int) {
	a.renderer.Resize(width, height)
	a.view.SetViewport(width, height)
}

// Close releases GPU resources and the window.
func (a *App) Close() {
	logger.Info("closing viewer")

	if a.scene != nil {
		a.scene.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

// fpsTitle formats the window title shown while the loop runs.
func fpsTitle(base string, fps int, dt float32) string {
	return fmt.Sprintf("%s | %d fps | %.2fms", base, fps, dt*1000)
}
