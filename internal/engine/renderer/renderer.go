// Package renderer owns the OpenGL context state shared by every frame:
// function loading, the scene shader program, clear colour and viewport.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/houseview/internal/engine/shader"
	"github.com/Faultbox/houseview/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor mgl32.Vec4
}

// DefaultClearColor is the sky behind the scene.
var DefaultClearColor = mgl32.Vec4{0.53, 0.73, 0.9, 1}

// Renderer handles frame-level OpenGL state.
type Renderer struct {
	config  Config
	program *shader.Program
}

// New loads OpenGL functions and compiles the scene program.
// Must be called after the OpenGL context is current.
func New(cfg Config) (*Renderer, error) {
	if cfg.ClearColor == (mgl32.Vec4{}) {
		cfg.ClearColor = DefaultClearColor
	}
	r := &Renderer{config: cfg}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.NewSceneProgram()
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	return r, nil
}

// Program returns the scene program. It is the uniform sink for the frame.
func (r *Renderer) Program() *shader.Program {
	return r.program
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Resize updates the viewport.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin clears the frame and activates the scene program.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.program.Use()
}

// Close deletes the scene program.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.program != nil {
		r.program.Delete()
		r.program = nil
	}
}
