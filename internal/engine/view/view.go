// Package view turns keyboard, cursor and wheel input into camera motion and
// publishes the resulting view and projection matrices each frame.
package view

import (
	"go.uber.org/zap"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/houseview/internal/engine/camera"
	"github.com/Faultbox/houseview/internal/engine/input"
	"github.com/Faultbox/houseview/internal/engine/shader"
	"github.com/Faultbox/houseview/internal/logger"
)

// Mode selects the projection.
type Mode int

const (
	Perspective Mode = iota
	Orthographic
)

func (m Mode) String() string {
	if m == Orthographic {
		return "orthographic"
	}
	return "perspective"
}

// Projection parameters.
const (
	Near            float32 = 0.1
	Far             float32 = 100.0
	OrthoHalfExtent float32 = 15.0
)

// Camera speed accumulator driven by the scroll wheel.
const (
	MinSpeed   float32 = 0.5
	MaxSpeed   float32 = 10.0
	ScrollStep float32 = 0.5
)

// Startup and top-down camera presets.
var (
	HomePosition         = mgl32.Vec3{10, 8, 15}
	HomeYaw      float32 = -120
	HomePitch    float32 = -20

	TopDownPosition         = mgl32.Vec3{0, 20, 0.1}
	TopDownYaw      float32 = -90
	TopDownPitch    float32 = -89
)

// Clock returns monotonic time in seconds.
type Clock interface {
	Now() float64
}

// Options configures a Controller.
type Options struct {
	Sink  shader.Sink
	Keys  input.Keys
	Clock Clock

	// Framebuffer size used for the aspect ratio.
	Width  int
	Height int
}

// Controller owns the camera and the projection mode.
type Controller struct {
	sink  shader.Sink
	keys  input.Keys
	edges *input.Edges
	clock Clock
	cam   *camera.Camera
	log   *zap.Logger

	mode   Mode
	aspect float32
	speed  float32

	lastFrame float64
	elapsed   float32

	firstCursor  bool
	lastX, lastY float32
}

// New creates a controller with the camera at its home preset.
func New(opts Options) *Controller {
	c := &Controller{
		sink:        opts.Sink,
		keys:        opts.Keys,
		edges:       input.NewEdges(opts.Keys),
		clock:       opts.Clock,
		cam:         camera.New(HomePosition, mgl32.Vec3{0, 1, 0}, HomeYaw, HomePitch),
		log:         logger.Named("view"),
		mode:        Perspective,
		aspect:      1,
		speed:       camera.DefaultSpeed,
		firstCursor: true,
		lastX:       float32(opts.Width) / 2,
		lastY:       float32(opts.Height) / 2,
	}
	c.SetViewport(opts.Width, opts.Height)
	if c.clock != nil {
		c.lastFrame = c.clock.Now()
	}
	return c
}

// Camera returns the controlled camera.
func (c *Controller) Camera() *camera.Camera { return c.cam }

// Mode returns the current projection mode.
func (c *Controller) Mode() Mode { return c.mode }

// Speed returns the scroll-controlled camera speed.
func (c *Controller) Speed() float32 { return c.speed }

// Elapsed returns the frame time measured by the last Frame call.
func (c *Controller) Elapsed() float32 { return c.elapsed }

// Edges exposes the latches sampled by Frame, so callers can react to
// other edge-triggered actions without sampling twice.
func (c *Controller) Edges() *input.Edges { return c.edges }

// SetViewport updates the aspect ratio. A zero height (minimised window) is
// ignored.
func (c *Controller) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.aspect = float32(width) / float32(height)
}

// Aspect returns the current aspect ratio.
func (c *Controller) Aspect() float32 { return c.aspect }

// Frame advances one frame: measure elapsed time, apply input, publish the
// view, projection and eye position.
func (c *Controller) Frame() {
	if c.clock != nil {
		now := c.clock.Now()
		c.elapsed = float32(now - c.lastFrame)
		c.lastFrame = now
		if c.elapsed < 0 {
			c.elapsed = 0
		}
	}

	c.processKeys()
	c.publish()
}

func (c *Controller) processKeys() {
	c.edges.Update()
	if c.keys == nil {
		return
	}

	moves := [...]struct {
		action input.Action
		dir    camera.Direction
	}{
		{input.MoveForward, camera.Forward},
		{input.MoveBackward, camera.Backward},
		{input.MoveLeft, camera.Left},
		{input.MoveRight, camera.Right},
		{input.MoveUp, camera.Up},
		{input.MoveDown, camera.Down},
	}
	for _, m := range moves {
		if c.keys.Down(m.action) {
			c.cam.Move(m.dir, c.elapsed)
		}
	}

	if c.edges.JustPressed(input.UsePerspective) {
		c.mode = Perspective
		c.log.Info("switched to perspective projection")
	}
	if c.edges.JustPressed(input.UseOrthographic) {
		c.mode = Orthographic
		c.cam.Position = TopDownPosition
		c.cam.Yaw = TopDownYaw
		c.cam.Pitch = TopDownPitch
		c.cam.UpdateOrientation()
		c.log.Info("switched to orthographic projection")
	}
	if c.edges.JustPressed(input.ResetView) {
		c.Reset()
	}
}

// Reset restores the home camera and perspective mode.
func (c *Controller) Reset() {
	c.cam.Reset(HomePosition, HomeYaw, HomePitch)
	c.speed = camera.DefaultSpeed
	c.mode = Perspective
	c.log.Info("camera reset to home position")
}

// OnCursor feeds an absolute cursor position. The first sample only seeds
// the reference point.
func (c *Controller) OnCursor(x, y float32) {
	if c.firstCursor {
		c.lastX, c.lastY = x, y
		c.firstCursor = false
	}
	dx := x - c.lastX
	dy := c.lastY - y // window y grows downward
	c.lastX, c.lastY = x, y

	c.cam.Look(dx, dy)
}

// OnScroll adjusts camera speed by the vertical wheel delta.
func (c *Controller) OnScroll(_, dy float32) {
	c.speed = mgl32.Clamp(c.speed+dy*ScrollStep, MinSpeed, MaxSpeed)
	c.cam.SetSpeed(c.speed)
	c.log.Debug("camera speed", zap.Float32("speed", c.speed))
}

// Projection returns the projection matrix for the current mode.
func (c *Controller) Projection() mgl32.Mat4 {
	if c.mode == Orthographic {
		w := OrthoHalfExtent * c.aspect
		return mgl32.Ortho(-w, w, -OrthoHalfExtent, OrthoHalfExtent, Near, Far)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.cam.Zoom), c.aspect, Near, Far)
}

func (c *Controller) publish() {
	if c.sink == nil {
		return
	}
	c.sink.SetMat4(shader.UniformView, c.cam.ViewMatrix())
	c.sink.SetMat4(shader.UniformProjection, c.Projection())
	c.sink.SetVec3(shader.UniformViewPosition, c.cam.Position)
}
