// Package camera provides the free-fly camera used to view the scene.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Default camera options.
const (
	DefaultYaw         float32 = -90.0
	DefaultPitch       float32 = 0.0
	DefaultSpeed       float32 = 2.5
	DefaultSensitivity float32 = 0.1
	DefaultZoom        float32 = 45.0

	// PitchLimit keeps the camera from flipping over the vertical.
	PitchLimit float32 = 89.0
	MinZoom    float32 = 1.0
	MaxZoom    float32 = 45.0
)

// Direction is a movement direction relative to the camera.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}

// Camera is a yaw/pitch camera. Front, Right and Up are derived from
// Yaw, Pitch and WorldUp by UpdateOrientation and are never set directly.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	// Angles in degrees.
	Yaw   float32
	Pitch float32

	Speed       float32 // world units per second
	Sensitivity float32 // degrees per cursor unit
	Zoom        float32 // vertical field of view, degrees
}

// New creates a camera at position looking along yaw/pitch.
func New(position, worldUp mgl32.Vec3, yaw, pitch float32) *Camera {
	c := &Camera{
		Position:    position,
		WorldUp:     worldUp,
		Yaw:         yaw,
		Pitch:       clampPitch(pitch),
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
		Zoom:        DefaultZoom,
	}
	c.UpdateOrientation()
	return c
}

// Reset puts the camera back to position/yaw/pitch with default options.
func (c *Camera) Reset(position mgl32.Vec3, yaw, pitch float32) {
	c.Position = position
	c.Yaw = yaw
	c.Pitch = clampPitch(pitch)
	c.Speed = DefaultSpeed
	c.Sensitivity = DefaultSensitivity
	c.Zoom = DefaultZoom
	c.UpdateOrientation()
}

// UpdateOrientation re-derives the basis vectors from yaw, pitch and world up.
func (c *Camera) UpdateOrientation() {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)

	front := mgl32.Vec3{
		cos(yaw) * cos(pitch),
		sin(pitch),
		sin(yaw) * cos(pitch),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

// Move translates the camera by Speed*elapsed along the given direction.
// Up and Down follow the world vertical, not the camera's tilted up.
func (c *Camera) Move(dir Direction, elapsed float32) {
	velocity := c.Speed * elapsed

	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	case Up:
		c.Position = c.Position.Add(c.WorldUp.Mul(velocity))
	case Down:
		c.Position = c.Position.Sub(c.WorldUp.Mul(velocity))
	}
}

// Look turns the camera by cursor deltas. Positive yDelta looks up.
func (c *Camera) Look(xDelta, yDelta float32) {
	c.Yaw += xDelta * c.Sensitivity
	c.Pitch = clampPitch(c.Pitch + yDelta*c.Sensitivity)
	c.UpdateOrientation()
}

// ZoomBy narrows the field of view by scrollDelta degrees.
func (c *Camera) ZoomBy(scrollDelta float32) {
	c.Zoom = mgl32.Clamp(c.Zoom-scrollDelta, MinZoom, MaxZoom)
}

// SetSpeed sets the movement speed in world units per second.
func (c *Camera) SetSpeed(speed float32) {
	c.Speed = speed
}

// ViewMatrix returns a right-handed look-at matrix.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func clampPitch(p float32) float32 {
	return mgl32.Clamp(p, -PitchLimit, PitchLimit)
}

func sin(rad float32) float32 { return float32(gomath.Sin(float64(rad))) }
func cos(rad float32) float32 { return float32(gomath.Cos(float64(rad))) }
