package lighting

import (
	"github.com/go-gl/mathgl/mgl32"
)

// MaxLights is the number of light slots the scene shader declares.
const MaxLights = 8

// Kind selects how a light illuminates. The values are what the shader
// reads from lights[i].type.
type Kind int32

const (
	Directional Kind = iota
	Point
	Spot
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Directional:
		return "directional"
	case Point:
		return "point"
	case Spot:
		return "spot"
	}
	return "unknown"
}

// Light describes one light slot. Direction is used by directional and spot
// lights; Position and attenuation by point and spot lights; the cut-off
// cosines only by spot lights.
type Light struct {
	Kind    Kind
	Enabled bool

	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3

	Direction mgl32.Vec3
	Position  mgl32.Vec3

	Constant  float32
	Linear    float32
	Quadratic float32

	CutOff      float32
	OuterCutOff float32
}

// HasPosition reports whether the light uses Position and attenuation.
func (l Light) HasPosition() bool {
	return l.Kind == Point || l.Kind == Spot
}

// HasDirection reports whether the light uses Direction.
func (l Light) HasDirection() bool {
	return l.Kind == Directional || l.Kind == Spot
}

// HouseLights returns the fixed lighting rig of the house scene: a sun plus
// porch, garage and fill point lights.
func HouseLights() []Light {
	return []Light{
		{
			Kind:      Directional,
			Enabled:   true,
			Direction: mgl32.Vec3{-0.7, -0.5, -0.5}.Normalize(),
			Ambient:   mgl32.Vec3{0.2, 0.2, 0.25},
			Diffuse:   mgl32.Vec3{0.9, 0.85, 0.7},
			Specular:  mgl32.Vec3{1.0, 0.95, 0.8},
		},
		{
			Kind:      Point,
			Enabled:   true,
			Position:  mgl32.Vec3{-0.5, 3.5, 3.5},
			Ambient:   mgl32.Vec3{0.1, 0.1, 0.08},
			Diffuse:   mgl32.Vec3{0.8, 0.75, 0.5},
			Specular:  mgl32.Vec3{0.9, 0.85, 0.7},
			Constant:  1.0,
			Linear:    0.09,
			Quadratic: 0.032,
		},
		{
			Kind:      Point,
			Enabled:   true,
			Position:  mgl32.Vec3{-4.0, 3.0, 4.5},
			Ambient:   mgl32.Vec3{0.08, 0.08, 0.1},
			Diffuse:   mgl32.Vec3{0.7, 0.7, 0.8},
			Specular:  mgl32.Vec3{0.8, 0.8, 0.9},
			Constant:  1.0,
			Linear:    0.07,
			Quadratic: 0.017,
		},
		{
			Kind:      Point,
			Enabled:   true,
			Position:  mgl32.Vec3{8.0, 10.0, 5.0},
			Ambient:   mgl32.Vec3{0.15, 0.15, 0.2},
			Diffuse:   mgl32.Vec3{0.4, 0.4, 0.5},
			Specular:  mgl32.Vec3{0.2, 0.2, 0.3},
			Constant:  1.0,
			Linear:    0.014,
			Quadratic: 0.0007,
		},
	}
}
