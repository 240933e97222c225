package shader

import "github.com/go-gl/mathgl/mgl32"

// Sink receives named uniform writes for the next draw call. Writes are
// fire-and-forget: an unknown name is ignored by the implementation.
type Sink interface {
	SetBool(name string, v bool)
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetVec2(name string, v mgl32.Vec2)
	SetVec3(name string, v mgl32.Vec3)
	SetVec4(name string, v mgl32.Vec4)
	SetMat4(name string, v mgl32.Mat4)
	SetSampler2D(name string, slot int32)
}

// Uniform names shared by the scene shaders and the host code.
const (
	UniformModel        = "model"
	UniformView         = "view"
	UniformProjection   = "projection"
	UniformViewPosition = "viewPosition"
	UniformObjectColor  = "objectColor"
	UniformTexture      = "objectTexture"
	UniformUseTexture   = "useTexture"
	UniformUseLighting  = "useLighting"
	UniformUVScale      = "uvScale"
	UniformNumLights    = "numLights"
)
