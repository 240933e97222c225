package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/houseview/internal/engine/mesh"
)

// Drawable is one placed primitive.
type Drawable struct {
	Name string
	Mesh mesh.Kind

	Scale    mgl32.Vec3
	Rotation mgl32.Vec3 // degrees about X, Y, Z
	Position mgl32.Vec3

	// Color is used when Texture is empty or not loaded. A zero Color
	// falls back to the material's diffuse colour.
	Color    mgl32.Vec4
	Material string
	Texture  string
	UVScale  mgl32.Vec2
}

// ModelMatrix returns T·Rx·Ry·Rz·S: scale and rotate in local space, then
// place in the world.
func ModelMatrix(d Drawable) mgl32.Mat4 {
	t := mgl32.Translate3D(d.Position[0], d.Position[1], d.Position[2])
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(d.Rotation[0]))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(d.Rotation[1]))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(d.Rotation[2]))
	s := mgl32.Scale3D(d.Scale[0], d.Scale[1], d.Scale[2])
	return t.Mul4(rx).Mul4(ry).Mul4(rz).Mul4(s)
}

// TextureSource names an image file and the tag it is registered under.
type TextureSource struct {
	File string
	Tag  string
}
