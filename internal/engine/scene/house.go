package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/houseview/internal/engine/mesh"
)

// HouseTextures is the image set the house layout samples.
func HouseTextures() []TextureSource {
	return []TextureSource{
		{File: "grass.jpg", Tag: "grass"},
		{File: "wood.jpg", Tag: "wood"},
		{File: "stone.jpg", Tag: "stone"},
	}
}

var (
	roofColor   = mgl32.Vec4{0.3, 0.3, 0.35, 1}
	windowColor = mgl32.Vec4{0.1, 0.1, 0.1, 1}
)

// HouseLayout returns the house, garage and yard in draw order.
func HouseLayout() []Drawable {
	return []Drawable{
		{
			Name: "yard", Mesh: mesh.Plane,
			Scale:    mgl32.Vec3{25, 1, 20},
			Material: "grass", Texture: "grass", UVScale: mgl32.Vec2{10, 10},
		},
		{
			Name: "driveway", Mesh: mesh.Plane,
			Scale:    mgl32.Vec3{4, 1, 8},
			Position: mgl32.Vec3{-4, 0.01, 6},
			Color:    mgl32.Vec4{0.5, 0.5, 0.5, 1}, Material: "concrete",
		},
		{
			Name: "house", Mesh: mesh.Box,
			Scale:    mgl32.Vec3{8, 4, 6},
			Position: mgl32.Vec3{2, 2, 0},
			Material: "wood", Texture: "wood", UVScale: mgl32.Vec2{4, 3},
		},
		{
			Name: "house skirt", Mesh: mesh.Box,
			Scale:    mgl32.Vec3{8.2, 1, 6.2},
			Position: mgl32.Vec3{2, 0.5, 0},
			Material: "stone", Texture: "stone", UVScale: mgl32.Vec2{3, 1},
		},
		{
			Name: "garage", Mesh: mesh.Box,
			Scale:    mgl32.Vec3{5, 3.5, 5},
			Position: mgl32.Vec3{-4, 1.75, 1},
			Material: "wood", Texture: "wood", UVScale: mgl32.Vec2{3, 2.5},
		},
		{
			Name: "garage skirt", Mesh: mesh.Box,
			Scale:    mgl32.Vec3{5.2, 0.8, 5.2},
			Position: mgl32.Vec3{-4, 0.4, 1},
			Material: "stone", Texture: "stone", UVScale: mgl32.Vec2{2.5, 0.8},
		},
		{
			Name: "garage door", Mesh: mesh.Box,
			Scale:    mgl32.Vec3{3.5, 2.5, 0.1},
			Position: mgl32.Vec3{-4, 1.25, 3.6},
			Color:    mgl32.Vec4{0.9, 0.9, 0.9, 1}, Material: "door",
		},
		{
			Name: "roof", Mesh: mesh.Prism,
			Scale:    mgl32.Vec3{8.5, 2, 7},
			Position: mgl32.Vec3{2, 4.5, 0},
			Color:    roofColor, Material: "roof",
		},
		{
			Name: "garage roof", Mesh: mesh.Prism,
			Scale:    mgl32.Vec3{5.5, 1.5, 5.5},
			Rotation: mgl32.Vec3{0, 90, 0},
			Position: mgl32.Vec3{-4, 3.8, 1},
			Color:    roofColor, Material: "roof",
		},
		{
			Name: "front door", Mesh: mesh.Box,
			Scale:    mgl32.Vec3{0.8, 2, 0.1},
			Position: mgl32.Vec3{-0.5, 1.5, 3.1},
			Color:    mgl32.Vec4{0.4, 0.2, 0.1, 1}, Material: "door",
		},
		{
			Name: "window left", Mesh: mesh.Box,
			Scale:    mgl32.Vec3{1.2, 1, 0.1},
			Position: mgl32.Vec3{-1, 2, 3.1},
			Color:    windowColor, Material: "window",
		},
		{
			Name: "window upper", Mesh: mesh.Box,
			Scale:    mgl32.Vec3{1.5, 1, 0.1},
			Position: mgl32.Vec3{3.5, 3, 3.1},
			Color:    windowColor, Material: "window",
		},
		{
			Name: "window right", Mesh: mesh.Box,
			Scale:    mgl32.Vec3{2, 1.5, 0.1},
			Position: mgl32.Vec3{5, 2, 3.1},
			Color:    windowColor, Material: "window",
		},
		{
			Name: "chimney", Mesh: mesh.Cylinder,
			Scale:    mgl32.Vec3{0.4, 2, 0.4},
			Position: mgl32.Vec3{4, 5, -1},
			Material: "stone", Texture: "stone", UVScale: mgl32.Vec2{1, 2},
		},
		{
			Name: "sidewalk", Mesh: mesh.Plane,
			Scale:    mgl32.Vec3{1.5, 1, 4},
			Position: mgl32.Vec3{0.5, 0.01, 5},
			Color:    mgl32.Vec4{0.6, 0.6, 0.6, 1}, Material: "concrete",
		},
	}
}
