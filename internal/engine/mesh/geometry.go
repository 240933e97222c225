// Package mesh builds and draws the primitive shapes the scene is made of.
package mesh

import (
	"fmt"
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Kind identifies a primitive shape.
type Kind int

const (
	Plane Kind = iota
	Box
	Cylinder
	Prism
	Pyramid3
)

// Kinds lists every primitive in a stable order.
var Kinds = []Kind{Plane, Box, Cylinder, Prism, Pyramid3}

// String returns the shape name.
func (k Kind) String() string {
	switch k {
	case Plane:
		return "plane"
	case Box:
		return "box"
	case Cylinder:
		return "cylinder"
	case Prism:
		return "prism"
	case Pyramid3:
		return "pyramid3"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Vertex layout: position(3) normal(3) uv(2).
const (
	FloatsPerVertex = 8
	Stride          = FloatsPerVertex * 4
)

// CylinderSegments is the number of side facets of the cylinder.
const CylinderSegments = 36

// Geometry is a non-indexed triangle list in the vertex layout above.
type Geometry struct {
	Vertices []float32
}

// VertexCount returns the number of vertices.
func (g Geometry) VertexCount() int {
	return len(g.Vertices) / FloatsPerVertex
}

// Position returns the position of vertex i.
func (g Geometry) Position(i int) mgl32.Vec3 {
	o := i * FloatsPerVertex
	return mgl32.Vec3{g.Vertices[o], g.Vertices[o+1], g.Vertices[o+2]}
}

// Normal returns the normal of vertex i.
func (g Geometry) Normal(i int) mgl32.Vec3 {
	o := i*FloatsPerVertex + 3
	return mgl32.Vec3{g.Vertices[o], g.Vertices[o+1], g.Vertices[o+2]}
}

// Build generates the geometry for kind. Shapes are unit sized: the plane
// spans [-1,1] on X and Z at y=0, the cylinder has radius 1 on y in [0,1],
// and the box, prism and pyramid fit the [-0.5,0.5] cube.
func Build(kind Kind) (Geometry, error) {
	var b builder
	switch kind {
	case Plane:
		b.quadFace(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1})
	case Box:
		buildBox(&b)
	case Cylinder:
		buildCylinder(&b, CylinderSegments)
	case Prism:
		buildPrism(&b)
	case Pyramid3:
		buildPyramid3(&b)
	default:
		return Geometry{}, fmt.Errorf("unknown mesh kind %d", int(kind))
	}
	return Geometry{Vertices: b.data}, nil
}

type builder struct {
	data []float32
}

func (b *builder) vertex(p, n mgl32.Vec3, uv mgl32.Vec2) {
	b.data = append(b.data, p[0], p[1], p[2], n[0], n[1], n[2], uv[0], uv[1])
}

// tri adds a flat-shaded counter-clockwise triangle.
func (b *builder) tri(p0, p1, p2 mgl32.Vec3, uv0, uv1, uv2 mgl32.Vec2) {
	n := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
	b.vertex(p0, n, uv0)
	b.vertex(p1, n, uv1)
	b.vertex(p2, n, uv2)
}

// quad adds a flat counter-clockwise quad as two triangles.
func (b *builder) quad(p0, p1, p2, p3 mgl32.Vec3) {
	uv0, uv1, uv2, uv3 := mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{0, 1}
	b.tri(p0, p1, p2, uv0, uv1, uv2)
	b.tri(p0, p2, p3, uv0, uv2, uv3)
}

// quadFace adds the quad center±u±v. Its normal is along u×v.
func (b *builder) quadFace(center, u, v mgl32.Vec3) {
	b.quad(
		center.Sub(u).Sub(v),
		center.Add(u).Sub(v),
		center.Add(u).Add(v),
		center.Sub(u).Add(v),
	)
}

func buildBox(b *builder) {
	const h = 0.5
	faces := []struct{ n, u, v mgl32.Vec3 }{
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	}
	for _, f := range faces {
		b.quadFace(f.n.Mul(h), f.u.Mul(h), f.v.Mul(h))
	}
}

// buildPrism extrudes the triangle (-0.5,-0.5) (0.5,-0.5) (0,0.5) along Z,
// so the ridge runs along Z.
func buildPrism(b *builder) {
	const h = 0.5
	af, bf, cf := mgl32.Vec3{-h, -h, h}, mgl32.Vec3{h, -h, h}, mgl32.Vec3{0, h, h}
	ab, bb, cb := mgl32.Vec3{-h, -h, -h}, mgl32.Vec3{h, -h, -h}, mgl32.Vec3{0, h, -h}

	b.tri(af, bf, cf, mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, mgl32.Vec2{0.5, 1})
	b.tri(ab, cb, bb, mgl32.Vec2{1, 0}, mgl32.Vec2{0.5, 1}, mgl32.Vec2{0, 0})
	b.quadFace(mgl32.Vec3{0, -h, 0}, mgl32.Vec3{h, 0, 0}, mgl32.Vec3{0, 0, h})
	b.quad(bf, bb, cb, cf)
	b.quad(ab, af, cf, cb)
}

// buildPyramid3 is a tetrahedron with its base on y=-0.5 and apex at y=0.5.
func buildPyramid3(b *builder) {
	const h = 0.5
	a, bp, c := mgl32.Vec3{-h, -h, h}, mgl32.Vec3{h, -h, h}, mgl32.Vec3{0, -h, -h}
	apex := mgl32.Vec3{0, h, 0}
	base0, base1, top := mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, mgl32.Vec2{0.5, 1}

	b.tri(a, c, bp, base0, top, base1)
	b.tri(a, bp, apex, base0, base1, top)
	b.tri(bp, c, apex, base0, base1, top)
	b.tri(c, a, apex, base0, base1, top)
}

// buildCylinder makes a capped cylinder with smooth side normals.
func buildCylinder(b *builder, segments int) {
	ring := func(i int) (float32, float32) {
		theta := 2 * gomath.Pi * float64(i) / float64(segments)
		return float32(gomath.Cos(theta)), float32(gomath.Sin(theta))
	}

	top, bottom := mgl32.Vec3{0, 1, 0}, mgl32.Vec3{}
	up, down := mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, -1, 0}
	mid := mgl32.Vec2{0.5, 0.5}

	for i := 0; i < segments; i++ {
		x0, z0 := ring(i)
		x1, z1 := ring(i + 1)
		u0 := float32(i) / float32(segments)
		u1 := float32(i+1) / float32(segments)

		b0, b1 := mgl32.Vec3{x0, 0, z0}, mgl32.Vec3{x1, 0, z1}
		t0, t1 := mgl32.Vec3{x0, 1, z0}, mgl32.Vec3{x1, 1, z1}
		n0, n1 := mgl32.Vec3{x0, 0, z0}, mgl32.Vec3{x1, 0, z1}

		// side, wound outward
		b.vertex(b1, n1, mgl32.Vec2{u1, 0})
		b.vertex(b0, n0, mgl32.Vec2{u0, 0})
		b.vertex(t0, n0, mgl32.Vec2{u0, 1})
		b.vertex(b1, n1, mgl32.Vec2{u1, 0})
		b.vertex(t0, n0, mgl32.Vec2{u0, 1})
		b.vertex(t1, n1, mgl32.Vec2{u1, 1})

		capUV := func(x, z float32) mgl32.Vec2 { return mgl32.Vec2{0.5 + x*0.5, 0.5 + z*0.5} }

		b.vertex(top, up, mid)
		b.vertex(t1, up, capUV(x1, z1))
		b.vertex(t0, up, capUV(x0, z0))

		b.vertex(bottom, down, mid)
		b.vertex(b0, down, capUV(x0, z0))
		b.vertex(b1, down, capUV(x1, z1))
	}
}
