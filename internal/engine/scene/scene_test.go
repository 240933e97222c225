package scene

import (
	"errors"
	"maps"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/houseview/internal/engine/lighting"
	"github.com/Faultbox/houseview/internal/engine/mesh"
	"github.com/Faultbox/houseview/internal/engine/shader"
	"github.com/Faultbox/houseview/internal/engine/shader/shadertest"
	"github.com/Faultbox/houseview/internal/engine/texture"
)

// fakeMeshes counts loads and snapshots the uniform state at each draw.
type fakeMeshes struct {
	loads    map[mesh.Kind]int
	draws    []mesh.Kind
	failKind mesh.Kind
	fail     bool
	closed   bool

	rec       *shadertest.Recorder
	snapshots []map[string]any
}

func newFakeMeshes(rec *shadertest.Recorder) *fakeMeshes {
	return &fakeMeshes{loads: map[mesh.Kind]int{}, rec: rec}
}

func (m *fakeMeshes) LoadAll() error {
	for _, k := range mesh.Kinds {
		if m.fail && k == m.failKind {
			return errors.New("upload failed")
		}
		m.loads[k]++
	}
	return nil
}

func (m *fakeMeshes) Draw(k mesh.Kind) bool {
	m.draws = append(m.draws, k)
	if m.rec != nil {
		m.snapshots = append(m.snapshots, maps.Clone(m.rec.Last))
	}
	return true
}

func (m *fakeMeshes) Close() { m.closed = true }

type fakeTextures struct {
	missing   map[string]bool
	tags      []string
	paths     []string
	bound     int
	destroyed bool
}

func (t *fakeTextures) Load(path, tag string) error {
	if t.missing[tag] {
		return texture.ErrDecode
	}
	t.tags = append(t.tags, tag)
	t.paths = append(t.paths, path)
	return nil
}

func (t *fakeTextures) BindAll() { t.bound++ }

func (t *fakeTextures) SlotOf(tag string) int {
	for i, have := range t.tags {
		if have == tag {
			return i
		}
	}
	return texture.NotFound
}

func (t *fakeTextures) Destroy() { t.destroyed = true }

type fakeState struct{ depth int }

func (s *fakeState) EnableDepthTest() { s.depth++ }

type fixture struct {
	scene    *Scene
	rec      *shadertest.Recorder
	meshes   *fakeMeshes
	textures *fakeTextures
	state    *fakeState
}

func newFixture(missing ...string) *fixture {
	f := &fixture{
		rec:      shadertest.NewRecorder(),
		textures: &fakeTextures{missing: map[string]bool{}},
		state:    &fakeState{},
	}
	for _, tag := range missing {
		f.textures.missing[tag] = true
	}
	f.meshes = newFakeMeshes(f.rec)
	f.scene = New(Options{
		Sink:       f.rec,
		Meshes:     f.meshes,
		Textures:   f.textures,
		State:      f.state,
		TextureDir: "assets/textures",
	})
	return f
}

func (f *fixture) snapshot(t *testing.T, name string) map[string]any {
	t.Helper()
	for i, d := range f.scene.Drawables() {
		if d.Name == name {
			return f.meshes.snapshots[i]
		}
	}
	t.Fatalf("no drawable named %q", name)
	return nil
}

const eps = 1e-5

func vecNear(a, b mgl32.Vec3) bool {
	return a.ApproxEqualThreshold(b, eps)
}

func TestModelMatrix(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		m := ModelMatrix(Drawable{Scale: mgl32.Vec3{1, 1, 1}})
		if !m.ApproxEqualThreshold(mgl32.Ident4(), eps) {
			t.Errorf("got %v", m)
		}
	})

	t.Run("scale then rotate then translate", func(t *testing.T) {
		m := ModelMatrix(Drawable{
			Scale:    mgl32.Vec3{2, 1, 1},
			Rotation: mgl32.Vec3{0, 90, 0},
			Position: mgl32.Vec3{1, 0, 0},
		})
		got := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
		if !vecNear(got, mgl32.Vec3{1, 0, -2}) {
			t.Errorf("got %v, want (1,0,-2)", got)
		}
	})

	t.Run("x rotation applied after y", func(t *testing.T) {
		m := ModelMatrix(Drawable{Scale: mgl32.Vec3{1, 1, 1}, Rotation: mgl32.Vec3{90, 90, 0}})
		got := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
		if !vecNear(got, mgl32.Vec3{0, 1, 0}) {
			t.Errorf("got %v, want (0,1,0)", got)
		}
	})

	t.Run("matches explicit product", func(t *testing.T) {
		d := Drawable{
			Scale:    mgl32.Vec3{5.5, 1.5, 5.5},
			Rotation: mgl32.Vec3{10, 90, -30},
			Position: mgl32.Vec3{-4, 3.8, 1},
		}
		want := mgl32.Translate3D(-4, 3.8, 1).
			Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(10))).
			Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(90))).
			Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(-30))).
			Mul4(mgl32.Scale3D(5.5, 1.5, 5.5))
		if !ModelMatrix(d).ApproxEqualThreshold(want, eps) {
			t.Error("model matrix differs from T*Rx*Ry*Rz*S")
		}
	})
}

func TestPrepareLoadsEachMeshOnce(t *testing.T) {
	f := newFixture()
	if err := f.scene.Prepare(); err != nil {
		t.Fatal(err)
	}
	if err := f.scene.Prepare(); err != nil {
		t.Fatal(err)
	}

	for _, k := range mesh.Kinds {
		if f.meshes.loads[k] != 1 {
			t.Errorf("%s loaded %d times, want 1", k, f.meshes.loads[k])
		}
	}
	if len(f.textures.tags) != 3 || f.textures.bound != 1 {
		t.Errorf("textures = %v bound %d times", f.textures.tags, f.textures.bound)
	}
	if f.textures.paths[0] != "assets/textures/grass.jpg" {
		t.Errorf("texture path = %s", f.textures.paths[0])
	}
	if len(f.scene.Lights().Lights()) != 4 {
		t.Errorf("lights = %d, want 4", len(f.scene.Lights().Lights()))
	}
	if _, ok := f.scene.Lights().FindMaterial("door"); !ok {
		t.Error("materials not defined")
	}
}

func TestPrepareMeshFailure(t *testing.T) {
	f := newFixture()
	f.meshes.fail, f.meshes.failKind = true, mesh.Cylinder
	if err := f.scene.Prepare(); err == nil {
		t.Fatal("expected mesh upload error")
	}
}

func TestRenderSequence(t *testing.T) {
	f := newFixture()
	f.scene.Prepare()
	f.scene.Render()

	layout := f.scene.Drawables()
	if len(f.meshes.draws) != len(layout) {
		t.Fatalf("draws = %d, want %d", len(f.meshes.draws), len(layout))
	}
	for i, d := range layout {
		if f.meshes.draws[i] != d.Mesh {
			t.Errorf("draw %d = %s, want %s", i, f.meshes.draws[i], d.Mesh)
		}
		if f.meshes.snapshots[i][shader.UniformModel] != ModelMatrix(d) {
			t.Errorf("%s: model matrix not published before draw", d.Name)
		}
	}
	if f.state.depth != 1 {
		t.Errorf("depth test enabled %d times, want 1", f.state.depth)
	}
	if f.rec.Last[shader.UniformUseLighting] != true || f.rec.Last[shader.UniformNumLights] != int32(4) {
		t.Error("lighting not enabled for the frame")
	}
}

func TestTexturedDrawable(t *testing.T) {
	f := newFixture()
	f.scene.Prepare()
	f.scene.Render()

	yard := f.snapshot(t, "yard")
	if yard[shader.UniformUseTexture] != true {
		t.Error("yard should be textured")
	}
	if yard[shader.UniformTexture] != int32(0) {
		t.Errorf("yard sampler = %v, want slot 0", yard[shader.UniformTexture])
	}
	if yard[shader.UniformUVScale] != (mgl32.Vec2{10, 10}) {
		t.Errorf("yard uvScale = %v", yard[shader.UniformUVScale])
	}

	chimney := f.snapshot(t, "chimney")
	if chimney[shader.UniformTexture] != int32(2) || chimney["material.shininess"] != float32(8) {
		t.Errorf("chimney sampler=%v shininess=%v", chimney[shader.UniformTexture], chimney["material.shininess"])
	}
}

func TestFlatColourDrawable(t *testing.T) {
	f := newFixture()
	f.scene.Prepare()
	f.scene.Render()

	door := f.snapshot(t, "front door")
	if door[shader.UniformUseTexture] != false {
		t.Error("front door should use flat colour")
	}
	if door[shader.UniformObjectColor] != (mgl32.Vec4{0.4, 0.2, 0.1, 1}) {
		t.Errorf("front door colour = %v", door[shader.UniformObjectColor])
	}
	mat, _ := f.scene.Lights().FindMaterial("door")
	if door["material.shininess"] != mat.Shininess {
		t.Errorf("front door shininess = %v, want door material", door["material.shininess"])
	}
}

func TestMissingTextureFallsBackToMaterialColour(t *testing.T) {
	f := newFixture("wood")
	f.scene.Prepare()
	f.scene.Render()

	house := f.snapshot(t, "house")
	if house[shader.UniformUseTexture] != false {
		t.Fatal("house should fall back to flat colour")
	}
	wood, _ := f.scene.Lights().FindMaterial("wood")
	if house[shader.UniformObjectColor] != wood.Diffuse.Vec4(1) {
		t.Errorf("house colour = %v, want wood diffuse", house[shader.UniformObjectColor])
	}

	// Stone loaded after the failed wood texture takes slot 1.
	skirt := f.snapshot(t, "house skirt")
	if skirt[shader.UniformTexture] != int32(1) {
		t.Errorf("stone slot = %v, want 1", skirt[shader.UniformTexture])
	}
}

func TestUnknownMaterialKeepsColour(t *testing.T) {
	rec := shadertest.NewRecorder()
	meshes := newFakeMeshes(rec)
	s := New(Options{
		Sink:     rec,
		Meshes:   meshes,
		Textures: &fakeTextures{},
		Layout: []Drawable{{
			Name: "marker", Mesh: mesh.Pyramid3, Scale: mgl32.Vec3{1, 1, 1},
			Color: mgl32.Vec4{1, 0, 0, 1}, Material: "chrome", Texture: "chrome",
		}},
		TextureSet: []TextureSource{},
	})
	s.Prepare()
	s.Render()

	snap := meshes.snapshots[0]
	if snap[shader.UniformObjectColor] != (mgl32.Vec4{1, 0, 0, 1}) || snap[shader.UniformUseTexture] != false {
		t.Errorf("snapshot = %v", snap)
	}
	if _, ok := snap["material.diffuseColor"]; ok {
		t.Error("unknown material must not publish")
	}
}

func TestNilSinkStillDraws(t *testing.T) {
	meshes := newFakeMeshes(nil)
	s := New(Options{Meshes: meshes, Textures: &fakeTextures{}, Lights: lighting.NewRegistry()})
	if err := s.Prepare(); err != nil {
		t.Fatal(err)
	}
	s.Render()
	if len(meshes.draws) != len(HouseLayout()) {
		t.Errorf("draws = %d, want %d", len(meshes.draws), len(HouseLayout()))
	}
}

func TestClose(t *testing.T) {
	f := newFixture()
	f.scene.Prepare()
	f.scene.Close()
	if !f.textures.destroyed || !f.meshes.closed {
		t.Error("Close must release textures and meshes")
	}
}

func TestPrepareAfterCloseKeepsMaterialTable(t *testing.T) {
	f := newFixture()
	if err := f.scene.Prepare(); err != nil {
		t.Fatal(err)
	}
	want := len(f.scene.Lights().Materials())
	f.scene.Close()
	if err := f.scene.Prepare(); err != nil {
		t.Fatal(err)
	}

	if got := len(f.scene.Lights().Materials()); got != want {
		t.Errorf("materials after re-prepare = %d, want %d", got, want)
	}
	if got := len(f.scene.Lights().Lights()); got != 4 {
		t.Errorf("lights after re-prepare = %d, want 4", got)
	}
	if f.meshes.loads[mesh.Box] != 2 {
		t.Errorf("box loaded %d times, want 2 after Close", f.meshes.loads[mesh.Box])
	}
}

func TestHouseLayoutReferences(t *testing.T) {
	reg := lighting.NewRegistry()
	reg.DefineMaterials()
	textures := map[string]bool{}
	for _, src := range HouseTextures() {
		textures[src.Tag] = true
	}

	layout := HouseLayout()
	if len(layout) != 15 {
		t.Errorf("layout has %d drawables, want 15", len(layout))
	}
	for _, d := range layout {
		if _, ok := reg.FindMaterial(d.Material); !ok {
			t.Errorf("%s: unknown material %q", d.Name, d.Material)
		}
		if d.Texture != "" && !textures[d.Texture] {
			t.Errorf("%s: texture %q not in the texture set", d.Name, d.Texture)
		}
		if d.Texture == "" && d.Color[3] == 0 {
			t.Errorf("%s: flat drawable without colour", d.Name)
		}
		if d.Scale[0] <= 0 || d.Scale[1] <= 0 || d.Scale[2] <= 0 {
			t.Errorf("%s: non-positive scale %v", d.Name, d.Scale)
		}
	}
}
