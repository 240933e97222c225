// Package scene renders the fixed house scene: a list of primitive meshes,
// each placed by its own transform and shaded by a flat colour or a
// material and texture pair.
package scene

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/houseview/internal/engine/lighting"
	"github.com/Faultbox/houseview/internal/engine/mesh"
	"github.com/Faultbox/houseview/internal/engine/shader"
	"github.com/Faultbox/houseview/internal/engine/texture"
	"github.com/Faultbox/houseview/internal/logger"
)

// Meshes uploads and draws primitive shapes.
type Meshes interface {
	LoadAll() error
	Draw(kind mesh.Kind) bool
	Close()
}

// Textures owns decoded textures and their slots.
type Textures interface {
	Load(path, tag string) error
	BindAll()
	SlotOf(tag string) int
	Destroy()
}

// RenderState sets the fixed-function state a frame needs.
type RenderState interface {
	EnableDepthTest()
}

// Options configures a Scene. Nil Layout and TextureSet select the house.
type Options struct {
	Sink     shader.Sink
	Meshes   Meshes
	Textures Textures
	Lights   *lighting.Registry
	State    RenderState

	TextureDir string
	Layout     []Drawable
	TextureSet []TextureSource
}

// Scene draws a fixed sequence of drawables.
type Scene struct {
	sink     shader.Sink
	meshes   Meshes
	textures Textures
	lights   *lighting.Registry
	state    RenderState

	textureDir string
	layout     []Drawable
	textureSet []TextureSource

	prepared bool
	log      *zap.Logger
}

// New creates a scene. Call Prepare before the first Render.
func New(opts Options) *Scene {
	s := &Scene{
		sink:       opts.Sink,
		meshes:     opts.Meshes,
		textures:   opts.Textures,
		lights:     opts.Lights,
		state:      opts.State,
		textureDir: opts.TextureDir,
		layout:     opts.Layout,
		textureSet: opts.TextureSet,
		log:        logger.Named("scene"),
	}
	if s.lights == nil {
		s.lights = lighting.NewRegistry()
	}
	if s.layout == nil {
		s.layout = HouseLayout()
	}
	if s.textureSet == nil {
		s.textureSet = HouseTextures()
	}
	return s
}

// Drawables returns the draw sequence.
func (s *Scene) Drawables() []Drawable {
	return s.layout
}

// Lights returns the light and material registry.
func (s *Scene) Lights() *lighting.Registry {
	return s.lights
}

// Prepare uploads every primitive, loads and binds the texture set and
// populates materials and lights. A texture that fails to load is logged
// and the drawables using it fall back to flat colour. Only mesh upload
// failures are returned. Calling Prepare again is a no-op.
func (s *Scene) Prepare() error {
	if s.prepared {
		return nil
	}

	if err := s.meshes.LoadAll(); err != nil {
		return fmt.Errorf("preparing scene: %w", err)
	}

	loaded := 0
	for _, src := range s.textureSet {
		path := filepath.Join(s.textureDir, src.File)
		if err := s.textures.Load(path, src.Tag); err != nil {
			continue // already logged by the registry
		}
		loaded++
	}
	s.textures.BindAll()

	s.lights.DefineMaterials()
	s.lights.SetupLights()

	for _, d := range s.layout {
		if d.Material == "" {
			continue
		}
		if _, ok := s.lights.FindMaterial(d.Material); !ok {
			s.log.Warn("drawable references unknown material",
				zap.String("drawable", d.Name), zap.String("material", d.Material))
		}
	}

	s.prepared = true
	s.log.Info("scene prepared",
		zap.Int("drawables", len(s.layout)),
		zap.Int("textures", loaded),
		zap.Int("textures_failed", len(s.textureSet)-loaded),
		zap.Int("lights", len(s.lights.Lights())),
	)
	return nil
}

// Render draws every drawable in order. With a nil sink no uniforms are
// written but the draw calls are still issued.
func (s *Scene) Render() {
	if s.state != nil {
		s.state.EnableDepthTest()
	}
	s.lights.EnableLighting(s.sink)

	for i := range s.layout {
		d := &s.layout[i]
		if s.sink != nil {
			s.sink.SetMat4(shader.UniformModel, ModelMatrix(*d))
			s.applyShading(d)
		}
		s.meshes.Draw(d.Mesh)
	}
}

// applyShading selects the textured path when the drawable's texture is
// loaded, otherwise a flat colour.
func (s *Scene) applyShading(d *Drawable) {
	var (
		mat    lighting.Material
		hasMat bool
	)
	if d.Material != "" {
		mat, hasMat = s.lights.FindMaterial(d.Material)
		if hasMat {
			s.lights.PublishMaterial(s.sink, d.Material)
		}
	}

	if d.Texture != "" {
		if slot := s.textures.SlotOf(d.Texture); slot != texture.NotFound {
			uv := d.UVScale
			if uv == (mgl32.Vec2{}) {
				uv = mgl32.Vec2{1, 1}
			}
			s.sink.SetBool(shader.UniformUseTexture, true)
			s.sink.SetSampler2D(shader.UniformTexture, int32(slot))
			s.sink.SetVec2(shader.UniformUVScale, uv)
			return
		}
	}

	color := d.Color
	if color == (mgl32.Vec4{}) && hasMat {
		color = mat.Diffuse.Vec4(1)
	}
	s.sink.SetBool(shader.UniformUseTexture, false)
	s.sink.SetVec4(shader.UniformObjectColor, color)
}

// Close releases textures and meshes.
func (s *Scene) Close() {
	s.textures.Destroy()
	s.meshes.Close()
	s.prepared = false
}
