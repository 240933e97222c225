package lighting

import "github.com/go-gl/mathgl/mgl32"

// Material holds Phong surface coefficients addressed by tag.
type Material struct {
	Tag             string
	AmbientStrength float32
	Ambient         mgl32.Vec3
	Diffuse         mgl32.Vec3
	Specular        mgl32.Vec3
	Shininess       float32
}

// RegisterMaterial appends m. Tags are not checked for uniqueness; lookups
// return the first registration.
func (r *Registry) RegisterMaterial(m Material) {
	r.materials = append(r.materials, m)
}

// FindMaterial returns the first material registered under tag.
func (r *Registry) FindMaterial(tag string) (Material, bool) {
	for _, m := range r.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

// Materials returns the registered materials in registration order.
func (r *Registry) Materials() []Material {
	return r.materials
}

// DefineMaterials registers the house scene's material set. Only the first
// call has any effect.
func (r *Registry) DefineMaterials() {
	if r.defined {
		return
	}
	r.defined = true
	for _, m := range HouseMaterials() {
		r.RegisterMaterial(m)
	}
}

// HouseMaterials returns the materials used by the house scene.
func HouseMaterials() []Material {
	return []Material{
		{
			Tag:             "grass",
			AmbientStrength: 0.3,
			Ambient:         mgl32.Vec3{0.13, 0.55, 0.13},
			Diffuse:         mgl32.Vec3{0.13, 0.55, 0.13},
			Specular:        mgl32.Vec3{0.1, 0.1, 0.1},
			Shininess:       2,
		},
		{
			Tag:             "wood",
			AmbientStrength: 0.3,
			Ambient:         mgl32.Vec3{0.8, 0.7, 0.5},
			Diffuse:         mgl32.Vec3{0.8, 0.7, 0.5},
			Specular:        mgl32.Vec3{0.3, 0.3, 0.3},
			Shininess:       16,
		},
		{
			Tag:             "stone",
			AmbientStrength: 0.3,
			Ambient:         mgl32.Vec3{0.55, 0.27, 0.07},
			Diffuse:         mgl32.Vec3{0.55, 0.27, 0.07},
			Specular:        mgl32.Vec3{0.2, 0.2, 0.2},
			Shininess:       8,
		},
		{
			Tag:             "concrete",
			AmbientStrength: 0.3,
			Ambient:         mgl32.Vec3{0.5, 0.5, 0.5},
			Diffuse:         mgl32.Vec3{0.5, 0.5, 0.5},
			Specular:        mgl32.Vec3{0.1, 0.1, 0.1},
			Shininess:       4,
		},
		{
			Tag:             "roof",
			AmbientStrength: 0.3,
			Ambient:         mgl32.Vec3{0.3, 0.3, 0.35},
			Diffuse:         mgl32.Vec3{0.3, 0.3, 0.35},
			Specular:        mgl32.Vec3{0.2, 0.2, 0.2},
			Shininess:       8,
		},
		{
			Tag:             "window",
			AmbientStrength: 0.3,
			Ambient:         mgl32.Vec3{0.1, 0.1, 0.1},
			Diffuse:         mgl32.Vec3{0.2, 0.2, 0.3},
			Specular:        mgl32.Vec3{0.8, 0.8, 0.9},
			Shininess:       128,
		},
		{
			Tag:             "door",
			AmbientStrength: 0.3,
			Ambient:         mgl32.Vec3{0.4, 0.2, 0.1},
			Diffuse:         mgl32.Vec3{0.4, 0.2, 0.1},
			Specular:        mgl32.Vec3{0.3, 0.3, 0.3},
			Shininess:       32,
		},
	}
}
