// Package lighting holds the scene's materials and fixed light slots and
// publishes them as shader uniforms.
package lighting

import (
	"fmt"

	"github.com/Faultbox/houseview/internal/engine/shader"
)

// Registry owns the material list and the light slots. It is filled once
// during scene preparation and only read while rendering.
type Registry struct {
	materials []Material
	defined   bool
	lights    [MaxLights]Light
	numLights int
}

// NewRegistry returns an empty registry with every light slot disabled.
func NewRegistry() *Registry {
	return &Registry{}
}

// AddLight fills the next free slot. It returns false when all slots are used.
func (r *Registry) AddLight(l Light) bool {
	if r.numLights >= MaxLights {
		return false
	}
	r.lights[r.numLights] = l
	r.numLights++
	return true
}

// SetupLights replaces the light slots with the house lighting rig.
func (r *Registry) SetupLights() {
	r.ClearLights()
	for _, l := range HouseLights() {
		r.AddLight(l)
	}
}

// ClearLights disables every slot.
func (r *Registry) ClearLights() {
	r.lights = [MaxLights]Light{}
	r.numLights = 0
}

// Lights returns the populated slots.
func (r *Registry) Lights() []Light {
	return r.lights[:r.numLights]
}

// EnableLighting turns shading on and publishes the light slots.
func (r *Registry) EnableLighting(sink shader.Sink) {
	if sink == nil {
		return
	}
	sink.SetBool(shader.UniformUseLighting, true)
	r.PublishLights(sink)
}

// DisableLighting turns shading off; objects render with their raw colour.
func (r *Registry) DisableLighting(sink shader.Sink) {
	if sink == nil {
		return
	}
	sink.SetBool(shader.UniformUseLighting, false)
}

// PublishLights writes numLights and each populated slot to sink. A
// disabled slot only has its enabled flag written.
func (r *Registry) PublishLights(sink shader.Sink) {
	if sink == nil {
		return
	}
	sink.SetInt(shader.UniformNumLights, int32(r.numLights))

	for i, l := range r.Lights() {
		base := fmt.Sprintf("lights[%d].", i)
		sink.SetBool(base+"enabled", l.Enabled)
		if !l.Enabled {
			continue
		}

		sink.SetInt(base+"type", int32(l.Kind))
		sink.SetVec3(base+"ambientColor", l.Ambient)
		sink.SetVec3(base+"diffuseColor", l.Diffuse)
		sink.SetVec3(base+"specularColor", l.Specular)

		if l.HasPosition() {
			sink.SetVec3(base+"position", l.Position)
			sink.SetFloat(base+"constant", l.Constant)
			sink.SetFloat(base+"linear", l.Linear)
			sink.SetFloat(base+"quadratic", l.Quadratic)
		}
		if l.HasDirection() {
			sink.SetVec3(base+"direction", l.Direction)
		}
		if l.Kind == Spot {
			sink.SetFloat(base+"cutOff", l.CutOff)
			sink.SetFloat(base+"outerCutOff", l.OuterCutOff)
		}
	}
}

// PublishMaterial writes the material registered under tag. It returns
// false, writing nothing, when the tag is unknown or sink is nil.
func (r *Registry) PublishMaterial(sink shader.Sink, tag string) bool {
	if sink == nil {
		return false
	}
	m, ok := r.FindMaterial(tag)
	if !ok {
		return false
	}
	sink.SetFloat("material.ambientStrength", m.AmbientStrength)
	sink.SetVec3("material.ambientColor", m.Ambient)
	sink.SetVec3("material.diffuseColor", m.Diffuse)
	sink.SetVec3("material.specularColor", m.Specular)
	sink.SetFloat("material.shininess", m.Shininess)
	return true
}
