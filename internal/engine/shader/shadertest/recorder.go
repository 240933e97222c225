// Package shadertest provides a uniform sink that records writes, for tests
// that need to observe what host code publishes to the shader.
package shadertest

import "github.com/go-gl/mathgl/mgl32"

// Write is one recorded uniform write.
type Write struct {
	Name  string
	Value any
}

// Recorder implements shader.Sink. It keeps every write in order and the
// latest value per name.
type Recorder struct {
	Writes []Write
	Last   map[string]any
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{Last: make(map[string]any)}
}

func (r *Recorder) record(name string, v any) {
	r.Writes = append(r.Writes, Write{Name: name, Value: v})
	r.Last[name] = v
}

func (r *Recorder) SetBool(name string, v bool)          { r.record(name, v) }
func (r *Recorder) SetInt(name string, v int32)          { r.record(name, v) }
func (r *Recorder) SetFloat(name string, v float32)      { r.record(name, v) }
func (r *Recorder) SetVec2(name string, v mgl32.Vec2)    { r.record(name, v) }
func (r *Recorder) SetVec3(name string, v mgl32.Vec3)    { r.record(name, v) }
func (r *Recorder) SetVec4(name string, v mgl32.Vec4)    { r.record(name, v) }
func (r *Recorder) SetMat4(name string, v mgl32.Mat4)    { r.record(name, v) }
func (r *Recorder) SetSampler2D(name string, slot int32) { r.record(name, slot) }

// Has reports whether name was ever written.
func (r *Recorder) Has(name string) bool {
	_, ok := r.Last[name]
	return ok
}

// Count returns how many times name was written.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, w := range r.Writes {
		if w.Name == name {
			n++
		}
	}
	return n
}

// Names returns written names in order, with repeats.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.Writes))
	for i, w := range r.Writes {
		names[i] = w.Name
	}
	return names
}

// Reset clears all recorded writes.
func (r *Recorder) Reset() {
	r.Writes = r.Writes[:0]
	r.Last = make(map[string]any)
}
