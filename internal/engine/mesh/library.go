package mesh

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/houseview/internal/logger"
)

// Device uploads geometry and issues draw calls.
type Device interface {
	Upload(g Geometry) (Handle, error)
	Draw(h Handle)
	Release(h Handle)
}

// Handle identifies uploaded geometry.
type Handle struct {
	VAO   uint32
	VBO   uint32
	Count int32
}

// Library keeps at most one uploaded copy of each primitive.
type Library struct {
	device Device
	meshes map[Kind]Handle
}

// NewLibrary creates an empty library backed by device.
func NewLibrary(device Device) *Library {
	return &Library{
		device: device,
		meshes: make(map[Kind]Handle),
	}
}

// Load builds and uploads kind. Loading a kind twice is a no-op.
func (l *Library) Load(kind Kind) error {
	if _, ok := l.meshes[kind]; ok {
		return nil
	}
	g, err := Build(kind)
	if err != nil {
		return err
	}
	h, err := l.device.Upload(g)
	if err != nil {
		return fmt.Errorf("uploading %s: %w", kind, err)
	}
	l.meshes[kind] = h
	logger.Debug("mesh loaded", zap.Stringer("kind", kind), zap.Int32("vertices", h.Count))
	return nil
}

// LoadAll loads every primitive.
func (l *Library) LoadAll() error {
	for _, k := range Kinds {
		if err := l.Load(k); err != nil {
			return err
		}
	}
	return nil
}

// Loaded reports whether kind has been uploaded.
func (l *Library) Loaded(kind Kind) bool {
	_, ok := l.meshes[kind]
	return ok
}

// Draw draws kind with whatever shader state is current. It returns false
// when kind was never loaded.
func (l *Library) Draw(kind Kind) bool {
	h, ok := l.meshes[kind]
	if !ok {
		return false
	}
	l.device.Draw(h)
	return true
}

// Close releases every uploaded mesh.
func (l *Library) Close() {
	for _, k := range Kinds {
		if h, ok := l.meshes[k]; ok {
			l.device.Release(h)
			delete(l.meshes, k)
		}
	}
}
