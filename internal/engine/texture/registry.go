package texture

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/houseview/internal/logger"
)

// MaxSlots is the number of texture units the registry hands out.
const MaxSlots = 16

// NotFound is returned by SlotOf for an unregistered tag.
const NotFound = -1

var (
	// ErrDecode means the image file could not be read or decoded.
	ErrDecode = errors.New("texture decode failed")
	// ErrUnsupportedChannels means the image is neither RGB nor RGBA.
	ErrUnsupportedChannels = errors.New("unsupported channel count")
	// ErrSlotsExhausted means all MaxSlots texture units are taken.
	ErrSlotsExhausted = errors.New("texture slots exhausted")
)

// Device creates, binds and frees GPU textures.
type Device interface {
	Upload(img *Image) (uint32, error)
	Bind(slot int, handle uint32)
	Delete(handles []uint32)
}

// Entry is one registered texture. Slot equals registration order.
type Entry struct {
	Tag    string
	Handle uint32
	Slot   int
}

// Registry maps tags to GPU textures and texture units. It only grows
// during scene preparation; Destroy releases everything at shutdown.
type Registry struct {
	decoder Decoder
	device  Device
	entries []Entry
}

// NewRegistry creates an empty registry.
func NewRegistry(decoder Decoder, device Device) *Registry {
	return &Registry{decoder: decoder, device: device}
}

// Load decodes path and registers it under tag in the next slot. On any
// failure the registry is left unchanged.
func (r *Registry) Load(path, tag string) error {
	if len(r.entries) >= MaxSlots {
		logger.Warn("no free texture slot", zap.String("path", path), zap.String("tag", tag))
		return fmt.Errorf("%w: %s", ErrSlotsExhausted, tag)
	}

	img, err := r.decoder.Decode(path)
	if err != nil {
		logger.Warn("could not load image", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	if img.Channels != 3 && img.Channels != 4 {
		logger.Warn("image channel count not supported",
			zap.String("path", path),
			zap.Int("channels", img.Channels),
		)
		return fmt.Errorf("%w: %s has %d channels", ErrUnsupportedChannels, path, img.Channels)
	}

	handle, err := r.device.Upload(img)
	if err != nil {
		logger.Warn("texture upload failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("uploading %s: %w", path, err)
	}

	slot := len(r.entries)
	r.entries = append(r.entries, Entry{Tag: tag, Handle: handle, Slot: slot})

	logger.Info("texture loaded",
		zap.String("path", path),
		zap.String("tag", tag),
		zap.Int("width", img.Width),
		zap.Int("height", img.Height),
		zap.Int("channels", img.Channels),
		zap.Int("slot", slot),
	)
	return nil
}

// BindAll binds every texture to the unit matching its slot.
func (r *Registry) BindAll() {
	for _, e := range r.entries {
		r.device.Bind(e.Slot, e.Handle)
	}
}

// SlotOf returns the texture unit for tag, or NotFound.
func (r *Registry) SlotOf(tag string) int {
	for _, e := range r.entries {
		if e.Tag == tag {
			return e.Slot
		}
	}
	return NotFound
}

// HandleOf returns the GPU handle for tag. A miss reports false with handle
// 0, which GL never hands out as a texture name.
func (r *Registry) HandleOf(tag string) (uint32, bool) {
	for _, e := range r.entries {
		if e.Tag == tag {
			return e.Handle, true
		}
	}
	return 0, false
}

// Count returns the number of loaded textures.
func (r *Registry) Count() int {
	return len(r.entries)
}

// Destroy deletes exactly the registered handles and empties the registry.
func (r *Registry) Destroy() {
	if len(r.entries) == 0 {
		return
	}
	handles := make([]uint32, len(r.entries))
	for i, e := range r.entries {
		handles[i] = e.Handle
	}
	r.device.Delete(handles)
	r.entries = nil
}
