package window

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Handler receives pointer and resize events.
type Handler interface {
	OnCursor(x, y float32)
	OnScroll(dx, dy float32)
	OnResize(width, height int)
}

// PollEvents drains the SDL event queue into h. It returns true when the
// window was asked to close.
func (w *Window) PollEvents(h Handler) bool {
	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED && h != nil {
				fw, fh := w.DrawableSize()
				h.OnResize(fw, fh)
			}

		case *sdl.MouseMotionEvent:
			w.cursorX += float32(e.XRel)
			w.cursorY += float32(e.YRel)
			if h != nil {
				h.OnCursor(w.cursorX, w.cursorY)
			}

		case *sdl.MouseWheelEvent:
			dx, dy := float32(e.X), float32(e.Y)
			if e.Direction == uint32(sdl.MOUSEWHEEL_FLIPPED) {
				dx, dy = -dx, -dy
			}
			if h != nil {
				h.OnScroll(dx, dy)
			}
		}
	}
	return quit
}
