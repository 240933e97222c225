package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/houseview/internal/engine/input"
)

// DefaultBindings maps each action to its key.
var DefaultBindings = map[input.Action]sdl.Scancode{
	input.MoveForward:     sdl.SCANCODE_W,
	input.MoveBackward:    sdl.SCANCODE_S,
	input.MoveLeft:        sdl.SCANCODE_A,
	input.MoveRight:       sdl.SCANCODE_D,
	input.MoveUp:          sdl.SCANCODE_Q,
	input.MoveDown:        sdl.SCANCODE_E,
	input.UsePerspective:  sdl.SCANCODE_P,
	input.UseOrthographic: sdl.SCANCODE_O,
	input.ResetView:       sdl.SCANCODE_R,
	input.Screenshot:      sdl.SCANCODE_F12,
	input.Quit:            sdl.SCANCODE_ESCAPE,
}

// Keyboard reads the live SDL key state. It implements input.Keys.
type Keyboard struct {
	bindings map[input.Action]sdl.Scancode
}

// NewKeyboard creates a keyboard with the given bindings, or the defaults
// when bindings is nil.
func NewKeyboard(bindings map[input.Action]sdl.Scancode) *Keyboard {
	if bindings == nil {
		bindings = DefaultBindings
	}
	return &Keyboard{bindings: bindings}
}

// Down reports whether the key bound to a is held. The state reflects the
// last PollEvents call.
func (k *Keyboard) Down(a input.Action) bool {
	sc, ok := k.bindings[a]
	if !ok {
		return false
	}
	state := sdl.GetKeyboardState()
	return int(sc) < len(state) && state[sc] != 0
}

// Clock reads the SDL high resolution counter.
type Clock struct {
	freq float64
}

// NewClock creates a clock. SDL must be initialised.
func NewClock() *Clock {
	return &Clock{freq: float64(sdl.GetPerformanceFrequency())}
}

// Now returns seconds since an arbitrary fixed point.
func (c *Clock) Now() float64 {
	return float64(sdl.GetPerformanceCounter()) / c.freq
}
