package scene

import "github.com/go-gl/gl/v4.1-core/gl"

// GLState applies render state to the current GL context.
type GLState struct{}

// EnableDepthTest turns on depth testing with a less-or-equal comparison,
// so coplanar overlays drawn later win.
func (GLState) EnableDepthTest() {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
}
