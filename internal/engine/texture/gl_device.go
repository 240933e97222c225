package texture

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLDevice stores textures with repeat wrapping, linear filtering and
// mipmaps. It needs a current OpenGL context.
type GLDevice struct{}

// Upload implements Device.
func (GLDevice) Upload(img *Image) (uint32, error) {
	var internal int32
	var format uint32
	switch img.Channels {
	case 3:
		internal, format = gl.RGB8, gl.RGB
	case 4:
		internal, format = gl.RGBA8, gl.RGBA
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedChannels, img.Channels)
	}

	if len(img.Pix) == 0 {
		return 0, fmt.Errorf("empty image %dx%d", img.Width, img.Height)
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// RGB rows are not 4-byte aligned for odd widths.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(img.Width), int32(img.Height), 0,
		format, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex, nil
}

// Bind implements Device.
func (GLDevice) Bind(slot int, handle uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(slot))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

// Delete implements Device.
func (GLDevice) Delete(handles []uint32) {
	if len(handles) == 0 {
		return
	}
	gl.DeleteTextures(int32(len(handles)), &handles[0])
}
