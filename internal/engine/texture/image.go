// Package texture loads image files into GPU textures and keeps the
// tag → handle → texture unit registry the scene binds from.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/tiff" // TIFF decoder registration
	_ "golang.org/x/image/webp" // WebP decoder registration
)

// Image is a decoded, tightly packed pixel buffer. Row 0 is the bottom row
// of the picture, matching OpenGL's texture origin.
type Image struct {
	Pix      []byte
	Width    int
	Height   int
	Channels int
}

// Decoder turns a file path into pixels.
type Decoder interface {
	Decode(path string) (*Image, error)
}

// FileDecoder reads images from disk. JPEG and PNG come from the standard
// library, BMP/TIFF/WebP from golang.org/x/image, and TGA is handled by
// DecodeTGA.
type FileDecoder struct{}

// Decode implements Decoder.
func (FileDecoder) Decode(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var img image.Image
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		img, err = DecodeTGA(data)
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return FromImage(img), nil
}

// FromImage packs img into an Image, flipped vertically. Gray images keep
// one channel, opaque colour images three, everything else four.
func FromImage(img image.Image) *Image {
	b := img.Bounds()
	channels := ChannelCount(img)
	out := &Image{
		Pix:      make([]byte, b.Dx()*b.Dy()*channels),
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: channels,
	}

	i := 0
	for y := b.Max.Y - 1; y >= b.Min.Y; y-- {
		for x := b.Min.X; x < b.Max.X; x++ {
			if channels == 1 {
				out.Pix[i] = color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
				i++
				continue
			}
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			out.Pix[i], out.Pix[i+1], out.Pix[i+2] = c.R, c.G, c.B
			if channels == 4 {
				out.Pix[i+3] = c.A
			}
			i += channels
		}
	}
	return out
}

// ChannelCount reports how many channels img carries.
func ChannelCount(img image.Image) int {
	switch im := img.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	case *image.Paletted:
		for _, c := range im.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return 4
			}
		}
		return 3
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return 3
	}
	return 4
}
