package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image types understood by DecodeTGA.
const (
	tgaTrueColor    = 2
	tgaGray         = 3
	tgaTrueColorRLE = 10
	tgaGrayRLE      = 11
)

var errTGATruncated = errors.New("tga: truncated data")

// DecodeTGA decodes uncompressed or RLE true-colour (24/32 bit) and
// grayscale (8 bit) TGA files. Gray files decode to *image.Gray.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < 18 {
		return nil, errTGATruncated
	}

	idLen := int(data[0])
	if data[1] != 0 {
		return nil, errors.New("tga: colour-mapped images not supported")
	}
	kind := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topDown := data[17]&0x20 != 0

	gray := kind == tgaGray || kind == tgaGrayRLE
	rle := kind == tgaTrueColorRLE || kind == tgaGrayRLE
	switch {
	case kind != tgaTrueColor && kind != tgaTrueColorRLE && !gray:
		return nil, fmt.Errorf("tga: unsupported image type %d", kind)
	case gray && bpp != 8:
		return nil, fmt.Errorf("tga: unsupported gray depth %d", bpp)
	case !gray && bpp != 24 && bpp != 32:
		return nil, fmt.Errorf("tga: unsupported colour depth %d", bpp)
	}

	if 18+idLen > len(data) {
		return nil, errTGATruncated
	}
	src := data[18+idLen:]
	size := bpp / 8

	pixels, err := tgaPixels(src, width*height, size, rle)
	if err != nil {
		return nil, err
	}

	rect := image.Rect(0, 0, width, height)
	var gimg *image.Gray
	var cimg *image.NRGBA
	if gray {
		gimg = image.NewGray(rect)
	} else {
		cimg = image.NewNRGBA(rect)
	}

	for p := 0; p < width*height; p++ {
		x, y := p%width, p/width
		if !topDown {
			y = height - 1 - y
		}
		px := pixels[p*size : p*size+size]
		if gray {
			gimg.SetGray(x, y, color.Gray{Y: px[0]})
			continue
		}
		a := uint8(255)
		if size == 4 {
			a = px[3]
		}
		cimg.SetNRGBA(x, y, color.NRGBA{R: px[2], G: px[1], B: px[0], A: a})
	}

	if gray {
		return gimg, nil
	}
	return cimg, nil
}

// tgaPixels returns count raw pixels of size bytes, expanding RLE packets.
func tgaPixels(src []byte, count, size int, rle bool) ([]byte, error) {
	if !rle {
		if len(src) < count*size {
			return nil, errTGATruncated
		}
		return src[:count*size], nil
	}

	out := make([]byte, 0, count*size)
	for i := 0; len(out) < count*size; {
		if i >= len(src) {
			return nil, errTGATruncated
		}
		header := src[i]
		i++
		n := int(header&0x7f) + 1

		if header&0x80 != 0 {
			if i+size > len(src) {
				return nil, errTGATruncated
			}
			for ; n > 0; n-- {
				out = append(out, src[i:i+size]...)
			}
			i += size
			continue
		}

		if i+n*size > len(src) {
			return nil, errTGATruncated
		}
		out = append(out, src[i:i+n*size]...)
		i += n * size
	}
	return out[:count*size], nil
}
