// Package debug provides developer aids that sit outside the rendered scene.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/houseview/internal/logger"
)

// PixelReader reads back the current framebuffer as bottom-up RGBA rows.
type PixelReader interface {
	ReadPixels(width, height int) ([]byte, error)
}

// Screenshots writes framebuffer captures as timestamped PNG files.
type Screenshots struct {
	dir    string
	prefix string
	now    func() time.Time
}

// NewScreenshots creates a capturer writing into dir.
func NewScreenshots(dir, prefix string) *Screenshots {
	return &Screenshots{dir: dir, prefix: prefix, now: time.Now}
}

// Capture reads width×height pixels from r and saves them.
func (s *Screenshots) Capture(r PixelReader, width, height int) (string, error) {
	pixels, err := r.ReadPixels(width, height)
	if err != nil {
		return "", fmt.Errorf("reading framebuffer: %w", err)
	}
	return s.Save(pixels, width, height)
}

// Save writes bottom-up RGBA pixels as a PNG and returns the file path.
func (s *Screenshots) Save(pixels []byte, width, height int) (string, error) {
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("invalid screenshot size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	if s.dir != "" {
		if err := os.MkdirAll(s.dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		copy(img.Pix[y*img.Stride:y*img.Stride+rowSize], pixels[src:src+rowSize])
	}

	path := s.filename()
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}

	logger.Info("screenshot saved", zap.String("path", path), zap.Int("width", width), zap.Int("height", height))
	return path, nil
}

// filename picks an unused name. Captures within the same millisecond get
// a numeric suffix.
func (s *Screenshots) filename() string {
	base := fmt.Sprintf("%s_%s", s.prefix, s.now().Format("2006-01-02_15-04-05.000"))
	name := filepath.Join(s.dir, base+".png")
	for i := 1; ; i++ {
		if _, err := os.Stat(name); os.IsNotExist(err) {
			return name
		}
		name = filepath.Join(s.dir, fmt.Sprintf("%s_%d.png", base, i))
	}
}
