package debug

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type fakeReader struct {
	pixels []byte
	err    error
}

func (r fakeReader) ReadPixels(width, height int) ([]byte, error) {
	return r.pixels, r.err
}

func fixedClock() time.Time {
	return time.Date(2024, 3, 9, 14, 5, 6, 7e6, time.UTC)
}

func newTestScreenshots(t *testing.T) (*Screenshots, string) {
	dir := filepath.Join(t.TempDir(), "shots")
	s := NewScreenshots(dir, "houseview")
	s.now = fixedClock
	return s, dir
}

func TestSaveFlipsRows(t *testing.T) {
	s, dir := newTestScreenshots(t)

	// Two rows, bottom row first as GL returns them: red bottom, green top.
	pixels := []byte{
		255, 0, 0, 255,
		0, 255, 0, 255,
	}
	path, err := s.Save(pixels, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Dir(path) != dir || !strings.HasPrefix(filepath.Base(path), "houseview_2024-03-09_14-05-06.007") {
		t.Errorf("unexpected path %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 1, 2) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if _, g, _, _ := img.At(0, 0).RGBA(); g == 0 {
		t.Error("top pixel should be green")
	}
	if r, _, _, _ := img.At(0, 1).RGBA(); r == 0 {
		t.Error("bottom pixel should be red")
	}
}

func TestSaveDoesNotOverwrite(t *testing.T) {
	s, _ := newTestScreenshots(t)
	px := make([]byte, 4)

	first, err := s.Save(px, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Save(px, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Errorf("second capture overwrote %s", first)
	}
}

func TestSaveRejectsBadInput(t *testing.T) {
	s, _ := newTestScreenshots(t)
	if _, err := s.Save(make([]byte, 3), 1, 1); err == nil {
		t.Error("expected size mismatch error")
	}
	if _, err := s.Save(nil, 0, 0); err == nil {
		t.Error("expected invalid size error")
	}
}

func TestCapture(t *testing.T) {
	s, _ := newTestScreenshots(t)

	if _, err := s.Capture(fakeReader{err: errors.New("no context")}, 1, 1); err == nil {
		t.Error("expected reader error")
	}
	path, err := s.Capture(fakeReader{pixels: make([]byte, 2*2*4)}, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("capture not written: %v", err)
	}
}
