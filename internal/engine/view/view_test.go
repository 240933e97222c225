package view

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/houseview/internal/engine/camera"
	"github.com/Faultbox/houseview/internal/engine/input"
	"github.com/Faultbox/houseview/internal/engine/shader"
	"github.com/Faultbox/houseview/internal/engine/shader/shadertest"
)

type fakeKeys map[input.Action]bool

func (k fakeKeys) Down(a input.Action) bool { return k[a] }

type fakeClock struct{ t float64 }

func (c *fakeClock) Now() float64 { return c.t }

func near(a, b float32) bool {
	d := a - b
	return d < 1e-4 && d > -1e-4
}

func vecNear(a, b mgl32.Vec3) bool {
	return near(a[0], b[0]) && near(a[1], b[1]) && near(a[2], b[2])
}

func newController() (*Controller, fakeKeys, *fakeClock, *shadertest.Recorder) {
	keys := fakeKeys{}
	clock := &fakeClock{t: 10}
	rec := shadertest.NewRecorder()
	c := New(Options{Sink: rec, Keys: keys, Clock: clock, Width: 1000, Height: 800})
	return c, keys, clock, rec
}

func TestStartsAtHome(t *testing.T) {
	c, _, _, _ := newController()
	cam := c.Camera()
	if cam.Position != HomePosition || cam.Yaw != HomeYaw || cam.Pitch != HomePitch {
		t.Errorf("start = %v yaw=%v pitch=%v", cam.Position, cam.Yaw, cam.Pitch)
	}
	if c.Mode() != Perspective {
		t.Errorf("mode = %v, want perspective", c.Mode())
	}
	if !near(c.Aspect(), 1.25) {
		t.Errorf("aspect = %v, want 1.25", c.Aspect())
	}
}

func TestFramePublishes(t *testing.T) {
	c, _, _, rec := newController()
	c.Frame()

	if rec.Last[shader.UniformView] != c.Camera().ViewMatrix() {
		t.Error("view matrix not published")
	}
	if rec.Last[shader.UniformProjection] != c.Projection() {
		t.Error("projection matrix not published")
	}
	if rec.Last[shader.UniformViewPosition] != HomePosition {
		t.Errorf("viewPosition = %v", rec.Last[shader.UniformViewPosition])
	}
}

func TestNilSinkAndKeys(t *testing.T) {
	c := New(Options{Clock: &fakeClock{}, Width: 640, Height: 480})
	c.Frame()
	c.OnScroll(0, 1)
	c.OnCursor(1, 1)
	c.Frame()
}

func TestMovementScaledByElapsed(t *testing.T) {
	c, keys, clock, _ := newController()
	front := c.Camera().Front

	keys[input.MoveForward] = true
	clock.t += 0.5
	c.Frame()

	want := HomePosition.Add(front.Mul(camera.DefaultSpeed * 0.5))
	if !vecNear(c.Camera().Position, want) {
		t.Errorf("position = %v, want %v", c.Camera().Position, want)
	}
	if !near(c.Elapsed(), 0.5) {
		t.Errorf("elapsed = %v", c.Elapsed())
	}
}

func TestUpAndDownKeys(t *testing.T) {
	c, keys, clock, _ := newController()

	keys[input.MoveUp] = true
	clock.t += 1
	c.Frame()
	if !near(c.Camera().Position.Y(), HomePosition.Y()+camera.DefaultSpeed) {
		t.Errorf("y after up = %v", c.Camera().Position.Y())
	}

	keys[input.MoveUp] = false
	keys[input.MoveDown] = true
	clock.t += 1
	c.Frame()
	if !near(c.Camera().Position.Y(), HomePosition.Y()) {
		t.Errorf("y after down = %v", c.Camera().Position.Y())
	}
}

func TestClockGoingBackwards(t *testing.T) {
	c, keys, clock, _ := newController()
	keys[input.MoveForward] = true
	clock.t -= 5
	c.Frame()
	if c.Elapsed() != 0 || c.Camera().Position != HomePosition {
		t.Errorf("elapsed=%v position=%v, want no movement", c.Elapsed(), c.Camera().Position)
	}
}

func TestFirstCursorSampleIsIgnored(t *testing.T) {
	c, _, _, _ := newController()

	c.OnCursor(900, 50)
	if c.Camera().Yaw != HomeYaw || c.Camera().Pitch != HomePitch {
		t.Fatalf("first sample moved camera: yaw=%v pitch=%v", c.Camera().Yaw, c.Camera().Pitch)
	}

	c.OnCursor(910, 40)
	if !near(c.Camera().Yaw, HomeYaw+1) {
		t.Errorf("yaw = %v, want %v", c.Camera().Yaw, HomeYaw+1)
	}
	if !near(c.Camera().Pitch, HomePitch+1) {
		t.Errorf("pitch = %v, want %v (cursor up looks up)", c.Camera().Pitch, HomePitch+1)
	}
}

func TestScrollSpeedClamp(t *testing.T) {
	c, _, _, _ := newController()

	c.OnScroll(0, 1)
	if !near(c.Speed(), 3) || !near(c.Camera().Speed, 3) {
		t.Errorf("speed = %v (camera %v), want 3", c.Speed(), c.Camera().Speed)
	}
	if c.Camera().Zoom != camera.DefaultZoom {
		t.Error("scroll must not change zoom")
	}

	for i := 0; i < 100; i++ {
		c.OnScroll(0, 1)
	}
	if c.Speed() != MaxSpeed {
		t.Errorf("speed = %v, want %v", c.Speed(), MaxSpeed)
	}

	c.OnScroll(0, -1000)
	if c.Speed() != MinSpeed {
		t.Errorf("speed = %v, want %v", c.Speed(), MinSpeed)
	}
}

func TestOrthographicSwitchFiresOncePerPress(t *testing.T) {
	c, keys, clock, _ := newController()

	keys[input.UseOrthographic] = true
	clock.t += 0.016
	c.Frame()

	if c.Mode() != Orthographic {
		t.Fatalf("mode = %v, want orthographic", c.Mode())
	}
	cam := c.Camera()
	if cam.Position != TopDownPosition || cam.Pitch != TopDownPitch || cam.Yaw != TopDownYaw {
		t.Errorf("top-down preset not applied: %v yaw=%v pitch=%v", cam.Position, cam.Yaw, cam.Pitch)
	}

	// Still held: the preset must not be applied again.
	cam.Position = mgl32.Vec3{1, 2, 3}
	clock.t += 0.016
	c.Frame()
	if cam.Position != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("held key re-applied preset, position = %v", cam.Position)
	}

	keys[input.UseOrthographic] = false
	keys[input.UsePerspective] = true
	c.Frame()
	if c.Mode() != Perspective {
		t.Errorf("mode = %v, want perspective", c.Mode())
	}
	if cam.Position != (mgl32.Vec3{1, 2, 3}) {
		t.Error("switching to perspective must not move the camera")
	}
}

func TestProjectionMatrices(t *testing.T) {
	c, keys, _, _ := newController()

	p := c.Projection()
	f := float32(1 / 0.41421356) // 1/tan(22.5deg)
	if !near(p[5], f) || !near(p[0], f/1.25) {
		t.Errorf("perspective scale = (%v, %v), want (%v, %v)", p[0], p[5], f/1.25, f)
	}

	keys[input.UseOrthographic] = true
	c.Frame()
	o := c.Projection()
	if !near(o[0], 2/(2*15*1.25)) || !near(o[5], 2.0/30) {
		t.Errorf("ortho scale = (%v, %v)", o[0], o[5])
	}
	wantDepth := -2 / (Far - Near)
	if !near(o[10], wantDepth) {
		t.Errorf("ortho depth scale = %v, want %v", o[10], wantDepth)
	}
}

func TestSetViewport(t *testing.T) {
	c, _, _, _ := newController()
	c.SetViewport(1920, 1080)
	if !near(c.Aspect(), 1920.0/1080) {
		t.Errorf("aspect = %v", c.Aspect())
	}
	c.SetViewport(1920, 0)
	if !near(c.Aspect(), 1920.0/1080) {
		t.Error("zero height must not change aspect")
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	c, keys, clock, rec := newController()

	// Wander off: move, look, speed up, go top-down, zoom.
	keys[input.MoveForward] = true
	keys[input.MoveLeft] = true
	clock.t += 2
	c.Frame()
	c.OnCursor(100, 100)
	c.OnCursor(400, -200)
	c.OnScroll(0, 6)
	c.Camera().ZoomBy(30)
	keys[input.MoveForward], keys[input.MoveLeft] = false, false
	keys[input.UseOrthographic] = true
	c.Frame()
	keys[input.UseOrthographic] = false
	c.Frame()

	keys[input.ResetView] = true
	clock.t += 0.016
	c.Frame()

	cam := c.Camera()
	if cam.Position != HomePosition || cam.Yaw != HomeYaw || cam.Pitch != HomePitch {
		t.Errorf("after reset: %v yaw=%v pitch=%v", cam.Position, cam.Yaw, cam.Pitch)
	}
	if cam.Zoom != camera.DefaultZoom || c.Speed() != camera.DefaultSpeed || cam.Speed != camera.DefaultSpeed {
		t.Errorf("after reset: zoom=%v speed=%v", cam.Zoom, c.Speed())
	}
	if c.Mode() != Perspective {
		t.Errorf("mode = %v, want perspective", c.Mode())
	}
	if rec.Last[shader.UniformViewPosition] != HomePosition {
		t.Errorf("published eye = %v", rec.Last[shader.UniformViewPosition])
	}
}
