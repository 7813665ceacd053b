package camera

import (
	"math"
	"testing"

	"github.com/stepanmracek/lorenz/internal/geom"
)

func TestZoomClamp(t *testing.T) {
	o := New()

	// Zoom in far past the near limit.
	for i := 0; i < 100; i++ {
		o.Update(Pointer{Wheel: 10})
	}
	if o.Distance != MinDistance {
		t.Errorf("expected distance clamped to %f, got %f", MinDistance, o.Distance)
	}

	// And back out past the far limit.
	for i := 0; i < 100; i++ {
		o.Update(Pointer{Wheel: -10})
	}
	if o.Distance != MaxDistance {
		t.Errorf("expected distance clamped to %f, got %f", MaxDistance, o.Distance)
	}
}

func TestPitchClamp(t *testing.T) {
	o := New()

	pos := geom.Vec2{}
	o.Update(Pointer{Pos: pos, Primary: true})
	for i := 0; i < 500; i++ {
		pos.Y += 100
		o.Update(Pointer{Pos: pos, Primary: true})
		if o.Pitch >= math.Pi/2 || o.Pitch <= -math.Pi/2 {
			t.Fatalf("pitch %f left the open interval (-pi/2, pi/2)", o.Pitch)
		}
	}
	for i := 0; i < 1000; i++ {
		pos.Y -= 100
		o.Update(Pointer{Pos: pos, Primary: true})
		if o.Pitch >= math.Pi/2 || o.Pitch <= -math.Pi/2 {
			t.Fatalf("pitch %f left the open interval (-pi/2, pi/2)", o.Pitch)
		}
	}
}

func TestOrbitDrag(t *testing.T) {
	o := New()

	o.Update(Pointer{Pos: geom.Vec2{X: 0, Y: 0}, Primary: true})
	o.Update(Pointer{Pos: geom.Vec2{X: 10, Y: 4}, Primary: true})

	wantYaw := -10 * o.Sensitivity
	wantPitch := 4 * o.Sensitivity
	if math.Abs(o.Yaw-wantYaw) > 1e-12 || math.Abs(o.Pitch-wantPitch) > 1e-12 {
		t.Errorf("expected yaw %f pitch %f, got %f %f", wantYaw, wantPitch, o.Yaw, o.Pitch)
	}
}

func TestGestureResetOnRelease(t *testing.T) {
	o := New()

	o.Update(Pointer{Pos: geom.Vec2{X: 0, Y: 0}, Primary: true})
	o.Update(Pointer{Pos: geom.Vec2{X: 10, Y: 10}, Primary: true})
	yaw, pitch := o.Yaw, o.Pitch

	// Release, move the pointer far away, press again. The first frame of
	// the new press only establishes a baseline.
	o.Update(Pointer{Pos: geom.Vec2{X: 10, Y: 10}})
	o.Update(Pointer{Pos: geom.Vec2{X: 500, Y: -300}, Primary: true})

	if o.Yaw != yaw || o.Pitch != pitch {
		t.Errorf("baseline jump on re-press: yaw %f->%f pitch %f->%f", yaw, o.Yaw, pitch, o.Pitch)
	}
}

func TestPanMovesTargetInViewPlane(t *testing.T) {
	o := New()

	// With yaw=pitch=0 the eye sits at +Z looking down -Z: right is +X in
	// world space and up is +Y, so a rightward drag moves the target
	// toward -X (pan negates dx).
	o.Update(Pointer{Pos: geom.Vec2{X: 0, Y: 0}, Secondary: true})
	o.Update(Pointer{Pos: geom.Vec2{X: 10, Y: 0}, Secondary: true})

	if o.Target.Z != 0 {
		t.Errorf("pan moved target along the view axis: %v", o.Target)
	}
	if o.Target.X == 0 {
		t.Errorf("horizontal drag did not move target sideways: %v", o.Target)
	}

	// Vertical drag moves the target along world up.
	o2 := New()
	o2.Update(Pointer{Pos: geom.Vec2{X: 0, Y: 0}, Secondary: true})
	o2.Update(Pointer{Pos: geom.Vec2{X: 0, Y: 10}, Secondary: true})
	if o2.Target.Y == 0 || o2.Target.X != 0 || o2.Target.Z != 0 {
		t.Errorf("vertical drag should move target along Y only: %v", o2.Target)
	}
}

func TestPanScalesWithDistance(t *testing.T) {
	near, far := New(), New()
	near.Distance = 10
	far.Distance = 100

	for _, o := range []*Orbit{near, far} {
		o.Update(Pointer{Pos: geom.Vec2{X: 0, Y: 0}, Secondary: true})
		o.Update(Pointer{Pos: geom.Vec2{X: 10, Y: 0}, Secondary: true})
	}

	ratio := far.Target.Sub(geom.Vec3{}).Length() / near.Target.Sub(geom.Vec3{}).Length()
	if math.Abs(ratio-10) > 1e-9 {
		t.Errorf("expected pan displacement proportional to distance, ratio %f", ratio)
	}
}

func TestEyeSphericalIdentity(t *testing.T) {
	o := New()
	o.Yaw = 0.7
	o.Pitch = -0.3
	o.Distance = 42
	o.Target = geom.Vec3{X: 1, Y: 2, Z: 3}

	eye := o.Eye()
	if math.Abs(eye.Sub(o.Target).Length()-o.Distance) > 1e-9 {
		t.Errorf("eye is not Distance away from target: %v", eye)
	}

	eye2, target, up := o.View()
	if eye2 != eye || target != o.Target || up != (geom.Vec3{X: 0, Y: 1, Z: 0}) {
		t.Error("View disagrees with Eye/Target/world up")
	}
}
