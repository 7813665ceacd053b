// Package camera implements an orbit camera: a spherical-coordinate view
// around a movable target, driven by pointer gestures. The eye position is
// always derived from distance/yaw/pitch rather than stored, so it can
// never go stale.
package camera

import (
	"math"

	"github.com/stepanmracek/lorenz/internal/geom"
)

const (
	MinDistance = 1.0
	MaxDistance = 200.0

	// PitchLimit keeps the view away from the gimbal singularity at +-pi/2.
	PitchLimit = math.Pi/2 - 0.1
)

var worldUp = geom.Vec3{X: 0, Y: 1, Z: 0}

// Pointer is one frame's worth of pointer input, polled by the frame loop.
type Pointer struct {
	Pos       geom.Vec2
	Primary   bool // orbit button held
	Secondary bool // pan button held
	Wheel     float64
}

// Orbit holds the camera state. Create once with New; Update mutates it
// every frame the pointer is not captured by the UI.
type Orbit struct {
	Distance float64
	Yaw      float64
	Pitch    float64
	Target   geom.Vec3

	Sensitivity    float64
	PanSensitivity float64
	ZoomGain       float64

	// Last pointer samples per gesture. nil means idle, so the first frame
	// after a press establishes a baseline instead of applying a jump.
	lastOrbit *geom.Vec2
	lastPan   *geom.Vec2
}

func New() *Orbit {
	return &Orbit{
		Distance:       100,
		Sensitivity:    0.005,
		PanSensitivity: 0.001,
		ZoomGain:       5,
	}
}

// Update consumes one frame of pointer input. The caller must skip it
// entirely while the pointer is over a UI surface.
func (o *Orbit) Update(p Pointer) {
	if p.Primary {
		if last := o.lastOrbit; last != nil {
			delta := p.Pos.Sub(*last)
			o.Yaw -= delta.X * o.Sensitivity
			o.Pitch += delta.Y * o.Sensitivity
			o.Pitch = geom.Clamp(o.Pitch, -PitchLimit, PitchLimit)
		}
		pos := p.Pos
		o.lastOrbit = &pos
	} else {
		o.lastOrbit = nil
	}

	if p.Secondary {
		if last := o.lastPan; last != nil {
			delta := p.Pos.Sub(*last)
			o.pan(delta)
		}
		pos := p.Pos
		o.lastPan = &pos
	} else {
		o.lastPan = nil
	}

	o.Distance -= p.Wheel * o.ZoomGain
	o.Distance = geom.Clamp(o.Distance, MinDistance, MaxDistance)
}

// pan shifts the target in the view plane. Scaled by distance so the
// perceived speed stays the same near and far.
func (o *Orbit) pan(delta geom.Vec2) {
	forward := o.Target.Sub(o.Eye()).Normalize()
	right := forward.Cross(worldUp).Normalize()
	up := right.Cross(forward).Normalize()

	scale := o.PanSensitivity * o.Distance
	o.Target = o.Target.
		Add(right.Scale(-delta.X * scale)).
		Add(up.Scale(delta.Y * scale))
}

// Eye returns the camera position, recomputed from spherical coordinates.
func (o *Orbit) Eye() geom.Vec3 {
	return o.Target.Add(geom.Vec3{
		X: o.Distance * math.Cos(o.Pitch) * math.Sin(o.Yaw),
		Y: o.Distance * math.Sin(o.Pitch),
		Z: o.Distance * math.Cos(o.Pitch) * math.Cos(o.Yaw),
	})
}

// View returns the eye position, look-at target, and world up vector for
// the render backend. Projection is the backend's concern.
func (o *Orbit) View() (eye, target, up geom.Vec3) {
	return o.Eye(), o.Target, worldUp
}
