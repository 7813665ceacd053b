package physics

import (
	"math"
	"testing"

	"github.com/stepanmracek/lorenz/internal/geom"
)

func TestDeriveFixedPoint(t *testing.T) {
	// The origin is a fixed point of the Lorenz system.
	d := Derive(geom.Vec3{}, DefaultSigma, DefaultBeta, DefaultRho)
	if d != (geom.Vec3{}) {
		t.Errorf("expected zero derivative at origin, got %v", d)
	}
}

func TestIntegrateDeterminism(t *testing.T) {
	p := geom.Vec3{X: 0, Y: 1, Z: 1.05}
	a := Integrate(p, DefaultSigma, DefaultBeta, DefaultRho, DefaultDt)
	b := Integrate(p, DefaultSigma, DefaultBeta, DefaultRho, DefaultDt)
	if a != b {
		t.Errorf("integration not deterministic: %v != %v", a, b)
	}
}

func TestIntegrateSeededStep(t *testing.T) {
	// One Euler step from the canonical start point with default parameters:
	//   x' = 0 + 10*(1-0)*0.005           = 0.05
	//   y' = 1 + (0*(28-1.05) - 1)*0.005  = 0.995
	//   z' = 1.05 + (0*1 - 8/3*1.05)*0.005 = 1.036
	p := Integrate(geom.Vec3{X: 0, Y: 1, Z: 1.05}, DefaultSigma, DefaultBeta, DefaultRho, DefaultDt)

	if math.Abs(p.X-0.05) > 1e-12 {
		t.Errorf("x: expected 0.05, got %.15f", p.X)
	}
	if math.Abs(p.Y-0.995) > 1e-12 {
		t.Errorf("y: expected 0.995, got %.15f", p.Y)
	}
	if math.Abs(p.Z-1.036) > 1e-12 {
		t.Errorf("z: expected 1.036, got %.15f", p.Z)
	}
}

func TestIntegrateLongRunStaysFinite(t *testing.T) {
	p := geom.Vec3{X: 0, Y: 1, Z: 1.05}
	for i := 0; i < 10000; i++ {
		p = Integrate(p, DefaultSigma, DefaultBeta, DefaultRho, DefaultDt)
	}
	if !p.IsFinite() {
		t.Errorf("trajectory diverged with default parameters: %v", p)
	}
	// The attractor is bounded well inside |p| < 100 for the classic values.
	if p.Length() > 100 {
		t.Errorf("point left the attractor region: %v", p)
	}
}
