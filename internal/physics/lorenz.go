// Package physics defines the Lorenz system and its fixed-step integration.
//
// The Lorenz equations
//
//	dx = sigma*(y - x)
//	dy = x*(rho - z) - y
//	dz = x*y - beta*z
//
// produce chaotic trajectories for the classic parameter values
// sigma=10, beta=8/3, rho=28.
package physics

import "github.com/stepanmracek/lorenz/internal/geom"

// Documented defaults restored by "reset params".
const (
	DefaultSigma = 10.0
	DefaultBeta  = 8.0 / 3.0
	DefaultRho   = 28.0
	DefaultDt    = 0.005
)

// Derive evaluates the Lorenz vector field at p. Pure function.
func Derive(p geom.Vec3, sigma, beta, rho float64) geom.Vec3 {
	return geom.Vec3{
		X: sigma * (p.Y - p.X),
		Y: p.X*(rho-p.Z) - p.Y,
		Z: p.X*p.Y - beta*p.Z,
	}
}

// Integrate advances p by one explicit Euler step of size dt.
// Deterministic for identical inputs; no adaptive step-size control.
func Integrate(p geom.Vec3, sigma, beta, rho, dt float64) geom.Vec3 {
	return p.Add(Derive(p, sigma, beta, rho).Scale(dt))
}
