// Package sim owns the simulation state: live-adjustable parameters, the
// fixed start point, and the bounded trail of visited trajectory points.
package sim

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/stepanmracek/lorenz/internal/geom"
	"github.com/stepanmracek/lorenz/internal/physics"
)

// Settings are the live simulation parameters. The UI panel mutates the
// fields in place between frames; Step reads them fresh on every call.
type Settings struct {
	Sigma         float64
	Beta          float64
	Rho           float64
	Dt            float64
	TailLength    int
	StepsPerFrame int
}

// DefaultSettings returns the classic Lorenz parameters with the trail and
// step counts used by the GUI.
func DefaultSettings() Settings {
	return Settings{
		Sigma:         physics.DefaultSigma,
		Beta:          physics.DefaultBeta,
		Rho:           physics.DefaultRho,
		Dt:            physics.DefaultDt,
		TailLength:    5000,
		StepsPerFrame: 10,
	}
}

// Simulator advances a single Lorenz trajectory and keeps a bounded,
// chronologically ordered history of visited points. Single-threaded:
// all methods are called from the frame loop.
type Simulator struct {
	Settings Settings

	start geom.Vec3
	trail []geom.Vec3
}

// DefaultStart is the canonical starting point of the visualizer.
var DefaultStart = geom.Vec3{X: 0, Y: 1, Z: 1.05}

func New(start geom.Vec3, settings Settings) *Simulator {
	return &Simulator{
		Settings: settings,
		start:    start,
		trail:    []geom.Vec3{start},
	}
}

// Trail returns the visited points, oldest first. The slice is owned by the
// simulator and valid until the next Step, ResetPosition, or ResetParams.
func (s *Simulator) Trail() []geom.Vec3 { return s.trail }

// Head returns the most recently integrated point.
func (s *Simulator) Head() geom.Vec3 { return s.trail[len(s.trail)-1] }

// Step advances the trajectory by Settings.StepsPerFrame Euler steps,
// appending each point to the trail. The trail is trimmed from the front
// after every append, so a TailLength lowered by the UI takes effect
// immediately rather than one point at a time.
func (s *Simulator) Step() {
	for i := 0; i < s.Settings.StepsPerFrame; i++ {
		next := physics.Integrate(s.Head(), s.Settings.Sigma, s.Settings.Beta, s.Settings.Rho, s.Settings.Dt)
		s.trail = append(s.trail, next)
		s.evict()
	}
}

func (s *Simulator) evict() {
	limit := s.Settings.TailLength
	if limit < 1 {
		limit = 1
	}
	if excess := len(s.trail) - limit; excess > 0 {
		s.trail = append(s.trail[:0], s.trail[excess:]...)
	}
}

// ResetPosition clears the trail and reseeds it with the start point.
func (s *Simulator) ResetPosition() {
	s.trail = append(s.trail[:0], s.start)
}

// ResetParams restores sigma, beta, and rho to their defaults. Dt, the
// trail bounds, and the trail itself are left untouched.
func (s *Simulator) ResetParams() {
	s.Settings.Sigma = physics.DefaultSigma
	s.Settings.Beta = physics.DefaultBeta
	s.Settings.Rho = physics.DefaultRho
}

// Segment is one renderable piece of the trail with its fade and color hints.
type Segment struct {
	A, B    geom.Vec3
	Opacity float64
	Color   colorful.Color
}

// Segments projects the trail into line segments for rendering. The i-th
// segment out of n points fades with opacity i/n (newest most opaque), and
// is colored by local speed: hue runs from one end of the spectrum for
// slow segments to the other for fast ones. Recomputed every frame since
// both the trail and its length change.
func (s *Simulator) Segments(dst []Segment) []Segment {
	dst = dst[:0]
	n := len(s.trail)
	for i := 0; i+1 < n; i++ {
		a, b := s.trail[i], s.trail[i+1]
		d := geom.Clamp(b.Sub(a).Length(), 0, 2) / 2
		dst = append(dst, Segment{
			A:       a,
			B:       b,
			Opacity: float64(i) / float64(n),
			Color:   colorful.Hsv((1-d)*360, 1, 1),
		})
	}
	return dst
}
