package viz

import (
	"math"

	"github.com/stepanmracek/lorenz/internal/camera"
	"github.com/stepanmracek/lorenz/internal/geom"
)

const nearPlane = 0.1

// Projector maps world-space points through an orbit camera view onto
// canvas sub-pixel coordinates.
type Projector struct {
	eye, right, up, forward geom.Vec3
	focal                   float64
	subW, subH              int
}

func NewProjector(cam *camera.Orbit, c *Canvas) *Projector {
	eye, target, worldUp := cam.View()
	forward := target.Sub(eye).Normalize()
	right := forward.Cross(worldUp).Normalize()
	up := right.Cross(forward).Normalize()

	return &Projector{
		eye:     eye,
		right:   right,
		up:      up,
		forward: forward,
		focal:   1.0 / math.Tan(math.Pi/8), // 45 degree vertical fov
		subW:    c.Width * 2,
		subH:    c.Height * 4,
	}
}

// Project returns canvas sub-pixel coordinates for p, and whether the
// point is in front of the near plane.
func (pr *Projector) Project(p geom.Vec3) (int, int, bool) {
	rel := p.Sub(pr.eye)
	cz := rel.Dot(pr.forward)
	if cz < nearPlane {
		return 0, 0, false
	}
	cx := rel.Dot(pr.right) / cz * pr.focal
	cy := rel.Dot(pr.up) / cz * pr.focal

	// Terminal cells are roughly twice as tall as wide; braille sub-pixels
	// (2x4) nearly cancel that out, so a uniform scale is close enough.
	scale := float64(pr.subH) / 2
	x := int(cx*scale) + pr.subW/2
	y := pr.subH/2 - int(cy*scale)
	return x, y, true
}
