// Package gui is the raylib front end: window and frame loop, the
// parameter panel, and the 3D rendering of the trail.
package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/stepanmracek/lorenz/internal/camera"
	"github.com/stepanmracek/lorenz/internal/config"
	"github.com/stepanmracek/lorenz/internal/geom"
	"github.com/stepanmracek/lorenz/internal/sim"
)

// Theme colors.
var (
	ColBg      = rl.NewColor(24, 24, 28, 255)
	ColPanel   = rl.NewColor(38, 38, 44, 230)
	ColTrack   = rl.NewColor(60, 60, 68, 255)
	ColHandle  = rl.NewColor(200, 200, 210, 255)
	ColText    = rl.NewColor(200, 200, 210, 255)
	ColTextDim = rl.NewColor(120, 120, 130, 255)
	ColButton  = rl.NewColor(70, 70, 80, 255)
	ColHover   = rl.NewColor(95, 95, 110, 255)
)

type App struct {
	Sim    *sim.Simulator
	Camera *camera.Orbit
	Panel  *Panel

	fps      int32
	width    int32
	height   int32
	segments []sim.Segment
}

func NewApp(cfg *config.Config) *App {
	s := sim.New(sim.DefaultStart, sim.Settings{
		Sigma:         cfg.Simulation.Sigma,
		Beta:          cfg.Simulation.Beta,
		Rho:           cfg.Simulation.Rho,
		Dt:            cfg.Simulation.Dt,
		TailLength:    cfg.Simulation.TailLength,
		StepsPerFrame: cfg.Simulation.StepsPerFrame,
	})

	cam := camera.New()
	cam.Distance = geom.Clamp(cfg.Camera.Distance, camera.MinDistance, camera.MaxDistance)
	cam.Yaw = cfg.Camera.Yaw
	cam.Pitch = cfg.Camera.Pitch

	return &App{
		Sim:    s,
		Camera: cam,
		Panel:  NewPanel(10, 10, 7), // 5 sliders + 2 buttons
		fps:    int32(cfg.Window.FPS),
		width:  int32(cfg.Window.Width),
		height: int32(cfg.Window.Height),
	}
}

// Run opens the window and blocks in the frame loop until it is closed.
func Run(cfg *config.Config) {
	app := NewApp(cfg)

	rl.InitWindow(app.width, app.height, "Lorenz attractor")
	defer rl.CloseWindow()
	rl.SetTargetFPS(app.fps)

	for !rl.WindowShouldClose() {
		app.Frame()
	}
}

// Frame runs one tick: UI, camera input, simulation step, draw.
func (a *App) Frame() {
	mouse := rl.GetMousePosition()
	pointer := camera.Pointer{
		Pos:       geom.Vec2{X: float64(mouse.X), Y: float64(mouse.Y)},
		Primary:   rl.IsMouseButtonDown(rl.MouseLeftButton),
		Secondary: rl.IsMouseButtonDown(rl.MouseRightButton),
		Wheel:     float64(rl.GetMouseWheelMove()),
	}

	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	// The panel captures the pointer; the camera only sees input when the
	// pointer is outside every UI surface.
	if !a.Panel.Contains(mouse) {
		a.Camera.Update(pointer)
	}

	a.Sim.Step()
	a.drawScene()
	// Drawn last so the panel sits on top of the trail.
	a.drawPanel(mouse)
	a.drawHUD()

	rl.EndDrawing()
}

func (a *App) drawPanel(mouse rl.Vector2) {
	p := a.Panel
	s := &a.Sim.Settings

	p.Begin(mouse)
	p.SliderFloat("sigma", &s.Sigma, -20, 20)
	p.SliderFloat("beta", &s.Beta, -20, 20)
	p.SliderFloat("rho", &s.Rho, -20, 40)
	p.SliderInt("tail", &s.TailLength, 10, 20000)
	p.SliderInt("steps/frame", &s.StepsPerFrame, 1, 50)
	if p.Button("reset params") {
		a.Sim.ResetParams()
	}
	if p.Button("reset position") {
		a.Sim.ResetPosition()
	}
	p.End()
}

func (a *App) drawScene() {
	eye, target, up := a.Camera.View()
	cam := rl.Camera3D{
		Position:   toVector3(eye),
		Target:     toVector3(target),
		Up:         toVector3(up),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}

	rl.BeginMode3D(cam)
	rl.DrawGrid(12, 10)

	a.segments = a.Sim.Segments(a.segments)
	for _, seg := range a.segments {
		rl.DrawLine3D(toVector3(seg.A), toVector3(seg.B), segmentColor(seg))
	}
	rl.EndMode3D()
}

func (a *App) drawHUD() {
	rl.DrawText(fmt.Sprintf("%d fps", rl.GetFPS()), 10, a.height-44, 16, ColTextDim)
	rl.DrawText(fmt.Sprintf("trail %d", len(a.Sim.Trail())), 10, a.height-24, 16, ColTextDim)
	rl.DrawText("drag: orbit  right drag: pan  wheel: zoom", a.width-360, a.height-24, 16, ColTextDim)
}

// segmentColor combines the speed-based hue with the age-based fade.
func segmentColor(seg sim.Segment) rl.Color {
	r, g, b := seg.Color.RGB255()
	return rl.NewColor(r, g, b, uint8(geom.Clamp(seg.Opacity, 0, 1)*255))
}

func toVector3(v geom.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}
