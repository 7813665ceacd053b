// Package viz renders the attractor in the terminal: a braille canvas,
// a perspective projection of the trail, and a bubbletea program around
// them.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/stepanmracek/lorenz/internal/camera"
	"github.com/stepanmracek/lorenz/internal/geom"
	"github.com/stepanmracek/lorenz/internal/sim"
)

const (
	canvasWidth  = 78
	canvasHeight = 22
	graphHistory = 120
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type TickMsg time.Time

// Model is the bubbletea model for the live terminal view.
type Model struct {
	sim     *sim.Simulator
	cam     *camera.Orbit
	canvas  *Canvas
	xTrace  []float64
	running bool
	fps     int
}

func NewModel(s *sim.Simulator, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	cam := camera.New()
	cam.Yaw = 0.6
	cam.Pitch = 0.3
	// Aim at the centroid of the attractor rather than the origin.
	cam.Target = geom.Vec3{Z: 25}

	return Model{
		sim:     s,
		cam:     cam,
		canvas:  NewCanvas(canvasWidth, canvasHeight),
		xTrace:  make([]float64, 0, graphHistory),
		running: true,
		fps:     fps,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.sim.ResetPosition()
		case "p":
			m.sim.ResetParams()
		case "left", "h":
			m.cam.Yaw -= 0.1
		case "right", "l":
			m.cam.Yaw += 0.1
		case "up", "k":
			m.cam.Pitch = clampPitch(m.cam.Pitch + 0.1)
		case "down", "j":
			m.cam.Pitch = clampPitch(m.cam.Pitch - 0.1)
		case "+", "=":
			m.cam.Update(camera.Pointer{Wheel: 1})
		case "-":
			m.cam.Update(camera.Pointer{Wheel: -1})
		}
		return m, nil

	case TickMsg:
		if m.running {
			m.sim.Step()
			head := m.sim.Head()
			m.xTrace = append(m.xTrace, head.X)
			if len(m.xTrace) > graphHistory {
				m.xTrace = m.xTrace[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func clampPitch(p float64) float64 {
	if p > camera.PitchLimit {
		return camera.PitchLimit
	}
	if p < -camera.PitchLimit {
		return -camera.PitchLimit
	}
	return p
}

func (m Model) View() string {
	m.canvas.Clear()
	proj := NewProjector(m.cam, m.canvas)

	trail := m.sim.Trail()
	for i := 0; i+1 < len(trail); i++ {
		x0, y0, ok0 := proj.Project(trail[i])
		x1, y1, ok1 := proj.Project(trail[i+1])
		if ok0 && ok1 {
			m.canvas.DrawLine(x0, y0, x1, y1)
		}
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("lorenz attractor"))
	if !m.running {
		b.WriteString("  " + pausedStyle.Render("PAUSED"))
	}
	b.WriteString("\n")
	b.WriteString(m.canvas.String())

	s := m.sim.Settings
	head := m.sim.Head()
	b.WriteString(labelStyle.Render("sigma ") + valueStyle.Render(fmt.Sprintf("%.2f", s.Sigma)))
	b.WriteString(labelStyle.Render("  beta ") + valueStyle.Render(fmt.Sprintf("%.2f", s.Beta)))
	b.WriteString(labelStyle.Render("  rho ") + valueStyle.Render(fmt.Sprintf("%.2f", s.Rho)))
	b.WriteString(labelStyle.Render("  head ") + valueStyle.Render(fmt.Sprintf("(%.1f, %.1f, %.1f)", head.X, head.Y, head.Z)))
	b.WriteString(labelStyle.Render("  trail ") + valueStyle.Render(fmt.Sprintf("%d", len(trail))))
	b.WriteString("\n")

	if len(m.xTrace) >= 2 {
		graph := asciigraph.Plot(m.xTrace,
			asciigraph.Height(6),
			asciigraph.Width(76),
			asciigraph.Caption("x vs time"),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("[space] pause  [r] reset position  [p] reset params  [arrows] orbit  [+/-] zoom  [q] quit"))
	return b.String()
}

// Run starts the terminal viewer and blocks until it quits.
func Run(s *sim.Simulator, fps int) error {
	p := tea.NewProgram(NewModel(s, fps))
	_, err := p.Run()
	return err
}
