package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	panelWidth   = 260
	panelPadding = 10
	rowHeight    = 26
	trackHeight  = 6
	handleRadius = 7
	labelWidth   = 90
)

// Panel is a small immediate-mode widget surface: each frame the caller
// declares its sliders and buttons top to bottom between Begin and End.
// Widgets bind directly to the simulation fields they control.
type Panel struct {
	X, Y float32

	mouse  rl.Vector2
	cursor float32 // y position of the next row
	height float32 // measured last frame, used for hit testing
	active int     // 1-based row index of the slider being dragged, 0 = none
	row    int
}

// NewPanel creates a panel at (x, y). rows seeds the hit-test bounds so
// Contains works on the very first frame, before End has measured the
// real height; the measured value replaces it from then on.
func NewPanel(x, y float32, rows int) *Panel {
	return &Panel{X: x, Y: y, height: float32(rows)*rowHeight + 2*panelPadding}
}

// Contains reports whether the pointer is over the panel. Used by the
// frame loop to keep UI drags from also orbiting the camera.
func (p *Panel) Contains(mouse rl.Vector2) bool {
	return mouse.X >= p.X && mouse.X <= p.X+panelWidth &&
		mouse.Y >= p.Y && mouse.Y <= p.Y+p.height
}

func (p *Panel) Begin(mouse rl.Vector2) {
	p.mouse = mouse
	p.cursor = p.Y + panelPadding
	p.row = 0

	if !rl.IsMouseButtonDown(rl.MouseLeftButton) {
		p.active = 0
	}

	rl.DrawRectangle(int32(p.X), int32(p.Y), panelWidth, int32(p.height), ColPanel)
}

func (p *Panel) End() {
	p.height = p.cursor + panelPadding - p.Y
}

// SliderFloat draws one labeled slider row bound to v.
func (p *Panel) SliderFloat(label string, v *float64, min, max float64) {
	p.row++
	y := p.nextRow()

	trackX := p.X + panelPadding + labelWidth
	trackW := float32(panelWidth - 2*panelPadding - labelWidth)
	trackY := y + rowHeight/2 - trackHeight/2

	// Start a drag on press inside the row; keep it while the button is
	// held even if the pointer leaves the track.
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && p.hitRow(y) {
		p.active = p.row
	}
	if p.active == p.row {
		t := float64((p.mouse.X - trackX) / trackW)
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
		*v = min + t*(max-min)
	}

	frac := float32((*v - min) / (max - min))
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	rl.DrawText(label, int32(p.X+panelPadding), int32(y+5), 14, ColText)
	rl.DrawRectangle(int32(trackX), int32(trackY), int32(trackW), trackHeight, ColTrack)
	rl.DrawCircle(int32(trackX+frac*trackW), int32(y+rowHeight/2), handleRadius, ColHandle)
	rl.DrawText(fmt.Sprintf("%.2f", *v), int32(trackX), int32(y-6), 10, ColTextDim)
}

// SliderInt is SliderFloat over an integer binding.
func (p *Panel) SliderInt(label string, v *int, min, max int) {
	f := float64(*v)
	p.SliderFloat(label, &f, float64(min), float64(max))
	*v = int(f + 0.5)
	if *v < min {
		*v = min
	}
	if *v > max {
		*v = max
	}
}

// Button draws a full-width button row and reports whether it was clicked
// this frame.
func (p *Panel) Button(label string) bool {
	p.row++
	y := p.nextRow()

	hovered := p.hitRow(y)
	col := ColButton
	if hovered {
		col = ColHover
	}

	w := int32(panelWidth - 2*panelPadding)
	rl.DrawRectangle(int32(p.X+panelPadding), int32(y+2), w, rowHeight-4, col)
	tw := rl.MeasureText(label, 14)
	rl.DrawText(label, int32(p.X)+(panelWidth-tw)/2, int32(y+6), 14, ColText)

	return hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

func (p *Panel) nextRow() float32 {
	y := p.cursor
	p.cursor += rowHeight
	return y
}

func (p *Panel) hitRow(y float32) bool {
	return p.mouse.X >= p.X && p.mouse.X <= p.X+panelWidth &&
		p.mouse.Y >= y && p.mouse.Y <= y+rowHeight
}
