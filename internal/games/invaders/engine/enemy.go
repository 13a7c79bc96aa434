package engine

import "github.com/vovakirdan/tui-invaders/internal/core"

// Enemy is one unit of the formation.
type Enemy struct {
	Bounds    core.Rect
	Direction float64 // +1 moving right, -1 moving left
	Row, Col  int     // Grid cell the unit spawned in
}

// Advance moves the unit horizontally by speed in its direction.
func (e *Enemy) Advance(speed float64) {
	e.Bounds = e.Bounds.Translate(speed*e.Direction, 0)
}

// AtEdge reports whether the unit touches either side of the screen.
func (e Enemy) AtEdge(screenW float64) bool {
	return e.Bounds.X <= 0 || e.Bounds.X >= screenW-e.Bounds.W
}

// DropAndReverse moves the unit down by step and flips its direction.
func (e *Enemy) DropAndReverse(step float64) {
	e.Bounds = e.Bounds.Translate(0, step)
	e.Direction = -e.Direction
}
