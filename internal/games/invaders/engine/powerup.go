package engine

import "github.com/vovakirdan/tui-invaders/internal/core"

// PowerUp is a falling pickup dropped by a destroyed enemy.
type PowerUp struct {
	Bounds    core.Rect
	Kind      BuffKind
	FallSpeed float64
	Pulse     float64 // Animation phase, cosmetic only
}

// Advance moves the pickup down and steps its pulse phase.
func (p *PowerUp) Advance(pulseStep float64) {
	p.Bounds = p.Bounds.Translate(0, p.FallSpeed)
	p.Pulse += pulseStep
}

// IsOffScreen reports whether the pickup fell below a world of height h.
func (p PowerUp) IsOffScreen(h float64) bool {
	return p.Bounds.Y > h
}
