package engine

import "github.com/vovakirdan/tui-invaders/internal/core"

// Projectile is a bullet fired by the player or an enemy.
// Positive Speed moves it up the screen, negative moves it down.
type Projectile struct {
	Bounds core.Rect
	Speed  float64
	Angle  float64 // Horizontal drift per unit of vertical travel
}

// Advance moves the projectile one tick.
func (p *Projectile) Advance() {
	p.Bounds = p.Bounds.Translate(p.Speed*p.Angle, -p.Speed)
}

// IsOffScreen reports whether the projectile left a w by h world.
func (p Projectile) IsOffScreen(w, h float64) bool {
	return p.Bounds.Y < 0 || p.Bounds.Y > h || p.Bounds.X < 0 || p.Bounds.X > w
}

// Hostile reports whether the projectile was fired by an enemy.
func (p Projectile) Hostile() bool {
	return p.Speed < 0
}
