package engine

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestProjectileAdvance(t *testing.T) {
	up := Projectile{Bounds: core.NewRect(100, 300, 4, 10), Speed: 7}
	up.Advance()
	if up.Bounds.X != 100 || up.Bounds.Y != 293 {
		t.Errorf("straight shot at (%v, %v), expected (100, 293)", up.Bounds.X, up.Bounds.Y)
	}

	angled := Projectile{Bounds: core.NewRect(100, 300, 4, 10), Speed: 7, Angle: 0.2}
	angled.Advance()
	if math.Abs(angled.Bounds.X-101.4) > 1e-9 || angled.Bounds.Y != 293 {
		t.Errorf("angled shot at (%v, %v), expected (101.4, 293)", angled.Bounds.X, angled.Bounds.Y)
	}

	down := Projectile{Bounds: core.NewRect(100, 300, 4, 10), Speed: -7}
	down.Advance()
	if down.Bounds.Y != 307 || !down.Hostile() {
		t.Errorf("enemy shot at y %v, expected 307 and hostile", down.Bounds.Y)
	}
}

func TestProjectileIsOffScreen(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 400, 300, false},
		{"top edge", 400, 0, false},
		{"above top", 400, -0.5, true},
		{"below bottom", 400, 600.5, true},
		{"left of screen", -1, 300, true},
		{"right of screen", 801, 300, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Projectile{Bounds: core.NewRect(tc.x, tc.y, 4, 10)}
			if got := p.IsOffScreen(800, 600); got != tc.expected {
				t.Errorf("IsOffScreen() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPowerUpAdvance(t *testing.T) {
	p := PowerUp{Bounds: core.NewRect(10, 595, 30, 30), Kind: BuffShield, FallSpeed: 2}
	p.Advance(0.2)
	if p.Bounds.Y != 597 || p.Pulse != 0.2 {
		t.Errorf("pickup at y %v pulse %v, expected 597 and 0.2", p.Bounds.Y, p.Pulse)
	}
	if p.IsOffScreen(600) {
		t.Error("pickup still above the bottom should stay")
	}
	p.Advance(0.2)
	p.Advance(0.2)
	if !p.IsOffScreen(600) {
		t.Error("pickup past the bottom should be off screen")
	}
}
