package engine

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Formation is the grid of enemies. All units share one sweep: when any
// unit reaches an edge, every unit drops and reverses in the same tick.
type Formation struct {
	units   *Arena[Enemy]
	rules   config.InvadersEnemy
	shot    config.InvadersProjectile
	screenW float64
}

// NewFormation creates a formation populated with the full grid.
func NewFormation(cfg config.InvadersConfig) *Formation {
	f := &Formation{
		units:   NewArena[Enemy](cfg.Enemy.Rows * cfg.Enemy.Cols),
		rules:   cfg.Enemy,
		shot:    cfg.Projectile,
		screenW: cfg.Screen.Width,
	}
	f.Populate()
	return f
}

// Populate clears the formation and spawns the grid row by row.
func (f *Formation) Populate() {
	f.units.Reset()
	for row := 0; row < f.rules.Rows; row++ {
		for col := 0; col < f.rules.Cols; col++ {
			f.units.Insert(Enemy{
				Bounds: core.NewRect(
					f.rules.OriginX+float64(col)*f.rules.SpacingX,
					f.rules.OriginY+float64(row)*f.rules.SpacingY,
					f.rules.Width,
					f.rules.Height,
				),
				Direction: 1,
				Row:       row,
				Col:       col,
			})
		}
	}
}

// Units exposes the underlying arena.
func (f *Formation) Units() *Arena[Enemy] {
	return f.units
}

// Len returns the number of live units.
func (f *Formation) Len() int {
	return f.units.Len()
}

// Empty reports whether every unit has been destroyed.
func (f *Formation) Empty() bool {
	return f.units.Len() == 0
}

// Advance moves every unit one step. If any unit ends at an edge the
// whole formation drops and reverses once. Returns whether it dropped.
func (f *Formation) Advance() bool {
	edge := false
	f.units.Each(func(_ ID, e *Enemy) bool {
		e.Advance(f.rules.Speed)
		if e.AtEdge(f.screenW) {
			edge = true
		}
		return true
	})
	if !edge {
		return false
	}
	f.units.Each(func(_ ID, e *Enemy) bool {
		e.DropAndReverse(f.rules.DropStep)
		return true
	})
	return true
}

// MaybeFire rolls for enemy fire. On success one live unit, picked
// uniformly, shoots downward from its lower centre.
func (f *Formation) MaybeFire(r Roller) (Projectile, bool) {
	if f.units.Len() == 0 || f.rules.FireChance <= 0 {
		return Projectile{}, false
	}
	if r.Intn(100) >= f.rules.FireChance {
		return Projectile{}, false
	}
	_, e, ok := f.units.Nth(r.Intn(f.units.Len()))
	if !ok {
		return Projectile{}, false
	}
	return Projectile{
		Bounds: core.NewRect(
			e.Bounds.X+e.Bounds.W/2-f.shot.Width/2,
			e.Bounds.Bottom(),
			f.shot.Width,
			f.shot.Height,
		),
		Speed: -f.shot.Speed,
	}, true
}

// Reached reports whether any unit's bottom edge is at or below y.
func (f *Formation) Reached(y float64) bool {
	reached := false
	f.units.Each(func(_ ID, e *Enemy) bool {
		if e.Bounds.Bottom() >= y {
			reached = true
			return false
		}
		return true
	})
	return reached
}
