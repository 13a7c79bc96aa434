package engine

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// resolve runs the three collision passes in fixed order and reports
// whether an enemy projectile hit the unshielded ship.
func (s *Simulation) resolve(now time.Duration) bool {
	s.resolvePlayerShots()
	hit := s.resolveEnemyShots()
	s.resolvePickups(now)
	return hit
}

// resolvePlayerShots destroys each player projectile together with the
// first enemy it overlaps. A projectile destroys at most one enemy.
func (s *Simulation) resolvePlayerShots() {
	units := s.formation.Units()
	s.shots.Each(func(shotID ID, p *Projectile) bool {
		units.Each(func(enemyID ID, e *Enemy) bool {
			if !p.Bounds.Intersects(e.Bounds) {
				return true
			}
			s.shots.Remove(shotID)
			units.Remove(enemyID)
			s.score += s.cfg.Scoring.EnemyPoints
			s.emit(core.EventEnemyHit)
			s.rollDrop(e.Bounds.X, e.Bounds.Y)
			return false
		})
		return true
	})
}

// rollDrop maybe spawns a pickup of a uniformly chosen kind at (x, y).
func (s *Simulation) rollDrop(x, y float64) {
	pu := s.cfg.PowerUp
	if pu.DropChance <= 0 || s.rng.Intn(100) >= pu.DropChance {
		return
	}
	s.pickups.Insert(PowerUp{
		Bounds:    core.NewRect(x, y, pu.Width, pu.Height),
		Kind:      PowerUpKinds[s.rng.Intn(len(PowerUpKinds))],
		FallSpeed: pu.FallSpeed,
	})
}

// resolveEnemyShots checks enemy projectiles against the ship. A shield
// absorbs each hit. The first unshielded hit stops the pass and is
// returned; the projectile stays where it struck.
func (s *Simulation) resolveEnemyShots() bool {
	hit := false
	s.enemyShots.Each(func(id ID, p *Projectile) bool {
		if !p.Bounds.Intersects(s.player.Bounds) {
			return true
		}
		if !s.player.Shielded() {
			hit = true
			return false
		}
		s.enemyShots.Remove(id)
		s.emit(core.EventShieldBlocked)
		return true
	})
	return hit
}

// resolvePickups grants the buff of every pickup touching the ship.
func (s *Simulation) resolvePickups(now time.Duration) {
	s.pickups.Each(func(id ID, p *PowerUp) bool {
		if !p.Bounds.Intersects(s.player.Bounds) {
			return true
		}
		s.pickups.Remove(id)
		s.player.ActivateBuff(p.Kind, now)
		s.emit(core.EventPowerUpCollected)
		return true
	})
}
