package engine

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// quietConfig disables random enemy fire and pickup drops.
func quietConfig() config.InvadersConfig {
	cfg := config.DefaultInvadersConfig()
	cfg.Enemy.FireChance = 0
	cfg.PowerUp.DropChance = 0
	return cfg
}

// emptySim returns a simulation with no enemies.
func emptySim(cfg config.InvadersConfig) *Simulation {
	s := New(cfg, 1)
	s.formation.Units().Reset()
	return s
}

func countEvents(events []core.Event, want core.Event) int {
	n := 0
	for _, e := range events {
		if e == want {
			n++
		}
	}
	return n
}

func TestResolveShotDestroysAtMostOneEnemy(t *testing.T) {
	s := emptySim(quietConfig())
	units := s.formation.Units()
	units.Insert(Enemy{Bounds: core.NewRect(100, 100, 40, 30)})
	units.Insert(Enemy{Bounds: core.NewRect(100, 100, 40, 30)})
	s.shots.Insert(Projectile{Bounds: core.NewRect(110, 110, 4, 10), Speed: 7})

	s.resolvePlayerShots()

	if units.Len() != 1 {
		t.Errorf("enemies left = %d, expected 1", units.Len())
	}
	if s.shots.Len() != 0 {
		t.Error("projectile should be destroyed with its target")
	}
	if s.score != 10 {
		t.Errorf("score = %d, expected 10", s.score)
	}
	if countEvents(s.Events(), core.EventEnemyHit) != 1 {
		t.Error("expected one EnemyHit event")
	}
}

func TestResolveDeadEnemyNotRetested(t *testing.T) {
	s := emptySim(quietConfig())
	s.formation.Units().Insert(Enemy{Bounds: core.NewRect(100, 100, 40, 30)})
	s.shots.Insert(Projectile{Bounds: core.NewRect(110, 110, 4, 10), Speed: 7})
	s.shots.Insert(Projectile{Bounds: core.NewRect(112, 112, 4, 10), Speed: 7})

	s.resolvePlayerShots()

	if s.shots.Len() != 1 {
		t.Errorf("projectiles left = %d, expected 1", s.shots.Len())
	}
	if s.score != 10 {
		t.Errorf("score = %d, expected 10", s.score)
	}
}

func TestResolveForcedDrop(t *testing.T) {
	cfg := quietConfig()
	cfg.PowerUp.DropChance = 100
	s := emptySim(cfg)
	s.formation.Units().Insert(Enemy{Bounds: core.NewRect(200, 120, 40, 30)})
	s.shots.Insert(Projectile{Bounds: core.NewRect(210, 130, 4, 10), Speed: 7})

	s.resolvePlayerShots()

	if s.pickups.Len() != 1 {
		t.Fatalf("pickups = %d, expected 1", s.pickups.Len())
	}
	_, p, _ := s.pickups.Nth(0)
	if p.Bounds.X != 200 || p.Bounds.Y != 120 || p.Bounds.W != 30 || p.FallSpeed != 2 {
		t.Errorf("pickup = %+v, expected 30x30 at the enemy position falling at 2", p)
	}
	valid := false
	for _, k := range PowerUpKinds {
		if p.Kind == k {
			valid = true
		}
	}
	if !valid {
		t.Errorf("pickup kind %v is not a power-up kind", p.Kind)
	}
}

func TestResolveShieldAbsorbs(t *testing.T) {
	s := emptySim(quietConfig())
	s.player.ActivateBuff(BuffShield, 0)
	s.enemyShots.Insert(Projectile{Bounds: core.NewRect(380, 555, 4, 10), Speed: -7})
	s.enemyShots.Insert(Projectile{Bounds: core.NewRect(410, 560, 4, 10), Speed: -7})

	if s.resolveEnemyShots() {
		t.Fatal("shielded hits must not end the game")
	}
	if s.enemyShots.Len() != 0 {
		t.Errorf("absorbed projectiles left = %d, expected 0", s.enemyShots.Len())
	}
	if s.GameOver() {
		t.Error("phase should stay Playing")
	}
	if n := countEvents(s.Events(), core.EventShieldBlocked); n != 2 {
		t.Errorf("ShieldBlocked events = %d, expected 2", n)
	}
}

func TestResolveUnshieldedHitReportsLoss(t *testing.T) {
	s := emptySim(quietConfig())
	s.enemyShots.Insert(Projectile{Bounds: core.NewRect(380, 555, 4, 10), Speed: -7})
	s.enemyShots.Insert(Projectile{Bounds: core.NewRect(410, 560, 4, 10), Speed: -7})

	if !s.resolveEnemyShots() {
		t.Fatal("unshielded hit must be reported")
	}
	if s.enemyShots.Len() != 2 {
		t.Errorf("projectiles left = %d, expected both to stay in place", s.enemyShots.Len())
	}
	if s.GameOver() {
		t.Error("the phase changes at the end of the tick, not during the pass")
	}
	if countEvents(s.Events(), core.EventShieldBlocked) != 0 {
		t.Error("no shield events expected")
	}
}

func TestResolvePickupActivatesBuff(t *testing.T) {
	s := emptySim(quietConfig())
	s.pickups.Insert(PowerUp{Bounds: core.NewRect(390, 540, 30, 30), Kind: BuffTripleShot, FallSpeed: 2})
	s.pickups.Insert(PowerUp{Bounds: core.NewRect(10, 10, 30, 30), Kind: BuffShield, FallSpeed: 2})

	s.resolvePickups(5 * time.Second)

	if s.player.Buff.Kind != BuffTripleShot || s.player.Buff.Expiry != 15*time.Second {
		t.Errorf("buff = %+v, expected TripleShot until 15s", s.player.Buff)
	}
	if s.pickups.Len() != 1 {
		t.Errorf("pickups left = %d, expected 1", s.pickups.Len())
	}
	if countEvents(s.Events(), core.EventPowerUpCollected) != 1 {
		t.Error("expected one PowerUpCollected event")
	}
}

func TestResolveCollectsPickupOnLosingHit(t *testing.T) {
	s := emptySim(quietConfig())
	s.enemyShots.Insert(Projectile{Bounds: core.NewRect(380, 555, 4, 10), Speed: -7})
	s.pickups.Insert(PowerUp{Bounds: core.NewRect(390, 540, 30, 30), Kind: BuffShield})

	if !s.resolve(time.Second) {
		t.Fatal("resolve should report the hit")
	}
	if s.player.Buff.Kind != BuffShield {
		t.Errorf("buff = %v, pickups are resolved after enemy projectiles", s.player.Buff.Kind)
	}
	if s.pickups.Len() != 0 {
		t.Errorf("pickups left = %d, expected 0", s.pickups.Len())
	}
	if countEvents(s.Events(), core.EventPowerUpCollected) != 1 {
		t.Error("expected one PowerUpCollected event")
	}
}
