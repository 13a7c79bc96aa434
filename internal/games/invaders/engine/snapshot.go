package engine

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ProjectileView is a read-only projectile for renderers.
type ProjectileView struct {
	ID      ID
	Bounds  core.Rect
	Angle   float64
	Hostile bool
}

// EnemyView is a read-only enemy for renderers.
type EnemyView struct {
	ID       ID
	Bounds   core.Rect
	Row, Col int
}

// PowerUpView is a read-only pickup for renderers.
type PowerUpView struct {
	ID     ID
	Bounds core.Rect
	Kind   BuffKind
	Pulse  float64
}

// Snapshot is a copy of the complete simulation state after a tick.
// It shares no memory with the simulation.
type Snapshot struct {
	Tick    uint64
	Now     time.Duration
	Score   int
	Phase   Phase
	Victory bool

	Player        core.Rect
	Buff          BuffKind
	BuffRemaining time.Duration
	CanFire       bool

	Shots      []ProjectileView // Player projectiles
	EnemyShots []ProjectileView
	Enemies    []EnemyView
	PowerUps   []PowerUpView
	Stars      []Star

	RNGState uint64
}

// Snapshot returns the current state.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          s.tick,
		Now:           s.now,
		Score:         s.score,
		Phase:         s.phase,
		Victory:       s.victory,
		Player:        s.player.Bounds,
		Buff:          s.player.Buff.Kind,
		BuffRemaining: s.player.BuffRemaining(s.now),
		CanFire:       s.player.CanFire(s.now),
		Shots:         projectileViews(s.shots),
		EnemyShots:    projectileViews(s.enemyShots),
		Enemies:       make([]EnemyView, 0, s.formation.Len()),
		PowerUps:      make([]PowerUpView, 0, s.pickups.Len()),
		Stars:         append([]Star(nil), s.stars.Stars()...),
		RNGState:      s.rng.State(),
	}

	s.formation.Units().Each(func(id ID, e *Enemy) bool {
		snap.Enemies = append(snap.Enemies, EnemyView{ID: id, Bounds: e.Bounds, Row: e.Row, Col: e.Col})
		return true
	})
	s.pickups.Each(func(id ID, p *PowerUp) bool {
		snap.PowerUps = append(snap.PowerUps, PowerUpView{ID: id, Bounds: p.Bounds, Kind: p.Kind, Pulse: p.Pulse})
		return true
	})
	return snap
}

func projectileViews(a *Arena[Projectile]) []ProjectileView {
	out := make([]ProjectileView, 0, a.Len())
	a.Each(func(id ID, p *Projectile) bool {
		out = append(out, ProjectileView{ID: id, Bounds: p.Bounds, Angle: p.Angle, Hostile: p.Hostile()})
		return true
	})
	return out
}

// Hash returns an FNV-1a digest of the snapshot, for determinism checks.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	buf := make([]byte, 0, 512)

	u := func(v uint64) { buf = binary.LittleEndian.AppendUint64(buf, v) }
	f := func(v float64) { u(math.Float64bits(v)) }
	rect := func(r core.Rect) {
		f(r.X)
		f(r.Y)
		f(r.W)
		f(r.H)
	}
	flag := func(b bool) {
		if b {
			u(1)
		} else {
			u(0)
		}
	}

	u(s.Tick)
	u(uint64(s.Now))   //#nosec G115 -- bit pattern only
	u(uint64(s.Score)) //#nosec G115 -- bit pattern only
	u(uint64(s.Phase)) //#nosec G115 -- bit pattern only
	flag(s.Victory)
	rect(s.Player)
	u(uint64(s.Buff))          //#nosec G115 -- bit pattern only
	u(uint64(s.BuffRemaining)) //#nosec G115 -- bit pattern only
	flag(s.CanFire)
	u(s.RNGState)

	for _, list := range [][]ProjectileView{s.Shots, s.EnemyShots} {
		u(uint64(len(list)))
		for _, p := range list {
			u(uint64(p.ID))
			rect(p.Bounds)
			f(p.Angle)
		}
	}
	u(uint64(len(s.Enemies)))
	for _, e := range s.Enemies {
		u(uint64(e.ID))
		rect(e.Bounds)
		u(uint64(e.Row)) //#nosec G115 -- bit pattern only
		u(uint64(e.Col)) //#nosec G115 -- bit pattern only
	}
	u(uint64(len(s.PowerUps)))
	for _, p := range s.PowerUps {
		u(uint64(p.ID))
		rect(p.Bounds)
		u(uint64(p.Kind)) //#nosec G115 -- bit pattern only
		f(p.Pulse)
	}
	u(uint64(len(s.Stars)))
	for _, st := range s.Stars {
		f(st.X)
		f(st.Y)
		f(st.Speed)
		u(uint64(st.Brightness)) //#nosec G115 -- bit pattern only
	}

	_, _ = h.Write(buf)
	return h.Sum64()
}

// Player returns a copy of the ship state.
func (s *Simulation) Player() Player {
	return *s.player
}
