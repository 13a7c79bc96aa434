// Package engine is the deterministic Space Invaders simulation.
//
// A Simulation advances one fixed step per Tick. It never reads a clock:
// callers pass the simulation time, so equal seeds and equal command
// streams always produce equal snapshots.
package engine

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// cosmeticSeedMix separates the starfield RNG stream from gameplay rolls.
const cosmeticSeedMix = 0x5DEECE66D

// Simulation owns every entity collection and the game phase.
type Simulation struct {
	cfg config.InvadersConfig

	rng      *SimpleRNG // Enemy fire and power-up drops
	cosmetic *SimpleRNG // Starfield only

	player     *Player
	shots      *Arena[Projectile] // Player projectiles
	enemyShots *Arena[Projectile]
	formation  *Formation
	pickups    *Arena[PowerUp]
	stars      *Starfield

	score   int
	phase   Phase
	victory bool
	tick    uint64
	now     time.Duration

	queue  []Command
	events []core.Event
}

// New creates a simulation in the Playing phase. The config is expected
// to be valid; see config.InvadersConfig.Validate.
func New(cfg config.InvadersConfig, seed int64) *Simulation {
	cosmetic := NewSimpleRNG(seed ^ cosmeticSeedMix)
	return &Simulation{
		cfg:        cfg,
		rng:        NewSimpleRNG(seed),
		cosmetic:   cosmetic,
		player:     NewPlayer(cfg),
		shots:      NewArena[Projectile](32),
		enemyShots: NewArena[Projectile](32),
		formation:  NewFormation(cfg),
		pickups:    NewArena[PowerUp](8),
		stars:      NewStarfield(cfg, cosmetic),
		phase:      PhasePlaying,
	}
}

// Submit queues a command for the next Tick.
func (s *Simulation) Submit(cmd Command) error {
	if !cmd.Valid() {
		return ErrUnknownCommand
	}
	s.queue = append(s.queue, cmd)
	return nil
}

// Tick advances the simulation to now, applying queued commands followed
// by cmds. Unknown commands in cmds are ignored. After game over only
// CommandRestart has any effect.
func (s *Simulation) Tick(now time.Duration, cmds ...Command) {
	pending := append(s.queue, cmds...)
	s.queue = s.queue[:0]

	if s.phase == PhaseGameOver {
		for _, cmd := range pending {
			if cmd == CommandRestart {
				s.restart()
				return
			}
		}
		return
	}

	s.tick++
	s.now = now

	for _, cmd := range pending {
		s.apply(cmd, now)
	}

	s.stars.Advance()
	s.player.TickBuffs(now)
	s.advanceProjectiles(s.shots)
	s.advanceProjectiles(s.enemyShots)
	s.advancePickups()

	s.formation.Advance()
	if p, ok := s.formation.MaybeFire(s.rng); ok {
		s.enemyShots.Insert(p)
	}

	hit := s.resolve(now)

	s.shots.Compact()
	s.enemyShots.Compact()
	s.pickups.Compact()
	s.formation.Units().Compact()

	// An empty formation is a victory even if the ship was hit this tick.
	switch {
	case s.formation.Empty():
		s.end(true)
	case hit || s.formation.Reached(s.player.Bounds.Y):
		s.end(false)
	}
}

func (s *Simulation) apply(cmd Command, now time.Duration) {
	switch cmd {
	case CommandMoveLeft:
		s.player.MoveLeft()
	case CommandMoveRight:
		s.player.MoveRight()
	case CommandFire:
		volley := s.player.Fire(now)
		for _, p := range volley {
			s.shots.Insert(p)
		}
		if len(volley) > 0 {
			s.emit(core.EventShotFired)
		}
	}
}

func (s *Simulation) advanceProjectiles(a *Arena[Projectile]) {
	w, h := s.cfg.Screen.Width, s.cfg.Screen.Height
	a.Each(func(id ID, p *Projectile) bool {
		p.Advance()
		if p.IsOffScreen(w, h) {
			a.Remove(id)
		}
		return true
	})
}

func (s *Simulation) advancePickups() {
	h := s.cfg.Screen.Height
	s.pickups.Each(func(id ID, p *PowerUp) bool {
		p.Advance(s.cfg.PowerUp.PulseStep)
		if p.IsOffScreen(h) {
			s.pickups.Remove(id)
		}
		return true
	})
}

// end moves to GameOver and reports it once.
func (s *Simulation) end(victory bool) {
	if s.phase == PhaseGameOver {
		return
	}
	s.phase = PhaseGameOver
	s.victory = victory
	s.emit(core.EventGameEnded)
}

// restart resets every collection in place. RNG streams continue.
func (s *Simulation) restart() {
	s.player.Reset()
	s.shots.Reset()
	s.enemyShots.Reset()
	s.pickups.Reset()
	s.formation.Populate()
	s.stars.Populate()
	s.score = 0
	s.phase = PhasePlaying
	s.victory = false
	s.tick = 0
	s.now = 0
}

func (s *Simulation) emit(e core.Event) {
	s.events = append(s.events, e)
}

// Events returns and clears the events emitted since the last call.
func (s *Simulation) Events() []core.Event {
	if len(s.events) == 0 {
		return nil
	}
	out := s.events
	s.events = nil
	return out
}

// Score returns the current score.
func (s *Simulation) Score() int {
	return s.score
}

// Phase returns the current phase.
func (s *Simulation) Phase() Phase {
	return s.phase
}

// GameOver reports whether the game has ended.
func (s *Simulation) GameOver() bool {
	return s.phase == PhaseGameOver
}

// Victory reports whether the ended game was won.
func (s *Simulation) Victory() bool {
	return s.victory
}

// TickCount returns the number of ticks played since start or restart.
func (s *Simulation) TickCount() uint64 {
	return s.tick
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() config.InvadersConfig {
	return s.cfg
}
