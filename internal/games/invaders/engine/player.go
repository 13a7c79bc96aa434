package engine

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// BuffKind identifies a timed power-up effect. Pickups carry the kind
// they grant.
type BuffKind int

const (
	BuffNone BuffKind = iota
	BuffTripleShot
	BuffRapidFire
	BuffShield
)

// PowerUpKinds lists the kinds a pickup can grant, in roll order.
var PowerUpKinds = [...]BuffKind{BuffTripleShot, BuffRapidFire, BuffShield}

// String returns the name of the buff kind.
func (k BuffKind) String() string {
	switch k {
	case BuffNone:
		return "None"
	case BuffTripleShot:
		return "TripleShot"
	case BuffRapidFire:
		return "RapidFire"
	case BuffShield:
		return "Shield"
	default:
		return "Unknown"
	}
}

// Label returns the HUD caption for the buff kind.
func (k BuffKind) Label() string {
	switch k {
	case BuffTripleShot:
		return "TRIPLE SHOT"
	case BuffRapidFire:
		return "RAPID FIRE"
	case BuffShield:
		return "SHIELD"
	default:
		return ""
	}
}

// Glyph returns the display character for a pickup of this kind.
func (k BuffKind) Glyph() rune {
	switch k {
	case BuffTripleShot:
		return 'T'
	case BuffRapidFire:
		return 'R'
	case BuffShield:
		return 'S'
	default:
		return '?'
	}
}

// Buff is the single timed effect a player can hold.
type Buff struct {
	Kind   BuffKind
	Expiry time.Duration
}

// Active reports whether a buff is held.
func (b Buff) Active() bool {
	return b.Kind != BuffNone
}

// Player is the ship. Bounds is its position and collision box.
type Player struct {
	Bounds core.Rect
	Speed  float64
	Buff   Buff

	lastFiredAt time.Duration
	fired       bool

	screen       config.InvadersScreen
	rules        config.InvadersPlayer
	shot         config.InvadersProjectile
	buffDuration time.Duration
}

// NewPlayer creates a ship at its starting position.
func NewPlayer(cfg config.InvadersConfig) *Player {
	p := &Player{
		screen:       cfg.Screen,
		rules:        cfg.Player,
		shot:         cfg.Projectile,
		buffDuration: cfg.PowerUp.Duration,
	}
	p.Reset()
	return p
}

// Reset returns the ship to its spawn point with no buff and no fire history.
func (p *Player) Reset() {
	p.Bounds = core.NewRect(
		p.screen.Width/2-p.rules.Width/2,
		p.screen.Height-p.rules.BottomOffset,
		p.rules.Width,
		p.rules.Height,
	)
	p.Speed = p.rules.Speed
	p.Buff = Buff{}
	p.lastFiredAt = 0
	p.fired = false
}

// MoveLeft moves the ship left, stopping at the screen edge.
func (p *Player) MoveLeft() {
	p.Bounds.X = core.ClampF(p.Bounds.X-p.Speed, 0, p.screen.Width-p.Bounds.W)
}

// MoveRight moves the ship right, stopping at the screen edge.
func (p *Player) MoveRight() {
	p.Bounds.X = core.ClampF(p.Bounds.X+p.Speed, 0, p.screen.Width-p.Bounds.W)
}

// Cooldown returns the minimum time between shots under the current buff.
func (p *Player) Cooldown() time.Duration {
	if p.Buff.Kind == BuffRapidFire {
		return p.rules.RapidCooldown
	}
	return p.rules.Cooldown
}

// CanFire reports whether the cooldown has elapsed at now.
func (p *Player) CanFire(now time.Duration) bool {
	return !p.fired || now-p.lastFiredAt >= p.Cooldown()
}

// Fire returns the projectiles of one volley, or nil while cooling down.
func (p *Player) Fire(now time.Duration) []Projectile {
	if !p.CanFire(now) {
		return nil
	}
	p.lastFiredAt = now
	p.fired = true

	x := p.Bounds.X + p.Bounds.W/2 - p.shot.Width/2
	y := p.Bounds.Y
	center := p.newShot(x, y, 0)
	if p.Buff.Kind != BuffTripleShot {
		return []Projectile{center}
	}
	return []Projectile{
		center,
		p.newShot(x-p.shot.SpreadOffset, y, -p.shot.SpreadAngle),
		p.newShot(x+p.shot.SpreadOffset, y, p.shot.SpreadAngle),
	}
}

func (p *Player) newShot(x, y, angle float64) Projectile {
	return Projectile{
		Bounds: core.NewRect(x, y, p.shot.Width, p.shot.Height),
		Speed:  p.shot.Speed,
		Angle:  angle,
	}
}

// ActivateBuff replaces any held buff with kind, expiring one buff
// duration after now.
func (p *Player) ActivateBuff(kind BuffKind, now time.Duration) {
	p.Buff = Buff{Kind: kind, Expiry: now + p.buffDuration}
}

// TickBuffs clears the buff once now is past its expiry.
func (p *Player) TickBuffs(now time.Duration) {
	if p.Buff.Active() && now > p.Buff.Expiry {
		p.Buff = Buff{}
	}
}

// BuffRemaining returns the time left on the held buff, or zero.
func (p *Player) BuffRemaining(now time.Duration) time.Duration {
	if !p.Buff.Active() || now >= p.Buff.Expiry {
		return 0
	}
	return p.Buff.Expiry - now
}

// Shielded reports whether enemy projectiles are absorbed.
func (p *Player) Shielded() bool {
	return p.Buff.Kind == BuffShield
}
