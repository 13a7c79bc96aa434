// Package config provides YAML-based game configuration loading
// for the invaders platform.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid invaders config")

// InvadersConfig contains all configuration for Space Invaders.
// World units are abstract pixels; the renderer scales them to the terminal.
type InvadersConfig struct {
	Screen     InvadersScreen     `yaml:"screen"`
	Player     InvadersPlayer     `yaml:"player"`
	Projectile InvadersProjectile `yaml:"projectile"`
	Enemy      InvadersEnemy      `yaml:"enemy"`
	PowerUp    InvadersPowerUp    `yaml:"powerup"`
	Starfield  InvadersStarfield  `yaml:"starfield"`
	Scoring    InvadersScoring    `yaml:"scoring"`
	Controls   InvadersControls   `yaml:"controls"`
}

// InvadersScreen defines the world size.
type InvadersScreen struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// InvadersPlayer defines the ship and its fire rate.
type InvadersPlayer struct {
	Width         float64       `yaml:"width"`
	Height        float64       `yaml:"height"`
	Speed         float64       `yaml:"speed"`
	BottomOffset  float64       `yaml:"bottom_offset"` // Distance from ship top to world bottom
	Cooldown      time.Duration `yaml:"cooldown"`
	RapidCooldown time.Duration `yaml:"rapid_cooldown"`
}

// InvadersProjectile defines bullets for both sides.
type InvadersProjectile struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	SpreadOffset float64 `yaml:"spread_offset"` // Triple shot side bullet x offset
	SpreadAngle  float64 `yaml:"spread_angle"`  // Triple shot side bullet drift
}

// InvadersEnemy defines the formation grid and its movement.
type InvadersEnemy struct {
	Rows       int     `yaml:"rows"`
	Cols       int     `yaml:"cols"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	OriginX    float64 `yaml:"origin_x"`
	OriginY    float64 `yaml:"origin_y"`
	SpacingX   float64 `yaml:"spacing_x"`
	SpacingY   float64 `yaml:"spacing_y"`
	Speed      float64 `yaml:"speed"`
	DropStep   float64 `yaml:"drop_step"`
	FireChance int     `yaml:"fire_chance"` // Percent per tick that one enemy fires
}

// InvadersPowerUp defines pickups and buff duration.
type InvadersPowerUp struct {
	Width      float64       `yaml:"width"`
	Height     float64       `yaml:"height"`
	FallSpeed  float64       `yaml:"fall_speed"`
	PulseStep  float64       `yaml:"pulse_step"`
	DropChance int           `yaml:"drop_chance"` // Percent per destroyed enemy
	Duration   time.Duration `yaml:"duration"`
}

// InvadersStarfield defines the cosmetic background.
type InvadersStarfield struct {
	Count         int     `yaml:"count"`
	MinSpeed      float64 `yaml:"min_speed"`
	MaxSpeed      float64 `yaml:"max_speed"`
	MinBrightness int     `yaml:"min_brightness"`
	MaxBrightness int     `yaml:"max_brightness"`
}

// InvadersScoring defines points.
type InvadersScoring struct {
	EnemyPoints int `yaml:"enemy_points"`
}

// InvadersControls defines platform input handling.
type InvadersControls struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks a movement key stays latched after a press
}

// Validate checks that the configuration describes a playable game.
func (c InvadersConfig) Validate() error {
	positive := []struct {
		name string
		val  float64
	}{
		{"screen.width", c.Screen.Width},
		{"screen.height", c.Screen.Height},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.speed", c.Player.Speed},
		{"projectile.width", c.Projectile.Width},
		{"projectile.height", c.Projectile.Height},
		{"projectile.speed", c.Projectile.Speed},
		{"enemy.width", c.Enemy.Width},
		{"enemy.height", c.Enemy.Height},
		{"enemy.speed", c.Enemy.Speed},
		{"enemy.drop_step", c.Enemy.DropStep},
		{"powerup.width", c.PowerUp.Width},
		{"powerup.height", c.PowerUp.Height},
		{"powerup.fall_speed", c.PowerUp.FallSpeed},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, p.name, p.val)
		}
	}

	if c.Player.Cooldown <= 0 || c.Player.RapidCooldown <= 0 {
		return fmt.Errorf("%w: player cooldowns must be positive", ErrInvalid)
	}
	if c.PowerUp.Duration <= 0 {
		return fmt.Errorf("%w: powerup.duration must be positive", ErrInvalid)
	}
	if c.Player.Width > c.Screen.Width {
		return fmt.Errorf("%w: player is wider than the screen", ErrInvalid)
	}

	if c.Enemy.Rows <= 0 || c.Enemy.Cols <= 0 {
		return fmt.Errorf("%w: enemy grid must have at least one row and column", ErrInvalid)
	}
	if c.GridRight() > c.Screen.Width {
		return fmt.Errorf("%w: enemy grid (right edge %v) is wider than the screen", ErrInvalid, c.GridRight())
	}

	if c.Enemy.FireChance < 0 || c.Enemy.FireChance > 100 {
		return fmt.Errorf("%w: enemy.fire_chance must be within 0..100, got %d", ErrInvalid, c.Enemy.FireChance)
	}
	if c.PowerUp.DropChance < 0 || c.PowerUp.DropChance > 100 {
		return fmt.Errorf("%w: powerup.drop_chance must be within 0..100, got %d", ErrInvalid, c.PowerUp.DropChance)
	}

	sf := c.Starfield
	if sf.Count < 0 {
		return fmt.Errorf("%w: starfield.count must not be negative", ErrInvalid)
	}
	if sf.MinSpeed < 0 || sf.MaxSpeed < sf.MinSpeed {
		return fmt.Errorf("%w: starfield speeds must satisfy 0 <= min <= max", ErrInvalid)
	}
	if sf.MinBrightness < 0 || sf.MaxBrightness > 255 || sf.MaxBrightness < sf.MinBrightness {
		return fmt.Errorf("%w: starfield brightness must satisfy 0 <= min <= max <= 255", ErrInvalid)
	}

	if c.Controls.HoldTicks < 1 {
		return fmt.Errorf("%w: controls.hold_ticks must be at least 1", ErrInvalid)
	}
	return nil
}

// GridRight returns the right edge of the initial enemy grid.
func (c InvadersConfig) GridRight() float64 {
	return c.Enemy.OriginX + float64(c.Enemy.Cols-1)*c.Enemy.SpacingX + c.Enemy.Width
}

// PlayerY returns the ship's fixed vertical position.
func (c InvadersConfig) PlayerY() float64 {
	return c.Screen.Height - c.Player.BottomOffset
}
