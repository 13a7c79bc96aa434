package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default Space Invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Screen: InvadersScreen{
			Width:  800,
			Height: 600,
		},
		Player: InvadersPlayer{
			Width:         50,
			Height:        30,
			Speed:         5,
			BottomOffset:  50,
			Cooldown:      200 * time.Millisecond,
			RapidCooldown: 100 * time.Millisecond,
		},
		Projectile: InvadersProjectile{
			Width:        4,
			Height:       10,
			Speed:        7,
			SpreadOffset: 8,
			SpreadAngle:  0.2,
		},
		Enemy: InvadersEnemy{
			Rows:       5,
			Cols:       10,
			Width:      40,
			Height:     30,
			OriginX:    50,
			OriginY:    50,
			SpacingX:   60,
			SpacingY:   50,
			Speed:      1,
			DropStep:   20,
			FireChance: 1,
		},
		PowerUp: InvadersPowerUp{
			Width:      30,
			Height:     30,
			FallSpeed:  2,
			PulseStep:  0.2,
			DropChance: 30,
			Duration:   10 * time.Second,
		},
		Starfield: InvadersStarfield{
			Count:         100,
			MinSpeed:      0.5,
			MaxSpeed:      3.0,
			MinBrightness: 100,
			MaxBrightness: 255,
		},
		Scoring: InvadersScoring{
			EnemyPoints: 10,
		},
		Controls: InvadersControls{
			HoldTicks: 6,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "invaders":
		return defaultInvadersYAML
	default:
		return nil
	}
}
