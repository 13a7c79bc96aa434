package core

// Event is a notification tag emitted by a game during a tick.
// The platform forwards events to optional sinks such as audio.
type Event int

const (
	EventShotFired Event = iota
	EventEnemyHit
	EventShieldBlocked
	EventPowerUpCollected
	EventGameEnded
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventShotFired:
		return "ShotFired"
	case EventEnemyHit:
		return "EnemyHit"
	case EventShieldBlocked:
		return "ShieldBlocked"
	case EventPowerUpCollected:
		return "PowerUpCollected"
	case EventGameEnded:
		return "GameEnded"
	default:
		return "Unknown"
	}
}
