package engine

import "errors"

// ErrUnknownCommand is returned by Submit for commands outside the set below.
var ErrUnknownCommand = errors.New("engine: unknown command")

// Command is a player intent applied at the start of a tick.
type Command int

const (
	CommandMoveLeft  Command = iota // Level-triggered: submit every tick the key is held
	CommandMoveRight                // Level-triggered
	CommandFire                     // Edge-triggered, gated by cooldown
	CommandRestart                  // Edge-triggered, only honoured after game over
)

// String returns the name of the command.
func (c Command) String() string {
	switch c {
	case CommandMoveLeft:
		return "MoveLeft"
	case CommandMoveRight:
		return "MoveRight"
	case CommandFire:
		return "Fire"
	case CommandRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is a known command.
func (c Command) Valid() bool {
	return c >= CommandMoveLeft && c <= CommandRestart
}

// Phase is the top-level state of a simulation.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns the name of the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
