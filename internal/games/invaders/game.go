// Package invaders adapts the Space Invaders simulation to the arcade
// platform: it maps actions to engine commands, keeps the simulation clock,
// and renders snapshots onto the character screen.
package invaders

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/engine"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// GameID is the registry and score table identifier.
const GameID = "invaders"

// configPath stores the custom config path set via CLI
var configPath string

// preset, when set, overrides loading from configPath.
var preset *config.InvadersConfig

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetConfig installs an already loaded configuration for new games.
func SetConfig(cfg config.InvadersConfig) {
	preset = &cfg
}

// Game implements registry.Game on top of engine.Simulation.
type Game struct {
	cfg      config.InvadersConfig
	sim      *engine.Simulation
	tickRate int
	clock    uint64 // Simulated ticks; frozen while paused
	paused   bool
	tooSmall bool

	holdLeft  int // Ticks the left key stays latched
	holdRight int

	screenW int
	screenH int
}

// New creates a new Space Invaders game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Invaders"
}

// Reset initializes the game with a fresh simulation.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.cfg = loadConfig()
	g.sim = engine.New(g.cfg, rc.Seed)
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.clock = 0
	g.paused = false
	g.holdLeft = 0
	g.holdRight = 0
	g.resize(rc.ScreenW, rc.ScreenH)
}

func loadConfig() config.InvadersConfig {
	if preset != nil {
		return *preset
	}
	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		log.Warn("using default config", "path", configPath, "error", err)
		return config.DefaultInvadersConfig()
	}
	return cfg
}

// Resize updates the terminal size used for rendering.
func (g *Game) Resize(w, h int) {
	g.resize(w, h)
}

func (g *Game) resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < MinWidth || h < MinHeight
}

// Now returns the simulation time of the next tick.
func (g *Game) Now() time.Duration {
	return time.Duration(g.clock) * time.Second / time.Duration(g.tickRate)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil {
		g.Reset(core.DefaultConfig())
	}

	if in.Has(core.ActionRestart) && g.sim.GameOver() {
		g.sim.Tick(g.Now(), engine.CommandRestart)
		g.paused = false
		g.holdLeft, g.holdRight = 0, 0
		return core.StepResult{State: g.State(), Events: g.sim.Events()}
	}

	if in.Has(core.ActionPause) && !g.sim.GameOver() {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall || g.sim.GameOver() {
		return core.StepResult{State: g.State()}
	}

	g.sim.Tick(g.Now(), g.commands(in)...)
	g.clock++

	return core.StepResult{State: g.State(), Events: g.sim.Events()}
}

// commands converts one input frame into engine commands. Terminals report
// key repeats rather than key releases, so a movement press stays latched
// for a few ticks.
func (g *Game) commands(in core.InputFrame) []engine.Command {
	hold := g.cfg.Controls.HoldTicks
	switch {
	case in.Has(core.ActionLeft):
		g.holdLeft, g.holdRight = hold, 0
	case in.Has(core.ActionRight):
		g.holdRight, g.holdLeft = hold, 0
	}

	var cmds []engine.Command
	if g.holdLeft > 0 {
		cmds = append(cmds, engine.CommandMoveLeft)
		g.holdLeft--
	}
	if g.holdRight > 0 {
		cmds = append(cmds, engine.CommandMoveRight)
		g.holdRight--
	}
	if in.Has(core.ActionFire) {
		cmds = append(cmds, engine.CommandFire)
	}
	return cmds
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.sim == nil {
		return
	}
	RenderSnapshot(dst, g.sim.Snapshot(), g.cfg.Screen, g.paused)
}

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() engine.Snapshot {
	return g.sim.Snapshot()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.sim.Score(),
		GameOver: g.sim.GameOver(),
		Victory:  g.sim.Victory(),
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
