package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/audio"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagMute   bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Space Invaders.

Controls:
  Left/A, Right/D  - Move
  Space            - Fire
  P                - Pause
  R                - Restart (after game over)
  Esc/B            - Leave (when paused or after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Examples:
  invaders play
  invaders play --seed 42
  invaders play --mute
  invaders play --config ./my-invaders.yaml`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationTUI: "true"},
	RunE:        runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		c.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
		c.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume (0-1)")
	}
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database; the game still runs without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// newSoundPlayer opens audio output, falling back to silence.
func newSoundPlayer() *audio.Player {
	p, err := audio.NewPlayer(audio.Options{Muted: flagMute, Volume: flagVolume})
	if err != nil {
		log.Warn("audio unavailable, continuing without sound", "error", err)
	}
	return p
}

func runPlay(_ *cobra.Command, _ []string) error {
	game, err := registry.Create(invaders.GameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	sound := newSoundPlayer()
	defer sound.Close()

	if err := tui.Run(game, store, runtimeConfig(), sound); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
