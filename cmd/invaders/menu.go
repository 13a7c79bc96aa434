package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, press Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  invaders menu
  invaders menu --fps 30
  invaders menu --db ./scores.db`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationTUI: "true"},
	RunE:        runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	sound := newSoundPlayer()
	defer sound.Close()

	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(invaders.GameID, store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.Choice == tui.ChoiceScores:
			goBack, err := tui.RunScoreboard(invaders.GameID, store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case result.Choice == tui.ChoicePlay:
			game, err := registry.Create(invaders.GameID)
			if err != nil {
				return fmt.Errorf("cannot create game: %w", err)
			}

			// A fixed --seed replays the same game every time.
			runCfg := cfg
			if flagSeed == 0 {
				runCfg.Seed = time.Now().UnixNano()
			}

			if err := tui.Run(game, store, runCfg, sound); err != nil {
				log.Error("game failed", "error", err)
			}
		}
	}
}
