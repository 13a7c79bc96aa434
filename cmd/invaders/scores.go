package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores.

Examples:
  invaders scores
  invaders scores --limit 25
  invaders scores --tui
  invaders scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in the interactive scoreboard")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(invaders.GameID); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Scores cleared.")
		return nil
	}

	if flagScoresTUI {
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(invaders.GameID, store, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	return printScores(cmd.OutOrStdout(), store, flagScoresLimit)
}

// printScores writes the top scores and a summary line.
func printScores(w io.Writer, store *storage.Store, limit int) error {
	scores, err := store.TopScores(invaders.GameID, limit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Fprintln(w, "High Scores - Space Invaders")
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'invaders play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Result", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %-8s  %s\n", "----", "-----", "------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-10d  %-8s  %s\n", i+1, entry.Score, entry.Result(), dateStr)
	}

	stats, err := store.GetGameStats(invaders.GameID)
	if err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best: %d  Games: %d  Victories: %d  Average: %.1f\n",
			stats.HighScore, stats.GamesCount, stats.Victories, stats.AvgScore)
	}
	return nil
}
