package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neontris/internal/platform/tui"
	"github.com/vovakirdan/neontris/internal/registry"
	"github.com/vovakirdan/neontris/internal/storage"
)

var (
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the top 10 scores for a variant (default: tetris),
followed by totals across every recorded game.

Examples:
  neontris scores
  neontris scores tetris_extended
  neontris scores --all
  neontris scores tetris --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every recorded game instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the variant")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "tetris"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'neontris list' to see available games", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", game.Title())
		return nil
	}

	var scores []storage.ScoreEntry
	if flagScoresAll {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, tui.LeaderboardSize)
	}
	if err != nil {
		return fmt.Errorf("retrieve scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'neontris play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-5s  %-12s  %s\n", "Rank", "Score", "Lines", "Level", "Player", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-5s  %-12s  %s\n", "----", "-----", "-----", "-----", "------", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %-6d  %-5d  %-12s  %s\n",
			i+1, entry.Score, entry.Lines, entry.Level, entry.Player,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Games: %d  Avg: %.0f  Lines: %d  Top level: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalLines, stats.BestLevel)
	}
	return nil
}
