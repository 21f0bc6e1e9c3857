package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lunarbyte/shellstorm/internal/storage"
)

var (
	flagLimit     int
	flagScoresFor string
	flagClear     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the local leaderboard",
	Long: `Show the top runs recorded in the local database.

Examples:
  shellstorm scores
  shellstorm scores --limit 25
  shellstorm scores --character dasher
  shellstorm scores --clear`,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "number of runs to show")
	scoresCmd.Flags().StringVar(&flagScoresFor, "character", "", "only show runs for this character")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "delete all recorded runs")
	rootCmd.AddCommand(scoresCmd)
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open runs database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return fmt.Errorf("cannot clear runs: %w", err)
		}
		fmt.Println("Leaderboard cleared.")
		return nil
	}

	var runs []storage.RunEntry
	if flagScoresFor != "" {
		runs, err = store.TopRunsByCharacter(flagScoresFor, flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		return fmt.Errorf("cannot read runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet. Play a round first!")
		return nil
	}

	fmt.Printf("%-4s %-16s %-10s %8s %7s %6s  %s\n",
		"#", "NAME", "CHARACTER", "SCORE", "MONTHS", "ROCKS", "WHEN")
	for i, r := range runs {
		fmt.Printf("%-4d %-16s %-10s %8d %7d %6d  %s\n",
			i+1, r.Name, r.CharacterID, r.Score, r.Months, r.RocksDestroyed,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetStats()
	if err != nil {
		return nil
	}
	fmt.Printf("\n%d runs total, high score %d, average %.0f\n",
		stats.RunCount, stats.HighScore, stats.AvgScore)
	return nil
}
