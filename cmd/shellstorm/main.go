// Shellstorm is a terminal survival arcade: guide a snail through four
// seasons of falling rocks, meteors, and storms, playable locally or
// over SSH.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

var rootCmd = &cobra.Command{
	Use:   "shellstorm",
	Short: "A seasonal survival arcade for your terminal",
	Long: `Shellstorm is a terminal survival arcade game.

Dodge falling rocks, catch the rain, and survive the turning seasons
for as long as your shell holds. Runs locally in your terminal or as
a multi-player SSH server with a shared leaderboard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation starts a local run
		return playCmd.RunE(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "simulation tick rate")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "deterministic seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shellstorm/runs.db", "path to the runs database")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
