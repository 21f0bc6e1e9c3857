package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lunarbyte/shellstorm/internal/game"
)

var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "List the playable characters",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, c := range game.Characters() {
			fmt.Printf("%-10s %s\n", c.ID, c.Name)
			fmt.Printf("           %s\n\n", c.Blurb)
		}
		fmt.Println("Pick one with: shellstorm play --character <id>")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(charactersCmd)
}
