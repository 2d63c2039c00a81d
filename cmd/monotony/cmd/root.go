package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "monotony",
	Short: "An economic board game engine with autonomous players",
	Long: `Monotony is an economic board game engine written in Go.

It provides tools for:
  - Running full games between autonomous, personality-driven players
  - Auditing every money movement through a replayable transaction trail
  - Forecasting a player's cash exposure over the next turn
  - Managing game configurations (rules, players, journals)

Complete documentation is available at https://github.com/scarybot/monotony`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
