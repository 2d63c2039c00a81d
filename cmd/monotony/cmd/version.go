package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the monotony CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("monotony version %s\n", version)
		fmt.Println("An economic board game engine with autonomous players")
		fmt.Println("https://github.com/scarybot/monotony")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
