package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/scarybot/monotony/board"
	"github.com/scarybot/monotony/config"
	"github.com/scarybot/monotony/forecast"
	"github.com/scarybot/monotony/game"
	"github.com/spf13/cobra"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Forecast per-player cash exposure over the next turn",
	Long: `Play a game partway, then simulate every possible roll for each
surviving player and report the worst, expected and best cash outcome of
their next move.

The simulations run against cloned game state; the reported game is never
touched.

Example:
  monotony forecast -f examples/configs/classic.yaml --turns 20`,
	RunE: runForecast,
}

var (
	forecastConfigPath string
	forecastTurns      int
)

func init() {
	rootCmd.AddCommand(forecastCmd)

	forecastCmd.Flags().StringVarP(&forecastConfigPath, "config", "f", "", "path to config file (YAML or JSON) (required)")
	forecastCmd.Flags().IntVarP(&forecastTurns, "turns", "t", 20, "turns to play before forecasting")
	forecastCmd.MarkFlagRequired("config")
}

func runForecast(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(forecastConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	specs := make([]game.PlayerSpec, len(cfg.Players))
	for i, p := range cfg.Players {
		specs[i] = game.PlayerSpec{
			Name:          p.Name,
			Policy:        buildPolicy(p, rng),
			JailFreeCards: p.JailFreeCards,
		}
	}

	g, err := game.NewGame(board.ClassicUK(), rules(cfg.Rules), specs, game.WithRand(rng))
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}

	g.Play(forecastTurns)

	fmt.Printf("Exposure after %d turns (seed %d):\n\n", g.Turn(), seed)
	for _, p := range g.ActivePlayers() {
		e := g.Entity(p)
		dist := forecast.Exposure(g, p)
		fmt.Printf("  %-12s on %q with £%d: worst %+d, expected %+.1f, best %+d\n",
			e.Name, g.Layout().Squares[e.Position].Name, g.Balance(p),
			dist.Worst(), dist.Expected(), dist.Best())
	}

	return nil
}
