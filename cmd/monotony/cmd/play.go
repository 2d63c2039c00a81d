package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/scarybot/monotony/behavior"
	"github.com/scarybot/monotony/board"
	"github.com/scarybot/monotony/config"
	"github.com/scarybot/monotony/game"
	"github.com/scarybot/monotony/ledger"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a full game from a config file",
	Long: `Play a game between autonomous players using settings from a
configuration file.

The config file specifies the table rules, the players with their decision
policies and personalities, and where the transaction journal is written.

Example:
  monotony play -f examples/configs/classic.yaml`,
	RunE: runPlay,
}

var (
	playConfigPath string
	playVerbose    bool
)

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().StringVarP(&playConfigPath, "config", "f", "", "path to config file (YAML or JSON) (required)")
	playCmd.Flags().BoolVarP(&playVerbose, "verbose", "v", false, "log every move and transaction")
	playCmd.MarkFlagRequired("config")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(playConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	opts := []game.Option{game.WithRand(rng)}

	if playVerbose {
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		opts = append(opts, game.WithLogger(log))
	}

	var j ledger.Journal
	switch cfg.Journal.Type {
	case "csv":
		j, err = ledger.NewCSV(cfg.Journal.File)
	case "sqlite":
		j, err = ledger.NewSQLite(cfg.Journal.DBPath)
	}
	if err != nil {
		return fmt.Errorf("create journal: %w", err)
	}
	if j != nil {
		defer j.Close()
		opts = append(opts, game.WithJournal(j))
	}

	specs := make([]game.PlayerSpec, len(cfg.Players))
	for i, p := range cfg.Players {
		specs[i] = game.PlayerSpec{
			Name:          p.Name,
			Policy:        buildPolicy(p, rng),
			JailFreeCards: p.JailFreeCards,
		}
	}

	g, err := game.NewGame(board.ClassicUK(), rules(cfg.Rules), specs, opts...)
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}

	fmt.Printf("Playing with config: %s (seed %d)\n\n", playConfigPath, seed)

	finished := g.Play(cfg.TurnBudget)

	snap := g.Snapshot()
	if finished {
		fmt.Printf("Game over after %d turns.\n\n", snap.Turn)
	} else {
		fmt.Printf("Stopped after %d turns without a winner.\n\n", snap.Turn)
	}

	for _, p := range snap.Players {
		status := "out"
		if p.InGame {
			status = "in"
		}
		fmt.Printf("  %-12s %s  £%-6d on %q with %d properties\n",
			p.Name, status, p.Balance, p.Square, len(p.Properties))
	}
	fmt.Printf("\n  Bank £%d, free parking pot £%d, pool %d houses / %d hotels\n",
		snap.BankBalance, snap.FreeParkingBalance, snap.PoolHouses, snap.PoolHotels)

	switch cfg.Journal.Type {
	case "csv":
		fmt.Printf("\nAudit trail saved to: %s\n", cfg.Journal.File)
	case "sqlite":
		fmt.Printf("\nAudit trail saved to: %s\n", cfg.Journal.DBPath)
	}

	return nil
}

func buildPolicy(p config.PlayerConfig, rng *rand.Rand) game.Policy {
	if p.Policy == "passive" {
		return behavior.Passive{}
	}

	traits := behavior.RandomPersonality(rng)
	if p.Patience != nil {
		traits.Patience = *p.Patience
	}
	if p.RiskTaking != nil {
		traits.RiskTaking = *p.RiskTaking
	}
	if p.Hoarding != nil {
		traits.Hoarding = *p.Hoarding
	}
	if p.Stubbornness != nil {
		traits.Stubbornness = *p.Stubbornness
	}
	if p.Opportunism != nil {
		traits.Opportunism = *p.Opportunism
	}
	return behavior.NewHeuristic(traits)
}

func rules(r config.RulesConfig) game.Config {
	return game.Config{
		NumDice:         r.NumDice,
		DieSize:         r.DieSize,
		BankBalance:     r.BankBalance,
		StartingBalance: r.StartingBalance,
		GoAmount:        r.GoAmount,
		JailFine:        r.JailFine,
		MaxTurnsInJail:  r.MaxTurnsInJail,
		Houses:          r.Houses,
		Hotels:          r.Hotels,
	}
}
