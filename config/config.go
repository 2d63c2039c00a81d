package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete game configuration
type Config struct {
	Rules      RulesConfig    `json:"rules" yaml:"rules"`
	Players    []PlayerConfig `json:"players" yaml:"players"`
	Journal    JournalConfig  `json:"journal" yaml:"journal"`
	Seed       int64          `json:"seed,omitempty" yaml:"seed,omitempty"`
	TurnBudget int            `json:"turn_budget" yaml:"turn_budget"`
}

// RulesConfig contains the table rules for a game
type RulesConfig struct {
	NumDice         int `json:"num_dice" yaml:"num_dice"`
	DieSize         int `json:"die_size" yaml:"die_size"`
	BankBalance     int `json:"bank_balance" yaml:"bank_balance"`
	StartingBalance int `json:"starting_balance" yaml:"starting_balance"`
	GoAmount        int `json:"go_amount" yaml:"go_amount"`
	JailFine        int `json:"jail_fine" yaml:"jail_fine"`
	MaxTurnsInJail  int `json:"max_turns_in_jail" yaml:"max_turns_in_jail"`
	Houses          int `json:"houses" yaml:"houses"`
	Hotels          int `json:"hotels" yaml:"hotels"`
}

// PlayerConfig describes one player at the table
type PlayerConfig struct {
	Name   string `json:"name" yaml:"name"`
	Policy string `json:"policy" yaml:"policy"` // "heuristic" or "passive"

	// Personality traits, each in [0,1]. Omitted traits are rolled at random.
	Patience     *float64 `json:"patience,omitempty" yaml:"patience,omitempty"`
	RiskTaking   *float64 `json:"risk_taking,omitempty" yaml:"risk_taking,omitempty"`
	Hoarding     *float64 `json:"hoarding,omitempty" yaml:"hoarding,omitempty"`
	Stubbornness *float64 `json:"stubbornness,omitempty" yaml:"stubbornness,omitempty"`
	Opportunism  *float64 `json:"opportunism,omitempty" yaml:"opportunism,omitempty"`

	JailFreeCards int `json:"jail_free_cards,omitempty" yaml:"jail_free_cards,omitempty"`
}

// JournalConfig contains audit-trail parameters
type JournalConfig struct {
	Type   string `json:"type" yaml:"type"` // "csv", "sqlite" or "none"
	File   string `json:"file,omitempty" yaml:"file,omitempty"`
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on content)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if (len(path) > 5 && path[len(path)-5:] == ".yaml") || (len(path) > 4 && path[len(path)-4:] == ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Rules.NumDice <= 0 || c.Rules.DieSize <= 1 {
		return fmt.Errorf("rules require at least one die with two or more sides")
	}
	if c.Rules.StartingBalance <= 0 {
		return fmt.Errorf("rules.starting_balance must be positive")
	}
	if c.Rules.Houses < 0 || c.Rules.Hotels < 0 {
		return fmt.Errorf("house and hotel supplies cannot be negative")
	}
	if len(c.Players) < 2 {
		return fmt.Errorf("at least two players are required")
	}
	for i, p := range c.Players {
		if p.Name == "" {
			return fmt.Errorf("players[%d].name is required", i)
		}
		if p.Policy != "heuristic" && p.Policy != "passive" {
			return fmt.Errorf("players[%d].policy must be 'heuristic' or 'passive'", i)
		}
		for name, trait := range map[string]*float64{
			"patience":     p.Patience,
			"risk_taking":  p.RiskTaking,
			"hoarding":     p.Hoarding,
			"stubbornness": p.Stubbornness,
			"opportunism":  p.Opportunism,
		} {
			if trait != nil && (*trait < 0 || *trait > 1) {
				return fmt.Errorf("players[%d].%s must be between 0 and 1", i, name)
			}
		}
		if p.JailFreeCards < 0 {
			return fmt.Errorf("players[%d].jail_free_cards cannot be negative", i)
		}
	}
	if c.TurnBudget <= 0 {
		return fmt.Errorf("turn_budget must be positive")
	}
	switch c.Journal.Type {
	case "csv":
		if c.Journal.File == "" {
			return fmt.Errorf("journal.file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal.db_path required for SQLite type")
		}
	case "none", "":
	default:
		return fmt.Errorf("journal.type must be 'csv', 'sqlite' or 'none'")
	}
	return nil
}

// Default returns a configuration with sensible defaults: the classic
// rules, two heuristic players and no journal.
func Default() *Config {
	return &Config{
		Rules: RulesConfig{
			NumDice:         2,
			DieSize:         6,
			BankBalance:     12755,
			StartingBalance: 1500,
			GoAmount:        200,
			JailFine:        50,
			MaxTurnsInJail:  3,
			Houses:          48,
			Hotels:          12,
		},
		Players: []PlayerConfig{
			{Name: "Alice", Policy: "heuristic"},
			{Name: "Bob", Policy: "heuristic"},
		},
		Journal:    JournalConfig{Type: "none"},
		TurnBudget: 1000,
	}
}
