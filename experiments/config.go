package experiments

import (
	"fmt"
	"os"
	"quarto/experiments/metrics"
	"quarto/meta"
	"quarto/searcher/agent"

	"gopkg.in/yaml.v3"
)

// Config describes a win-rate experiment: the agents taking part and the
// pairs of agent IDs that play each other.
type Config struct {
	Name      string                `yaml:"name"`
	Games     int                   `yaml:"games"`      // Per match up
	Workers   int                   `yaml:"workers"`    // Games played at once
	SwapSeats bool                  `yaml:"swap_seats"` // Alternate who moves first
	OutputDir string                `yaml:"output_dir"` // No CSV output if empty
	Agents    []metrics.AgentConfig `yaml:"agents"`
	MatchUps  [][2]int              `yaml:"match_ups"`
}

// DefaultConfig pits the primitive Monte Carlo agent against the random agent.
func DefaultConfig() Config {
	return Config{
		Name:    "first_player_win_rate",
		Games:   meta.GAMES,
		Workers: meta.WORKERS,
		Agents: []metrics.AgentConfig{
			{ID: 1, Policy: agent.PrimitivePolicy, Playouts: meta.PLAYOUTS},
			{ID: 2, Policy: agent.RandomPolicy},
		},
		MatchUps: [][2]int{{1, 2}},
	}
}

// LoadConfig reads a YAML experiment file. Fields missing from the file keep
// their default values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read experiment config: %w", err)
	}

	config := DefaultConfig()
	config.Agents, config.MatchUps = nil, nil
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse experiment config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid experiment config %s: %w", path, err)
	}
	return config, nil
}

func (c Config) Validate() error {
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if len(c.MatchUps) == 0 {
		return fmt.Errorf("no match ups")
	}
	ids := map[int]bool{}
	for _, a := range c.Agents {
		if ids[a.ID] {
			return fmt.Errorf("duplicate agent id %d", a.ID)
		}
		ids[a.ID] = true
	}
	for _, matchUp := range c.MatchUps {
		for _, id := range matchUp {
			if !ids[id] {
				return fmt.Errorf("match up %v names unknown agent %d", matchUp, id)
			}
		}
	}
	return nil
}

func (c Config) agent(id int) metrics.AgentConfig {
	for _, a := range c.Agents {
		if a.ID == id {
			return a
		}
	}
	panic(fmt.Sprintf("unknown agent %d", id))
}
