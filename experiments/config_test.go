package experiments

import (
	"os"
	"path/filepath"
	"quarto/searcher/agent"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	require.NoError(t, config.Validate())
	require.Equal(t, agent.PrimitivePolicy, config.agent(1).Policy)
	require.Equal(t, agent.RandomPolicy, config.agent(2).Policy)
}

func TestLoadConfig(t *testing.T) {
	t.Run("reads agents and match ups", func(t *testing.T) {
		path := writeConfig(t, `
name: mcts_vs_primitive
games: 12
swap_seats: true
agents:
  - id: 1
    policy: mcts
    playouts: 500
    seed: 7
  - id: 2
    policy: primitive
    playouts: 500
match_ups:
  - [1, 2]
  - [2, 1]
`)
		config, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, "mcts_vs_primitive", config.Name)
		require.Equal(t, 12, config.Games)
		require.True(t, config.SwapSeats)
		require.Len(t, config.Agents, 2)
		require.Equal(t, uint64(7), config.agent(1).Seed)
		require.Equal(t, 500, config.agent(2).Playouts)
		require.Equal(t, [][2]int{{1, 2}, {2, 1}}, config.MatchUps)
	})

	t.Run("missing fields keep defaults", func(t *testing.T) {
		path := writeConfig(t, `
agents:
  - id: 1
    policy: random
match_ups:
  - [1, 1]
`)
		config, err := LoadConfig(path)
		require.NoError(t, err)
		defaults := DefaultConfig()
		require.Equal(t, defaults.Games, config.Games)
		require.Equal(t, defaults.Workers, config.Workers)
		require.Len(t, config.Agents, 1)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "games: [1, 2"))
		require.Error(t, err)
	})

	t.Run("unknown agent in match up", func(t *testing.T) {
		path := writeConfig(t, `
agents:
  - id: 1
    policy: random
match_ups:
  - [1, 3]
`)
		_, err := LoadConfig(path)
		require.ErrorContains(t, err, "unknown agent 3")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"no games", func(c *Config) { c.Games = 0 }, "games must be positive"},
		{"no workers", func(c *Config) { c.Workers = -1 }, "workers must be positive"},
		{"no match ups", func(c *Config) { c.MatchUps = nil }, "no match ups"},
		{"duplicate agent", func(c *Config) { c.Agents = append(c.Agents, c.Agents[0]) }, "duplicate agent id 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			require.ErrorContains(t, config.Validate(), tt.errMsg)
		})
	}
}
