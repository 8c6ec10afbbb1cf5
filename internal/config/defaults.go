package config

import (
	_ "embed"
)

//go:embed defaults/bomber.yaml
var defaultBomberYAML []byte

// DefaultBomberConfig returns the built-in configuration.
// It matches defaults/bomber.yaml.
func DefaultBomberConfig() BomberConfig {
	return BomberConfig{
		Arena: ArenaConfig{
			Rows:    11,
			Cols:    15,
			Players: 2,
			Level:   2,
		},
		Bomb: BombConfig{
			Timer:     4,
			TickScale: 40,
		},
		Agent: AgentConfig{
			MaxBombs:   1,
			BombRadius: 2,
		},
		Roamers: RoamerConfig{
			BugWeight:      85,
			CritterWeight:  15,
			BlockBugWeight: 0,
			BlockEvery:     1,
		},
		Progression: ProgressionConfig{
			Enabled:  true,
			MaxLevel: 9,
		},
		CPU: CPUConfig{
			MoveEvery:  12,
			BombChance: 0.3,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "bomber", "bomber_cpu":
		return defaultBomberYAML
	default:
		return nil
	}
}
