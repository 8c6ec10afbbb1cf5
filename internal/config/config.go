// Package config loads the YAML game configuration and applies difficulty
// presets.
package config

// BomberConfig contains all configuration for a BomberBug session.
type BomberConfig struct {
	Arena       ArenaConfig       `yaml:"arena"`
	Bomb        BombConfig        `yaml:"bomb"`
	Agent       AgentConfig       `yaml:"agent"`
	Roamers     RoamerConfig      `yaml:"roamers"`
	Progression ProgressionConfig `yaml:"progression"`
	CPU         CPUConfig         `yaml:"cpu"`
	Audio       AudioConfig       `yaml:"audio"`
}

// ArenaConfig is the requested round setup. Out-of-range values are
// clamped when the arena is built.
type ArenaConfig struct {
	Rows    int `yaml:"rows"`
	Cols    int `yaml:"cols"`
	Players int `yaml:"players"`
	Level   int `yaml:"level"`
}

// BombConfig defines the bomb countdown. The blast radius belongs to the
// dropping agent, see AgentConfig.
type BombConfig struct {
	Timer     int `yaml:"timer"`      // countdown units
	TickScale int `yaml:"tick_scale"` // ticks per countdown unit
}

// AgentConfig defines a player's starting loadout.
type AgentConfig struct {
	MaxBombs   int `yaml:"max_bombs"`
	BombRadius int `yaml:"bomb_radius"`
}

// RoamerConfig defines the mix of neutral roamers.
type RoamerConfig struct {
	BugWeight      int `yaml:"bug_weight"`
	CritterWeight  int `yaml:"critter_weight"`
	BlockBugWeight int `yaml:"block_bug_weight"`
	BlockEvery     int `yaml:"block_every"` // block bugs lay a block every N moves
}

// ProgressionConfig controls the level between rounds.
type ProgressionConfig struct {
	Enabled  bool `yaml:"enabled"`   // raise the level after every round
	MaxLevel int  `yaml:"max_level"` // ceiling for progression
}

// CPUConfig tunes the computer opponents.
type CPUConfig struct {
	MoveEvery  int     `yaml:"move_every"`  // ticks between CPU decisions
	BombChance float64 `yaml:"bomb_chance"` // chance to bomb when next to a brick or player
}

// AudioConfig controls cue playback.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0..1
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset validates a preset name. An empty name means no preset.
func ParsePreset(s string) (DifficultyPreset, bool) {
	if s == "" {
		return "", true
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// StartLevelForPreset returns the first arena level of a preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyNormal:
		return 2
	case DifficultyHard:
		return 4
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyBomberPreset modifies the config based on a difficulty preset.
// The fixed preset keeps the configured level and turns progression off.
func ApplyBomberPreset(cfg *BomberConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Progression.Enabled = false
		return
	}
	cfg.Progression.Enabled = true
	cfg.Arena.Level = StartLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.CPU.BombChance = 0.1
		cfg.CPU.MoveEvery = 24
	case DifficultyHard:
		cfg.CPU.BombChance = 0.5
		cfg.CPU.MoveEvery = 8
	}
}
