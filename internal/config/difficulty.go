package config

// Progression tracks the arena level from round to round.
type Progression struct {
	cfg   ProgressionConfig
	start int
	level int
}

// NewProgression starts at the given level (at least 1).
func NewProgression(cfg ProgressionConfig, start int) *Progression {
	if start < 1 {
		start = 1
	}
	if cfg.MaxLevel < start {
		cfg.MaxLevel = start
	}
	return &Progression{cfg: cfg, start: start, level: start}
}

// SetEnabled enables or disables progression.
func (p *Progression) SetEnabled(enabled bool) {
	p.cfg.Enabled = enabled
}

// IsEnabled returns whether the level rises between rounds.
func (p *Progression) IsEnabled() bool {
	return p.cfg.Enabled
}

// Level returns the level of the current round.
func (p *Progression) Level() int {
	return p.level
}

// Advance moves to the next round and returns its level. The level rises
// by one per round up to MaxLevel when progression is enabled.
func (p *Progression) Advance() int {
	if p.cfg.Enabled && p.level < p.cfg.MaxLevel {
		p.level++
	}
	return p.level
}

// Reset returns to the starting level.
func (p *Progression) Reset() {
	p.level = p.start
}
