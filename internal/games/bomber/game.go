// Package bomber adapts the BomberBug simulation to the game registry:
// it loads the configuration, maps seat input to intents, runs rounds with
// level progression and draws the arena.
package bomber

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bomberbug/internal/config"
	"github.com/vovakirdan/bomberbug/internal/core"
	"github.com/vovakirdan/bomberbug/internal/games/bomber/sim"
	"github.com/vovakirdan/bomberbug/internal/multiplayer"
	"github.com/vovakirdan/bomberbug/internal/registry"
)

// Registered game IDs.
const (
	GameID    = "bomber"
	CPUGameID = "bomber_cpu"
)

// maxMessages is how many round messages stay on screen.
const maxMessages = 3

// RoundResult describes a finished round.
type RoundResult struct {
	Round   int
	Level   int
	Players int
	Winner  core.PlayerID // 0 for a draw
	Draw    bool
	Ticks   uint64
}

// Game implements registry.Game for local and vs-CPU BomberBug.
type Game struct {
	mode        multiplayer.MatchMode
	cfg         config.BomberConfig
	match       *multiplayer.Match
	progression *config.Progression
	rng         *rand.Rand
	seed        int64

	world *sim.World
	arena sim.ArenaConfig
	cpus  []*cpuController
	sink  sim.Sink
	log   *log.Logger

	// Per-game setup; when hasSetup is false the package-level settings apply.
	override config.ArenaConfig
	preset   string
	hasSetup bool

	tick      uint64
	round     int
	wins      map[core.PlayerID]int
	paused    bool
	roundOver bool
	winner    core.PlayerID
	messages  []string
	last      RoundResult
	hasLast   bool

	screenW int
	screenH int
}

// Package-level settings applied on the next Reset, set by the CLI and the
// setup menu before a game starts.
var (
	configPath       string
	difficultyPreset string
	arenaOverride    config.ArenaConfig
	defaultSink      sim.Sink
	logger           = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset ("easy", "normal", "hard",
// "fixed" or empty).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetArenaOverride overrides arena fields from the config. Zero fields
// keep the configured value.
func SetArenaOverride(a config.ArenaConfig) {
	arenaOverride = a
}

// GetArenaOverride returns the current override.
func GetArenaOverride() config.ArenaConfig {
	return arenaOverride
}

// SetSink sets the cue listener for games that don't have their own.
func SetSink(s sim.Sink) {
	defaultSink = s
}

// SetLogger sets the logger used by new games.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a local game: every seat plays from the keyboard.
func New() *Game {
	return &Game{mode: multiplayer.MatchModeLocal}
}

// NewVsCPU creates a game where player 1 faces CPU opponents.
func NewVsCPU() *Game {
	return &Game{mode: multiplayer.MatchModeVsCPU}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(CPUGameID, func() registry.Game {
		return NewVsCPU()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == multiplayer.MatchModeVsCPU {
		return CPUGameID
	}
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == multiplayer.MatchModeVsCPU {
		return "BomberBug (vs CPU)"
	}
	return "BomberBug"
}

// SetSink sets this game's cue listener, overriding the package default.
// It takes effect from the next round.
func (g *Game) SetSink(s sim.Sink) {
	g.sink = s
}

// Setup sets this game's arena override and difficulty preset, taking
// precedence over SetArenaOverride and SetDifficultyPreset. It applies
// from the next Reset.
func (g *Game) Setup(arena config.ArenaConfig, preset string) {
	g.override = arena
	g.preset = preset
	g.hasSetup = true
}

// Reset starts a new session: config reload, round 1, all wins cleared.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.log = logger.WithPrefix(g.ID())
	if g.sink == nil {
		g.sink = defaultSink
	}

	g.cfg = g.loadConfig()

	players := sim.ArenaConfig{Players: g.cfg.Arena.Players}.Normalize().Players
	g.match = multiplayer.NewMatch(
		multiplayer.MatchID(fmt.Sprintf("%s-%d", g.ID(), cfg.Seed)),
		g.mode, multiplayer.LocalSession, players,
	)
	g.progression = config.NewProgression(g.cfg.Progression, g.cfg.Arena.Level)

	g.tick = 0
	g.round = 0
	g.wins = make(map[core.PlayerID]int)
	g.paused = false
	g.hasLast = false
	g.startRound()
}

// loadConfig reads the config file and applies the preset and overrides.
func (g *Game) loadConfig() config.BomberConfig {
	cfg, err := config.LoadBomber(configPath)
	if err != nil {
		g.log.Warn("using default config", "err", err)
		cfg = config.DefaultBomberConfig()
	}
	o, name := arenaOverride, difficultyPreset
	if g.hasSetup {
		o, name = g.override, g.preset
	}

	if preset, ok := config.ParsePreset(name); ok {
		config.ApplyBomberPreset(&cfg, preset)
	} else {
		g.log.Warn("unknown difficulty preset", "preset", name)
	}

	if o.Rows > 0 {
		cfg.Arena.Rows = o.Rows
	}
	if o.Cols > 0 {
		cfg.Arena.Cols = o.Cols
	}
	if o.Players > 0 {
		cfg.Arena.Players = o.Players
	}
	if o.Level > 0 {
		cfg.Arena.Level = o.Level
	}
	return cfg
}

// startRound builds a fresh arena at the current level.
func (g *Game) startRound() {
	g.round++
	g.arena = sim.ArenaConfig{
		Rows:    g.cfg.Arena.Rows,
		Cols:    g.cfg.Arena.Cols,
		Players: len(g.match.Seats()),
		Level:   g.progression.Level(),
	}.Normalize()

	opts := sim.Options{
		Seed:   g.rng.Int63(),
		Sink:   g.sink,
		Logger: g.log,
		Bomb: sim.BombSpec{
			Timer:     g.cfg.Bomb.Timer,
			TickScale: g.cfg.Bomb.TickScale,
			Radius:    g.cfg.Agent.BombRadius,
		},
		MaxBombs:   g.cfg.Agent.MaxBombs,
		BombRadius: g.cfg.Agent.BombRadius,
		Roamers: sim.RoamerSpec{
			BugWeight:      g.cfg.Roamers.BugWeight,
			CritterWeight:  g.cfg.Roamers.CritterWeight,
			BlockBugWeight: g.cfg.Roamers.BlockBugWeight,
			BlockEvery:     g.cfg.Roamers.BlockEvery,
		},
	}
	g.world = sim.BuildArena(g.arena, opts)

	g.cpus = g.cpus[:0]
	for _, seat := range g.match.Seats() {
		if seat.Controller == multiplayer.ControllerCPU {
			g.cpus = append(g.cpus, newCPU(seat.Player.Index(), g.cfg.CPU.MoveEvery, g.cfg.CPU.BombChance, g.rng))
		}
	}

	g.roundOver = false
	g.winner = 0
	g.messages = g.messages[:0]
	g.log.Info("round started", "round", g.round, "level", g.arena.Level,
		"size", fmt.Sprintf("%dx%d", g.arena.Rows, g.arena.Cols), "players", g.arena.Players)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	if g.world == nil {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	if g.roundOver {
		if in.Any(core.ActionRestart) {
			g.progression.Advance()
			g.startRound()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Any(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, seat := range g.match.Seats() {
		if seat.Controller != multiplayer.ControllerHuman {
			continue
		}
		if intent, ok := intentFor(seat.Player.Index(), in.Player(seat.Player)); ok {
			g.world.Queue(intent)
		}
	}
	for _, c := range g.cpus {
		if intent, ok := c.decide(g.world, g.rng); ok {
			g.world.Queue(intent)
		}
	}

	res := g.world.Step()
	for _, p := range res.Deaths {
		g.addMessage(fmt.Sprintf("Oh no! The %s bug died!", SeatName(core.PlayerFromIndex(p))))
	}
	if res.Over {
		g.finishRound(res)
	}
	return core.StepResult{State: g.State()}
}

// intentFor maps one seat's frame to a world intent. The first pressed
// direction wins.
func intentFor(player int, f core.InputFrame) (sim.Intent, bool) {
	in := sim.Intent{Player: player, Bomb: f.Has(core.ActionBomb)}
	switch {
	case f.Has(core.ActionUp):
		in.Move, in.Dir = true, sim.North
	case f.Has(core.ActionDown):
		in.Move, in.Dir = true, sim.South
	case f.Has(core.ActionLeft):
		in.Move, in.Dir = true, sim.West
	case f.Has(core.ActionRight):
		in.Move, in.Dir = true, sim.East
	}
	return in, in.Move || in.Bomb
}

func (g *Game) finishRound(res sim.StepResult) {
	g.roundOver = true
	g.paused = false
	if res.Draw {
		g.addMessage("Draw!")
	} else {
		g.winner = core.PlayerFromIndex(res.Winner)
		g.wins[g.winner]++
		g.addMessage(SeatName(g.winner) + " wins!")
	}

	g.last = RoundResult{
		Round:   g.round,
		Level:   g.arena.Level,
		Players: g.arena.Players,
		Winner:  g.winner,
		Draw:    res.Draw,
		Ticks:   res.Tick,
	}
	g.hasLast = true
	g.log.Info("round over", "round", g.round, "winner", g.winner, "draw", res.Draw, "ticks", res.Tick)
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}

// State returns the current game state. Score is the first seat's wins.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.wins[core.Player1],
		GameOver: g.roundOver,
		Paused:   g.paused,
		Round:    g.round,
		Level:    g.arena.Level,
		Winner:   g.winner,
	}
}

// LastRound returns the most recently finished round of the session.
func (g *Game) LastRound() (RoundResult, bool) {
	return g.last, g.hasLast
}

// Wins returns the number of rounds each seat has won this session.
func (g *Game) Wins(p core.PlayerID) int {
	return g.wins[p]
}

// Match returns the seat assignment.
func (g *Game) Match() *multiplayer.Match {
	return g.match
}

// World returns the running round.
func (g *Game) World() *sim.World {
	return g.world
}

// Messages returns the latest round messages, oldest first.
func (g *Game) Messages() []string {
	return g.messages
}

// GameSnapshot summarizes the session for the platform.
func (g *Game) GameSnapshot() multiplayer.GameSnapshot {
	snap := multiplayer.GameSnapshot{
		Round:  g.round,
		Level:  g.arena.Level,
		Over:   g.roundOver,
		Winner: g.winner,
		Wins:   make(map[core.PlayerID]int, len(g.wins)),
	}
	if g.world != nil {
		snap.Tick = g.world.Tick()
		for _, p := range g.world.Alive() {
			snap.Alive = append(snap.Alive, core.PlayerFromIndex(p))
		}
	}
	for p, n := range g.wins {
		snap.Wins[p] = n
	}
	return snap
}

var seatNames = [core.MaxSeats]string{"Red", "Blue", "Green", "Yellow"}

var seatColors = [core.MaxSeats]core.Color{
	core.ColorRed.Bright(), core.ColorBlue.Bright(), core.ColorGreen.Bright(), core.ColorYellow.Bright(),
}

// SeatName returns the bug color name of a seat.
func SeatName(p core.PlayerID) string {
	if i := p.Index(); i >= 0 && i < core.MaxSeats {
		return seatNames[i]
	}
	return "Unknown"
}

// SeatColor returns the color of a seat.
func SeatColor(p core.PlayerID) core.Color {
	if i := p.Index(); i >= 0 && i < core.MaxSeats {
		return seatColors[i]
	}
	return core.ColorDefault
}
