// Package audio plays synthesized sounds for simulation cues.
package audio

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/bomberbug/internal/config"
	"github.com/vovakirdan/bomberbug/internal/games/bomber/sim"
)

const (
	sampleRate = beep.SampleRate(44100)
	queueSize  = 64
	// minGap throttles repeats of one cue, e.g. several bugs stepping in
	// the same tick.
	minGap = 50 * time.Millisecond
)

// Player turns cue events into sound. It implements sim.Sink; Emit never
// blocks and drops events when the queue is full.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	volume  float64
	enabled bool
	logger  *log.Logger

	events  chan sim.Event
	play    func(beep.Streamer)
	last    map[sim.Cue]time.Time
	running atomic.Bool
	played  atomic.Int64
	wg      sync.WaitGroup
	cancel  context.CancelFunc
}

var _ sim.Sink = (*Player)(nil)

// New creates a player from the audio config. Start must be called before
// anything is heard.
func New(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	vol := cfg.Volume
	if vol > 1 {
		vol = 1
	}
	return &Player{
		mixer:   &beep.Mixer{},
		volume:  vol,
		enabled: cfg.Enabled,
		logger:  logger.WithPrefix("audio"),
		events:  make(chan sim.Event, queueSize),
		last:    make(map[sim.Cue]time.Time),
	}
}

// Start opens the speaker and begins playback. A disabled player starts
// as a no-op. If the speaker cannot be opened the player stays silent and
// the error is returned.
func (p *Player) Start(ctx context.Context) error {
	if !p.enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)

	p.startWith(ctx, func(s beep.Streamer) {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	})
	return nil
}

// startWith runs the event loop, handing every sound to play.
func (p *Player) startWith(ctx context.Context, play func(beep.Streamer)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running.Load() {
		return
	}

	ctx, p.cancel = context.WithCancel(ctx)
	p.play = play
	p.running.Store(true)

	p.wg.Add(1)
	go p.loop(ctx)
}

func (p *Player) loop(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case e := <-p.events:
			p.handle(e, time.Now())
		}
	}
}

func (p *Player) handle(e sim.Event, now time.Time) {
	if last, ok := p.last[e.Cue]; ok && now.Sub(last) < minGap {
		return
	}
	s := Sound(e.Cue, p.Volume(), sampleRate)
	if s == nil {
		return
	}
	p.last[e.Cue] = now
	p.play(s)
	p.played.Add(1)
}

// Emit implements sim.Sink.
func (p *Player) Emit(e sim.Event) {
	if !p.running.Load() || !Audible(e.Cue) {
		return
	}
	select {
	case p.events <- e:
	default:
		p.logger.Debug("dropped cue", "cue", e.Cue)
	}
}

// SetVolume changes the master volume (0..1).
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = max(0, min(v, 1))
}

// Volume returns the master volume.
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// Played returns how many sounds were started.
func (p *Player) Played() int64 {
	return p.played.Load()
}

// Close stops the event loop and silences the mixer.
func (p *Player) Close() {
	p.mu.Lock()
	if !p.running.Load() {
		p.mu.Unlock()
		return
	}
	p.running.Store(false)
	p.cancel()
	p.mu.Unlock()

	p.wg.Wait()
	if p.enabled {
		speaker.Clear()
	}
}
