package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/bomberbug/internal/games/bomber/sim"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Tone is one synthesized note of a cue.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Wave     WaveType
	Gain     float64
}

const (
	attack  = 5 * time.Millisecond
	release = 40 * time.Millisecond
)

// cueTones describes the sound of every audible cue. Cues missing here are
// silent.
var cueTones = map[sim.Cue][]Tone{
	sim.CueBombDropped: {{Freq: 220, Duration: 60 * time.Millisecond, Wave: WaveSquare, Gain: 0.4}},
	sim.CueBombArmed:   {{Freq: 330, Duration: 50 * time.Millisecond, Wave: WaveSquare, Gain: 0.3}},
	sim.CueCountdown3:  {{Freq: 660, Duration: 70 * time.Millisecond, Wave: WaveSine, Gain: 0.5}},
	sim.CueCountdown2:  {{Freq: 770, Duration: 70 * time.Millisecond, Wave: WaveSine, Gain: 0.5}},
	sim.CueCountdown1:  {{Freq: 880, Duration: 90 * time.Millisecond, Wave: WaveSine, Gain: 0.6}},
	sim.CueFireball:    {{Duration: 250 * time.Millisecond, Wave: WaveNoise, Gain: 0.6}},
	sim.CueBonusRevealed: {
		{Freq: 987.77, Duration: 60 * time.Millisecond, Wave: WaveSine, Gain: 0.4},
		{Freq: 1318.51, Duration: 90 * time.Millisecond, Wave: WaveSine, Gain: 0.4},
	},
	sim.CueBonusGotten: {
		{Freq: 880, Duration: 50 * time.Millisecond, Wave: WaveSquare, Gain: 0.4},
		{Freq: 1174.66, Duration: 50 * time.Millisecond, Wave: WaveSquare, Gain: 0.4},
		{Freq: 1760, Duration: 80 * time.Millisecond, Wave: WaveSquare, Gain: 0.4},
	},
	sim.CueBugStep: {{Freq: 120, Duration: 20 * time.Millisecond, Wave: WaveSaw, Gain: 0.15}},
	sim.CueDeadBug: {
		{Freq: 440, Duration: 80 * time.Millisecond, Wave: WaveSaw, Gain: 0.5},
		{Freq: 220, Duration: 160 * time.Millisecond, Wave: WaveSaw, Gain: 0.5},
	},
	sim.CueHitWall:  {{Freq: 90, Duration: 40 * time.Millisecond, Wave: WaveSquare, Gain: 0.3}},
	sim.CueHitBrick: {{Freq: 140, Duration: 40 * time.Millisecond, Wave: WaveSquare, Gain: 0.3}},
	sim.CueBump:     {{Freq: 180, Duration: 40 * time.Millisecond, Wave: WaveSaw, Gain: 0.3}},
	sim.CueBlocked:  {{Freq: 100, Duration: 30 * time.Millisecond, Wave: WaveSaw, Gain: 0.2}},
	sim.CueGameOver: {
		{Freq: 523.25, Duration: 150 * time.Millisecond, Wave: WaveSine, Gain: 0.5},
		{Freq: 392, Duration: 150 * time.Millisecond, Wave: WaveSine, Gain: 0.5},
		{Freq: 261.63, Duration: 300 * time.Millisecond, Wave: WaveSine, Gain: 0.5},
	},
	sim.CueWatchOutSuperBomb: {
		{Freq: 1200, Duration: 80 * time.Millisecond, Wave: WaveSquare, Gain: 0.4},
		{Freq: 900, Duration: 80 * time.Millisecond, Wave: WaveSquare, Gain: 0.4},
		{Freq: 1200, Duration: 80 * time.Millisecond, Wave: WaveSquare, Gain: 0.4},
	},
}

// Audible reports whether a cue has a sound.
func Audible(c sim.Cue) bool {
	_, ok := cueTones[c]
	return ok
}

// Sound builds the streamer for a cue at the given master volume, or nil
// when the cue is silent.
func Sound(c sim.Cue, volume float64, rate beep.SampleRate) beep.Streamer {
	tones, ok := cueTones[c]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(tones))
	for _, tn := range tones {
		osc := NewOscillator(tn.Freq, tn.Duration, tn.Wave, rate)
		shaped := NewEnvelope(osc, tn.Duration, attack, release, rate)
		parts = append(parts, newVolume(shaped, tn.Gain))
	}
	return newVolume(beep.Seq(parts...), volume)
}

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a raw wave generator of the given length.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with attack/release shaping.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. math.Log2(0) is -Inf, so zero is
// mapped to Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
