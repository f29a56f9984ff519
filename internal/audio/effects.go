package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Effect timings
const (
	eatNoteDuration = 60 * time.Millisecond
	eatAttack       = 5 * time.Millisecond
	eatRelease      = 25 * time.Millisecond
	deathDuration   = 400 * time.Millisecond
	deathAttack     = 10 * time.Millisecond
	deathRelease    = 250 * time.Millisecond
	winNoteDuration = 120 * time.Millisecond
	winAttack       = 8 * time.Millisecond
	winRelease      = 60 * time.Millisecond
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
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
			return i, false
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
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps a streamer in an attack/sustain/release volume envelope.
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
			return i, false
		}

		var vol float64 = 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume creates a volume effect safely.
// math.Log2(0) is -Inf, so zero volume becomes silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateEatSound generates a quick two-note rising chirp for eating an apple.
func CreateEatSound(rate beep.SampleRate, volume float64) beep.Streamer {
	// C6 then E6
	n1 := NewOscillator(1046.50, eatNoteDuration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, eatNoteDuration, eatAttack, eatRelease, rate)

	n2 := NewOscillator(1318.51, eatNoteDuration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, eatNoteDuration, eatAttack, eatRelease, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), volume)
}

// CreateDeathSound generates a descending saw buzz for the game-over moment.
func CreateDeathSound(rate beep.SampleRate, volume float64) beep.Streamer {
	low := NewOscillator(110.0, deathDuration, WaveSaw, rate)
	lowShaped := NewEnvelope(low, deathDuration, deathAttack, deathRelease, rate)

	sub := NewOscillator(82.41, deathDuration, WaveSaw, rate)
	subShaped := NewEnvelope(sub, deathDuration, deathAttack, deathRelease, rate)

	mixed := beep.Mix(
		newVolume(lowShaped, 0.7),
		newVolume(subShaped, 0.3),
	)
	return newVolume(mixed, volume)
}

// CreateWinSound generates a three-note ascending arpeggio for filling the board.
func CreateWinSound(rate beep.SampleRate, volume float64) beep.Streamer {
	// C5, E5, G5
	notes := []float64{523.25, 659.25, 783.99}
	streamers := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		osc := NewOscillator(freq, winNoteDuration, WaveSine, rate)
		streamers = append(streamers, NewEnvelope(osc, winNoteDuration, winAttack, winRelease, rate))
	}
	return newVolume(beep.Seq(streamers...), volume)
}
