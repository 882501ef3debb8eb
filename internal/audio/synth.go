// Package audio synthesizes the game's sound effects with beep. All
// effects are generated oscillators, no sample files.
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

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite streamer producing the given wave.
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

		// Advance phase, kept in [0, 1)
		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// sweep is an oscillator whose frequency glides linearly from start to
// end over its duration. Used for the rising jump chirp.
type sweep struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int
	position  int
	rate      beep.SampleRate
}

// NewSweep creates a sine streamer gliding between two frequencies.
func NewSweep(startFreq, endFreq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		startFreq: startFreq,
		endFreq:   endFreq,
		duration:  rate.N(duration),
		rate:      rate,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, false
		}

		progress := float64(s.position) / float64(s.duration)
		freq := s.startFreq + (s.endFreq-s.startFreq)*progress

		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase = s.phase - math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope around a stream.
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

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
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

// newVolume wraps a streamer in a volume effect.
// math.Log2(0) is -Inf, so zero volume is handled by muting instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreateJumpSound generates a rising chirp for takeoff.
func CreateJumpSound(rate beep.SampleRate, volume float64) beep.Streamer {
	const duration = 120 * time.Millisecond

	chirp := NewSweep(300, 700, duration, rate)
	shaped := NewEnvelope(chirp, duration, 5*time.Millisecond, 60*time.Millisecond, rate)

	return newVolume(shaped, volume)
}

// CreateLandSound generates a short low thud for touchdown.
func CreateLandSound(rate beep.SampleRate, volume float64) beep.Streamer {
	const duration = 80 * time.Millisecond

	thud := NewOscillator(110, duration, WaveSine, rate)
	shaped := NewEnvelope(thud, duration, 2*time.Millisecond, 50*time.Millisecond, rate)

	return newVolume(shaped, volume)
}

// CreateDeathSound generates a falling tone with a noise tail.
func CreateDeathSound(rate beep.SampleRate, volume float64) beep.Streamer {
	const toneDuration = 350 * time.Millisecond
	const noiseDuration = 200 * time.Millisecond

	fall := NewSweep(400, 80, toneDuration, rate)
	fallShaped := NewEnvelope(fall, toneDuration, 5*time.Millisecond, 150*time.Millisecond, rate)

	crash := NewOscillator(0, noiseDuration, WaveNoise, rate)
	crashShaped := NewEnvelope(crash, noiseDuration, 2*time.Millisecond, 150*time.Millisecond, rate)

	sequence := beep.Seq(fallShaped, newVolume(crashShaped, 0.4))

	return newVolume(sequence, volume)
}
