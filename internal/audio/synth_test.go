package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain pulls a streamer to exhaustion and returns the sample count and
// peak amplitude.
func drain(t *testing.T, s beep.Streamer) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		total += n
		for _, frame := range buf[:n] {
			if frame[0] > peak {
				peak = frame[0]
			}
			if -frame[0] > peak {
				peak = -frame[0]
			}
		}
		if !ok {
			return total, peak
		}
	}
	t.Fatal("Streamer never finished")
	return 0, 0
}

func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(48000)
	dur := 100 * time.Millisecond

	osc := NewOscillator(440, dur, WaveSine, rate)
	total, peak := drain(t, osc)

	if total != rate.N(dur) {
		t.Errorf("Expected %d samples, got %d", rate.N(dur), total)
	}
	if peak < 0.9 || peak > 1.0 {
		t.Errorf("Sine peak should be near 1.0, got %f", peak)
	}
}

func TestSweepDuration(t *testing.T) {
	rate := beep.SampleRate(48000)
	dur := 120 * time.Millisecond

	s := NewSweep(300, 700, dur, rate)
	total, _ := drain(t, s)

	if total != rate.N(dur) {
		t.Errorf("Expected %d samples, got %d", rate.N(dur), total)
	}
}

func TestEnvelopeShapesAmplitude(t *testing.T) {
	rate := beep.SampleRate(48000)
	dur := 100 * time.Millisecond

	osc := NewOscillator(440, dur, WaveSquare, rate)
	env := NewEnvelope(osc, dur, 20*time.Millisecond, 20*time.Millisecond, rate)

	buf := make([][2]float64, 64)
	n, ok := env.Stream(buf)
	if !ok || n == 0 {
		t.Fatal("Envelope should stream samples")
	}

	// Attack ramp keeps the very first samples quiet.
	if first := buf[0][0]; first > 0.1 || first < -0.1 {
		t.Errorf("Attack should start near silence, got %f", first)
	}
}

func TestEffectStreamersFinite(t *testing.T) {
	rate := beep.SampleRate(48000)

	for name, s := range map[string]beep.Streamer{
		"jump":  CreateJumpSound(rate, 0.5),
		"land":  CreateLandSound(rate, 0.5),
		"death": CreateDeathSound(rate, 0.5),
	} {
		total, peak := drain(t, s)
		if total == 0 {
			t.Errorf("%s: effect produced no samples", name)
		}
		if peak > 1.0 {
			t.Errorf("%s: effect clips at %f", name, peak)
		}
	}
}

func TestManagerPlayBeforeInit(t *testing.T) {
	sm := NewSoundManager(0.5)

	// Must not panic or block without a speaker.
	sm.Play(SoundJump)
	sm.Cleanup()
}
