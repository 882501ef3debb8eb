package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Sound identifies one of the synthesized effects.
type Sound int

const (
	SoundJump Sound = iota
	SoundLand
	SoundDeath
)

// SoundManager owns the speaker and mixes effect streamers into it.
// All methods are safe to call before Initialize; they simply do nothing
// until the speaker is running, so the game works unchanged when audio
// is unavailable.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager with the given master volume
// in [0, 1].
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker and starts the mixer. Idempotent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer. The speaker itself has no close call in
// beep; clearing the mixer is enough to stop output.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play queues a one-shot effect. Unknown sounds and an uninitialized
// speaker are ignored.
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	var streamer beep.Streamer
	switch s {
	case SoundJump:
		streamer = CreateJumpSound(sampleRate, sm.volume)
	case SoundLand:
		streamer = CreateLandSound(sampleRate, sm.volume*0.8)
	case SoundDeath:
		streamer = CreateDeathSound(sampleRate, sm.volume)
	default:
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}
