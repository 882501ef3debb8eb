package rooftop

// Cue identifies a moment worth reacting to outside the simulation, such
// as playing a sound. Cues carry no payload; the snapshot has the state.
type Cue string

const (
	CueJump  Cue = "jump"
	CueLand  Cue = "land"
	CueDeath Cue = "death"
)

// CueListener receives cues as they happen during a tick. Listeners must
// not call back into the run.
type CueListener interface {
	Cue(c Cue)
}

// CueFunc adapts a function to the CueListener interface.
type CueFunc func(Cue)

// Cue implements CueListener.
func (f CueFunc) Cue(c Cue) { f(c) }
