package rooftop

// Phase is the run lifecycle state.
type Phase string

const (
	PhaseRunning  Phase = "running"
	PhaseDying    Phase = "dying"
	PhaseGameOver Phase = "game_over"
)

// PlatformSnapshot is the render-facing view of one building.
type PlatformSnapshot struct {
	X, Y   float64
	Width  float64
	Height float64
	Style  uint64
}

// PlayerSnapshot is the render-facing view of the runner.
type PlayerSnapshot struct {
	X, Y          float64
	Width, Height float64
	VY            float64
	Grounded      bool
	Trail         []TrailPoint
	DeathProgress float64
}

// Snapshot is the full observable state of a run after a tick. It is a
// value copy; mutating it has no effect on the simulation.
type Snapshot struct {
	Phase      Phase
	Score      int
	Distance   float64
	Speed      float64
	Difficulty float64
	Player     PlayerSnapshot
	Platforms  []PlatformSnapshot
}
