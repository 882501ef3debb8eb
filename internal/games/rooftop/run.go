package rooftop

import (
	"github.com/vovakirdan/rooftop-run/internal/config"
	"github.com/vovakirdan/rooftop-run/internal/core"
)

const (
	// maxFrameMs caps a single tick's delta. A delta past the cap means
	// the process was suspended; simulating it would teleport the player,
	// so the tick falls back to one reference frame.
	maxFrameMs = 250.0

	// landEps is the slack on the previous-bottom check when resolving a
	// landing, absorbing float drift from variable timesteps.
	landEps = 0.5

	// faceTolerance is how far below a rooftop the player's feet may be
	// and still land on the edge instead of slamming into the wall.
	faceTolerance = 4.0
)

// Run drives one life of the rooftop runner: it owns the world and the
// player, advances both each tick, resolves collisions, and accrues
// score. Run is not safe for concurrent use; the platform loop calls it
// from a single goroutine.
type Run struct {
	cfg      config.RooftopConfig
	rt       core.RuntimeConfig
	world    *World
	player   *Player
	phase    Phase
	scoreAcc float64
	listener CueListener
}

// NewRun builds a run from configuration. Reset must be called before
// the first Tick.
func NewRun(cfg config.RooftopConfig, rt core.RuntimeConfig) *Run {
	groundY := rt.ViewportH - cfg.World.GroundOffset
	return &Run{
		cfg:    cfg,
		rt:     rt,
		world:  NewWorld(cfg.World, rt.ViewportW, groundY, rt.Seed),
		player: NewPlayer(cfg.Player),
		phase:  PhaseGameOver,
	}
}

// SetListener registers a cue listener. Pass nil to silence cues.
func (r *Run) SetListener(l CueListener) {
	r.listener = l
}

// Reset starts a fresh life on the safe rooftop. With an unchanged seed
// the regenerated world is identical to the previous run's.
func (r *Run) Reset() {
	groundY := r.world.GroundY()
	r.player.Reset(r.cfg.Player.X, groundY)
	r.world.Reset(r.cfg.Player.X, groundY)
	r.phase = PhaseRunning
	r.scoreAcc = 0
}

// RequestJump buffers a jump for the next tick.
func (r *Run) RequestJump() {
	if r.phase != PhaseRunning {
		return
	}
	r.player.RequestJump()
}

// ReleaseJump ends the variable-height hold window.
func (r *Run) ReleaseJump() {
	r.player.ReleaseJump()
}

// Tick advances the simulation by deltaTimeMs of wall time. The order is
// fixed: input, scroll, ground support, integration, collision, bounds,
// score. Ticking a finished run is a no-op.
func (r *Run) Tick(deltaTimeMs float64) {
	if deltaTimeMs <= 0 || deltaTimeMs > maxFrameMs {
		deltaTimeMs = core.ReferenceFrameMs
	}
	dt := deltaTimeMs / core.ReferenceFrameMs

	switch r.phase {
	case PhaseGameOver:
		return
	case PhaseDying:
		r.tickDying(dt)
		return
	}

	body := &r.player.Body
	phys := r.cfg.Physics

	if r.player.startJumpIfPending(phys) {
		r.emit(CueJump)
	}
	r.player.applyHoldBoost(phys, dt, deltaTimeMs)

	distBefore := r.world.Distance()
	r.world.Update(dt)
	gained := r.world.Distance() - distBefore

	// Walk-off: a grounded player with no rooftop left under them starts
	// falling without a jump.
	if r.player.Grounded && r.supportUnder() == nil {
		r.player.Grounded = false
	}

	prevBottom := body.Bottom()
	prevTop := body.Y
	if !r.player.Grounded {
		ApplyGravity(body, phys.Gravity, phys.TerminalVelocity, dt)
	}
	Integrate(body, dt)

	if !r.player.Grounded {
		r.resolveCollisions(prevTop, prevBottom)
	}

	if body.Y > r.rt.ViewportH+r.cfg.Player.FallMargin {
		r.kill()
	}

	r.scoreAcc += gained * r.cfg.Score.Rate
	r.player.updateTrail()
}

// tickDying lets the body keep falling while the death animation plays,
// then locks the run into game over.
func (r *Run) tickDying(dt float64) {
	body := &r.player.Body
	ApplyGravity(body, r.cfg.Physics.Gravity, r.cfg.Physics.TerminalVelocity, dt)
	Integrate(body, dt)
	r.player.updateTrail()
	if r.player.advanceDeath(dt) {
		r.phase = PhaseGameOver
	}
}

// supportUnder returns the rooftop the player is standing on, or nil when
// their feet are over a gap. Support requires horizontal overlap and the
// feet resting at the rooftop line.
func (r *Run) supportUnder() *Platform {
	body := &r.player.Body
	var found *Platform
	r.world.Platforms(func(p *Platform) {
		if found != nil {
			return
		}
		if p.X >= body.Right() || body.X >= p.Right() {
			return
		}
		if core.AbsF(body.Bottom()-p.Y) <= landEps {
			found = p
		}
	})
	return found
}

// resolveCollisions lands the player on a rooftop when the crossing came
// from above, and kills them when they hit a building face or clip up
// into a body. prevTop/prevBottom are the pre-integration edges.
func (r *Run) resolveCollisions(prevTop, prevBottom float64) {
	body := &r.player.Body
	var landOn *Platform
	fatal := false

	r.world.Platforms(func(p *Platform) {
		if landOn != nil || fatal {
			return
		}
		if p.X >= body.Right() || body.X >= p.Right() {
			return
		}
		crossedDown := body.VY >= 0 && prevBottom <= p.Y+landEps && body.Bottom() >= p.Y
		if crossedDown {
			// Rising through the rooftop from inside the body is an
			// impact, not a landing.
			if prevTop < p.Y {
				landOn = p
				return
			}
			fatal = true
			return
		}
		// Face hit: the building's left wall is inside the player's span
		// and the feet are too deep to count as an edge landing.
		if body.X < p.X && body.Bottom() > p.Y+faceTolerance {
			fatal = true
		}
	})

	switch {
	case fatal:
		r.kill()
	case landOn != nil:
		r.player.land(landOn.Y)
		r.emit(CueLand)
	}
}

// kill transitions running to dying exactly once and emits the death cue.
func (r *Run) kill() {
	if r.phase != PhaseRunning {
		return
	}
	r.player.kill()
	r.phase = PhaseDying
	r.emit(CueDeath)
}

func (r *Run) emit(c Cue) {
	if r.listener != nil {
		r.listener.Cue(c)
	}
}

// Score returns the whole-number score accrued so far.
func (r *Run) Score() int {
	return int(r.scoreAcc)
}

// Phase returns the current lifecycle phase.
func (r *Run) Phase() Phase {
	return r.phase
}

// Over reports whether the run has fully ended, death animation included.
func (r *Run) Over() bool {
	return r.phase == PhaseGameOver
}

// Snapshot copies the observable state for rendering. The platform slice
// is freshly allocated; the trail aliases the player's buffer and is
// valid until the next Tick.
func (r *Run) Snapshot() Snapshot {
	body := &r.player.Body
	snap := Snapshot{
		Phase:      r.phase,
		Score:      r.Score(),
		Distance:   r.world.Distance(),
		Speed:      r.world.ScrollSpeed(),
		Difficulty: r.world.Difficulty(),
		Player: PlayerSnapshot{
			X:             body.X,
			Y:             body.Y,
			Width:         body.W,
			Height:        body.H,
			VY:            body.VY,
			Grounded:      r.player.Grounded,
			Trail:         r.player.Trail(),
			DeathProgress: r.player.DeathProgress(),
		},
	}
	r.world.Platforms(func(p *Platform) {
		snap.Platforms = append(snap.Platforms, PlatformSnapshot{
			X:      p.X,
			Y:      p.Y,
			Width:  p.Width,
			Height: p.Height,
			Style:  p.Style,
		})
	})
	return snap
}
