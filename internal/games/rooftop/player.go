package rooftop

import "github.com/vovakirdan/rooftop-run/internal/config"

// TrailPoint is one recorded player position, newest last.
type TrailPoint struct {
	X, Y float64
}

// Player holds the runner's body and jump state machine. The player never
// moves horizontally; the world scrolls underneath. Jump requests are
// buffered so an input that arrives between ticks still fires on the next
// tick, and a request made while airborne is dropped rather than queued.
type Player struct {
	Body Body

	Grounded bool
	Alive    bool

	pendingJump   bool
	holding       bool
	holdElapsedMs float64

	trail    []TrailPoint
	trailCap int

	deathProgress float64 // 0 alive, ramps to 1 during the death animation
}

// NewPlayer creates a player sized per the config. Reset must be called
// before the first tick.
func NewPlayer(cfg config.RooftopPlayer) *Player {
	trailCap := cfg.TrailLength
	if trailCap < 1 {
		trailCap = 1
	}
	return &Player{
		Body:     Body{X: cfg.X, W: cfg.Width, H: cfg.Height},
		trail:    make([]TrailPoint, 0, trailCap),
		trailCap: trailCap,
	}
}

// Reset puts the player standing on the given rooftop with all jump and
// death state cleared.
func (p *Player) Reset(x, rooftopY float64) {
	p.Body.X = x
	p.Body.Y = rooftopY - p.Body.H
	p.Body.VX = 0
	p.Body.VY = 0
	p.Grounded = true
	p.Alive = true
	p.pendingJump = false
	p.holding = false
	p.holdElapsedMs = 0
	p.trail = p.trail[:0]
	p.deathProgress = 0
}

// RequestJump buffers a jump for the next tick. Ignored while airborne or
// dead, so holding the key cannot queue a second jump mid-air.
func (p *Player) RequestJump() {
	if !p.Alive || !p.Grounded {
		return
	}
	p.pendingJump = true
	p.holding = true
}

// ReleaseJump ends the variable-height hold window early. Safe to call at
// any time, including while grounded or dead.
func (p *Player) ReleaseJump() {
	p.holding = false
}

// startJumpIfPending consumes a buffered jump if the player is still
// grounded, applying takeoff velocity. Reports whether a jump started.
func (p *Player) startJumpIfPending(phys config.RooftopPhysics) bool {
	if !p.pendingJump {
		return false
	}
	p.pendingJump = false
	if !p.Grounded || !p.Alive {
		return false
	}
	p.Body.VY = phys.JumpPower
	p.Grounded = false
	p.holdElapsedMs = 0
	return true
}

// applyHoldBoost adds upward velocity while the jump key is held, within
// the hold window and only while still ascending. Once the window expires
// or the player starts falling the boost is spent for this jump.
func (p *Player) applyHoldBoost(phys config.RooftopPhysics, dt, deltaTimeMs float64) {
	if p.Grounded || !p.holding {
		return
	}
	if p.holdElapsedMs >= phys.MaxJumpHoldMs || p.Body.VY >= 0 {
		p.holding = false
		return
	}
	p.Body.VY += phys.JumpHoldPower * dt
	p.holdElapsedMs += deltaTimeMs
}

// land snaps the player on top of a rooftop and re-arms the jump.
func (p *Player) land(rooftopY float64) {
	p.Body.Y = rooftopY - p.Body.H
	p.Body.VY = 0
	p.Grounded = true
	p.holding = false
}

// kill ends the run. Idempotent; the death animation starts from the
// first call.
func (p *Player) kill() {
	if !p.Alive {
		return
	}
	p.Alive = false
	p.Grounded = false
	p.pendingJump = false
	p.holding = false
}

// updateTrail records the current position, evicting the oldest point
// once the trail is full.
func (p *Player) updateTrail() {
	if len(p.trail) == p.trailCap {
		copy(p.trail, p.trail[1:])
		p.trail = p.trail[:p.trailCap-1]
	}
	p.trail = append(p.trail, TrailPoint{X: p.Body.X, Y: p.Body.Y})
}

// advanceDeath progresses the death animation. Reports whether the
// animation has finished.
func (p *Player) advanceDeath(dt float64) bool {
	const deathFrames = 45.0
	p.deathProgress += dt / deathFrames
	if p.deathProgress >= 1 {
		p.deathProgress = 1
		return true
	}
	return false
}

// Trail returns the recorded positions, oldest first. The slice is only
// valid until the next tick.
func (p *Player) Trail() []TrailPoint {
	return p.trail
}

// DeathProgress returns how far the death animation has advanced, in
// [0, 1].
func (p *Player) DeathProgress() float64 {
	return p.deathProgress
}
