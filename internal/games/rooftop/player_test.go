package rooftop

import (
	"testing"

	"github.com/vovakirdan/rooftop-run/internal/config"
)

func newTestPlayer() (*Player, config.RooftopConfig) {
	cfg := config.DefaultRooftopConfig()
	p := NewPlayer(cfg.Player)
	p.Reset(cfg.Player.X, 440)
	return p, cfg
}

func TestPlayerResetState(t *testing.T) {
	p, cfg := newTestPlayer()

	if !p.Grounded || !p.Alive {
		t.Error("Reset player should be grounded and alive")
	}
	if p.Body.Bottom() != 440 {
		t.Errorf("Feet should rest on the rooftop at 440, got %f", p.Body.Bottom())
	}
	if p.Body.X != cfg.Player.X {
		t.Errorf("Player x should be fixed at %f, got %f", cfg.Player.X, p.Body.X)
	}
	if len(p.Trail()) != 0 {
		t.Error("Reset should clear the trail")
	}
	if p.DeathProgress() != 0 {
		t.Error("Reset should clear death progress")
	}
}

func TestPlayerJumpBuffering(t *testing.T) {
	p, cfg := newTestPlayer()

	if p.startJumpIfPending(cfg.Physics) {
		t.Error("No jump should start without a request")
	}

	p.RequestJump()
	if !p.startJumpIfPending(cfg.Physics) {
		t.Fatal("Buffered jump should start")
	}
	if p.Grounded {
		t.Error("Takeoff should leave the ground")
	}
	if p.Body.VY != cfg.Physics.JumpPower {
		t.Errorf("Takeoff velocity should be %f, got %f", cfg.Physics.JumpPower, p.Body.VY)
	}

	// The buffer is consumed; the same request does not fire twice.
	if p.startJumpIfPending(cfg.Physics) {
		t.Error("Consumed jump should not start again")
	}
}

func TestPlayerAirborneRequestDropped(t *testing.T) {
	p, cfg := newTestPlayer()

	p.RequestJump()
	p.startJumpIfPending(cfg.Physics)

	p.RequestJump() // airborne, must be dropped rather than queued
	if p.pendingJump {
		t.Error("Airborne request should not queue")
	}

	p.land(440)
	if p.startJumpIfPending(cfg.Physics) {
		t.Error("Landing must not release a jump queued mid-air")
	}
}

func TestPlayerHoldBoostWindow(t *testing.T) {
	p, cfg := newTestPlayer()

	p.RequestJump()
	p.startJumpIfPending(cfg.Physics)

	before := p.Body.VY
	p.applyHoldBoost(cfg.Physics, 1, 16.667)
	if p.Body.VY >= before {
		t.Error("Hold boost should add upward velocity")
	}

	// Exhaust the window; further boosts are inert.
	for i := 0; i < 100; i++ {
		p.applyHoldBoost(cfg.Physics, 1, 16.667)
	}
	if p.holding {
		t.Error("Hold should expire after the window")
	}
	vy := p.Body.VY
	p.applyHoldBoost(cfg.Physics, 1, 16.667)
	if p.Body.VY != vy {
		t.Error("Expired hold should not change velocity")
	}
}

func TestPlayerHoldStopsOnRelease(t *testing.T) {
	p, cfg := newTestPlayer()

	p.RequestJump()
	p.startJumpIfPending(cfg.Physics)
	p.ReleaseJump()

	vy := p.Body.VY
	p.applyHoldBoost(cfg.Physics, 1, 16.667)
	if p.Body.VY != vy {
		t.Error("Released hold should not boost")
	}
}

func TestPlayerHoldStopsOnDescent(t *testing.T) {
	p, cfg := newTestPlayer()

	p.RequestJump()
	p.startJumpIfPending(cfg.Physics)
	p.Body.VY = 1 // already falling

	p.applyHoldBoost(cfg.Physics, 1, 16.667)
	if p.Body.VY != 1 {
		t.Error("Boost should never apply while descending")
	}
	if p.holding {
		t.Error("Descent should end the hold")
	}
}

func TestPlayerLandRearmsJump(t *testing.T) {
	p, cfg := newTestPlayer()

	p.RequestJump()
	p.startJumpIfPending(cfg.Physics)
	p.Body.VY = 8

	p.land(400)

	if !p.Grounded {
		t.Error("Landing should ground the player")
	}
	if p.Body.Bottom() != 400 {
		t.Errorf("Feet should snap to the rooftop at 400, got %f", p.Body.Bottom())
	}
	if p.Body.VY != 0 {
		t.Errorf("Landing should zero vertical velocity, got %f", p.Body.VY)
	}

	p.RequestJump()
	if !p.startJumpIfPending(cfg.Physics) {
		t.Error("Jump should be available again after landing")
	}
}

func TestPlayerKillIdempotent(t *testing.T) {
	p, _ := newTestPlayer()

	p.kill()
	p.kill()

	if p.Alive || p.Grounded {
		t.Error("Killed player should be dead and airborne")
	}

	p.RequestJump()
	if p.pendingJump {
		t.Error("Dead player should not accept jump requests")
	}
}

func TestPlayerTrailCapped(t *testing.T) {
	cfg := config.DefaultRooftopConfig()
	p := NewPlayer(cfg.Player)
	p.Reset(cfg.Player.X, 440)

	for i := 0; i < cfg.Player.TrailLength*3; i++ {
		p.Body.Y = float64(i)
		p.updateTrail()
	}

	trail := p.Trail()
	if len(trail) != cfg.Player.TrailLength {
		t.Fatalf("Trail should cap at %d points, got %d", cfg.Player.TrailLength, len(trail))
	}
	// Newest point last, oldest evicted first.
	last := trail[len(trail)-1]
	if last.Y != float64(cfg.Player.TrailLength*3-1) {
		t.Errorf("Newest trail point should be last, got y=%f", last.Y)
	}
	for i := 1; i < len(trail); i++ {
		if trail[i].Y < trail[i-1].Y {
			t.Fatal("Trail should stay in insertion order")
		}
	}
}

func TestPlayerDeathAnimationCompletes(t *testing.T) {
	p, _ := newTestPlayer()
	p.kill()

	done := false
	for i := 0; i < 200 && !done; i++ {
		done = p.advanceDeath(1)
	}

	if !done {
		t.Fatal("Death animation should finish")
	}
	if p.DeathProgress() != 1 {
		t.Errorf("Death progress should clamp at 1, got %f", p.DeathProgress())
	}
}
