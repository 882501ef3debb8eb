package rooftop

import (
	"testing"

	"github.com/vovakirdan/rooftop-run/internal/config"
)

func newTestWorld(seed int64) *World {
	cfg := config.DefaultRooftopConfig()
	w := NewWorld(cfg.World, 960, 440, seed)
	w.Reset(100, 440)
	return w
}

func collectPlatforms(w *World) []Platform {
	var out []Platform
	w.Platforms(func(p *Platform) {
		out = append(out, *p)
	})
	return out
}

func TestWorldNoHorizontalOverlap(t *testing.T) {
	w := newTestWorld(7)

	for tick := 0; tick < 5000; tick++ {
		w.Update(1)
		plats := collectPlatforms(w)
		for i := 1; i < len(plats); i++ {
			if plats[i-1].Right() > plats[i].X {
				t.Fatalf("Tick %d: platforms overlap: [%f, %f] and [%f, %f]",
					tick, plats[i-1].X, plats[i-1].Right(), plats[i].X, plats[i].Right())
			}
		}
	}
}

func TestWorldGapAndWidthBounds(t *testing.T) {
	cfg := config.DefaultRooftopConfig().World
	w := newTestWorld(21)

	maxGap := cfg.MaxGap * gapDifficultyCap

	for tick := 0; tick < 20000; tick++ {
		w.Update(1)
		plats := collectPlatforms(w)
		for i, p := range plats {
			if p.Width < minWidthFloor {
				t.Fatalf("Tick %d: width %f below floor %f", tick, p.Width, minWidthFloor)
			}
			if i == 0 {
				continue
			}
			gap := p.X - plats[i-1].Right()
			if gap < cfg.MinGap || gap > maxGap+1e-6 {
				t.Fatalf("Tick %d: gap %f outside [%f, %f]", tick, gap, cfg.MinGap, maxGap)
			}
		}
	}
}

func TestWorldRooftopHeightBounds(t *testing.T) {
	cfg := config.DefaultRooftopConfig().World
	w := newTestWorld(3)

	lo := w.GroundY() - cfg.MaxRise
	hi := w.GroundY() + cfg.MaxDrop

	for tick := 0; tick < 10000; tick++ {
		w.Update(1)
		w.Platforms(func(p *Platform) {
			if p.Y < lo || p.Y > hi {
				t.Fatalf("Tick %d: rooftop %f outside [%f, %f]", tick, p.Y, lo, hi)
			}
		})
	}
}

func TestWorldSpeedRampMonotonic(t *testing.T) {
	cfg := config.DefaultRooftopConfig().World
	w := newTestWorld(1)

	prev := w.ScrollSpeed()
	if prev != cfg.BaseSpeed {
		t.Fatalf("Speed should start at base %f, got %f", cfg.BaseSpeed, prev)
	}

	for tick := 0; tick < 20000; tick++ {
		w.Update(1)
		speed := w.ScrollSpeed()
		if speed < prev {
			t.Fatalf("Tick %d: speed decreased from %f to %f", tick, prev, speed)
		}
		if speed > cfg.MaxSpeed {
			t.Fatalf("Tick %d: speed %f above cap %f", tick, speed, cfg.MaxSpeed)
		}
		prev = speed
	}

	if prev != cfg.MaxSpeed {
		t.Errorf("Speed should reach the cap after a long run, got %f", prev)
	}
}

func TestWorldCoversLookahead(t *testing.T) {
	cfg := config.DefaultRooftopConfig().World
	w := newTestWorld(9)

	for tick := 0; tick < 5000; tick++ {
		w.Update(1)
		plats := collectPlatforms(w)
		last := plats[len(plats)-1]
		if last.Right() < 960+cfg.Lookahead {
			t.Fatalf("Tick %d: frontier %f short of %f", tick, last.Right(), 960+cfg.Lookahead)
		}
	}
}

func TestWorldReleasesOffscreenPlatforms(t *testing.T) {
	cfg := config.DefaultRooftopConfig().World
	w := newTestWorld(5)

	for tick := 0; tick < 20000; tick++ {
		w.Update(1)
		w.Platforms(func(p *Platform) {
			if p.Right() < -cfg.ReleaseMargin {
				t.Fatalf("Tick %d: platform at [%f, %f] should have been released",
					tick, p.X, p.Right())
			}
		})
	}

	// Recycling keeps the arena small no matter how long the run.
	if w.pool.size() > 64 {
		t.Errorf("Pool grew to %d slots; releases are not recycling", w.pool.size())
	}
}

func TestWorldResetRegeneratesIdentically(t *testing.T) {
	w := newTestWorld(42)

	for i := 0; i < 500; i++ {
		w.Update(1)
	}

	w.Reset(100, 440)
	first := collectPlatforms(w)

	w.Reset(100, 440)
	second := collectPlatforms(w)

	if len(first) != len(second) {
		t.Fatalf("Platform counts differ after reset: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Platform %d differs after reset: %+v vs %+v", i, first[i], second[i])
		}
	}
	if w.Distance() != 0 {
		t.Errorf("Reset should zero distance, got %f", w.Distance())
	}
}

func TestWorldPlatformAt(t *testing.T) {
	w := newTestWorld(11)

	plats := collectPlatforms(w)
	first := plats[0]

	if got := w.PlatformAt(first.X + 1); got == nil || got.X != first.X {
		t.Errorf("PlatformAt inside the safe rooftop should find it, got %+v", got)
	}
	if got := w.PlatformAt(first.Right() + 1); got != nil && got.X == first.X {
		t.Error("PlatformAt just past the right edge should not return the same platform")
	}
	if got := w.PlatformAt(-1e6); got != nil {
		t.Errorf("PlatformAt far off-world should return nil, got %+v", got)
	}
}

func TestDifficultyFormulas(t *testing.T) {
	cfg := config.DefaultRooftopConfig().World

	if d := difficultyAt(0, cfg.DifficultyDistance); d != 1 {
		t.Errorf("Difficulty at distance 0 should be 1, got %f", d)
	}
	if d := difficultyAt(cfg.DifficultyDistance, cfg.DifficultyDistance); d != 2 {
		t.Errorf("Difficulty after one full interval should be 2, got %f", d)
	}

	if s := gapScale(5); s != gapDifficultyCap {
		t.Errorf("Gap scale should cap at %f, got %f", gapDifficultyCap, s)
	}

	lo, hi := widthBounds(cfg, 1000)
	if lo != minWidthFloor || hi != maxWidthFloor {
		t.Errorf("Width bounds should floor at (%f, %f), got (%f, %f)",
			minWidthFloor, maxWidthFloor, lo, hi)
	}
}
