package rooftop

import (
	"github.com/vovakirdan/rooftop-run/internal/config"
	"github.com/vovakirdan/rooftop-run/internal/core"
)

// buildingDepth is how far a building body extends below its rooftop.
// Deep enough that no rooftop within the staircase bounds ever exposes a
// bottom edge inside the viewport.
const buildingDepth = 2000.0

// World owns the platform pool and the generation frontier. It produces
// buildings ahead of the scroll, shifts them left each tick, and retires
// them once they are fully off-screen.
//
// Generation is strictly left to right: every new building starts at the
// frontier plus a positive gap, so active spans never overlap in x.
type World struct {
	cfg       config.RooftopWorld
	seed      int64
	rng       *rng
	pool      *pool
	active    []int // handles ordered left to right
	viewportW float64
	groundY   float64

	scrollSpeed     float64
	distance        float64
	lastPlatformEnd float64 // generation frontier
	lastRooftopY    float64
}

// NewWorld creates a world for the given viewport. The world is empty
// until Reset lays down the starting rooftop.
func NewWorld(cfg config.RooftopWorld, viewportW, groundY float64, seed int64) *World {
	return &World{
		cfg:       cfg,
		seed:      seed,
		rng:       newRNG(seed),
		pool:      newPool(16),
		active:    make([]int, 0, 16),
		viewportW: viewportW,
		groundY:   groundY,
	}
}

// Reset releases every building back to the pool, zeroes the accumulators,
// reseeds the generator, and lays down the starting rooftop plus enough
// buildings to cover the viewport and lookahead. rooftopY is the surface
// the player starts standing on.
func (w *World) Reset(startX, rooftopY float64) {
	for _, h := range w.active {
		w.pool.release(h)
	}
	w.active = w.active[:0]
	w.rng = newRNG(w.seed)

	w.scrollSpeed = w.cfg.BaseSpeed
	w.distance = 0

	// One long safe run under the player so the first jump is never forced.
	safeStart := startX - w.cfg.ReleaseMargin
	w.spawn(safeStart, rooftopY, w.cfg.SafeRunWidth)
	w.lastPlatformEnd = safeStart + w.cfg.SafeRunWidth
	w.lastRooftopY = rooftopY

	w.generateAhead()
}

// Update advances the scroll by dt normalized frames: speed ramp, platform
// shift and release, then frontier generation.
func (w *World) Update(dt float64) {
	amount := w.scrollSpeed * dt
	w.distance += amount
	w.advanceSpeed()
	w.shift(amount)
	// Retire the frontier by the same amount so the generation check stays
	// frontier-relative rather than absolute.
	w.lastPlatformEnd -= amount
	w.generateAhead()
}

// advanceSpeed ramps the scroll speed linearly with distance, capped at
// MaxSpeed. Distance only grows, so speed never decreases.
func (w *World) advanceSpeed() {
	speed := w.cfg.BaseSpeed + w.distance*w.cfg.SpeedIncreaseRate
	if speed > w.cfg.MaxSpeed {
		speed = w.cfg.MaxSpeed
	}
	w.scrollSpeed = speed
}

// shift moves every active building left and releases the ones whose
// right edge has passed the release margin. The margin sits past x=0 so
// buildings never pop out while still partially visible.
func (w *World) shift(amount float64) {
	kept := w.active[:0]
	for _, h := range w.active {
		p := w.pool.get(h)
		p.X -= amount
		if p.Right() < -w.cfg.ReleaseMargin {
			w.pool.release(h)
			continue
		}
		kept = append(kept, h)
	}
	w.active = kept
}

// generateAhead synthesizes buildings until the frontier covers the
// viewport plus the lookahead margin.
func (w *World) generateAhead() {
	for w.lastPlatformEnd < w.viewportW+w.cfg.Lookahead {
		d := w.Difficulty()

		gap := w.rng.Range(w.cfg.MinGap, w.cfg.MaxGap) * gapScale(d)

		lo, hi := widthBounds(w.cfg, d)
		width := w.rng.Range(lo, hi)

		// Bounded staircase: the next rooftop steps up or down from the
		// previous one but stays within reach of a full jump.
		y := core.ClampF(
			w.lastRooftopY+w.rng.Range(-w.cfg.HeightVariation, w.cfg.HeightVariation),
			w.groundY-w.cfg.MaxRise,
			w.groundY+w.cfg.MaxDrop,
		)

		x := w.lastPlatformEnd + gap
		w.spawn(x, y, width)
		w.lastPlatformEnd = x + width
		w.lastRooftopY = y
	}
}

// spawn acquires a pooled slot and appends it to the active list.
func (w *World) spawn(x, y, width float64) {
	h := w.pool.acquire()
	p := w.pool.get(h)
	p.X = x
	p.Y = y
	p.Width = width
	p.Height = buildingDepth
	p.Style = w.rng.Uint64()
	w.active = append(w.active, h)
}

// PlatformAt returns the active building whose horizontal span contains x,
// or nil when x is over a gap. Spans never overlap, so the first hit is
// the only hit; the linear scan is fine for the small active set.
func (w *World) PlatformAt(x float64) *Platform {
	for _, h := range w.active {
		p := w.pool.get(h)
		if p.Rect().ContainsX(x) {
			return p
		}
	}
	return nil
}

// Platforms calls fn for every active building, left to right.
func (w *World) Platforms(fn func(*Platform)) {
	for _, h := range w.active {
		fn(w.pool.get(h))
	}
}

// Difficulty returns the current difficulty scalar derived from distance.
func (w *World) Difficulty() float64 {
	return difficultyAt(w.distance, w.cfg.DifficultyDistance)
}

// ScrollSpeed returns the current forward velocity.
func (w *World) ScrollSpeed() float64 {
	return w.scrollSpeed
}

// Distance returns the total distance scrolled this run.
func (w *World) Distance() float64 {
	return w.distance
}

// GroundY returns the baseline rooftop level the staircase is bounded
// around.
func (w *World) GroundY() float64 {
	return w.groundY
}
