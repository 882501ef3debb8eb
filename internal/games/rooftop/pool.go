package rooftop

import "github.com/vovakirdan/rooftop-run/internal/core"

// Platform is one building: a rectangle whose top edge (Y) is the rooftop
// surface the player runs on. Height extends far below the visible area so
// the body reads as solid ground rather than a floating box.
type Platform struct {
	X      float64
	Y      float64 // rooftop line (top edge)
	Width  float64
	Height float64
	Active bool
	Style  uint64 // silhouette seed, fixed at spawn
}

// Rect returns the platform's collision rectangle.
func (p *Platform) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// Right returns the x-coordinate of the platform's right edge.
func (p *Platform) Right() float64 {
	return p.X + p.Width
}

// pool is an arena of platform slots addressed by index handle with an
// explicit free list. Released slots are reused, never deleted; the arena
// grows on demand, so exhaustion cannot occur.
type pool struct {
	slots []Platform
	free  []int
}

func newPool(capacity int) *pool {
	return &pool{
		slots: make([]Platform, 0, capacity),
		free:  make([]int, 0, capacity),
	}
}

// acquire returns the handle of a fresh active slot.
func (p *pool) acquire() int {
	if n := len(p.free); n > 0 {
		h := p.free[n-1]
		p.free = p.free[:n-1]
		p.slots[h] = Platform{Active: true}
		return h
	}
	p.slots = append(p.slots, Platform{Active: true})
	return len(p.slots) - 1
}

// release returns a slot to the free list. Releasing an inactive or
// out-of-range handle is a no-op.
func (p *pool) release(h int) {
	if h < 0 || h >= len(p.slots) || !p.slots[h].Active {
		return
	}
	p.slots[h].Active = false
	p.free = append(p.free, h)
}

// get returns the slot for a handle. The pointer stays valid until the
// arena grows, so callers must not hold it across an acquire.
func (p *pool) get(h int) *Platform {
	return &p.slots[h]
}

// size returns the total number of slots ever allocated.
func (p *pool) size() int {
	return len(p.slots)
}
