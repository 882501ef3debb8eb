package rooftop

import (
	"math"

	"github.com/vovakirdan/rooftop-run/internal/config"
)

// Bounds that keep the game winnable regardless of how far the difficulty
// scalar grows. They are deliberately not configurable.
const (
	// gapDifficultyCap limits how much difficulty can widen gaps.
	gapDifficultyCap = 2.0
	// minWidthFloor / maxWidthFloor stop difficulty shrink from making
	// buildings vanish.
	minWidthFloor = 120.0
	maxWidthFloor = 250.0
)

// difficultyAt derives the difficulty scalar from distance traveled.
// It grows without bound; the formulas that consume it apply their own
// caps and floors.
func difficultyAt(distance, difficultyDistance float64) float64 {
	if difficultyDistance <= 0 {
		return 1
	}
	return 1 + distance/difficultyDistance
}

// gapScale returns the multiplier difficulty applies to gap widths,
// capped so gaps stay clearable at full jump power.
func gapScale(difficulty float64) float64 {
	return math.Min(difficulty, gapDifficultyCap)
}

// widthBounds returns the building-width range at the given difficulty.
// Both bounds shrink as difficulty rises and are floored independently.
func widthBounds(w config.RooftopWorld, difficulty float64) (lo, hi float64) {
	shrink := (difficulty - 1) * w.WidthShrinkRate
	lo = math.Max(w.MinWidth-shrink, minWidthFloor)
	hi = math.Max(w.MaxWidth-shrink, maxWidthFloor)
	return lo, hi
}
