// Package config provides YAML-based configuration loading for the
// rooftop runner. All tunables that shape a run live here; invariant
// bounds that keep the game winnable (gap difficulty cap, width floors)
// are constants in the game package, not configuration.
package config

// RooftopConfig contains all configuration for the rooftop runner.
type RooftopConfig struct {
	Physics RooftopPhysics `yaml:"physics"`
	World   RooftopWorld   `yaml:"world"`
	Player  RooftopPlayer  `yaml:"player"`
	Score   RooftopScore   `yaml:"score"`
}

// RooftopPhysics defines the kinematic tunables. Velocities and
// accelerations are in world units per reference frame (16.667 ms);
// the simulation normalizes each tick's delta against that frame.
type RooftopPhysics struct {
	Gravity          float64 `yaml:"gravity"`            // downward acceleration per frame
	TerminalVelocity float64 `yaml:"terminal_velocity"`  // fall speed clamp
	JumpPower        float64 `yaml:"jump_power"`         // initial jump velocity (negative = up)
	JumpHoldPower    float64 `yaml:"jump_hold_power"`    // extra upward impulse per frame while held
	MaxJumpHoldMs    float64 `yaml:"max_jump_hold_ms"`   // hold window for variable jump height
}

// RooftopWorld defines the generation and scrolling tunables.
type RooftopWorld struct {
	BaseSpeed          float64 `yaml:"base_speed"`           // scroll speed at distance 0
	MaxSpeed           float64 `yaml:"max_speed"`            // scroll speed cap
	SpeedIncreaseRate  float64 `yaml:"speed_increase_rate"`  // speed gained per unit distance
	MinGap             float64 `yaml:"min_gap"`              // narrowest gap before difficulty scaling
	MaxGap             float64 `yaml:"max_gap"`              // widest gap before difficulty scaling
	MinWidth           float64 `yaml:"min_width"`            // narrowest building before shrink
	MaxWidth           float64 `yaml:"max_width"`            // widest building before shrink
	WidthShrinkRate    float64 `yaml:"width_shrink_rate"`    // width lost per difficulty level above 1
	HeightVariation    float64 `yaml:"height_variation"`     // max rooftop step between neighbors
	MaxRise            float64 `yaml:"max_rise"`             // rooftops never higher than groundY minus this
	MaxDrop            float64 `yaml:"max_drop"`             // rooftops never lower than groundY plus this
	Lookahead          float64 `yaml:"lookahead"`            // generation margin beyond the viewport
	ReleaseMargin      float64 `yaml:"release_margin"`       // how far off-screen before a building is pooled
	DifficultyDistance float64 `yaml:"difficulty_distance"`  // distance for one full difficulty level
	GroundOffset       float64 `yaml:"ground_offset"`        // groundY measured up from the viewport bottom
	SafeRunWidth       float64 `yaml:"safe_run_width"`       // length of the starting rooftop
}

// RooftopPlayer defines the player body and presentation tunables.
type RooftopPlayer struct {
	X           float64 `yaml:"x"`             // fixed horizontal position in the viewport
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	FallMargin  float64 `yaml:"fall_margin"`  // how far below the viewport counts as a fatal fall
	TrailLength int     `yaml:"trail_length"` // positions kept in the render trail
}

// RooftopScore defines score accrual.
type RooftopScore struct {
	Rate float64 `yaml:"rate"` // score per unit of scrolled distance
}
