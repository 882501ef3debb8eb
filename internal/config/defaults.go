package config

import (
	_ "embed"
)

//go:embed defaults/rooftop.yaml
var defaultRooftopYAML []byte

// DefaultRooftopConfig returns the default rooftop runner configuration.
// Kept in sync with defaults/rooftop.yaml; the hardcoded copy is the
// fallback of last resort if the embedded YAML fails to parse.
func DefaultRooftopConfig() RooftopConfig {
	return RooftopConfig{
		Physics: RooftopPhysics{
			Gravity:          0.6,
			TerminalVelocity: 14.0,
			JumpPower:        -13.0,
			JumpHoldPower:    -0.5,
			MaxJumpHoldMs:    180,
		},
		World: RooftopWorld{
			BaseSpeed:          5.0,
			MaxSpeed:           11.0,
			SpeedIncreaseRate:  0.0012,
			MinGap:             60,
			MaxGap:             160,
			MinWidth:           200,
			MaxWidth:           400,
			WidthShrinkRate:    60,
			HeightVariation:    40,
			MaxRise:            100,
			MaxDrop:            60,
			Lookahead:          300,
			ReleaseMargin:      50,
			DifficultyDistance: 3000,
			GroundOffset:       100,
			SafeRunWidth:       600,
		},
		Player: RooftopPlayer{
			X:           100,
			Width:       32,
			Height:      48,
			FallMargin:  100,
			TrailLength: 12,
		},
		Score: RooftopScore{
			Rate: 0.1,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
// Used by the `config` command so players can dump and edit it.
func DefaultYAML() []byte {
	return defaultRooftopYAML
}
