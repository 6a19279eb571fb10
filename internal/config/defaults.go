package config

import (
	_ "embed"
)

//go:embed defaults/scratch.yaml
var defaultScratchYAML []byte

// DefaultScratchConfig returns the default configuration.
// It mirrors defaults/scratch.yaml and is used if the embedded file cannot be parsed.
func DefaultScratchConfig() ScratchConfig {
	return ScratchConfig{
		Timing: ScratchTiming{
			MinWaitMS:       1000,
			MaxWaitMS:       4000,
			WarningLeadMS:   700,
			ScoreIntervalMS: 50, // 20 points per second of held time
			ShakeMS:         500,
		},
		Scoring: ScratchScoring{
			PointsPerTick:     1,
			WarningMultiplier: 2,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultScratchYAML
}
