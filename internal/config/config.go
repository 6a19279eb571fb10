// Package config provides YAML-based game configuration loading and
// difficulty presets for Scratch the Cat.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ScratchConfig contains all configuration for the cat-scratching game.
type ScratchConfig struct {
	Timing  ScratchTiming  `yaml:"timing"`
	Scoring ScratchScoring `yaml:"scoring"`
	Assets  ScratchAssets  `yaml:"assets"`
}

// ScratchTiming defines the hold timers, in milliseconds.
type ScratchTiming struct {
	MinWaitMS       int `yaml:"min_wait_ms"`       // Shortest delay before the attack
	MaxWaitMS       int `yaml:"max_wait_ms"`       // Exclusive upper bound of the delay
	WarningLeadMS   int `yaml:"warning_lead_ms"`   // Warning fires this long before the attack
	ScoreIntervalMS int `yaml:"score_interval_ms"` // Scoring tick period while holding
	ShakeMS         int `yaml:"shake_ms"`          // Length of the shake pulse
}

// ScratchScoring defines how held time turns into points.
type ScratchScoring struct {
	PointsPerTick     int     `yaml:"points_per_tick"`
	WarningMultiplier float64 `yaml:"warning_multiplier"`
}

// ScratchAssets points at optional replacement art.
type ScratchAssets struct {
	Dir string `yaml:"dir"` // Empty means the embedded art
}

// ArtDir picks the art directory: override when set, else the configured
// one. Empty means the embedded art.
func (c ScratchConfig) ArtDir(override string) string {
	if override != "" {
		return override
	}
	return c.Assets.Dir
}

// MinWait returns the minimum attack delay.
func (t ScratchTiming) MinWait() time.Duration { return ms(t.MinWaitMS) }

// MaxWait returns the exclusive maximum attack delay.
func (t ScratchTiming) MaxWait() time.Duration { return ms(t.MaxWaitMS) }

// WarningLead returns the gap between the warning and the attack.
func (t ScratchTiming) WarningLead() time.Duration { return ms(t.WarningLeadMS) }

// ScoreInterval returns the scoring tick period.
func (t ScratchTiming) ScoreInterval() time.Duration { return ms(t.ScoreIntervalMS) }

// Shake returns the shake pulse length.
func (t ScratchTiming) Shake() time.Duration { return ms(t.ShakeMS) }

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// Validate checks that the timings describe a playable game.
// The warning must always land inside the shortest possible hold.
func (c ScratchConfig) Validate() error {
	t := c.Timing
	var errs []error

	if t.WarningLeadMS <= 0 {
		errs = append(errs, fmt.Errorf("warning_lead_ms must be positive, got %d", t.WarningLeadMS))
	}
	if t.MinWaitMS <= t.WarningLeadMS {
		errs = append(errs, fmt.Errorf("min_wait_ms (%d) must exceed warning_lead_ms (%d)", t.MinWaitMS, t.WarningLeadMS))
	}
	if t.MaxWaitMS <= t.MinWaitMS {
		errs = append(errs, fmt.Errorf("max_wait_ms (%d) must exceed min_wait_ms (%d)", t.MaxWaitMS, t.MinWaitMS))
	}
	if t.ScoreIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("score_interval_ms must be positive, got %d", t.ScoreIntervalMS))
	}
	if t.ShakeMS < 0 {
		errs = append(errs, fmt.Errorf("shake_ms must not be negative, got %d", t.ShakeMS))
	}
	if c.Scoring.PointsPerTick <= 0 {
		errs = append(errs, fmt.Errorf("points_per_tick must be positive, got %d", c.Scoring.PointsPerTick))
	}
	if c.Scoring.WarningMultiplier < 1 {
		errs = append(errs, fmt.Errorf("warning_multiplier must be at least 1, got %g", c.Scoring.WarningMultiplier))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid scratch config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the difficulty presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// Title returns the display name of the preset.
func (p DifficultyPreset) Title() string {
	switch p {
	case DifficultyEasy:
		return "Easy"
	case DifficultyHard:
		return "Hard"
	default:
		return "Normal"
	}
}

// Board returns the score board key for the preset.
func (p DifficultyPreset) Board() string {
	if p == "" {
		p = DifficultyNormal
	}
	return "scratch/" + string(p)
}
