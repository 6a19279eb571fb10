package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadScratch loads the game configuration.
// Search order: customPath -> ~/.scratchcat/configs/scratch.yaml -> ./configs/scratch.yaml -> embedded default.
// Files are layered over the defaults, so a file may set only the keys it changes.
func LoadScratch(customPath string) (ScratchConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ScratchConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseScratch(data)
		if err != nil {
			return ScratchConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("scratch.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseScratch(data); err == nil {
				return cfg, cfg.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "scratch.yaml")); err == nil {
		if cfg, err := parseScratch(data); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg, err := parseScratch(defaultScratchYAML)
	if err != nil {
		return DefaultScratchConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseScratch unmarshals YAML on top of the hardcoded defaults.
func parseScratch(data []byte) (ScratchConfig, error) {
	cfg := DefaultScratchConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ScratchConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".scratchcat", "configs", filename)
}

// ApplyPreset sets the attack wait range for a difficulty preset.
// Normal leaves the loaded timings untouched. The warning lead and the
// multiplier are never changed by a preset.
func ApplyPreset(cfg *ScratchConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.MinWaitMS = 1500
		cfg.Timing.MaxWaitMS = 4500
	case DifficultyHard:
		cfg.Timing.MinWaitMS = 800
		cfg.Timing.MaxWaitMS = 3000
	}
}

// Load resolves the config file and applies the preset in one step.
func Load(customPath string, preset DifficultyPreset) (ScratchConfig, error) {
	cfg, err := LoadScratch(customPath)
	if err != nil {
		return cfg, err
	}
	ApplyPreset(&cfg, preset)
	return cfg, cfg.Validate()
}
