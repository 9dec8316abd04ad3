// Package config provides YAML-based game configuration loading and
// difficulty presets for the games.
package config

import (
	"fmt"

	"github.com/vovakirdan/jailrun/internal/jail"
)

// JailConfig contains the ruleset and event catalog for the jail run.
type JailConfig struct {
	Rules  jail.Rules   `yaml:"rules"`
	Events jail.Catalog `yaml:"events"`
}

// Validate checks that the rules and catalog can drive a run.
func (c JailConfig) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Events.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ClickerConfig contains configuration for the tap counter.
type ClickerConfig struct {
	Seconds int `yaml:"seconds"`
}

// TheoryConfig lists the theory rooms.
type TheoryConfig struct {
	Theories []Theory `yaml:"theories"`
}

// Theory is one voting room: a premise, a countdown and the evidence players
// vote on.
type Theory struct {
	ID       string     `yaml:"id"`
	Title    string     `yaml:"title"`
	Premise  string     `yaml:"premise"`
	Seconds  int        `yaml:"seconds"`
	Evidence []Evidence `yaml:"evidence"`
}

// Evidence is a votable claim with the tally it ships with.
type Evidence struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Votes int    `yaml:"votes"`
}

// Find returns the theory with the given id.
func (c TheoryConfig) Find(id string) (Theory, bool) {
	for _, t := range c.Theories {
		if t.ID == id {
			return t, true
		}
	}
	return Theory{}, false
}

// Validate rejects rooms that cannot be played.
func (c TheoryConfig) Validate() error {
	if len(c.Theories) == 0 {
		return fmt.Errorf("config: no theories defined")
	}
	seen := make(map[string]bool, len(c.Theories))
	for _, t := range c.Theories {
		if t.ID == "" {
			return fmt.Errorf("config: theory %q has no id", t.Title)
		}
		if seen[t.ID] {
			return fmt.Errorf("config: duplicate theory id %q", t.ID)
		}
		seen[t.ID] = true
		if t.Seconds <= 0 {
			return fmt.Errorf("config: theory %s: seconds must be positive", t.ID)
		}
		if len(t.Evidence) == 0 {
			return fmt.Errorf("config: theory %s has no evidence", t.ID)
		}
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

// ParseDifficulty validates a preset name. The empty string means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (use easy, normal or hard)", s)
	}
}

// ApplyJailPreset adjusts the ruleset for a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyJailPreset(cfg *JailConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.TimeWindow = 45
		cfg.Rules.EventChance = 0.25
	case DifficultyHard:
		cfg.Rules.TimeWindow = 20
		cfg.Rules.SuspicionRise = 4
	}
}

// ApplyClickerPreset adjusts the tap window for a difficulty preset.
func ApplyClickerPreset(cfg *ClickerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Seconds = cfg.Seconds * 3 / 2
	case DifficultyHard:
		cfg.Seconds = cfg.Seconds * 2 / 3
	}
}
