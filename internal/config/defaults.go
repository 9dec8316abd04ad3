package config

import (
	_ "embed"

	"github.com/vovakirdan/jailrun/internal/jail"
)

//go:embed defaults/jail.yaml
var defaultJailYAML []byte

//go:embed defaults/clicker.yaml
var defaultClickerYAML []byte

//go:embed defaults/theories.yaml
var defaultTheoriesYAML []byte

// DefaultJailConfig returns the stock jail ruleset and catalog.
func DefaultJailConfig() JailConfig {
	return JailConfig{
		Rules:  jail.DefaultRules(),
		Events: jail.DefaultCatalog(),
	}
}

// DefaultClickerConfig returns the default tap counter configuration.
func DefaultClickerConfig() ClickerConfig {
	return ClickerConfig{Seconds: 30}
}

// DefaultTheoryConfig returns the two stock theory rooms.
func DefaultTheoryConfig() TheoryConfig {
	return TheoryConfig{
		Theories: []Theory{
			{
				ID:      "001",
				Title:   "THEORY #001: 3:27 IS NOT A TIME, IT'S A TRIGGER",
				Premise: "3:27 isn't mystical. It's a system intervention marker. When a narrative gets too stable, the universe pokes it.",
				Seconds: 120,
				Evidence: []Evidence{
					{ID: "e1", Label: "Screenshots keep appearing at 3:27", Votes: 12},
					{ID: "e2", Label: "Players report the same phrase, different context", Votes: 7},
					{ID: "e3", Label: "The \"too perfect\" theory collapses first", Votes: 4},
				},
			},
			{
				ID:      "002",
				Title:   "THEORY #002: THE ESCAPE ECONOMY",
				Premise: "Escapes aren't bugs. They're content. A jailbreak triggers a feed event and turns the community into bounty hunters.",
				Seconds: 180,
				Evidence: []Evidence{
					{ID: "e1", Label: "Feed announces escape, frenzy starts", Votes: 9},
					{ID: "e2", Label: "Coins move based on headhunts", Votes: 5},
					{ID: "e3", Label: "Lottery picks a new Architect", Votes: 3},
				},
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a config name
// ("jail", "clicker" or "theories").
func GetDefaultYAML(name string) []byte {
	switch name {
	case "jail":
		return defaultJailYAML
	case "clicker":
		return defaultClickerYAML
	case "theories":
		return defaultTheoriesYAML
	default:
		return nil
	}
}
