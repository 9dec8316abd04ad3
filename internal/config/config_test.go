package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/jailrun/internal/jail"
)

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	var jailCfg JailConfig
	if err := yaml.Unmarshal(GetDefaultYAML("jail"), &jailCfg); err != nil {
		t.Fatalf("embedded jail.yaml: %v", err)
	}
	if !reflect.DeepEqual(jailCfg, DefaultJailConfig()) {
		t.Errorf("embedded jail.yaml drifted from DefaultJailConfig:\n got %+v\nwant %+v", jailCfg, DefaultJailConfig())
	}

	var theories TheoryConfig
	if err := yaml.Unmarshal(GetDefaultYAML("theories"), &theories); err != nil {
		t.Fatalf("embedded theories.yaml: %v", err)
	}
	if !reflect.DeepEqual(theories, DefaultTheoryConfig()) {
		t.Errorf("embedded theories.yaml drifted from DefaultTheoryConfig")
	}

	var clicker ClickerConfig
	if err := yaml.Unmarshal(GetDefaultYAML("clicker"), &clicker); err != nil {
		t.Fatalf("embedded clicker.yaml: %v", err)
	}
	if clicker != DefaultClickerConfig() {
		t.Errorf("clicker = %+v, expected %+v", clicker, DefaultClickerConfig())
	}

	if GetDefaultYAML("snake") != nil {
		t.Error("unknown config names should have no default")
	}
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadJailPartialOverride(t *testing.T) {
	path := writeFile(t, "jail.yaml", "rules:\n  time_window: 60\n  escape:\n    base_chance: 0.9\n")

	cfg, err := LoadJail(path)
	if err != nil {
		t.Fatalf("LoadJail: %v", err)
	}
	if cfg.Rules.TimeWindow != 60 {
		t.Errorf("time_window = %d, expected 60", cfg.Rules.TimeWindow)
	}
	if cfg.Rules.Escape.BaseChance != 0.9 {
		t.Errorf("base_chance = %v, expected 0.9", cfg.Rules.Escape.BaseChance)
	}
	if cfg.Rules.Escape.WinXP != 50 || cfg.Rules.StaminaDrain != 4 {
		t.Error("fields absent from the file should keep their defaults")
	}
	if len(cfg.Events) != len(jail.DefaultCatalog()) {
		t.Errorf("events = %d, expected the default catalog", len(cfg.Events))
	}
}

func TestLoadJailCustomCatalog(t *testing.T) {
	path := writeFile(t, "jail.yaml", `events:
  - id: camera-glitch
    title: Blind Spot
    effect:
      suspicion: -30
`)
	cfg, err := LoadJail(path)
	if err != nil {
		t.Fatalf("LoadJail: %v", err)
	}
	if len(cfg.Events) != 1 || cfg.Events[0].Title != "Blind Spot" || cfg.Events[0].Effect.Suspicion != -30 {
		t.Errorf("events = %+v, expected the single custom card", cfg.Events)
	}
}

func TestLoadJailErrors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		errSub string
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.yaml"), "read"},
		{"bad yaml", writeFile(t, "bad.yaml", "rules: [unclosed"), "parse"},
		{"bad rules", writeFile(t, "rules.yaml", "rules:\n  event_chance: 3\n"), "event_chance"},
		{"unknown event", writeFile(t, "ev.yaml", "events:\n  - id: riot\n    title: Riot\n"), "unknown event"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadJail(tc.path)
			if err == nil || !strings.Contains(err.Error(), tc.errSub) {
				t.Fatalf("LoadJail() error = %v, expected it to mention %q", err, tc.errSub)
			}
			if !reflect.DeepEqual(cfg, DefaultJailConfig()) {
				t.Error("a failed load should still hand back usable defaults")
			}
		})
	}
}

func TestLoadTheories(t *testing.T) {
	path := writeFile(t, "theories.yaml", `theories:
  - id: "777"
    title: Lucky
    premise: Seven is watching.
    seconds: 5
    evidence:
      - id: a
        label: It rhymes
`)
	cfg, err := LoadTheories(path)
	if err != nil {
		t.Fatalf("LoadTheories: %v", err)
	}
	th, ok := cfg.Find("777")
	if !ok || th.Seconds != 5 || len(th.Evidence) != 1 {
		t.Errorf("Find(777) = %+v, %v", th, ok)
	}
	if _, ok := cfg.Find("001"); ok {
		t.Error("a custom file replaces the stock rooms")
	}

	bad := writeFile(t, "bad.yaml", "theories:\n  - id: x\n    seconds: 0\n")
	if _, err := LoadTheories(bad); err == nil {
		t.Error("a room without a countdown should be rejected")
	}
}

func TestLoadClicker(t *testing.T) {
	cfg, err := LoadClicker(writeFile(t, "clicker.yaml", "seconds: 10\n"))
	if err != nil || cfg.Seconds != 10 {
		t.Errorf("LoadClicker = %+v, %v", cfg, err)
	}
	if _, err := LoadClicker(writeFile(t, "zero.yaml", "seconds: 0\n")); err == nil {
		t.Error("zero seconds should be rejected")
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		window   int
		chance   float64
		rise     int
		clickSec int
	}{
		{DifficultyEasy, 45, 0.25, 3, 45},
		{DifficultyNormal, 30, 0.3, 3, 30},
		{DifficultyHard, 20, 0.3, 4, 20},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultJailConfig()
			ApplyJailPreset(&cfg, tc.preset)
			if cfg.Rules.TimeWindow != tc.window || cfg.Rules.EventChance != tc.chance || cfg.Rules.SuspicionRise != tc.rise {
				t.Errorf("rules = %+v", cfg.Rules)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid rules: %v", err)
			}

			clicker := DefaultClickerConfig()
			ApplyClickerPreset(&clicker, tc.preset)
			if clicker.Seconds != tc.clickSec {
				t.Errorf("clicker seconds = %d, expected %d", clicker.Seconds, tc.clickSec)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	for in, want := range map[string]DifficultyPreset{"": DifficultyNormal, "easy": DifficultyEasy, "hard": DifficultyHard, "normal": DifficultyNormal} {
		got, err := ParseDifficulty(in)
		if err != nil || got != want {
			t.Errorf("ParseDifficulty(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("unknown presets should be rejected")
	}
}
