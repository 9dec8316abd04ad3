package jail

import (
	"fmt"

	"github.com/vovakirdan/jailrun/internal/core"
)

// Rules holds every tunable constant of a run.
type Rules struct {
	TimeWindow     int     `yaml:"time_window"`     // seconds on the clock at Start
	StartStamina   int     `yaml:"start_stamina"`
	StartHP        int     `yaml:"start_hp"`
	StartSuspicion int     `yaml:"start_suspicion"`
	StaminaDrain   int     `yaml:"stamina_drain"`   // per tick
	SuspicionRise  int     `yaml:"suspicion_rise"`  // per tick
	ContrabandHeat int     `yaml:"contraband_heat"` // extra per tick while carrying a shiv
	EventChance    float64 `yaml:"event_chance"`    // per tick, only when nothing is pending
	DecisionBonus  int     `yaml:"decision_bonus"`  // xp for taking an event
	LogSize        int     `yaml:"log_size"`

	Sneak  SneakRules  `yaml:"sneak"`
	Search SearchRules `yaml:"search"`
	Fight  FightRules  `yaml:"fight"`
	Escape EscapeRules `yaml:"escape"`
}

// SneakRules tunes the sneak action.
type SneakRules struct {
	Cost       int     `yaml:"cost"`
	FailChance float64 `yaml:"fail_chance"`
	FailHeat   int     `yaml:"fail_heat"`
	FailXP     int     `yaml:"fail_xp"`
	Cover      int     `yaml:"cover"` // suspicion removed on success
	XP         int     `yaml:"xp"`
}

// SearchRules tunes the search action.
type SearchRules struct {
	Cost       int     `yaml:"cost"`
	Heat       int     `yaml:"heat"`
	KeyChance  float64 `yaml:"key_chance"`
	CoinChance float64 `yaml:"coin_chance"`
	KeyXP      int     `yaml:"key_xp"`
	XP         int     `yaml:"xp"`
}

// FightRules tunes the fight action for both armed and unarmed prisoners.
type FightRules struct {
	Armed   FightOutcome `yaml:"armed"`
	Unarmed FightOutcome `yaml:"unarmed"`
	Coin    int          `yaml:"coin"`
}

// FightOutcome is the cost and reward of one fight.
type FightOutcome struct {
	Damage int `yaml:"damage"`
	Heat   int `yaml:"heat"`
	XP     int `yaml:"xp"`
}

// EscapeRules tunes the escape attempt.
type EscapeRules struct {
	NoKeyHeat   int     `yaml:"no_key_heat"`
	NoKeyXP     int     `yaml:"no_key_xp"`
	BaseChance  float64 `yaml:"base_chance"`
	CalmBelow   int     `yaml:"calm_below"` // suspicion under this earns CalmBonus
	CalmBonus   float64 `yaml:"calm_bonus"`
	RestedAbove int     `yaml:"rested_above"` // stamina over this earns RestedBonus
	RestedBonus float64 `yaml:"rested_bonus"`
	WinXP       int     `yaml:"win_xp"`
	CaughtXP    int     `yaml:"caught_xp"`
}

// DefaultRules returns the stock ruleset.
func DefaultRules() Rules {
	return Rules{
		TimeWindow:     30,
		StartStamina:   80,
		StartHP:        100,
		StartSuspicion: 15,
		StaminaDrain:   4,
		SuspicionRise:  3,
		ContrabandHeat: 1,
		EventChance:    0.3,
		DecisionBonus:  2,
		LogSize:        8,
		Sneak: SneakRules{
			Cost:       8,
			FailChance: 0.25,
			FailHeat:   14,
			FailXP:     3,
			Cover:      14,
			XP:         10,
		},
		Search: SearchRules{
			Cost:       10,
			Heat:       8,
			KeyChance:  0.22,
			CoinChance: 0.35,
			KeyXP:      20,
			XP:         6,
		},
		Fight: FightRules{
			Armed:   FightOutcome{Damage: 8, Heat: 18, XP: 12},
			Unarmed: FightOutcome{Damage: 14, Heat: 12, XP: 8},
			Coin:    1,
		},
		Escape: EscapeRules{
			NoKeyHeat:   10,
			NoKeyXP:     1,
			BaseChance:  0.55,
			CalmBelow:   40,
			CalmBonus:   0.15,
			RestedAbove: 40,
			RestedBonus: 0.10,
			WinXP:       50,
			CaughtXP:    10,
		},
	}
}

// Initial returns the snapshot every run starts from.
func (r Rules) Initial() Snapshot {
	return Snapshot{
		TimeLeft:  r.TimeWindow,
		Stamina:   clampVital(r.StartStamina),
		HP:        clampVital(r.StartHP),
		Suspicion: clampVital(r.StartSuspicion),
	}
}

// Chance returns the probability that an escape with a key succeeds from s.
// Bonuses never push it past certainty.
func (e EscapeRules) Chance(s Snapshot) float64 {
	p := e.BaseChance
	if s.Suspicion < e.CalmBelow {
		p += e.CalmBonus
	}
	if s.Stamina > e.RestedAbove {
		p += e.RestedBonus
	}
	return core.Clamp(p, 0, 1)
}

// Validate rejects rulesets that cannot drive a run.
func (r Rules) Validate() error {
	if r.TimeWindow <= 0 {
		return fmt.Errorf("jail: time_window must be positive, got %d", r.TimeWindow)
	}
	if r.LogSize <= 0 {
		return fmt.Errorf("jail: log_size must be positive, got %d", r.LogSize)
	}
	chances := map[string]float64{
		"event_chance":       r.EventChance,
		"sneak.fail_chance":  r.Sneak.FailChance,
		"search.key_chance":  r.Search.KeyChance,
		"search.coin_chance": r.Search.CoinChance,
		"escape.base_chance": r.Escape.BaseChance,
	}
	for name, p := range chances {
		if p < 0 || p > 1 {
			return fmt.Errorf("jail: %s must be within [0, 1], got %v", name, p)
		}
	}
	return nil
}
