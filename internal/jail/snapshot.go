package jail

import "github.com/vovakirdan/jailrun/internal/core"

// MaxVital is the upper bound for stamina, HP and suspicion.
const MaxVital = 100

// Snapshot is the prisoner's resources at one instant.
// Stamina, HP and Suspicion live in [0, MaxVital]; the counters never go negative.
type Snapshot struct {
	TimeLeft  int `yaml:"time_left"` // seconds
	Stamina   int `yaml:"stamina"`
	HP        int `yaml:"hp"`
	Suspicion int `yaml:"suspicion"`
	Keys      int `yaml:"keys"`
	Shiv      int `yaml:"shiv"`
	Coin      int `yaml:"coin"`
	XP        int `yaml:"xp"`
}

// Delta is a declarative change to a Snapshot.
// There is no TimeLeft field; only Tick moves the countdown.
type Delta struct {
	Stamina   int `yaml:"stamina,omitempty"`
	HP        int `yaml:"hp,omitempty"`
	Suspicion int `yaml:"suspicion,omitempty"`
	Keys      int `yaml:"keys,omitempty"`
	Shiv      int `yaml:"shiv,omitempty"`
	Coin      int `yaml:"coin,omitempty"`
	XP        int `yaml:"xp,omitempty"`
}

// Apply returns s with d added, bounded fields clamped and counters floored at zero.
func (s Snapshot) Apply(d Delta) Snapshot {
	s.Stamina = clampVital(s.Stamina + d.Stamina)
	s.HP = clampVital(s.HP + d.HP)
	s.Suspicion = clampVital(s.Suspicion + d.Suspicion)
	s.Keys = max(0, s.Keys+d.Keys)
	s.Shiv = max(0, s.Shiv+d.Shiv)
	s.Coin = max(0, s.Coin+d.Coin)
	s.XP = max(0, s.XP+d.XP)
	return s
}

// Add combines two deltas field by field.
func (d Delta) Add(o Delta) Delta {
	return Delta{
		Stamina:   d.Stamina + o.Stamina,
		HP:        d.HP + o.HP,
		Suspicion: d.Suspicion + o.Suspicion,
		Keys:      d.Keys + o.Keys,
		Shiv:      d.Shiv + o.Shiv,
		Coin:      d.Coin + o.Coin,
		XP:        d.XP + o.XP,
	}
}

func clampVital(n int) int {
	return core.Clamp(n, 0, MaxVital)
}
