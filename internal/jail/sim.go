package jail

import "fmt"

// Source is the entropy a simulation draws from.
// *math/rand.Rand satisfies it; tests pass fixed sources to force outcomes.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// Narration lines.
const (
	lineWakeUp      = "You wake up in a cell. The lights flicker. Someone whispers: 'MOVE.'"
	lineStarted     = "RUN STARTED: %d seconds. Get a key and escape."
	lineDown        = "You went down. Guards drag you back."
	lineAlert       = "ALERT. Spotlights. You're caught."
	lineTimeout     = "TIME OUT. You missed the window."
	lineEvent       = "EVENT: %s"
	lineTakeEvent   = "You take it: %s."
	lineSneak       = "You move in the shadows..."
	lineSneakFailed = "A boot scuffs. Someone turns around."
	lineSearch      = "You search fast. Quietly."
	lineFoundKey    = "Cold metal under the mattress. A KEY."
	lineFight       = "Hands. Noise. Risk."
	lineNoKey       = "No key. The door doesn't move."
	lineEscaped     = "ESCAPE SUCCESS. You're out."
	lineEscapeFail  = "Door opens. Alarm screams. Caught."
)

// Simulation owns the authoritative state of one run at a time.
// It is not safe for concurrent use; the driver serializes calls.
type Simulation struct {
	rules   Rules
	catalog Catalog
	rng     Source

	state   State
	snap    Snapshot
	pending *EventCard
	log     Log
	ticks   int
}

// New creates a simulation in the ready state. The catalog is copied, so later
// changes by the caller do not reach the run.
func New(rules Rules, catalog Catalog, rng Source) *Simulation {
	s := &Simulation{
		rules:   rules,
		catalog: catalog.Clone(),
		rng:     rng,
	}
	s.Reset()
	return s
}

// Rules returns the ruleset the simulation was built with.
func (s *Simulation) Rules() Rules {
	return s.rules
}

// Reset returns to the ready state with a fresh snapshot.
func (s *Simulation) Reset() Result {
	s.restore()
	s.state = StateReady
	s.log = NewLog(s.rules.LogSize, lineWakeUp)
	return s.Result()
}

// Start begins a new run from any state.
func (s *Simulation) Start() Result {
	s.restore()
	s.state = StateRunning
	s.log = NewLog(s.rules.LogSize, fmt.Sprintf(lineStarted, s.rules.TimeWindow))
	return s.Result()
}

func (s *Simulation) restore() {
	s.snap = s.rules.Initial()
	s.pending = nil
	s.ticks = 0
}

// Tick advances the countdown by one second, applies the passive drains,
// checks the loss conditions and may offer a new event.
func (s *Simulation) Tick() Result {
	if s.state != StateRunning {
		return s.Result()
	}

	s.ticks++
	heat := s.rules.SuspicionRise
	if s.snap.Shiv > 0 {
		heat += s.rules.ContrabandHeat
	}
	s.snap.TimeLeft--
	s.snap = s.snap.Apply(Delta{Stamina: -s.rules.StaminaDrain, Suspicion: heat})

	if s.settle() {
		return s.Result()
	}
	s.rollEvent()
	return s.Result()
}

// settle applies the loss conditions in priority order and reports whether
// the run ended. HP is checked before suspicion so each loss keeps its own line.
func (s *Simulation) settle() bool {
	switch {
	case s.snap.HP <= 0:
		s.end(StateCaught, lineDown)
	case s.snap.Suspicion >= MaxVital:
		s.end(StateCaught, lineAlert)
	case s.snap.TimeLeft <= 0:
		s.end(StateTimeout, lineTimeout)
	default:
		return false
	}
	return true
}

func (s *Simulation) end(state State, line string) {
	s.state = state
	s.pending = nil
	s.push(line)
}

// rollEvent makes exactly one draw; events never stack.
func (s *Simulation) rollEvent() {
	if s.pending != nil || len(s.catalog) == 0 {
		return
	}
	if s.rng.Float64() >= s.rules.EventChance {
		return
	}
	card := s.catalog[s.rng.Intn(len(s.catalog))]
	s.pending = &card
	s.push(fmt.Sprintf(lineEvent, card.Title))
}

// ResolveEvent takes the pending card: its effect plus the decision bonus.
// Without a pending card this is a no-op.
func (s *Simulation) ResolveEvent() Result {
	if s.state != StateRunning || s.pending == nil {
		return s.Result()
	}
	card := *s.pending
	s.snap = s.snap.Apply(card.Effect.Add(Delta{XP: s.rules.DecisionBonus}))
	s.pending = nil
	s.push(fmt.Sprintf(lineTakeEvent, card.Title))
	return s.Result()
}

// canAct reports whether ordinary actions are accepted. A pending event must
// be resolved first.
func (s *Simulation) canAct() bool {
	return s.state == StateRunning && s.pending == nil
}

// Sneak trades stamina for a chance to shed suspicion.
func (s *Simulation) Sneak() Result {
	if !s.canAct() {
		return s.Result()
	}
	r := s.rules.Sneak
	d := Delta{Stamina: -r.Cost}
	if s.rng.Float64() < r.FailChance {
		d.Suspicion = r.FailHeat
		d.XP = r.FailXP
		s.snap = s.snap.Apply(d)
		s.push(lineSneakFailed)
		return s.Result()
	}
	d.Suspicion = -r.Cover
	d.XP = r.XP
	s.snap = s.snap.Apply(d)
	s.push(lineSneak)
	return s.Result()
}

// Search costs stamina and raises suspicion, with independent chances to find
// a key and a coin. Only the key changes the xp award.
func (s *Simulation) Search() Result {
	if !s.canAct() {
		return s.Result()
	}
	r := s.rules.Search
	foundKey := s.rng.Float64() < r.KeyChance
	foundCoin := s.rng.Float64() < r.CoinChance

	d := Delta{Stamina: -r.Cost, Suspicion: r.Heat, XP: r.XP}
	if foundKey {
		d.Keys = 1
		d.XP = r.KeyXP
	}
	if foundCoin {
		d.Coin = 1
	}
	s.snap = s.snap.Apply(d)
	if foundKey {
		s.push(lineFoundKey)
	} else {
		s.push(lineSearch)
	}
	return s.Result()
}

// Fight always hurts and always pays a coin. Carrying a shiv means less damage
// but more heat.
func (s *Simulation) Fight() Result {
	if !s.canAct() {
		return s.Result()
	}
	o := s.rules.Fight.Unarmed
	if s.snap.Shiv > 0 {
		o = s.rules.Fight.Armed
	}
	s.snap = s.snap.Apply(Delta{
		HP:        -o.Damage,
		Suspicion: o.Heat,
		Coin:      s.rules.Fight.Coin,
		XP:        o.XP,
	})
	s.push(lineFight)
	return s.Result()
}

// Escape tries the door. Without a key it only costs suspicion. With a key
// the run ends immediately, won or caught.
func (s *Simulation) Escape() Result {
	if s.state != StateRunning {
		return s.Result()
	}
	r := s.rules.Escape
	if s.snap.Keys == 0 {
		s.snap = s.snap.Apply(Delta{Suspicion: r.NoKeyHeat, XP: r.NoKeyXP})
		s.push(lineNoKey)
		return s.Result()
	}

	if s.rng.Float64() < r.Chance(s.snap) {
		s.snap = s.snap.Apply(Delta{XP: r.WinXP})
		s.end(StateWon, lineEscaped)
		return s.Result()
	}
	s.snap = s.snap.Apply(Delta{XP: r.CaughtXP})
	s.snap.Suspicion = MaxVital
	s.end(StateCaught, lineEscapeFail)
	return s.Result()
}

func (s *Simulation) push(line string) {
	s.log = s.log.Push(line)
}

// Snapshot returns the current resources.
func (s *Simulation) Snapshot() Snapshot {
	return s.snap
}

// State returns the lifecycle state.
func (s *Simulation) State() State {
	return s.state
}

// Pending returns the card awaiting acknowledgement, if any.
func (s *Simulation) Pending() (EventCard, bool) {
	if s.pending == nil {
		return EventCard{}, false
	}
	return *s.pending, true
}

// Log returns the narration, newest first.
func (s *Simulation) Log() []string {
	return s.log.Lines()
}

// Ticks returns how many ticks the current run has taken.
func (s *Simulation) Ticks() int {
	return s.ticks
}

// Result packages the current state for the driver.
func (s *Simulation) Result() Result {
	res := Result{
		Snapshot: s.snap,
		State:    s.state,
		Log:      s.log.Lines(),
	}
	if s.pending != nil {
		card := *s.pending
		res.Pending = &card
	}
	return res
}
