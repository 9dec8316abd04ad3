// Package jail implements the escape-run simulation: a tick-driven state
// machine over the prisoner's vitals, a countdown, randomly offered events
// and probabilistic player actions.
//
// The package is pure. It performs no I/O, holds no global randomness and
// never blocks. Drivers call Start, then Tick on a fixed cadence, and may call
// the action methods between ticks. Every call returns a fresh Result that the
// driver stores and renders; nothing returned aliases simulation internals.
package jail

// State is the lifecycle state of a run.
type State string

const (
	StateReady   State = "ready"
	StateRunning State = "running"
	StateWon     State = "won"
	StateCaught  State = "caught"
	StateTimeout State = "timeout"
)

// Terminal reports whether the state absorbs every call except Start and Reset.
func (s State) Terminal() bool {
	return s == StateWon || s == StateCaught || s == StateTimeout
}

// Label returns the status text shown to the player.
func (s State) Label() string {
	switch s {
	case StateReady:
		return "Ready"
	case StateRunning:
		return "RUNNING"
	case StateWon:
		return "ESCAPED"
	case StateCaught:
		return "CAUGHT"
	case StateTimeout:
		return "TIME OUT"
	default:
		return "Unknown"
	}
}

// Result is the complete driver-facing view after a call.
// Pending and Log are copies; mutating them does not affect the simulation.
type Result struct {
	Snapshot Snapshot
	State    State
	Pending  *EventCard
	Log      []string
}
