package core

import "strings"

// Action is a semantic input. Games react to actions, never to raw keys.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionConfirm // start a run, take an event, pick
	ActionBack
	ActionRestart
	ActionQuit
	ActionPause
	ActionSneak
	ActionSearch
	ActionFight
	ActionEscape
	ActionTap
	ActionUpvote
	ActionDownvote

	actionCount
)

var actionNames = [actionCount]string{
	"None", "Up", "Down", "Confirm", "Back", "Restart", "Quit", "Pause",
	"Sneak", "Search", "Fight", "Escape", "Tap", "Upvote", "Downvote",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions pressed since the previous tick.
// The zero value is an empty frame.
type InputFrame struct {
	pressed uint32
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as pressed. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a > ActionNone && a < actionCount {
		f.pressed |= 1 << a
	}
}

// Has reports whether a was pressed.
func (f InputFrame) Has(a Action) bool {
	return a > ActionNone && a < actionCount && f.pressed&(1<<a) != 0
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	f.pressed = 0
}

// Clone returns an independent copy.
func (f InputFrame) Clone() InputFrame {
	return f
}

// Len is the number of distinct actions pressed.
func (f InputFrame) Len() int {
	return len(f.List())
}

// List returns the pressed actions in declaration order.
func (f InputFrame) List() []Action {
	var out []Action
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

func (f InputFrame) String() string {
	names := make([]string, 0, 4)
	for _, a := range f.List() {
		names = append(names, a.String())
	}
	return "[" + strings.Join(names, " ") + "]"
}
