package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionSneak) || f.Len() != 0 {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionEscape)
	f.Set(ActionSneak)
	f.Set(ActionSneak)
	f.Set(ActionNone)
	f.Set(Action(99))

	if !f.Has(ActionSneak) || !f.Has(ActionEscape) || f.Has(ActionFight) {
		t.Errorf("frame = %v", f)
	}
	if got := f.String(); got != "[Sneak Escape]" {
		t.Errorf("String() = %q, expected declaration order", got)
	}

	c := f.Clone()
	f.Clear()
	if f.Len() != 0 {
		t.Error("Clear should empty the frame")
	}
	if c.Len() != 2 {
		t.Error("clone should not share state with the original")
	}
}

func TestActionString(t *testing.T) {
	for a, want := range map[Action]string{
		ActionConfirm:  "Confirm",
		ActionDownvote: "Downvote",
		Action(-1):     "Unknown",
		actionCount:    "Unknown",
	} {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
}
