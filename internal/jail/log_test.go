package jail

import (
	"reflect"
	"testing"
)

func TestLogPush(t *testing.T) {
	l := NewLog(3, "a")
	l2 := l.Push("b").Push("c").Push("d")

	if got := l2.Lines(); !reflect.DeepEqual(got, []string{"d", "c", "b"}) {
		t.Errorf("Lines() = %q, expected newest first and capped", got)
	}
	if l.Len() != 1 || l.Latest() != "a" {
		t.Error("Push should not modify the receiver")
	}
	if l2.Latest() != "d" {
		t.Errorf("Latest() = %q, expected %q", l2.Latest(), "d")
	}
}

func TestNewLog(t *testing.T) {
	if l := NewLog(2, "a", "b", "c"); !reflect.DeepEqual(l.Lines(), []string{"a", "b"}) {
		t.Errorf("seed lines should be truncated to size, got %q", l.Lines())
	}
	if l := NewLog(0); l.Push("x").Push("y").Len() != 1 {
		t.Error("non-positive size should fall back to one line")
	}
	if NewLog(4).Latest() != "" {
		t.Error("Latest() of an empty log should be empty")
	}
}

func TestLogLinesIsCopy(t *testing.T) {
	l := NewLog(2, "a")
	lines := l.Lines()
	lines[0] = "z"
	if l.Latest() != "a" {
		t.Error("Lines() aliases the log")
	}
}
