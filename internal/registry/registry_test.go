package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/jailrun/internal/core"
)

type fakeGame struct{ id, title string }

func (g *fakeGame) ID() string { return g.id }
func (g *fakeGame) Title() string { return g.title }
func (g *fakeGame) Reset(core.RuntimeConfig) {}
func (g *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *fakeGame) Render(*core.Screen) {}
func (g *fakeGame) State() core.GameState { return core.GameState{} }

func factory(id, title string) Factory {
	return func() Game { return &fakeGame{id: id, title: title} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-zeta", factory("test-zeta", "Zeta"))
	Register("test-alpha", factory("test-alpha", "Alpha"))

	if !Exists("test-alpha") {
		t.Fatal("test-alpha should be registered")
	}

	g, err := Create("test-zeta")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.Title() != "Zeta" {
		t.Errorf("Title = %q, expected Zeta", g.Title())
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "test-") {
			ids = append(ids, info.ID+"="+info.Title)
		}
	}
	if got := strings.Join(ids, ","); got != "test-alpha=Alpha,test-zeta=Zeta" {
		t.Errorf("List = %s, expected sorted by ID with titles", got)
	}
}

func TestCreateUnknown(t *testing.T) {
	if Exists("test-missing") {
		t.Fatal("test-missing should not exist")
	}
	if _, err := Create("test-missing"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", factory("test-dup", "Dup"))

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("test-dup", factory("test-dup", "Dup"))
}

func TestCreateReturnsFreshInstances(t *testing.T) {
	Register("test-fresh", factory("test-fresh", "Fresh"))

	a, _ := Create("test-fresh")
	b, _ := Create("test-fresh")
	if a == b {
		t.Error("Create should return a new instance each time")
	}
}
