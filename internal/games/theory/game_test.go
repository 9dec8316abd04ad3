package theory

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/jailrun/internal/core"
)

// memStore is an in-memory VoteStore.
type memStore struct {
	votes map[string]map[string]int
	fail  bool
}

func newMemStore() *memStore {
	return &memStore{votes: make(map[string]map[string]int)}
}

func (m *memStore) AddVote(theoryID, evidenceID string, delta int) (int, error) {
	if m.fail {
		return 0, errors.New("disk full")
	}
	if m.votes[theoryID] == nil {
		m.votes[theoryID] = make(map[string]int)
	}
	m.votes[theoryID][evidenceID] += delta
	return m.votes[theoryID][evidenceID], nil
}

func (m *memStore) Votes(theoryID string) (map[string]int, error) {
	out := make(map[string]int)
	for k, v := range m.votes[theoryID] {
		out[k] = v
	}
	return out, nil
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 1}
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func resetSettings(t *testing.T) {
	t.Cleanup(func() {
		SetConfigPath("")
		SetTheoryID("")
		SetVoteStore(nil)
	})
}

func TestVotesPersistByID(t *testing.T) {
	resetSettings(t)
	store := newMemStore()
	SetVoteStore(store)
	SetTheoryID("002")

	g := New()
	g.Reset(testConfig())
	if g.Theory().ID != "002" {
		t.Fatalf("opened theory %q, expected 002", g.Theory().ID)
	}
	base := g.Total("e1")

	g.Step(press(core.ActionUpvote))
	g.Step(press(core.ActionUpvote))
	g.Step(press(core.ActionDown))
	g.Step(press(core.ActionDownvote))

	if got := g.Total("e1"); got != base+2 {
		t.Errorf("Total(e1) = %d, expected %d", got, base+2)
	}
	want := map[string]int{"e1": 2, "e2": -1}
	if !reflect.DeepEqual(store.votes["002"], want) {
		t.Errorf("stored votes = %v, expected %v", store.votes["002"], want)
	}
	if g.State().Score != 3 {
		t.Errorf("score = %d, expected 3 votes cast", g.State().Score)
	}

	// A new visit sees the saved tally.
	again := New()
	again.Reset(testConfig())
	if got := again.Total("e1"); got != base+2 {
		t.Errorf("Total(e1) on return = %d, expected %d", got, base+2)
	}
	if again.State().Score != 0 {
		t.Error("votes cast should count per visit")
	}

	// Other rooms are unaffected.
	SetTheoryID("001")
	other := New()
	other.Reset(testConfig())
	if got := other.Total("e1"); got != 12 {
		t.Errorf("theory 001 e1 = %d, expected the shipped 12", got)
	}
}

func TestVotesWithoutStore(t *testing.T) {
	resetSettings(t)
	g := New()
	g.Reset(testConfig())

	g.Step(press(core.ActionUpvote))
	if got := g.Total("e1"); got != 13 {
		t.Errorf("Total(e1) = %d, expected 13", got)
	}
}

func TestStoreFailureKeepsVote(t *testing.T) {
	resetSettings(t)
	store := newMemStore()
	store.fail = true
	SetVoteStore(store)

	g := New()
	g.Reset(testConfig())
	g.Step(press(core.ActionUpvote))

	if got := g.Total("e1"); got != 13 {
		t.Errorf("Total(e1) = %d, expected the vote to count locally", got)
	}
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "not being saved") {
		t.Error("a failing store should be visible")
	}
}

func TestCursorWraps(t *testing.T) {
	resetSettings(t)
	g := New()
	g.Reset(testConfig())

	g.Step(press(core.ActionUp))
	if g.cursor != len(g.Theory().Evidence)-1 {
		t.Errorf("cursor = %d, expected wrap to the last entry", g.cursor)
	}
	g.Step(press(core.ActionDown))
	if g.cursor != 0 {
		t.Errorf("cursor = %d, expected wrap to the first entry", g.cursor)
	}
}

func TestExpirySendsToJail(t *testing.T) {
	resetSettings(t)
	path := filepath.Join(t.TempDir(), "theories.yaml")
	body := "theories:\n  - id: quick\n    title: Quick\n    premise: Fast.\n    seconds: 2\n    evidence:\n      - id: a\n        label: A\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)

	g := New()
	g.Reset(testConfig())
	if g.NextGame() != "" {
		t.Error("an open room should not redirect")
	}

	for i := 0; i < 20; i++ {
		g.Step(core.NewInputFrame())
	}
	st := g.State()
	if !st.GameOver || st.Outcome != OutcomeJailed {
		t.Fatalf("state = %+v, expected jailed", st)
	}
	if st.Elapsed != 2 {
		t.Errorf("elapsed = %d, expected 2", st.Elapsed)
	}
	if g.NextGame() != "jailbreak" {
		t.Errorf("NextGame() = %q, expected jailbreak", g.NextGame())
	}

	g.Step(press(core.ActionUpvote))
	if g.Total("a") != 0 {
		t.Error("votes after expiry should be ignored")
	}
}

func TestWrap(t *testing.T) {
	got := wrap("the quick brown fox jumps", 10)
	want := []string{"the quick", "brown fox", "jumps"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("wrap = %q, expected %q", got, want)
	}
}

func TestConfigError(t *testing.T) {
	resetSettings(t)
	g := New()
	g.Reset(testConfig())
	if g.ConfigError() != nil {
		t.Fatalf("default rooms should load, got %v", g.ConfigError())
	}

	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	g.Reset(testConfig())
	if g.ConfigError() == nil {
		t.Error("a missing config file should be reported")
	}
	if g.Theory().ID == "" {
		t.Error("the default room should still open")
	}
}
