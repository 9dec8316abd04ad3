package clicker

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/jailrun/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 1}
}

func tap() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionTap)
	return in
}

func TestTapsOnlyCountWhileRunning(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// The first tap starts the clock but does not score.
	g.Step(tap())
	if g.State().Score != 0 {
		t.Fatalf("score = %d after the starting tap, expected 0", g.State().Score)
	}

	for i := 0; i < 25; i++ {
		g.Step(tap())
	}
	if g.State().Score != 25 {
		t.Errorf("score = %d, expected 25", g.State().Score)
	}
	if g.State().Elapsed != 2 {
		t.Errorf("elapsed = %d, expected 2 seconds at 10 fps", g.State().Elapsed)
	}
}

func TestRoundEnds(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	g.Step(in)

	frames := g.seconds * testConfig().TickRate
	for i := 0; i < frames; i++ {
		g.Step(tap())
	}

	st := g.State()
	if !st.GameOver || st.Outcome != "time" {
		t.Fatalf("state = %+v, expected the round to be over", st)
	}
	if st.Score != frames {
		t.Errorf("score = %d, expected %d", st.Score, frames)
	}

	g.Step(tap())
	if g.State().Score != frames {
		t.Error("taps after the round should not count")
	}
}

func TestPause(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.Step(tap())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	for i := 0; i < 50; i++ {
		g.Step(tap())
	}
	if g.State().Score != 0 || g.timeLeft != g.seconds {
		t.Errorf("paused game changed: score %d, time %d", g.State().Score, g.timeLeft)
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.SetBest(99)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"Delulu Clicker", "Best 99", "READY?"} {
		if !strings.Contains(out, want) {
			t.Errorf("screen missing %q", want)
		}
	}
}

func TestConfigError(t *testing.T) {
	t.Cleanup(func() { SetConfigPath("") })
	dir := t.TempDir()

	good := filepath.Join(dir, "clicker.yaml")
	if err := os.WriteFile(good, []byte("seconds: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(good)
	g := New()
	g.Reset(testConfig())
	if g.ConfigError() != nil || g.timeLeft != 5 {
		t.Errorf("timeLeft = %d, err = %v, expected 5 from the file", g.timeLeft, g.ConfigError())
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("seconds: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(bad)
	g.Reset(testConfig())
	if g.ConfigError() == nil {
		t.Error("a rejected config file should be reported")
	}
	if g.timeLeft != 30 {
		t.Errorf("timeLeft = %d, expected the 30s default", g.timeLeft)
	}
}
