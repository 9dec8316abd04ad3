package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/jailrun/internal/storage"
)

func TestListShowsGames(t *testing.T) {
	var out bytes.Buffer
	listCmd.SetOut(&out)
	t.Cleanup(func() { listCmd.SetOut(nil) })

	runList(listCmd, nil)

	for _, id := range []string{"clicker", "jailbreak", "theory"} {
		if !strings.Contains(out.String(), id) {
			t.Errorf("list output missing %q:\n%s", id, out.String())
		}
	}
}

func TestPrintGame(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScore("jailbreak", 90); err != nil {
		t.Fatalf("SaveScore failed: %v", err)
	}
	if _, err := store.SaveRun(storage.RunRecord{GameID: "jailbreak", Outcome: "won", Score: 90, Seed: 42}); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	var out bytes.Buffer
	if err := printGame(&out, store, "jailbreak", "Jail Run"); err != nil {
		t.Fatalf("printGame failed: %v", err)
	}

	s := out.String()
	for _, want := range []string{"High Scores - Jail Run", "Best: 90", "won 1", "42"} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q:\n%s", want, s)
		}
	}
}

func TestPrintGameEmpty(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	var out bytes.Buffer
	if err := printGame(&out, store, "clicker", "Delulu Clicker"); err != nil {
		t.Fatalf("printGame failed: %v", err)
	}
	if !strings.Contains(out.String(), "No scores recorded yet.") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestPrintSummary(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	for _, s := range []int{10, 30} {
		if _, err := store.SaveScore("clicker", s); err != nil {
			t.Fatalf("SaveScore failed: %v", err)
		}
	}

	var out bytes.Buffer
	if err := printSummary(&out, store); err != nil {
		t.Fatalf("printSummary failed: %v", err)
	}
	if !strings.Contains(out.String(), "clicker") || !strings.Contains(out.String(), "20.0") {
		t.Errorf("unexpected summary:\n%s", out.String())
	}
}
