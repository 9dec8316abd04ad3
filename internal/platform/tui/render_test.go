package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/jailrun/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColor(0, 0, "HP", core.ColorRed)
	s.DrawText(3, 0, "100")
	s.DrawTextColor(0, 1, "caught", core.ColorGray)

	lines := strings.Split(RenderScreen(s), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if w := lipgloss.Width(lines[0]); w != 12 {
		t.Errorf("line width = %d, want 12", w)
	}
	if !strings.Contains(lines[1], "caught") {
		t.Errorf("second line lost its text: %q", lines[1])
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("unknown color should render plain, got %q", got)
	}
	for c := range palette {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %v has no style", c)
		}
	}
}
