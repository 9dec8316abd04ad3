package jailbreak

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/jailrun/internal/core"
	"github.com/vovakirdan/jailrun/internal/jail"
)

// Minimum screen size the HUD needs.
const (
	MinWidth  = 60
	MinHeight = 22
)

const barWidth = 30

// Render draws the HUD, meters, pending event and narration log.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < MinWidth || h < MinHeight {
		dst.DrawTextCentered(h/2, fmt.Sprintf("Terminal too small (need %dx%d)", MinWidth, MinHeight))
		return
	}

	res := g.result
	s := res.Snapshot

	// Header
	dst.DrawTextColor(2, 0, "JAIL RUN", core.ColorBrightYellow)
	status := res.State.Label()
	dst.DrawTextColor(w-len(status)-2, 0, status, statusColor(res.State))
	dst.DrawHLine(0, 1, w, '─')

	// Counters
	dst.DrawTextColor(2, 2, fmt.Sprintf("⏳ %2ds", s.TimeLeft), timeColor(s.TimeLeft))
	dst.DrawText(12, 2, fmt.Sprintf("Keys %d   Shiv %d   Coin %d   XP %d   Best %d", s.Keys, s.Shiv, s.Coin, s.XP, g.best))

	// Meters
	g.drawMeter(dst, 4, "Stamina", s.Stamina, false)
	g.drawMeter(dst, 5, "HP", s.HP, false)
	g.drawMeter(dst, 6, "Suspicion", s.Suspicion, true)

	if s.Keys > 0 && res.State == jail.StateRunning {
		odds := g.sim.Rules().Escape.Chance(s)
		dst.DrawTextColor(2, 7, fmt.Sprintf("Escape odds: %d%%", int(odds*100+0.5)), core.ColorCyan)
	}

	logTop := 9
	if res.Pending != nil {
		drawEvent(dst, core.NewRect(2, 9, w-4, 5), *res.Pending)
		logTop = 15
	}

	// Narration, newest first
	dst.DrawTextColor(2, logTop, "Log", core.ColorGray)
	for i, line := range res.Log {
		y := logTop + 1 + i
		if y >= h-2 {
			break
		}
		c := core.ColorDefault
		if i > 0 {
			c = core.ColorGray
		}
		dst.DrawTextColor(4, y, truncate(line, w-6), c)
	}

	// Controls
	dst.DrawHLine(0, h-2, w, '─')
	dst.DrawTextColor(2, h-1, controlsHint(res), core.ColorGray)

	switch {
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorYellow)
	case res.State == jail.StateReady:
		drawCenteredMessage(dst, "You wake up in a cell.", "Press ENTER to start the run", core.ColorBrightYellow)
	case res.State.Terminal():
		drawCenteredMessage(dst, status, fmt.Sprintf("XP: %d  |  R restart  |  B menu", s.XP), statusColor(res.State))
	}
}

func (g *Game) drawMeter(dst *core.Screen, y int, label string, value int, highIsBad bool) {
	dst.DrawText(2, y, label)
	dst.DrawBar(13, y, barWidth, value, jail.MaxVital, core.GaugeColor(value, jail.MaxVital, highIsBad))
	dst.DrawText(14+barWidth, y, fmt.Sprintf("%3d", value))
}

func drawEvent(dst *core.Screen, r core.Rect, card jail.EventCard) {
	dst.DrawRect(r, ' ')
	dst.DrawBoxColor(r, core.ColorMagenta)
	inner := r.Inset(1)
	dst.DrawTextColor(inner.X+1, inner.Y, "EVENT: "+card.Title, core.ColorMagenta)
	dst.DrawText(inner.X+1, inner.Y+1, truncate(card.Description, inner.W-2))
	dst.DrawTextColor(inner.X+1, inner.Y+2, "ENTER take it  ("+effectSummary(card.Effect)+")", core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 6
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColor(box, c)
	dst.DrawTextColor(box.X+(boxW-len([]rune(title)))/2, box.Y+1, title, c)
	dst.DrawText(box.X+(boxW-len([]rune(subtitle)))/2, box.Y+3, subtitle)
}

func controlsHint(res jail.Result) string {
	switch {
	case res.State == jail.StateRunning && res.Pending != nil:
		return "ENTER take event  E escape  P pause  Q quit"
	case res.State == jail.StateRunning:
		return "1 sneak  2 search  3 fight  E escape  P pause  Q quit"
	case res.State.Terminal():
		return "R restart  B menu  Q quit"
	default:
		return "ENTER start  Q quit"
	}
}

// effectSummary lists the non-zero fields of a delta, e.g. "shiv +1, suspicion +8".
func effectSummary(d jail.Delta) string {
	fields := []struct {
		name string
		v    int
	}{
		{"stamina", d.Stamina},
		{"hp", d.HP},
		{"suspicion", d.Suspicion},
		{"keys", d.Keys},
		{"shiv", d.Shiv},
		{"coin", d.Coin},
		{"xp", d.XP},
	}
	var parts []string
	for _, f := range fields {
		if f.v != 0 {
			parts = append(parts, fmt.Sprintf("%s %+d", f.name, f.v))
		}
	}
	return strings.Join(parts, ", ")
}

func statusColor(s jail.State) core.Color {
	switch s {
	case jail.StateWon:
		return core.ColorBrightGreen
	case jail.StateCaught:
		return core.ColorBrightRed
	case jail.StateTimeout:
		return core.ColorOrange
	case jail.StateRunning:
		return core.ColorGreen
	default:
		return core.ColorWhite
	}
}

func timeColor(left int) core.Color {
	switch {
	case left <= 5:
		return core.ColorRed
	case left <= 10:
		return core.ColorYellow
	default:
		return core.ColorWhite
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
