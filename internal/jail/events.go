package jail

import (
	"errors"
	"fmt"
)

// EventKind identifies one entry of the event catalog.
type EventKind string

const (
	EventContraband   EventKind = "contraband"
	EventGuardShift   EventKind = "guard-shift"
	EventTunnelRat    EventKind = "tunnel-rat"
	EventYardFight    EventKind = "yard-fight"
	EventCameraGlitch EventKind = "camera-glitch"
)

// Kinds lists every known event kind in catalog order.
func Kinds() []EventKind {
	return []EventKind{
		EventContraband,
		EventGuardShift,
		EventTunnelRat,
		EventYardFight,
		EventCameraGlitch,
	}
}

// Known reports whether k is one of the defined event kinds.
func (k EventKind) Known() bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

// EventCard is a randomly offered modifier. Its effect is data, not code:
// taking the card applies Effect to the current snapshot.
type EventCard struct {
	ID          EventKind `yaml:"id"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Effect      Delta     `yaml:"effect"`
}

// Catalog is the fixed set of cards a run can draw from.
type Catalog []EventCard

var (
	// ErrEmptyCatalog is returned when a catalog has no cards.
	ErrEmptyCatalog = errors.New("jail: event catalog is empty")

	// ErrUnknownEvent is returned when a card uses an undefined kind.
	ErrUnknownEvent = errors.New("jail: unknown event kind")
)

// DefaultCatalog returns the stock cards.
func DefaultCatalog() Catalog {
	return Catalog{
		{
			ID:          EventContraband,
			Title:       "Contraband Drop",
			Description: "A sock slides under your door. Something sharp inside.",
			Effect:      Delta{Shiv: 1, Suspicion: 8, XP: 10},
		},
		{
			ID:          EventGuardShift,
			Title:       "Guard Shift Change",
			Description: "Footsteps change rhythm. A tiny timing window opens.",
			Effect:      Delta{Suspicion: -12, Stamina: 6, XP: 8},
		},
		{
			ID:          EventTunnelRat,
			Title:       "Tunnel Rat",
			Description: "A rat carries a ring of keys... you can try to grab it.",
			Effect:      Delta{Keys: 1, Stamina: -10, Suspicion: 6, XP: 12},
		},
		{
			ID:          EventYardFight,
			Title:       "Yard Fight",
			Description: "Someone bumps you. Chaos. You can slip through... or get hit.",
			Effect:      Delta{HP: -18, Suspicion: 10, Coin: 1, XP: 14},
		},
		{
			ID:          EventCameraGlitch,
			Title:       "Camera Glitch",
			Description: "A camera loops for a second. Perfect cover.",
			Effect:      Delta{Suspicion: -18, XP: 9},
		},
	}
}

// Validate checks that the catalog is non-empty and every card has a known,
// unique kind and a title.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return ErrEmptyCatalog
	}
	seen := make(map[EventKind]bool, len(c))
	for i, card := range c {
		if !card.ID.Known() {
			return fmt.Errorf("card %d: %w %q", i, ErrUnknownEvent, card.ID)
		}
		if seen[card.ID] {
			return fmt.Errorf("jail: duplicate event kind %q", card.ID)
		}
		if card.Title == "" {
			return fmt.Errorf("jail: event %q has no title", card.ID)
		}
		seen[card.ID] = true
	}
	return nil
}

// Lookup returns the card with the given kind.
func (c Catalog) Lookup(kind EventKind) (EventCard, bool) {
	for _, card := range c {
		if card.ID == kind {
			return card, true
		}
	}
	return EventCard{}, false
}

// Clone returns an independent copy of the catalog.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	copy(out, c)
	return out
}
