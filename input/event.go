// Package input holds the engine-neutral input model consumed by the game loop
package input

// EventType discriminates input events
type EventType uint8

const (
	EventNone EventType = iota

	EventKey    // Key press
	EventQuit   // Window close, Ctrl+C, Ctrl+Q
	EventResize // Terminal resize
)

// Key identifies a logical key after translation from the terminal
type Key uint8

const (
	KeyNone Key = iota

	KeyUp     // Up arrow, k
	KeyDown   // Down arrow, j
	KeyLeft   // Left arrow, h
	KeyRight  // Right arrow, l
	KeyEnter  // Enter
	KeyEscape // ESC
	KeySpace  // Space
	KeyRune   // Any other printable rune, see Event.Rune
)

// Event is a single discrete input delivered to the loop
type Event struct {
	Type EventType
	Key  Key
	Rune rune

	// Width and Height are set for EventResize
	Width, Height int
}

// KeyEvent builds an EventKey for k
func KeyEvent(k Key) Event {
	return Event{Type: EventKey, Key: k}
}

// RuneEvent builds an EventKey carrying a printable rune
func RuneEvent(r rune) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: r}
}

// QuitEvent builds an EventQuit
func QuitEvent() Event {
	return Event{Type: EventQuit}
}

// Direction returns the unit vector for a directional key, ok false otherwise
// Screen coordinates: y grows downward
func (e Event) Direction() (dx, dy float64, ok bool) {
	if e.Type != EventKey {
		return 0, 0, false
	}
	switch e.Key {
	case KeyUp:
		return 0, -1, true
	case KeyDown:
		return 0, 1, true
	case KeyLeft:
		return -1, 0, true
	case KeyRight:
		return 1, 0, true
	}
	return 0, 0, false
}

// Source yields the events that arrived since the previous call
// Poll must not block, an empty slice means no input this tick
type Source interface {
	Poll() []Event
}
