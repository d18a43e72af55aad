// Package input defines the input boundary of the game and a terminal
// implementation of it.
package input

// Key identifies a key the game reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyArrowUp
	KeyArrowDown
	KeySpace
	KeyEnter
	KeyEscape
	keyCount
)

var keyNames = [keyCount]string{
	KeyUnknown:   "unknown",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyArrowUp:   "up",
	KeyArrowDown: "down",
	KeySpace:     "space",
	KeyEnter:     "enter",
	KeyEscape:    "escape",
}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return keyNames[KeyUnknown]
	}
	return keyNames[k]
}

// EventType distinguishes discrete input events.
type EventType int

const (
	EventQuit    EventType = iota // Window closed, input ended, or quit requested
	EventKeyDown                  // A key went down
)

// Event is one discrete input occurrence.
type Event struct {
	Type EventType
	Key  Key // Set for EventKeyDown
}

// Quit is the event produced when the player leaves.
func Quit() Event { return Event{Type: EventQuit} }

// KeyDown is the event produced when k is pressed.
func KeyDown(k Key) Event { return Event{Type: EventKeyDown, Key: k} }

// Source produces input for the game loop.
type Source interface {
	// PollEvents returns every event that arrived since the previous call.
	PollEvents() []Event
	// KeyState reports whether k is held right now.
	KeyState(k Key) bool
}
