package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last byte.
// Terminals only report presses (and auto-repeat), never releases, so this
// must outlast the auto-repeat interval plus one frame.
const keyHoldDuration = 80 * time.Millisecond

// Stream delivers terminal bytes via a channel and turns them into events
// and held-key state. It implements Source.
type Stream struct {
	ch       chan byte
	lastSeen [keyCount]time.Time
	pending  []byte // Start of an escape sequence split across polls
	ended    bool
	now      func() time.Time
}

// Ensure Stream satisfies Source.
var _ Source = (*Stream)(nil)

func newStream() *Stream {
	return &Stream{
		ch:  make(chan byte, 128),
		now: time.Now,
	}
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The channel is closed when r fails or reaches EOF.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// PollEvents drains all available bytes from the stream (non-blocking).
// Arrow keys arrive as CSI escape sequences; a lone ESC is the escape key.
// An ESC at the end of a drain is held back one poll in case the rest of
// its sequence is still in flight. The end of input is reported once as a
// Quit event.
func (s *Stream) PollEvents() []Event {
	buf := s.pending
	s.pending = nil
	drained := 0
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
			drained++
		default:
			break drain
		}
	}

	if drained > 0 && !closed {
		if n := incompleteTail(buf); n > 0 {
			s.pending = append([]byte(nil), buf[len(buf)-n:]...)
			buf = buf[:len(buf)-n]
		}
	}

	now := s.now()
	events := parseBytes(buf, func(k Key) { s.lastSeen[k] = now })

	if closed && !s.ended {
		s.ended = true
		events = append(events, Quit())
	}
	return events
}

// KeyState reports whether k was seen within the hold window.
func (s *Stream) KeyState(k Key) bool {
	if k <= KeyUnknown || k >= keyCount {
		return false
	}
	seen := s.lastSeen[k]
	return !seen.IsZero() && s.now().Sub(seen) < keyHoldDuration
}

// parseBytes converts raw terminal bytes to events, calling press for every
// recognized key.
func parseBytes(buf []byte, press func(Key)) []Event {
	var events []Event
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			// CSI sequence: ESC [ <code>
			if i+2 < len(buf) && buf[i+1] == '[' {
				if k := arrowKey(buf[i+2]); k != KeyUnknown {
					press(k)
					events = append(events, KeyDown(k))
					i += 2
					continue
				}
			}
			press(KeyEscape)
			events = append(events, KeyDown(KeyEscape))
			continue
		}

		if b == 'q' || b == 'Q' || b == 0x03 { // 0x03 is Ctrl+C in raw mode
			events = append(events, Quit())
			continue
		}

		if k := byteKey(b); k != KeyUnknown {
			press(k)
			events = append(events, KeyDown(k))
		}
	}
	return events
}

// incompleteTail returns the length of an unfinished escape sequence at the
// end of buf.
func incompleteTail(buf []byte) int {
	n := len(buf)
	switch {
	case n >= 1 && buf[n-1] == '\x1b':
		return 1
	case n >= 2 && buf[n-2] == '\x1b' && buf[n-1] == '[':
		return 2
	}
	return 0
}

func arrowKey(code byte) Key {
	switch code {
	case 'A':
		return KeyArrowUp
	case 'B':
		return KeyArrowDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	}
	return KeyUnknown
}

func byteKey(b byte) Key {
	switch b {
	case 'a', 'A', 'h', 'H':
		return KeyLeft
	case 'd', 'D', 'l', 'L':
		return KeyRight
	case 'w', 'W', 'k', 'K':
		return KeyArrowUp
	case 's', 'S', 'j', 'J':
		return KeyArrowDown
	case ' ':
		return KeySpace
	case '\n', '\r':
		return KeyEnter
	}
	return KeyUnknown
}
