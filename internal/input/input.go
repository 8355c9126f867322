// Package input turns raw terminal bytes into a per-frame snapshot of
// semantic actions.
package input

import (
	"bufio"
	"sync"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals send no key-up events, only auto-repeat.
const keyHoldDuration = 80 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit  bool
	Up    bool // Held
	Down  bool // Held
	Start bool // Pressed this frame

	// Click is set when the primary mouse button was pressed this frame.
	// ClickCol and ClickRow are 1-based terminal coordinates.
	Click    bool
	ClickCol int
	ClickRow int

	// Closed is set once the underlying reader has ended.
	Closed bool
}

// keyState tracks the last time each held key was pressed.
type keyState struct {
	up   time.Time
	down time.Time
}

// Stream delivers input bytes via a channel and tracks key state for held keys.
type Stream struct {
	ch    chan byte
	done  chan struct{}
	stop  sync.Once
	state keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine ends when r fails or after Stop once it has read another byte.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:   make(chan byte, 128),
		done: make(chan struct{}),
	}
	go func() {
		defer close(s.ch)
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// Stop releases the reader goroutine. Bytes read afterwards are dropped.
func (s *Stream) Stop() {
	s.stop.Do(func() { close(s.done) })
}

// ReadInput drains all available bytes from the stream (non-blocking)
// and returns the snapshot for this frame.
func ReadInput(s *Stream) Input {
	buf, closed := s.drain()
	in := s.state.apply(buf, time.Now())
	in.Closed = closed
	return in
}

// ResetKeyInput forgets all held keys.
func ResetKeyInput(s *Stream) {
	s.state = keyState{}
}

// drain collects every byte currently buffered in the channel.
func (s *Stream) drain() (buf []byte, closed bool) {
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				return buf, true
			}
			buf = append(buf, b)
		default:
			return buf, false
		}
	}
}

// apply parses the bytes received this frame, updates held-key timestamps
// and builds the frame's Input.
func (st *keyState) apply(buf []byte, now time.Time) Input {
	var in Input

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				st.up = now
				i += 2
				continue
			case 'B': // Down arrow
				st.down = now
				i += 2
				continue
			case 'C', 'D': // Left/right arrows are unused
				i += 2
				continue
			case '<': // SGR mouse report
				if n, col, row, press, ok := parseMouse(buf[i+3:]); ok {
					if press {
						in.Click = true
						in.ClickCol = col
						in.ClickRow = row
					}
					i += 2 + n
					continue
				}
			}
		}

		switch b {
		case 'q', 'Q', '\x03':
			in.Quit = true
		case 'w', 'W', 'i', 'I':
			st.up = now
		case 's', 'S', 'k', 'K':
			st.down = now
		case ' ', '\r', '\n':
			in.Start = true
		}
	}

	in.Up = now.Sub(st.up) < keyHoldDuration
	in.Down = now.Sub(st.down) < keyHoldDuration
	return in
}

// parseMouse parses the body of an SGR mouse report, "btn;col;row" followed
// by 'M' (press) or 'm' (release). It returns the bytes consumed and whether
// the report is a primary button press.
func parseMouse(b []byte) (n, col, row int, press, ok bool) {
	var fields [3]int
	field := 0
	digits := 0

	for i, c := range b {
		switch {
		case c >= '0' && c <= '9':
			fields[field] = fields[field]*10 + int(c-'0')
			digits++
		case c == ';':
			if digits == 0 || field == 2 {
				return 0, 0, 0, false, false
			}
			field++
			digits = 0
		case c == 'M' || c == 'm':
			if digits == 0 || field != 2 {
				return 0, 0, 0, false, false
			}
			return i + 1, fields[1], fields[2], c == 'M' && fields[0] == 0, true
		default:
			return 0, 0, 0, false, false
		}
	}
	return 0, 0, 0, false, false
}
