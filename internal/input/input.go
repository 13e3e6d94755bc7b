// Package input decodes raw terminal bytes (keys, arrow sequences and xterm
// SGR mouse reports) into a per-tick Input snapshot.
package input

import (
	"bufio"
	"strconv"
	"sync"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current tick's input state.
type Input struct {
	Quit   bool
	Left   bool
	Right  bool
	Up     bool
	Down   bool
	Space  bool
	Reload bool
	Enter  bool

	// Click is set when a left mouse button press arrived since the last read.
	// ClickCol and ClickRow are the 1-based terminal cell of the most recent press.
	Click    bool
	ClickCol int
	ClickRow int

	Pressed []byte
}

// Start reports whether the input should leave a title or end screen.
func (in Input) Start() bool {
	return in.Space || in.Enter || in.Click
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit   time.Time
	left   time.Time
	right  time.Time
	up     time.Time
	down   time.Time
	space  time.Time
	reload time.Time
	enter  time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
// The reader goroutine never touches game state; the loop drains the channel
// on its own goroutine once per tick.
type Stream struct {
	ch       chan byte
	done     chan struct{}
	stopOnce sync.Once
	exited   chan struct{} // Closed when the reader goroutine returns
	state    keyState
	closed   bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// Call Stop once the stream is no longer drained.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:     make(chan byte, 256),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
	go func() {
		defer close(s.exited)
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
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

// Stop releases the reader goroutine. A goroutine blocked inside the
// underlying read returns on its next byte or when the reader is closed.
func (s *Stream) Stop() {
	s.stopOnce.Do(func() {
		if s.done != nil {
			close(s.done)
		}
	})
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// ResetKeyInput forgets held keys so a key used to leave a screen
// does not also act on the first tick of the next one.
func ResetKeyInput(s *Stream) {
	if s == nil {
		return
	}
	s.state = keyState{}
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and mouse reports and accumulates all pressed keys.
// Uses key state persistence to allow detecting simultaneous key combinations.
func ReadInput(s *Stream) Input {
	return readInputAt(s, time.Now())
}

func readInputAt(s *Stream, now time.Time) Input {
	var buf []byte

	// Drain all available bytes
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	return parse(&s.state, buf, now)
}

// parse updates key state from buf and builds the resulting Input.
func parse(state *keyState, buf []byte, now time.Time) Input {
	input := Input{Pressed: buf}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequences: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				state.up = now
				i += 2
				continue
			case 'B':
				state.down = now
				i += 2
				continue
			case 'C':
				state.right = now
				i += 2
				continue
			case 'D':
				state.left = now
				i += 2
				continue
			case '<':
				if n, col, row, press := parseSGRMouse(buf[i+3:]); n > 0 {
					if press {
						input.Click = true
						input.ClickCol = col
						input.ClickRow = row
					}
					i += 2 + n
					continue
				}
			}
		}

		applyByteToState(state, b, now)
	}

	// Keys are "pressed" if seen within hold duration
	input.Quit = now.Sub(state.quit) < keyHoldDuration
	input.Left = now.Sub(state.left) < keyHoldDuration
	input.Right = now.Sub(state.right) < keyHoldDuration
	input.Up = now.Sub(state.up) < keyHoldDuration
	input.Down = now.Sub(state.down) < keyHoldDuration
	input.Space = now.Sub(state.space) < keyHoldDuration
	input.Reload = now.Sub(state.reload) < keyHoldDuration
	input.Enter = now.Sub(state.enter) < keyHoldDuration

	return input
}

// parseSGRMouse parses the tail of an SGR mouse report "b;col;row(M|m)"
// that follows "ESC [ <". It returns the number of bytes consumed (0 if the
// report is incomplete or malformed) and whether it was a left button press.
func parseSGRMouse(buf []byte) (n, col, row int, press bool) {
	var fields [3]int
	field := 0
	start := 0
	for i, c := range buf {
		switch {
		case c >= '0' && c <= '9':
			continue
		case c == ';' && field < 2:
			v, err := strconv.Atoi(string(buf[start:i]))
			if err != nil {
				return 0, 0, 0, false
			}
			fields[field] = v
			field++
			start = i + 1
		case (c == 'M' || c == 'm') && field == 2:
			v, err := strconv.Atoi(string(buf[start:i]))
			if err != nil {
				return 0, 0, 0, false
			}
			fields[2] = v
			button := fields[0]
			// Low two bits select the button; bit 5 marks motion, bit 6 the wheel.
			left := button&3 == 0 && button&(32|64) == 0
			return i + 1, fields[1], fields[2], c == 'M' && left
		default:
			return 0, 0, 0, false
		}
	}
	return 0, 0, 0, false
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		state.quit = now
	case 'a', 'A', 'h', 'H':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'k', 'K':
		state.up = now
	case 's', 'S', 'j', 'J':
		state.down = now
	case 'r', 'R':
		state.reload = now
	case ' ':
		state.space = now
	case '\n', '\r':
		state.enter = now
	}
}
