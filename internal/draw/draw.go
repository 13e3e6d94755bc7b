// Package draw renders the game into a terminal: a scaled colour canvas of
// half-block pixels, text overlays, and a Frame that exposes both as the
// game's drawing surface.
package draw

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Color is a palette entry. None leaves the terminal's default colour.
type Color uint8

const (
	None Color = iota
	Black
	White
	Red
	DarkRed
	Orange
	Amber
	Yellow
	Green
	Blue
	Gray
	DarkGray
	Magenta
)

// xterm 256-colour indexes for the palette.
var xterm256 = [...]int{
	None:     -1,
	Black:    16,
	White:    231,
	Red:      196,
	DarkRed:  88,
	Orange:   208,
	Amber:    136,
	Yellow:   226,
	Green:    34,
	Blue:     33,
	Gray:     245,
	DarkGray: 238,
	Magenta:  201,
}

const sgrReset = "\033[0m"

// sgr returns the escape sequence selecting fg/bg colours, always starting
// from a reset so attributes never leak between cells.
func sgr(fg, bg Color, bold bool) string {
	s := sgrReset
	if bold {
		s += "\033[1m"
	}
	if idx := xterm256[fg]; idx >= 0 {
		s += "\033[38;5;" + strconv.Itoa(idx) + "m"
	}
	if idx := xterm256[bg]; idx >= 0 {
		s += "\033[48;5;" + strconv.Itoa(idx) + "m"
	}
	return s
}

// cursorTo returns the escape sequence moving the cursor to (col, row), 1-based.
func cursorTo(col, row int) string {
	return "\033[" + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H"
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// EnableMouse turns on button press reporting in SGR encoding.
func EnableMouse(w io.Writer) {
	fmt.Fprint(w, "\033[?1000h\033[?1006h")
}

// DisableMouse turns mouse reporting back off.
func DisableMouse(w io.Writer) {
	fmt.Fprint(w, "\033[?1006l\033[?1000l")
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}
