package draw

import (
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// cell is one rendered terminal character.
type cell struct {
	ch   rune
	fg   Color
	bg   Color
	bold bool
}

// textCell is a character overlaid on the pixel layer.
type textCell struct {
	ch   rune
	fg   Color
	bold bool
}

// Canvas is a colour drawing buffer with 2x vertical resolution using half-block characters.
// Supports scaling from logical coordinates to actual terminal pixels.
// Render only emits cells that changed since the previous frame.
type Canvas struct {
	termWidth      int     // Actual terminal columns
	termHeight     int     // Actual terminal rows
	subPixelHeight int     // termHeight * 2
	pixels         []Color // Flat slice: [y * termWidth + x]; None when unset
	text           []textCell
	prev           []cell // Last rendered frame, for diffing
	fullRedraw     bool   // Next Render repaints every cell

	// Scaling from logical to pixel coordinates
	logicalWidth  float64 // Target/logical width
	logicalHeight float64 // Target/logical height
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area when terminal is larger than max resolution.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	renderBuf strings.Builder // Buffer for batching render output
	numBuf    [20]byte        // Scratch buffer for allocation-free integer formatting
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.allocate(termWidth, termHeight)
	return c
}

func (c *Canvas) allocate(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	c.termWidth = termWidth
	c.termHeight = termHeight
	c.subPixelHeight = termHeight * 2
	c.pixels = make([]Color, c.subPixelHeight*termWidth)
	c.text = make([]textCell, termHeight*termWidth)
	c.prev = make([]cell, termHeight*termWidth)
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
	c.fullRedraw = true
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
// Returns true if the size changed.
func (c *Canvas) Resize(termWidth, termHeight int) bool {
	if termWidth == c.termWidth && termHeight == c.termHeight {
		return false
	}
	c.allocate(termWidth, termHeight)
	return true
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.fullRedraw = true
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// ForceRedraw makes the next Render repaint every cell, e.g. after the
// terminal was cleared.
func (c *Canvas) ForceRedraw() {
	c.fullRedraw = true
}

// Clear resets all pixels and text in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
	clear(c.text)
}

// pixelAt returns the colour of a sub-pixel, or None outside the canvas.
func (c *Canvas) pixelAt(x, y int) Color {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return None
	}
	return c.pixels[y*c.termWidth+x]
}

// FillRect fills a rectangle given by its top-left corner and size in logical units.
// Rectangles smaller than a pixel still cover one pixel.
func (c *Canvas) FillRect(x, y, w, h int, col Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x0 := int(math.Round(float64(x) * c.scaleX))
	y0 := int(math.Round(float64(y) * c.scaleY))
	x1 := max(int(math.Round(float64(x+w)*c.scaleX)), x0+1)
	y1 := max(int(math.Round(float64(y+h)*c.scaleY)), y0+1)

	x0, x1 = max(x0, 0), min(x1, c.termWidth)
	y0, y1 = max(y0, 0), min(y1, c.subPixelHeight)
	for py := y0; py < y1; py++ {
		row := c.pixels[py*c.termWidth : (py+1)*c.termWidth]
		for px := x0; px < x1; px++ {
			row[px] = col
		}
	}
}

// PutText places s at the 1-based terminal cell (col, row) relative to the canvas.
// Characters outside the canvas are dropped.
func (c *Canvas) PutText(col, row int, s string, fg Color, bold bool) {
	y := row - 1
	if y < 0 || y >= c.termHeight {
		return
	}
	x := col - 1
	for _, r := range s {
		if x >= 0 && x < c.termWidth {
			c.text[y*c.termWidth+x] = textCell{ch: r, fg: fg, bold: bold}
		}
		x++
	}
}

// PutTextCentered places s so that it is centred on the 1-based cell (col, row).
func (c *Canvas) PutTextCentered(col, row int, s string, fg Color, bold bool) {
	c.PutText(col-utf8.RuneCountInString(s)/2, row, s, fg, bold)
}

// compose resolves the cell at (col, row) from the pixel and text layers.
func (c *Canvas) compose(col, row int) cell {
	top := c.pixels[row*2*c.termWidth+col]
	bottom := c.pixelAt(col, row*2+1)

	if t := c.text[row*c.termWidth+col]; t.ch != 0 {
		return cell{ch: t.ch, fg: t.fg, bg: top, bold: t.bold}
	}

	switch {
	case top == None && bottom == None:
		return cell{ch: ' '}
	case top == bottom:
		return cell{ch: BlockFull, fg: top}
	case bottom == None:
		return cell{ch: BlockUpperHalf, fg: top}
	case top == None:
		return cell{ch: BlockLowerHalf, fg: bottom}
	default:
		return cell{ch: BlockUpperHalf, fg: top, bg: bottom}
	}
}

// Render outputs changed cells to the writer. It reports whether this was a
// full repaint, in which case callers redraw anything outside the canvas too.
func (c *Canvas) Render(w io.Writer) (full bool, err error) {
	full = c.fullRedraw
	c.fullRedraw = false

	c.renderBuf.Reset()
	var last cell
	lastValid := false
	cursorCol, cursorRow := -1, -1 // Canvas cell the terminal cursor sits on

	for row := 0; row < c.termHeight; row++ {
		for col := 0; col < c.termWidth; col++ {
			cur := c.compose(col, row)
			idx := row*c.termWidth + col
			if !full && c.prev[idx] == cur {
				continue
			}
			c.prev[idx] = cur

			if col != cursorCol || row != cursorRow {
				c.moveCursor(col+1+c.offsetCol, row+1+c.offsetRow)
			}
			cursorCol, cursorRow = col+1, row
			if !lastValid || last.fg != cur.fg || last.bg != cur.bg || last.bold != cur.bold {
				c.renderBuf.WriteString(sgr(cur.fg, cur.bg, cur.bold))
				last = cur
				lastValid = true
			}
			c.renderBuf.WriteRune(cur.ch)
		}
	}
	if lastValid {
		c.renderBuf.WriteString(sgrReset)
	}

	_, err = io.WriteString(w, c.renderBuf.String())
	return full, err
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
// Draws horizontal borders when there is vertical offset, vertical borders
// when there is horizontal offset, and corners when both are present.
func (c *Canvas) RenderBorder(w io.Writer) error {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars
	if !hasH && !hasV {
		return nil
	}

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	bar := strings.Repeat("─", c.termWidth)

	if hasV {
		if hasH {
			buf.WriteString(cursorTo(left, top) + "┌" + bar + "┐")
			buf.WriteString(cursorTo(left, bottom) + "└" + bar + "┘")
		} else {
			buf.WriteString(cursorTo(c.offsetCol+1, top) + bar)
			buf.WriteString(cursorTo(c.offsetCol+1, bottom) + bar)
		}
	}

	if hasH {
		startRow, endRow := top+1, bottom
		if !hasV {
			// No horizontal borders, side bars span full canvas height
			startRow = c.offsetRow + 1
			endRow = c.offsetRow + c.termHeight + 1
		}
		for row := startRow; row < endRow; row++ {
			buf.WriteString(cursorTo(left, row) + "│" + cursorTo(right, row) + "│")
		}
	}

	_, err := io.WriteString(w, buf.String())
	return err
}

// LogicalWidth returns the logical width (target resolution).
func (c *Canvas) LogicalWidth() float64 {
	return c.logicalWidth
}

// LogicalHeight returns the logical height (target resolution).
func (c *Canvas) LogicalHeight() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to a 1-based canvas cell (col, row).
// This is useful for placing text overlays at positions matching canvas-drawn objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}

// ScreenToLogical converts an absolute 1-based terminal cell (as reported by
// mouse events) to logical coordinates at the centre of that cell.
// ok is false when the cell lies outside the canvas.
func (c *Canvas) ScreenToLogical(col, row int) (x, y float64, ok bool) {
	cx := col - 1 - c.offsetCol
	cy := row - 1 - c.offsetRow
	if cx < 0 || cx >= c.termWidth || cy < 0 || cy >= c.termHeight {
		return 0, 0, false
	}
	x = (float64(cx) + 0.5) / c.scaleX
	y = (float64(cy)*2 + 1) / c.scaleY
	return x, y, true
}
