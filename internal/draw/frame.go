package draw

// sprites maps image references to the colour they are painted with.
var sprites = map[string]Color{
	"pistolBee":      Yellow,
	"bullet":         White,
	"redwasp":        Red,
	"yellowjacket":   Orange,
	"crate":          Green,
	"beehive":        Amber,
	"beeswithguns":   DarkGray,
	"beecelebration": Blue,
}

// SpriteColor returns the colour used for an image reference.
// Unknown references are painted magenta so they stand out.
func SpriteColor(ref string) Color {
	if c, ok := sprites[ref]; ok {
		return c
	}
	return Magenta
}

// boldTextSize is the advisory text size from which text is drawn bold.
const boldTextSize = 30

// Frame is a drawing surface backed by a Canvas. Coordinates are logical
// playfield units; Present flushes the frame to the terminal.
type Frame struct {
	canvas *Canvas
	out    *ChunkWriter
	pen    Color
}

// NewFrame creates a frame drawing into canvas and presenting to out.
func NewFrame(canvas *Canvas, out *ChunkWriter) *Frame {
	return &Frame{canvas: canvas, out: out, pen: White}
}

// Canvas returns the backing canvas.
func (f *Frame) Canvas() *Canvas {
	return f.canvas
}

// Clear erases everything drawn since the last Present.
func (f *Frame) Clear() {
	f.canvas.Clear()
}

// SetPenColor selects the colour for FillRect and DrawStringCentered.
func (f *Frame) SetPenColor(c Color) {
	f.pen = c
}

// DrawImage paints the image ref into the rectangle with top-left (x, y).
func (f *Frame) DrawImage(x, y int, ref string, w, h int) {
	f.canvas.FillRect(x, y, w, h, SpriteColor(ref))
}

// FillRect fills the rectangle with top-left (x, y) using the pen colour.
func (f *Frame) FillRect(x, y, w, h int) {
	f.canvas.FillRect(x, y, w, h, f.pen)
}

// DrawStringCentered writes text centred on (x, y) in the pen colour.
// Terminals have a single font size; large sizes are drawn bold.
func (f *Frame) DrawStringCentered(x, y int, text string, size int) {
	col, row := f.canvas.LogicalToTerminal(float64(x), float64(y))
	f.canvas.PutTextCentered(col, row, text, f.pen, size >= boldTextSize)
}

// Present writes the changed cells to the terminal.
func (f *Frame) Present() error {
	full, err := f.canvas.Render(f.out)
	if err != nil {
		return err
	}
	if full {
		if err := f.canvas.RenderBorder(f.out); err != nil {
			return err
		}
	}
	return f.out.Flush()
}
