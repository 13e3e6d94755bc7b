package draw

import (
	"io"
	"strings"
)

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// Kept under a typical 1500 byte MTU for smooth SSH/network transmission.
const maxChunkSize = 1400

// ChunkWriter accumulates a whole frame of terminal output and writes it in
// MTU-sized chunks on Flush, so a frame crosses an SSH channel in as few
// packets as possible and never half-drawn.
type ChunkWriter struct {
	buf strings.Builder
	w   io.Writer
}

// NewChunkWriter creates a ChunkWriter that writes to w.
func NewChunkWriter(w io.Writer) *ChunkWriter {
	return &ChunkWriter{w: w}
}

// Write implements io.Writer for use with Canvas.Render and the screen helpers.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	return cw.buf.Write(p)
}

// WriteString appends a string to the buffer.
func (cw *ChunkWriter) WriteString(s string) (int, error) {
	return cw.buf.WriteString(s)
}

// Ensure ChunkWriter satisfies io.StringWriter.
var _ io.StringWriter = (*ChunkWriter)(nil)

// Flush writes the accumulated buffer to the underlying writer in chunks of
// at most maxChunkSize bytes, then resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := io.WriteString(cw.w, chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}
