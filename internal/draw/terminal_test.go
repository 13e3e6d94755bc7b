package draw

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeRecorder keeps every Write call separately.
type writeRecorder struct {
	writes []string
}

func (r *writeRecorder) Write(p []byte) (int, error) {
	r.writes = append(r.writes, string(p))
	return len(p), nil
}

func TestChunkWriter_FlushChunks(t *testing.T) {
	var rec writeRecorder
	cw := NewChunkWriter(&rec)

	frame := strings.Repeat("x", 2*maxChunkSize+10)
	_, err := cw.WriteString(frame)
	require.NoError(t, err)
	assert.Empty(t, rec.writes, "nothing is written before Flush")

	require.NoError(t, cw.Flush())
	require.Len(t, rec.writes, 3)
	assert.Len(t, rec.writes[0], maxChunkSize)
	assert.Len(t, rec.writes[1], maxChunkSize)
	assert.Len(t, rec.writes[2], 10)
	assert.Equal(t, frame, strings.Join(rec.writes, ""))

	require.NoError(t, cw.Flush())
	assert.Len(t, rec.writes, 3, "an empty buffer writes nothing")
}

func TestChunkWriter_RenderedFrame(t *testing.T) {
	var rec writeRecorder
	cw := NewChunkWriter(&rec)
	c := newTestCanvas()
	c.FillRect(0, 0, 1280, 720, Amber)

	_, err := c.Render(cw)
	require.NoError(t, err)
	require.NoError(t, cw.Flush())

	require.Greater(t, len(rec.writes), 1, "a full repaint spans several chunks")
	for _, w := range rec.writes {
		assert.LessOrEqual(t, len(w), maxChunkSize)
	}
}
