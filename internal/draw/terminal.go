package draw

import (
	"bufio"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// Typical MTU is 1500 bytes; leave room for SSH framing.
const maxChunkSize = 1400

// ChunkWriter accumulates text for terminal output and writes in chunks for optimal
// network flow (e.g. over SSH). Implements io.Writer for Canvas.Render.
type ChunkWriter struct {
	buf  strings.Builder
	bufw *bufio.Writer // Buffers writes to underlying writer for fewer syscalls
}

// NewChunkWriter creates a ChunkWriter that writes to w.
func NewChunkWriter(w io.Writer) *ChunkWriter {
	return &ChunkWriter{
		bufw: bufio.NewWriterSize(w, 8192),
	}
}

// Write implements io.Writer for use with Canvas.Render and other writers.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	return cw.buf.Write(p)
}

// WriteString appends a string to the buffer.
func (cw *ChunkWriter) WriteString(s string) (int, error) {
	return cw.buf.WriteString(s)
}

// Ensure ChunkWriter satisfies io.Writer.
var _ io.Writer = (*ChunkWriter)(nil)

// Flush writes the accumulated buffer to the underlying writer in chunks,
// then resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := cw.bufw.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return cw.bufw.Flush()
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// Fallback size used when the terminal size cannot be read.
const (
	fallbackCols = 80
	fallbackRows = 24
)

// FitCanvas picks the largest canvas that keeps the logical aspect ratio
// inside a terminal of cols x rows, and the offsets that center it.
// Cells are one pixel wide and two pixels tall.
func FitCanvas(cols, rows int, logicalWidth, logicalHeight float64) (width, height, offsetCol, offsetRow int) {
	if cols < 1 || rows < 1 {
		return 1, 1, 0, 0
	}
	width = cols
	height = int(float64(cols) * logicalHeight / logicalWidth / 2)
	if height > rows {
		height = rows
		width = int(float64(rows*2) * logicalWidth / logicalHeight)
	}
	width = max(1, min(width, cols))
	height = max(1, min(height, rows))

	return width, height, (cols - width) / 2, (rows - height) / 2
}

// Terminal is a Surface that renders a Canvas to a terminal through a
// ChunkWriter. It follows terminal resizes between frames.
type Terminal struct {
	*Canvas

	out      *ChunkWriter
	sizeFunc TermSizeFunc
	cols     int
	rows     int
}

// Ensure Terminal satisfies Surface.
var _ Surface = (*Terminal)(nil)

// NewTerminal creates a terminal surface writing to w for the given
// logical resolution. A nil sizeFunc uses DefaultTermSizeFunc.
func NewTerminal(w io.Writer, sizeFunc TermSizeFunc, logicalWidth, logicalHeight int) *Terminal {
	if sizeFunc == nil {
		sizeFunc = DefaultTermSizeFunc
	}
	t := &Terminal{
		Canvas:   NewScaledCanvas(1, 1, float64(logicalWidth), float64(logicalHeight)),
		out:      NewChunkWriter(w),
		sizeFunc: sizeFunc,
	}
	t.refreshSize()
	return t
}

// Begin prepares the terminal for drawing.
func (t *Terminal) Begin() error {
	HideCursor(t.out)
	ClearScreen(t.out)
	return t.out.Flush()
}

// End restores the terminal.
func (t *Terminal) End() error {
	ResetStyle(t.out)
	ClearScreen(t.out)
	ShowCursor(t.out)
	return t.out.Flush()
}

// Present writes the frame and adopts any new terminal size for the next one.
func (t *Terminal) Present() error {
	t.Canvas.Render(t.out)
	if err := t.out.Flush(); err != nil {
		return err
	}
	if t.refreshSize() {
		ClearScreen(t.out)
		return t.out.Flush()
	}
	return nil
}

// refreshSize reads the terminal size and refits the canvas.
// Reports whether the size changed.
func (t *Terminal) refreshSize() bool {
	cols, rows, err := t.sizeFunc()
	if err != nil || cols <= 0 || rows <= 0 {
		cols, rows = fallbackCols, fallbackRows
	}
	if cols == t.cols && rows == t.rows {
		return false
	}
	t.cols, t.rows = cols, rows

	width, height, offCol, offRow := FitCanvas(cols, rows, t.LogicalWidth(), t.LogicalHeight())
	t.Canvas.Resize(width, height)
	t.Canvas.SetOffset(offCol, offRow)
	return true
}
