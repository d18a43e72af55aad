package draw

import (
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Canvas is a color drawing buffer with 2x vertical resolution using
// half-block characters. Each terminal cell shows two pixels: the upper one
// as foreground of '▀', the lower one as background.
// Drawing calls take logical coordinates which are scaled to pixels.
type Canvas struct {
	termWidth      int          // Terminal columns covered by the canvas
	termHeight     int          // Terminal rows covered by the canvas
	subPixelHeight int          // termHeight * 2
	pixels         []color.RGBA // Flat slice: [y * termWidth + x]

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets for centering the canvas.
	offsetCol int
	offsetRow int

	texts     []textOverlay
	renderBuf strings.Builder
	numBuf    [20]byte // Scratch buffer for allocation-free integer formatting
}

// textOverlay is text queued by DrawText, written after the pixels.
type textOverlay struct {
	x, y  float64
	text  string
	color color.RGBA
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the terminal cells the canvas occupies.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
// Pixel contents are discarded when the size changes.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]color.RGBA, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// Clear fills every pixel with bg and drops queued text.
func (c *Canvas) Clear(bg color.RGBA) {
	for i := range c.pixels {
		c.pixels[i] = bg
	}
	c.texts = c.texts[:0]
}

// setPixel blends a color into a pixel at actual coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col color.RGBA) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		i := y*c.termWidth + x
		c.pixels[i] = Blend(c.pixels[i], col)
	}
}

// Pixel returns the pixel at actual coordinates. Out of range reads are zero.
func (c *Canvas) Pixel(x, y int) color.RGBA {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return color.RGBA{}
	}
	return c.pixels[y*c.termWidth+x]
}

// FillRect fills a logical rectangle. Any non-empty rectangle covers at
// least one pixel.
func (c *Canvas) FillRect(x, y, w, h int, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	x0 := int(math.Floor(float64(x) * c.scaleX))
	y0 := int(math.Floor(float64(y) * c.scaleY))
	x1 := int(math.Ceil(float64(x+w) * c.scaleX))
	y1 := int(math.Ceil(float64(y+h) * c.scaleY))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	x0, x1 = max(x0, 0), min(x1, c.termWidth)
	y0, y1 = max(y0, 0), min(y1, c.subPixelHeight)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.setPixel(px, py, col)
		}
	}
}

// DrawPoint sets the pixel under a logical point.
func (c *Canvas) DrawPoint(x, y int, col color.RGBA) {
	px := int(math.Floor(float64(x) * c.scaleX))
	py := int(math.Floor(float64(y) * c.scaleY))
	c.setPixel(px, py, col)
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(lx1, ly1, lx2, ly2 int, col color.RGBA) {
	x1 := int(math.Floor(float64(lx1) * c.scaleX))
	y1 := int(math.Floor(float64(ly1) * c.scaleY))
	x2 := int(math.Floor(float64(lx2) * c.scaleX))
	y2 := int(math.Floor(float64(ly2) * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawText queues text at a logical position. It is written on top of the
// pixels during Render.
func (c *Canvas) DrawText(x, y int, text string, col color.RGBA) {
	if text == "" {
		return
	}
	c.texts = append(c.texts, textOverlay{x: float64(x), y: float64(y), text: text, color: col})
}

// Render outputs the canvas to the writer using half-block characters.
// Every cell is written; color escapes are only emitted when they change.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 8)

	for row := 0; row < c.termHeight; row++ {
		c.moveCursor(c.offsetCol+1, row+1+c.offsetRow)
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		var fg, bg color.RGBA
		first := true
		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]
			if first || top != fg {
				c.writeColor(38, top)
				fg = top
			}
			if first || bottom != bg {
				c.writeColor(48, bottom)
				bg = bottom
			}
			first = false
			c.renderBuf.WriteRune(BlockUpperHalf)
		}
	}

	for _, t := range c.texts {
		c.renderText(t)
	}
	c.renderBuf.WriteString("\033[0m")

	io.WriteString(w, c.renderBuf.String())
}

// renderText writes one overlay, clipped to the canvas width. The cell
// background is kept so text does not punch holes in the frame.
func (c *Canvas) renderText(t textOverlay) {
	col, row := c.LogicalToTerminal(t.x, t.y)
	if row < 1 || row > c.termHeight || col > c.termWidth {
		return
	}
	text := t.text
	if col < 1 {
		skip := 1 - col
		for i := 0; i < skip && text != ""; i++ {
			_, size := utf8.DecodeRuneInString(text)
			text = text[size:]
		}
		col = 1
	}
	if room := c.termWidth - col + 1; utf8.RuneCountInString(text) > room {
		text = string([]rune(text)[:room])
	}
	if text == "" {
		return
	}

	c.moveCursor(col+c.offsetCol, row+c.offsetRow)
	c.writeColor(38, t.color)
	c.writeColor(48, c.Pixel(col-1, (row-1)*2))
	c.renderBuf.WriteString(text)
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// writeColor appends a 24-bit SGR color; layer is 38 (foreground) or 48 (background).
func (c *Canvas) writeColor(layer int, col color.RGBA) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(layer), 10))
	c.renderBuf.WriteString(";2;")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col.R), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col.G), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col.B), 10))
	c.renderBuf.WriteByte('m')
}

// LogicalWidth returns the logical width (target resolution).
func (c *Canvas) LogicalWidth() float64 {
	return c.logicalWidth
}

// LogicalHeight returns the logical height (target resolution).
func (c *Canvas) LogicalHeight() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the terminal column count covered by the canvas.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the terminal row count covered by the canvas.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to 1-based canvas position (col, row).
// This is useful for placing text overlays at positions matching canvas-drawn objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	return px + 1, py/2 + 1
}
