// Package draw provides the rendering boundary of the game and a terminal
// implementation of it.
package draw

import (
	"fmt"
	"image/color"
	"io"
)

// Surface is an immediate-mode drawing target. Coordinates are logical
// pixels; implementations scale them to their output. Colors carry straight
// (non-premultiplied) alpha. A frame is a Clear, any number of draw calls,
// then Present.
type Surface interface {
	Clear(c color.RGBA)
	FillRect(x, y, w, h int, c color.RGBA)
	DrawLine(x1, y1, x2, y2 int, c color.RGBA)
	DrawPoint(x, y int, c color.RGBA)
	DrawText(x, y int, text string, c color.RGBA)
	Present() error
}

// BlockUpperHalf is the cell glyph used by Canvas: foreground paints the
// upper pixel, background the lower one.
const BlockUpperHalf = '▀'

// Common colors.
var (
	Black = color.RGBA{A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Brighten adds delta to each color channel, saturating at 255.
// Alpha is left unchanged.
func Brighten(c color.RGBA, delta int) color.RGBA {
	return color.RGBA{
		R: addChannel(c.R, delta),
		G: addChannel(c.G, delta),
		B: addChannel(c.B, delta),
		A: c.A,
	}
}

func addChannel(v uint8, delta int) uint8 {
	n := int(v) + delta
	if n > 255 {
		return 255
	}
	if n < 0 {
		return 0
	}
	return uint8(n)
}

// Blend composites src over dst using src's alpha. The result is opaque
// when dst is.
func Blend(dst, src color.RGBA) color.RGBA {
	switch src.A {
	case 255:
		return src
	case 0:
		return dst
	}
	a := uint32(src.A)
	inv := 255 - a
	return color.RGBA{
		R: uint8((uint32(src.R)*a + uint32(dst.R)*inv) / 255),
		G: uint8((uint32(src.G)*a + uint32(dst.G)*inv) / 255),
		B: uint8((uint32(src.B)*a + uint32(dst.B)*inv) / 255),
		A: uint8(a + uint32(dst.A)*inv/255),
	}
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

// ResetStyle resets terminal colors and attributes.
func ResetStyle(w io.Writer) {
	fmt.Fprint(w, "\033[0m")
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
