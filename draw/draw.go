// Package draw has shape and text primitives for monochrome displays.
//
// All primitives take a pixel Mode, so shapes can be drawn, erased or
// inverted over existing content. Pixels outside the canvas are ignored.
package draw

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/BeatGlow/sh110x"
)

// Canvas is something pixels can be drawn on, such as a sh110x.Display or a
// sh110x.Framebuffer.
type Canvas interface {
	Bounds() image.Rectangle
	SetPixel(x, y int, mode sh110x.Mode)
}

// Draw composes src onto dst with [image/draw.Draw], colors are converted by
// the destination color model. Use it to put images or icons on a Display.
func Draw(dst draw.Image, r image.Rectangle, src image.Image, sp image.Point, op draw.Op) {
	draw.Draw(dst, r, src, sp, op)
}

// Text draws s with its baseline origin at dot, and returns the advanced dot.
// Glyph pixels with at least half coverage are drawn.
func Text(dst Canvas, dot image.Point, face font.Face, s string, mode sh110x.Mode) image.Point {
	var (
		metrics = face.Metrics()
		advance = font.MeasureString(face, s)
		ascent  = metrics.Ascent.Ceil()
		width   = advance.Ceil()
		height  = ascent + metrics.Descent.Ceil()
	)
	if width <= 0 || height <= 0 {
		return dot
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(s)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if mask.AlphaAt(x, y).A >= 0x80 {
				dst.SetPixel(dot.X+x, dot.Y-ascent+y, mode)
			}
		}
	}
	return image.Pt(dot.X+advance.Round(), dot.Y)
}
