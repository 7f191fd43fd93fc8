package sh110x

import (
	"image"
	"image/color"

	"github.com/BeatGlow/sh110x/pixel"
)

// Framebuffer is a 1-bit pixel buffer organised in pages of 8 rows, with
// pixel rotation and tracking of the region changed since the last refresh.
//
// The zero value has no buffer: drawing is ignored and pixels read as off.
type Framebuffer struct {
	img      *pixel.MonoVerticalLSBImage
	rotation Rotation
	dirty    dirtyRect
}

// NewFramebuffer allocates a buffer for a width x height physical display.
// The whole buffer starts out dirty.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := new(Framebuffer)
	fb.init(width, height)
	return fb
}

func (fb *Framebuffer) init(width, height int) {
	fb.img = pixel.NewMonoVerticalLSBImage(width, height)
	fb.dirty = newDirtyRect()
	fb.Invalidate()
}

func (fb *Framebuffer) allocated() bool {
	return fb.img != nil && len(fb.img.Pix) > 0
}

// Width is the physical width in pixels.
func (fb *Framebuffer) Width() int {
	if fb.img == nil {
		return 0
	}
	return fb.img.Rect.Dx()
}

// Height is the physical height in pixels.
func (fb *Framebuffer) Height() int {
	if fb.img == nil {
		return 0
	}
	return fb.img.Rect.Dy()
}

// Pages is the number of 8-row pages.
func (fb *Framebuffer) Pages() int {
	if fb.img == nil {
		return 0
	}
	return fb.img.Pages()
}

func (fb *Framebuffer) ColorModel() color.Model {
	return pixel.MonoModel
}

// Bounds is the logical bounding box, width and height are swapped when
// rotated by 90° or 270°.
func (fb *Framebuffer) Bounds() image.Rectangle {
	w, h := fb.rotation.size(fb.Width(), fb.Height())
	return image.Rect(0, 0, w, h)
}

func (fb *Framebuffer) At(x, y int) color.Color {
	return pixel.Mono{On: fb.Pixel(x, y)}
}

func (fb *Framebuffer) Set(x, y int, c color.Color) {
	if pixel.MonoModel.Convert(c).(pixel.Mono).On {
		fb.SetPixel(x, y, ModeSet)
	} else {
		fb.SetPixel(x, y, ModeClear)
	}
}

// physical maps a logical coordinate to the physical buffer, ok is false if
// the coordinate is outside the logical bounds.
func (fb *Framebuffer) physical(x, y int) (px, py int, ok bool) {
	if !fb.allocated() {
		return 0, 0, false
	}
	var (
		w = fb.img.Rect.Dx()
		h = fb.img.Rect.Dy()
	)
	lw, lh := fb.rotation.size(w, h)
	if x < 0 || y < 0 || x >= lw || y >= lh {
		return 0, 0, false
	}
	px, py = fb.rotation.transform(x, y, w, h)
	return px, py, true
}

// SetPixel changes the pixel at logical (x, y), out of bounds pixels are
// ignored.
func (fb *Framebuffer) SetPixel(x, y int, mode Mode) {
	px, py, ok := fb.physical(x, y)
	if !ok {
		return
	}
	switch mode {
	case ModeSet:
		ok = fb.img.SetBit(px, py, true)
	case ModeClear:
		ok = fb.img.SetBit(px, py, false)
	case ModeInvert:
		ok = fb.img.ToggleBit(px, py)
	default:
		ok = false
	}
	if ok {
		fb.dirty.mark(px, py)
	}
}

// Pixel reports if the pixel at logical (x, y) is on, out of bounds pixels
// are off.
func (fb *Framebuffer) Pixel(x, y int) bool {
	px, py, ok := fb.physical(x, y)
	if !ok {
		return false
	}
	return fb.img.Bit(px, py)
}

// Clear turns all pixels off and marks the whole buffer dirty.
func (fb *Framebuffer) Clear() {
	fb.Fill(ModeClear)
}

// Fill applies mode to all pixels and marks the whole buffer dirty.
func (fb *Framebuffer) Fill(mode Mode) {
	if !fb.allocated() {
		return
	}
	switch mode {
	case ModeClear:
		fb.img.Clear()
	case ModeSet:
		fb.img.Fill(pixel.On)
	case ModeInvert:
		for i := range fb.img.Pix {
			fb.img.Pix[i] = ^fb.img.Pix[i]
		}
	default:
		return
	}
	fb.Invalidate()
}

// Buffer is the raw page organised buffer: byte x + page*width holds rows
// page*8 to page*8+7 of column x, least significant bit on top. Callers
// changing it directly must call Invalidate.
func (fb *Framebuffer) Buffer() []byte {
	if fb.img == nil {
		return nil
	}
	return fb.img.Pix
}

// Invalidate marks the whole buffer dirty.
func (fb *Framebuffer) Invalidate() {
	if !fb.allocated() {
		return
	}
	fb.dirty.mark(0, 0)
	fb.dirty.mark(fb.img.Rect.Dx()-1, fb.img.Rect.Dy()-1)
}

// Dirty is the physical region pending refresh, it is empty if nothing
// changed.
func (fb *Framebuffer) Dirty() image.Rectangle {
	if !fb.allocated() {
		return image.Rectangle{}
	}
	return fb.dirty.rectangle()
}

func (fb *Framebuffer) Rotation() Rotation {
	return fb.rotation
}

// SetRotation changes the pixel rotation, it does not change the buffer.
func (fb *Framebuffer) SetRotation(rotation Rotation) error {
	fb.rotation = rotation % 4
	return nil
}
