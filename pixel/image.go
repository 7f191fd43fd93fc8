package pixel

import (
	"image"
	"image/color"
	"image/draw"
)

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values and is a container that is used by the image formats in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent bands.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

func makeBuffer(w, h, stride, size int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, size),
		Stride: stride,
	}
}

// MonoVerticalLSBImage is a 1-bit per pixel monochrome image.
//
// Rows are grouped in pages of 8 rows. Each byte holds one column of a page,
// with the least significant bit being the top row. This is the GDDRAM layout
// of SH110X and SSD1xxx OLED controllers.
type MonoVerticalLSBImage struct {
	Buffer
}

// PageHeight is the number of rows in a page.
const PageHeight = 8

// NewMonoVerticalLSBImage allocates a w x h image. Negative dimensions yield
// an empty image.
func NewMonoVerticalLSBImage(w, h int) *MonoVerticalLSBImage {
	if w < 0 || h < 0 {
		w, h = 0, 0
	}
	pages := (h + PageHeight - 1) / PageHeight
	return &MonoVerticalLSBImage{
		Buffer: makeBuffer(w, h, w, pages*w),
	}
}

func (p *MonoVerticalLSBImage) ColorModel() color.Model {
	return MonoModel
}

// Pages is the number of 8-row pages.
func (p *MonoVerticalLSBImage) Pages() int {
	return (p.Rect.Dy() + PageHeight - 1) / PageHeight
}

// PixOffset returns the index of the byte holding (x, y) and the bit mask of
// the pixel within that byte.
func (p *MonoVerticalLSBImage) PixOffset(x, y int) (int, byte) {
	return (y-p.Rect.Min.Y)/PageHeight*p.Stride + (x - p.Rect.Min.X), byte(1) << uint((y-p.Rect.Min.Y)&7)
}

// Bit reports if the pixel at (x, y) is on. Out of bounds pixels are off.
func (p *MonoVerticalLSBImage) Bit(x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return false
	}
	pos, bit := p.PixOffset(x, y)
	return p.Pix[pos]&bit != 0
}

// SetBit turns the pixel at (x, y) on or off. It returns false if the pixel
// is out of bounds.
func (p *MonoVerticalLSBImage) SetBit(x, y int, on bool) bool {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return false
	}
	pos, bit := p.PixOffset(x, y)
	if on {
		p.Pix[pos] |= bit
	} else {
		p.Pix[pos] &^= bit
	}
	return true
}

// ToggleBit inverts the pixel at (x, y). It returns false if the pixel is
// out of bounds.
func (p *MonoVerticalLSBImage) ToggleBit(x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return false
	}
	pos, bit := p.PixOffset(x, y)
	p.Pix[pos] ^= bit
	return true
}

func (p *MonoVerticalLSBImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return Mono{On: p.Bit(x, y)}
}

func (p *MonoVerticalLSBImage) Set(x, y int, c color.Color) {
	p.SetBit(x, y, monoModel(c).(Mono).On)
}

func (p *MonoVerticalLSBImage) Fill(c color.Color) {
	var value byte
	if monoModel(c).(Mono).On {
		value = 0xff
	}
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

// Interface checks.
var (
	_ Image = (*MonoVerticalLSBImage)(nil)
)
