package sh110x

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// TinyGoDisplayer adapts a Display to the TinyGo drivers.Displayer
// interface, so it can be used with tinyfont, tinydraw and friends.
type TinyGoDisplayer struct {
	d Display
}

// NewTinyGoDisplayer wraps d.
func NewTinyGoDisplayer(d Display) *TinyGoDisplayer {
	return &TinyGoDisplayer{d: d}
}

// Size is the logical display size.
func (d *TinyGoDisplayer) Size() (x, y int16) {
	size := d.d.Bounds().Size()
	return int16(size.X), int16(size.Y)
}

// SetPixel turns the pixel on for colors at or above half intensity.
func (d *TinyGoDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.d.Set(int(x), int(y), c)
}

// Display refreshes the display.
func (d *TinyGoDisplayer) Display() error {
	return d.d.Refresh()
}

// Rotation returns the current rotation.
func (d *TinyGoDisplayer) Rotation() drivers.Rotation {
	return drivers.Rotation(d.d.Rotation())
}

// SetRotation changes the pixel rotation.
func (d *TinyGoDisplayer) SetRotation(rotation drivers.Rotation) error {
	return d.d.SetRotation(Rotation(rotation % 4))
}

var _ drivers.Displayer = (*TinyGoDisplayer)(nil)
