package sh110x

import (
	"errors"
	"image"
	"image/draw"
	"os"

	"periph.io/x/conn/v3/physic"
)

var debug bool

func init() {
	debug = os.Getenv("DISPLAY_DEBUG") != ""
}

// Errors
var (
	ErrNoBuffer       = errors.New("sh110x: framebuffer is not allocated")
	ErrNotInitialized = errors.New("sh110x: display connection is not initialized")
	ErrTxSize         = errors.New("sh110x: bus transaction size is too small")
)

// Rotation defines pixel rotation.
type Rotation uint8

// Supported rotations.
const (
	NoRotation Rotation = iota
	Rotate90            // Rotate 90° clock wise
	Rotate180           // Rotate 180°
	Rotate270           // Rotate 270° clock wise
)

func (r Rotation) String() string {
	switch r % 4 {
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	default:
		return "0°"
	}
}

// Mode is a pixel drawing mode.
type Mode uint8

// Pixel modes.
const (
	ModeClear  Mode = iota // Turn the pixel off
	ModeSet                // Turn the pixel on
	ModeInvert             // Toggle the pixel
)

func (m Mode) String() string {
	switch m {
	case ModeClear:
		return "clear"
	case ModeSet:
		return "set"
	case ModeInvert:
		return "invert"
	default:
		return "unknown"
	}
}

// Display is a monochrome OLED display.
//
// At, Set and Bounds operate in logical coordinates, which follow the
// current rotation. Out of bounds coordinates are silently ignored.
type Display interface {
	draw.Image

	// Close turns the display off and closes the connection.
	Close() error

	// Clear the display buffer. The whole display is refreshed next time.
	Clear()

	// Fill the display buffer. The whole display is refreshed next time.
	Fill(Mode)

	// SetPixel changes the pixel at (x, y).
	SetPixel(x, y int, mode Mode)

	// Pixel reports if the pixel at (x, y) is on.
	Pixel(x, y int) bool

	// Buffer is the raw page organised framebuffer.
	Buffer() []byte

	// Dirty is the region, in physical coordinates, that is pending refresh.
	Dirty() image.Rectangle

	// Show toggles the display on or off.
	Show(bool) error

	// SetContrast adjusts the contrast level.
	SetContrast(level uint8) error

	// Dim lowers the contrast to its minimum, or restores it.
	Dim(bool) error

	// Invert toggles inverted (black on white) display.
	Invert(bool) error

	// Rotation is the current pixel rotation.
	Rotation() Rotation

	// SetRotation adjusts the pixel rotation.
	SetRotation(Rotation) error

	// Refresh sends the dirty region of the buffer to the display.
	Refresh() error
}

// Config is the display configuration.
type Config struct {
	// Width of the display in pixels.
	Width int

	// Height of the display in pixels.
	Height int

	// Rotation of the display.
	Rotation Rotation

	// Reset performs a hardware reset before initialization, if the
	// connection has a reset pin. Displays sharing a reset pin should only
	// reset on the first one being initialized.
	Reset bool

	// Contrast level after initialization, zero uses the controller default.
	Contrast uint8

	// RefreshSpeed is the bus clock during Refresh.
	RefreshSpeed physic.Frequency

	// IdleSpeed is the bus clock restored after Refresh, so other devices on
	// a shared bus are not driven faster than they support.
	IdleSpeed physic.Frequency
}

// Default bus clock rates for Refresh.
const (
	DefaultRefreshSpeed = 400 * physic.KiloHertz
	DefaultIdleSpeed    = 100 * physic.KiloHertz
)

func (config *Config) applyDefaults(width, height int, contrast uint8) {
	if config.Width == 0 {
		config.Width = width
	}
	if config.Height == 0 {
		config.Height = height
	}
	if config.Contrast == 0 {
		config.Contrast = contrast
	}
	if config.RefreshSpeed == 0 {
		config.RefreshSpeed = DefaultRefreshSpeed
	}
	if config.IdleSpeed == 0 {
		config.IdleSpeed = DefaultIdleSpeed
	}
}
