package sh110x

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// Overridden in tests.
var sleep = time.Sleep

// monoDisplay is the controller independent part of a display: the
// framebuffer, the connection and the refresh logic.
type monoDisplay struct {
	Framebuffer
	c            Conn
	name         string
	colOffset    int
	contrast     uint8
	refreshSpeed physic.Frequency
	idleSpeed    physic.Frequency
	halted       bool
}

func (d *monoDisplay) String() string {
	return fmt.Sprintf("%s OLED %dx%d", d.name, d.Width(), d.Height())
}

// init allocates the framebuffer, optionally resets the controller and sends
// the init command table. The framebuffer is cleared on the display before
// it is turned on.
func (d *monoDisplay) init(config *Config, commands []byte) (err error) {
	d.Framebuffer.init(config.Width, config.Height)
	if !d.allocated() {
		return ErrNoBuffer
	}
	d.rotation = config.Rotation % 4
	d.contrast = config.Contrast
	d.refreshSpeed = config.RefreshSpeed
	d.idleSpeed = config.IdleSpeed

	if config.Reset {
		if err = d.reset(); err != nil {
			return
		}
	}

	if err = d.commandList(commands); err != nil {
		return fmt.Errorf("sh110x: %s init failed: %w", d.name, err)
	}
	sleep(100 * time.Millisecond)

	if err = d.SetContrast(d.contrast); err != nil {
		return
	}
	d.Clear()
	if err = d.Refresh(); err != nil {
		return
	}
	return d.Show(true)
}

// reset toggles the reset pin, connections without one are left alone.
func (d *monoDisplay) reset() error {
	if d.c == nil {
		return ErrNotInitialized
	}
	for _, level := range []gpio.Level{gpio.High, gpio.Low, gpio.High} {
		if err := d.c.Reset(level); err != nil {
			if errors.Is(err, ErrResetPin) {
				return nil
			}
			return err
		}
		sleep(10 * time.Millisecond)
	}
	return nil
}

func (d *monoDisplay) Close() error {
	if d.c == nil {
		return nil
	}
	if !d.halted {
		if err := d.Show(false); err != nil {
			_ = d.c.Close()
			return err
		}
	}
	return d.c.Close()
}

func (d *monoDisplay) Show(show bool) error {
	if show {
		if err := d.command(setDisplayOn); err != nil {
			return err
		}
		d.halted = false
		return nil
	}
	if err := d.command(setDisplayOff); err != nil {
		return err
	}
	d.halted = true
	return nil
}

func (d *monoDisplay) SetContrast(level uint8) error {
	if err := d.command(setContrast, level); err != nil {
		return err
	}
	d.contrast = level
	return nil
}

func (d *monoDisplay) Dim(dim bool) error {
	level := d.contrast
	if dim {
		level = 0
	}
	return d.command(setContrast, level)
}

func (d *monoDisplay) Invert(invert bool) error {
	if invert {
		return d.command(setInvertDisplay)
	}
	return d.command(setNormalDisplay)
}
