package sh110x

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"

	"github.com/BeatGlow/sh110x/conn"
)

// Conn errors.
var (
	ErrResetPin = errors.New("sh110x: reset GPIO pin is invalid")
	ErrDCPin    = errors.New("sh110x: data/command (DC) GPIO pin is invalid")
)

// Conn is the connection interface for communicating with hardware.
type Conn interface {
	String() string

	// Close the connection.
	Close() error

	// Reset sets the reset pin to the provided level, it returns ErrResetPin
	// if the connection has no reset pin.
	Reset(gpio.Level) error

	// Command sends a command byte with optional arguments in one
	// transaction.
	Command(byte, ...byte) error

	// Data sends data bytes in one transaction.
	Data(...byte) error

	// MaxTxSize is the largest transaction, including the one byte the
	// connection may need to tell commands and data apart.
	MaxTxSize() int

	// SetSpeed changes the bus clock, if the bus supports it.
	SetSpeed(physic.Frequency) error
}

// transport is satisfied by *conn.I2C and *conn.SPI.
type transport interface {
	String() string
	Close() error
	Write([]byte) (int, error)
	WritePrefixed(prefix, p []byte) error
	MaxTxSize() int
	SetSpeed(physic.Frequency) error
}

// Control bytes leading every I²C transaction.
const (
	i2cCommand = 0x00 // stream of command bytes
	i2cData    = 0x40 // stream of data bytes
)

var (
	i2cCommandPrefix = []byte{i2cCommand}
	i2cDataPrefix    = []byte{i2cData}
)

// I2CConfig describes the I²C bus configuration.
type I2CConfig struct {
	// Device is the I²C device, use -1 to use the first available device.
	Device int

	// Addr is the I²C address.
	Addr uint8

	// MaxTxSize is the largest I²C transaction, zero uses conn.DefaultI2CMaxTxSize.
	MaxTxSize int

	// Reset pin.
	Reset gpio.PinOut
}

var DefaultI2CConfig = I2CConfig{
	Device:    -1,
	Addr:      0x3c,
	MaxTxSize: conn.DefaultI2CMaxTxSize,
}

type i2cConn struct {
	bus   transport
	reset gpio.PinOut
	cmd   []byte
}

// OpenI2C opens an I²C connection.
func OpenI2C(config *I2CConfig) (Conn, error) {
	if config == nil {
		config = new(I2CConfig)
		*config = DefaultI2CConfig
	}
	if config.Addr == 0 {
		config.Addr = DefaultI2CConfig.Addr
	}

	c, err := conn.OpenI2C(config.Device, uint16(config.Addr))
	if err != nil {
		return nil, err
	}
	c.SetMaxTxSize(config.MaxTxSize)

	return NewI2C(c, config.Reset), nil
}

// NewI2C returns a connection on an I²C transport. The reset pin is optional.
func NewI2C(bus *conn.I2C, reset gpio.PinOut) Conn {
	return newI2C(bus, reset)
}

func newI2C(bus transport, reset gpio.PinOut) *i2cConn {
	return &i2cConn{
		bus:   bus,
		reset: reset,
	}
}

func (c *i2cConn) String() string {
	return c.bus.String()
}

func (c *i2cConn) Close() error {
	return c.bus.Close()
}

func (c *i2cConn) Command(cmnd byte, args ...byte) error {
	c.cmd = append(append(c.cmd[:0], cmnd), args...)
	return c.bus.WritePrefixed(i2cCommandPrefix, c.cmd)
}

func (c *i2cConn) Data(data ...byte) error {
	return c.bus.WritePrefixed(i2cDataPrefix, data)
}

func (c *i2cConn) Reset(level gpio.Level) error {
	if c.reset == nil || c.reset == gpio.INVALID {
		return ErrResetPin
	}
	return c.reset.Out(level)
}

func (c *i2cConn) MaxTxSize() int {
	return c.bus.MaxTxSize()
}

func (c *i2cConn) SetSpeed(f physic.Frequency) error {
	return c.bus.SetSpeed(f)
}

// SPIConfig describes the SPI bus configuration.
type SPIConfig struct {
	// Bus number, use -1 to use the first available bus.
	Bus int

	// Device is the chip select number on the bus.
	Device int

	// Speed is the SPI clock.
	Speed physic.Frequency

	// DataLow inverts the data/command pin: low for data, high for commands.
	DataLow bool

	// Reset pin, optional.
	Reset gpio.PinOut

	// DC is the data/command pin.
	DC gpio.PinOut

	// CS is a chip select pin driven by the driver, optional.
	CS gpio.PinOut
}

// DefaultSPIConfig are the default configuration values.
var DefaultSPIConfig = SPIConfig{
	Bus:    0,
	Device: 0,
	Speed:  8 * physic.MegaHertz,
}

// Default pins, looked up when the configuration has none.
const (
	DefaultResetPin = "GPIO25"
	DefaultDCPin    = "GPIO24"
)

// ValidSPISpeeds are common valid SPI bus speeds.
var ValidSPISpeeds = []physic.Frequency{
	500 * physic.KiloHertz,
	1 * physic.MegaHertz,
	2 * physic.MegaHertz,
	4 * physic.MegaHertz,
	8 * physic.MegaHertz,
	10 * physic.MegaHertz,
}

type spiConn struct {
	bus     transport
	reset   gpio.PinOut
	dc      gpio.PinOut
	dcLevel gpio.Level
	dcValid bool
	cs      gpio.PinOut
	dataLow bool
	cmd     []byte
}

// OpenSPI opens a 4-wire SPI connection.
func OpenSPI(config *SPIConfig) (Conn, error) {
	if config == nil {
		config = new(SPIConfig)
		*config = DefaultSPIConfig
		config.Reset = gpioreg.ByName(DefaultResetPin)
		config.DC = gpioreg.ByName(DefaultDCPin)
	}
	if config.Speed == 0 {
		config.Speed = DefaultSPIConfig.Speed
	}

	var valid bool
	for _, speed := range ValidSPISpeeds {
		if valid = speed == config.Speed; valid {
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("sh110x: invalid SPI speed %s", config.Speed)
	}
	if config.DC == nil || config.DC == gpio.INVALID {
		return nil, ErrDCPin
	}

	c, err := conn.OpenSPI(config.Bus, config.Device, config.Speed)
	if err != nil {
		return nil, err
	}
	return NewSPI(c, config)
}

// NewSPI returns a connection on an SPI transport. Only the pins and DataLow
// of the configuration are used.
func NewSPI(bus *conn.SPI, config *SPIConfig) (Conn, error) {
	return newSPI(bus, config)
}

func newSPI(bus transport, config *SPIConfig) (*spiConn, error) {
	if config.DC == nil || config.DC == gpio.INVALID {
		return nil, ErrDCPin
	}
	return &spiConn{
		bus:     bus,
		reset:   config.Reset,
		dc:      config.DC,
		cs:      config.CS,
		dataLow: config.DataLow,
	}, nil
}

func (c *spiConn) String() string {
	return c.bus.String()
}

func (c *spiConn) Close() error {
	return c.bus.Close()
}

func (c *spiConn) Reset(level gpio.Level) error {
	if c.reset == nil || c.reset == gpio.INVALID {
		return ErrResetPin
	}
	return c.reset.Out(level)
}

func (c *spiConn) MaxTxSize() int {
	return c.bus.MaxTxSize()
}

func (c *spiConn) SetSpeed(f physic.Frequency) error {
	return c.bus.SetSpeed(f)
}

func (c *spiConn) updateDC(level gpio.Level) error {
	if !c.dcValid || c.dcLevel != level {
		if err := c.dc.Out(level); err != nil {
			return err
		}
		c.dcLevel = level
		c.dcValid = true
	}
	return nil
}

func (c *spiConn) updateCS(level gpio.Level) error {
	if c.cs == nil || c.cs == gpio.INVALID {
		return nil
	}
	return c.cs.Out(level)
}

func (c *spiConn) Command(cmnd byte, args ...byte) (err error) {
	c.cmd = append(append(c.cmd[:0], cmnd), args...)
	return c.send(c.cmd, gpio.Level(c.dataLow))
}

func (c *spiConn) Data(data ...byte) (err error) {
	if len(data) == 0 {
		return
	}
	return c.send(data, gpio.Level(!c.dataLow))
}

func (c *spiConn) send(p []byte, dc gpio.Level) (err error) {
	if err = c.updateDC(dc); err != nil {
		return
	}
	if err = c.updateCS(gpio.Low); err != nil {
		return
	}
	if _, err = c.bus.Write(p); err != nil {
		_ = c.updateCS(gpio.High)
		return
	}
	return c.updateCS(gpio.High)
}
