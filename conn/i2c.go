// Package conn implements the raw bus transports used by the display drivers.
//
// A transport performs whole write transactions and reports the largest
// transaction it can carry. Framing of command and data bytes is left to the
// caller.
package conn

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
)

// DefaultI2CMaxTxSize is the largest I²C write transaction, including the
// control byte. Most microcontroller I²C drivers buffer 32 bytes.
const DefaultI2CMaxTxSize = 32

var debug = os.Getenv("DISPLAY_DEBUG") != ""

// I2C is a write-only I²C transport to a single device address.
type I2C struct {
	bus     i2c.Bus
	dev     *i2c.Dev
	maxTx   int
	scratch []byte
}

// OpenI2C opens the numbered I²C bus, use -1 to open the first available bus.
func OpenI2C(device int, addr uint16) (*I2C, error) {
	var (
		bus i2c.BusCloser
		err error
	)
	if device < 0 {
		bus, err = i2creg.Open("")
	} else {
		bus, err = i2creg.Open(strconv.FormatInt(int64(device), 10))
	}
	if err != nil {
		return nil, err
	}
	return NewI2C(bus, addr), nil
}

// NewI2C returns a transport on an already opened bus.
func NewI2C(bus i2c.Bus, addr uint16) *I2C {
	return &I2C{
		bus:   bus,
		dev:   &i2c.Dev{Bus: bus, Addr: addr},
		maxTx: DefaultI2CMaxTxSize,
	}
}

func (c *I2C) String() string {
	return fmt.Sprintf("I²C bus %s address %#02x", c.bus, c.dev.Addr)
}

// Close the underlying bus, if it can be closed.
func (c *I2C) Close() error {
	if closer, ok := c.bus.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Addr is the device address.
func (c *I2C) Addr() uint16 {
	return c.dev.Addr
}

// MaxTxSize implements conn.Limits. Buses that report their own limit can
// only lower the configured size.
func (c *I2C) MaxTxSize() int {
	if limits, ok := c.bus.(conn.Limits); ok {
		if n := limits.MaxTxSize(); n > 0 && n < c.maxTx {
			return n
		}
	}
	return c.maxTx
}

// SetMaxTxSize changes the configured maximum transaction size.
func (c *I2C) SetMaxTxSize(n int) {
	if n > 0 {
		c.maxTx = n
	}
}

// SetSpeed changes the bus clock.
func (c *I2C) SetSpeed(f physic.Frequency) error {
	return c.bus.SetSpeed(f)
}

func (c *I2C) Write(p []byte) (int, error) {
	if err := c.dev.Tx(p, nil); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WritePrefixed writes prefix followed by p in a single transaction.
func (c *I2C) WritePrefixed(prefix, p []byte) error {
	c.scratch = append(append(c.scratch[:0], prefix...), p...)
	if debug {
		log.Printf("conn: I²C %#02x write %d+%d bytes", c.dev.Addr, len(prefix), len(p))
	}
	return c.dev.Tx(c.scratch, nil)
}

var _ conn.Limits = (*I2C)(nil)
