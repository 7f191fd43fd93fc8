package conn

import (
	"periph.io/x/conn/v3/physic"
	"tinygo.org/x/drivers"
)

// tinygoI2C adapts a TinyGo I²C bus to a periph bus.
type tinygoI2C struct {
	bus drivers.I2C
}

func (b tinygoI2C) String() string {
	return "tinygo"
}

func (b tinygoI2C) Tx(addr uint16, w, r []byte) error {
	return b.bus.Tx(addr, w, r)
}

// SetSpeed does nothing, TinyGo buses are clocked by their Configure call.
func (b tinygoI2C) SetSpeed(physic.Frequency) error {
	return nil
}

// NewTinyGoI2C returns a transport on a TinyGo I²C bus, such as machine.I2C0.
func NewTinyGoI2C(bus drivers.I2C, addr uint16) *I2C {
	return NewI2C(tinygoI2C{bus: bus}, addr)
}

// NewTinyGoSPI returns a transport on a TinyGo SPI bus, such as machine.SPI0.
func NewTinyGoSPI(bus drivers.SPI) *SPI {
	return &SPI{
		c:     bus,
		maxTx: DefaultSPIMaxTxSize,
	}
}
