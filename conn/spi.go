package conn

import (
	"fmt"
	"io"
	"log"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

// DefaultSPIMaxTxSize is the largest SPI write, it matches the default
// spidev buffer size.
const DefaultSPIMaxTxSize = 4096

type txer interface {
	Tx(w, r []byte) error
}

// SPI is a write-only SPI transport.
type SPI struct {
	port    spi.Port
	c       txer
	maxTx   int
	scratch []byte
}

// OpenSPI opens the numbered SPI bus and device (chip select), use a
// negative bus to open the first available port.
func OpenSPI(bus, device int, f physic.Frequency) (*SPI, error) {
	var name string
	if bus >= 0 {
		name = fmt.Sprintf("SPI%d.%d", bus, device)
	}
	port, err := spireg.Open(name)
	if err != nil {
		return nil, err
	}
	c, err := NewSPI(port, f)
	if err != nil {
		_ = port.Close()
		return nil, err
	}
	return c, nil
}

// NewSPI connects to an SPI port in mode 0 with 8 bits per word.
func NewSPI(port spi.Port, f physic.Frequency) (*SPI, error) {
	c, err := port.Connect(f, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}
	s := &SPI{
		port:  port,
		c:     c,
		maxTx: DefaultSPIMaxTxSize,
	}
	if limits, ok := c.(conn.Limits); ok && limits.MaxTxSize() > 0 {
		s.maxTx = limits.MaxTxSize()
	}
	return s, nil
}

func (c *SPI) String() string {
	if s, ok := c.c.(fmt.Stringer); ok {
		return fmt.Sprintf("SPI %s", s)
	}
	return "SPI"
}

// Close the underlying port, if it can be closed.
func (c *SPI) Close() error {
	if closer, ok := c.port.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (c *SPI) MaxTxSize() int {
	return c.maxTx
}

// SetMaxTxSize changes the maximum transaction size.
func (c *SPI) SetMaxTxSize(n int) {
	if n > 0 {
		c.maxTx = n
	}
}

// SetSpeed does nothing, the SPI clock is fixed when the port is connected.
func (c *SPI) SetSpeed(physic.Frequency) error {
	return nil
}

func (c *SPI) Write(p []byte) (int, error) {
	if err := c.c.Tx(p, nil); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WritePrefixed writes prefix followed by p in a single transaction.
func (c *SPI) WritePrefixed(prefix, p []byte) error {
	if len(prefix) == 0 {
		_, err := c.Write(p)
		return err
	}
	c.scratch = append(append(c.scratch[:0], prefix...), p...)
	if debug {
		log.Printf("conn: SPI write %d+%d bytes", len(prefix), len(p))
	}
	return c.c.Tx(c.scratch, nil)
}

var _ conn.Limits = (*SPI)(nil)
