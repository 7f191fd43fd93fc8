package sh110x

import (
	"bytes"
	"errors"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

func init() {
	sleep = func(time.Duration) {}
}

var errTestBus = errors.New("test: bus NACK")

type testOp struct {
	command bool
	p       []byte
}

// testConn records every transaction.
type testConn struct {
	ops      []testOp
	maxTx    int
	speeds   []physic.Frequency
	resets   []gpio.Level
	noReset  bool
	closed   bool
	dataTx   int
	failData int // fail the n-th data transaction, counting from 1

	commandTx   int
	failCommand int // fail the n-th command transaction, counting from 1
}

func newTestConn(maxTx int) *testConn {
	return &testConn{maxTx: maxTx}
}

func (c *testConn) String() string { return "test" }

func (c *testConn) Close() error {
	c.closed = true
	return nil
}

func (c *testConn) Reset(level gpio.Level) error {
	if c.noReset {
		return ErrResetPin
	}
	c.resets = append(c.resets, level)
	return nil
}

func (c *testConn) Command(cmd byte, args ...byte) error {
	c.commandTx++
	if c.failCommand > 0 && c.commandTx == c.failCommand {
		return errTestBus
	}
	c.ops = append(c.ops, testOp{command: true, p: append([]byte{cmd}, args...)})
	return nil
}

func (c *testConn) Data(data ...byte) error {
	c.dataTx++
	if c.failData > 0 && c.dataTx == c.failData {
		return errTestBus
	}
	c.ops = append(c.ops, testOp{p: append([]byte(nil), data...)})
	return nil
}

func (c *testConn) MaxTxSize() int { return c.maxTx }

func (c *testConn) SetSpeed(f physic.Frequency) error {
	c.speeds = append(c.speeds, f)
	return nil
}

func (c *testConn) clear() {
	c.ops = c.ops[:0]
	c.speeds = c.speeds[:0]
	c.dataTx = 0
	c.commandTx = 0
}

// pageSelects returns the page numbers of all page select commands.
func (c *testConn) pageSelects() (pages []int) {
	for _, op := range c.ops {
		if op.command && len(op.p) == 3 && op.p[0]&0xF0 == setPageAddr {
			pages = append(pages, int(op.p[0]&0x0F))
		}
	}
	return
}

// data returns all data transactions.
func (c *testConn) data() (out [][]byte) {
	for _, op := range c.ops {
		if !op.command {
			out = append(out, op.p)
		}
	}
	return
}

// commands returns all command bytes concatenated.
func (c *testConn) commands() []byte {
	var out bytes.Buffer
	for _, op := range c.ops {
		if op.command {
			out.Write(op.p)
		}
	}
	return out.Bytes()
}

// newTestDisplay returns a display with a clean dirty region.
func newTestDisplay(w, h int, c *testConn) *monoDisplay {
	d := &monoDisplay{
		c:    c,
		name: "test",
	}
	d.Framebuffer.init(w, h)
	d.dirty.reset()
	return d
}
