package conn

import (
	"bytes"
	"errors"
	"testing"

	"periph.io/x/conn/v3/i2c/i2ctest"
)

func TestI2CWrite(t *testing.T) {
	r := &i2ctest.Record{}
	c := NewI2C(r, 0x3c)

	if n, err := c.Write([]byte{0xae, 0xaf}); err != nil {
		t.Fatal(err)
	} else if n != 2 {
		t.Errorf("expected 2 bytes written, got %d", n)
	}
	if err := c.WritePrefixed([]byte{0x40}, []byte{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	// Scratch buffer reuse must not leak the previous transaction.
	if err := c.WritePrefixed([]byte{0x40}, []byte{4}); err != nil {
		t.Fatal(err)
	}

	want := []i2ctest.IO{
		{Addr: 0x3c, W: []byte{0xae, 0xaf}},
		{Addr: 0x3c, W: []byte{0x40, 1, 2, 3}},
		{Addr: 0x3c, W: []byte{0x40, 4}},
	}
	if len(r.Ops) != len(want) {
		t.Fatalf("expected %d transactions, got %d", len(want), len(r.Ops))
	}
	for i, op := range r.Ops {
		if op.Addr != want[i].Addr {
			t.Errorf("transaction %d: expected address %#02x, got %#02x", i, want[i].Addr, op.Addr)
		}
		if !bytes.Equal(op.W, want[i].W) {
			t.Errorf("transaction %d: expected % x, got % x", i, want[i].W, op.W)
		}
	}
}

func TestI2CMaxTxSize(t *testing.T) {
	c := NewI2C(&i2ctest.Record{}, 0x3d)
	if v := c.MaxTxSize(); v != DefaultI2CMaxTxSize {
		t.Errorf("expected default max tx size %d, got %d", DefaultI2CMaxTxSize, v)
	}
	c.SetMaxTxSize(256)
	if v := c.MaxTxSize(); v != 256 {
		t.Errorf("expected max tx size 256, got %d", v)
	}
	c.SetMaxTxSize(0)
	if v := c.MaxTxSize(); v != 256 {
		t.Errorf("expected zero size to be ignored, got %d", v)
	}
	if v := c.Addr(); v != 0x3d {
		t.Errorf("expected address 0x3d, got %#02x", v)
	}
}

type testTinyGoI2C struct {
	addr []uint16
	w    [][]byte
	err  error
}

func (b *testTinyGoI2C) Tx(addr uint16, w, r []byte) error {
	if b.err != nil {
		return b.err
	}
	b.addr = append(b.addr, addr)
	b.w = append(b.w, append([]byte(nil), w...))
	return nil
}

func (b *testTinyGoI2C) ReadRegister(addr uint8, r uint8, buf []byte) error {
	return b.Tx(uint16(addr), []byte{r}, buf)
}

func (b *testTinyGoI2C) WriteRegister(addr uint8, r uint8, buf []byte) error {
	return b.Tx(uint16(addr), append([]byte{r}, buf...), nil)
}

func TestTinyGoI2C(t *testing.T) {
	bus := new(testTinyGoI2C)
	c := NewTinyGoI2C(bus, 0x3c)

	if err := c.SetSpeed(0); err != nil {
		t.Fatal(err)
	}
	if err := c.WritePrefixed([]byte{0x00}, []byte{0xb0, 0x10, 0x00}); err != nil {
		t.Fatal(err)
	}
	if len(bus.w) != 1 || bus.addr[0] != 0x3c || !bytes.Equal(bus.w[0], []byte{0x00, 0xb0, 0x10, 0x00}) {
		t.Errorf("unexpected transactions %v to %v", bus.w, bus.addr)
	}
	if err := c.Close(); err != nil {
		t.Errorf("expected close to be a no-op, got %v", err)
	}

	bus.err = errors.New("nack")
	if _, err := c.Write([]byte{0}); !errors.Is(err, bus.err) {
		t.Errorf("expected %v, got %v", bus.err, err)
	}
}
