package sh110x

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"periph.io/x/conn/v3/gpio"
)

func TestSH1106(t *testing.T) {
	c := newTestConn(32)
	d, err := SH1106(c, &Config{Reset: true})
	if err != nil {
		t.Fatal(err)
	}
	if v := d.Bounds(); v.Dx() != 128 || v.Dy() != 64 {
		t.Errorf("expected 128x64, got %s", v)
	}
	if v, want := c.resets, []gpio.Level{gpio.High, gpio.Low, gpio.High}; len(v) != len(want) || v[0] != want[0] || v[1] != want[1] || v[2] != want[2] {
		t.Errorf("expected reset sequence %v, got %v", want, v)
	}

	if len(c.ops) == 0 || !c.ops[0].command || !bytes.Equal(c.ops[0].p, sh1106InitCommands) {
		t.Fatalf("expected init table as first transaction, got %v", c.ops)
	}
	if v := c.ops[1]; !v.command || !bytes.Equal(v.p, []byte{setContrast, sh1106DefaultContrast}) {
		t.Errorf("expected contrast command, got % x", v.p)
	}
	if v := c.ops[len(c.ops)-1]; !v.command || !bytes.Equal(v.p, []byte{setDisplayOn}) {
		t.Errorf("expected display on as last transaction, got % x", v.p)
	}

	// The cleared buffer is sent with the column offset applied.
	var pages int
	for _, op := range c.ops {
		if op.command && len(op.p) == 3 && op.p[0]&0xF0 == setPageAddr {
			if op.p[1] != 0x10 || op.p[2] != 0x02 {
				t.Errorf("expected column 2, got % x", op.p)
			}
			pages++
		}
	}
	if pages != 8 {
		t.Errorf("expected 8 page selects, got %d", pages)
	}
	var sent int
	for _, p := range c.data() {
		if len(p) > 31 {
			t.Errorf("data transaction of %d bytes exceeds 31", len(p))
		}
		for _, b := range p {
			if b != 0 {
				t.Fatal("expected cleared display data")
			}
		}
		sent += len(p)
	}
	if sent != 128*8 {
		t.Errorf("expected %d data bytes, got %d", 128*8, sent)
	}
	if v := c.speeds; len(v) != 2 || v[0] != DefaultRefreshSpeed || v[1] != DefaultIdleSpeed {
		t.Errorf("expected speeds [%s %s], got %v", DefaultRefreshSpeed, DefaultIdleSpeed, v)
	}
	if v := d.Dirty(); !v.Empty() {
		t.Errorf("expected empty dirty region after init, got %s", v)
	}
	if v := d.(*sh1106).String(); v != "SH1106 OLED 128x64" {
		t.Errorf("expected name, got %q", v)
	}
}

func TestSH1106UnsupportedSize(t *testing.T) {
	c := newTestConn(32)
	if _, err := SH1106(c, &Config{Width: 128, Height: 32}); err == nil {
		t.Fatal("expected 128x32 to be unsupported")
	}
	if len(c.ops) != 0 {
		t.Errorf("expected no transactions, got %d", len(c.ops))
	}
}

func TestSH1107(t *testing.T) {
	tests := []struct {
		width, height  int
		multiplexRatio byte
		displayOffset  byte
	}{
		{64, 128, 0x3F, 0x60},
		{128, 128, 0x7F, 0x00},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%dx%d", test.width, test.height), func(it *testing.T) {
			c := newTestConn(32)
			d, err := SH1107(c, &Config{Width: test.width, Height: test.height})
			if err != nil {
				it.Fatal(err)
			}
			if v := d.Bounds(); v.Dx() != test.width || v.Dy() != test.height {
				it.Errorf("expected %dx%d, got %s", test.width, test.height, v)
			}
			if len(c.resets) != 0 {
				it.Errorf("expected no reset, got %v", c.resets)
			}

			table := c.ops[0].p
			if table[0] != setDisplayOff {
				it.Errorf("expected init table to start with display off, got %#02x", table[0])
			}
			if i := bytes.IndexByte(table, setMultiplexRatio); i < 0 || table[i+1] != test.multiplexRatio {
				it.Errorf("expected multiplex ratio %#02x in % x", test.multiplexRatio, table)
			}
			if i := bytes.IndexByte(table, setDisplayOffset); i < 0 || table[i+1] != test.displayOffset {
				it.Errorf("expected display offset %#02x in % x", test.displayOffset, table)
			}
			if v := c.ops[1].p; !bytes.Equal(v, []byte{setContrast, sh1107DefaultContrast}) {
				it.Errorf("expected contrast %#02x, got % x", sh1107DefaultContrast, v)
			}

			pages := c.pageSelects()
			if len(pages) != test.height/8 {
				it.Errorf("expected %d page selects, got %d", test.height/8, len(pages))
			}
			for _, op := range c.ops {
				if op.command && len(op.p) == 3 && op.p[0]&0xF0 == setPageAddr && (op.p[1] != 0x10 || op.p[2] != 0x00) {
					it.Errorf("expected column 0, got % x", op.p)
				}
			}
		})
	}
}

func TestSH1107UnsupportedSize(t *testing.T) {
	if _, err := SH1107(newTestConn(32), &Config{Width: 128, Height: 64}); err == nil {
		t.Fatal("expected 128x64 to be unsupported")
	}
}

func TestInitErrors(t *testing.T) {
	if _, err := SH1107(nil, nil); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected %v, got %v", ErrNotInitialized, err)
	}

	c := newTestConn(32)
	c.noReset = true
	if _, err := SH1106(c, &Config{Reset: true}); err != nil {
		t.Errorf("expected missing reset pin to be skipped, got %v", err)
	}

	c = newTestConn(32)
	c.failData = 1
	_, err := SH1106(c, nil)
	var terr *TransferError
	if !errors.As(err, &terr) {
		t.Errorf("expected a *TransferError, got %v", err)
	}
}

func TestDisplayControls(t *testing.T) {
	c := newTestConn(32)
	d, err := SH1107(c, &Config{Contrast: 0x40, Rotation: Rotate90})
	if err != nil {
		t.Fatal(err)
	}
	if v := d.Rotation(); v != Rotate90 {
		t.Errorf("expected rotation %s, got %s", Rotate90, v)
	}
	if v := d.Bounds(); v.Dx() != 128 || v.Dy() != 64 {
		t.Errorf("expected logical 128x64, got %s", v)
	}

	tests := []struct {
		name string
		fn   func() error
		want []byte
	}{
		{"contrast", func() error { return d.SetContrast(0x10) }, []byte{setContrast, 0x10}},
		{"dim", func() error { return d.Dim(true) }, []byte{setContrast, 0x00}},
		{"undim", func() error { return d.Dim(false) }, []byte{setContrast, 0x10}},
		{"invert", func() error { return d.Invert(true) }, []byte{setInvertDisplay}},
		{"normal", func() error { return d.Invert(false) }, []byte{setNormalDisplay}},
		{"hide", func() error { return d.Show(false) }, []byte{setDisplayOff}},
		{"show", func() error { return d.Show(true) }, []byte{setDisplayOn}},
	}
	for _, test := range tests {
		c.clear()
		if err := test.fn(); err != nil {
			t.Fatalf("%s: %v", test.name, err)
		}
		if v := c.commands(); !bytes.Equal(v, test.want) {
			t.Errorf("%s: expected % x, got % x", test.name, test.want, v)
		}
	}

	c.clear()
	if err = d.Close(); err != nil {
		t.Fatal(err)
	}
	if v := c.commands(); !bytes.Equal(v, []byte{setDisplayOff}) {
		t.Errorf("expected display off on close, got % x", v)
	}
	if !c.closed {
		t.Error("expected connection to be closed")
	}
}
