package conn

import (
	"bytes"
	"errors"
	"testing"
)

type testSPI struct {
	w   [][]byte
	err error
}

func (b *testSPI) Tx(w, r []byte) error {
	if b.err != nil {
		return b.err
	}
	b.w = append(b.w, append([]byte(nil), w...))
	return nil
}

func (b *testSPI) Transfer(v byte) (byte, error) {
	return 0, b.Tx([]byte{v}, nil)
}

func TestSPIWrite(t *testing.T) {
	bus := new(testSPI)
	c := NewTinyGoSPI(bus)

	if v := c.MaxTxSize(); v != DefaultSPIMaxTxSize {
		t.Errorf("expected default max tx size %d, got %d", DefaultSPIMaxTxSize, v)
	}
	if _, err := c.Write([]byte{1, 2}); err != nil {
		t.Fatal(err)
	}
	if err := c.WritePrefixed(nil, []byte{3}); err != nil {
		t.Fatal(err)
	}
	if err := c.WritePrefixed([]byte{0x40}, []byte{4, 5}); err != nil {
		t.Fatal(err)
	}

	want := [][]byte{{1, 2}, {3}, {0x40, 4, 5}}
	if len(bus.w) != len(want) {
		t.Fatalf("expected %d transactions, got %d", len(want), len(bus.w))
	}
	for i := range want {
		if !bytes.Equal(bus.w[i], want[i]) {
			t.Errorf("transaction %d: expected % x, got % x", i, want[i], bus.w[i])
		}
	}

	if err := c.SetSpeed(0); err != nil {
		t.Errorf("expected SetSpeed to be a no-op, got %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("expected Close without a port to be a no-op, got %v", err)
	}
}

func TestSPIWriteError(t *testing.T) {
	bus := &testSPI{err: errors.New("bus busy")}
	c := NewTinyGoSPI(bus)
	if n, err := c.Write([]byte{1}); !errors.Is(err, bus.err) || n != 0 {
		t.Errorf("expected 0, %v; got %d, %v", bus.err, n, err)
	}
}
