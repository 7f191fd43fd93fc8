package sh110x

import (
	"fmt"
	"log"
	"runtime"

	"periph.io/x/conn/v3/physic"

	"github.com/BeatGlow/sh110x/pixel"
)

// yield is called between data transactions, so long refreshes do not
// starve cooperative schedulers.
var yield = runtime.Gosched

// TransferError is returned by Refresh when a bus transaction fails. The
// dirty region is kept, so the next Refresh sends it again.
type TransferError struct {
	// Page being sent.
	Page int

	// Offset in the framebuffer of the first byte that was not sent.
	Offset int

	Err error
}

func (err *TransferError) Error() string {
	return fmt.Sprintf("sh110x: refresh failed at page %d offset %d: %v", err.Page, err.Offset, err.Err)
}

func (err *TransferError) Unwrap() error {
	return err.Err
}

// Refresh sends the pages and columns of the dirty region to the display.
//
// Data goes out in transactions of at most MaxTxSize-1 bytes, one byte is
// reserved for the data/command control byte. The dirty region is reset
// only after all pages were sent.
func (d *monoDisplay) Refresh() error {
	if !d.allocated() {
		return ErrNoBuffer
	}
	if d.dirty.isEmpty() {
		return nil
	}
	if d.c == nil {
		return ErrNotInitialized
	}
	chunk := d.c.MaxTxSize() - 1
	if chunk < 1 {
		return ErrTxSize
	}

	var (
		width     = d.img.Rect.Dx()
		pix       = d.img.Pix
		firstPage = max(d.dirty.y1/pixel.PageHeight, 0)
		lastPage  = min((d.dirty.y2+pixel.PageHeight)/pixel.PageHeight, d.img.Pages())
		colStart  = clamp(d.dirty.x1, 0, width-1)
		colEnd    = clamp(d.dirty.x2, 0, width-1)
	)
	if debug {
		log.Printf("sh110x: refresh pages %d-%d columns %d-%d in %d byte chunks", firstPage, lastPage-1, colStart, colEnd, chunk)
	}

	d.setSpeed(d.refreshSpeed)
	defer d.setSpeed(d.idleSpeed)

	for page := firstPage; page < lastPage; page++ {
		var (
			off = page*width + colStart
			end = page*width + colEnd + 1
		)
		sel := pageSelect(page, colStart+d.colOffset)
		if err := d.c.Command(sel[0], sel[1:]...); err != nil {
			return &TransferError{Page: page, Offset: off, Err: err}
		}
		for off < end {
			n := min(end-off, chunk)
			if err := d.c.Data(pix[off : off+n]...); err != nil {
				return &TransferError{Page: page, Offset: off, Err: err}
			}
			off += n
			yield()
		}
	}

	d.dirty.reset()
	return nil
}

// setSpeed changes the bus clock on a best effort basis, not all buses can
// change their clock.
func (d *monoDisplay) setSpeed(f physic.Frequency) {
	if f <= 0 {
		return
	}
	if err := d.c.SetSpeed(f); err != nil && debug {
		log.Printf("sh110x: %s can't change speed to %s: %v", d.c, f, err)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
