package sh110x

const (
	setLowColumn          = 0x00
	setHighColumn         = 0x10
	setMemoryMode         = 0x20
	setStartLine          = 0x40
	setContrast           = 0x81
	setDCDC               = 0xAD
	setSegmentRemap       = 0xA0
	setDisplayAllOnResume = 0xA4
	setNormalDisplay      = 0xA6
	setInvertDisplay      = 0xA7
	setMultiplexRatio     = 0xA8
	setDisplayOff         = 0xAE
	setDisplayOn          = 0xAF
	setPageAddr           = 0xB0
	setComScanInc         = 0xC0
	setComScanDec         = 0xC8
	setDisplayOffset      = 0xD3
	setDisplayClockDiv    = 0xD5
	setPrecharge          = 0xD9
	setComPins            = 0xDA
	setVComDetect         = 0xDB
	setDisplayStartLine   = 0xDC // SH1107 only
	setPumpVoltage9V      = 0x33 // SH1106 only
)

// pageSelect returns the commands addressing column col of page.
func pageSelect(page, col int) []byte {
	return []byte{
		setPageAddr | byte(page&0x0f),
		setHighColumn | byte(col>>4)&0x0f,
		setLowColumn | byte(col&0x0f),
	}
}

func (d *monoDisplay) command(command byte, data ...byte) error {
	if d.c == nil {
		return ErrNotInitialized
	}
	return d.c.Command(command, data...)
}

// commandList sends a command table, split in as many transactions as the
// connection needs. The controller parses the command stream across
// transactions, so a split may fall between a command and its arguments.
func (d *monoDisplay) commandList(commands []byte) error {
	if d.c == nil {
		return ErrNotInitialized
	}
	size := d.c.MaxTxSize() - 1
	if size < 1 {
		return ErrTxSize
	}
	for len(commands) > 0 {
		n := min(len(commands), size)
		if err := d.c.Command(commands[0], commands[1:n]...); err != nil {
			return err
		}
		commands = commands[n:]
	}
	return nil
}
