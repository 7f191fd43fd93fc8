package sh110x

import "fmt"

const (
	sh1106DefaultWidth    = 128
	sh1106DefaultHeight   = 64
	sh1106DefaultContrast = 0x7F

	// The SH1106 has 132 columns of RAM, 128 wide panels are centered.
	sh1106ColumnOffset = 2
)

type sh1106 struct {
	monoDisplay
}

// SH1106 is a driver for the Sino Wealth SH1106 OLED controller, as found on
// 1.3" 128x64 modules.
func SH1106(conn Conn, config *Config) (Display, error) {
	if config == nil {
		config = new(Config)
	}
	d := &sh1106{
		monoDisplay: monoDisplay{
			c:         conn,
			name:      "SH1106",
			colOffset: sh1106ColumnOffset,
		},
	}

	config.applyDefaults(sh1106DefaultWidth, sh1106DefaultHeight, sh1106DefaultContrast)

	if err := d.init(config); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *sh1106) init(config *Config) error {
	if config.Width != 128 || config.Height != 64 {
		return fmt.Errorf("sh110x: SH1106 unsupported size %dx%d", config.Width, config.Height)
	}
	return d.monoDisplay.init(config, sh1106InitCommands)
}

var sh1106InitCommands = []byte{
	setDisplayOff,
	setDisplayClockDiv, 0x80,
	setMultiplexRatio, 0x3F,
	setDisplayOffset, 0x00,
	setStartLine | 0x00, //nolint:staticcheck
	setDCDC, 0x8B, // DC-DC on
	setSegmentRemap | 0x01,
	setComScanDec,
	setComPins, 0x12,
	setContrast, 0xFF,
	setPrecharge, 0x1F,
	setVComDetect, 0x40,
	setPumpVoltage9V,
	setNormalDisplay,
	setMemoryMode, 0x10,
	setDisplayAllOnResume,
}
