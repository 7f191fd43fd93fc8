package sh110x

import "fmt"

const (
	sh1107DefaultWidth    = 64
	sh1107DefaultHeight   = 128
	sh1107DefaultContrast = 0x2F
)

type sh1107 struct {
	monoDisplay
}

// SH1107 is a driver for the Sino Wealth SH1107 OLED controller, supporting
// 64x128 and 128x128 panels. 64x128 panels mounted in landscape, such as the
// 128x64 FeatherWing, should use 64x128 with Rotate90 or Rotate270.
func SH1107(conn Conn, config *Config) (Display, error) {
	if config == nil {
		config = new(Config)
	}
	d := &sh1107{
		monoDisplay: monoDisplay{
			c:    conn,
			name: "SH1107",
		},
	}

	config.applyDefaults(sh1107DefaultWidth, sh1107DefaultHeight, sh1107DefaultContrast)

	if err := d.init(config); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *sh1107) init(config *Config) error {
	var (
		multiplexRatio byte
		displayOffset  byte
	)
	switch {
	case config.Width == 64 && config.Height == 128:
		multiplexRatio, displayOffset = 0x3F, 0x60
	case config.Width == 128 && config.Height == 128:
		multiplexRatio, displayOffset = 0x7F, 0x00
	default:
		return fmt.Errorf("sh110x: SH1107 unsupported size %dx%d", config.Width, config.Height)
	}

	return d.monoDisplay.init(config, []byte{
		setDisplayOff,
		setDisplayClockDiv, 0x51,
		setMemoryMode, // page addressing
		setContrast, 0x4F,
		setDCDC, 0x8A,
		setSegmentRemap,
		setComScanInc,
		setDisplayStartLine, 0x00,
		setDisplayOffset, displayOffset,
		setPrecharge, 0x22,
		setVComDetect, 0x35,
		setMultiplexRatio, multiplexRatio,
		setDisplayAllOnResume,
		setNormalDisplay,
	})
}
