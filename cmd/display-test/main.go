package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/BeatGlow/sh110x"
	"github.com/BeatGlow/sh110x/draw"
	"github.com/BeatGlow/sh110x/pixel"
)

func main() {
	widthFlag := flag.Int("width", 0, "Display width (default: driver default)")
	heightFlag := flag.Int("height", 0, "Display height (default: driver default)")
	i2cDeviceFlag := flag.Int("i2c-dev", sh110x.DefaultI2CConfig.Device, "I²C device number (default: use first available)")
	i2cAddrFlag := flag.Uint("i2c-addr", uint(sh110x.DefaultI2CConfig.Addr), "I²C device address")
	i2cTxFlag := flag.Int("i2c-tx", sh110x.DefaultI2CConfig.MaxTxSize, "I²C maximum transaction size")
	spiBusFlag := flag.Int("spi-bus", sh110x.DefaultSPIConfig.Bus, "SPI bus")
	spiDeviceFlag := flag.Int("spi-dev", sh110x.DefaultSPIConfig.Device, "SPI device")
	spiSpeedFlag := flag.Int64("spi-speed", int64(sh110x.DefaultSPIConfig.Speed/physic.KiloHertz), "SPI speed in kHz")
	resetPinFlag := flag.String("reset", sh110x.DefaultResetPin, "Reset GPIO pin, empty for none")
	dcPinFlag := flag.String("dc", sh110x.DefaultDCPin, "Data/Command GPIO pin (DC)")
	csPinFlag := flag.String("cs", "", "Chip select GPIO pin, if not driven by the SPI controller")
	rotateFlag := flag.String("rotate", "", "Display rotation")
	contrastFlag := flag.Uint("contrast", 0, "Contrast level (default: driver default)")
	fontFlag := flag.String("font", "proggy", "Text font (proggy or gomono)")
	sizeFlag := flag.Float64("size", 12, "Text size in points for TrueType fonts")
	textFlag := flag.String("text", "SH110X", "Text to display")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <bus> <driver>\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "  bus:    i2c or spi")
		fmt.Fprintln(os.Stderr, "  driver: sh1106 or sh1107")
		os.Exit(1)
	}

	var rotation sh110x.Rotation
	switch *rotateFlag {
	case "", "no", "0":
		rotation = sh110x.NoRotation
	case "90", "right", "cw":
		rotation = sh110x.Rotate90
	case "180", "flip":
		rotation = sh110x.Rotate180
	case "270", "left", "ccw":
		rotation = sh110x.Rotate270
	default:
		fatal(fmt.Errorf("invalid rotation %q specified", *rotateFlag))
	}
	fmt.Printf("using rotation: %s\n", rotation)

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	var (
		config = &sh110x.Config{
			Width:    *widthFlag,
			Height:   *heightFlag,
			Rotation: rotation,
			Contrast: uint8(*contrastFlag),
		}
		reset  = pin(*resetPinFlag)
		conn   sh110x.Conn
		output sh110x.Display
		err    error
	)
	config.Reset = reset != nil

	switch busType := strings.ToLower(flag.Arg(0)); busType {
	case "i2c":
		conn, err = sh110x.OpenI2C(&sh110x.I2CConfig{
			Device:    *i2cDeviceFlag,
			Addr:      uint8(*i2cAddrFlag),
			MaxTxSize: *i2cTxFlag,
			Reset:     reset,
		})
	case "spi":
		conn, err = sh110x.OpenSPI(&sh110x.SPIConfig{
			Bus:    *spiBusFlag,
			Device: *spiDeviceFlag,
			Speed:  physic.Frequency(*spiSpeedFlag) * physic.KiloHertz,
			Reset:  reset,
			DC:     pin(*dcPinFlag),
			CS:     pin(*csPinFlag),
		})
	default:
		err = fmt.Errorf("unsupported bus type %q", busType)
	}
	if err != nil {
		fatal(err)
	}
	fmt.Printf("using connection: %s\n", conn)

	switch driver := strings.ToLower(flag.Arg(1)); driver {
	case "sh1106":
		output, err = sh110x.SH1106(conn, config)
	case "sh1107":
		output, err = sh110x.SH1107(conn, config)
	default:
		err = fmt.Errorf("unsupported driver %q", driver)
	}
	if err != nil {
		_ = conn.Close()
		fatal(err)
	}
	defer output.Close()
	fmt.Printf("using driver: %s\n", output)

	var (
		offset int
		ticker = time.NewTicker(50 * time.Millisecond)
		r      = output.Bounds()
		banner = image.Rect(2, 2, r.Max.X-2, 14)
	)
	defer ticker.Stop()

	// Border, drawn once.
	draw.Rectangle(output, r, sh110x.ModeSet)
	if err = output.Refresh(); err != nil {
		fatal(err)
	}

	switch *fontFlag {
	case "proggy":
		tinyfont.WriteLine(sh110x.NewTinyGoDisplayer(output), &proggy.TinySZ8pt7b, 4, 11, *textFlag, pixel.On.RGBA8())
	case "gomono":
		face, err := gomonoFace(*sizeFlag)
		if err != nil {
			fatal(err)
		}
		ascent := face.Metrics().Ascent.Ceil()
		banner.Max.Y = min(banner.Min.Y+ascent+face.Metrics().Descent.Ceil(), r.Max.Y-2)
		draw.Text(output, image.Pt(4, banner.Min.Y+ascent), face, *textFlag, sh110x.ModeSet)
	default:
		fatal(fmt.Errorf("unsupported font %q", *fontFlag))
	}
	if err = output.Refresh(); err != nil {
		fatal(err)
	}
	fmt.Printf("text dirty region was %s\n", output.Dirty())

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	fmt.Println("hit control-c to stop...")
	for {
		// Animate the pattern below the banner, only that region is sent.
		for y := banner.Max.Y + 1; y < r.Max.Y-1; y++ {
			for x := 1; x < r.Max.X-1; x++ {
				if (x+y+offset)%4 == 0 {
					output.SetPixel(x, y, sh110x.ModeSet)
				} else {
					output.SetPixel(x, y, sh110x.ModeClear)
				}
			}
		}
		if err = output.Refresh(); err != nil {
			fmt.Fprintln(os.Stderr, "refresh failed, retrying:", err)
		}
		offset++

		select {
		case <-ticker.C:
		case <-stop:
			output.Clear()
			if err = output.Refresh(); err != nil {
				fatal(err)
			}
			return
		}
	}
}

// pin looks up a GPIO pin by name, an empty name is no pin.
func pin(name string) gpio.PinIO {
	if name == "" {
		return nil
	}
	p := gpioreg.ByName(name)
	if p == nil {
		fatal(fmt.Errorf("no GPIO pin named %q", name))
	}
	return p
}

func gomonoFace(size float64) (font.Face, error) {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
