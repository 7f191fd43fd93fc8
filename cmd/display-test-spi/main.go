package main

import (
	"flag"
	"fmt"
	"log"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/sh110x/conn"
)

func main() {
	busFlag := flag.Int("bus", 0, "SPI bus")
	deviceFlag := flag.Int("device", 0, "SPI device")
	speedFlag := flag.Int64("speed", 8000, "SPI speed in kHz")
	flag.Parse()

	if _, err := host.Init(); err != nil {
		log.Fatalln("host init failed:", err)
	}

	c, err := conn.OpenSPI(*busFlag, *deviceFlag, physic.Frequency(*speedFlag)*physic.KiloHertz)
	if err != nil {
		log.Fatalln("open failed:", err)
	}
	fmt.Println("connected using", c)
	fmt.Println("maximum transaction size", c.MaxTxSize())
	if err = c.Close(); err != nil {
		log.Fatalln("close failed:", err)
	}
}
