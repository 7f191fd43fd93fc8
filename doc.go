// Package sh110x drives 1-bit SH1106 and SH1107 OLED displays over I²C or
// SPI.
//
// Drawing happens in an in-memory framebuffer organised in pages of 8 rows,
// the same layout as the controller's display RAM. Every pixel write grows a
// dirty rectangle and Refresh only sends the pages and columns inside that
// rectangle, in transactions no larger than the bus allows. This matters on
// I²C where the default 100kHz clock saturates at a few full frames per
// second.
//
// A failed Refresh leaves the dirty rectangle untouched, so calling Refresh
// again resends everything that was pending.
//
// Displays are not safe for concurrent use. Callers that draw from several
// goroutines must serialise all drawing and Refresh calls.
//
// # Datasheets
//
// https://www.displayfuture.com/Display/datasheet/controller/SH1106.pdf
//
// https://www.displayfuture.com/Display/datasheet/controller/SH1107.pdf
package sh110x
