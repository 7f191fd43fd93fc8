// Package pixel implements the 1-bit color model and page-organised image
// buffer used by SH110X OLED displays.
//
// The types are compatible with Go's native [color.Color] and
// [image.Image] / [draw.Image] interfaces.
package pixel
