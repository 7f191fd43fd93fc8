package sh110x

import "image"

// Sentinel bounds of an empty dirty region. They lie outside any valid
// coordinate so the first mark sets both corners through min/max.
const (
	dirtyUnsetMin = 1<<31 - 1
	dirtyUnsetMax = -1
)

// dirtyRect is the inclusive bounding box of pixels changed since the last
// reset, in physical coordinates.
type dirtyRect struct {
	x1, y1, x2, y2 int
}

func newDirtyRect() dirtyRect {
	var r dirtyRect
	r.reset()
	return r
}

func (r *dirtyRect) mark(x, y int) {
	r.x1 = min(r.x1, x)
	r.y1 = min(r.y1, y)
	r.x2 = max(r.x2, x)
	r.y2 = max(r.y2, y)
}

func (r *dirtyRect) isEmpty() bool {
	return r.x1 > r.x2 || r.y1 > r.y2
}

func (r *dirtyRect) reset() {
	r.x1, r.y1 = dirtyUnsetMin, dirtyUnsetMin
	r.x2, r.y2 = dirtyUnsetMax, dirtyUnsetMax
}

// rectangle returns the region as a half-open image rectangle.
func (r *dirtyRect) rectangle() image.Rectangle {
	if r.isEmpty() {
		return image.Rectangle{}
	}
	return image.Rect(r.x1, r.y1, r.x2+1, r.y2+1)
}
