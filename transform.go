package sh110x

// transform maps logical (x, y) under rotation r to physical buffer
// coordinates, for a physical buffer of w x h pixels.
func (r Rotation) transform(x, y, w, h int) (int, int) {
	switch r % 4 {
	case Rotate90:
		x, y = y, x
		return w - x - 1, y
	case Rotate180:
		return w - x - 1, h - y - 1
	case Rotate270:
		x, y = y, x
		return x, h - y - 1
	default:
		return x, y
	}
}

// size returns the logical dimensions of a w x h physical buffer.
func (r Rotation) size(w, h int) (int, int) {
	switch r % 4 {
	case Rotate90, Rotate270:
		return h, w
	default:
		return w, h
	}
}
