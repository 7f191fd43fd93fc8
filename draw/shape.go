package draw

import (
	"image"

	"github.com/BeatGlow/sh110x"
)

// Line draws a line between two points, both included.
func Line(dst Canvas, a, b image.Point, mode sh110x.Mode) {
	var (
		dx = abs(b.X - a.X)
		dy = -abs(b.Y - a.Y)
		sx = sign(b.X - a.X)
		sy = sign(b.Y - a.Y)
		e  = dx + dy
		x  = a.X
		y  = a.Y
	)
	for {
		dst.SetPixel(x, y, mode)
		if x == b.X && y == b.Y {
			return
		}
		if e2 := 2 * e; e2 >= dy {
			e += dy
			x += sx
		}
		if e2 := 2 * e; e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// HorizontalLine draws w pixels from (x, y) to the right.
func HorizontalLine(dst Canvas, x, y, w int, mode sh110x.Mode) {
	for i := 0; i < w; i++ {
		dst.SetPixel(x+i, y, mode)
	}
}

// VerticalLine draws h pixels from (x, y) down.
func VerticalLine(dst Canvas, x, y, h int, mode sh110x.Mode) {
	for i := 0; i < h; i++ {
		dst.SetPixel(x, y+i, mode)
	}
}

// Rectangle draws the outline of rect. Each pixel is drawn once, so
// sh110x.ModeInvert inverts the outline.
func Rectangle(dst Canvas, rect image.Rectangle, mode sh110x.Mode) {
	rect = rect.Canon()
	w, h := rect.Dx(), rect.Dy()
	if w == 0 || h == 0 {
		return
	}
	HorizontalLine(dst, rect.Min.X, rect.Min.Y, w, mode)
	if h > 1 {
		HorizontalLine(dst, rect.Min.X, rect.Max.Y-1, w, mode)
	}
	if h > 2 {
		VerticalLine(dst, rect.Min.X, rect.Min.Y+1, h-2, mode)
		if w > 1 {
			VerticalLine(dst, rect.Max.X-1, rect.Min.Y+1, h-2, mode)
		}
	}
}

// Box draws a filled rectangle, clipped to the canvas.
func Box(dst Canvas, rect image.Rectangle, mode sh110x.Mode) {
	rect = rect.Canon().Intersect(dst.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		HorizontalLine(dst, rect.Min.X, y, rect.Dx(), mode)
	}
}

// Circle draws a circle outline of radius r around c.
func Circle(dst Canvas, c image.Point, r int, mode sh110x.Mode) {
	if r <= 0 {
		dst.SetPixel(c.X, c.Y, mode)
		return
	}
	circle(r, func(x, y int) {
		points := [...]image.Point{
			{c.X + x, c.Y + y}, {c.X - x, c.Y + y},
			{c.X + x, c.Y - y}, {c.X - x, c.Y - y},
			{c.X + y, c.Y + x}, {c.X - y, c.Y + x},
			{c.X + y, c.Y - x}, {c.X - y, c.Y - x},
		}
		seen := make(map[image.Point]bool, len(points))
		for _, p := range points {
			if !seen[p] {
				seen[p] = true
				dst.SetPixel(p.X, p.Y, mode)
			}
		}
	})
}

// FilledCircle draws a filled circle of radius r around c.
func FilledCircle(dst Canvas, c image.Point, r int, mode sh110x.Mode) {
	if r <= 0 {
		dst.SetPixel(c.X, c.Y, mode)
		return
	}
	// Widest span per row, so each pixel is drawn once.
	spans := make([]int, r+1)
	circle(r, func(x, y int) {
		spans[y] = max(spans[y], x)
		spans[x] = max(spans[x], y)
	})
	for dy, w := range spans {
		HorizontalLine(dst, c.X-w, c.Y+dy, 2*w+1, mode)
		if dy > 0 {
			HorizontalLine(dst, c.X-w, c.Y-dy, 2*w+1, mode)
		}
	}
}

// RoundedRectangle draws the outline of rect with corners of radius r.
func RoundedRectangle(dst Canvas, rect image.Rectangle, r int, mode sh110x.Mode) {
	rect = rect.Canon()
	r = min(r, (rect.Dx()-1)/2, (rect.Dy()-1)/2)
	if r <= 0 {
		Rectangle(dst, rect, mode)
		return
	}
	var (
		x0 = rect.Min.X + r
		y0 = rect.Min.Y + r
		x1 = rect.Max.X - 1 - r
		y1 = rect.Max.Y - 1 - r
	)
	HorizontalLine(dst, x0, rect.Min.Y, x1-x0+1, mode)
	HorizontalLine(dst, x0, rect.Max.Y-1, x1-x0+1, mode)
	VerticalLine(dst, rect.Min.X, y0, y1-y0+1, mode)
	VerticalLine(dst, rect.Max.X-1, y0, y1-y0+1, mode)

	corners := make(map[image.Point]bool)
	circle(r, func(x, y int) {
		for _, d := range [...]image.Point{{x, y}, {y, x}} {
			if d.X == 0 || d.Y == 0 {
				continue // on the straight edges
			}
			corners[image.Pt(x1+d.X, y1+d.Y)] = true
			corners[image.Pt(x0-d.X, y1+d.Y)] = true
			corners[image.Pt(x1+d.X, y0-d.Y)] = true
			corners[image.Pt(x0-d.X, y0-d.Y)] = true
		}
	})
	for p := range corners {
		dst.SetPixel(p.X, p.Y, mode)
	}
}

// RoundedBox draws a filled rectangle with corners of radius r.
func RoundedBox(dst Canvas, rect image.Rectangle, r int, mode sh110x.Mode) {
	rect = rect.Canon()
	r = min(r, (rect.Dx()-1)/2, (rect.Dy()-1)/2)
	if r <= 0 {
		Box(dst, rect, mode)
		return
	}
	spans := make([]int, r+1)
	circle(r, func(x, y int) {
		spans[y] = max(spans[y], x)
		spans[x] = max(spans[x], y)
	})
	var (
		x0 = rect.Min.X + r
		x1 = rect.Max.X - 1 - r
		y0 = rect.Min.Y + r
		y1 = rect.Max.Y - 1 - r
	)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		var w int
		switch {
		case y < y0:
			w = spans[y0-y]
		case y > y1:
			w = spans[y-y1]
		default:
			w = r
		}
		HorizontalLine(dst, x0-w, y, x1-x0+1+2*w, mode)
	}
}

// circle calls fn for the first octant points of a midpoint circle of
// radius r, with x <= y.
func circle(r int, fn func(x, y int)) {
	var (
		x = 0
		y = r
		f = 1 - r
	)
	for x <= y {
		fn(x, y)
		x++
		if f < 0 {
			f += 2*x + 1
		} else {
			y--
			f += 2*(x-y) + 1
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
