package render

import "image/color"

// rgba8 is a color reduced to 8-bit channels.
type rgba8 [4]uint8

func toRGBA8(c color.Color) rgba8 {
	r, g, b, a := c.RGBA()
	return rgba8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
// buf must hold four bytes per cell.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	onPx, offPx := toRGBA8(on), toRGBA8(off)
	for i, c := range cells {
		px := offPx
		if c != 0 {
			px = onPx
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}

// CellAt translates a pixel position in a view scaled by scale into grid
// coordinates. ok is false when the point falls outside a w x h grid.
func CellAt(px, py, scale, w, h int) (x, y int, ok bool) {
	if scale <= 0 {
		scale = 1
	}
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/scale, py/scale
	if x >= w || y >= h {
		return 0, 0, false
	}
	return x, y, true
}
