package pipeline

import "github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/domain"

// DrawLine rasterizes the segment (x0,y0)-(x1,y1) into img with Bresenham's
// algorithm. Each stepped pixel stamps a brush×brush block extending right
// and down. Writes outside the canvas are skipped.
func DrawLine(img *domain.Image, x0, y0, x1, y1, brush int) {
	if brush < 1 {
		brush = 1
	}

	dx, sx := abs(x1-x0), 1
	if x0 >= x1 {
		sx = -1
	}
	dy, sy := -abs(y1-y0), 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	for {
		stamp(img, x0, y0, brush)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func stamp(img *domain.Image, x, y, brush int) {
	for i := 0; i < brush; i++ {
		for j := 0; j < brush; j++ {
			img.SetInk(x+i, y+j)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
