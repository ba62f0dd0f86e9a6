package pipeline

import "github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/domain"

// Centroid is the mean position of the ink pixels of an image.
type Centroid struct {
	X, Y float64
	Mass int
}

// MassCenter scans img and returns its ink centroid. Mass is zero for a blank image.
func MassCenter(img *domain.Image) Centroid {
	var sumX, sumY, mass int
	for y := 0; y < domain.ImageHeight; y++ {
		for x := 0; x < domain.ImageWidth; x++ {
			if img.IsInk(x, y) {
				sumX += x
				sumY += y
				mass++
			}
		}
	}
	if mass == 0 {
		return Centroid{}
	}
	return Centroid{
		X:    float64(sumX) / float64(mass),
		Y:    float64(sumY) / float64(mass),
		Mass: mass,
	}
}

// Shift returns the integer translation moving c onto the canvas center.
func (c Centroid) Shift() (dx, dy int) {
	return domain.ImageWidth/2 - int(c.X), domain.ImageHeight/2 - int(c.Y)
}

// Recenter copies the ink of src into dst translated so that its centroid
// sits on the canvas center. Pixels shifted off the canvas are clipped.
// dst is left untouched when src is blank.
func Recenter(src, dst *domain.Image) Centroid {
	c := MassCenter(src)
	if c.Mass == 0 {
		return c
	}
	dx, dy := c.Shift()
	for y := 0; y < domain.ImageHeight; y++ {
		for x := 0; x < domain.ImageWidth; x++ {
			if src.IsInk(x, y) {
				dst.SetInk(x+dx, y+dy)
			}
		}
	}
	return c
}
