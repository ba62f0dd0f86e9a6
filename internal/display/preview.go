package display

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/domain"
)

// Gray converts a quantized image to 8-bit grayscale, ink white on black.
func Gray(img *domain.Image) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, domain.ImageWidth, domain.ImageHeight))
	for i, v := range img.Pix {
		g.Pix[i] = uint8(int(v) + 128)
	}
	return g
}

// Preview upscales img by factor with nearest-neighbour sampling so single
// pixels stay crisp.
func Preview(img *domain.Image, factor int) *image.Gray {
	if factor < 1 {
		factor = 1
	}
	src := Gray(img)
	dst := image.NewGray(image.Rect(0, 0, domain.ImageWidth*factor, domain.ImageHeight*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// InkAt reports whether a preview pixel is ink.
func InkAt(g *image.Gray, x, y int) bool {
	return g.GrayAt(x, y) == color.Gray{Y: 0xff}
}
