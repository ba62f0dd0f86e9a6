package pipeline

import "github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/domain"

// BoundingBox is the extent of a stroke in capture coordinates.
type BoundingBox struct {
	MinX, MinY int
	MaxX, MaxY int
}

func (b BoundingBox) Width() int  { return b.MaxX - b.MinX }
func (b BoundingBox) Height() int { return b.MaxY - b.MinY }

// Degenerate reports a box with zero width or height.
func (b BoundingBox) Degenerate() bool {
	return b.Width() == 0 || b.Height() == 0
}

// Bounds computes the bounding box of points. It returns false for an empty slice.
func Bounds(points []domain.Point) (BoundingBox, bool) {
	if len(points) == 0 {
		return BoundingBox{}, false
	}
	b := BoundingBox{MinX: points[0].X, MaxX: points[0].X, MinY: points[0].Y, MaxY: points[0].Y}
	for _, p := range points[1:] {
		b.MinX = min(b.MinX, p.X)
		b.MaxX = max(b.MaxX, p.X)
		b.MinY = min(b.MinY, p.Y)
		b.MaxY = max(b.MaxY, p.Y)
	}
	return b, true
}

// Transform maps capture coordinates onto the canonical canvas.
type Transform struct {
	MinX, MinY int
	Scale      float64
}

// Fit returns the uniform scale that places b inside the canonical canvas
// less margin on both axes. A degenerate box cannot be fitted.
func Fit(b BoundingBox, margin int) (Transform, bool) {
	if b.Degenerate() {
		return Transform{}, false
	}
	sx := float64(domain.ImageWidth-margin) / float64(b.Width())
	sy := float64(domain.ImageHeight-margin) / float64(b.Height())
	return Transform{MinX: b.MinX, MinY: b.MinY, Scale: min(sx, sy)}, true
}

// Apply remaps p, truncating toward zero.
func (t Transform) Apply(p domain.Point) (int, int) {
	x := int(float64(p.X-t.MinX) * t.Scale)
	y := int(float64(p.Y-t.MinY) * t.Scale)
	return x, y
}
