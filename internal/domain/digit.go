package domain

const (
	// ImageWidth and ImageHeight are the canonical canvas dimensions expected by the model.
	ImageWidth  = 28
	ImageHeight = 28

	// Background and Ink are the only two sample values a quantized image holds.
	Background int8 = -128
	Ink        int8 = 127

	// NoDecision is reported when the classifier fails or yields no scores.
	NoDecision = -1
)

// Point is a touch sample in canvas-pixel space.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Image is a quantized 28x28 buffer in row-major order.
type Image struct {
	Pix [ImageWidth * ImageHeight]int8
}

// NewImage returns an all-background image.
func NewImage() *Image {
	img := &Image{}
	img.Clear()
	return img
}

// Clear resets every pixel to Background.
func (m *Image) Clear() {
	for i := range m.Pix {
		m.Pix[i] = Background
	}
}

// InBounds reports whether (x, y) lies on the canonical canvas.
func InBounds(x, y int) bool {
	return x >= 0 && x < ImageWidth && y >= 0 && y < ImageHeight
}

// At returns the sample at (x, y). Out-of-range reads return Background.
func (m *Image) At(x, y int) int8 {
	if !InBounds(x, y) {
		return Background
	}
	return m.Pix[y*ImageWidth+x]
}

// SetInk marks (x, y) as ink. Out-of-range writes are ignored.
func (m *Image) SetInk(x, y int) {
	if !InBounds(x, y) {
		return
	}
	m.Pix[y*ImageWidth+x] = Ink
}

// IsInk reports whether (x, y) holds ink.
func (m *Image) IsInk(x, y int) bool {
	return m.At(x, y) > Background
}

// Mass counts ink pixels.
func (m *Image) Mass() int {
	n := 0
	for _, v := range m.Pix {
		if v > Background {
			n++
		}
	}
	return n
}

// Blank reports whether the image holds no ink.
func (m *Image) Blank() bool {
	return m.Mass() == 0
}

// Region is a rectangle in canvas-native coordinates with exclusive edges.
type Region struct {
	MinX, MinY int
	MaxX, MaxY int
}

// CaptureRegion is the drawing area of the 320x240 panel.
var CaptureRegion = Region{MinX: 10, MinY: 10, MaxX: 230, MaxY: 230}

// Contains reports whether p lies strictly inside r.
func (r Region) Contains(p Point) bool {
	return p.X > r.MinX && p.X < r.MaxX && p.Y > r.MinY && p.Y < r.MaxY
}
