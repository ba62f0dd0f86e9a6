package pipeline

import "github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/domain"

// StrokeCapacity bounds the number of points kept for one gesture.
const StrokeCapacity = 250

// Stroke holds the ordered points of a single gesture.
// Points past StrokeCapacity are dropped.
type Stroke struct {
	points [StrokeCapacity]domain.Point
	count  int
}

// Begin resets the stroke for a new gesture.
func (s *Stroke) Begin() {
	s.points = [StrokeCapacity]domain.Point{}
	s.count = 0
}

// Append adds p if capacity remains and reports whether it was kept.
func (s *Stroke) Append(p domain.Point) bool {
	if s.count >= StrokeCapacity {
		return false
	}
	s.points[s.count] = p
	s.count++
	return true
}

func (s *Stroke) Count() int {
	return s.count
}

// Points returns the captured points in arrival order. The slice aliases
// the stroke and is only valid until the next Begin.
func (s *Stroke) Points() []domain.Point {
	return s.points[:s.count]
}
