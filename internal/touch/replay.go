package touch

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/domain"
)

// Gesture is a recorded stroke as [[x, y], ...].
type Gesture struct {
	Points [][2]int `json:"points"`
}

// Replay plays back recorded gestures: one touched sample per point
// followed by one release.
type Replay struct {
	samples []Sample
	next    int
}

func NewReplay(gestures []Gesture) *Replay {
	r := &Replay{}
	for _, g := range gestures {
		for _, p := range g.Points {
			r.samples = append(r.samples, Sample{Touched: true, Point: domain.Point{X: p[0], Y: p[1]}})
		}
		r.samples = append(r.samples, Sample{})
	}
	return r
}

// LoadReplay decodes a JSON array of gestures.
func LoadReplay(rd io.Reader) (*Replay, error) {
	var gestures []Gesture
	if err := json.NewDecoder(rd).Decode(&gestures); err != nil {
		return nil, fmt.Errorf("decode gestures: %w", err)
	}
	return NewReplay(gestures), nil
}

func (r *Replay) Poll() (Sample, error) {
	if r.next >= len(r.samples) {
		return Sample{}, ErrExhausted
	}
	s := r.samples[r.next]
	r.next++
	return s, nil
}

// Remaining returns the number of samples not yet polled.
func (r *Replay) Remaining() int {
	return len(r.samples) - r.next
}
