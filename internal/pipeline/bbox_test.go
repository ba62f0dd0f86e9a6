package pipeline

import (
	"testing"

	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/domain"
)

func TestBounds(t *testing.T) {
	tests := []struct {
		name   string
		points []domain.Point
		want   BoundingBox
		wantOK bool
	}{
		{name: "empty", points: nil, wantOK: false},
		{
			name:   "single",
			points: []domain.Point{{X: 7, Y: 9}},
			want:   BoundingBox{MinX: 7, MinY: 9, MaxX: 7, MaxY: 9},
			wantOK: true,
		},
		{
			name:   "L shape",
			points: []domain.Point{{X: 10, Y: 10}, {X: 10, Y: 50}, {X: 50, Y: 50}},
			want:   BoundingBox{MinX: 10, MinY: 10, MaxX: 50, MaxY: 50},
			wantOK: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Bounds(tt.points)
			if ok != tt.wantOK {
				t.Fatalf("Bounds() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Bounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		name      string
		box       BoundingBox
		margin    int
		wantScale float64
		wantOK    bool
	}{
		{name: "square", box: BoundingBox{10, 10, 50, 50}, margin: 8, wantScale: 0.5, wantOK: true},
		{name: "wide keeps aspect", box: BoundingBox{0, 0, 200, 100}, margin: 8, wantScale: 0.1, wantOK: true},
		{name: "tall keeps aspect", box: BoundingBox{0, 0, 10, 40}, margin: 8, wantScale: 0.5, wantOK: true},
		{name: "small drawing is enlarged", box: BoundingBox{0, 0, 5, 5}, margin: 8, wantScale: 4, wantOK: true},
		{name: "zero width", box: BoundingBox{10, 10, 10, 50}, margin: 8, wantOK: false},
		{name: "zero height", box: BoundingBox{10, 10, 50, 10}, margin: 8, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Fit(tt.box, tt.margin)
			if ok != tt.wantOK {
				t.Fatalf("Fit() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.Scale != tt.wantScale {
				t.Errorf("Fit().Scale = %v, want %v", got.Scale, tt.wantScale)
			}
		})
	}
}

func TestTransformStaysInsideMargin(t *testing.T) {
	box := BoundingBox{MinX: 13, MinY: 40, MaxX: 229, MaxY: 101}
	tr, ok := Fit(box, DefaultMargin)
	if !ok {
		t.Fatal("Fit() rejected a non-degenerate box")
	}
	x, y := tr.Apply(domain.Point{X: box.MaxX, Y: box.MaxY})
	if x > domain.ImageWidth-DefaultMargin || y > domain.ImageHeight-DefaultMargin {
		t.Errorf("Apply(max) = (%d, %d), exceeds canvas minus margin", x, y)
	}
	if x, y := tr.Apply(domain.Point{X: box.MinX, Y: box.MinY}); x != 0 || y != 0 {
		t.Errorf("Apply(min) = (%d, %d), want (0, 0)", x, y)
	}
}
