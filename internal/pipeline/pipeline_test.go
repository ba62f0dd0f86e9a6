package pipeline

import (
	"math"
	"testing"

	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/domain"
)

func pts(xy ...int) []domain.Point {
	out := make([]domain.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, domain.Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

func assertOnlyCanonicalValues(t *testing.T, img *domain.Image) {
	t.Helper()
	for i, v := range img.Pix {
		if v != domain.Background && v != domain.Ink {
			t.Fatalf("pixel %d = %d, want background or ink", i, v)
		}
	}
}

func TestProcessBlankOutcomes(t *testing.T) {
	tests := []struct {
		name   string
		points []domain.Point
	}{
		{name: "no points", points: nil},
		{name: "single point", points: pts(120, 120)},
		{name: "repeated point", points: pts(50, 50, 50, 50, 50, 50)},
		{name: "vertical line", points: pts(40, 20, 40, 200)},
		{name: "horizontal line", points: pts(20, 90, 200, 90)},
	}
	blank := domain.NewImage()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(DefaultOptions())
			got := p.Process(tt.points)
			if *got != *blank {
				t.Errorf("Process() produced ink, want all-background")
			}
			if !p.Scratch().Blank() {
				t.Errorf("scratch buffer was rasterized")
			}
		})
	}
}

func TestProcessCentersMass(t *testing.T) {
	tests := []struct {
		name     string
		points   []domain.Point
		wantMass int
	}{
		{name: "L shape", points: pts(10, 10, 10, 50, 50, 50), wantMass: 76},
		{name: "diagonal", points: pts(0, 0, 100, 100), wantMass: 64},
		{name: "seven", points: pts(30, 40, 150, 40, 80, 200), wantMass: 79},
		{name: "box", points: pts(40, 40, 200, 40, 200, 200, 40, 200, 40, 40), wantMass: 160},
		{name: "zero", points: pts(100, 30, 60, 60, 60, 160, 100, 200, 140, 160, 140, 60, 100, 30), wantMass: 101},
		{name: "flat stroke", points: pts(11, 100, 229, 110), wantMass: 44},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(DefaultOptions())
			out := p.Process(tt.points)
			assertOnlyCanonicalValues(t, out)

			c := MassCenter(out)
			if c.Mass != tt.wantMass {
				t.Errorf("mass = %d, want %d", c.Mass, tt.wantMass)
			}
			if math.Abs(c.X-14) > 1 || math.Abs(c.Y-14) > 1 {
				t.Errorf("centroid = (%.2f, %.2f), want (14, 14) ± 1", c.X, c.Y)
			}
		})
	}
}

func TestProcessLShape(t *testing.T) {
	p := New(DefaultOptions())
	out := p.Process(pts(10, 10, 10, 50, 50, 50))

	scratch := MassCenter(p.Scratch())
	if scratch.Mass != 84 {
		t.Errorf("scratch mass = %d, want 84", scratch.Mass)
	}
	// vertical bar then horizontal bar, joined at the corner
	for y := 0; y <= 21; y++ {
		if !p.Scratch().IsInk(0, y) {
			t.Errorf("scratch (0, %d) not inked", y)
		}
	}
	for x := 0; x <= 21; x++ {
		if !p.Scratch().IsInk(x, 20) {
			t.Errorf("scratch (%d, 20) not inked", x)
		}
	}

	c := MassCenter(out)
	if c.X != 13.75 || c.Y != 14.25 {
		t.Errorf("output centroid = (%v, %v), want (13.75, 14.25)", c.X, c.Y)
	}
}

func TestProcessScaleInvariant(t *testing.T) {
	tests := []struct {
		name   string
		points []domain.Point
	}{
		{name: "L shape", points: pts(10, 10, 10, 50, 50, 50)},
		{name: "zero", points: pts(100, 30, 60, 60, 60, 160, 100, 200, 140, 160, 140, 60, 100, 30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scaled := make([]domain.Point, len(tt.points))
			for i, p := range tt.points {
				scaled[i] = domain.Point{X: p.X * 2, Y: p.Y * 2}
			}
			want := *New(DefaultOptions()).Process(tt.points)
			got := *New(DefaultOptions()).Process(scaled)
			if got != want {
				t.Errorf("output differs after scaling input by 2")
			}
		})
	}
}

func TestProcessResetsBetweenGestures(t *testing.T) {
	p := New(DefaultOptions())
	p.Process(pts(10, 10, 10, 50, 50, 50))
	out := p.Process(pts(10, 10))
	if !out.Blank() {
		t.Error("ink leaked from the previous gesture")
	}
}

func TestNewClampsOptions(t *testing.T) {
	p := New(Options{Brush: 0, Margin: 40})
	if p.opts.Brush != DefaultBrush || p.opts.Margin != DefaultMargin {
		t.Errorf("opts = %+v, want defaults", p.opts)
	}
}
