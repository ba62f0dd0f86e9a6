// Package pipeline turns a captured stroke into the quantized, mass-centered
// 28x28 image fed to the digit classifier.
package pipeline

import "github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/domain"

const (
	// MinPoints is the fewest points that can form a segment.
	MinPoints = 2

	DefaultBrush  = 2
	DefaultMargin = 8
)

// Options tunes the rasterization footprint and the fitting margin.
type Options struct {
	Brush  int
	Margin int
}

// DefaultOptions matches the constants the bundled model was trained against.
func DefaultOptions() Options {
	return Options{Brush: DefaultBrush, Margin: DefaultMargin}
}

// Pipeline owns the scratch and output buffers of one gesture run.
// A Pipeline is not safe for concurrent use.
type Pipeline struct {
	opts    Options
	scratch domain.Image
	output  domain.Image
}

func New(opts Options) *Pipeline {
	if opts.Brush < 1 {
		opts.Brush = DefaultBrush
	}
	if opts.Margin < 0 || opts.Margin >= domain.ImageWidth || opts.Margin >= domain.ImageHeight {
		opts.Margin = DefaultMargin
	}
	p := &Pipeline{opts: opts}
	p.Reset()
	return p
}

// Reset clears both buffers.
func (p *Pipeline) Reset() {
	p.scratch.Clear()
	p.output.Clear()
}

// Scratch exposes the rasterized, not yet centered, buffer of the last run.
func (p *Pipeline) Scratch() *domain.Image {
	return &p.scratch
}

// Process rasterizes and recenters points and returns the output buffer.
// Gestures with fewer than MinPoints points or a degenerate bounding box
// produce an all-background image. The returned image is owned by p and is
// overwritten by the next call.
func (p *Pipeline) Process(points []domain.Point) *domain.Image {
	p.Reset()
	if len(points) < MinPoints {
		return &p.output
	}

	box, _ := Bounds(points)
	t, ok := Fit(box, p.opts.Margin)
	if !ok {
		return &p.output
	}

	for i := 1; i < len(points); i++ {
		x0, y0 := t.Apply(points[i-1])
		x1, y1 := t.Apply(points[i])
		DrawLine(&p.scratch, x0, y0, x1, y1, p.opts.Brush)
	}

	Recenter(&p.scratch, &p.output)
	return &p.output
}
