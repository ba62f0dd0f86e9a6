// Package touch captures gestures from a polled touch surface and hands each
// completed gesture to the recognizer.
package touch

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/display"
	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/domain"
	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/pipeline"
)

// ErrExhausted is returned by a Sampler with no more samples to give.
var ErrExhausted = errors.New("touch: samples exhausted")

// Sample is one poll of the touch surface.
type Sample struct {
	Touched bool
	Point   domain.Point
}

// Sampler reports the contact state and, when touched, one point in
// canvas-native coordinates per poll.
type Sampler interface {
	Poll() (Sample, error)
}

// Recognizer classifies a finished gesture.
type Recognizer interface {
	Recognize(ctx context.Context, points []domain.Point) *domain.Prediction
}

// DefaultMinGesturePoints is the shortest gesture worth classifying.
const DefaultMinGesturePoints = 11

type Options struct {
	MinGesturePoints int
	PollInterval     time.Duration
	Region           domain.Region
}

// Controller runs the capture state machine, one Step per poll.
type Controller struct {
	sampler    Sampler
	recognizer Recognizer
	display    display.Display
	opts       Options
	log        zerolog.Logger

	stroke  pipeline.Stroke
	drawing bool
}

func NewController(sampler Sampler, recognizer Recognizer, d display.Display, opts Options, log zerolog.Logger) *Controller {
	if opts.MinGesturePoints < pipeline.MinPoints {
		opts.MinGesturePoints = pipeline.MinPoints
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 20 * time.Millisecond
	}
	if opts.Region == (domain.Region{}) {
		opts.Region = domain.CaptureRegion
	}
	return &Controller{
		sampler:    sampler,
		recognizer: recognizer,
		display:    d,
		opts:       opts,
		log:        log.With().Str("component", "touch").Logger(),
	}
}

// Step polls the sampler once. A release that ends a gesture runs the
// recognizer to completion before Step returns.
func (c *Controller) Step(ctx context.Context) error {
	s, err := c.sampler.Poll()
	if err != nil {
		return err
	}

	if !s.Touched {
		if c.drawing {
			c.drawing = false
			c.finish(ctx)
		}
		return nil
	}

	if !c.drawing {
		c.drawing = true
		c.stroke.Begin()
		if sk, ok := c.display.(display.Sketcher); ok {
			sk.StartSketch()
		}
	}
	if c.opts.Region.Contains(s.Point) && c.stroke.Append(s.Point) {
		if sk, ok := c.display.(display.Sketcher); ok {
			sk.Plot(s.Point)
		}
	}
	return nil
}

func (c *Controller) finish(ctx context.Context) {
	n := c.stroke.Count()
	if n < c.opts.MinGesturePoints {
		c.log.Debug().Int("points", n).Msg("gesture discarded")
	} else {
		pred := c.recognizer.Recognize(ctx, c.stroke.Points())
		c.display.ShowPrediction(pred.Class)
	}
	c.display.Idle()
}

// Run polls every PollInterval until ctx is done or the sampler is exhausted.
func (c *Controller) Run(ctx context.Context) error {
	c.display.Idle()

	ticker := time.NewTicker(c.opts.PollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		if err := c.Step(ctx); err != nil {
			if errors.Is(err, ErrExhausted) {
				return nil
			}
			return err
		}
	}
}
