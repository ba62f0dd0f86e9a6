package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/domain"
	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/pipeline"
)

// Classifier runs the digit model on a canonical image and returns per-class scores.
type Classifier interface {
	Classify(ctx context.Context, img *domain.Image) ([]int8, error)
}

type RecognizerService struct {
	model  Classifier
	opts   pipeline.Options
	region domain.Region
	log    zerolog.Logger
}

func NewRecognizerService(model Classifier, opts pipeline.Options, log zerolog.Logger) *RecognizerService {
	return &RecognizerService{
		model:  model,
		opts:   opts,
		region: domain.CaptureRegion,
		log:    log.With().Str("component", "recognizer").Logger(),
	}
}

// Capture builds a stroke from raw canvas samples, dropping samples outside
// the capture region and anything past the stroke capacity.
func (s *RecognizerService) Capture(points []domain.Point) *pipeline.Stroke {
	stroke := &pipeline.Stroke{}
	stroke.Begin()
	for _, p := range points {
		if s.region.Contains(p) {
			stroke.Append(p)
		}
	}
	return stroke
}

// Preprocess runs the normalization pipeline on a fresh context and returns
// a copy of the centered image.
func (s *RecognizerService) Preprocess(points []domain.Point) *domain.Image {
	out := *pipeline.New(s.opts).Process(points)
	return &out
}

// Recognize preprocesses a gesture and classifies it. Gestures too short to
// form a segment are not sent to the model. Classifier failures are logged
// and reported as domain.NoDecision.
func (s *RecognizerService) Recognize(ctx context.Context, points []domain.Point) *domain.Prediction {
	img := s.Preprocess(points)
	pred := &domain.Prediction{Class: domain.NoDecision, Points: len(points), Image: img}
	if len(points) < pipeline.MinPoints {
		s.log.Debug().Int("points", len(points)).Msg("gesture too short, skipping inference")
		return pred
	}

	scores, err := s.model.Classify(ctx, img)
	if err != nil {
		s.log.Err(err).Msg("classify")
		return pred
	}
	pred.Scores = scores
	pred.Class = Argmax(scores)

	s.log.Info().
		Int("points", len(points)).
		Int("mass", img.Mass()).
		Int("class", pred.Class).
		Msg("gesture recognized")
	return pred
}

// PredictGesture serves a gesture submitted as raw canvas samples.
func (s *RecognizerService) PredictGesture(ctx context.Context, req domain.PredictionRequest) *domain.PredictionResult {
	stroke := s.Capture(req.Points)
	pred := s.Recognize(ctx, stroke.Points())

	res := &domain.PredictionResult{
		Class:   pred.Class,
		Decided: pred.Decided(),
		Points:  pred.Points,
		Scores:  pred.Scores,
	}
	if res.Decided {
		res.Message = fmt.Sprintf("Digit %d", pred.Class)
	} else {
		res.Message = "No decision"
	}
	return res
}

// Argmax returns the index of the highest score, the first one on ties.
// An empty vector yields domain.NoDecision.
func Argmax(scores []int8) int {
	if len(scores) == 0 {
		return domain.NoDecision
	}
	best := 0
	for i, v := range scores[1:] {
		if v > scores[best] {
			best = i + 1
		}
	}
	return best
}
