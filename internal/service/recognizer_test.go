package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/domain"
	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/pipeline"
)

type fakeClassifier struct {
	scores []int8
	err    error
	calls  int
	last   *domain.Image
}

func (f *fakeClassifier) Classify(_ context.Context, img *domain.Image) ([]int8, error) {
	f.calls++
	f.last = img
	return f.scores, f.err
}

var lShape = []domain.Point{{X: 20, Y: 20}, {X: 20, Y: 100}, {X: 100, Y: 100}}

func TestArgmax(t *testing.T) {
	tests := []struct {
		name   string
		scores []int8
		want   int
	}{
		{name: "empty", scores: nil, want: domain.NoDecision},
		{name: "strict max", scores: []int8{-128, -20, 3, 0, 1, 5, -7, 90, 12, -1}, want: 7},
		{name: "tie picks first", scores: []int8{1, 50, 2, 50, 0}, want: 1},
		{name: "all minimum", scores: []int8{-128, -128, -128}, want: 0},
		{name: "max at end", scores: []int8{-5, -4, 127}, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Argmax(tt.scores); got != tt.want {
				t.Errorf("Argmax() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRecognize(t *testing.T) {
	sevens := []int8{-100, -90, -80, -70, -60, -50, -40, 100, -30, -20}
	tests := []struct {
		name      string
		points    []domain.Point
		model     *fakeClassifier
		wantClass int
		wantCalls int
		wantBlank bool
	}{
		{
			name:      "reports the model's top class",
			points:    lShape,
			model:     &fakeClassifier{scores: sevens},
			wantClass: 7,
			wantCalls: 1,
		},
		{
			name:      "classifier failure is no decision",
			points:    lShape,
			model:     &fakeClassifier{err: errors.New("invoke failed")},
			wantClass: domain.NoDecision,
			wantCalls: 1,
		},
		{
			name:      "single point skips inference",
			points:    lShape[:1],
			model:     &fakeClassifier{scores: sevens},
			wantClass: domain.NoDecision,
			wantCalls: 0,
			wantBlank: true,
		},
		{
			name:      "degenerate geometry still classifies a blank image",
			points:    []domain.Point{{X: 20, Y: 20}, {X: 20, Y: 100}},
			model:     &fakeClassifier{scores: sevens},
			wantClass: 7,
			wantCalls: 1,
			wantBlank: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewRecognizerService(tt.model, pipeline.DefaultOptions(), zerolog.Nop())
			got := s.Recognize(context.Background(), tt.points)
			if got.Class != tt.wantClass {
				t.Errorf("Class = %d, want %d", got.Class, tt.wantClass)
			}
			if tt.model.calls != tt.wantCalls {
				t.Errorf("classifier calls = %d, want %d", tt.model.calls, tt.wantCalls)
			}
			if got.Image.Blank() != tt.wantBlank {
				t.Errorf("Image.Blank() = %v, want %v", got.Image.Blank(), tt.wantBlank)
			}
			if tt.model.last != nil && tt.model.last != got.Image {
				t.Error("classifier did not receive the centered image")
			}
		})
	}
}

func TestCapture(t *testing.T) {
	s := NewRecognizerService(&fakeClassifier{}, pipeline.DefaultOptions(), zerolog.Nop())

	raw := []domain.Point{{X: 5, Y: 50}, {X: 10, Y: 50}, {X: 11, Y: 50}, {X: 229, Y: 229}, {X: 230, Y: 100}, {X: 100, Y: 300}}
	got := s.Capture(raw)
	if got.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", got.Count())
	}

	many := make([]domain.Point, pipeline.StrokeCapacity+100)
	for i := range many {
		many[i] = domain.Point{X: 20 + i%200, Y: 50}
	}
	if got := s.Capture(many).Count(); got != pipeline.StrokeCapacity {
		t.Errorf("Count() = %d, want %d", got, pipeline.StrokeCapacity)
	}
}

func TestPredictGesture(t *testing.T) {
	model := &fakeClassifier{scores: []int8{0, 0, 0, 9, 0}}
	s := NewRecognizerService(model, pipeline.DefaultOptions(), zerolog.Nop())

	res := s.PredictGesture(context.Background(), domain.PredictionRequest{Points: lShape})
	if !res.Decided || res.Class != 3 || res.Points != 3 {
		t.Errorf("PredictGesture() = %+v, want decided class 3 from 3 points", res)
	}

	res = s.PredictGesture(context.Background(), domain.PredictionRequest{Points: []domain.Point{{X: 0, Y: 0}, {X: 300, Y: 300}}})
	if res.Decided || res.Class != domain.NoDecision || res.Points != 0 {
		t.Errorf("PredictGesture() = %+v, want no decision from 0 points", res)
	}
}
