// Package display shows the idle state and predictions produced by the recognizer.
package display

import (
	"github.com/rs/zerolog"

	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/domain"
)

// Display receives the two status signals of the recognizer.
type Display interface {
	// Idle clears the screen and invites the user to draw.
	Idle()
	// ShowPrediction shows a class, or domain.NoDecision.
	ShowPrediction(class int)
}

// Sketcher is implemented by displays that echo ink while a gesture is captured.
type Sketcher interface {
	StartSketch()
	Plot(p domain.Point)
}

// Log writes status changes to a zerolog logger.
type Log struct {
	log   zerolog.Logger
	texts *Texts
}

func NewLog(log zerolog.Logger, texts *Texts) *Log {
	return &Log{log: log.With().Str("component", "display").Logger(), texts: texts}
}

func (d *Log) Idle() {
	d.log.Info().Msg(d.texts.Waiting())
}

func (d *Log) ShowPrediction(class int) {
	d.log.Info().Int("class", class).Msg(d.texts.Prediction(class))
}

type multi []Display

// Multi fans signals out to every display in order.
func Multi(ds ...Display) Display {
	return multi(ds)
}

func (m multi) Idle() {
	for _, d := range m {
		d.Idle()
	}
}

func (m multi) ShowPrediction(class int) {
	for _, d := range m {
		d.ShowPrediction(class)
	}
}

func (m multi) StartSketch() {
	for _, d := range m {
		if s, ok := d.(Sketcher); ok {
			s.StartSketch()
		}
	}
}

func (m multi) Plot(p domain.Point) {
	for _, d := range m {
		if s, ok := d.(Sketcher); ok {
			s.Plot(p)
		}
	}
}
