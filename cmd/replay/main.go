// Command replay feeds recorded gestures through the poll-driven capture
// controller as if they came from the touch panel.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"

	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/config"
	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/display"
	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/inference"
	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/pipeline"
	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/service"
	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/touch"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: replay [flags] <gestures.json>")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.SetupLogging(); err != nil {
		log.Fatal().Err(err).Msg("setup logging")
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("open gestures")
	}
	replay, err := touch.LoadReplay(f)
	f.Close()
	if err != nil {
		log.Fatal().Err(err).Msg("load gestures")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	backend, err := inference.Open(ctx, cfg, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("open inference backend")
	}
	defer backend.Close()

	texts := display.NewTexts(cfg.Locale)
	screen := display.Multi(
		display.NewLog(log.Logger, texts),
		display.NewPanel(texts, cfg.DisplayPNG, log.Logger),
	)
	recognizer := service.NewRecognizerService(backend, pipeline.Options{
		Brush:  cfg.BrushSize,
		Margin: cfg.CanvasMargin,
	}, log.Logger)

	controller := touch.NewController(replay, recognizer, screen, touch.Options{
		MinGesturePoints: cfg.MinGesturePoints,
		PollInterval:     cfg.PollInterval,
	}, log.Logger)

	if err := controller.Run(ctx); err != nil {
		log.Error().Err(err).Msg("replay interrupted")
	}
}
