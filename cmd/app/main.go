package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/config"
	httpHandler "github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/handler/http"
	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/inference"
	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/pipeline"
	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.SetupLogging(); err != nil {
		log.Fatal().Err(err).Msg("setup logging")
	}

	backend, err := inference.Open(context.Background(), cfg, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("open inference backend")
	}
	defer backend.Close()

	recognizer := service.NewRecognizerService(backend, pipeline.Options{
		Brush:  cfg.BrushSize,
		Margin: cfg.CanvasMargin,
	}, log.Logger)

	gin.SetMode(gin.ReleaseMode)
	router := httpHandler.NewRouter(httpHandler.NewHandler(recognizer), log.Logger)

	addr := ":" + cfg.Port
	log.Info().
		Str("addr", addr).
		Str("backend", cfg.InferenceBackend).
		Msg("server starting")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("run server")
	}
}
