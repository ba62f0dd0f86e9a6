// Package inference selects the digit model backend named by the configuration.
package inference

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/config"
	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/handler/ml"
	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/handler/ml/tflite"
	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/service"
)

// Backend is a classifier that holds resources until closed.
type Backend interface {
	service.Classifier
	Close() error
}

type remote struct {
	*ml.ModelAdapter
}

func (remote) Close() error { return nil }

// Open builds the configured backend. A remote model server that fails its
// health check is only logged so the service can start before it.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (Backend, error) {
	switch cfg.InferenceBackend {
	case config.BackendTFLite:
		interp, err := tflite.Open(cfg.ModelPath, cfg.TFLiteThreads, log)
		if err != nil {
			return nil, fmt.Errorf("open tflite model: %w", err)
		}
		log.Info().Str("model", cfg.ModelPath).Msg("tflite model loaded")
		return interp, nil

	case config.BackendHTTP:
		adapter, err := ml.NewModelAdapter(cfg.InferenceURL, &http.Client{Timeout: cfg.InferenceTimeout})
		if err != nil {
			return nil, err
		}
		if err := adapter.CheckHealth(ctx); err != nil {
			log.Warn().Err(err).Str("url", cfg.InferenceURL).Msg("ML service not available")
		}
		return remote{adapter}, nil
	}
	return nil, fmt.Errorf("unknown inference backend %q", cfg.InferenceBackend)
}
