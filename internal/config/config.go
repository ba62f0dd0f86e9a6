package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	BackendHTTP   = "http"
	BackendTFLite = "tflite"
)

type Config struct {
	Port string

	InferenceBackend string
	InferenceURL     string
	InferenceTimeout time.Duration
	ModelPath        string
	TFLiteThreads    int

	LogLevel  string
	LogFormat string
	Locale    string

	BrushSize        int
	CanvasMargin     int
	MinGesturePoints int
	PollInterval     time.Duration
	DisplayPNG       string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		InferenceBackend: getEnv("INFERENCE_BACKEND", BackendHTTP),
		InferenceURL:     getEnv("INFERENCE_URL", "http://localhost:5000"),
		ModelPath:        getEnv("MODEL_PATH", "./models/mnist_int8.tflite"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "json"),
		Locale:           getEnv("LOCALE", "en"),
		DisplayPNG:       getEnv("DISPLAY_PNG", ""),
	}

	var err error
	if cfg.InferenceTimeout, err = getDuration("INFERENCE_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.PollInterval, err = getDuration("POLL_INTERVAL", 20*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.TFLiteThreads, err = getInt("TFLITE_THREADS", 1); err != nil {
		return nil, err
	}
	if cfg.BrushSize, err = getInt("BRUSH_SIZE", 2); err != nil {
		return nil, err
	}
	if cfg.CanvasMargin, err = getInt("CANVAS_MARGIN", 8); err != nil {
		return nil, err
	}
	if cfg.MinGesturePoints, err = getInt("MIN_GESTURE_POINTS", 11); err != nil {
		return nil, err
	}

	switch cfg.InferenceBackend {
	case BackendHTTP, BackendTFLite:
	default:
		return nil, fmt.Errorf("INFERENCE_BACKEND: unknown backend %q", cfg.InferenceBackend)
	}
	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
