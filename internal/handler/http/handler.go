package http

import (
	"image/png"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/display"
	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/domain"
	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/service"
)

const previewScale = 10

type Handler struct {
	recognizer *service.RecognizerService
}

func NewHandler(recognizer *service.RecognizerService) *Handler {
	return &Handler{
		recognizer: recognizer,
	}
}

// Register mounts the routes on r.
func (h *Handler) Register(r gin.IRouter) {
	r.POST("/predict", h.Predict)
	r.POST("/preview", h.Preview)
	r.GET("/health", h.Health)
}

// Predict handles POST /predict with a gesture in canvas coordinates.
func (h *Handler) Predict(c *gin.Context) {
	var req domain.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "Failed to parse gesture", http.StatusBadRequest)
		return
	}

	result := h.recognizer.PredictGesture(c.Request.Context(), req)
	c.JSON(http.StatusOK, result)
}

// Preview handles POST /preview and returns the centered model input as PNG.
func (h *Handler) Preview(c *gin.Context) {
	var req domain.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "Failed to parse gesture", http.StatusBadRequest)
		return
	}

	stroke := h.recognizer.Capture(req.Points)
	img := display.Preview(h.recognizer.Preprocess(stroke.Points()), previewScale)

	c.Header("Content-Type", "image/png")
	c.Status(http.StatusOK)
	if err := png.Encode(c.Writer, img); err != nil {
		c.Error(err)
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func respondError(c *gin.Context, message string, status int) {
	c.JSON(status, gin.H{"error": message})
}

// CORS adds permissive CORS headers and answers preflight requests.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

// RequestLogger logs every request once it has been served.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ev := log.Info()
		if len(c.Errors) > 0 {
			ev = log.Error().Str("errors", c.Errors.String())
		}
		ev.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// NewRouter builds the gin engine with middleware and routes.
func NewRouter(h *Handler, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(log), CORS())
	h.Register(r)
	return r
}
