package ml

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/domain"
)

// ErrBadScores is returned when the model server answers without scores.
var ErrBadScores = errors.New("inference response has no scores")

// ModelAdapter talks to a remote model server that runs the quantized digit model.
type ModelAdapter struct {
	baseURL *url.URL
	client  *http.Client
}

func NewModelAdapter(inferenceURL string, client *http.Client) (*ModelAdapter, error) {
	u, err := url.Parse(inferenceURL)
	if err != nil {
		return nil, fmt.Errorf("invalid inference url: %w", err)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &ModelAdapter{baseURL: u, client: client}, nil
}

type classifyRequest struct {
	Input []int8 `json:"input"`
}

type classifyResponse struct {
	Scores []int8 `json:"scores"`
}

// Classify sends the image as the model's input tensor and returns the output scores.
func (m *ModelAdapter) Classify(ctx context.Context, img *domain.Image) ([]int8, error) {
	body, err := json.Marshal(classifyRequest{Input: img.Pix[:]})
	if err != nil {
		return nil, fmt.Errorf("encode input tensor: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL.JoinPath("/predict").String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("inference failed with status: %d, body: %s", resp.StatusCode, msg)
	}

	var result classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(result.Scores) == 0 {
		return nil, ErrBadScores
	}
	return result.Scores, nil
}

// CheckHealth checks that the model server is reachable.
func (m *ModelAdapter) CheckHealth(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL.JoinPath("/health").String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ml service unhealthy: %d", resp.StatusCode)
	}
	return nil
}
