// Package mlclient talks to the price model server.
package mlclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	apperrors "sewaaset-prediction/internal/errors"
	"sewaaset-prediction/internal/models"
	"sewaaset-prediction/internal/utils"
)

// maximum response body read from the model server
const maxResponseBytes = 1 << 20

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type PredictRequest struct {
	Features models.FeatureVector `json:"features"`
}

type PredictResponse struct {
	Price        *float64 `json:"price"`
	ModelVersion string   `json:"model_version"`
}

// Predict posts features to the model of propertyType and returns its price.
func (c *Client) Predict(ctx context.Context, propertyType string, features models.FeatureVector) (*models.PricePrediction, error) {
	start := time.Now()
	prediction, err := c.predict(ctx, propertyType, features)
	utils.RecordModelRequestDuration(propertyType, start)
	if err != nil {
		utils.RecordModelError(propertyType)
		return nil, err
	}
	return prediction, nil
}

func (c *Client) predict(ctx context.Context, propertyType string, features models.FeatureVector) (*models.PricePrediction, error) {
	fail := func(status int, err error) error {
		return &apperrors.PredictionError{PropertyType: propertyType, StatusCode: status, Err: err}
	}

	body, err := json.Marshal(PredictRequest{Features: features})
	if err != nil {
		return nil, fail(0, fmt.Errorf("failed to marshal request: %w", err))
	}

	url := fmt.Sprintf("%s/predict/%s", c.baseURL, propertyType)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fail(0, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fail(0, fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fail(resp.StatusCode, fmt.Errorf("model server returned %q", strings.TrimSpace(string(snippet))))
	}

	var out PredictResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return nil, fail(resp.StatusCode, fmt.Errorf("failed to decode response: %w", err))
	}
	if out.Price == nil {
		return nil, fail(resp.StatusCode, fmt.Errorf("response has no price"))
	}
	if math.IsNaN(*out.Price) || math.IsInf(*out.Price, 0) || *out.Price < 0 {
		return nil, fail(resp.StatusCode, fmt.Errorf("invalid price %v", *out.Price))
	}

	return &models.PricePrediction{Price: *out.Price, ModelVersion: out.ModelVersion}, nil
}

// Health returns nil when the model server answers its health check with 200.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to create health request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("model server health check failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("model server health check returned status %d", resp.StatusCode)
	}
	return nil
}
