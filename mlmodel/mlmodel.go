package mlmodel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Prediction is one label/score pair as returned by a text-classification model.
type Prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Parameters are forwarded to the hosted pipeline.
type Parameters struct {
	TopK            int    `json:"top_k,omitempty"`
	FunctionToApply string `json:"function_to_apply,omitempty"`
}

type MLRequest struct {
	Inputs     string      `json:"inputs"`
	Parameters *Parameters `json:"parameters,omitempty"`
	Options    MLOptions   `json:"options"`
}

type MLOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

// StatusError is returned when the inference endpoint answers with a non-200 status.
type StatusError struct {
	Model      string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("ML model %s returned status %d: %s", e.Model, e.StatusCode, e.Body)
}

var ErrEmptyResponse = errors.New("ML model returned no predictions")

// Client calls hosted text-classification models over HTTP.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// CallModel runs model on text and returns its predictions in the order the model gave them.
func (c *Client) CallModel(ctx context.Context, model, text string, params *Parameters) ([]Prediction, error) {
	payloadBytes, err := json.Marshal(MLRequest{
		Inputs:     text,
		Parameters: params,
		Options:    MLOptions{WaitForModel: true},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+model, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling model %s: %w", model, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{Model: model, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding model %s response: %w", model, err)
	}
	preds, err := decodePredictions(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding model %s response: %w", model, err)
	}
	if len(preds) == 0 {
		return nil, ErrEmptyResponse
	}
	return preds, nil
}

// decodePredictions accepts both [[{label,score}...]] (one list per input) and [{label,score}...].
func decodePredictions(raw json.RawMessage) ([]Prediction, error) {
	var nested [][]Prediction
	if err := json.Unmarshal(raw, &nested); err == nil {
		if len(nested) == 0 {
			return nil, nil
		}
		return nested[0], nil
	}
	var flat []Prediction
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, err
	}
	return flat, nil
}
