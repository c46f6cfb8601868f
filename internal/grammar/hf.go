package grammar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HFProvider implements the Corrector interface against the Hugging Face
// Inference API (text2text-generation task).
type HFProvider struct {
	baseURL    string
	httpClient *http.Client
	config     Config
}

// Hugging Face Inference API structures
type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
	Options    hfOptions    `json:"options"`
}

type hfParameters struct {
	MaxLength     int  `json:"max_length,omitempty"`
	NumBeams      int  `json:"num_beams,omitempty"`
	EarlyStopping bool `json:"early_stopping,omitempty"`
}

type hfOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type hfGeneration struct {
	GeneratedText string `json:"generated_text"`
}

type hfError struct {
	Error string `json:"error"`
}

// NewHFProvider creates a new Hugging Face Inference API provider.
func NewHFProvider(config Config) (*HFProvider, error) {
	if config.Model == "" {
		return nil, fmt.Errorf("hf model must be specified (e.g., prithivida/grammar_error_correcter_v1)")
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "https://api-inference.huggingface.co"
	}

	timeout := time.Duration(config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &HFProvider{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: config,
	}, nil
}

// Name returns the provider name
func (p *HFProvider) Name() string {
	return "hf"
}

// IsAvailable checks if the hosted model is loaded and reachable
func (p *HFProvider) IsAvailable(ctx context.Context) bool {
	url := fmt.Sprintf("%s/status/%s", p.baseURL, p.config.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	p.authorize(req)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	return resp.StatusCode == http.StatusOK
}

// Correct runs the gec task against the hosted model. The input is prefixed
// with the fixed task marker; decoding uses beam search with early stopping.
func (p *HFProvider) Correct(ctx context.Context, text string) (string, error) {
	maxLength := p.config.MaxLength
	if maxLength == 0 {
		maxLength = 128
	}
	numBeams := p.config.NumBeams
	if numBeams == 0 {
		numBeams = 5
	}

	apiReq := hfRequest{
		Inputs: TaskPrefix + text,
		Parameters: hfParameters{
			MaxLength:     maxLength,
			NumBeams:      numBeams,
			EarlyStopping: true,
		},
		Options: hfOptions{
			WaitForModel: true,
		},
	}

	generations, err := p.makeRequest(ctx, apiReq)
	if err != nil {
		return "", fmt.Errorf("hf API error: %w", err)
	}

	if len(generations) == 0 {
		return "", fmt.Errorf("no generation returned by model %s", p.config.Model)
	}

	return strings.TrimSpace(generations[0].GeneratedText), nil
}

// makeRequest makes an HTTP request to the inference endpoint
func (p *HFProvider) makeRequest(ctx context.Context, apiReq hfRequest) ([]hfGeneration, error) {
	body, err := json.Marshal(apiReq)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", p.baseURL, p.config.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	p.authorize(httpReq)

	httpResp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		var apiErr hfError
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("API error (%d): %s", httpResp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("API error (%d): %s", httpResp.StatusCode, string(respBody))
	}

	var generations []hfGeneration
	if err := json.Unmarshal(respBody, &generations); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return generations, nil
}

func (p *HFProvider) authorize(req *http.Request) {
	if p.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.config.APIKey)
	}
}
