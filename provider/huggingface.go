package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HuggingFaceProvider implements FillMasker against the Hugging Face Inference API.
type HuggingFaceProvider struct {
	client *resty.Client
	model  string
}

// HuggingFaceConfig holds configuration for the Hugging Face provider.
type HuggingFaceConfig struct {
	APIKey  string
	Model   string        // default: "bert-base-uncased"
	BaseURL string        // default: "https://api-inference.huggingface.co"
	Timeout time.Duration // default: 30s
}

type huggingFaceError struct {
	Error string `json:"error"`
}

// NewHuggingFaceProvider creates a new Hugging Face provider.
func NewHuggingFaceProvider(cfg HuggingFaceConfig) *HuggingFaceProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api-inference.huggingface.co"
	}
	model := cfg.Model
	if model == "" {
		model = "bert-base-uncased"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	client := resty.New()
	client.SetBaseURL(strings.TrimRight(baseURL, "/"))
	client.SetTimeout(timeout)
	client.SetHeader("Content-Type", "application/json")
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	return &HuggingFaceProvider{client: client, model: model}
}

// FillMask returns the ranked candidates for the mask token in text.
func (p *HuggingFaceProvider) FillMask(ctx context.Context, text string) ([]MaskPrediction, error) {
	if !strings.Contains(text, MaskToken) {
		return nil, &ProviderError{Provider: "huggingface", Message: fmt.Sprintf("input has no %s token", MaskToken)}
	}

	var predictions []MaskPrediction
	var apiErr huggingFaceError

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"inputs": text}).
		SetResult(&predictions).
		SetError(&apiErr).
		Post("/models/" + p.model)
	if err != nil {
		return nil, &ProviderError{Provider: "huggingface", Message: "fill-mask request failed", Cause: err}
	}

	if resp.IsError() {
		msg := apiErr.Error
		if msg == "" {
			msg = strings.TrimSpace(resp.String())
		}
		return nil, &ProviderError{
			Provider:   "huggingface",
			Message:    "fill-mask rejected: " + msg,
			StatusCode: resp.StatusCode(),
		}
	}

	if len(predictions) == 0 {
		return nil, &ProviderError{Provider: "huggingface", Message: "no predictions returned", StatusCode: resp.StatusCode()}
	}

	return predictions, nil
}

var _ FillMasker = (*HuggingFaceProvider)(nil)
