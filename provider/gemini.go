package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements TextGenerator using the Gemini API.
type GeminiProvider struct {
	client      *genai.Client
	model       string
	temperature float32
	timeout     time.Duration
}

// GeminiConfig holds configuration for the Gemini provider.
type GeminiConfig struct {
	APIKey      string
	Model       string        // default: "gemini-1.5-flash"
	Temperature float32       // default: 0.7
	Timeout     time.Duration // per-call deadline (0 = none)
}

// NewGeminiProvider creates the underlying Gemini client.
func NewGeminiProvider(ctx context.Context, cfg GeminiConfig) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-1.5-flash"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.7
	}

	return &GeminiProvider{
		client:      client,
		model:       model,
		temperature: temperature,
		timeout:     cfg.Timeout,
	}, nil
}

// Generate sends the prompt and returns the concatenated candidate text.
func (p *GeminiProvider) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	// Temperature and system instruction are per request.
	model := p.client.GenerativeModel(p.model)
	temperature := req.Temperature
	if temperature == 0 {
		temperature = p.temperature
	}
	model.SetTemperature(temperature)
	if req.System != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.System)}}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return "", &ProviderError{Provider: "gemini", Message: "generate content failed", Cause: err}
	}

	return responseText(resp)
}

// Close releases the Gemini client.
func (p *GeminiProvider) Close() error {
	return p.client.Close()
}

// responseText joins the text parts of every candidate in order.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", &ProviderError{Provider: "gemini", Message: "empty response"}
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
		return "", &ProviderError{
			Provider: "gemini",
			Message:  "prompt blocked: " + resp.PromptFeedback.BlockReason.String(),
		}
	}
	if len(resp.Candidates) == 0 {
		return "", &ProviderError{Provider: "gemini", Message: "no candidates returned"}
	}

	var b strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
	}

	if b.Len() == 0 {
		return "", &ProviderError{Provider: "gemini", Message: "response has no text", Cause: errEmptyContent}
	}
	return b.String(), nil
}

var errEmptyContent = errors.New("empty content")

var _ TextGenerator = (*GeminiProvider)(nil)
