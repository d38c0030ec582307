// Package provider adapts external generative-AI and inference services.
package provider

import (
	"context"
	"fmt"
)

// Message is one chat turn sent to a chat model
type Message struct {
	Role    string
	Content string
}

// GenerateRequest is a single-prompt completion request
type GenerateRequest struct {
	System      string  // optional system instruction
	Prompt      string  // user prompt, sent as is
	Temperature float32 // 0 uses the provider default
}

// MaskPrediction is one ranked candidate for a [MASK] slot
type MaskPrediction struct {
	Score    float64 `json:"score"`
	Token    int     `json:"token"`
	TokenStr string  `json:"token_str"`
	Sequence string  `json:"sequence"`
}

// MaskToken is the mask placeholder understood by BERT-style fill-mask models
const MaskToken = "[MASK]"

// TextGenerator produces text for a single prompt
type TextGenerator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// ChatModel continues a conversation
type ChatModel interface {
	Chat(ctx context.Context, messages []Message) (string, error)
	// ChatStream calls onDelta for every content fragment as it arrives.
	// An error returned by onDelta stops the stream and is returned.
	ChatStream(ctx context.Context, messages []Message, onDelta func(string) error) error
}

// FillMasker ranks candidates for the mask token in text
type FillMasker interface {
	FillMask(ctx context.Context, text string) ([]MaskPrediction, error)
}

// ProviderError indicates a failed call to an external provider
type ProviderError struct {
	Provider   string
	Message    string
	StatusCode int // HTTP status when the provider answered, else 0
	Cause      error
}

func (e *ProviderError) Error() string {
	msg := fmt.Sprintf("%s provider error: %s", e.Provider, e.Message)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}
