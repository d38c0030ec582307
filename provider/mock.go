package provider

import (
	"context"
	"sync"
)

// MockProvider is a scripted provider for tests. It records every input it receives.
type MockProvider struct {
	Response     string           // returned by Generate
	ChatResponse string           // returned by Chat
	StreamChunks []string         // delivered by ChatStream
	Predictions  []MaskPrediction // returned by FillMask

	Err         error // returned by Generate, Chat and ChatStream
	FillMaskErr error // returned by FillMask

	mu             sync.Mutex
	Calls          []string // method names in call order
	Requests       []GenerateRequest
	Conversations  [][]Message
	FillMaskInputs []string
}

// NewMockProvider creates a mock provider with default replies.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Response:     "mock response",
		ChatResponse: "mock chat response",
		StreamChunks: []string{"mock ", "stream"},
		Predictions: []MaskPrediction{
			{Score: 0.61, Token: 7485, TokenStr: "plaintiff", Sequence: "plaintiff"},
			{Score: 0.27, Token: 6204, TokenStr: "defendant", Sequence: "defendant"},
		},
	}
}

// Generate records the request and returns Response or Err.
func (m *MockProvider) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, "Generate")
	m.Requests = append(m.Requests, req)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// Chat records the conversation and returns ChatResponse or Err.
func (m *MockProvider) Chat(ctx context.Context, messages []Message) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, "Chat")
	m.Conversations = append(m.Conversations, messages)
	if m.Err != nil {
		return "", m.Err
	}
	return m.ChatResponse, nil
}

// ChatStream records the conversation and delivers StreamChunks.
func (m *MockProvider) ChatStream(ctx context.Context, messages []Message, onDelta func(string) error) error {
	m.mu.Lock()
	m.Calls = append(m.Calls, "ChatStream")
	m.Conversations = append(m.Conversations, messages)
	chunks, err := m.StreamChunks, m.Err
	m.mu.Unlock()

	if err != nil {
		return err
	}
	for _, chunk := range chunks {
		if err := onDelta(chunk); err != nil {
			return err
		}
	}
	return nil
}

// FillMask records the input and returns Predictions or FillMaskErr.
func (m *MockProvider) FillMask(ctx context.Context, text string) ([]MaskPrediction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, "FillMask")
	m.FillMaskInputs = append(m.FillMaskInputs, text)
	if m.FillMaskErr != nil {
		return nil, m.FillMaskErr
	}
	return m.Predictions, nil
}

// Verify MockProvider implements every provider interface
var (
	_ TextGenerator = (*MockProvider)(nil)
	_ ChatModel     = (*MockProvider)(nil)
	_ FillMasker    = (*MockProvider)(nil)
)
