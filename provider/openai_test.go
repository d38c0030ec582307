package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedChatRequest struct {
	Model    string `json:"model"`
	Stream   bool   `json:"stream"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newOpenAITestServer(t *testing.T, handler func(w http.ResponseWriter, req capturedChatRequest)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req capturedChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		handler(w, req)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAIGenerate(t *testing.T) {
	var got capturedChatRequest
	srv := newOpenAITestServer(t, func(w http.ResponseWriter, req capturedChatRequest) {
		got = req
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"c1","object":"chat.completion","created":1,"model":"gpt-4o-mini",
			"choices":[{"index":0,"message":{"role":"assistant","content":"Draft ready."},"finish_reason":"stop"}]}`)
	})

	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL + "/v1"})
	text, err := p.Generate(context.Background(), GenerateRequest{System: "be brief", Prompt: "write an NDA"})
	require.NoError(t, err)
	assert.Equal(t, "Draft ready.", text)

	assert.Equal(t, "gpt-4o-mini", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "be brief", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "write an NDA", got.Messages[1].Content)
}

func TestOpenAIGenerateWithoutSystem(t *testing.T) {
	var got capturedChatRequest
	srv := newOpenAITestServer(t, func(w http.ResponseWriter, req capturedChatRequest) {
		got = req
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[{"index":0,"message":{"role":"assistant","content":"ok"}}]}`)
	})

	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL + "/v1", Model: "gpt-4o"})
	_, err := p.Generate(context.Background(), GenerateRequest{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", got.Model)
	require.Len(t, got.Messages, 1)
}

func TestOpenAIChatNoChoices(t *testing.T) {
	srv := newOpenAITestServer(t, func(w http.ResponseWriter, req capturedChatRequest) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[]}`)
	})

	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL + "/v1"})
	_, err := p.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}})

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "openai", pe.Provider)
}

func TestOpenAIChatAPIError(t *testing.T) {
	srv := newOpenAITestServer(t, func(w http.ResponseWriter, req capturedChatRequest) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"invalid api key","type":"invalid_request_error"}}`)
	})

	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL + "/v1"})
	_, err := p.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}})

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, http.StatusUnauthorized, pe.StatusCode)
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestOpenAIChatStream(t *testing.T) {
	var got capturedChatRequest
	srv := newOpenAITestServer(t, func(w http.ResponseWriter, req capturedChatRequest) {
		got = req
		w.Header().Set("Content-Type", "text/event-stream")
		for _, part := range []string{"You ", "have ", "rights."} {
			fmt.Fprintf(w, "data: {\"id\":\"s\",\"object\":\"chat.completion.chunk\",\"choices\":[{\"index\":0,\"delta\":{\"content\":%q}}]}\n\n", part)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	})

	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL + "/v1"})

	var b strings.Builder
	err := p.ChatStream(context.Background(), []Message{{Role: "user", Content: "my rights?"}}, func(delta string) error {
		b.WriteString(delta)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "You have rights.", b.String())
	assert.True(t, got.Stream)
}

func TestOpenAIChatStreamCallbackError(t *testing.T) {
	srv := newOpenAITestServer(t, func(w http.ResponseWriter, req capturedChatRequest) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"choices\":[{\"index\":0,\"delta\":{\"content\":\"a\"}}]}\n\n")
		fmt.Fprint(w, "data: {\"choices\":[{\"index\":0,\"delta\":{\"content\":\"b\"}}]}\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	})

	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL + "/v1"})

	stop := errors.New("client gone")
	calls := 0
	err := p.ChatStream(context.Background(), []Message{{Role: "user", Content: "x"}}, func(string) error {
		calls++
		return stop
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}
