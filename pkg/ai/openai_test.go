package ai_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/interview-practice-api/pkg/ai"
)

type capturedRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newGateway(t *testing.T, handler http.HandlerFunc) *ai.OpenAIClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := ai.NewOpenAIClient(ai.OpenAIConfig{
		APIKey:  "test-key",
		BaseURL: server.URL + "/v1",
		Model:   "test-model",
		Logger:  zerolog.Nop(),
	})
	require.NoError(t, err)
	return client
}

func writeCompletion(w http.ResponseWriter, content string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"id":     "chatcmpl-1",
		"object": "chat.completion",
		"choices": []map[string]interface{}{
			{"index": 0, "message": map[string]string{"role": "assistant", "content": content}},
		},
	})
}

func TestNewOpenAIClientRequiresAPIKey(t *testing.T) {
	_, err := ai.NewOpenAIClient(ai.OpenAIConfig{})
	require.Error(t, err)
}

func TestCompleteSendsSystemAndUserMessages(t *testing.T) {
	var captured capturedRequest
	var authHeader, path string
	client := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		authHeader = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&captured)
		writeCompletion(w, "  What is a goroutine?  ")
	})

	content, err := client.Complete(context.Background(), ai.Prompt{System: "sys", User: "usr"})
	require.NoError(t, err)
	require.Equal(t, "  What is a goroutine?  ", content)

	require.Equal(t, "/v1/chat/completions", path)
	require.Equal(t, "Bearer test-key", authHeader)
	require.Equal(t, "test-model", captured.Model)
	require.Len(t, captured.Messages, 2)
	require.Equal(t, "system", captured.Messages[0].Role)
	require.Equal(t, "sys", captured.Messages[0].Content)
	require.Equal(t, "user", captured.Messages[1].Role)
	require.Equal(t, "usr", captured.Messages[1].Content)
}

func TestCompleteClassifiesUpstreamStatus(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{name: "rate limited with api error", status: http.StatusTooManyRequests, body: `{"error":{"message":"slow down","type":"rate_limit"}}`, want: ai.ErrRateLimited},
		{name: "payment required plain text", status: http.StatusPaymentRequired, body: "credits exhausted", want: ai.ErrQuotaExceeded},
		{name: "server error", status: http.StatusInternalServerError, body: "boom", want: ai.ErrUpstreamFailure},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error":{"message":"bad key"}}`, want: ai.ErrUpstreamFailure},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			_, err := client.Complete(context.Background(), ai.Prompt{System: "s", User: "u"})
			require.Error(t, err)
			require.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestCompleteReturnsEmptyCompletionWithoutChoices(t *testing.T) {
	client := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","choices":[]}`))
	})

	_, err := client.Complete(context.Background(), ai.Prompt{System: "s", User: "u"})
	require.ErrorIs(t, err, ai.ErrEmptyCompletion)
}

func TestCompleteTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL + "/v1"
	server.Close()

	client, err := ai.NewOpenAIClient(ai.OpenAIConfig{APIKey: "k", BaseURL: baseURL})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), ai.Prompt{System: "s", User: "u"})
	require.ErrorIs(t, err, ai.ErrUpstreamFailure)
}
