package insight

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	cl, err := NewClient(&Config{
		Endpoint:    srv.URL,
		APIKey:      "test-key",
		Model:       "test-model",
		MaxTokens:   800,
		Temperature: 0.2,
		HTTPTimeout: time.Second,
	})
	require.NoError(t, err)
	return cl
}

func TestClientGenerate(t *testing.T) {
	var got chatRequest
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  {\"executiveSummary\":\"ok\"}\n"}}]}`))
	})

	text, err := cl.Generate(context.Background(), "system text", "user text")
	require.NoError(t, err)
	assert.Equal(t, `{"executiveSummary":"ok"}`, text)

	assert.Equal(t, "test-model", got.Model)
	assert.Equal(t, 800, got.MaxTokens)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "system text", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "user text", got.Messages[1].Content)
}

func TestClientGenerateErrors(t *testing.T) {
	tests := map[string]http.HandlerFunc{
		"status": func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
		},
		"no choices": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		},
		"garbage": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		},
	}
	for name, h := range tests {
		t.Run(name, func(t *testing.T) {
			cl := newTestClient(t, h)
			_, err := cl.Generate(context.Background(), "s", "p")
			assert.Error(t, err)
		})
	}
}

func TestClientGenerateTimeout(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	})
	cl.client.Timeout = 50 * time.Millisecond

	_, err := cl.Generate(context.Background(), "s", "p")
	assert.Error(t, err)
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient(&Config{Model: "m"})
	assert.Error(t, err)
	_, err = NewClient(&Config{APIKey: "k"})
	assert.Error(t, err)

	cl, err := NewClient(&Config{APIKey: "k", Model: "m"})
	require.NoError(t, err)
	assert.Equal(t, defaultEndpoint, cl.endpoint())
	assert.Equal(t, 60*time.Second, cl.client.Timeout)
}
