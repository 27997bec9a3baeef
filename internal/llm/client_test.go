package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteReturnsFirstContentBlock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"content": [{"text": "{\"scenario\": \"recession\"}"}]}`)
	}))
	defer server.Close()

	client, err := NewAnthropicClientWithBaseURL("test-key", "", server.URL)
	require.NoError(t, err)

	text, err := client.Complete(context.Background(), "classify this")
	require.NoError(t, err)
	assert.Equal(t, `{"scenario": "recession"}`, text)
}

func TestCompleteNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error": {"type": "rate_limit_error"}}`)
	}))
	defer server.Close()

	client, err := NewAnthropicClientWithBaseURL("test-key", "", server.URL)
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "classify this")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestCompleteEmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"content": []}`)
	}))
	defer server.Close()

	client, err := NewAnthropicClientWithBaseURL("test-key", "", server.URL)
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "classify this")
	assert.Error(t, err)
}

func TestNewAnthropicClientRequiresKey(t *testing.T) {
	_, err := NewAnthropicClient("", "")
	assert.Error(t, err)
}
