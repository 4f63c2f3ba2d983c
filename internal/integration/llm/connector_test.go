package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hrishabhb/PharmAssistAI/internal/config"
	"github.com/hrishabhb/PharmAssistAI/internal/entity"
	pkgretry "github.com/hrishabhb/PharmAssistAI/internal/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConnector(baseURL string) *Connector {
	return NewConnector(config.LLMConnectorConfig{
		HTTPClientConfig: config.HTTPClientConfig{
			Url:                   baseURL,
			RequestTimeout:        5 * time.Second,
			ConnTimeout:           time.Second,
			KeepAlive:             time.Second,
			IdleConnTimeout:       time.Second,
			ResponseHeaderTimeout: time.Second,
		},
		CompleteEndpoint: "/complete",
		Retry: pkgretry.RetryConfig{
			Attempts: 1,
			Delay:    time.Millisecond,
			MaxDelay: time.Millisecond,
		},
	}, zap.NewNop())
}

func TestComplete(t *testing.T) {
	t.Run("Returns completion text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/complete", r.URL.Path)

			var req entity.LLMCompleteRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "tell me about aspirin", req.Prompt)
			assert.Equal(t, 500, req.MaxTokens)

			json.NewEncoder(w).Encode(entity.LLMCompleteResponse{
				Response: "Aspirin is an NSAID.",
			})
		}))
		defer server.Close()

		got := testConnector(server.URL).Complete(context.Background(), "tell me about aspirin", 500, nil)

		assert.Equal(t, "Aspirin is an NSAID.", got)
	})

	t.Run("Empty string on server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		got := testConnector(server.URL).Complete(context.Background(), "prompt", 100, nil)

		assert.Equal(t, "", got)
	})

	t.Run("Empty string on transport error", func(t *testing.T) {
		got := testConnector("http://127.0.0.1:1").Complete(context.Background(), "prompt", 100, nil)

		assert.Equal(t, "", got)
	})

	t.Run("Retries server errors", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			if calls == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			json.NewEncoder(w).Encode(entity.LLMCompleteResponse{Response: "recovered"})
		}))
		defer server.Close()

		connector := NewConnector(config.LLMConnectorConfig{
			HTTPClientConfig: config.HTTPClientConfig{
				Url:                   server.URL,
				RequestTimeout:        5 * time.Second,
				ConnTimeout:           time.Second,
				KeepAlive:             time.Second,
				IdleConnTimeout:       time.Second,
				ResponseHeaderTimeout: time.Second,
			},
			CompleteEndpoint: "/complete",
			Retry: pkgretry.RetryConfig{
				Attempts: 2,
				Delay:    time.Millisecond,
				MaxDelay: time.Millisecond,
			},
		}, zap.NewNop())

		got := connector.Complete(context.Background(), "prompt", 100, nil)

		assert.Equal(t, "recovered", got)
		assert.Equal(t, 2, calls)
	})

	t.Run("Does not retry client errors", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		got := testConnector(server.URL).Complete(context.Background(), "prompt", 100, nil)

		assert.Equal(t, "", got)
		assert.Equal(t, 1, calls)
	})
}

func TestTruncateAtStop(t *testing.T) {
	t.Run("Truncates at first stop token", func(t *testing.T) {
		assert.Equal(t, "alpha ", truncateAtStop("alpha STOP beta", []string{"STOP"}))
	})

	t.Run("Tokens applied in supplied order", func(t *testing.T) {
		assert.Equal(t, "a ", truncateAtStop("a X b Y c", []string{"X", "Y"}))
	})

	t.Run("No stop tokens", func(t *testing.T) {
		assert.Equal(t, "unchanged", truncateAtStop("unchanged", nil))
	})

	t.Run("Token absent", func(t *testing.T) {
		assert.Equal(t, "unchanged", truncateAtStop("unchanged", []string{"STOP"}))
	})
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	assert.Equal(t, 0, EstimateTokens("   "))
	assert.Equal(t, 3, EstimateTokens("one two three"))
	assert.Equal(t, 3, EstimateTokens("  one\ttwo\nthree  "))
}
