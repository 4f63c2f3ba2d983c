package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/avast/retry-go/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/hrishabhb/PharmAssistAI/internal/config"
	"github.com/hrishabhb/PharmAssistAI/internal/entity"
	"github.com/hrishabhb/PharmAssistAI/internal/integration/common"
	pkghttp "github.com/hrishabhb/PharmAssistAI/pkg/http"
	"go.uber.org/zap"
)

type Connector struct {
	config    config.LLMConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.LLMConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Complete sends the prompt to the text-generation endpoint and returns the
// completion text. Any transport or HTTP failure resolves to an empty string
// rather than an error; callers detect failure by checking for emptiness.
// Stop sequences, if given, truncate the text at the first occurrence of any
// stop token, scanning tokens in the order supplied.
func (c *Connector) Complete(ctx context.Context, prompt string, maxTokens int, stop []string) string {
	req := &entity.LLMCompleteRequest{
		Prompt:    prompt,
		MaxTokens: maxTokens,
	}

	ctxzap.Debug(ctx, "requesting completion from language model",
		zap.Int("prompt_tokens_estimate", EstimateTokens(prompt)),
		zap.Int("max_tokens", maxTokens),
	)

	var resp entity.LLMCompleteResponse
	opts := append(c.config.Retry.ToRetryOptions(),
		retry.Context(ctx),
		retry.RetryIf(isRetryable),
	)
	err := retry.Do(func() error {
		return c.connector.DoRequest(ctx, http.MethodPost, c.config.CompleteEndpoint, req, &resp)
	}, opts...)
	if err != nil {
		ctxzap.Error(ctx, "language model request failed", zap.Error(err))
		return ""
	}

	return truncateAtStop(resp.Response, stop)
}

// isRetryable retries transport-level failures and server errors; client
// errors are final.
func isRetryable(err error) bool {
	var netErr *pkghttp.NetworkError
	if errors.As(err, &netErr) {
		return true
	}

	var httpErr *pkghttp.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= 500
	}

	return false
}

func truncateAtStop(text string, stop []string) string {
	for _, token := range stop {
		if before, _, found := strings.Cut(text, token); found {
			text = before
		}
	}
	return text
}

// EstimateTokens approximates the token count of text by whitespace-split
// word count. It is a deliberate approximation used only for logging and
// bookkeeping, not a model-exact tokenizer.
func EstimateTokens(text string) int {
	return len(strings.Fields(text))
}
