package vectorstore

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/hrishabhb/PharmAssistAI/internal/config"
	"github.com/hrishabhb/PharmAssistAI/internal/entity"
	"github.com/hrishabhb/PharmAssistAI/internal/integration/common"
	pkghttp "github.com/hrishabhb/PharmAssistAI/pkg/http"
	"go.uber.org/zap"
)

// Metadata keys under which ambient store identifiers are surfaced when the
// service reports them.
const (
	metadataPointIDKey    = "qdrant_point_id"
	metadataCollectionKey = "qdrant_collection_name"
)

type Connector struct {
	config    config.VectorStoreConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.VectorStoreConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Retrieve returns the top-k passages most similar to the question, in
// similarity order. Ranking is delegated entirely to the service; this
// method only reshapes its native results into passages. Errors propagate so
// the assembler can degrade.
func (c *Connector) Retrieve(ctx context.Context, question string, k int) ([]entity.Passage, error) {
	req := &entity.VectorSearchRequest{
		Query:      question,
		Collection: c.config.Collection,
		TopK:       k,
	}

	ctxzap.Debug(ctx, "searching vector store", zap.Int("top_k", k))

	var resp entity.VectorSearchResponse
	err := c.connector.DoRequest(ctx, http.MethodPost, c.config.SearchEndpoint, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("vector store search: %w", err)
	}

	passages := make([]entity.Passage, 0, len(resp.Results))
	for _, result := range resp.Results {
		metadata := flattenMetadata(result.Metadata)
		if result.ID != "" {
			metadata[metadataPointIDKey] = result.ID
		}
		if result.Collection != "" {
			metadata[metadataCollectionKey] = result.Collection
		}

		passages = append(passages, entity.Passage{
			Content:  result.Content,
			Metadata: metadata,
		})
	}

	ctxzap.Debug(ctx, "passages retrieved", zap.Int("count", len(passages)))

	return passages, nil
}

// flattenMetadata converts the service's loosely typed metadata into the
// string map carried on a passage. Lists are joined with ", " the way the
// index stores multi-valued label fields.
func flattenMetadata(metadata map[string]any) map[string]string {
	flattened := make(map[string]string, len(metadata))
	for key, value := range metadata {
		flattened[key] = stringifyMetadataValue(value)
	}
	return flattened
}

func stringifyMetadataValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, stringifyMetadataValue(item))
		}
		return strings.Join(parts, ", ")
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
