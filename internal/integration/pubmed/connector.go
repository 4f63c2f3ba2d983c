package pubmed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/avast/retry-go/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/hrishabhb/PharmAssistAI/internal/config"
	"github.com/hrishabhb/PharmAssistAI/internal/entity"
	"github.com/hrishabhb/PharmAssistAI/internal/integration/common"
	pkghttp "github.com/hrishabhb/PharmAssistAI/pkg/http"
	"go.uber.org/zap"
)

const articleURLFormat = "https://pubmed.ncbi.nlm.nih.gov/%s/"

type Connector struct {
	config    config.PubMedConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.PubMedConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Search looks up at most maxResults articles related to the query and
// formats each as a citation with its article URL. It never returns an
// error: an empty search resolves to the fixed "no related papers" entry and
// any service failure to the fixed "error occurred" entry.
func (c *Connector) Search(ctx context.Context, query string, maxResults int) []entity.RelatedPaper {
	ids, err := c.searchIDs(ctx, query, maxResults)
	if err != nil {
		ctxzap.Error(ctx, "pubmed search failed", zap.Error(err))
		return errorFallback()
	}

	if len(ids) == 0 {
		ctxzap.Info(ctx, "no related papers found", zap.String("query", query))
		return noResultsFallback()
	}

	papers, err := c.fetchSummaries(ctx, ids)
	if err != nil {
		ctxzap.Error(ctx, "pubmed summary fetch failed", zap.Error(err))
		return errorFallback()
	}

	if len(papers) == 0 {
		return noResultsFallback()
	}

	ctxzap.Info(ctx, "related papers found", zap.Int("count", len(papers)))
	return papers
}

// searchIDs runs esearch and returns the matching PMIDs, most relevant
// first.
func (c *Connector) searchIDs(ctx context.Context, query string, maxResults int) ([]string, error) {
	params := c.baseParams()
	params.Set("db", "pubmed")
	params.Set("term", query)
	params.Set("retmax", strconv.Itoa(maxResults))

	var resp entity.PubMedSearchResponse
	err := c.doWithRetry(ctx, c.config.SearchEndpoint, params, &resp)
	if err != nil {
		return nil, fmt.Errorf("esearch: %w", err)
	}

	return resp.Result.IDList, nil
}

// fetchSummaries runs esummary for the given PMIDs and formats citations,
// preserving the id order.
func (c *Connector) fetchSummaries(ctx context.Context, ids []string) ([]entity.RelatedPaper, error) {
	params := c.baseParams()
	params.Set("db", "pubmed")
	params.Set("id", strings.Join(ids, ","))

	var resp entity.PubMedSummaryResponse
	err := c.doWithRetry(ctx, c.config.SummaryEndpoint, params, &resp)
	if err != nil {
		return nil, fmt.Errorf("esummary: %w", err)
	}

	uids := resp.Result.UIDs
	if len(uids) == 0 {
		uids = ids
	}

	papers := make([]entity.RelatedPaper, 0, len(uids))
	for _, pmid := range uids {
		doc, ok := resp.Result.Docs[pmid]
		if !ok {
			continue
		}

		papers = append(papers, entity.RelatedPaper{
			Citation: formatCitation(doc),
			URL:      fmt.Sprintf(articleURLFormat, pmid),
		})
	}

	return papers, nil
}

func (c *Connector) doWithRetry(ctx context.Context, endpoint string, params url.Values, respBody any) error {
	opts := append(c.config.Retry.ToRetryOptions(),
		retry.Context(ctx),
		retry.RetryIf(isRetryable),
	)
	return retry.Do(func() error {
		return c.connector.DoRequest(ctx, http.MethodGet, endpoint, nil, respBody, pkghttp.WithQuery(params))
	}, opts...)
}

// baseParams carries the E-utilities contact identifier and optional API key
// on every request, as NCBI usage policy asks.
func (c *Connector) baseParams() url.Values {
	params := url.Values{}
	params.Set("retmode", "json")
	params.Set("email", c.config.Email)
	if c.config.APIKey != "" {
		params.Set("api_key", c.config.APIKey)
	}
	return params
}

func isRetryable(err error) bool {
	var netErr *pkghttp.NetworkError
	if errors.As(err, &netErr) {
		return true
	}

	var httpErr *pkghttp.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= 500 || httpErr.StatusCode == http.StatusTooManyRequests
	}

	return false
}

// formatCitation renders "authors. title. venue" from a summary record.
func formatCitation(doc entity.PubMedDocSummary) string {
	authors := make([]string, 0, len(doc.Authors))
	for _, author := range doc.Authors {
		if author.Name != "" {
			authors = append(authors, author.Name)
		}
	}

	return fmt.Sprintf("%s. %s. %s", strings.Join(authors, ", "), doc.Title, doc.Source)
}

func noResultsFallback() []entity.RelatedPaper {
	return []entity.RelatedPaper{{Citation: entity.NoRelatedPapersMessage}}
}

func errorFallback() []entity.RelatedPaper {
	return []entity.RelatedPaper{{Citation: entity.PaperSearchErrorMessage}}
}
