package pubmed

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/hrishabhb/PharmAssistAI/internal/entity"
	"go.uber.org/zap"
)

// MockConnector returns canned citations, enabled with ENABLE_MOCKS.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

var mockPapers = []entity.RelatedPaper{
	{
		Citation: "Smith J, Doe A. Aspirin and gastrointestinal bleeding: a systematic review. J Clin Pharmacol. 2021;61(4):432-441.",
		URL:      "https://pubmed.ncbi.nlm.nih.gov/00000001/",
	},
	{
		Citation: "Lee K, Patel R. NSAID contraindications in cardiovascular patients. Am J Med. 2020;133(9):1012-1020.",
		URL:      "https://pubmed.ncbi.nlm.nih.gov/00000002/",
	},
	{
		Citation: "Garcia M. Reye's syndrome and salicylate use in children. Pediatr Drugs. 2019;21(2):89-97.",
		URL:      "https://pubmed.ncbi.nlm.nih.gov/00000003/",
	},
}

func (m *MockConnector) Search(ctx context.Context, query string, maxResults int) []entity.RelatedPaper {
	ctxzap.Info(ctx, "[MOCK] searching related papers", zap.String("query", query))

	if maxResults > len(mockPapers) {
		maxResults = len(mockPapers)
	}
	return mockPapers[:maxResults]
}
