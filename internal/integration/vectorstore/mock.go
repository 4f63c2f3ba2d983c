package vectorstore

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/hrishabhb/PharmAssistAI/internal/entity"
	"go.uber.org/zap"
)

// MockConnector returns canned FDA-label style passages, enabled with
// ENABLE_MOCKS.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

var mockPassages = []entity.Passage{
	{
		Content: "Aspirin is contraindicated in patients with known allergy to nonsteroidal anti-inflammatory drug products and in patients with the syndrome of asthma, rhinitis, and nasal polyps.",
		Metadata: map[string]string{
			"openfda.brand_name":   "Aspirin",
			"openfda.generic_name": "aspirin",
			"openfda.route":        "ORAL",
		},
	},
	{
		Content: "Aspirin can cause fetal harm when administered to a pregnant woman and should be avoided in the third trimester of pregnancy.",
		Metadata: map[string]string{
			"openfda.brand_name": "Aspirin",
			"openfda.route":      "ORAL",
		},
	},
	{
		Content: "Patients with peptic ulcer disease or bleeding disorders should not take aspirin because it increases the risk of gastrointestinal bleeding.",
		Metadata: map[string]string{
			"openfda.brand_name":        "Aspirin",
			"openfda.manufacturer_name": "Example Pharma Inc.",
		},
	},
	{
		Content: "Concomitant use of aspirin with anticoagulants such as warfarin increases bleeding risk; monitor patients closely.",
		Metadata: map[string]string{
			"openfda.brand_name": "Aspirin",
		},
	},
}

func (m *MockConnector) Retrieve(ctx context.Context, question string, k int) ([]entity.Passage, error) {
	ctxzap.Info(ctx, "[MOCK] retrieving passages", zap.Int("top_k", k))

	if k > len(mockPassages) {
		k = len(mockPassages)
	}
	return mockPassages[:k], nil
}
