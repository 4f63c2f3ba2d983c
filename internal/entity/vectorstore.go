package entity

// VectorSearchRequest asks the similarity-search service for the top-k
// passages most similar to the query.
type VectorSearchRequest struct {
	Query      string `json:"query"`
	Collection string `json:"collection_name,omitempty"`
	TopK       int    `json:"top_k"`
}

// VectorSearchResult is one ranked hit as returned by the service. Metadata
// values may be strings, numbers, booleans or lists depending on what was
// stored at index time.
type VectorSearchResult struct {
	ID         string         `json:"id,omitempty"`
	Collection string         `json:"collection_name,omitempty"`
	Content    string         `json:"content"`
	Score      float64        `json:"score,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// VectorSearchResponse is the ordered result list, most similar first.
type VectorSearchResponse struct {
	Results []VectorSearchResult `json:"results"`
}
