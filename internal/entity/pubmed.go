package entity

import "encoding/json"

// PubMedSearchResponse is the esearch (retmode=json) response envelope.
type PubMedSearchResponse struct {
	Result PubMedSearchResult `json:"esearchresult"`
}

type PubMedSearchResult struct {
	IDList []string `json:"idlist"`
}

// PubMedSummaryResponse is the esummary (retmode=json) response envelope.
type PubMedSummaryResponse struct {
	Result PubMedSummaryResult `json:"result"`
}

// PubMedSummaryResult holds per-article summaries. The E-utilities JSON keys
// each summary by its PMID next to a "uids" array, so a custom unmarshaler
// splits the two.
type PubMedSummaryResult struct {
	UIDs []string
	Docs map[string]PubMedDocSummary
}

type PubMedDocSummary struct {
	Title   string         `json:"title"`
	Source  string         `json:"source"`
	Authors []PubMedAuthor `json:"authors"`
}

type PubMedAuthor struct {
	Name string `json:"name"`
}

func (r *PubMedSummaryResult) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if uids, ok := raw["uids"]; ok {
		if err := json.Unmarshal(uids, &r.UIDs); err != nil {
			return err
		}
		delete(raw, "uids")
	}

	r.Docs = make(map[string]PubMedDocSummary, len(raw))
	for pmid, doc := range raw {
		var summary PubMedDocSummary
		if err := json.Unmarshal(doc, &summary); err != nil {
			// Non-summary bookkeeping keys (e.g. warnings) are skipped.
			continue
		}
		r.Docs[pmid] = summary
	}

	return nil
}
