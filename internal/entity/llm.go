package entity

// LLMCompleteRequest is the wire request for the text-generation endpoint.
type LLMCompleteRequest struct {
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens"`
}

// LLMCompleteResponse is the wire response for the text-generation endpoint.
type LLMCompleteResponse struct {
	Response string `json:"response"`
}
