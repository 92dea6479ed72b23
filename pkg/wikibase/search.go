package wikibase

// SearchResultText is a matched label or description in a specific
// language.
type SearchResultText struct {
	Language string `json:"language"`
	Value    string `json:"value"`
}

// SearchResultMatch describes which part of the entity matched the
// query.
type SearchResultMatch struct {
	Type     string `json:"type"`
	Language string `json:"language"`
	Text     string `json:"text"`
}

// SearchResult is one entity returned by a simple search.
type SearchResult struct {
	ID           string            `json:"id"`
	DisplayLabel *SearchResultText `json:"display-label,omitempty"`
	Description  *SearchResultText `json:"description,omitempty"`
	Match        SearchResultMatch `json:"match"`
}
