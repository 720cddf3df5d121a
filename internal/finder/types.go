package finder

// SourceTypeOption is one selectable source-type filter. Value is the stable
// identifier used as the filter key and in search payloads; Label is display text.
type SourceTypeOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SourceTypesResponse mirrors GET /api/source-types.
type SourceTypesResponse struct {
	SourceTypes []SourceTypeOption `json:"source_types"`
}

// SearchRequest is the POST /api/search payload. A nil SourceTypes slice
// marshals to JSON null, which the API reads as "no filter"; it must never be
// sent as an empty array.
type SearchRequest struct {
	Query       string   `json:"query"`
	SourceTypes []string `json:"source_types"`
}

// EvidenceCard is one unit of evidence returned for a query.
type EvidenceCard struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Link            string  `json:"link"`
	Snippet         string  `json:"snippet"`
	Description     string  `json:"description"`
	RelationToClaim string  `json:"relation_to_claim"`
	SourceType      string  `json:"source_type"`
	RelevanceScore  float64 `json:"relevance_score"`
}

// SearchResponse mirrors POST /api/search. TotalResults is a server-supplied
// count and is not required to equal len(EvidenceCards); the server may
// truncate. Card order is server-determined and preserved as received.
type SearchResponse struct {
	Query         string         `json:"query"`
	EvidenceCards []EvidenceCard `json:"evidence_cards"`
	TotalResults  int            `json:"total_results"`
}

// HealthResponse mirrors GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Healthy reports whether the service called itself healthy.
func (h HealthResponse) Healthy() bool {
	return h.Status == "healthy"
}
