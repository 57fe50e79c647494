package api

// ExtractRequest asks for title/content extraction from one article URL.
type ExtractRequest struct {
	URL string `json:"url"`
}

// ExtractResponse carries the extraction outcome. Error is the user-facing
// message when Success is false.
type ExtractResponse struct {
	Success bool   `json:"success"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SummarizeRequest carries either a URL to scrape first, or an already
// extracted title and content.
type SummarizeRequest struct {
	URL     string `json:"url,omitempty"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
}

// SummarizeResponse carries the formatted summary.
type SummarizeResponse struct {
	Success bool   `json:"success"`
	Summary string `json:"summary,omitempty"`
	AI      bool   `json:"ai,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SiteEntry is one supported publisher in the listing endpoint.
type SiteEntry struct {
	Domain string `json:"domain"`
	Name   string `json:"name"`
	URL    string `json:"url"`
}

// SupportedSitesResponse lists the publishers the extractor knows.
type SupportedSitesResponse struct {
	Success bool        `json:"success"`
	Count   int         `json:"count"`
	Sites   []SiteEntry `json:"sites"`
}

// HealthResponse reports liveness and whether an AI credential is loaded.
type HealthResponse struct {
	Status    string `json:"status"`
	HasAPIKey bool   `json:"hasApiKey"`
}
