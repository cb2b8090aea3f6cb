package domain

// RecommendationItem is a posting enriched for one recommendation response.
// ID is only unique within that response. History is nil unless some
// HistoryRecord matches the company.
type RecommendationItem struct {
	ID string `json:"id"`
	Posting
	History *HistoryInfo `json:"history"`
}
