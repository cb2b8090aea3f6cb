package domain

// Sentinels and defaults applied when an imported row lacks a value.
const (
	UnknownCompany     = "Unknown"
	DefaultTitle       = "Position"
	DefaultAppliedDate = "2025-01-01"
	DefaultStatus      = "Applied"
	UnknownStatus      = "Unknown"
)

// HistoryRecord is one past application action, as logged by the user.
// AppliedDate and Status are free-form; they are never parsed or validated.
type HistoryRecord struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	AppliedDate string `json:"applied_date"`
	Status      string `json:"status"`
	URL         string `json:"url"`
	Notes       string `json:"notes"`
}

// HistoryInfo is the most recent interaction with a company.
type HistoryInfo struct {
	LastAppliedDate string `json:"last_applied_date"`
	LastStatus      string `json:"last_status"`
}
