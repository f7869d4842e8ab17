package dashboard

// OverviewResponse is the role-filtered business overview. Data holds the
// aggregate record after redaction: fields the caller's role may not see are
// absent, not zeroed, so clients must treat absence as "no access".
type OverviewResponse struct {
	BusinessID string         `json:"business_id"`
	View       string         `json:"view"`
	Period     string         `json:"period"` // "YYYY-MM"
	Data       map[string]any `json:"data"`
}

// ActivityItem is one row of the recent-activity feed.
type ActivityItem struct {
	TransactionID string `json:"transaction_id"`
	Type          string `json:"type"`
	Category      string `json:"category"`
	OccurredAt    string `json:"occurred_at"`
}

type ActivityResponse struct {
	BusinessID string         `json:"business_id"`
	Items      []ActivityItem `json:"items"`
}
