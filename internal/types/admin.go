package types

// MockAPICallOffset is added to the activity counts reported as api_calls_today.
const MockAPICallOffset = 42

// AdminStats is the dashboard summary served to administrators.
type AdminStats struct {
	TotalUsers       int64 `json:"total_users"`
	TotalProjects    int64 `json:"total_projects"`
	TotalContent     int64 `json:"total_generated_content"`
	TotalReports     int64 `json:"total_sentiment_reports"`
	TotalChats       int64 `json:"total_chat_messages"`
	TotalBrandAssets int64 `json:"total_brand_assets"`
	APICallsToday    int64 `json:"api_calls_today"`
}

// ComputeAPICalls fills APICallsToday from the activity counts.
func (s *AdminStats) ComputeAPICalls() {
	s.APICallsToday = s.TotalContent + s.TotalReports + s.TotalChats + MockAPICallOffset
}

// MessageResponse is a plain acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// SuspendResponse reports the account state after an admin toggled it.
type SuspendResponse struct {
	Message  string `json:"message"`
	IsActive bool   `json:"is_active"`
}
