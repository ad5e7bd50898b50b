package server

// StartAnalysisRequest is the payload for starting a page analysis.
type StartAnalysisRequest struct {
	URL     string `json:"url" example:"https://example.com"`
	Suggest bool   `json:"suggest" example:"true"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// ErrorResponse is a uniform error payload returned by the API.
type ErrorResponse struct {
	Error string `json:"error" example:"not found"`
}
