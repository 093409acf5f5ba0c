package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ExtractResponse is the final response for an extraction run.
type ExtractResponse struct {
	RunID       string        `json:"run_id"`
	Record      PayslipRecord `json:"record"`
	Quality     TextQuality   `json:"quality"`
	ProcessedAt string        `json:"processed_at"`
}
