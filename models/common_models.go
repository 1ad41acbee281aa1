package models

// Response status constants
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse is the standard envelope wrapped around every endpoint response
type APIResponse struct {
	Success        bool        `json:"success"`
	Data           interface{} `json:"data,omitempty"`
	Message        string      `json:"message,omitempty"`
	Error          string      `json:"error,omitempty"`
	ProcessingTime float64     `json:"processing_time,omitempty"`
}

// HealthStatus represents the /health endpoint payload
type HealthStatus struct {
	Status     string `json:"status"`
	Configured bool   `json:"configured"`
	Reachable  bool   `json:"reachable"`
	Model      string `json:"model"`
	APIKey     string `json:"api_key,omitempty"`
	Message    string `json:"message,omitempty"`
	Timestamp  string `json:"timestamp"`
}
