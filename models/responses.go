package models

// Envelope is the JSON body of every API response.
//
// Success responses carry Data; failures carry an optional Errors value with
// field-level details (for example validation failures).
type Envelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
	Timestamp string `json:"timestamp"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}
