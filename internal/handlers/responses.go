package handlers

// LoginResponse is returned on a successful login
type LoginResponse struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// SessionResponse describes the current session
type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Name          string `json:"name,omitempty"`
	Role          string `json:"role,omitempty"`
}

// BatchResponse is the result of a batch confirm or reject
type BatchResponse struct {
	Affected []int64 `json:"affected"`
	Skipped  int     `json:"skipped"`
}

// ScoringStatusResponse is the response for scoring status changes
type ScoringStatusResponse struct {
	Open bool `json:"open"`
}

// DivisionsResponse lists the divisions with registered athletes
type DivisionsResponse struct {
	Divisions []string `json:"divisions"`
}
