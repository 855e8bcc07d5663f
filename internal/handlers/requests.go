package handlers

// LoginRequest is a session login: the password decides the role, the name
// identifies the person in the audit trail
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// ScoreConfirmRequest is a batch confirm of pending scores
type ScoreConfirmRequest struct {
	ScoreIDs []int64 `json:"score_ids"`
}

// ScoreRejectRequest is a batch reject of pending scores with a reason
type ScoreRejectRequest struct {
	ScoreIDs []int64 `json:"score_ids"`
	Reason   string  `json:"reason"`
}

// ScoringStatusRequest opens or closes score submission
type ScoringStatusRequest struct {
	Open bool `json:"open"`
}

// SettingRequest sets one arbitrary setting
type SettingRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
