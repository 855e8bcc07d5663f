package models

// ScoreType identifies how a raw score input is interpreted and compared.
type ScoreType string

const (
	ScoreTypeTime   ScoreType = "time"   // lower is better
	ScoreTypeReps   ScoreType = "reps"   // higher is better
	ScoreTypeWeight ScoreType = "weight" // higher is better
)

// Valid reports whether st is one of the known score types.
func (st ScoreType) Valid() bool {
	switch st {
	case ScoreTypeTime, ScoreTypeReps, ScoreTypeWeight:
		return true
	}
	return false
}

// Direction is the comparison direction used when ranking an event.
type Direction string

const (
	Ascending  Direction = "asc"  // lower raw value ranks first
	Descending Direction = "desc" // higher raw value ranks first
)

// Direction returns the comparison direction derived from the score type.
func (st ScoreType) Direction() Direction {
	if st == ScoreTypeTime {
		return Ascending
	}
	return Descending
}

// ScoreStatus is the moderation status of a captured score.
type ScoreStatus string

const (
	StatusPending   ScoreStatus = "pending"
	StatusConfirmed ScoreStatus = "confirmed"
	StatusRejected  ScoreStatus = "rejected"
)

// Role is the privilege tier of an acting identity.
// Tiers are ordered: judge < coach < admin < owner.
type Role int

const (
	RoleJudge Role = iota + 1
	RoleCoach
	RoleAdmin
	RoleOwner
)

// String returns the lowercase role name.
func (r Role) String() string {
	switch r {
	case RoleJudge:
		return "judge"
	case RoleCoach:
		return "coach"
	case RoleAdmin:
		return "admin"
	case RoleOwner:
		return "owner"
	}
	return "unknown"
}

// ParseRole converts a role name to a Role. Returns 0 for unknown names.
func ParseRole(s string) Role {
	switch s {
	case "judge":
		return RoleJudge
	case "coach":
		return RoleCoach
	case "admin":
		return RoleAdmin
	case "owner":
		return RoleOwner
	}
	return 0
}

// AtLeast reports whether r meets the given minimum tier.
func (r Role) AtLeast(min Role) bool {
	return r >= min
}

// Actor is the authenticated identity performing a mutating operation.
// It is passed explicitly into every service call; the core never reads
// identity from ambient state.
type Actor struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"-"`
}

// Athlete represents a registered competitor.
type Athlete struct {
	ID                int64  `json:"id"`
	FullName          string `json:"full_name"`
	Gender            string `json:"gender"`
	Division          string `json:"division"`
	ParticipantNumber int    `json:"participant_number"`
	Email             string `json:"email,omitempty"`
	Phone             string `json:"phone,omitempty"`
	CredentialCode    string `json:"credential_code,omitempty"`
	Active            bool   `json:"active"`
}

// Event represents a single scored workout within the competition.
type Event struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	ScoreType    ScoreType `json:"score_type"`
	DisplayOrder int       `json:"display_order"`
	Active       bool      `json:"active"`
}

// Score is the captured result for one athlete in one event.
// At most one score exists per (athlete, event) pair.
type Score struct {
	ID           int64       `json:"id"`
	AthleteID    int64       `json:"athlete_id"`
	EventID      int64       `json:"event_id"`
	RawValue     float64     `json:"raw_value"`
	DisplayValue string      `json:"display_value"`
	RX           bool        `json:"rx"`
	Status       ScoreStatus `json:"status"`
	RejectReason string      `json:"reject_reason,omitempty"`
	EvidenceRef  string      `json:"evidence_ref,omitempty"`
	Notes        string      `json:"notes,omitempty"`
	ScoredBy     string      `json:"scored_by,omitempty"`
	ConfirmedBy  string      `json:"confirmed_by,omitempty"`
	CreatedAt    string      `json:"created_at,omitempty"`
	UpdatedAt    string      `json:"updated_at,omitempty"`
}

// AuditAction tags a score audit entry.
type AuditAction string

const (
	AuditCreated   AuditAction = "created"
	AuditUpdated   AuditAction = "updated"
	AuditConfirmed AuditAction = "confirmed"
	AuditRejected  AuditAction = "rejected"
)

// ScoreAudit is an append-only record of one score state transition.
// Audit rows survive deletion of the score they reference.
type ScoreAudit struct {
	ID        int64                  `json:"id"`
	ScoreID   int64                  `json:"score_id"`
	Action    AuditAction            `json:"action"`
	OldValues map[string]interface{} `json:"old_values,omitempty"`
	NewValues map[string]interface{} `json:"new_values,omitempty"`
	ActorID   int64                  `json:"actor_id"`
	ActorName string                 `json:"actor_name"`
	CreatedAt string                 `json:"created_at"`
}

// WSMessage represents a WebSocket message pushed to leaderboard clients.
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}
