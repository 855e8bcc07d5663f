package repository

import (
	"context"

	"github.com/wodboard/wodboard/internal/models"
)

// AthleteRepository defines athlete data operations
type AthleteRepository interface {
	ListAthletes(ctx context.Context) ([]models.Athlete, error)
	ListAthletesByDivision(ctx context.Context, division string) ([]models.Athlete, error)
	GetAthlete(ctx context.Context, id int64) (*models.Athlete, error)
	CreateAthlete(ctx context.Context, a models.Athlete) (int64, int, error)
	UpdateAthlete(ctx context.Context, id int64, a models.Athlete) error
	DeleteAthlete(ctx context.Context, id int64) error
	ListDivisions(ctx context.Context) ([]string, error)
}

// EventRepository defines event data operations
type EventRepository interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	ListActiveEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, id int64) (*models.Event, error)
	CreateEvent(ctx context.Context, e models.Event) (int64, error)
	UpdateEvent(ctx context.Context, id int64, e models.Event) error
	DeleteEvent(ctx context.Context, id int64) error
}

// SaveScoreParams carries one score submission into the transactional upsert.
type SaveScoreParams struct {
	AthleteID   int64
	EventID     int64
	RawValue    float64
	Display     string
	RX          bool
	EvidenceRef string
	Notes       string
	// Overwrite permits replacing an existing row; OverwriteConfirmed
	// additionally permits replacing a row already confirmed.
	Overwrite          bool
	OverwriteConfirmed bool
	Actor              models.Actor
}

// SaveScoreResult reports the outcome of a score upsert.
type SaveScoreResult struct {
	Score    models.Score
	Created  bool
	Previous *models.Score // prior row state when overwritten
}

// ScoreRepository defines score data operations. Every mutating method runs
// its guard checks, the write, and the matching audit insert in one
// transaction, so a disallowed transition never partially commits.
type ScoreRepository interface {
	GetScore(ctx context.Context, id int64) (*models.Score, error)
	GetScoreByAthleteEvent(ctx context.Context, athleteID, eventID int64) (*models.Score, error)
	SaveScore(ctx context.Context, p SaveScoreParams) (*SaveScoreResult, error)
	ConfirmScores(ctx context.Context, ids []int64, actor models.Actor) ([]int64, error)
	RejectScores(ctx context.Context, ids []int64, reason string, actor models.Actor) ([]int64, error)
	DeleteScore(ctx context.Context, id int64) error
	ListPendingScores(ctx context.Context) ([]PendingScoreRow, error)
	ListScoresForLeaderboard(ctx context.Context, division string, includePending bool) ([]LeaderboardScoreRow, error)
}

// AuditRepository defines score audit log operations. Audit rows are
// append-only and never cascade-deleted with their score.
type AuditRepository interface {
	ListAuditsForScore(ctx context.Context, scoreID int64) ([]models.ScoreAudit, error)
	ListRecentAudits(ctx context.Context, limit int) ([]models.ScoreAudit, error)
}

// SettingsRepository defines settings data operations
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	GetCompetitionStats(ctx context.Context) (map[string]interface{}, error)
}

// FullRepository combines all repository interfaces
// Use this when a service needs access to multiple domains
type FullRepository interface {
	AthleteRepository
	EventRepository
	ScoreRepository
	AuditRepository
	SettingsRepository
}

// Ensure Repository implements all interfaces
var _ FullRepository = (*Repository)(nil)
