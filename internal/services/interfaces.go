package services

import (
	"context"

	"github.com/wodboard/wodboard/internal/models"
	"github.com/wodboard/wodboard/internal/repository"
)

// AthleteServicer defines the interface for athlete operations
type AthleteServicer interface {
	ListAthletes(ctx context.Context) ([]models.Athlete, error)
	ListAthletesByDivision(ctx context.Context, division string) ([]models.Athlete, error)
	GetAthlete(ctx context.Context, id int64) (*models.Athlete, error)
	ListDivisions(ctx context.Context) ([]string, error)
	RegisterAthlete(ctx context.Context, in AthleteInput, actor models.Actor) (*models.Athlete, error)
	UpdateAthlete(ctx context.Context, id int64, in AthleteInput, actor models.Actor) error
	DeleteAthlete(ctx context.Context, id int64, actor models.Actor) error
}

// EventServicer defines the interface for event operations
type EventServicer interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	ListActiveEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, id int64) (*models.Event, error)
	CreateEvent(ctx context.Context, in EventInput, actor models.Actor) (*models.Event, error)
	UpdateEvent(ctx context.Context, id int64, in EventInput, actor models.Actor) error
	DeleteEvent(ctx context.Context, id int64, actor models.Actor) error
}

// ScoreServicer defines the interface for score lifecycle operations
type ScoreServicer interface {
	SubmitScore(ctx context.Context, sub ScoreSubmission, actor models.Actor) (*models.Score, error)
	ConfirmScores(ctx context.Context, ids []int64, actor models.Actor) ([]int64, error)
	RejectScores(ctx context.Context, ids []int64, reason string, actor models.Actor) ([]int64, error)
	DeleteScore(ctx context.Context, id int64, actor models.Actor) error
	GetScore(ctx context.Context, id int64) (*models.Score, error)
	ListPendingScores(ctx context.Context) ([]repository.PendingScoreRow, error)
	AuditsForScore(ctx context.Context, scoreID int64) ([]models.ScoreAudit, error)
	RecentAudits(ctx context.Context, limit int) ([]models.ScoreAudit, error)
	SetBroadcaster(b Broadcaster)
}

// LeaderboardServicer defines the interface for leaderboard computation
type LeaderboardServicer interface {
	GetLeaderboard(ctx context.Context, division string, includePending bool) (*Leaderboard, error)
	GetPodium(ctx context.Context, division string) ([]PodiumEntry, error)
	GetStats(ctx context.Context) (map[string]interface{}, error)
}

// SettingsServicer defines the interface for settings operations
type SettingsServicer interface {
	IsScoringOpen(ctx context.Context) (bool, error)
	SetScoringOpen(ctx context.Context, open bool, actor models.Actor) error
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string, actor models.Actor) error
	SetBroadcaster(b Broadcaster)
}

// Ensure concrete types implement interfaces
var (
	_ AthleteServicer     = (*AthleteService)(nil)
	_ EventServicer       = (*EventService)(nil)
	_ ScoreServicer       = (*ScoreService)(nil)
	_ LeaderboardServicer = (*LeaderboardService)(nil)
	_ SettingsServicer    = (*SettingsService)(nil)
)
