package mock

import (
	"context"

	"github.com/wodboard/wodboard/internal/models"
	"github.com/wodboard/wodboard/internal/repository"
)

// Repository wraps a real repository and allows injecting errors for testing.
// This provides a flexible way to test error paths without complex database manipulation.
//
// Usage:
//
//	realRepo := testutil.NewTestRepository(t)
//	mockRepo := mock.NewRepository(realRepo)
//	mockRepo.SaveScoreError = errors.New("database error")
//	svc := services.NewScoreService(log, mockRepo)
//	_, err := svc.SubmitScore(ctx, params, judge)
//	// err will now contain the injected error
type Repository struct {
	repository.FullRepository

	// ===== Athlete Errors =====
	ListAthletesError           error
	ListAthletesByDivisionError error
	GetAthleteError             error
	CreateAthleteError          error
	UpdateAthleteError          error
	DeleteAthleteError          error
	ListDivisionsError          error

	// ===== Event Errors =====
	ListEventsError       error
	ListActiveEventsError error
	GetEventError         error
	CreateEventError      error
	UpdateEventError      error
	DeleteEventError      error

	// ===== Score Errors =====
	GetScoreError                error
	GetScoreByAthleteEventError  error
	SaveScoreError               error
	ConfirmScoresError           error
	RejectScoresError            error
	DeleteScoreError             error
	ListPendingScoresError       error
	ListScoresForLeaderboardError error

	// ===== Audit Errors =====
	ListAuditsForScoreError error
	ListRecentAuditsError   error

	// ===== Settings Errors =====
	GetSettingError         error
	SetSettingError         error
	GetCompetitionStatsError error
}

// NewRepository creates a mock repository wrapping a real one
func NewRepository(real repository.FullRepository) *Repository {
	return &Repository{
		FullRepository: real,
	}
}

// ===== Athlete Methods =====

func (m *Repository) ListAthletes(ctx context.Context) ([]models.Athlete, error) {
	if m.ListAthletesError != nil {
		return nil, m.ListAthletesError
	}
	return m.FullRepository.ListAthletes(ctx)
}

func (m *Repository) ListAthletesByDivision(ctx context.Context, division string) ([]models.Athlete, error) {
	if m.ListAthletesByDivisionError != nil {
		return nil, m.ListAthletesByDivisionError
	}
	return m.FullRepository.ListAthletesByDivision(ctx, division)
}

func (m *Repository) GetAthlete(ctx context.Context, id int64) (*models.Athlete, error) {
	if m.GetAthleteError != nil {
		return nil, m.GetAthleteError
	}
	return m.FullRepository.GetAthlete(ctx, id)
}

func (m *Repository) CreateAthlete(ctx context.Context, a models.Athlete) (int64, int, error) {
	if m.CreateAthleteError != nil {
		return 0, 0, m.CreateAthleteError
	}
	return m.FullRepository.CreateAthlete(ctx, a)
}

func (m *Repository) UpdateAthlete(ctx context.Context, id int64, a models.Athlete) error {
	if m.UpdateAthleteError != nil {
		return m.UpdateAthleteError
	}
	return m.FullRepository.UpdateAthlete(ctx, id, a)
}

func (m *Repository) DeleteAthlete(ctx context.Context, id int64) error {
	if m.DeleteAthleteError != nil {
		return m.DeleteAthleteError
	}
	return m.FullRepository.DeleteAthlete(ctx, id)
}

func (m *Repository) ListDivisions(ctx context.Context) ([]string, error) {
	if m.ListDivisionsError != nil {
		return nil, m.ListDivisionsError
	}
	return m.FullRepository.ListDivisions(ctx)
}

// ===== Event Methods =====

func (m *Repository) ListEvents(ctx context.Context) ([]models.Event, error) {
	if m.ListEventsError != nil {
		return nil, m.ListEventsError
	}
	return m.FullRepository.ListEvents(ctx)
}

func (m *Repository) ListActiveEvents(ctx context.Context) ([]models.Event, error) {
	if m.ListActiveEventsError != nil {
		return nil, m.ListActiveEventsError
	}
	return m.FullRepository.ListActiveEvents(ctx)
}

func (m *Repository) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	if m.GetEventError != nil {
		return nil, m.GetEventError
	}
	return m.FullRepository.GetEvent(ctx, id)
}

func (m *Repository) CreateEvent(ctx context.Context, e models.Event) (int64, error) {
	if m.CreateEventError != nil {
		return 0, m.CreateEventError
	}
	return m.FullRepository.CreateEvent(ctx, e)
}

func (m *Repository) UpdateEvent(ctx context.Context, id int64, e models.Event) error {
	if m.UpdateEventError != nil {
		return m.UpdateEventError
	}
	return m.FullRepository.UpdateEvent(ctx, id, e)
}

func (m *Repository) DeleteEvent(ctx context.Context, id int64) error {
	if m.DeleteEventError != nil {
		return m.DeleteEventError
	}
	return m.FullRepository.DeleteEvent(ctx, id)
}

// ===== Score Methods =====

func (m *Repository) GetScore(ctx context.Context, id int64) (*models.Score, error) {
	if m.GetScoreError != nil {
		return nil, m.GetScoreError
	}
	return m.FullRepository.GetScore(ctx, id)
}

func (m *Repository) GetScoreByAthleteEvent(ctx context.Context, athleteID, eventID int64) (*models.Score, error) {
	if m.GetScoreByAthleteEventError != nil {
		return nil, m.GetScoreByAthleteEventError
	}
	return m.FullRepository.GetScoreByAthleteEvent(ctx, athleteID, eventID)
}

func (m *Repository) SaveScore(ctx context.Context, p repository.SaveScoreParams) (*repository.SaveScoreResult, error) {
	if m.SaveScoreError != nil {
		return nil, m.SaveScoreError
	}
	return m.FullRepository.SaveScore(ctx, p)
}

func (m *Repository) ConfirmScores(ctx context.Context, ids []int64, actor models.Actor) ([]int64, error) {
	if m.ConfirmScoresError != nil {
		return nil, m.ConfirmScoresError
	}
	return m.FullRepository.ConfirmScores(ctx, ids, actor)
}

func (m *Repository) RejectScores(ctx context.Context, ids []int64, reason string, actor models.Actor) ([]int64, error) {
	if m.RejectScoresError != nil {
		return nil, m.RejectScoresError
	}
	return m.FullRepository.RejectScores(ctx, ids, reason, actor)
}

func (m *Repository) DeleteScore(ctx context.Context, id int64) error {
	if m.DeleteScoreError != nil {
		return m.DeleteScoreError
	}
	return m.FullRepository.DeleteScore(ctx, id)
}

func (m *Repository) ListPendingScores(ctx context.Context) ([]repository.PendingScoreRow, error) {
	if m.ListPendingScoresError != nil {
		return nil, m.ListPendingScoresError
	}
	return m.FullRepository.ListPendingScores(ctx)
}

func (m *Repository) ListScoresForLeaderboard(ctx context.Context, division string, includePending bool) ([]repository.LeaderboardScoreRow, error) {
	if m.ListScoresForLeaderboardError != nil {
		return nil, m.ListScoresForLeaderboardError
	}
	return m.FullRepository.ListScoresForLeaderboard(ctx, division, includePending)
}

// ===== Audit Methods =====

func (m *Repository) ListAuditsForScore(ctx context.Context, scoreID int64) ([]models.ScoreAudit, error) {
	if m.ListAuditsForScoreError != nil {
		return nil, m.ListAuditsForScoreError
	}
	return m.FullRepository.ListAuditsForScore(ctx, scoreID)
}

func (m *Repository) ListRecentAudits(ctx context.Context, limit int) ([]models.ScoreAudit, error) {
	if m.ListRecentAuditsError != nil {
		return nil, m.ListRecentAuditsError
	}
	return m.FullRepository.ListRecentAudits(ctx, limit)
}

// ===== Settings Methods =====

func (m *Repository) GetSetting(ctx context.Context, key string) (string, error) {
	if m.GetSettingError != nil {
		return "", m.GetSettingError
	}
	return m.FullRepository.GetSetting(ctx, key)
}

func (m *Repository) SetSetting(ctx context.Context, key, value string) error {
	if m.SetSettingError != nil {
		return m.SetSettingError
	}
	return m.FullRepository.SetSetting(ctx, key, value)
}

func (m *Repository) GetCompetitionStats(ctx context.Context) (map[string]interface{}, error) {
	if m.GetCompetitionStatsError != nil {
		return nil, m.GetCompetitionStatsError
	}
	return m.FullRepository.GetCompetitionStats(ctx)
}
