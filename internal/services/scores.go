package services

import (
	"context"
	"strings"

	"github.com/wodboard/wodboard/internal/errors"
	"github.com/wodboard/wodboard/internal/logger"
	"github.com/wodboard/wodboard/internal/models"
	"github.com/wodboard/wodboard/internal/repository"
	"github.com/wodboard/wodboard/internal/scoring"
)

// ScoreServiceRepository defines the repository methods needed by ScoreService
type ScoreServiceRepository interface {
	repository.ScoreRepository
	repository.EventRepository
	repository.AthleteRepository
	repository.AuditRepository
}

// ScoreService handles the score lifecycle: capture, moderation, deletion.
// Every mutating method takes the acting identity explicitly; there is no
// ambient session state below the handler layer.
type ScoreService struct {
	log         logger.Logger
	repo        ScoreServiceRepository
	settings    SettingsServicer
	broadcaster Broadcaster
}

// NewScoreService creates a new ScoreService
func NewScoreService(log logger.Logger, repo ScoreServiceRepository, settings SettingsServicer) *ScoreService {
	return &ScoreService{log: log, repo: repo, settings: settings}
}

// SetBroadcaster sets the broadcaster for sending updates to clients
func (s *ScoreService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// ScoreSubmission is one judge-entered result for an (athlete, event) pair
type ScoreSubmission struct {
	AthleteID   int64  `json:"athlete_id"`
	EventID     int64  `json:"event_id"`
	RawInput    string `json:"raw_input"`
	RX          bool   `json:"rx"`
	EvidenceRef string `json:"evidence_ref"`
	Notes       string `json:"notes"`
	Overwrite   bool   `json:"overwrite"`
}

// SubmitScore validates and normalizes a submission, then saves it as
// pending. Overwriting an existing score requires the Overwrite flag;
// overwriting a confirmed one additionally requires coach or higher, which
// the repository enforces inside the write transaction.
func (s *ScoreService) SubmitScore(ctx context.Context, sub ScoreSubmission, actor models.Actor) (*models.Score, error) {
	if !actor.Role.AtLeast(models.RoleJudge) {
		return nil, errors.Forbidden("submitting scores requires judge or higher")
	}

	open, err := s.settings.IsScoringOpen(ctx)
	if err != nil {
		return nil, err
	}
	if !open && !actor.Role.AtLeast(models.RoleAdmin) {
		return nil, ErrScoringClosed
	}

	event, err := s.repo.GetEvent(ctx, sub.EventID)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetAthlete(ctx, sub.AthleteID); err != nil {
		return nil, err
	}

	norm, err := scoring.Normalize(sub.RawInput, event.ScoreType)
	if err != nil {
		return nil, err
	}

	result, err := s.repo.SaveScore(ctx, repository.SaveScoreParams{
		AthleteID:          sub.AthleteID,
		EventID:            sub.EventID,
		RawValue:           norm.Raw,
		Display:            norm.Display,
		RX:                 sub.RX,
		EvidenceRef:        strings.TrimSpace(sub.EvidenceRef),
		Notes:              strings.TrimSpace(sub.Notes),
		Overwrite:          sub.Overwrite,
		OverwriteConfirmed: actor.Role.AtLeast(models.RoleCoach),
		Actor:              actor,
	})
	if err != nil {
		return nil, err
	}

	verb := "overwrote"
	if result.Created {
		verb = "created"
	}
	s.log.Info("score submitted", "action", verb, "score_id", result.Score.ID,
		"athlete_id", sub.AthleteID, "event_id", sub.EventID,
		"display", norm.Display, "actor", actor.Name)

	return &result.Score, nil
}

// ConfirmScores promotes pending scores to the leaderboard. Scores that are
// not pending are skipped silently; the returned IDs are the ones that
// actually transitioned.
func (s *ScoreService) ConfirmScores(ctx context.Context, ids []int64, actor models.Actor) ([]int64, error) {
	if !actor.Role.AtLeast(models.RoleCoach) {
		return nil, errors.Forbidden("confirming scores requires coach or higher")
	}
	if len(ids) == 0 {
		return nil, ErrNoScoresSelected
	}

	affected, err := s.repo.ConfirmScores(ctx, ids, actor)
	if err != nil {
		return nil, err
	}

	s.log.Info("scores confirmed", "requested", len(ids), "affected", len(affected), "actor", actor.Name)
	if len(affected) > 0 {
		s.notifyLeaderboard()
	}
	return affected, nil
}

// RejectScores marks pending scores rejected with the given reason. The rows
// are retained so the judge sees the reason and can resubmit over them.
func (s *ScoreService) RejectScores(ctx context.Context, ids []int64, reason string, actor models.Actor) ([]int64, error) {
	if !actor.Role.AtLeast(models.RoleCoach) {
		return nil, errors.Forbidden("rejecting scores requires coach or higher")
	}
	if len(ids) == 0 {
		return nil, ErrNoScoresSelected
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}

	affected, err := s.repo.RejectScores(ctx, ids, reason, actor)
	if err != nil {
		return nil, err
	}

	s.log.Info("scores rejected", "requested", len(ids), "affected", len(affected), "reason", reason, "actor", actor.Name)
	if len(affected) > 0 {
		s.notifyLeaderboard()
	}
	return affected, nil
}

// DeleteScore removes a score entirely. The audit trail for it survives.
func (s *ScoreService) DeleteScore(ctx context.Context, id int64, actor models.Actor) error {
	if !actor.Role.AtLeast(models.RoleAdmin) {
		return errors.Forbidden("deleting scores requires admin or higher")
	}

	if err := s.repo.DeleteScore(ctx, id); err != nil {
		return err
	}

	s.log.Info("score deleted", "score_id", id, "actor", actor.Name)
	s.notifyLeaderboard()
	return nil
}

// GetScore returns a score by ID
func (s *ScoreService) GetScore(ctx context.Context, id int64) (*models.Score, error) {
	return s.repo.GetScore(ctx, id)
}

// ListPendingScores returns the moderation queue
func (s *ScoreService) ListPendingScores(ctx context.Context) ([]repository.PendingScoreRow, error) {
	return s.repo.ListPendingScores(ctx)
}

// AuditsForScore returns the audit trail of one score, oldest first
func (s *ScoreService) AuditsForScore(ctx context.Context, scoreID int64) ([]models.ScoreAudit, error) {
	return s.repo.ListAuditsForScore(ctx, scoreID)
}

// RecentAudits returns the most recent audit entries across all scores
func (s *ScoreService) RecentAudits(ctx context.Context, limit int) ([]models.ScoreAudit, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.repo.ListRecentAudits(ctx, limit)
}

func (s *ScoreService) notifyLeaderboard() {
	if s.broadcaster != nil {
		s.broadcaster.BroadcastLeaderboardUpdated()
	}
}
