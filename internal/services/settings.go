package services

import (
	"context"

	"github.com/wodboard/wodboard/internal/errors"
	"github.com/wodboard/wodboard/internal/logger"
	"github.com/wodboard/wodboard/internal/models"
	"github.com/wodboard/wodboard/internal/repository"
)

// Broadcaster defines the interface for broadcasting messages to clients
type Broadcaster interface {
	BroadcastLeaderboardUpdated()
	BroadcastScoringStatus(open bool)
}

// SettingsService handles competition-wide settings
type SettingsService struct {
	log         logger.Logger
	repo        repository.SettingsRepository
	broadcaster Broadcaster
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(log logger.Logger, repo repository.SettingsRepository) *SettingsService {
	return &SettingsService{log: log, repo: repo}
}

// SetBroadcaster sets the broadcaster for sending updates to clients
func (s *SettingsService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// IsScoringOpen checks if score submission is currently open
func (s *SettingsService) IsScoringOpen(ctx context.Context) (bool, error) {
	value, err := s.repo.GetSetting(ctx, "scoring_open")
	if err != nil {
		if err == repository.ErrNotFound {
			return true, nil // Default to open if setting doesn't exist
		}
		return false, err // Propagate database errors
	}
	return value == "true", nil
}

// SetScoringOpen opens or closes score submission and pushes the new status
// to connected clients.
func (s *SettingsService) SetScoringOpen(ctx context.Context, open bool, actor models.Actor) error {
	if !actor.Role.AtLeast(models.RoleAdmin) {
		return errors.Forbidden("changing scoring status requires admin or higher")
	}

	value := "false"
	if open {
		value = "true"
	}
	if err := s.repo.SetSetting(ctx, "scoring_open", value); err != nil {
		return err
	}

	s.log.Info("scoring status changed", "open", open, "actor", actor.Name)
	if s.broadcaster != nil {
		s.broadcaster.BroadcastScoringStatus(open)
	}
	return nil
}

// GetSetting retrieves an arbitrary setting
func (s *SettingsService) GetSetting(ctx context.Context, key string) (string, error) {
	return s.repo.GetSetting(ctx, key)
}

// SetSetting saves an arbitrary setting
func (s *SettingsService) SetSetting(ctx context.Context, key, value string, actor models.Actor) error {
	if !actor.Role.AtLeast(models.RoleAdmin) {
		return errors.Forbidden("changing settings requires admin or higher")
	}
	return s.repo.SetSetting(ctx, key, value)
}
