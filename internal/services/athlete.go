package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/wodboard/wodboard/internal/errors"
	"github.com/wodboard/wodboard/internal/logger"
	"github.com/wodboard/wodboard/internal/models"
	"github.com/wodboard/wodboard/internal/repository"
)

// AthleteService handles athlete registration and roster management
type AthleteService struct {
	log  logger.Logger
	repo repository.AthleteRepository
}

// NewAthleteService creates a new AthleteService
func NewAthleteService(log logger.Logger, repo repository.AthleteRepository) *AthleteService {
	return &AthleteService{log: log, repo: repo}
}

// AthleteInput holds the caller-supplied registration fields. Participant
// number and credential code are assigned by the service, never by the caller.
type AthleteInput struct {
	FullName string `json:"full_name"`
	Gender   string `json:"gender"`
	Division string `json:"division"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// ListAthletes returns all active athletes
func (s *AthleteService) ListAthletes(ctx context.Context) ([]models.Athlete, error) {
	return s.repo.ListAthletes(ctx)
}

// ListAthletesByDivision returns active athletes in a division
func (s *AthleteService) ListAthletesByDivision(ctx context.Context, division string) ([]models.Athlete, error) {
	return s.repo.ListAthletesByDivision(ctx, division)
}

// GetAthlete returns an athlete by ID
func (s *AthleteService) GetAthlete(ctx context.Context, id int64) (*models.Athlete, error) {
	return s.repo.GetAthlete(ctx, id)
}

// ListDivisions returns the distinct divisions with active athletes
func (s *AthleteService) ListDivisions(ctx context.Context) ([]string, error) {
	return s.repo.ListDivisions(ctx)
}

// RegisterAthlete registers a new athlete, assigning the next participant
// number and a fresh check-in credential code.
func (s *AthleteService) RegisterAthlete(ctx context.Context, in AthleteInput, actor models.Actor) (*models.Athlete, error) {
	if !actor.Role.AtLeast(models.RoleAdmin) {
		return nil, errors.Forbidden("registering athletes requires admin or higher")
	}

	a := models.Athlete{
		FullName: strings.TrimSpace(in.FullName),
		Gender:   strings.TrimSpace(in.Gender),
		Division: strings.TrimSpace(in.Division),
		Email:    strings.TrimSpace(in.Email),
		Phone:    strings.TrimSpace(in.Phone),
		Active:   true,
	}
	if a.FullName == "" {
		return nil, ErrNameRequired
	}
	if a.Division == "" {
		return nil, ErrDivisionRequired
	}

	a.CredentialCode = uuid.NewString()

	id, number, err := s.repo.CreateAthlete(ctx, a)
	if err != nil {
		return nil, err
	}
	a.ID = id
	a.ParticipantNumber = number

	s.log.Info("athlete registered", "id", id, "name", a.FullName, "division", a.Division, "number", number, "actor", actor.Name)
	return &a, nil
}

// UpdateAthlete updates an athlete's contact fields. Division and participant
// number never change after registration.
func (s *AthleteService) UpdateAthlete(ctx context.Context, id int64, in AthleteInput, actor models.Actor) error {
	if !actor.Role.AtLeast(models.RoleAdmin) {
		return errors.Forbidden("updating athletes requires admin or higher")
	}

	name := strings.TrimSpace(in.FullName)
	if name == "" {
		return ErrNameRequired
	}

	err := s.repo.UpdateAthlete(ctx, id, models.Athlete{
		FullName: name,
		Gender:   strings.TrimSpace(in.Gender),
		Email:    strings.TrimSpace(in.Email),
		Phone:    strings.TrimSpace(in.Phone),
	})
	if err != nil {
		return err
	}

	s.log.Info("athlete updated", "id", id, "actor", actor.Name)
	return nil
}

// DeleteAthlete deactivates an athlete. Their scores remain in the database
// but drop out of every roster and leaderboard.
func (s *AthleteService) DeleteAthlete(ctx context.Context, id int64, actor models.Actor) error {
	if !actor.Role.AtLeast(models.RoleAdmin) {
		return errors.Forbidden("removing athletes requires admin or higher")
	}

	if err := s.repo.DeleteAthlete(ctx, id); err != nil {
		return err
	}

	s.log.Info("athlete removed", "id", id, "actor", actor.Name)
	return nil
}
