package services

import (
	"context"
	"strings"

	"github.com/wodboard/wodboard/internal/errors"
	"github.com/wodboard/wodboard/internal/logger"
	"github.com/wodboard/wodboard/internal/models"
	"github.com/wodboard/wodboard/internal/repository"
)

// EventService handles the programmed workouts of the competition
type EventService struct {
	log  logger.Logger
	repo repository.EventRepository
}

// NewEventService creates a new EventService
func NewEventService(log logger.Logger, repo repository.EventRepository) *EventService {
	return &EventService{log: log, repo: repo}
}

// EventInput holds caller-supplied event fields
type EventInput struct {
	Name         string `json:"name"`
	ScoreType    string `json:"score_type"`
	DisplayOrder int    `json:"display_order"`
	Active       *bool  `json:"active,omitempty"`
}

// ListEvents returns all events including inactive ones
func (s *EventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	return s.repo.ListEvents(ctx)
}

// ListActiveEvents returns the active events in display order
func (s *EventService) ListActiveEvents(ctx context.Context) ([]models.Event, error) {
	return s.repo.ListActiveEvents(ctx)
}

// GetEvent returns an event by ID
func (s *EventService) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	return s.repo.GetEvent(ctx, id)
}

// CreateEvent creates a new event
func (s *EventService) CreateEvent(ctx context.Context, in EventInput, actor models.Actor) (*models.Event, error) {
	if !actor.Role.AtLeast(models.RoleAdmin) {
		return nil, errors.Forbidden("creating events requires admin or higher")
	}

	e, err := eventFromInput(in)
	if err != nil {
		return nil, err
	}
	e.Active = true

	id, err := s.repo.CreateEvent(ctx, *e)
	if err != nil {
		return nil, err
	}
	e.ID = id

	s.log.Info("event created", "id", id, "name", e.Name, "score_type", e.ScoreType, "actor", actor.Name)
	return e, nil
}

// UpdateEvent updates an event. Changing the score type of an event that
// already has scores is allowed but leaves existing raw values untouched.
func (s *EventService) UpdateEvent(ctx context.Context, id int64, in EventInput, actor models.Actor) error {
	if !actor.Role.AtLeast(models.RoleAdmin) {
		return errors.Forbidden("updating events requires admin or higher")
	}

	e, err := eventFromInput(in)
	if err != nil {
		return err
	}
	e.Active = true
	if in.Active != nil {
		e.Active = *in.Active
	}

	if err := s.repo.UpdateEvent(ctx, id, *e); err != nil {
		return err
	}

	s.log.Info("event updated", "id", id, "actor", actor.Name)
	return nil
}

// DeleteEvent deactivates an event, removing its column from the leaderboard
func (s *EventService) DeleteEvent(ctx context.Context, id int64, actor models.Actor) error {
	if !actor.Role.AtLeast(models.RoleAdmin) {
		return errors.Forbidden("removing events requires admin or higher")
	}

	if err := s.repo.DeleteEvent(ctx, id); err != nil {
		return err
	}

	s.log.Info("event removed", "id", id, "actor", actor.Name)
	return nil
}

func eventFromInput(in EventInput) (*models.Event, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrEventNameRequired
	}

	st := models.ScoreType(strings.TrimSpace(in.ScoreType))
	if !st.Valid() {
		return nil, errors.Validationf("unknown score type %q (want time, reps, or weight)", in.ScoreType)
	}

	return &models.Event{
		Name:         name,
		ScoreType:    st,
		DisplayOrder: in.DisplayOrder,
	}, nil
}
