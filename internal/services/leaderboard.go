package services

import (
	"context"
	"sort"

	"github.com/wodboard/wodboard/internal/logger"
	"github.com/wodboard/wodboard/internal/models"
	"github.com/wodboard/wodboard/internal/repository"
	"github.com/wodboard/wodboard/internal/scoring"
)

// LeaderboardServiceRepository defines the repository methods needed by LeaderboardService
type LeaderboardServiceRepository interface {
	repository.AthleteRepository
	repository.EventRepository
	repository.SettingsRepository
	ListScoresForLeaderboard(ctx context.Context, division string, includePending bool) ([]repository.LeaderboardScoreRow, error)
}

// LeaderboardService computes division standings on demand. Each call works
// from a single query result set; nothing is cached, so a leaderboard is
// always consistent with the scores at the moment it was requested.
type LeaderboardService struct {
	log  logger.Logger
	repo LeaderboardServiceRepository
}

// NewLeaderboardService creates a new LeaderboardService
func NewLeaderboardService(log logger.Logger, repo LeaderboardServiceRepository) *LeaderboardService {
	return &LeaderboardService{log: log, repo: repo}
}

// EventCell is one athlete's result in one event column
type EventCell struct {
	EventID      int64  `json:"event_id"`
	DisplayValue string `json:"display_value"`
	RX           bool   `json:"rx"`
	Placement    int    `json:"placement"`
	Points       int    `json:"points"`
	Pending      bool   `json:"pending,omitempty"`
}

// LeaderboardRow is one athlete's line on the division leaderboard
type LeaderboardRow struct {
	AthleteID         int64       `json:"athlete_id"`
	FullName          string      `json:"full_name"`
	ParticipantNumber int         `json:"participant_number"`
	Division          string      `json:"division"`
	TotalPoints       int         `json:"total_points"`
	EventsScored      int         `json:"events_scored"`
	OverallRank       int         `json:"overall_rank"`
	Scores            []EventCell `json:"scores"`
}

// Leaderboard is the full standings of one division
type Leaderboard struct {
	Division        string           `json:"division"`
	Events          []models.Event   `json:"events"`
	Rows            []LeaderboardRow `json:"rows"`
	IncludesPending bool             `json:"includes_pending"`
}

// GetLeaderboard computes the standings for one division. Confirmed scores
// only by default; includePending folds pending scores in for preview views.
// Rejected scores never rank. Every active athlete of the division appears,
// scored or not; athletes with no qualifying score sort last.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, division string, includePending bool) (*Leaderboard, error) {
	if division == "" {
		return nil, ErrDivisionRequired
	}

	athletes, err := s.repo.ListAthletesByDivision(ctx, division)
	if err != nil {
		return nil, err
	}
	events, err := s.repo.ListActiveEvents(ctx)
	if err != nil {
		return nil, err
	}
	scoreRows, err := s.repo.ListScoresForLeaderboard(ctx, division, includePending)
	if err != nil {
		return nil, err
	}

	// Placements are computed per event over the athletes who have a
	// qualifying score in it.
	byEvent := make(map[int64][]repository.LeaderboardScoreRow)
	for _, row := range scoreRows {
		byEvent[row.EventID] = append(byEvent[row.EventID], row)
	}

	type cellKey struct{ athleteID, eventID int64 }
	cells := make(map[cellKey]EventCell)

	for _, event := range events {
		rows := byEvent[event.ID]
		entries := make([]scoring.RankEntry, len(rows))
		for i, row := range rows {
			entries[i] = scoring.RankEntry{ScoreID: row.ScoreID, AthleteID: row.AthleteID, Raw: row.RawValue}
		}
		placements := scoring.RankEvent(entries, event.ScoreType.Direction())

		for _, row := range rows {
			placement := placements[row.ScoreID]
			cells[cellKey{row.AthleteID, event.ID}] = EventCell{
				EventID:      event.ID,
				DisplayValue: row.DisplayValue,
				RX:           row.RX,
				Placement:    placement,
				Points:       scoring.PointsForPlacement(placement),
				Pending:      row.Status == models.StatusPending,
			}
		}
	}

	inputs := make([]scoring.StandingInput, len(athletes))
	for i, a := range athletes {
		in := scoring.StandingInput{AthleteID: a.ID}
		for _, event := range events {
			if cell, ok := cells[cellKey{a.ID, event.ID}]; ok {
				in.TotalPoints += cell.Points
				in.EventsScored++
			}
		}
		inputs[i] = in
	}
	standings := scoring.OverallStandings(inputs)

	rankByAthlete := make(map[int64]scoring.Standing, len(standings))
	for _, st := range standings {
		rankByAthlete[st.AthleteID] = st
	}

	board := &Leaderboard{
		Division:        division,
		Events:          events,
		IncludesPending: includePending,
		Rows:            make([]LeaderboardRow, 0, len(athletes)),
	}
	for _, a := range athletes {
		st := rankByAthlete[a.ID]
		row := LeaderboardRow{
			AthleteID:         a.ID,
			FullName:          a.FullName,
			ParticipantNumber: a.ParticipantNumber,
			Division:          a.Division,
			TotalPoints:       st.TotalPoints,
			EventsScored:      st.EventsScored,
			OverallRank:       st.OverallRank,
			Scores:            make([]EventCell, 0, len(events)),
		}
		for _, event := range events {
			if cell, ok := cells[cellKey{a.ID, event.ID}]; ok {
				row.Scores = append(row.Scores, cell)
			}
		}
		board.Rows = append(board.Rows, row)
	}

	// Rank order for display; names break ties so the order is stable
	sort.Slice(board.Rows, func(i, j int) bool {
		if board.Rows[i].OverallRank != board.Rows[j].OverallRank {
			return board.Rows[i].OverallRank < board.Rows[j].OverallRank
		}
		return board.Rows[i].FullName < board.Rows[j].FullName
	})

	return board, nil
}

// PodiumEntry is one top-three finisher, shaped for award certificates
type PodiumEntry struct {
	OverallRank       int    `json:"overall_rank"`
	FullName          string `json:"full_name"`
	ParticipantNumber int    `json:"participant_number"`
	Division          string `json:"division"`
	TotalPoints       int    `json:"total_points"`
}

// GetPodium returns the division's top three overall ranks, confirmed scores
// only. Ties mean a podium can hold more than three athletes.
func (s *LeaderboardService) GetPodium(ctx context.Context, division string) ([]PodiumEntry, error) {
	board, err := s.GetLeaderboard(ctx, division, false)
	if err != nil {
		return nil, err
	}

	var podium []PodiumEntry
	for _, row := range board.Rows {
		if row.OverallRank > 3 || row.EventsScored == 0 {
			break
		}
		podium = append(podium, PodiumEntry{
			OverallRank:       row.OverallRank,
			FullName:          row.FullName,
			ParticipantNumber: row.ParticipantNumber,
			Division:          row.Division,
			TotalPoints:       row.TotalPoints,
		})
	}
	return podium, nil
}

// GetStats returns competition-wide counters for the admin dashboard
func (s *LeaderboardService) GetStats(ctx context.Context) (map[string]interface{}, error) {
	return s.repo.GetCompetitionStats(ctx)
}
