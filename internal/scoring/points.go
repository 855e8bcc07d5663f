package scoring

import (
	"cmp"
	"slices"
)

const (
	// firstPlacePoints is awarded for placement 1; each further placement
	// costs pointsStep, floored at zero (reached at placement 35).
	firstPlacePoints = 100
	pointsStep       = 3
)

// PointsForPlacement maps an event placement to points on a strictly
// decreasing, floor-clamped linear scale: 1st=100, 2nd=97, ... 34th=1, 35th
// and beyond 0. Placements below 1 yield 0 points.
func PointsForPlacement(placement int) int {
	if placement < 1 {
		return 0
	}
	points := firstPlacePoints - (placement-1)*pointsStep
	if points < 0 {
		return 0
	}
	return points
}

// StandingInput is one athlete's aggregate over all events in their division.
type StandingInput struct {
	AthleteID    int64
	TotalPoints  int
	EventsScored int
}

// Standing is one row of the overall division standings.
type Standing struct {
	AthleteID    int64
	TotalPoints  int
	EventsScored int
	OverallRank  int
}

// OverallStandings ranks athletes descending by total points. Ties share the
// same overall rank and the next distinct total takes the following rank
// (dense ranking). Athletes with no qualifying event sort after every athlete
// with at least one, regardless of points. Every athlete appears in the
// output. Pure function of its input.
func OverallStandings(inputs []StandingInput) []Standing {
	sorted := make([]StandingInput, len(inputs))
	copy(sorted, inputs)

	slices.SortFunc(sorted, func(a, b StandingInput) int {
		if c := cmp.Compare(sortKey(b), sortKey(a)); c != 0 {
			return c
		}
		return cmp.Compare(a.AthleteID, b.AthleteID)
	})

	standings := make([]Standing, len(sorted))
	rank := 0
	for i, in := range sorted {
		if i == 0 || sortKey(sorted[i]) != sortKey(sorted[i-1]) {
			rank++
		}
		standings[i] = Standing{
			AthleteID:    in.AthleteID,
			TotalPoints:  in.TotalPoints,
			EventsScored: in.EventsScored,
			OverallRank:  rank,
		}
	}
	return standings
}

// sortKey orders standings: any scored athlete beats any unscored one, then
// more points is better. Unscored athletes compare equal (all key -1).
func sortKey(in StandingInput) int {
	if in.EventsScored == 0 {
		return -1
	}
	return in.TotalPoints
}
