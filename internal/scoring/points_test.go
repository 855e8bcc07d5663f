package scoring

import "testing"

func TestPointsForPlacement(t *testing.T) {
	tests := []struct {
		placement int
		expected  int
	}{
		{1, 100},
		{2, 97},
		{3, 94},
		{10, 73},
		{33, 4},
		{34, 1},
		{35, 0}, // clamped
		{100, 0},
		{0, 0},
		{-5, 0},
	}

	for _, tt := range tests {
		if got := PointsForPlacement(tt.placement); got != tt.expected {
			t.Errorf("PointsForPlacement(%d) = %d, want %d", tt.placement, got, tt.expected)
		}
	}
}

func TestPointsForPlacement_NeverNegative(t *testing.T) {
	for p := 1; p <= 200; p++ {
		if PointsForPlacement(p) < 0 {
			t.Fatalf("PointsForPlacement(%d) returned a negative value", p)
		}
	}
}

func TestPointsForPlacement_MonotonicallyNonIncreasing(t *testing.T) {
	prev := PointsForPlacement(1)
	for p := 2; p <= 60; p++ {
		cur := PointsForPlacement(p)
		if cur > prev {
			t.Fatalf("points increased from placement %d (%d) to %d (%d)", p-1, prev, p, cur)
		}
		prev = cur
	}
}

func TestOverallStandings_DescendingByPoints(t *testing.T) {
	standings := OverallStandings([]StandingInput{
		{AthleteID: 1, TotalPoints: 94, EventsScored: 1},
		{AthleteID: 2, TotalPoints: 100, EventsScored: 1},
		{AthleteID: 3, TotalPoints: 97, EventsScored: 1},
	})

	if standings[0].AthleteID != 2 || standings[0].OverallRank != 1 {
		t.Errorf("expected athlete 2 first, got %+v", standings[0])
	}
	if standings[1].AthleteID != 3 || standings[1].OverallRank != 2 {
		t.Errorf("expected athlete 3 second, got %+v", standings[1])
	}
	if standings[2].AthleteID != 1 || standings[2].OverallRank != 3 {
		t.Errorf("expected athlete 1 third, got %+v", standings[2])
	}
}

func TestOverallStandings_TiesShareRank(t *testing.T) {
	// One time event, raws 540/480/480: points B=100, C=100, A=94.
	// B and C share rank 1, A takes rank 2 (dense ranking).
	standings := OverallStandings([]StandingInput{
		{AthleteID: 1, TotalPoints: 94, EventsScored: 1},  // A
		{AthleteID: 2, TotalPoints: 100, EventsScored: 1}, // B
		{AthleteID: 3, TotalPoints: 100, EventsScored: 1}, // C
	})

	if standings[0].OverallRank != 1 || standings[1].OverallRank != 1 {
		t.Errorf("expected B and C to share rank 1, got %+v", standings)
	}
	if standings[0].AthleteID != 2 || standings[1].AthleteID != 3 {
		t.Errorf("expected deterministic tie order by athlete ID, got %+v", standings)
	}
	if standings[2].AthleteID != 1 || standings[2].OverallRank != 2 {
		t.Errorf("expected A at rank 2, got %+v", standings[2])
	}
}

func TestOverallStandings_ZeroEventAthletesRankLast(t *testing.T) {
	standings := OverallStandings([]StandingInput{
		{AthleteID: 1, TotalPoints: 0, EventsScored: 0},
		{AthleteID: 2, TotalPoints: 0, EventsScored: 1}, // placement 35+, 0 points, but scored
		{AthleteID: 3, TotalPoints: 50, EventsScored: 1},
	})

	if standings[0].AthleteID != 3 {
		t.Errorf("expected scored athlete with points first, got %+v", standings[0])
	}
	// Athlete 2 scored an event, even at 0 points they beat the unscored athlete
	if standings[1].AthleteID != 2 {
		t.Errorf("expected zero-point scored athlete before unscored, got %+v", standings[1])
	}
	if standings[2].AthleteID != 1 {
		t.Errorf("expected unscored athlete last, got %+v", standings[2])
	}
	if standings[2].TotalPoints != 0 {
		t.Errorf("expected unscored athlete to carry 0 points, got %d", standings[2].TotalPoints)
	}
}

func TestOverallStandings_AllUnscoredTie(t *testing.T) {
	standings := OverallStandings([]StandingInput{
		{AthleteID: 2, TotalPoints: 0, EventsScored: 0},
		{AthleteID: 1, TotalPoints: 0, EventsScored: 0},
	})

	if standings[0].OverallRank != 1 || standings[1].OverallRank != 1 {
		t.Errorf("expected all unscored athletes to share rank 1, got %+v", standings)
	}
}

func TestOverallStandings_Empty(t *testing.T) {
	if standings := OverallStandings(nil); len(standings) != 0 {
		t.Errorf("expected empty standings, got %+v", standings)
	}
}
