package scoring

import (
	"cmp"
	"slices"

	"github.com/wodboard/wodboard/internal/models"
)

// RankEntry is one qualifying score in a single event and division.
type RankEntry struct {
	ScoreID   int64
	AthleteID int64
	Raw       float64
}

// RankEvent assigns competition ("1224") placements to the given entries under
// the event's comparison direction: tied raw values share the same placement,
// and the next distinct value's placement is one plus the number of strictly
// better entries. Equivalent to SQL RANK() OVER (ORDER BY raw ASC|DESC).
//
// An empty input yields an empty map. Entries must already be scoped to one
// event and one division; RankEvent never mixes divisions.
func RankEvent(entries []RankEntry, dir models.Direction) map[int64]int {
	placements := make(map[int64]int, len(entries))
	if len(entries) == 0 {
		return placements
	}

	sorted := make([]RankEntry, len(entries))
	copy(sorted, entries)

	slices.SortFunc(sorted, func(a, b RankEntry) int {
		if dir == models.Ascending {
			if c := cmp.Compare(a.Raw, b.Raw); c != 0 {
				return c
			}
		} else {
			if c := cmp.Compare(b.Raw, a.Raw); c != 0 {
				return c
			}
		}
		// Deterministic order for tied raw values
		return cmp.Compare(a.ScoreID, b.ScoreID)
	})

	rank := 1
	for i, e := range sorted {
		if i > 0 && sorted[i].Raw != sorted[i-1].Raw {
			rank = i + 1
		}
		placements[e.ScoreID] = rank
	}
	return placements
}
