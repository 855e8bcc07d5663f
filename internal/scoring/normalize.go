package scoring

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/wodboard/wodboard/internal/errors"
	"github.com/wodboard/wodboard/internal/models"
)

// lbsPerKg is the conversion factor used when storing weight scores in kilograms.
const lbsPerKg = 2.20462

var timePattern = regexp.MustCompile(`^(\d{1,2}):([0-5]\d)$`)

// Normalized is the canonical form of a judge's raw score input: a numeric
// value used for comparison and a human-readable display string.
type Normalized struct {
	Raw     float64
	Display string
}

// Normalize converts raw judge input into a canonical orderable value plus a
// display string, according to the event's score type:
//
//	time:   "M:SS" or "MM:SS" (seconds 0-59), raw = total seconds
//	reps:   non-negative integer, raw = count
//	weight: positive pounds, raw = kilograms rounded to 1 decimal
//
// Normalize is pure. Whenever a score's display value is edited the pair must
// be recomputed through this function, never patched by hand.
func Normalize(input string, scoreType models.ScoreType) (Normalized, error) {
	input = strings.TrimSpace(input)

	switch scoreType {
	case models.ScoreTypeTime:
		return normalizeTime(input)
	case models.ScoreTypeReps:
		return normalizeReps(input)
	case models.ScoreTypeWeight:
		return normalizeWeight(input)
	}
	return Normalized{}, errors.Validationf("unknown score type %q", scoreType)
}

func normalizeTime(input string) (Normalized, error) {
	m := timePattern.FindStringSubmatch(input)
	if m == nil {
		return Normalized{}, errors.Validationf("invalid time %q: expected M:SS or MM:SS with seconds 00-59", input)
	}

	// Pattern guarantees both groups are numeric
	minutes, _ := strconv.Atoi(m[1])
	seconds, _ := strconv.Atoi(m[2])

	return Normalized{
		Raw:     float64(minutes*60 + seconds),
		Display: input,
	}, nil
}

func normalizeReps(input string) (Normalized, error) {
	n, err := strconv.Atoi(input)
	if err != nil {
		return Normalized{}, errors.Validationf("invalid rep count %q: expected a non-negative integer", input)
	}
	if n < 0 {
		return Normalized{}, errors.Validationf("invalid rep count %q: expected a non-negative integer", input)
	}

	return Normalized{
		Raw:     float64(n),
		Display: strconv.Itoa(n) + " reps",
	}, nil
}

func normalizeWeight(input string) (Normalized, error) {
	lbs, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return Normalized{}, errors.Validationf("invalid weight %q: expected a positive number of pounds", input)
	}
	// ParseFloat accepts "NaN" and "Inf" spellings; neither is an orderable
	// weight, and NaN in particular slips past a <= 0 check.
	if math.IsNaN(lbs) || math.IsInf(lbs, 0) || lbs <= 0 {
		return Normalized{}, errors.Validationf("invalid weight %q: expected a positive number of pounds", input)
	}

	// Raw is kilograms to 1 decimal; display keeps the pounds as entered.
	kg := math.Round(lbs/lbsPerKg*10) / 10

	return Normalized{
		Raw:     kg,
		Display: input + " lbs",
	}, nil
}
