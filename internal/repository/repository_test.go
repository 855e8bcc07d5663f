package repository

import (
	"context"
	"testing"

	"github.com/wodboard/wodboard/internal/errors"
	"github.com/wodboard/wodboard/internal/models"
)

// newTestRepo creates a new in-memory repository for testing.
func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func mustCreateAthlete(t *testing.T, repo *Repository, name, division string) int64 {
	t.Helper()
	id, _, err := repo.CreateAthlete(context.Background(), models.Athlete{
		FullName: name,
		Division: division,
	})
	if err != nil {
		t.Fatalf("CreateAthlete failed: %v", err)
	}
	return id
}

func mustCreateEvent(t *testing.T, repo *Repository, name string, scoreType models.ScoreType) int64 {
	t.Helper()
	id, err := repo.CreateEvent(context.Background(), models.Event{
		Name:         name,
		ScoreType:    scoreType,
		DisplayOrder: 1,
	})
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	return id
}

var judge = models.Actor{ID: 1, Name: "Judge Judy", Role: models.RoleJudge}
var coach = models.Actor{ID: 2, Name: "Coach Kim", Role: models.RoleCoach}

// ==================== Athlete Tests ====================

func TestCreateAthlete_AssignsSequentialNumbers(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, first, err := repo.CreateAthlete(ctx, models.Athlete{FullName: "Alice", Division: "RX Women"})
	if err != nil {
		t.Fatalf("CreateAthlete failed: %v", err)
	}
	if first != firstParticipantNumber {
		t.Errorf("expected first participant number %d, got %d", firstParticipantNumber, first)
	}

	_, second, err := repo.CreateAthlete(ctx, models.Athlete{FullName: "Bob", Division: "RX Men"})
	if err != nil {
		t.Fatalf("CreateAthlete failed: %v", err)
	}
	if second != first+1 {
		t.Errorf("expected participant number %d, got %d", first+1, second)
	}
}

func TestGetAthlete_NonExistent(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetAthlete(context.Background(), 999)
	if !errors.IsKind(err, errors.ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestUpdateAthlete_PreservesDivisionAndNumber(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id := mustCreateAthlete(t, repo, "Alice", "RX Women")

	err := repo.UpdateAthlete(ctx, id, models.Athlete{
		FullName: "Alice Cooper",
		Email:    "alice@example.com",
		Division: "Should Not Change",
	})
	if err != nil {
		t.Fatalf("UpdateAthlete failed: %v", err)
	}

	a, err := repo.GetAthlete(ctx, id)
	if err != nil {
		t.Fatalf("GetAthlete failed: %v", err)
	}
	if a.FullName != "Alice Cooper" {
		t.Errorf("expected updated name, got %q", a.FullName)
	}
	if a.Email != "alice@example.com" {
		t.Errorf("expected updated email, got %q", a.Email)
	}
	if a.Division != "RX Women" {
		t.Errorf("division must be immutable, got %q", a.Division)
	}
	if a.ParticipantNumber != firstParticipantNumber {
		t.Errorf("participant number must be immutable, got %d", a.ParticipantNumber)
	}
}

func TestDeleteAthlete_SoftDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id := mustCreateAthlete(t, repo, "Alice", "RX Women")

	if err := repo.DeleteAthlete(ctx, id); err != nil {
		t.Fatalf("DeleteAthlete failed: %v", err)
	}

	_, err := repo.GetAthlete(ctx, id)
	if !errors.IsKind(err, errors.ErrNotFound) {
		t.Errorf("expected not-found after soft delete, got %v", err)
	}

	athletes, err := repo.ListAthletes(ctx)
	if err != nil {
		t.Fatalf("ListAthletes failed: %v", err)
	}
	if len(athletes) != 0 {
		t.Errorf("expected no active athletes, got %d", len(athletes))
	}
}

func TestListDivisions(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	mustCreateAthlete(t, repo, "Alice", "RX Women")
	mustCreateAthlete(t, repo, "Bob", "RX Men")
	mustCreateAthlete(t, repo, "Carol", "RX Women")

	divisions, err := repo.ListDivisions(ctx)
	if err != nil {
		t.Fatalf("ListDivisions failed: %v", err)
	}
	if len(divisions) != 2 {
		t.Fatalf("expected 2 divisions, got %d: %v", len(divisions), divisions)
	}
	if divisions[0] != "RX Men" || divisions[1] != "RX Women" {
		t.Errorf("expected sorted divisions, got %v", divisions)
	}
}

func TestListAthletesByDivision(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	mustCreateAthlete(t, repo, "Alice", "RX Women")
	mustCreateAthlete(t, repo, "Bob", "RX Men")

	athletes, err := repo.ListAthletesByDivision(ctx, "RX Women")
	if err != nil {
		t.Fatalf("ListAthletesByDivision failed: %v", err)
	}
	if len(athletes) != 1 || athletes[0].FullName != "Alice" {
		t.Errorf("expected only Alice, got %+v", athletes)
	}
}

// ==================== Event Tests ====================

func TestListActiveEvents_OrderedAndFiltered(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	second, err := repo.CreateEvent(ctx, models.Event{Name: "Grace", ScoreType: models.ScoreTypeTime, DisplayOrder: 2})
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	first, err := repo.CreateEvent(ctx, models.Event{Name: "Max Clean", ScoreType: models.ScoreTypeWeight, DisplayOrder: 1})
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}

	if err := repo.DeleteEvent(ctx, second); err != nil {
		t.Fatalf("DeleteEvent failed: %v", err)
	}

	events, err := repo.ListActiveEvents(ctx)
	if err != nil {
		t.Fatalf("ListActiveEvents failed: %v", err)
	}
	if len(events) != 1 || events[0].ID != first {
		t.Errorf("expected only active event %d, got %+v", first, events)
	}

	all, err := repo.ListEvents(ctx)
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 events in admin list, got %d", len(all))
	}
	if all[0].ID != first {
		t.Errorf("expected display_order sort, got %+v", all)
	}
}

// ==================== Score Tests ====================

func saveScore(t *testing.T, repo *Repository, athleteID, eventID int64, raw float64, display string, p SaveScoreParams) *SaveScoreResult {
	t.Helper()
	p.AthleteID = athleteID
	p.EventID = eventID
	p.RawValue = raw
	p.Display = display
	if p.Actor.Name == "" {
		p.Actor = judge
	}
	result, err := repo.SaveScore(context.Background(), p)
	if err != nil {
		t.Fatalf("SaveScore failed: %v", err)
	}
	return result
}

func TestSaveScore_CreatesPendingWithAudit(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	athleteID := mustCreateAthlete(t, repo, "Alice", "RX Women")
	eventID := mustCreateEvent(t, repo, "Fran", models.ScoreTypeTime)

	result := saveScore(t, repo, athleteID, eventID, 225, "3:45", SaveScoreParams{RX: true})
	if !result.Created {
		t.Error("expected Created=true for a new score")
	}
	if result.Score.Status != models.StatusPending {
		t.Errorf("expected pending status, got %s", result.Score.Status)
	}

	audits, err := repo.ListAuditsForScore(ctx, result.Score.ID)
	if err != nil {
		t.Fatalf("ListAuditsForScore failed: %v", err)
	}
	if len(audits) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(audits))
	}
	if audits[0].Action != models.AuditCreated {
		t.Errorf("expected created audit, got %s", audits[0].Action)
	}
	if audits[0].ActorName != judge.Name {
		t.Errorf("expected actor %q, got %q", judge.Name, audits[0].ActorName)
	}
	if audits[0].NewValues["display_value"] != "3:45" {
		t.Errorf("expected new values snapshot, got %v", audits[0].NewValues)
	}
}

func TestSaveScore_ConflictWithoutOverwrite(t *testing.T) {
	repo := newTestRepo(t)

	athleteID := mustCreateAthlete(t, repo, "Alice", "RX Women")
	eventID := mustCreateEvent(t, repo, "Fran", models.ScoreTypeTime)

	saveScore(t, repo, athleteID, eventID, 225, "3:45", SaveScoreParams{})

	_, err := repo.SaveScore(context.Background(), SaveScoreParams{
		AthleteID: athleteID, EventID: eventID,
		RawValue: 200, Display: "3:20", Actor: judge,
	})
	if !errors.IsKind(err, errors.ErrConflict) {
		t.Errorf("expected conflict error, got %v", err)
	}
}

func TestSaveScore_OverwritePendingResetsStatus(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	athleteID := mustCreateAthlete(t, repo, "Alice", "RX Women")
	eventID := mustCreateEvent(t, repo, "Fran", models.ScoreTypeTime)

	first := saveScore(t, repo, athleteID, eventID, 225, "3:45", SaveScoreParams{})
	second := saveScore(t, repo, athleteID, eventID, 200, "3:20", SaveScoreParams{Overwrite: true})

	if second.Created {
		t.Error("expected overwrite, not create")
	}
	if second.Score.ID != first.Score.ID {
		t.Errorf("overwrite must reuse the row, got %d vs %d", second.Score.ID, first.Score.ID)
	}
	if second.Previous == nil || second.Previous.DisplayValue != "3:45" {
		t.Errorf("expected previous score snapshot, got %+v", second.Previous)
	}

	s, err := repo.GetScore(ctx, first.Score.ID)
	if err != nil {
		t.Fatalf("GetScore failed: %v", err)
	}
	if s.RawValue != 200 || s.DisplayValue != "3:20" {
		t.Errorf("expected overwritten values, got %+v", s)
	}
	if s.Status != models.StatusPending {
		t.Errorf("overwrite must reset status to pending, got %s", s.Status)
	}

	audits, err := repo.ListAuditsForScore(ctx, first.Score.ID)
	if err != nil {
		t.Fatalf("ListAuditsForScore failed: %v", err)
	}
	if len(audits) != 2 {
		t.Fatalf("expected 2 audit entries, got %d", len(audits))
	}
	if audits[1].Action != models.AuditUpdated {
		t.Errorf("expected updated audit, got %s", audits[1].Action)
	}
	if audits[1].OldValues["display_value"] != "3:45" {
		t.Errorf("expected old values snapshot, got %v", audits[1].OldValues)
	}
}

func TestSaveScore_ConfirmedRequiresElevatedOverwrite(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	athleteID := mustCreateAthlete(t, repo, "Alice", "RX Women")
	eventID := mustCreateEvent(t, repo, "Fran", models.ScoreTypeTime)

	first := saveScore(t, repo, athleteID, eventID, 225, "3:45", SaveScoreParams{})
	if _, err := repo.ConfirmScores(ctx, []int64{first.Score.ID}, coach); err != nil {
		t.Fatalf("ConfirmScores failed: %v", err)
	}

	_, err := repo.SaveScore(ctx, SaveScoreParams{
		AthleteID: athleteID, EventID: eventID,
		RawValue: 200, Display: "3:20", Overwrite: true, Actor: judge,
	})
	if !errors.IsKind(err, errors.ErrForbidden) {
		t.Errorf("expected forbidden error for confirmed overwrite, got %v", err)
	}

	// The same write with elevated permission succeeds and re-pends the score
	result, err := repo.SaveScore(ctx, SaveScoreParams{
		AthleteID: athleteID, EventID: eventID,
		RawValue: 200, Display: "3:20", Overwrite: true, OverwriteConfirmed: true, Actor: coach,
	})
	if err != nil {
		t.Fatalf("SaveScore with OverwriteConfirmed failed: %v", err)
	}
	if result.Score.Status != models.StatusPending {
		t.Errorf("expected pending after overwrite, got %s", result.Score.Status)
	}
}

func TestConfirmScores_SkipsNonPending(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	athleteID := mustCreateAthlete(t, repo, "Alice", "RX Women")
	eventA := mustCreateEvent(t, repo, "Fran", models.ScoreTypeTime)
	eventB := mustCreateEvent(t, repo, "Cindy", models.ScoreTypeReps)

	a := saveScore(t, repo, athleteID, eventA, 225, "3:45", SaveScoreParams{})
	b := saveScore(t, repo, athleteID, eventB, 347, "347 reps", SaveScoreParams{})

	affected, err := repo.ConfirmScores(ctx, []int64{a.Score.ID}, coach)
	if err != nil {
		t.Fatalf("ConfirmScores failed: %v", err)
	}
	if len(affected) != 1 || affected[0] != a.Score.ID {
		t.Errorf("expected affected [%d], got %v", a.Score.ID, affected)
	}

	// Confirming again (already confirmed) plus one pending only touches the pending one
	affected, err = repo.ConfirmScores(ctx, []int64{a.Score.ID, b.Score.ID, 9999}, coach)
	if err != nil {
		t.Fatalf("ConfirmScores failed: %v", err)
	}
	if len(affected) != 1 || affected[0] != b.Score.ID {
		t.Errorf("expected affected [%d], got %v", b.Score.ID, affected)
	}

	s, err := repo.GetScore(ctx, a.Score.ID)
	if err != nil {
		t.Fatalf("GetScore failed: %v", err)
	}
	if s.Status != models.StatusConfirmed || s.ConfirmedBy != coach.Name {
		t.Errorf("expected confirmed by %q, got %+v", coach.Name, s)
	}
}

func TestConfirmScores_EmptyInput(t *testing.T) {
	repo := newTestRepo(t)

	affected, err := repo.ConfirmScores(context.Background(), nil, coach)
	if err != nil {
		t.Fatalf("ConfirmScores failed: %v", err)
	}
	if len(affected) != 0 {
		t.Errorf("expected no affected scores, got %v", affected)
	}
}

func TestRejectScores_RetainsRowWithReason(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	athleteID := mustCreateAthlete(t, repo, "Alice", "RX Women")
	eventID := mustCreateEvent(t, repo, "Fran", models.ScoreTypeTime)

	result := saveScore(t, repo, athleteID, eventID, 225, "3:45", SaveScoreParams{})

	affected, err := repo.RejectScores(ctx, []int64{result.Score.ID}, "no video evidence", coach)
	if err != nil {
		t.Fatalf("RejectScores failed: %v", err)
	}
	if len(affected) != 1 {
		t.Fatalf("expected 1 affected score, got %v", affected)
	}

	s, err := repo.GetScore(ctx, result.Score.ID)
	if err != nil {
		t.Fatalf("GetScore failed: %v", err)
	}
	if s.Status != models.StatusRejected {
		t.Errorf("expected rejected status, got %s", s.Status)
	}
	if s.RejectReason != "no video evidence" {
		t.Errorf("expected reject reason retained, got %q", s.RejectReason)
	}

	audits, err := repo.ListAuditsForScore(ctx, result.Score.ID)
	if err != nil {
		t.Fatalf("ListAuditsForScore failed: %v", err)
	}
	last := audits[len(audits)-1]
	if last.Action != models.AuditRejected {
		t.Errorf("expected rejected audit, got %s", last.Action)
	}
	if last.OldValues["athlete_name"] != "Alice" || last.OldValues["display_value"] != "3:45" {
		t.Errorf("expected full snapshot in old values, got %v", last.OldValues)
	}
	if last.NewValues["reason"] != "no video evidence" {
		t.Errorf("expected reason in new values, got %v", last.NewValues)
	}
}

func TestRejectScores_SkipsConfirmed(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	athleteID := mustCreateAthlete(t, repo, "Alice", "RX Women")
	eventID := mustCreateEvent(t, repo, "Fran", models.ScoreTypeTime)

	result := saveScore(t, repo, athleteID, eventID, 225, "3:45", SaveScoreParams{})
	if _, err := repo.ConfirmScores(ctx, []int64{result.Score.ID}, coach); err != nil {
		t.Fatalf("ConfirmScores failed: %v", err)
	}

	affected, err := repo.RejectScores(ctx, []int64{result.Score.ID}, "too late", coach)
	if err != nil {
		t.Fatalf("RejectScores failed: %v", err)
	}
	if len(affected) != 0 {
		t.Errorf("expected confirmed score to be skipped, got %v", affected)
	}
}

func TestDeleteScore_AuditsSurvive(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	athleteID := mustCreateAthlete(t, repo, "Alice", "RX Women")
	eventID := mustCreateEvent(t, repo, "Fran", models.ScoreTypeTime)

	result := saveScore(t, repo, athleteID, eventID, 225, "3:45", SaveScoreParams{})

	if err := repo.DeleteScore(ctx, result.Score.ID); err != nil {
		t.Fatalf("DeleteScore failed: %v", err)
	}

	_, err := repo.GetScore(ctx, result.Score.ID)
	if !errors.IsKind(err, errors.ErrNotFound) {
		t.Errorf("expected not-found after delete, got %v", err)
	}

	audits, err := repo.ListAuditsForScore(ctx, result.Score.ID)
	if err != nil {
		t.Fatalf("ListAuditsForScore failed: %v", err)
	}
	if len(audits) != 1 {
		t.Errorf("audit trail must survive score deletion, got %d entries", len(audits))
	}
}

func TestDeleteScore_NonExistent(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.DeleteScore(context.Background(), 999)
	if !errors.IsKind(err, errors.ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestListPendingScores_JoinsNames(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	athleteID := mustCreateAthlete(t, repo, "Alice", "RX Women")
	eventID := mustCreateEvent(t, repo, "Fran", models.ScoreTypeTime)

	result := saveScore(t, repo, athleteID, eventID, 225, "3:45", SaveScoreParams{RX: true})
	if _, err := repo.ConfirmScores(ctx, []int64{result.Score.ID}, coach); err != nil {
		t.Fatalf("ConfirmScores failed: %v", err)
	}

	eventB := mustCreateEvent(t, repo, "Cindy", models.ScoreTypeReps)
	saveScore(t, repo, athleteID, eventB, 347, "347 reps", SaveScoreParams{})

	pending, err := repo.ListPendingScores(ctx)
	if err != nil {
		t.Fatalf("ListPendingScores failed: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending score, got %d", len(pending))
	}
	p := pending[0]
	if p.AthleteName != "Alice" || p.EventName != "Cindy" || p.Division != "RX Women" {
		t.Errorf("expected joined names, got %+v", p)
	}
	if p.ScoredBy != judge.Name {
		t.Errorf("expected scored_by %q, got %q", judge.Name, p.ScoredBy)
	}
}

func TestListScoresForLeaderboard_StatusFilter(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	alice := mustCreateAthlete(t, repo, "Alice", "RX Women")
	bob := mustCreateAthlete(t, repo, "Bob", "RX Men")
	eventID := mustCreateEvent(t, repo, "Fran", models.ScoreTypeTime)

	confirmed := saveScore(t, repo, alice, eventID, 225, "3:45", SaveScoreParams{})
	if _, err := repo.ConfirmScores(ctx, []int64{confirmed.Score.ID}, coach); err != nil {
		t.Fatalf("ConfirmScores failed: %v", err)
	}
	saveScore(t, repo, bob, eventID, 200, "3:20", SaveScoreParams{})

	// Confirmed only: Bob is pending, Bob is also in another division
	rows, err := repo.ListScoresForLeaderboard(ctx, "RX Women", false)
	if err != nil {
		t.Fatalf("ListScoresForLeaderboard failed: %v", err)
	}
	if len(rows) != 1 || rows[0].AthleteID != alice {
		t.Errorf("expected only Alice's confirmed score, got %+v", rows)
	}
	if rows[0].ScoreType != models.ScoreTypeTime {
		t.Errorf("expected score type joined from event, got %s", rows[0].ScoreType)
	}

	// Pending included, men's division
	rows, err = repo.ListScoresForLeaderboard(ctx, "RX Men", true)
	if err != nil {
		t.Fatalf("ListScoresForLeaderboard failed: %v", err)
	}
	if len(rows) != 1 || rows[0].Status != models.StatusPending {
		t.Errorf("expected Bob's pending score, got %+v", rows)
	}

	// Pending excluded, men's division
	rows, err = repo.ListScoresForLeaderboard(ctx, "RX Men", false)
	if err != nil {
		t.Fatalf("ListScoresForLeaderboard failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no confirmed scores for RX Men, got %+v", rows)
	}
}

func TestListScoresForLeaderboard_ExcludesRejected(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	alice := mustCreateAthlete(t, repo, "Alice", "RX Women")
	eventID := mustCreateEvent(t, repo, "Fran", models.ScoreTypeTime)

	result := saveScore(t, repo, alice, eventID, 225, "3:45", SaveScoreParams{})
	if _, err := repo.RejectScores(ctx, []int64{result.Score.ID}, "bad rep count", coach); err != nil {
		t.Fatalf("RejectScores failed: %v", err)
	}

	rows, err := repo.ListScoresForLeaderboard(ctx, "RX Women", true)
	if err != nil {
		t.Fatalf("ListScoresForLeaderboard failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("rejected scores must never rank, got %+v", rows)
	}
}

// ==================== Audit Tests ====================

func TestListRecentAudits_NewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	athleteID := mustCreateAthlete(t, repo, "Alice", "RX Women")
	eventID := mustCreateEvent(t, repo, "Fran", models.ScoreTypeTime)

	result := saveScore(t, repo, athleteID, eventID, 225, "3:45", SaveScoreParams{})
	if _, err := repo.ConfirmScores(ctx, []int64{result.Score.ID}, coach); err != nil {
		t.Fatalf("ConfirmScores failed: %v", err)
	}

	audits, err := repo.ListRecentAudits(ctx, 10)
	if err != nil {
		t.Fatalf("ListRecentAudits failed: %v", err)
	}
	if len(audits) != 2 {
		t.Fatalf("expected 2 audit entries, got %d", len(audits))
	}
	if audits[0].Action != models.AuditConfirmed || audits[1].Action != models.AuditCreated {
		t.Errorf("expected newest first, got %s then %s", audits[0].Action, audits[1].Action)
	}
}

// ==================== Settings Tests ====================

func TestSettings_DefaultScoringOpen(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	value, err := repo.GetSetting(ctx, "scoring_open")
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if value != "true" {
		t.Errorf("expected scoring_open default true, got %q", value)
	}

	if err := repo.SetSetting(ctx, "scoring_open", "false"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	value, err = repo.GetSetting(ctx, "scoring_open")
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if value != "false" {
		t.Errorf("expected scoring_open false after set, got %q", value)
	}
}

func TestGetSetting_Missing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetSetting(context.Background(), "no_such_key")
	if err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetCompetitionStats(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	athleteID := mustCreateAthlete(t, repo, "Alice", "RX Women")
	eventID := mustCreateEvent(t, repo, "Fran", models.ScoreTypeTime)
	result := saveScore(t, repo, athleteID, eventID, 225, "3:45", SaveScoreParams{})
	if _, err := repo.ConfirmScores(ctx, []int64{result.Score.ID}, coach); err != nil {
		t.Fatalf("ConfirmScores failed: %v", err)
	}

	stats, err := repo.GetCompetitionStats(ctx)
	if err != nil {
		t.Fatalf("GetCompetitionStats failed: %v", err)
	}
	if stats["total_athletes"] != 1 {
		t.Errorf("expected 1 athlete, got %v", stats["total_athletes"])
	}
	if stats["confirmed_scores"] != 1 {
		t.Errorf("expected 1 confirmed score, got %v", stats["confirmed_scores"])
	}
	if stats["pending_scores"] != 0 {
		t.Errorf("expected 0 pending scores, got %v", stats["pending_scores"])
	}
}
