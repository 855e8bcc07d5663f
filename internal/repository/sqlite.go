package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/wodboard/wodboard/internal/errors"
	"github.com/wodboard/wodboard/internal/models"
)

// firstParticipantNumber is the number assigned to the first registered
// athlete; subsequent athletes get the next free number, monotonically.
const firstParticipantNumber = 101

// Repository provides data access methods
type Repository struct {
	db *sql.DB
}

// New creates a new Repository
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign key constraints
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, err
	}

	// Set connection pool settings
	db.SetMaxOpenConns(1) // SQLite works best with single connection
	db.SetMaxIdleConns(1)

	repo := &Repository{db: db}

	// Run migrations
	if err := repo.migrate(); err != nil {
		return nil, err
	}

	return repo, nil
}

// DB returns the underlying database connection (for transactions)
func (r *Repository) DB() *sql.DB {
	return r.db
}

// Close closes the database connection
func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping checks if the database connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// migrate runs database migrations
func (r *Repository) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS athletes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			full_name TEXT NOT NULL,
			gender TEXT,
			division TEXT NOT NULL,
			participant_number INTEGER UNIQUE NOT NULL,
			email TEXT,
			phone TEXT,
			credential_code TEXT UNIQUE,
			active BOOLEAN DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			score_type TEXT NOT NULL,
			display_order INTEGER NOT NULL,
			active BOOLEAN DEFAULT 1
		)`,
		`CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			athlete_id INTEGER NOT NULL,
			event_id INTEGER NOT NULL,
			raw_value REAL NOT NULL,
			display_value TEXT NOT NULL,
			rx BOOLEAN DEFAULT 1,
			status TEXT NOT NULL DEFAULT 'pending',
			reject_reason TEXT,
			evidence_ref TEXT,
			notes TEXT,
			scored_by TEXT,
			confirmed_by TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (athlete_id) REFERENCES athletes(id),
			FOREIGN KEY (event_id) REFERENCES events(id),
			UNIQUE(athlete_id, event_id)
		)`,
		`CREATE TABLE IF NOT EXISTS score_audits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score_id INTEGER NOT NULL,
			action TEXT NOT NULL,
			old_values TEXT,
			new_values TEXT,
			actor_id INTEGER,
			actor_name TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scores_athlete ON scores(athlete_id)`,
		`CREATE INDEX IF NOT EXISTS idx_scores_event ON scores(event_id)`,
		`CREATE INDEX IF NOT EXISTS idx_scores_status ON scores(status)`,
		`CREATE INDEX IF NOT EXISTS idx_audits_score ON score_audits(score_id)`,
		`CREATE INDEX IF NOT EXISTS idx_athletes_division ON athletes(division)`,
	}

	// score_audits.score_id has no foreign key on purpose: the audit trail
	// must survive deletion of the score it references.

	for _, migration := range migrations {
		if _, err := r.db.Exec(migration); err != nil {
			return err
		}
	}

	defaultSettings := map[string]string{
		"scoring_open": "true",
	}

	for key, value := range defaultSettings {
		_, err := r.db.Exec(`INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)`, key, value)
		if err != nil {
			return err
		}
	}

	return nil
}

// ==================== Athlete Methods ====================

func scanAthlete(row interface{ Scan(...any) error }) (*models.Athlete, error) {
	var a models.Athlete
	var gender, email, phone, credential sql.NullString
	err := row.Scan(&a.ID, &a.FullName, &gender, &a.Division, &a.ParticipantNumber,
		&email, &phone, &credential, &a.Active)
	if err != nil {
		return nil, err
	}
	a.Gender = gender.String
	a.Email = email.String
	a.Phone = phone.String
	a.CredentialCode = credential.String
	return &a, nil
}

const athleteColumns = `id, full_name, gender, division, participant_number, email, phone, credential_code, active`

// ListAthletes returns all active athletes ordered by participant number
func (r *Repository) ListAthletes(ctx context.Context) ([]models.Athlete, error) {
	return r.listAthletes(ctx, `SELECT `+athleteColumns+` FROM athletes WHERE active = 1 ORDER BY participant_number`)
}

// ListAthletesByDivision returns all active athletes in a division
func (r *Repository) ListAthletesByDivision(ctx context.Context, division string) ([]models.Athlete, error) {
	return r.listAthletes(ctx,
		`SELECT `+athleteColumns+` FROM athletes WHERE active = 1 AND division = ? ORDER BY participant_number`,
		division)
}

func (r *Repository) listAthletes(ctx context.Context, query string, args ...any) ([]models.Athlete, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var athletes []models.Athlete
	for rows.Next() {
		a, err := scanAthlete(rows)
		if err != nil {
			return nil, err
		}
		athletes = append(athletes, *a)
	}
	return athletes, rows.Err()
}

// GetAthlete returns an athlete by ID
func (r *Repository) GetAthlete(ctx context.Context, id int64) (*models.Athlete, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+athleteColumns+` FROM athletes WHERE id = ? AND active = 1`, id)
	a, err := scanAthlete(row)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("athlete not found")
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// CreateAthlete registers an athlete and assigns the next participant number.
// The number read and the insert happen in one transaction so concurrent
// registrations never share a number.
func (r *Repository) CreateAthlete(ctx context.Context, a models.Athlete) (int64, int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, err
	}
	defer tx.Rollback()

	var number int
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(participant_number) + 1, ?) FROM athletes`, firstParticipantNumber).Scan(&number)
	if err != nil {
		return 0, 0, err
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO athletes (full_name, gender, division, participant_number, email, phone, credential_code, active)
		VALUES (?, ?, ?, ?, ?, ?, ?, 1)
	`, a.FullName, a.Gender, a.Division, number, a.Email, a.Phone, a.CredentialCode)
	if err != nil {
		return 0, 0, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, err
	}
	return id, number, nil
}

// UpdateAthlete updates an athlete's editable fields. Division and
// participant number are immutable outside admin tooling.
func (r *Repository) UpdateAthlete(ctx context.Context, id int64, a models.Athlete) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE athletes SET full_name = ?, gender = ?, email = ?, phone = ? WHERE id = ? AND active = 1`,
		a.FullName, a.Gender, a.Email, a.Phone, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.NotFound("athlete not found")
	}
	return nil
}

// DeleteAthlete soft-deletes an athlete
func (r *Repository) DeleteAthlete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE athletes SET active = 0 WHERE id = ?`, id)
	return err
}

// ListDivisions returns the distinct divisions of active athletes
func (r *Repository) ListDivisions(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT division FROM athletes WHERE active = 1 ORDER BY division`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var divisions []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		divisions = append(divisions, d)
	}
	return divisions, rows.Err()
}

// ==================== Event Methods ====================

// ListEvents returns all events including inactive ones (for admin views)
func (r *Repository) ListEvents(ctx context.Context) ([]models.Event, error) {
	return r.listEvents(ctx, `SELECT id, name, score_type, display_order, active FROM events ORDER BY display_order`)
}

// ListActiveEvents returns active events in display order (leaderboard columns)
func (r *Repository) ListActiveEvents(ctx context.Context) ([]models.Event, error) {
	return r.listEvents(ctx, `SELECT id, name, score_type, display_order, active FROM events WHERE active = 1 ORDER BY display_order`)
}

func (r *Repository) listEvents(ctx context.Context, query string) ([]models.Event, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		var scoreType string
		if err := rows.Scan(&e.ID, &e.Name, &scoreType, &e.DisplayOrder, &e.Active); err != nil {
			return nil, err
		}
		e.ScoreType = models.ScoreType(scoreType)
		events = append(events, e)
	}
	return events, rows.Err()
}

// GetEvent returns an event by ID
func (r *Repository) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	var e models.Event
	var scoreType string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, score_type, display_order, active FROM events WHERE id = ?`, id).
		Scan(&e.ID, &e.Name, &scoreType, &e.DisplayOrder, &e.Active)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("event not found")
	}
	if err != nil {
		return nil, err
	}
	e.ScoreType = models.ScoreType(scoreType)
	return &e, nil
}

// CreateEvent creates a new event
func (r *Repository) CreateEvent(ctx context.Context, e models.Event) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO events (name, score_type, display_order, active) VALUES (?, ?, ?, 1)`,
		e.Name, string(e.ScoreType), e.DisplayOrder)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// UpdateEvent updates an event
func (r *Repository) UpdateEvent(ctx context.Context, id int64, e models.Event) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE events SET name = ?, score_type = ?, display_order = ?, active = ? WHERE id = ?`,
		e.Name, string(e.ScoreType), e.DisplayOrder, e.Active, id)
	return err
}

// DeleteEvent soft-deletes an event
func (r *Repository) DeleteEvent(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE events SET active = 0 WHERE id = ?`, id)
	return err
}

// ==================== Score Methods ====================

const scoreColumns = `id, athlete_id, event_id, raw_value, display_value, rx, status, reject_reason, evidence_ref, notes, scored_by, confirmed_by, created_at, updated_at`

func scanScore(row interface{ Scan(...any) error }) (*models.Score, error) {
	var s models.Score
	var status string
	var rejectReason, evidenceRef, notes, scoredBy, confirmedBy, createdAt, updatedAt sql.NullString
	err := row.Scan(&s.ID, &s.AthleteID, &s.EventID, &s.RawValue, &s.DisplayValue, &s.RX,
		&status, &rejectReason, &evidenceRef, &notes, &scoredBy, &confirmedBy, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	s.Status = models.ScoreStatus(status)
	s.RejectReason = rejectReason.String
	s.EvidenceRef = evidenceRef.String
	s.Notes = notes.String
	s.ScoredBy = scoredBy.String
	s.ConfirmedBy = confirmedBy.String
	s.CreatedAt = createdAt.String
	s.UpdatedAt = updatedAt.String
	return &s, nil
}

// GetScore returns a score by ID
func (r *Repository) GetScore(ctx context.Context, id int64) (*models.Score, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+scoreColumns+` FROM scores WHERE id = ?`, id)
	s, err := scanScore(row)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("score not found")
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetScoreByAthleteEvent returns the score for an (athlete, event) pair
func (r *Repository) GetScoreByAthleteEvent(ctx context.Context, athleteID, eventID int64) (*models.Score, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+scoreColumns+` FROM scores WHERE athlete_id = ? AND event_id = ?`, athleteID, eventID)
	s, err := scanScore(row)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("score not found")
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// SaveScore creates or overwrites the score for an (athlete, event) pair.
// The existing-row check, the write, and the audit insert share one
// transaction, so a concurrent submission for the same pair cannot slip
// between the check and the write.
func (r *Repository) SaveScore(ctx context.Context, p SaveScoreParams) (*SaveScoreResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	now := time.Now()

	existing, err := scanScore(tx.QueryRowContext(ctx,
		`SELECT `+scoreColumns+` FROM scores WHERE athlete_id = ? AND event_id = ?`,
		p.AthleteID, p.EventID))
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}

	result := &SaveScoreResult{}

	if existing != nil {
		if !p.Overwrite {
			return nil, errors.Conflictf("a score already exists for this athlete and event: %s", existing.DisplayValue)
		}
		if existing.Status == models.StatusConfirmed && !p.OverwriteConfirmed {
			return nil, errors.Forbidden("a confirmed score can only be replaced by coach, admin, or owner")
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE scores
			SET raw_value = ?, display_value = ?, rx = ?, status = 'pending', reject_reason = NULL,
			    evidence_ref = ?, notes = ?, scored_by = ?, confirmed_by = NULL, updated_at = ?
			WHERE id = ?
		`, p.RawValue, p.Display, p.RX, p.EvidenceRef, p.Notes, p.Actor.Name, now, existing.ID)
		if err != nil {
			return nil, err
		}

		err = insertAudit(ctx, tx, existing.ID, models.AuditUpdated, p.Actor,
			map[string]interface{}{
				"raw_value":     existing.RawValue,
				"display_value": existing.DisplayValue,
				"rx":            existing.RX,
				"status":        string(existing.Status),
			},
			map[string]interface{}{
				"raw_value":     p.RawValue,
				"display_value": p.Display,
				"rx":            p.RX,
				"status":        string(models.StatusPending),
			})
		if err != nil {
			return nil, err
		}

		result.Previous = existing
		result.Score = models.Score{
			ID: existing.ID, AthleteID: p.AthleteID, EventID: p.EventID,
			RawValue: p.RawValue, DisplayValue: p.Display, RX: p.RX,
			Status: models.StatusPending, EvidenceRef: p.EvidenceRef, Notes: p.Notes,
			ScoredBy: p.Actor.Name,
		}
	} else {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO scores (athlete_id, event_id, raw_value, display_value, rx, status, evidence_ref, notes, scored_by, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, 'pending', ?, ?, ?, ?, ?)
		`, p.AthleteID, p.EventID, p.RawValue, p.Display, p.RX, p.EvidenceRef, p.Notes, p.Actor.Name, now, now)
		if err != nil {
			return nil, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, err
		}

		err = insertAudit(ctx, tx, id, models.AuditCreated, p.Actor, nil,
			map[string]interface{}{
				"raw_value":     p.RawValue,
				"display_value": p.Display,
				"rx":            p.RX,
				"status":        string(models.StatusPending),
			})
		if err != nil {
			return nil, err
		}

		result.Created = true
		result.Score = models.Score{
			ID: id, AthleteID: p.AthleteID, EventID: p.EventID,
			RawValue: p.RawValue, DisplayValue: p.Display, RX: p.RX,
			Status: models.StatusPending, EvidenceRef: p.EvidenceRef, Notes: p.Notes,
			ScoredBy: p.Actor.Name,
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return result, nil
}

// ConfirmScores transitions the given pending scores to confirmed, writing
// one audit row per affected score in the same transaction. Scores not
// currently pending are skipped silently. Returns the affected IDs.
func (r *Repository) ConfirmScores(ctx context.Context, ids []int64, actor models.Actor) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `SELECT id FROM scores WHERE status = 'pending' AND id IN (` + inPlaceholders(len(ids)) + `)`
	rows, err := tx.QueryContext(ctx, query, int64Args(ids)...)
	if err != nil {
		return nil, err
	}
	var pending []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, err
		}
		pending = append(pending, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(pending) == 0 {
		return nil, tx.Commit()
	}

	now := time.Now()
	for _, id := range pending {
		_, err := tx.ExecContext(ctx,
			`UPDATE scores SET status = 'confirmed', confirmed_by = ?, updated_at = ? WHERE id = ?`,
			actor.Name, now, id)
		if err != nil {
			return nil, err
		}

		err = insertAudit(ctx, tx, id, models.AuditConfirmed, actor,
			map[string]interface{}{"status": string(models.StatusPending)},
			map[string]interface{}{"status": string(models.StatusConfirmed), "confirmed_by": actor.Name})
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return pending, nil
}

// RejectScores transitions the given pending scores to rejected, retaining
// the rows with the reason so the judge can resubmit over them. Each audit
// row snapshots the athlete, event, and score values before the transition.
func (r *Repository) RejectScores(ctx context.Context, ids []int64, reason string, actor models.Actor) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	type rejectRow struct {
		id          int64
		athleteID   int64
		athleteName string
		eventID     int64
		eventName   string
		raw         float64
		display     string
	}

	query := `
		SELECT s.id, s.athlete_id, a.full_name, s.event_id, e.name, s.raw_value, s.display_value
		FROM scores s
		JOIN athletes a ON s.athlete_id = a.id
		JOIN events e ON s.event_id = e.id
		WHERE s.status = 'pending' AND s.id IN (` + inPlaceholders(len(ids)) + `)`
	rows, err := tx.QueryContext(ctx, query, int64Args(ids)...)
	if err != nil {
		return nil, err
	}
	var targets []rejectRow
	for rows.Next() {
		var t rejectRow
		if err := rows.Scan(&t.id, &t.athleteID, &t.athleteName, &t.eventID, &t.eventName, &t.raw, &t.display); err != nil {
			rows.Close()
			return nil, err
		}
		targets = append(targets, t)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return nil, tx.Commit()
	}

	now := time.Now()
	affected := make([]int64, 0, len(targets))
	for _, t := range targets {
		_, err := tx.ExecContext(ctx,
			`UPDATE scores SET status = 'rejected', reject_reason = ?, updated_at = ? WHERE id = ?`,
			reason, now, t.id)
		if err != nil {
			return nil, err
		}

		err = insertAudit(ctx, tx, t.id, models.AuditRejected, actor,
			map[string]interface{}{
				"athlete_id":    t.athleteID,
				"athlete_name":  t.athleteName,
				"event_id":      t.eventID,
				"event_name":    t.eventName,
				"raw_value":     t.raw,
				"display_value": t.display,
				"status":        string(models.StatusPending),
			},
			map[string]interface{}{
				"status": string(models.StatusRejected),
				"reason": reason,
			})
		if err != nil {
			return nil, err
		}
		affected = append(affected, t.id)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return affected, nil
}

// DeleteScore hard-deletes a score. Its audit rows are retained.
func (r *Repository) DeleteScore(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM scores WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.NotFound("score not found")
	}
	return nil
}

// PendingScoreRow is one score awaiting moderation, with names denormalized
// for the review queue.
type PendingScoreRow struct {
	ScoreID      int64   `json:"score_id"`
	AthleteID    int64   `json:"athlete_id"`
	AthleteName  string  `json:"athlete_name"`
	Division     string  `json:"division"`
	EventID      int64   `json:"event_id"`
	EventName    string  `json:"event_name"`
	RawValue     float64 `json:"raw_value"`
	DisplayValue string  `json:"display_value"`
	RX           bool    `json:"rx"`
	ScoredBy     string  `json:"scored_by"`
	CreatedAt    string  `json:"created_at"`
}

// ListPendingScores returns all pending scores with athlete and event names
func (r *Repository) ListPendingScores(ctx context.Context) ([]PendingScoreRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.id, s.athlete_id, a.full_name, a.division, s.event_id, e.name,
		       s.raw_value, s.display_value, s.rx, s.scored_by, s.created_at
		FROM scores s
		JOIN athletes a ON s.athlete_id = a.id
		JOIN events e ON s.event_id = e.id
		WHERE s.status = 'pending'
		ORDER BY s.created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pending []PendingScoreRow
	for rows.Next() {
		var p PendingScoreRow
		var scoredBy, createdAt sql.NullString
		if err := rows.Scan(&p.ScoreID, &p.AthleteID, &p.AthleteName, &p.Division, &p.EventID, &p.EventName,
			&p.RawValue, &p.DisplayValue, &p.RX, &scoredBy, &createdAt); err != nil {
			return nil, err
		}
		p.ScoredBy = scoredBy.String
		p.CreatedAt = createdAt.String
		pending = append(pending, p)
	}
	return pending, rows.Err()
}

// LeaderboardScoreRow is one qualifying score with enough event metadata to
// rank it. One query returns every row a leaderboard computation needs, so a
// single facade call works from one consistent result set.
type LeaderboardScoreRow struct {
	ScoreID      int64
	AthleteID    int64
	EventID      int64
	RawValue     float64
	DisplayValue string
	RX           bool
	Status       models.ScoreStatus
	ScoreType    models.ScoreType
}

// ListScoresForLeaderboard returns confirmed (optionally also pending) scores
// for active athletes of a division on active events.
func (r *Repository) ListScoresForLeaderboard(ctx context.Context, division string, includePending bool) ([]LeaderboardScoreRow, error) {
	statuses := `('confirmed')`
	if includePending {
		statuses = `('confirmed', 'pending')`
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT s.id, s.athlete_id, s.event_id, s.raw_value, s.display_value, s.rx, s.status, e.score_type
		FROM scores s
		JOIN athletes a ON s.athlete_id = a.id
		JOIN events e ON s.event_id = e.id
		WHERE a.division = ? AND a.active = 1 AND e.active = 1 AND s.status IN `+statuses+`
	`, division)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []LeaderboardScoreRow
	for rows.Next() {
		var s LeaderboardScoreRow
		var status, scoreType string
		if err := rows.Scan(&s.ScoreID, &s.AthleteID, &s.EventID, &s.RawValue, &s.DisplayValue, &s.RX, &status, &scoreType); err != nil {
			return nil, err
		}
		s.Status = models.ScoreStatus(status)
		s.ScoreType = models.ScoreType(scoreType)
		scores = append(scores, s)
	}
	return scores, rows.Err()
}

// ==================== Audit Methods ====================

// insertAudit appends one audit row inside the caller's transaction.
func insertAudit(ctx context.Context, tx *sql.Tx, scoreID int64, action models.AuditAction, actor models.Actor, oldValues, newValues map[string]interface{}) error {
	oldJSON, err := marshalSnapshot(oldValues)
	if err != nil {
		return err
	}
	newJSON, err := marshalSnapshot(newValues)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO score_audits (score_id, action, old_values, new_values, actor_id, actor_name)
		VALUES (?, ?, ?, ?, ?, ?)
	`, scoreID, string(action), oldJSON, newJSON, actor.ID, actor.Name)
	return err
}

func marshalSnapshot(values map[string]interface{}) (sql.NullString, error) {
	if len(values) == 0 {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(values)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("marshal audit snapshot: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

// ListAuditsForScore returns all audit entries for a score, oldest first
func (r *Repository) ListAuditsForScore(ctx context.Context, scoreID int64) ([]models.ScoreAudit, error) {
	return r.listAudits(ctx, `
		SELECT id, score_id, action, old_values, new_values, actor_id, actor_name, created_at
		FROM score_audits WHERE score_id = ? ORDER BY id
	`, scoreID)
}

// ListRecentAudits returns the most recent audit entries
func (r *Repository) ListRecentAudits(ctx context.Context, limit int) ([]models.ScoreAudit, error) {
	return r.listAudits(ctx, `
		SELECT id, score_id, action, old_values, new_values, actor_id, actor_name, created_at
		FROM score_audits ORDER BY id DESC LIMIT ?
	`, limit)
}

func (r *Repository) listAudits(ctx context.Context, query string, args ...any) ([]models.ScoreAudit, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var audits []models.ScoreAudit
	for rows.Next() {
		var a models.ScoreAudit
		var action string
		var oldJSON, newJSON, actorName, createdAt sql.NullString
		var actorID sql.NullInt64
		if err := rows.Scan(&a.ID, &a.ScoreID, &action, &oldJSON, &newJSON, &actorID, &actorName, &createdAt); err != nil {
			return nil, err
		}
		a.Action = models.AuditAction(action)
		a.ActorID = actorID.Int64
		a.ActorName = actorName.String
		a.CreatedAt = createdAt.String
		if oldJSON.Valid && oldJSON.String != "" {
			if err := json.Unmarshal([]byte(oldJSON.String), &a.OldValues); err != nil {
				return nil, err
			}
		}
		if newJSON.Valid && newJSON.String != "" {
			if err := json.Unmarshal([]byte(newJSON.String), &a.NewValues); err != nil {
				return nil, err
			}
		}
		audits = append(audits, a)
	}
	return audits, rows.Err()
}

// ==================== Settings Methods ====================

// GetSetting retrieves a setting value
func (r *Repository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	return value, err
}

// SetSetting updates a setting value
func (r *Repository) SetSetting(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`, key, value)
	return err
}

// GetCompetitionStats returns overall competition statistics
func (r *Repository) GetCompetitionStats(ctx context.Context) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	counts := []struct {
		key   string
		query string
	}{
		{"total_athletes", `SELECT COUNT(*) FROM athletes WHERE active = 1`},
		{"total_events", `SELECT COUNT(*) FROM events WHERE active = 1`},
		{"total_scores", `SELECT COUNT(*) FROM scores`},
		{"pending_scores", `SELECT COUNT(*) FROM scores WHERE status = 'pending'`},
		{"confirmed_scores", `SELECT COUNT(*) FROM scores WHERE status = 'confirmed'`},
		{"rejected_scores", `SELECT COUNT(*) FROM scores WHERE status = 'rejected'`},
	}

	for _, c := range counts {
		var n int
		if err := r.db.QueryRowContext(ctx, c.query).Scan(&n); err != nil {
			return nil, err
		}
		stats[c.key] = n
	}

	return stats, nil
}

// ==================== Helpers ====================

// inPlaceholders returns "?, ?, ..." with n placeholders.
func inPlaceholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func int64Args(ids []int64) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
