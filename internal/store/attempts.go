package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Attempt records one completed exercise attempt. Rows are append-only;
// the stats command reads them back for per-exercise history.
type Attempt struct {
	ID           string
	ExerciseID   string
	CorrectCount int
	MaxScore     int
	Percent      int
	XPGained     int
	Replay       bool
	CreatedAt    time.Time
}

// AttemptRepo appends and queries the attempt log.
type AttemptRepo interface {
	Append(ctx context.Context, a Attempt) error
	ByExercise(ctx context.Context, exerciseID string) ([]Attempt, error)
	Recent(ctx context.Context, limit int) ([]Attempt, error)
}

type sqlAttemptRepo struct {
	db *sql.DB
}

// Append stores the attempt, assigning an id and timestamp when unset.
func (r *sqlAttemptRepo) Append(ctx context.Context, a Attempt) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO attempts (id, exercise_id, correct_count, max_score, percent, xp_gained, replay, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.ExerciseID, a.CorrectCount, a.MaxScore, a.Percent, a.XPGained,
		boolToInt(a.Replay), a.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append attempt: %w", err)
	}
	return nil
}

func (r *sqlAttemptRepo) ByExercise(ctx context.Context, exerciseID string) ([]Attempt, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, exercise_id, correct_count, max_score, percent, xp_gained, replay, created_at
		 FROM attempts WHERE exercise_id = ? ORDER BY created_at`,
		exerciseID,
	)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()
	return scanAttempts(rows)
}

func (r *sqlAttemptRepo) Recent(ctx context.Context, limit int) ([]Attempt, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, exercise_id, correct_count, max_score, percent, xp_gained, replay, created_at
		 FROM attempts ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query recent attempts: %w", err)
	}
	defer rows.Close()
	return scanAttempts(rows)
}

func scanAttempts(rows *sql.Rows) ([]Attempt, error) {
	var out []Attempt
	for rows.Next() {
		var a Attempt
		var replay int
		var created string
		if err := rows.Scan(&a.ID, &a.ExerciseID, &a.CorrectCount, &a.MaxScore,
			&a.Percent, &a.XPGained, &replay, &created); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		a.Replay = replay != 0
		t, err := time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse attempt timestamp: %w", err)
		}
		a.CreatedAt = t
		out = append(out, a)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// MemAttemptRepo is an in-memory AttemptRepo for tests.
type MemAttemptRepo struct {
	Attempts []Attempt
}

func (m *MemAttemptRepo) Append(ctx context.Context, a Attempt) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	m.Attempts = append(m.Attempts, a)
	return nil
}

func (m *MemAttemptRepo) ByExercise(ctx context.Context, exerciseID string) ([]Attempt, error) {
	var out []Attempt
	for _, a := range m.Attempts {
		if a.ExerciseID == exerciseID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MemAttemptRepo) Recent(ctx context.Context, limit int) ([]Attempt, error) {
	n := len(m.Attempts)
	var out []Attempt
	for i := n - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.Attempts[i])
	}
	return out, nil
}
