package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/lexigo/internal/progress"
)

// profileID keys the single local learner profile. There is exactly
// one learner per database.
const profileID = "local"

// ProgressRepo loads and saves the learner profile. Absence of a
// stored profile is not an error: Load reports found=false and the
// caller starts from the zero profile.
type ProgressRepo interface {
	Load(ctx context.Context) (p progress.Progress, found bool, err error)
	Save(ctx context.Context, p progress.Progress) error
}

// sqlProgressRepo implements ProgressRepo on the progress table,
// storing the profile as a single JSON row.
type sqlProgressRepo struct {
	db *sql.DB
}

func (r *sqlProgressRepo) Load(ctx context.Context) (progress.Progress, bool, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM progress WHERE profile_id = ?`, profileID,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return progress.New(), false, nil
	}
	if err != nil {
		return progress.New(), false, fmt.Errorf("load progress: %w", err)
	}

	var p progress.Progress
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return progress.New(), false, fmt.Errorf("decode progress: %w", err)
	}
	// Old rows may predate a field; keep every map non-nil.
	if p.Completed == nil {
		p.Completed = make(map[string]bool)
	}
	if p.Scores == nil {
		p.Scores = make(map[string]int)
	}
	if p.DifficultWords == nil {
		p.DifficultWords = make(map[string]bool)
	}
	return p, true, nil
}

func (r *sqlProgressRepo) Save(ctx context.Context, p progress.Progress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO progress (profile_id, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(profile_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		profileID, string(data), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// MemProgressRepo is an in-memory ProgressRepo for tests and for
// running the TUI without a database.
type MemProgressRepo struct {
	p     progress.Progress
	found bool

	// FailSaves makes Save return an error, for exercising the
	// host's degraded-persistence path.
	FailSaves bool
}

func (m *MemProgressRepo) Load(ctx context.Context) (progress.Progress, bool, error) {
	if !m.found {
		return progress.New(), false, nil
	}
	return m.p.Clone(), true, nil
}

func (m *MemProgressRepo) Save(ctx context.Context, p progress.Progress) error {
	if m.FailSaves {
		return errors.New("save disabled")
	}
	m.p = p.Clone()
	m.found = true
	return nil
}
