package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/lexigo/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestProgressRepo_LoadBeforeSave(t *testing.T) {
	repo := openTestStore(t).ProgressRepo()

	p, found, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if found {
		t.Error("empty database reported a stored profile")
	}
	if p.Completed == nil || p.Scores == nil || p.DifficultWords == nil {
		t.Error("zero profile has nil maps")
	}
}

func TestProgressRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).ProgressRepo()

	p := progress.New()
	p = progress.RecordCompletion(p, "ex1", 24, 30)
	p = progress.ToggleDifficult(p, "serendipity")

	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, found, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !found {
		t.Fatal("saved profile not found")
	}
	if got.XP != 80 || !got.Completed["ex1"] || got.Scores["ex1"] != 80 {
		t.Errorf("loaded profile = %+v", got)
	}
	if !got.DifficultWords["serendipity"] {
		t.Error("difficult words lost in round trip")
	}
}

func TestProgressRepo_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).ProgressRepo()

	first := progress.RecordCompletion(progress.New(), "a", 1, 1)
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	second := progress.RecordCompletion(first, "b", 1, 1)
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, _, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.CompletedCount() != 2 {
		t.Errorf("completed count = %d, want 2", got.CompletedCount())
	}
}

func TestAttemptRepo_AppendAndQuery(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).AttemptRepo()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	attempts := []Attempt{
		{ExerciseID: "ex1", CorrectCount: 24, MaxScore: 30, Percent: 80, XPGained: 80, CreatedAt: base},
		{ExerciseID: "ex2", CorrectCount: 10, MaxScore: 10, Percent: 100, XPGained: 100, CreatedAt: base.Add(time.Minute)},
		{ExerciseID: "ex1", CorrectCount: 30, MaxScore: 30, Percent: 100, XPGained: 10, Replay: true, CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, a := range attempts {
		if err := repo.Append(ctx, a); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	byEx, err := repo.ByExercise(ctx, "ex1")
	if err != nil {
		t.Fatalf("ByExercise: %v", err)
	}
	if len(byEx) != 2 {
		t.Fatalf("ByExercise(ex1) returned %d rows, want 2", len(byEx))
	}
	for _, a := range byEx {
		if a.ExerciseID != "ex1" {
			t.Errorf("ByExercise leaked row for %q", a.ExerciseID)
		}
		if a.ID == "" {
			t.Error("Append did not assign an id")
		}
	}

	recent, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Recent(2) returned %d rows", len(recent))
	}
	if !recent[0].Replay || recent[0].Percent != 100 {
		t.Errorf("Recent[0] = %+v, want the replay attempt first", recent[0])
	}
}

func TestOpen_CreatesSchemaIdempotently(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	st, err := Open(path)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if err := st.ProgressRepo().Save(context.Background(), progress.New()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	st.Close()

	st2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer st2.Close()

	_, found, err := st2.ProgressRepo().Load(context.Background())
	if err != nil {
		t.Fatalf("Load after reopen: %v", err)
	}
	if !found {
		t.Error("profile lost across reopen")
	}
}
