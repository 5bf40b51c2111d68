package learner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lexigo/internal/progress"
	"github.com/abhisek/lexigo/internal/store"
)

func TestService_RecordCompletionPersistsAndLogs(t *testing.T) {
	ctx := context.Background()
	progressRepo := &store.MemProgressRepo{}
	attemptRepo := &store.MemAttemptRepo{}
	svc := NewService(ctx, progressRepo, attemptRepo)

	gain := svc.RecordCompletion(ctx, "ex1", 24, 30)
	assert.Equal(t, 80, gain)
	assert.Equal(t, 80, svc.Progress().XP)
	require.NoError(t, svc.SaveErr())

	saved, found, err := progressRepo.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 80, saved.XP)

	require.Len(t, attemptRepo.Attempts, 1)
	a := attemptRepo.Attempts[0]
	assert.Equal(t, "ex1", a.ExerciseID)
	assert.Equal(t, 80, a.Percent)
	assert.Equal(t, 80, a.XPGained)
	assert.False(t, a.Replay)

	// Replay earns the throttled gain and is flagged in the log.
	gain = svc.RecordCompletion(ctx, "ex1", 30, 30)
	assert.Equal(t, 10, gain)
	require.Len(t, attemptRepo.Attempts, 2)
	assert.True(t, attemptRepo.Attempts[1].Replay)
	assert.Equal(t, 10, attemptRepo.Attempts[1].XPGained)
}

func TestService_LoadsStoredProfile(t *testing.T) {
	ctx := context.Background()
	progressRepo := &store.MemProgressRepo{}
	stored := progress.RecordCompletion(progress.New(), "ex1", 10, 10)
	require.NoError(t, progressRepo.Save(ctx, stored))

	svc := NewService(ctx, progressRepo, &store.MemAttemptRepo{})
	assert.Equal(t, 100, svc.Progress().XP)
	assert.True(t, svc.Progress().Completed["ex1"])
}

func TestService_SaveFailureDegradesGracefully(t *testing.T) {
	ctx := context.Background()
	progressRepo := &store.MemProgressRepo{FailSaves: true}
	svc := NewService(ctx, progressRepo, &store.MemAttemptRepo{})

	gain := svc.RecordCompletion(ctx, "ex1", 5, 10)

	// The session keeps the new state even though the write failed.
	assert.Equal(t, 50, gain)
	assert.Equal(t, 50, svc.Progress().XP)
	assert.Error(t, svc.SaveErr())

	// A later successful save clears the sticky error.
	progressRepo.FailSaves = false
	svc.ToggleDifficult(ctx, "word")
	assert.NoError(t, svc.SaveErr())
	assert.True(t, svc.Progress().DifficultWords["word"])
}

func TestService_NilReposAreInMemoryOnly(t *testing.T) {
	ctx := context.Background()
	svc := NewService(ctx, nil, nil)

	gain := svc.RecordCompletion(ctx, "ex1", 1, 1)
	assert.Equal(t, 100, gain)
	assert.NoError(t, svc.SaveErr())
	assert.Equal(t, 100, svc.Progress().XP)
}

func TestService_ProgressReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	svc := NewService(ctx, &store.MemProgressRepo{}, nil)
	svc.ToggleDifficult(ctx, "word")

	snap := svc.Progress()
	snap.DifficultWords["tampered"] = true
	snap.XP = 999

	assert.False(t, svc.Progress().DifficultWords["tampered"])
	assert.Equal(t, 0, svc.Progress().XP)
}
