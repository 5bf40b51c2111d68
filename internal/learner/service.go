// Package learner hosts the single mutable learner profile. The TUI
// event loop is the only caller, so every method runs to completion
// synchronously; the pure reducers live in the progress package and
// this service owns applying them and writing the result through.
package learner

import (
	"context"

	"github.com/abhisek/lexigo/internal/progress"
	"github.com/abhisek/lexigo/internal/store"
)

// Service owns the in-memory learner profile. After every mutation the
// new profile is written to the ProgressRepo; a failed save keeps the
// in-memory value authoritative for the rest of the session and is
// remembered for display rather than surfaced as a hard error.
type Service struct {
	progressRepo store.ProgressRepo
	attemptRepo  store.AttemptRepo

	current progress.Progress
	saveErr error
}

// NewService loads the stored profile, or starts from the zero profile
// when none exists or the load fails. A load failure is deliberately
// non-fatal: the learner can keep working, with durability degraded.
func NewService(ctx context.Context, progressRepo store.ProgressRepo, attemptRepo store.AttemptRepo) *Service {
	s := &Service{
		progressRepo: progressRepo,
		attemptRepo:  attemptRepo,
		current:      progress.New(),
	}
	if progressRepo != nil {
		if p, found, err := progressRepo.Load(ctx); err == nil && found {
			s.current = p
		}
	}
	return s
}

// Progress returns a snapshot of the current profile.
func (s *Service) Progress() progress.Progress {
	return s.current.Clone()
}

// SaveErr returns the error from the most recent save attempt, or nil.
func (s *Service) SaveErr() error {
	return s.saveErr
}

// RecordCompletion folds one graded attempt into the profile, persists
// the new profile, and appends to the attempt log. It returns the XP
// gained by this attempt.
func (s *Service) RecordCompletion(ctx context.Context, exerciseID string, correctCount, maxScore int) int {
	replay := s.current.Completed[exerciseID]
	gain := s.current.XPGain(exerciseID, correctCount, maxScore)

	s.current = progress.RecordCompletion(s.current, exerciseID, correctCount, maxScore)
	s.persist(ctx)

	if s.attemptRepo != nil {
		percent := 0
		if maxScore > 0 {
			percent = correctCount * 100 / maxScore
		}
		// Log failures share the save-error slot; the attempt log is
		// advisory and never blocks the session.
		if err := s.attemptRepo.Append(ctx, store.Attempt{
			ExerciseID:   exerciseID,
			CorrectCount: correctCount,
			MaxScore:     maxScore,
			Percent:      percent,
			XPGained:     gain,
			Replay:       replay,
		}); err != nil && s.saveErr == nil {
			s.saveErr = err
		}
	}
	return gain
}

// ToggleDifficult flips a word's membership in the difficult set and
// persists the result.
func (s *Service) ToggleDifficult(ctx context.Context, word string) {
	s.current = progress.ToggleDifficult(s.current, word)
	s.persist(ctx)
}

func (s *Service) persist(ctx context.Context) {
	if s.progressRepo == nil {
		return
	}
	s.saveErr = s.progressRepo.Save(ctx, s.current)
}
