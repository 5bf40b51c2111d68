package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/abhisek/lexigo/internal/app"
	"github.com/abhisek/lexigo/internal/curriculum"
	"github.com/abhisek/lexigo/internal/learner"
	"github.com/abhisek/lexigo/internal/speech"
	"github.com/abhisek/lexigo/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	unit, err := curriculum.Load()
	if err != nil {
		return fmt.Errorf("load curriculum: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{
		Unit:    unit,
		Learner: learner.NewService(ctx, st.ProgressRepo(), st.AttemptRepo()),
		Speaker: speech.NewSpeaker(),
		Rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	return app.Run(opts)
}
