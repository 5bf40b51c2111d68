package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/lexigo/internal/curriculum"
	"github.com/abhisek/lexigo/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		p, found, err := st.ProgressRepo().Load(ctx)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		if !found {
			fmt.Println("No progress yet. Run lexigo to start learning.")
			return nil
		}

		total := unit.ActivityCount()
		fmt.Printf("Unit %d: %s\n", unit.Info.Number, unit.Info.Title)
		fmt.Printf("XP: %d\n", p.XP)
		fmt.Printf("Completed: %d/%d activities\n", p.CompletedCount(), total)

		if len(p.Scores) > 0 {
			fmt.Println("\nBest scores:")
			ids := make([]string, 0, len(p.Scores))
			for id := range p.Scores {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			for _, id := range ids {
				attempts, err := st.AttemptRepo().ByExercise(ctx, id)
				if err != nil {
					return fmt.Errorf("load attempts: %w", err)
				}
				fmt.Printf("  %-24s %3d%%  (%d attempt(s))\n", id, p.Scores[id], len(attempts))
			}
		}

		if words := p.DifficultList(); len(words) > 0 {
			fmt.Printf("\nDifficult words: %s\n", strings.Join(words, ", "))
		}

		return nil
	},
}
