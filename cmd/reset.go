package cmd

import (
	"fmt"

	"github.com/abhisek/lexigo/internal/progress"
	"github.com/abhisek/lexigo/internal/store"
	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learner data",
	Long:  "Reset XP, completions, scores, and difficult-word marks. The attempt log is kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetForce {
			fmt.Println("This erases all progress. Re-run with --force to confirm.")
			return nil
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

		if err := st.ProgressRepo().Save(cmd.Context(), progress.New()); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}
		fmt.Println("Progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "Skip the confirmation and reset immediately")
}
