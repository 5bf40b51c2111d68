package cmd

import (
	"fmt"

	"github.com/abhisek/lexigo/internal/curriculum"
	"github.com/abhisek/lexigo/internal/export"
	"github.com/abhisek/lexigo/internal/store"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the unit vocabulary to a spreadsheet",
	Long:  "Write the unit's vocabulary list to an .xlsx workbook, flagging words marked difficult.",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		p, _, err := st.ProgressRepo().Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		if err := export.WriteVocabulary(exportOut, unit, p); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
		fmt.Println("Wrote", exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "vocabulary.xlsx", "Output file path")
}
