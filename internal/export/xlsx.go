// Package export writes the unit's vocabulary list to a spreadsheet so
// learners can print it or load it into other flashcard tools.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/lexigo/internal/curriculum"
	"github.com/abhisek/lexigo/internal/progress"
)

const sheetName = "Vocabulary"

var headers = []string{"Word", "Pronunciation", "Part of speech", "Meaning", "Difficult"}

// WriteVocabulary writes one row per vocabulary item to an .xlsx file
// at path. Words the learner marked difficult are flagged in the last
// column.
func WriteVocabulary(path string, unit *curriculum.Unit, p progress.Progress) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for row, item := range unit.VocabularyItems() {
		difficult := ""
		if p.DifficultWords[item.Word] {
			difficult = "yes"
		}
		values := []string{item.Word, item.Pronunciation, item.PartOfSpeech, item.Meaning, difficult}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("write row %d: %w", row+2, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
