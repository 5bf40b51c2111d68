package export

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/lexigo/internal/curriculum"
	"github.com/abhisek/lexigo/internal/progress"
)

func TestWriteVocabulary(t *testing.T) {
	unit := &curriculum.Unit{
		Sections: []curriculum.Section{
			{
				Type:  curriculum.SectionVocabulary,
				Title: "Words",
				Items: []curriculum.VocabularyItem{
					{Word: "run", Pronunciation: "/rʌn/", PartOfSpeech: "verb", Meaning: "to move fast"},
					{Word: "serendipity", Pronunciation: "/ˌserənˈdipəti/", PartOfSpeech: "noun", Meaning: "a happy accident"},
				},
			},
		},
	}
	p := progress.ToggleDifficult(progress.New(), "serendipity")

	path := filepath.Join(t.TempDir(), "vocab.xlsx")
	if err := WriteVocabulary(path, unit, p); err != nil {
		t.Fatalf("WriteVocabulary: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("workbook has %d rows, want header plus 2 items", len(rows))
	}

	if rows[0][0] != "Word" || rows[0][4] != "Difficult" {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[1][0] != "run" || rows[1][3] != "to move fast" {
		t.Errorf("first item row = %v", rows[1])
	}
	if len(rows[1]) > 4 && rows[1][4] != "" {
		t.Errorf("undifficult word flagged: %v", rows[1])
	}
	if rows[2][0] != "serendipity" || rows[2][4] != "yes" {
		t.Errorf("difficult word row = %v", rows[2])
	}
}
