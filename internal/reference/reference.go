// =============================================================================
// musiccharts - Transposition Reference Module
// =============================================================================
//
// This module exports the full translation table as an XLSX workbook: one
// sheet per lettered key, one row per scale-degree token, mapping the NNS
// token to the chord root in that key. Useful as a printable cheat sheet for
// musicians reading a chart in one key while the band plays in another.
//
// =============================================================================

package reference

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jwcorell/musiccharts/internal/keytable"
)

// degreeTokens lists every token of the grammar in chart-friendly order:
// flattened, natural, sharpened, per degree.
func degreeTokens() []string {
	tokens := make([]string, 0, 21)
	for degree := 1; degree <= 7; degree++ {
		for _, accidental := range []string{"b", "", "#"} {
			tokens = append(tokens, fmt.Sprintf("%s%d", accidental, degree))
		}
	}
	return tokens
}

// Workbook builds the reference workbook in memory.
func Workbook() (*excelize.File, error) {
	f := excelize.NewFile()

	tokens := degreeTokens()
	first := true
	for _, key := range keytable.ListValidKeys() {
		if key == keytable.NNSKey {
			continue
		}

		if first {
			// Reuse the default sheet for the first key.
			if err := f.SetSheetName("Sheet1", key); err != nil {
				return nil, fmt.Errorf("failed to name sheet %s: %w", key, err)
			}
			first = false
		} else if _, err := f.NewSheet(key); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", key, err)
		}

		if err := f.SetCellValue(key, "A1", "Degree"); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(key, "B1", "Chord"); err != nil {
			return nil, err
		}

		for i, token := range tokens {
			root, err := keytable.Translate(key, token)
			if err != nil {
				return nil, fmt.Errorf("building sheet %s: %w", key, err)
			}
			row := i + 2
			if err := f.SetCellValue(key, fmt.Sprintf("A%d", row), token); err != nil {
				return nil, err
			}
			if err := f.SetCellValue(key, fmt.Sprintf("B%d", row), root); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// Export writes the reference workbook to path.
func Export(path string) error {
	f, err := Workbook()
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write reference workbook: %w", err)
	}
	return nil
}
