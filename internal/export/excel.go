package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/guillocut/internal/model"
)

// Sheet names of the plan workbook.
const (
	SummarySheet    = "Summary"
	PlacementsSheet = "Placements"
	CutsSheet       = "Cuts"
)

// ExportExcel writes the plan as a workbook with a summary sheet, one row
// per placement and one row per cut.
func ExportExcel(path string, plan model.Plan) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SummarySheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{PlacementsSheet, CutsSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	summary := [][]interface{}{
		{"Board Width", plan.Board.Width},
		{"Board Height", plan.Board.Height},
		{"Maximum Value", plan.Value},
		{"Pieces Placed", len(plan.Placements)},
		{"Cuts", len(plan.Cuts)},
		{"Used Area", plan.UsedArea()},
		{"Waste Area", plan.WasteArea()},
		{"Efficiency %", plan.Efficiency()},
	}
	if err := writeRows(f, SummarySheet, summary); err != nil {
		return err
	}

	placements := [][]interface{}{{"#", "Label", "Width", "Height", "Value", "X", "Y"}}
	for i, p := range plan.Placements {
		placements = append(placements, []interface{}{
			i + 1, p.Piece.Label, p.Piece.Width, p.Piece.Height, p.Piece.Value, p.X, p.Y,
		})
	}
	if err := writeRows(f, PlacementsSheet, placements); err != nil {
		return err
	}

	cuts := [][]interface{}{{"#", "Orientation", "X", "Y", "Length", "Depth"}}
	for i, c := range plan.Cuts {
		cuts = append(cuts, []interface{}{i + 1, string(c.Orientation), c.X, c.Y, c.Length, c.Depth})
	}
	if err := writeRows(f, CutsSheet, cuts); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
