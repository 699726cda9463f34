package export

import (
	"fmt"

	"github.com/piwi3910/RadiaPlan/internal/model"
	"github.com/xuri/excelize/v2"
)

// summaryHeaders are the column headings of the sizing sheet, in the same
// order as SummaryRows.
var summaryHeaders = []string{
	"Room", "Model", "Series", "Demand (W)", "Elements",
	"Output (W)", "Body (mm)", "Occupied (mm)", "Fit",
}

// roomHeaders are the column headings of the inputs sheet.
var roomHeaders = []string{
	"Room", "Surface (m2)", "Height (m)", "Valve Position",
	"Interaxis (mm)", "Side Valve (mm)", "Niche W (mm)", "Niche H (mm)",
	"Manual Elements", "Diaphragm",
}

// ExportExcel writes the project sizing results to an Excel workbook with
// two sheets: a sizing summary (one row per room plus the project total) and
// the raw room inputs. Results must be in environment order.
func ExportExcel(path string, p model.Project, results []model.SizingResult) error {
	if len(p.Environments) == 0 {
		return fmt.Errorf("no environments to export")
	}
	if len(results) != len(p.Environments) {
		return fmt.Errorf("got %d results for %d environments", len(results), len(p.Environments))
	}

	f := excelize.NewFile()
	defer f.Close()

	summary := f.GetSheetName(0)
	if err := f.SetSheetName(summary, "Sizing"); err != nil {
		return fmt.Errorf("cannot rename sheet: %w", err)
	}
	summary = "Sizing"

	if err := writeRow(f, summary, 1, toCells(summaryHeaders)); err != nil {
		return err
	}
	for i, row := range SummaryRows(p, results) {
		if err := writeRow(f, summary, i+2, row); err != nil {
			return err
		}
	}

	// Totals row below the table, one blank row apart.
	var totalWatts, totalDemand float64
	for _, r := range results {
		totalWatts += r.TotalWatts
		totalDemand += r.RequiredWatts
	}
	totalRow := len(p.Environments) + 3
	if err := writeRow(f, summary, totalRow, []interface{}{
		"TOTAL", "", "", totalDemand, "", totalWatts,
	}); err != nil {
		return err
	}

	// Inputs sheet
	inputs := "Rooms"
	if _, err := f.NewSheet(inputs); err != nil {
		return fmt.Errorf("cannot create sheet: %w", err)
	}
	if err := writeRow(f, inputs, 1, toCells(roomHeaders)); err != nil {
		return err
	}
	for i, env := range p.Environments {
		room := env.Room
		manual := ""
		if room.ManualElements != nil {
			manual = fmt.Sprintf("%d", *room.ManualElements)
		}
		diaphragm := ""
		if room.HasDiaphragm {
			diaphragm = "yes"
		}
		row := []interface{}{
			env.Name, room.Surface, room.Height, room.ValvePosition.String(),
			room.ValveCenterDistance, room.SideValveDistance,
			room.NicheWidth, room.NicheHeight, manual, diaphragm,
		}
		if err := writeRow(f, inputs, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("cannot save workbook: %w", err)
	}
	return nil
}

// writeRow writes one row of cells starting at column A.
func writeRow(f *excelize.File, sheet string, rowNum int, cells []interface{}) error {
	for j, cell := range cells {
		ref, err := excelize.CoordinatesToCellName(j+1, rowNum)
		if err != nil {
			return fmt.Errorf("cannot build cell reference: %w", err)
		}
		if err := f.SetCellValue(sheet, ref, cell); err != nil {
			return fmt.Errorf("cannot set cell %s: %w", ref, err)
		}
	}
	return nil
}

func toCells(headers []string) []interface{} {
	cells := make([]interface{}, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	return cells
}
