package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("Model,Height,Interaxis,Watts\n500,565,500,71\n600,665,600,81\n")
	got := DetectCSVDelimiter(data)
	if got != ',' {
		t.Errorf("expected comma delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("Model;Height;Interaxis;Watts\n500;565;500;71\n600;665;600;81\n")
	got := DetectCSVDelimiter(data)
	if got != ';' {
		t.Errorf("expected semicolon delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("Model\tHeight\tInteraxis\tWatts\n500\t565\t500\t71\n")
	got := DetectCSVDelimiter(data)
	if got != '\t' {
		t.Errorf("expected tab delimiter, got %q", got)
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_EnglishHeader(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Model", "Height", "Interaxis", "Watts", "Brand"})
	if !isHeader {
		t.Fatal("expected header detection")
	}
	if mapping.Label != 0 || mapping.Height != 1 || mapping.Interaxis != 2 || mapping.Watts != 3 || mapping.Brand != 4 {
		t.Errorf("unexpected mapping: %+v", mapping)
	}
}

func TestDetectColumns_ItalianHeader(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Modello", "Altezza", "Interasse", "Potenza", "Marca"})
	if !isHeader {
		t.Fatal("expected Italian manufacturer headings to be recognized")
	}
	if mapping.Label != 0 || mapping.Height != 1 || mapping.Interaxis != 2 || mapping.Watts != 3 || mapping.Brand != 4 {
		t.Errorf("unexpected mapping: %+v", mapping)
	}
}

func TestDetectColumns_Reordered(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Watts", "Model", "Interasse", "H"})
	if !isHeader {
		t.Fatal("expected header detection")
	}
	if mapping.Watts != 0 || mapping.Label != 1 || mapping.Interaxis != 2 || mapping.Height != 3 {
		t.Errorf("unexpected mapping: %+v", mapping)
	}
}

func TestDetectColumns_NoHeaderFallsBackToPositional(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"500", "565", "500", "71"})
	if isHeader {
		t.Fatal("numeric row must not be treated as a header")
	}
	if mapping.Label != 0 || mapping.Height != 1 || mapping.Interaxis != 2 || mapping.Watts != 3 {
		t.Errorf("unexpected positional mapping: %+v", mapping)
	}
}

// ─── CSV Import Tests ──────────────────────────────────────

func TestImportCSVFromReader_WithHeader(t *testing.T) {
	csv := "Model,Height,Interaxis,Watts,Brand\n500,565,500,71,Column T3\n600,665,600,81,Column T3\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Models) != 2 {
		t.Fatalf("expected 2 models, got %d", len(result.Models))
	}
	m := result.Models[0]
	if m.Label != "500" || m.Height != 565 || m.Interaxis != 500 || m.Watts != 71 || m.Brand != "Column T3" {
		t.Errorf("unexpected model: %+v", m)
	}
	if m.ID == "" {
		t.Error("imported models must get an ID for catalog merging")
	}
}

func TestImportCSVFromReader_SkipsBadRowsAndEmptyLines(t *testing.T) {
	csv := "Model,Height,Interaxis,Watts\nGood,565,500,71\n\nBad,not-a-number,500,71\nAlso good,665,600,81\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Models) != 2 {
		t.Fatalf("expected 2 models, got %d (errors: %v)", len(result.Models), result.Errors)
	}
	if len(result.Errors) != 1 {
		t.Errorf("expected 1 row error, got %v", result.Errors)
	}
}

func TestImportCSVFromReader_ZeroWattageWarning(t *testing.T) {
	csv := "Model,Height,Interaxis,Watts\nDud,565,500,0\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Models) != 1 {
		t.Fatalf("zero-wattage rows are accepted, got %v", result.Errors)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "no wattage") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a zero-wattage warning, got %v", result.Warnings)
	}
}

func TestImportCSVFromReader_MissingRequiredColumn(t *testing.T) {
	csv := "Model,Height,Watts\n500,565,71\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Errors) == 0 {
		t.Fatal("expected error for missing interaxis column")
	}
	if !strings.Contains(result.Errors[0], "Interaxis") {
		t.Errorf("error should name the missing column: %v", result.Errors)
	}
}

func TestImportCSV_SemicolonFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.csv")
	data := "Modello;Altezza;Interasse;Potenza\n500;565;500;71\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	result := ImportCSV(path)

	if len(result.Models) != 1 {
		t.Fatalf("expected 1 model, got %d (errors: %v)", len(result.Models), result.Errors)
	}
	if result.Models[0].Interaxis != 500 {
		t.Errorf("unexpected model: %+v", result.Models[0])
	}
}

func TestImportCSV_FileNotFound(t *testing.T) {
	result := ImportCSV("/nonexistent/path/catalog.csv")
	if len(result.Errors) == 0 {
		t.Error("expected error for nonexistent file")
	}
}

func TestImportCSV_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(path, []byte(""), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	result := ImportCSV(path)
	if len(result.Errors) == 0 {
		t.Error("expected error for empty file")
	}
}

// ─── Excel Import Tests ────────────────────────────────────

func createTestExcel(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, row := range rows {
		for j, cell := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("failed to create cell reference: %v", err)
			}
			if err := f.SetCellValue(sheet, cellRef, cell); err != nil {
				t.Fatalf("failed to set cell value: %v", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save Excel file: %v", err)
	}
	return path
}

func TestImportExcel_WithHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Model", "Height", "Interaxis", "Watts", "Brand"},
		{"500", 565, 500, 71, "Column T3"},
		{"600", 665, 600, 81, "Column T3"},
	})

	result := ImportExcel(path)

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Models) != 2 {
		t.Fatalf("expected 2 models, got %d", len(result.Models))
	}
	if result.Models[0].Label != "500" || result.Models[0].Watts != 71 {
		t.Errorf("unexpected model: %+v", result.Models[0])
	}
}

func TestImportExcel_WithoutHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"500", 565, 500, 71},
		{"600", 665, 600, 81},
	})

	result := ImportExcel(path)
	if len(result.Models) != 2 {
		t.Fatalf("expected 2 models, got %d (errors: %v)", len(result.Models), result.Errors)
	}
}

func TestImportExcel_FileNotFound(t *testing.T) {
	result := ImportExcel("/nonexistent/catalog.xlsx")
	if len(result.Errors) == 0 {
		t.Error("expected error for nonexistent file")
	}
}
