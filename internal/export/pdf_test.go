package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/RadiaPlan/internal/engine"
	"github.com/piwi3910/RadiaPlan/internal/model"
)

// buildTestProject creates a realistic two-room project for export tests.
func buildTestProject() model.Project {
	p := model.NewProject()
	p.Name = "Casa Rossi"
	p.Client = "Rossi"

	living := model.NewEnvironment("Living room")
	living.Room = living.Room.WithSurface(20).WithHeight(2.7).WithValveCenterDistance(500)
	living.Room.SideValveDistance = 60
	living.Room.NicheWidth = 1500
	living.Room.NicheHeight = 700

	bath := model.NewEnvironment("Bathroom")
	bath.Room = bath.Room.WithSurface(6).WithHeight(2.7).WithValveCenterDistance(600)
	bath.Room.ValvePosition = model.ValveLeft
	bath.Room.SideValveDistance = 55

	p.Environments = []model.Environment{living, bath}
	return p
}

func sizeTestProject(p model.Project) []model.SizingResult {
	return engine.SizeProject(p, nil, p.Settings)
}

func TestExportPDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test_output.pdf")

	p := buildTestProject()
	err := ExportPDF(path, p, sizeTestProject(p))
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
	// A valid PDF with 3 pages (2 rooms + summary) should be a reasonable size
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_EmptyProject(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	p := model.NewProject()
	err := ExportPDF(path, p, nil)
	if err == nil {
		t.Fatal("expected error for empty project, got nil")
	}
}

func TestExportPDF_ResultCountMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mismatch.pdf")

	p := buildTestProject()
	err := ExportPDF(path, p, sizeTestProject(p)[:1])
	if err == nil {
		t.Fatal("expected error when results do not match environments, got nil")
	}
}

func TestExportPDF_WithClearanceIssue(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "issue.pdf")

	p := buildTestProject()
	// Shrink the niche so the living room no longer fits
	p.Environments[0].Room.NicheWidth = 400

	results := sizeTestProject(p)
	if !results[0].HasClearanceIssue {
		t.Fatal("test setup: expected a clearance issue")
	}

	err := ExportPDF(path, p, results)
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}

func TestExportPDF_EmptyCatalogPlaceholder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "placeholder.pdf")

	p := buildTestProject()
	for i := range p.Environments {
		p.Environments[i].Room = p.Environments[i].Room.WithSeries(model.SeriesCustom)
	}

	// Custom series with no custom catalog yields placeholder models
	results := engine.SizeProject(p, nil, p.Settings)
	if !results[0].Model.IsPlaceholder() {
		t.Fatal("test setup: expected placeholder model")
	}

	err := ExportPDF(path, p, results)
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("PDF file missing or empty: %v", err)
	}
}

func TestExportPDF_ManualOverrideNote(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manual.pdf")

	p := buildTestProject()
	p.Environments[0].Room = p.Environments[0].Room.WithManualElements(10)

	err := ExportPDF(path, p, sizeTestProject(p))
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("PDF file missing or empty: %v", err)
	}
}

func TestModelName(t *testing.T) {
	tests := []struct {
		m    model.RadiatorModel
		want string
	}{
		{model.RadiatorModel{Label: "600", Brand: "Irsap"}, "Irsap 600"},
		{model.RadiatorModel{Label: "600"}, "600"},
		{model.RadiatorModel{}, "(none)"},
	}
	for _, tt := range tests {
		got := modelName(tt.m)
		if got != tt.want {
			t.Errorf("modelName(%+v) = %q, want %q", tt.m, got, tt.want)
		}
	}
}

func TestSummaryRows(t *testing.T) {
	p := buildTestProject()
	results := sizeTestProject(p)

	rows := SummaryRows(p, results)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Living room" {
		t.Errorf("first row should be the living room: %v", rows[0])
	}
	if rows[0][4] != results[0].CurrentElements {
		t.Errorf("element count mismatch: %v vs %d", rows[0][4], results[0].CurrentElements)
	}
}
