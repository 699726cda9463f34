// Package importer reads radiator catalogs from manufacturer CSV and Excel
// data sheets, and niche dimensions from DXF plan drawings. It supports
// automatic delimiter detection, flexible column mapping, and
// case-insensitive header recognition, including the Italian headings most
// manufacturer sheets use.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/RadiaPlan/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of a catalog import operation.
type ImportResult struct {
	Models   []model.RadiatorModel
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Label     int
	Height    int
	Interaxis int
	Watts     int
	Brand     int
}

// headerAliases maps canonical column names to their accepted aliases (all
// lowercase). Italian aliases cover the common manufacturer sheet layout.
var headerAliases = map[string][]string{
	"label":     {"label", "name", "model", "modello", "nome", "type", "tipo"},
	"height":    {"height", "h", "altezza", "total height", "altezza totale"},
	"interaxis": {"interaxis", "interasse", "center distance", "centers", "pipe centers", "i"},
	"watts":     {"watts", "w", "output", "potenza", "resa", "watt", "emissione"},
	"brand":     {"brand", "marca", "manufacturer", "produttore", "make"},
}

// DetectCSVDelimiter reads the file content and determines the most likely
// CSV delimiter. It tries comma, semicolon, tab, and pipe. The delimiter
// that produces the most consistent (non-one) column count across lines
// wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each
// column role. Returns the mapping and true if a header was detected, or a
// default positional mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Label:     -1,
		Height:    -1,
		Interaxis: -1,
		Watts:     -1,
		Brand:     -1,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					switch role {
					case "label":
						if mapping.Label == -1 {
							mapping.Label = i
						}
					case "height":
						if mapping.Height == -1 {
							mapping.Height = i
						}
					case "interaxis":
						if mapping.Interaxis == -1 {
							mapping.Interaxis = i
						}
					case "watts":
						if mapping.Watts == -1 {
							mapping.Watts = i
						}
					case "brand":
						if mapping.Brand == -1 {
							mapping.Brand = i
						}
					}
				}
			}
		}
	}

	if !isHeader {
		// Fall back to positional mapping: Label, Height, Interaxis, Watts, Brand
		return ColumnMapping{
			Label:     0,
			Height:    1,
			Interaxis: 2,
			Watts:     3,
			Brand:     4,
		}, false
	}

	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts a RadiatorModel from a row using the given column
// mapping. Returns the model, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, count int) (model.RadiatorModel, string, string) {
	label := getCell(row, mapping.Label)
	if label == "" {
		label = fmt.Sprintf("Model %d", count+1)
	}

	heightStr := getCell(row, mapping.Height)
	if heightStr == "" {
		return model.RadiatorModel{}, fmt.Sprintf("%s: Missing height value", rowLabel), ""
	}
	height, err := strconv.ParseFloat(heightStr, 64)
	if err != nil {
		return model.RadiatorModel{}, fmt.Sprintf("%s: Invalid height '%s'", rowLabel, heightStr), ""
	}

	interaxisStr := getCell(row, mapping.Interaxis)
	if interaxisStr == "" {
		return model.RadiatorModel{}, fmt.Sprintf("%s: Missing interaxis value", rowLabel), ""
	}
	interaxis, err := strconv.ParseFloat(interaxisStr, 64)
	if err != nil {
		return model.RadiatorModel{}, fmt.Sprintf("%s: Invalid interaxis '%s'", rowLabel, interaxisStr), ""
	}

	wattsStr := getCell(row, mapping.Watts)
	if wattsStr == "" {
		return model.RadiatorModel{}, fmt.Sprintf("%s: Missing watts value", rowLabel), ""
	}
	watts, err := strconv.ParseFloat(wattsStr, 64)
	if err != nil {
		return model.RadiatorModel{}, fmt.Sprintf("%s: Invalid watts '%s'", rowLabel, wattsStr), ""
	}

	if height <= 0 || interaxis <= 0 {
		return model.RadiatorModel{}, fmt.Sprintf("%s: Height and interaxis must be positive", rowLabel), ""
	}

	m := model.NewRadiatorModel(label, height, interaxis, watts)
	m.Brand = getCell(row, mapping.Brand)

	// Zero wattage is accepted but flagged: the engine guards the division,
	// yet the resulting element counts are meaningless.
	var warning string
	if watts <= 0 {
		warning = fmt.Sprintf("%s: Model '%s' has no wattage; element counts will be unusable", rowLabel, label)
	}

	return m, "", warning
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports radiator models from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	result = importFromRows(records, "Line", result.Warnings)
	return result
}

// ImportCSVFromReader imports radiator models from a CSV reader with a
// specific delimiter. Useful for testing or when the delimiter is known.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports radiator models from an Excel (.xlsx, .xls) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into models.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.Height == -1 {
			missing = append(missing, "Height")
		}
		if mapping.Interaxis == -1 {
			missing = append(missing, "Interaxis")
		}
		if mapping.Watts == -1 {
			missing = append(missing, "Watts")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else {
		// No header: check if first row is numeric (positional mapping)
		if len(rows[0]) >= 3 {
			if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
				// Not numeric after the label column - likely an
				// unrecognized header. Skip it but keep positional mapping.
				startRow = 1
				result.Warnings = append(result.Warnings, "Detected header row, skipping")
			}
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, lineNum)
		m, errMsg, warning := parseRow(row, mapping, rowLabel, len(result.Models))

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		result.Models = append(result.Models, m)
	}

	return result
}
