package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/RadiaPlan/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each radiator label's QR code. One
// label is printed per environment and stuck onto the packed radiator so
// the installer can match units to rooms on site.
type LabelInfo struct {
	RoomName      string  `json:"room"`
	ModelLabel    string  `json:"model"`
	Brand         string  `json:"brand,omitempty"`
	Series        string  `json:"series"`
	Elements      int     `json:"elements"`
	TotalWatts    float64 `json:"watts"`
	BodyLength    float64 `json:"body_mm"`
	Interaxis     float64 `json:"interaxis_mm"`
	ValvePosition string  `json:"valves"`
	Eccentric     float64 `json:"eccentric_mm,omitempty"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded labels, one per environment.
// Each label carries the room name, the matched model with element count,
// and a QR code encoding the full sizing metadata as JSON. Labels are laid
// out on a standard label sheet format (Avery 5160 / 3 columns x 10 rows on
// US Letter).
func ExportLabels(path string, p model.Project, results []model.SizingResult) error {
	if len(p.Environments) == 0 {
		return fmt.Errorf("no environments to generate labels for")
	}
	if len(results) != len(p.Environments) {
		return fmt.Errorf("got %d results for %d environments", len(results), len(p.Environments))
	}

	labels := CollectLabelInfos(p, results)
	if len(labels) == 0 {
		return fmt.Errorf("no sized radiators to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label, i); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.RoomName, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo, seq int) error {
	// Light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%d_%s", seq, info.RoomName)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	// QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Text area (left side of label)
	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// Room name (bold, larger)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	roomName := info.RoomName
	if pdf.GetStringWidth(roomName) > textW {
		for len(roomName) > 0 && pdf.GetStringWidth(roomName+"...") > textW {
			roomName = roomName[:len(roomName)-1]
		}
		roomName += "..."
	}
	pdf.CellFormat(textW, 4.5, roomName, "", 1, "L", false, 0, "")

	// Model and element count
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	modelLine := fmt.Sprintf("%s x %d el. (%.0f W)", info.ModelLabel, info.Elements, info.TotalWatts)
	pdf.CellFormat(textW, 3.5, modelLine, "", 1, "L", false, 0, "")

	// Geometry line
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	geo := fmt.Sprintf("Body %.0f mm, interaxis %.0f, valves %s", info.BodyLength, info.Interaxis, info.ValvePosition)
	pdf.CellFormat(textW, 3, geo, "", 1, "L", false, 0, "")

	// Eccentric indicator
	if info.Eccentric > 0 {
		pdf.SetXY(textX, y+labelPadding+12.5)
		pdf.SetFont("Helvetica", "I", 6)
		pdf.SetTextColor(150, 100, 0)
		pdf.CellFormat(textW, 3, fmt.Sprintf("Eccentric %.0f mm", info.Eccentric), "", 0, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)

	return nil
}

// CollectLabelInfos extracts label information from sized environments for
// use in testing or alternative export formats. Rooms whose series has no
// catalog model are skipped; there is nothing to stick a label on.
func CollectLabelInfos(p model.Project, results []model.SizingResult) []LabelInfo {
	var labels []LabelInfo
	for i, env := range p.Environments {
		r := results[i]
		if r.Model.IsPlaceholder() {
			continue
		}
		labels = append(labels, LabelInfo{
			RoomName:      env.Name,
			ModelLabel:    r.Model.Label,
			Brand:         r.Model.Brand,
			Series:        env.Room.Series.DisplayName(),
			Elements:      r.CurrentElements,
			TotalWatts:    r.TotalWatts,
			BodyLength:    r.BodyLength,
			Interaxis:     r.Model.Interaxis,
			ValvePosition: env.Room.ValvePosition.String(),
			Eccentric:     r.EccentricOffset,
		})
	}
	return labels
}
