// Package export renders sizing results to installer-facing documents:
// PDF installation sheets, QR-coded radiator labels, and Excel workbooks.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/RadiaPlan/internal/model"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	statsHeight  = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates the installation document for a project. Each
// environment is rendered on its own page with a front-view diagram of the
// radiator inside its niche, followed by a summary page with per-room
// figures and the project total. Results must be in environment order, as
// produced by engine.SizeProject.
func ExportPDF(path string, p model.Project, results []model.SizingResult) error {
	if len(p.Environments) == 0 {
		return fmt.Errorf("no environments to export")
	}
	if len(results) != len(p.Environments) {
		return fmt.Errorf("got %d results for %d environments", len(results), len(p.Environments))
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for i, env := range p.Environments {
		pdf.AddPage()
		renderEnvironmentPage(pdf, env, results[i], i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, p, results)

	return pdf.OutputFileAndClose(path)
}

// renderEnvironmentPage draws one room's sizing result on the current page.
func renderEnvironmentPage(pdf *fpdf.Fpdf, env model.Environment, result model.SizingResult, pageNum int) {
	room := env.Room

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Room %d: %s (%s, valves %s)", pageNum, env.Name,
		room.Series.DisplayName(), room.ValvePosition)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Demand: %.0f W | Model: %s | Elements: %d | Output: %.0f W | Body: %.0f mm | Occupied: %.0f mm",
		result.RequiredWatts, modelName(result.Model), result.CurrentElements,
		result.TotalWatts, result.BodyLength, result.TotalOccupiedWidth)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - statsHeight

	// The diagram frame is the niche when declared, else the occupied width
	// with a small margin on each side.
	frameW := room.NicheWidth
	if frameW <= 0 {
		frameW = result.TotalOccupiedWidth + 2*model.MinClearanceMM
	}
	frameH := room.NicheHeight
	if frameH <= 0 {
		frameH = result.Model.Height + 2*model.MinClearanceMM
	}
	if frameH <= 0 {
		frameH = 600
	}
	if frameW <= 0 {
		frameW = 600
	}

	scale := math.Min(drawWidth/frameW, drawHeight/frameH)
	canvasW := frameW * scale
	canvasH := frameH * scale

	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Niche background (plaster color); dashed-style light border when the
	// frame is synthetic rather than a declared niche.
	pdf.SetFillColor(245, 240, 230)
	if room.NicheWidth > 0 {
		pdf.SetDrawColor(100, 100, 100)
	} else {
		pdf.SetDrawColor(200, 200, 200)
	}
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Radiator body. Horizontal placement follows the occupied-width layout:
	// the body starts one standoff after the first valve centerline.
	bodyX := (room.SideValveDistance + model.MinClearanceMM) * scale
	bodyW := result.BodyLength * scale
	bodyH := result.Model.Height * scale
	if bodyH <= 0 || bodyH > canvasH {
		bodyH = canvasH * 0.7
	}
	bodyY := offsetY + (canvasH-bodyH)/2

	pdf.SetFillColor(214, 228, 240)
	pdf.SetDrawColor(30, 30, 30)
	pdf.SetLineWidth(0.3)
	pdf.Rect(offsetX+bodyX, bodyY, bodyW, bodyH, "FD")

	// Element separators
	pdf.SetDrawColor(120, 150, 175)
	pdf.SetLineWidth(0.15)
	for e := 1; e < result.CurrentElements; e++ {
		ex := offsetX + bodyX + float64(e)*model.ElementPitchMM*scale
		pdf.Line(ex, bodyY, ex, bodyY+bodyH)
	}

	drawValves(pdf, room, result, scale, offsetX, offsetY, canvasH, bodyX, bodyW, bodyY, bodyH)

	// Shortfall band past the occupied width when the niche cannot hold the
	// installation.
	if result.HasClearanceIssue && room.NicheWidth > 0 {
		overX := math.Min(result.TotalOccupiedWidth, room.NicheWidth) * scale
		overW := canvasW - overX
		if overW > 1 {
			pdf.SetFillColor(255, 200, 200)
			pdf.SetDrawColor(200, 0, 0)
			pdf.SetLineWidth(0.3)
			pdf.Rect(offsetX+overX, offsetY, overW, canvasH, "FD")
			drawHatchPattern(pdf, offsetX+overX, offsetY, overW, canvasH)

			if overW > 20 {
				pdf.SetFont("Helvetica", "B", 6)
				pdf.SetTextColor(180, 0, 0)
				labelW := pdf.GetStringWidth("NO FIT")
				pdf.SetXY(offsetX+overX+(overW-labelW)/2, offsetY+canvasH/2-2)
				pdf.CellFormat(labelW, 4, "NO FIT", "", 0, "C", false, 0, "")
			}
		}
		pdf.SetTextColor(0, 0, 0)
	}

	drawDimensionAnnotations(pdf, frameW, frameH, offsetX, offsetY, canvasW, canvasH)

	drawNotes(pdf, room, result, offsetY+canvasH+5)
}

// drawValves marks the valve centerlines on the diagram as small filled
// circles with a short stem.
func drawValves(pdf *fpdf.Fpdf, room model.RoomSpec, result model.SizingResult, scale, offsetX, offsetY, canvasH, bodyX, bodyW, bodyY, bodyH float64) {
	pdf.SetFillColor(180, 60, 60)
	pdf.SetDrawColor(120, 30, 30)
	pdf.SetLineWidth(0.3)

	r := math.Max(1.2, 4*scale)

	if room.ValvePosition == model.ValveBottom {
		// One valve at each lower corner: the first one standoff before the
		// body, the second one standoff after it.
		y := bodyY + bodyH
		x1 := offsetX + room.SideValveDistance*scale
		x2 := offsetX + bodyX + bodyW + model.MinClearanceMM*scale
		for _, x := range []float64{x1, x2} {
			pdf.Line(x, y, x, y+3)
			pdf.Circle(x, y+3+r, r, "FD")
		}
		return
	}

	// Side pair: two valves stacked vertically at the valve centerline,
	// spaced by the target interaxis.
	x := offsetX + room.SideValveDistance*scale
	if room.ValvePosition == model.ValveRight {
		x = offsetX + bodyX + bodyW + model.MinClearanceMM*scale
	}
	gap := room.ValveCenterDistance * scale
	if gap <= 0 || gap > bodyH {
		gap = bodyH * 0.8
	}
	yTop := bodyY + (bodyH-gap)/2
	pdf.Circle(x, yTop, r, "FD")
	pdf.Circle(x, yTop+gap, r, "FD")
	pdf.Line(x, yTop+r, x, yTop+gap-r)

	if result.NeedsEccentric {
		pdf.SetFont("Helvetica", "I", 6)
		pdf.SetTextColor(150, 100, 0)
		pdf.SetXY(x+2, yTop+gap/2-2)
		pdf.CellFormat(40, 4, fmt.Sprintf("ecc. %.0f mm", result.EccentricOffset), "", 0, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
}

// drawHatchPattern draws diagonal lines inside a rectangle to flag clearance shortfalls.
func drawHatchPattern(pdf *fpdf.Fpdf, x, y, w, h float64) {
	pdf.SetDrawColor(200, 0, 0)
	pdf.SetLineWidth(0.15)

	spacing := 4.0
	maxDist := w + h

	for d := spacing; d < maxDist; d += spacing {
		x1 := x + math.Max(0, d-h)
		y1 := y + math.Min(h, d)
		x2 := x + math.Min(w, d)
		y2 := y + math.Max(0, d-w)

		pdf.Line(x1, y1, x2, y2)
	}
}

// drawDimensionAnnotations adds width and height labels outside the diagram frame.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, frameW, frameH, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%.0f mm", frameW)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%.0f mm", frameH)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawNotes renders the installer remarks below the diagram.
func drawNotes(pdf *fpdf.Fpdf, room model.RoomSpec, result model.SizingResult, startY float64) {
	var notes []string
	if result.NeedsEccentric {
		notes = append(notes, result.EccentricText)
	}
	if result.HasClearanceIssue {
		notes = append(notes, "WARNING: installation does not fit the declared niche")
	}
	if room.ManualElements != nil {
		notes = append(notes, fmt.Sprintf("Element count manually set to %d", *room.ManualElements))
	}
	if room.HasDiaphragm {
		notes = append(notes, "Diaphragm fitted")
	}
	if result.Model.IsPlaceholder() {
		notes = append(notes, "No catalog model available for this series")
	}
	if len(notes) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Notes:", "", 0, "L", false, 0, "")
	startY += 5

	pdf.SetFont("Helvetica", "", 8)
	for _, note := range notes {
		if note == "" {
			continue
		}
		pdf.SetXY(marginLeft+2, startY)
		pdf.CellFormat(pageWidth-marginLeft-marginRight-2, 4, "- "+note, "", 0, "L", false, 0, "")
		startY += 4.5
	}
}

// renderSummaryPage draws the final summary page with per-room figures and
// the project total.
func renderSummaryPage(pdf *fpdf.Fpdf, p model.Project, results []model.SizingResult) {
	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	title := "Radiator Sizing Summary"
	if p.Name != "" {
		title = fmt.Sprintf("Radiator Sizing Summary: %s", p.Name)
	}
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, title, "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	if p.Client != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(150, 6, "Client: "+p.Client, "", 0, "L", false, 0, "")
		y += 8
	}

	// Overall statistics
	var totalWatts, totalDemand float64
	issues := 0
	for _, r := range results {
		totalWatts += r.TotalWatts
		totalDemand += r.RequiredWatts
		if r.HasClearanceIssue {
			issues++
		}
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct {
		label string
		value string
	}{
		{"Rooms", fmt.Sprintf("%d", len(p.Environments))},
		{"Total Heat Demand", fmt.Sprintf("%.0f W", totalDemand)},
		{"Total Installed Output", fmt.Sprintf("%.0f W", totalWatts)},
		{"Rooms With Clearance Issues", fmt.Sprintf("%d", issues)},
		{"Watt Coefficient", fmt.Sprintf("%.1f", p.Settings.WattCoefficient)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	// Per-room table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Room Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{50, 38, 32, 24, 26, 26, 30, 40}
	headers := []string{"Room", "Model", "Demand", "Elem.", "Output", "Body", "Occupied", "Fit"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, env := range p.Environments {
		r := results[i]
		fit := "OK"
		if r.HasClearanceIssue {
			fit = "DOES NOT FIT"
		}
		xPos = marginLeft
		rowData := []string{
			env.Name,
			modelName(r.Model),
			fmt.Sprintf("%.0f W", r.RequiredWatts),
			fmt.Sprintf("%d", r.CurrentElements),
			fmt.Sprintf("%.0f W", r.TotalWatts),
			fmt.Sprintf("%.0f mm", r.BodyLength),
			fmt.Sprintf("%.0f mm", r.TotalOccupiedWidth),
			fit,
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		if r.HasClearanceIssue {
			pdf.SetTextColor(200, 0, 0)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		pdf.SetTextColor(0, 0, 0)
		y += 6
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by RadiaPlan - Radiator Sizing Configurator", "", 0, "C", false, 0, "")
}

// modelName formats a catalog model for tables and stats lines.
func modelName(m model.RadiatorModel) string {
	if m.IsPlaceholder() {
		return "(none)"
	}
	if m.Brand != "" {
		return fmt.Sprintf("%s %s", m.Brand, m.Label)
	}
	return m.Label
}

// SummaryRows flattens the project results into one row per room, shared by
// the Excel export and available for testing.
func SummaryRows(p model.Project, results []model.SizingResult) [][]interface{} {
	rows := make([][]interface{}, 0, len(p.Environments))
	for i, env := range p.Environments {
		r := results[i]
		fit := "OK"
		if r.HasClearanceIssue {
			fit = "DOES NOT FIT"
		}
		rows = append(rows, []interface{}{
			env.Name,
			modelName(r.Model),
			env.Room.Series.DisplayName(),
			r.RequiredWatts,
			r.CurrentElements,
			r.TotalWatts,
			r.BodyLength,
			r.TotalOccupiedWidth,
			fit,
		})
	}
	return rows
}
