package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/RadiaPlan/internal/engine"
	"github.com/piwi3910/RadiaPlan/internal/model"
)

// buildEditorPanel hosts the form for the room currently being edited.
// Every input change reruns the sizing engine so the result card is always
// current.
func (a *App) buildEditorPanel() fyne.CanvasObject {
	a.editorContainer = container.NewVBox()
	a.refreshEditor()
	return container.NewVScroll(a.editorContainer)
}

// refreshEditor rebuilds the editor form for the selected room. Called when
// the selection changes or the room is modified from outside the form.
func (a *App) refreshEditor() {
	if a.editorContainer == nil {
		return
	}
	a.editorContainer.RemoveAll()

	env := a.selectedEnvironment()
	if env == nil {
		a.editorContainer.Add(widget.NewLabel("Select a room on the Rooms tab to edit it."))
		return
	}

	resultLabel := widget.NewLabel("")
	resultCard := widget.NewCard("Sizing", "", resultLabel)

	updateSizing := func() {
		if r, ok := a.sizeSelected(); ok {
			resultCard.SetSubTitle(resultSubtitle(r))
			resultLabel.SetText(resultSummary(r))
		}
		a.refreshResults()
	}

	// floatField binds an entry to a room mutation taking the parsed value.
	floatField := func(value float64, apply func(float64)) *widget.Entry {
		e := widget.NewEntry()
		if value != 0 {
			e.SetText(strconv.FormatFloat(value, 'f', -1, 64))
		}
		e.OnChanged = func(text string) {
			v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
			if err != nil {
				v = 0
			}
			apply(v)
			updateSizing()
		}
		return e
	}

	nameEntry := widget.NewEntry()
	nameEntry.SetText(env.Name)
	nameEntry.OnChanged = func(text string) {
		env.Name = text
		a.refreshRoomsList()
	}

	surfaceEntry := floatField(env.Room.Surface, func(v float64) {
		env.Room = env.Room.WithSurface(v)
	})
	heightEntry := floatField(env.Room.Height, func(v float64) {
		env.Room = env.Room.WithHeight(v)
	})

	roomSection := widget.NewCard("Room", "", container.NewGridWithColumns(2,
		widget.NewLabel("Name"), nameEntry,
		widget.NewLabel("Surface (m2)"), surfaceEntry,
		widget.NewLabel("Ceiling Height (m)"), heightEntry,
	))

	seriesNames := make([]string, 0, len(model.AllSeries()))
	for _, series := range model.AllSeries() {
		seriesNames = append(seriesNames, series.DisplayName())
	}
	seriesSelect := widget.NewSelect(seriesNames, func(selected string) {
		env.Room = env.Room.WithSeries(model.SeriesFromDisplayName(selected))
		updateSizing()
	})
	seriesSelect.SetSelected(env.Room.Series.DisplayName())

	valveSelect := widget.NewSelect([]string{"Bottom", "Left", "Right"}, func(selected string) {
		switch selected {
		case "Left":
			env.Room = env.Room.WithValvePosition(model.ValveLeft)
		case "Right":
			env.Room = env.Room.WithValvePosition(model.ValveRight)
		default:
			env.Room = env.Room.WithValvePosition(model.ValveBottom)
		}
		updateSizing()
	})
	valveSelect.SetSelected(env.Room.ValvePosition.String())

	interaxisEntry := floatField(env.Room.ValveCenterDistance, func(v float64) {
		env.Room = env.Room.WithValveCenterDistance(v)
	})
	sideValveEntry := floatField(env.Room.SideValveDistance, func(v float64) {
		env.Room.SideValveDistance = v
	})
	valveHeightEntry := floatField(env.Room.ValveHeight, func(v float64) {
		env.Room.ValveHeight = v
	})

	diaphragmCheck := widget.NewCheck("", func(b bool) {
		env.Room.HasDiaphragm = b
		updateSizing()
	})
	diaphragmCheck.Checked = env.Room.HasDiaphragm

	installSection := widget.NewCard("Installation", "", container.NewGridWithColumns(2,
		widget.NewLabel("Series"), seriesSelect,
		widget.NewLabel("Valve Position"), valveSelect,
		widget.NewLabel("Valve Center Distance (mm)"), interaxisEntry,
		widget.NewLabel("Side Valve Distance (mm)"), sideValveEntry,
		widget.NewLabel("Valve Height (mm)"), valveHeightEntry,
		widget.NewLabel("Diaphragm"), diaphragmCheck,
	))

	nicheWidthEntry := floatField(env.Room.NicheWidth, func(v float64) {
		env.Room = env.Room.WithNiche(v, env.Room.NicheHeight)
	})
	nicheHeightEntry := floatField(env.Room.NicheHeight, func(v float64) {
		env.Room = env.Room.WithNiche(env.Room.NicheWidth, v)
	})
	maxWidthEntry := floatField(env.Room.MaxWidth, func(v float64) {
		env.Room.MaxWidth = v
	})

	nicheSection := widget.NewCard("Niche", "", container.NewGridWithColumns(2,
		widget.NewLabel("Niche Width (mm)"), nicheWidthEntry,
		widget.NewLabel("Niche Height (mm)"), nicheHeightEntry,
		widget.NewLabel("Max Body Width (mm)"), maxWidthEntry,
	))

	// Manual element override. An empty entry restores the computed count;
	// any integer, including 0, pins the count verbatim.
	manualEntry := widget.NewEntry()
	manualEntry.SetPlaceHolder("computed")
	if env.Room.ManualElements != nil {
		manualEntry.SetText(strconv.Itoa(*env.Room.ManualElements))
	}
	manualEntry.OnChanged = func(text string) {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			env.Room = env.Room.ClearManualElements()
			updateSizing()
			return
		}
		if n, err := strconv.Atoi(trimmed); err == nil {
			env.Room = env.Room.WithManualElements(n)
			updateSizing()
		}
	}

	compareBtn := widget.NewButton("Compare Series...", func() {
		a.showCompareDialog()
	})

	overrideSection := widget.NewCard("Elements", "", container.NewGridWithColumns(2,
		widget.NewLabel("Manual Element Count"), manualEntry,
		widget.NewLabel(""), compareBtn,
	))

	updateSizing()

	a.editorContainer.Add(roomSection)
	a.editorContainer.Add(installSection)
	a.editorContainer.Add(nicheSection)
	a.editorContainer.Add(overrideSection)
	a.editorContainer.Add(resultCard)
}

// showCompareDialog sizes the selected room against every series and shows
// the outcomes side by side.
func (a *App) showCompareDialog() {
	env := a.selectedEnvironment()
	if env == nil {
		dialog.ShowInformation("No room selected", "Select a room in the editor first.", a.window)
		return
	}

	comparisons := engine.CompareSeries(env.Room, a.catalog, a.project.Settings)
	best, hasBest := engine.BestSeries(comparisons)

	grid := container.NewGridWithColumns(5,
		widget.NewLabelWithStyle("Series", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Model", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Elements", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Occupied", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Fit", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)

	for _, c := range comparisons {
		name := c.Series.DisplayName()
		if hasBest && c.Series == best.Series {
			name += " *"
		}
		fit := "OK"
		if c.Result.HasClearanceIssue {
			fit = "NO"
		}
		modelLabel := c.Result.Model.Label
		if c.Result.Model.IsPlaceholder() {
			modelLabel = "-"
		}
		grid.Add(widget.NewLabel(name))
		grid.Add(widget.NewLabel(modelLabel))
		grid.Add(widget.NewLabel(fmt.Sprintf("%d", c.Result.CurrentElements)))
		grid.Add(widget.NewLabel(fmt.Sprintf("%.0f mm", c.Result.TotalOccupiedWidth)))
		grid.Add(widget.NewLabel(fit))
	}

	content := container.NewVBox(grid)
	if hasBest {
		content.Add(widget.NewLabelWithStyle(
			fmt.Sprintf("* Recommended: %s", best.Series.DisplayName()),
			fyne.TextAlignLeading, fyne.TextStyle{Italic: true},
		))
	}

	d := dialog.NewCustom(fmt.Sprintf("Series Comparison: %s", env.Name), "Close", content, a.window)
	d.Resize(fyne.NewSize(520, 320))
	d.Show()
}
