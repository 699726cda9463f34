package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/RadiaPlan/internal/engine"
	"github.com/piwi3910/RadiaPlan/internal/export"
	"github.com/piwi3910/RadiaPlan/internal/importer"
	"github.com/piwi3910/RadiaPlan/internal/model"
	"github.com/piwi3910/RadiaPlan/internal/project"
)

// App holds all application state and UI references.
type App struct {
	window    fyne.Window
	project   model.Project
	catalog   []model.RadiatorModel // user-maintained custom catalog
	config    model.AppConfig
	templates model.TemplateStore
	history   *History

	catalogPath string
	selected    int // index into project.Environments, -1 when none
	tabs        *container.AppTabs

	// UI references for dynamic updates
	roomsContainer   *fyne.Container
	editorContainer  *fyne.Container
	catalogContainer *fyne.Container
	resultContainer  *fyne.Container
}

func NewApp(window fyne.Window) *App {
	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		config = model.DefaultAppConfig()
	}

	catalog, catalogPath, err := project.LoadOrCreateCatalog()
	if err != nil {
		catalog = nil
	}

	templates := model.DefaultTemplates()
	if path, err := project.DefaultTemplatesPath(); err == nil {
		if ts, err := project.LoadTemplates(path); err == nil {
			templates = ts
		}
	}

	p := model.NewProject()
	config.ApplyToSettings(&p.Settings)

	return &App{
		window:      window,
		project:     p,
		catalog:     catalog,
		config:      config,
		templates:   templates,
		history:     NewHistory(),
		catalogPath: catalogPath,
		selected:    -1,
	}
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	// File Menu
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Project", func() {
			a.snapshot("New Project")
			a.project = model.NewProject()
			a.config.ApplyToSettings(&a.project.Settings)
			a.selected = -1
			a.refreshAll()
		}),
		fyne.NewMenuItem("Open Project...", func() {
			a.loadProject()
		}),
		fyne.NewMenuItem("Save Project...", func() {
			a.saveProject()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Catalog from CSV...", func() {
			a.importCatalogCSV()
		}),
		fyne.NewMenuItem("Import Catalog from Excel...", func() {
			a.importCatalogExcel()
		}),
		fyne.NewMenuItem("Import Niche from DXF...", func() {
			a.importNicheDXF()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Installation PDF...", func() {
			a.exportPDF()
		}),
		fyne.NewMenuItem("Export Radiator Labels...", func() {
			a.exportLabels()
		}),
		fyne.NewMenuItem("Export Excel Workbook...", func() {
			a.exportExcel()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	// Edit Menu
	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", func() {
			a.undo()
		}),
		fyne.NewMenuItem("Redo", func() {
			a.redo()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Clear All Rooms", func() {
			a.snapshot("Clear All Rooms")
			a.project.Environments = nil
			a.selected = -1
			a.refreshAll()
		}),
	)

	// Tools Menu
	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Compare Series", func() {
			a.showCompareDialog()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Backup All Data...", func() {
			a.backupAllData()
		}),
		fyne.NewMenuItem("Restore from Backup...", func() {
			a.restoreAllData()
		}),
	)

	// Help Menu
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	mainMenu := fyne.NewMainMenu(
		fileMenu,
		editMenu,
		toolsMenu,
		helpMenu,
	)
	a.window.SetMainMenu(mainMenu)
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About RadiaPlan",
		"RadiaPlan — Radiator Sizing Configurator\n\n"+
			"A cross-platform desktop application for sizing hydronic\n"+
			"radiators room by room and checking niche clearances.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	roomsTab := container.NewTabItem("Rooms", a.buildRoomsPanel())
	editorTab := container.NewTabItem("Room Editor", a.buildEditorPanel())
	catalogTab := container.NewTabItem("Catalog", a.buildCatalogPanel())
	settingsTab := container.NewTabItem("Settings", a.buildSettingsPanel())
	resultsTab := container.NewTabItem("Results", a.buildResultsPanel())

	a.tabs = container.NewAppTabs(roomsTab, editorTab, catalogTab, settingsTab, resultsTab)
	a.tabs.SetTabLocation(container.TabLocationTop)

	return a.tabs
}

// snapshot pushes the current state onto the undo stack before a change.
func (a *App) snapshot(label string) {
	a.history.Push(MakeSnapshot(a.project.Environments, a.project.Settings, label))
}

func (a *App) undo() {
	current := MakeSnapshot(a.project.Environments, a.project.Settings, "current")
	restored, ok := a.history.Undo(current)
	if !ok {
		return
	}
	a.restoreSnapshot(restored)
}

func (a *App) redo() {
	current := MakeSnapshot(a.project.Environments, a.project.Settings, "current")
	restored, ok := a.history.Redo(current)
	if !ok {
		return
	}
	a.restoreSnapshot(restored)
}

func (a *App) restoreSnapshot(s Snapshot) {
	a.project.Environments = s.Environments
	a.project.Settings = s.Settings
	if a.selected >= len(a.project.Environments) {
		a.selected = len(a.project.Environments) - 1
	}
	a.refreshAll()
}

func (a *App) refreshAll() {
	a.refreshRoomsList()
	a.refreshEditor()
	a.refreshResults()
}

// selectedEnvironment returns the environment being edited, or nil.
func (a *App) selectedEnvironment() *model.Environment {
	if a.selected < 0 || a.selected >= len(a.project.Environments) {
		return nil
	}
	return &a.project.Environments[a.selected]
}

// sizeSelected runs the engine for the room being edited.
func (a *App) sizeSelected() (model.SizingResult, bool) {
	env := a.selectedEnvironment()
	if env == nil {
		return model.SizingResult{}, false
	}
	catalog := model.CatalogFor(env.Room.Series, a.catalog)
	return engine.SizeRoom(env.Room, catalog, a.project.Settings), true
}

// ─── Rooms Panel ───────────────────────────────────────────

func (a *App) buildRoomsPanel() fyne.CanvasObject {
	a.roomsContainer = container.NewVBox()
	a.refreshRoomsList()

	addBtn := widget.NewButtonWithIcon("Add Room", theme.ContentAddIcon(), func() {
		a.showAddRoomDialog()
	})
	templateBtn := widget.NewButtonWithIcon("From Template", theme.ContentCopyIcon(), func() {
		a.showAddFromTemplateDialog()
	})

	return container.NewBorder(
		container.NewHBox(
			widget.NewLabelWithStyle("Project Rooms", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			layout.NewSpacer(),
			templateBtn,
			addBtn,
		),
		nil, nil, nil,
		container.NewVScroll(a.roomsContainer),
	)
}

func (a *App) refreshRoomsList() {
	if a.roomsContainer == nil {
		return
	}
	a.roomsContainer.RemoveAll()

	if len(a.project.Environments) == 0 {
		a.roomsContainer.Add(widget.NewLabel("No rooms added yet. Click 'Add Room' to begin."))
		return
	}

	// Header
	header := container.NewGridWithColumns(6,
		widget.NewLabelWithStyle("Room", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Surface (m2)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Series", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Valves", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
	)
	a.roomsContainer.Add(header)
	a.roomsContainer.Add(widget.NewSeparator())

	for i := range a.project.Environments {
		idx := i // capture
		env := a.project.Environments[idx]
		row := container.NewGridWithColumns(6,
			widget.NewLabel(env.Name),
			widget.NewLabel(fmt.Sprintf("%.1f", env.Room.Surface)),
			widget.NewLabel(env.Room.Series.DisplayName()),
			widget.NewLabel(env.Room.ValvePosition.String()),
			widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
				a.selected = idx
				a.refreshEditor()
				a.tabs.SelectIndex(1) // Switch to Room Editor tab
			}),
			widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
				a.snapshot("Remove Room")
				a.project.RemoveEnvironment(env.ID)
				if a.selected >= len(a.project.Environments) {
					a.selected = len(a.project.Environments) - 1
				}
				a.refreshAll()
			}),
		)
		a.roomsContainer.Add(row)
	}
}

func (a *App) showAddRoomDialog() {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Room name")
	nameEntry.SetText(fmt.Sprintf("Room %d", len(a.project.Environments)+1))

	form := dialog.NewForm("Add Room", "Add", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			name := strings.TrimSpace(nameEntry.Text)
			if name == "" {
				dialog.ShowError(fmt.Errorf("room name must not be empty"), a.window)
				return
			}
			a.snapshot("Add Room")
			env := model.NewEnvironment(name)
			env.Room = env.Room.WithSeries(a.config.DefaultSeries)
			a.project.Environments = append(a.project.Environments, env)
			a.selected = len(a.project.Environments) - 1
			a.refreshAll()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(350, 150))
	form.Show()
}

func (a *App) showAddFromTemplateDialog() {
	names := a.templates.Names()
	if len(names) == 0 {
		dialog.ShowInformation("No templates", "No room templates are defined.", a.window)
		return
	}

	templateSelect := widget.NewSelect(names, nil)
	templateSelect.SetSelected(names[0])

	nameEntry := widget.NewEntry()
	nameEntry.SetText(fmt.Sprintf("Room %d", len(a.project.Environments)+1))

	form := dialog.NewForm("Add Room from Template", "Add", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Template", templateSelect),
			widget.NewFormItem("Name", nameEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			tmpl := a.templates.FindByName(templateSelect.Selected)
			if tmpl == nil {
				dialog.ShowError(fmt.Errorf("template %q not found", templateSelect.Selected), a.window)
				return
			}
			a.snapshot("Add Room from Template")
			env := tmpl.ToEnvironment(strings.TrimSpace(nameEntry.Text))
			a.project.Environments = append(a.project.Environments, env)
			a.selected = len(a.project.Environments) - 1
			a.refreshAll()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 200))
	form.Show()
}

// ─── Settings Panel ────────────────────────────────────────

func (a *App) buildSettingsPanel() fyne.CanvasObject {
	s := &a.project.Settings

	coeffEntry := widget.NewEntry()
	coeffEntry.SetText(fmt.Sprintf("%.1f", s.WattCoefficient))
	coeffEntry.OnChanged = func(text string) {
		if v, err := strconv.ParseFloat(text, 64); err == nil && v > 0 {
			s.WattCoefficient = v
			a.refreshEditor()
			a.refreshResults()
		}
	}

	projectNameEntry := widget.NewEntry()
	projectNameEntry.SetText(a.project.Name)
	projectNameEntry.OnChanged = func(text string) {
		a.project.Name = text
	}

	clientEntry := widget.NewEntry()
	clientEntry.SetText(a.project.Client)
	clientEntry.OnChanged = func(text string) {
		a.project.Client = text
	}

	projectSection := widget.NewCard("Project", "", container.NewGridWithColumns(2,
		widget.NewLabel("Project Name"), projectNameEntry,
		widget.NewLabel("Client"), clientEntry,
		widget.NewLabel("Watt Coefficient (K)"), coeffEntry,
	))

	// Application defaults persisted in the user config
	defaultCoeffEntry := widget.NewEntry()
	defaultCoeffEntry.SetText(fmt.Sprintf("%.1f", a.config.DefaultWattCoefficient))
	defaultCoeffEntry.OnChanged = func(text string) {
		if v, err := strconv.ParseFloat(text, 64); err == nil && v > 0 {
			a.config.DefaultWattCoefficient = v
		}
	}

	seriesNames := make([]string, 0, len(model.AllSeries()))
	for _, series := range model.AllSeries() {
		seriesNames = append(seriesNames, series.DisplayName())
	}
	defaultSeriesSelect := widget.NewSelect(seriesNames, func(selected string) {
		a.config.DefaultSeries = model.SeriesFromDisplayName(selected)
	})
	defaultSeriesSelect.SetSelected(a.config.DefaultSeries.DisplayName())

	autoSaveEntry := widget.NewEntry()
	autoSaveEntry.SetText(strconv.Itoa(a.config.AutoSaveInterval))
	autoSaveEntry.OnChanged = func(text string) {
		if v, err := strconv.Atoi(text); err == nil && v >= 0 {
			a.config.AutoSaveInterval = v
		}
	}

	themeSelect := widget.NewSelect([]string{"system", "light", "dark"}, func(selected string) {
		a.config.Theme = selected
		fyne.CurrentApp().Settings().SetTheme(NewRadiaPlanThemeWithVariant(ThemeVariantFromName(selected)))
	})
	themeSelect.SetSelected(a.config.Theme)

	saveBtn := widget.NewButtonWithIcon("Save Preferences", theme.DocumentSaveIcon(), func() {
		if err := project.SaveAppConfig(project.DefaultConfigPath(), a.config); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Preferences Saved", "Application preferences were saved.", a.window)
	})

	preferencesSection := widget.NewCard("Preferences", "", container.NewVBox(
		container.NewGridWithColumns(2,
			widget.NewLabel("Default Watt Coefficient"), defaultCoeffEntry,
			widget.NewLabel("Default Series"), defaultSeriesSelect,
			widget.NewLabel("Auto-save Interval (min, 0 = off)"), autoSaveEntry,
			widget.NewLabel("Theme"), themeSelect,
		),
		saveBtn,
	))

	return container.NewVScroll(container.NewVBox(
		projectSection,
		preferencesSection,
	))
}

// ─── Results Panel ─────────────────────────────────────────

func (a *App) buildResultsPanel() fyne.CanvasObject {
	a.resultContainer = container.NewVBox()
	a.refreshResults()
	return container.NewVScroll(a.resultContainer)
}

func (a *App) refreshResults() {
	if a.resultContainer == nil {
		return
	}
	a.resultContainer.RemoveAll()

	if len(a.project.Environments) == 0 {
		a.resultContainer.Add(widget.NewLabel("No rooms yet. Add rooms to see sizing results."))
		return
	}

	results := engine.SizeProject(a.project, a.catalog, a.project.Settings)

	for i, env := range a.project.Environments {
		r := results[i]
		card := widget.NewCard(env.Name, resultSubtitle(r), widget.NewLabel(resultSummary(r)))
		a.resultContainer.Add(card)
	}

	total := engine.ProjectTotalWatts(a.project, a.catalog, a.project.Settings)
	a.resultContainer.Add(widget.NewSeparator())
	a.resultContainer.Add(widget.NewLabelWithStyle(
		fmt.Sprintf("Project total: %.0f W across %d rooms", total, len(a.project.Environments)),
		fyne.TextAlignLeading, fyne.TextStyle{Bold: true},
	))
}

func resultSubtitle(r model.SizingResult) string {
	if r.Model.IsPlaceholder() {
		return "No catalog model"
	}
	name := r.Model.Label
	if r.Model.Brand != "" {
		name = r.Model.Brand + " " + name
	}
	return fmt.Sprintf("%s, %d elements", name, r.CurrentElements)
}

func resultSummary(r model.SizingResult) string {
	lines := []string{
		fmt.Sprintf("Demand %.0f W, installed %.0f W", r.RequiredWatts, r.TotalWatts),
		fmt.Sprintf("Body %.0f mm, occupied %.0f mm", r.BodyLength, r.TotalOccupiedWidth),
	}
	if r.NeedsEccentric {
		lines = append(lines, r.EccentricText)
	}
	if r.HasClearanceIssue {
		lines = append(lines, "WARNING: does not fit the declared niche")
	}
	return strings.Join(lines, "\n")
}

// ─── Project Actions ───────────────────────────────────────

func (a *App) saveProject() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := project.Save(path, a.project); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.config.AddRecentProject(path, 10)
		if err := project.SaveAppConfig(project.DefaultConfigPath(), a.config); err != nil {
			fmt.Printf("Cannot save preferences: %v\n", err)
		}
	}, a.window)
	d.SetFileName(a.project.Name + ".radiaplan")
	d.Show()
}

func (a *App) loadProject() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		path := reader.URI().Path()
		proj, err := project.Load(path)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.history.Clear()
		a.project = proj
		a.selected = -1
		if len(a.project.Environments) > 0 {
			a.selected = 0
		}
		a.config.AddRecentProject(path, 10)
		a.refreshAll()
	}, a.window)
	d.Show()
}

func (a *App) backupAllData() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if err := project.ExportAllData(writer.URI().Path(), a.config, a.catalog, a.templates); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Backup Complete", "All application data was exported.", a.window)
	}, a.window)
	d.SetFileName("radiaplan-backup.json")
	d.Show()
}

func (a *App) restoreAllData() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		data, err := project.ImportAllData(reader.URI().Path())
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.config = data.Config
		a.catalog = data.Catalog
		a.templates = model.TemplateStore{Templates: data.Templates}
		a.persistCatalog()
		a.refreshCatalogList()
		a.refreshEditor()
		a.refreshResults()
		dialog.ShowInformation("Restore Complete", "Application data was restored from the backup.", a.window)
	}, a.window)
	d.Show()
}

// ─── Export Actions ────────────────────────────────────────

func (a *App) exportPDF() {
	a.exportDocument("installation.pdf", func(path string, results []model.SizingResult) error {
		return export.ExportPDF(path, a.project, results)
	})
}

func (a *App) exportLabels() {
	a.exportDocument("labels.pdf", func(path string, results []model.SizingResult) error {
		return export.ExportLabels(path, a.project, results)
	})
}

func (a *App) exportExcel() {
	a.exportDocument("sizing.xlsx", func(path string, results []model.SizingResult) error {
		return export.ExportExcel(path, a.project, results)
	})
}

func (a *App) exportDocument(defaultName string, write func(string, []model.SizingResult) error) {
	if len(a.project.Environments) == 0 {
		dialog.ShowInformation("Nothing to export", "Add at least one room first.", a.window)
		return
	}

	results := engine.SizeProject(a.project, a.catalog, a.project.Settings)

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := write(path, results); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("Document saved to %s", path), a.window)
	}, a.window)
	d.SetFileName(defaultName)
	d.Show()
}

// ─── Import Actions ────────────────────────────────────────

func (a *App) importCatalogCSV() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := importer.ImportCSV(reader.URI().Path())
		a.handleCatalogImport(result)
	}, a.window)
}

func (a *App) importCatalogExcel() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := importer.ImportExcel(reader.URI().Path())
		a.handleCatalogImport(result)
	}, a.window)
}

func (a *App) handleCatalogImport(result importer.ImportResult) {
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(fmt.Errorf("%s", errorMsg), a.window)
	}

	if len(result.Warnings) > 0 {
		// Just log warnings, don't block
		fmt.Printf("Import warnings: %v\n", result.Warnings)
	}

	if len(result.Models) > 0 {
		a.catalog = project.MergeCatalog(a.catalog, result.Models)
		a.persistCatalog()
		a.refreshCatalogList()
		a.refreshEditor()
		a.refreshResults()

		msg := fmt.Sprintf("Successfully imported %d radiator models.", len(result.Models))
		if len(result.Errors) > 0 {
			msg += fmt.Sprintf("\n\nHowever, %d rows had errors and were skipped.", len(result.Errors))
		}
		dialog.ShowInformation("Import Complete", msg, a.window)
	}
}

func (a *App) importNicheDXF() {
	env := a.selectedEnvironment()
	if env == nil {
		dialog.ShowInformation("No room selected", "Select a room in the editor first.", a.window)
		return
	}

	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		niche, err := importer.ImportNicheDXF(reader.URI().Path())
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}

		a.snapshot("Import Niche")
		env.Room = env.Room.WithNiche(niche.Width, niche.Height)
		a.refreshEditor()
		a.refreshResults()

		msg := fmt.Sprintf("Niche set to %.0f x %.0f mm for %q.", niche.Width, niche.Height, env.Name)
		if len(niche.Warnings) > 0 {
			msg += "\n\n" + strings.Join(niche.Warnings, "\n")
		}
		dialog.ShowInformation("Niche Imported", msg, a.window)
	}, a.window)
}

func (a *App) persistCatalog() {
	if a.catalogPath == "" {
		return
	}
	if err := project.SaveCatalog(a.catalogPath, a.catalog); err != nil {
		dialog.ShowError(fmt.Errorf("cannot save catalog: %w", err), a.window)
	}
}
