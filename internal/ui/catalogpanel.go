package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/RadiaPlan/internal/model"
	"github.com/piwi3910/RadiaPlan/internal/project"
)

// buildCatalogPanel shows the user-maintained custom catalog. The built-in
// series are fixed; only custom models are editable here.
func (a *App) buildCatalogPanel() fyne.CanvasObject {
	a.catalogContainer = container.NewVBox()
	a.refreshCatalogList()

	addBtn := widget.NewButtonWithIcon("Add Model", theme.ContentAddIcon(), func() {
		a.showAddModelDialog()
	})
	exportBtn := widget.NewButtonWithIcon("Export...", theme.DocumentSaveIcon(), func() {
		a.exportCatalog()
	})

	return container.NewBorder(
		container.NewHBox(
			widget.NewLabelWithStyle("Custom Radiator Catalog", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			layout.NewSpacer(),
			exportBtn,
			addBtn,
		),
		nil, nil, nil,
		container.NewVScroll(a.catalogContainer),
	)
}

func (a *App) refreshCatalogList() {
	if a.catalogContainer == nil {
		return
	}
	a.catalogContainer.RemoveAll()

	if len(a.catalog) == 0 {
		a.catalogContainer.Add(widget.NewLabel(
			"No custom models yet. Add one manually or import a manufacturer sheet from the File menu."))
		return
	}

	header := container.NewGridWithColumns(7,
		widget.NewLabelWithStyle("Model", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Brand", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Height (mm)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Interaxis (mm)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Watts/el.", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
	)
	a.catalogContainer.Add(header)
	a.catalogContainer.Add(widget.NewSeparator())

	for i := range a.catalog {
		idx := i // capture
		m := a.catalog[idx]
		row := container.NewGridWithColumns(7,
			widget.NewLabel(m.Label),
			widget.NewLabel(m.Brand),
			widget.NewLabel(fmt.Sprintf("%.0f", m.Height)),
			widget.NewLabel(fmt.Sprintf("%.0f", m.Interaxis)),
			widget.NewLabel(fmt.Sprintf("%.0f", m.Watts)),
			widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
				a.showEditModelDialog(idx)
			}),
			widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
				a.catalog = append(a.catalog[:idx], a.catalog[idx+1:]...)
				a.persistCatalog()
				a.refreshCatalogList()
				a.refreshEditor()
				a.refreshResults()
			}),
		)
		a.catalogContainer.Add(row)
	}
}

func (a *App) showAddModelDialog() {
	labelEntry := widget.NewEntry()
	labelEntry.SetPlaceHolder("Model name")

	brandEntry := widget.NewEntry()
	brandEntry.SetPlaceHolder("Manufacturer")

	heightEntry := widget.NewEntry()
	heightEntry.SetPlaceHolder("Height in mm")

	interaxisEntry := widget.NewEntry()
	interaxisEntry.SetPlaceHolder("Interaxis in mm")

	wattsEntry := widget.NewEntry()
	wattsEntry.SetPlaceHolder("Watts per element")

	form := dialog.NewForm("Add Radiator Model", "Add", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Model", labelEntry),
			widget.NewFormItem("Brand", brandEntry),
			widget.NewFormItem("Height (mm)", heightEntry),
			widget.NewFormItem("Interaxis (mm)", interaxisEntry),
			widget.NewFormItem("Watts / element", wattsEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			h, _ := strconv.ParseFloat(heightEntry.Text, 64)
			ia, _ := strconv.ParseFloat(interaxisEntry.Text, 64)
			w, _ := strconv.ParseFloat(wattsEntry.Text, 64)
			if h <= 0 || ia <= 0 || w <= 0 {
				dialog.ShowError(fmt.Errorf("height, interaxis, and watts must be > 0"), a.window)
				return
			}

			m := model.NewRadiatorModel(labelEntry.Text, h, ia, w)
			m.Brand = brandEntry.Text

			a.catalog = append(a.catalog, m)
			a.persistCatalog()
			a.refreshCatalogList()
			a.refreshEditor()
			a.refreshResults()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 350))
	form.Show()
}

func (a *App) showEditModelDialog(idx int) {
	m := a.catalog[idx]

	labelEntry := widget.NewEntry()
	labelEntry.SetText(m.Label)

	brandEntry := widget.NewEntry()
	brandEntry.SetText(m.Brand)

	heightEntry := widget.NewEntry()
	heightEntry.SetText(fmt.Sprintf("%.0f", m.Height))

	interaxisEntry := widget.NewEntry()
	interaxisEntry.SetText(fmt.Sprintf("%.0f", m.Interaxis))

	wattsEntry := widget.NewEntry()
	wattsEntry.SetText(fmt.Sprintf("%.0f", m.Watts))

	form := dialog.NewForm("Edit Radiator Model", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Model", labelEntry),
			widget.NewFormItem("Brand", brandEntry),
			widget.NewFormItem("Height (mm)", heightEntry),
			widget.NewFormItem("Interaxis (mm)", interaxisEntry),
			widget.NewFormItem("Watts / element", wattsEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			h, _ := strconv.ParseFloat(heightEntry.Text, 64)
			ia, _ := strconv.ParseFloat(interaxisEntry.Text, 64)
			w, _ := strconv.ParseFloat(wattsEntry.Text, 64)
			if h <= 0 || ia <= 0 || w <= 0 {
				dialog.ShowError(fmt.Errorf("height, interaxis, and watts must be > 0"), a.window)
				return
			}

			a.catalog[idx].Label = labelEntry.Text
			a.catalog[idx].Brand = brandEntry.Text
			a.catalog[idx].Height = h
			a.catalog[idx].Interaxis = ia
			a.catalog[idx].Watts = w

			a.persistCatalog()
			a.refreshCatalogList()
			a.refreshEditor()
			a.refreshResults()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 350))
	form.Show()
}

func (a *App) exportCatalog() {
	if len(a.catalog) == 0 {
		dialog.ShowInformation("Empty catalog", "There are no custom models to export.", a.window)
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if err := project.ExportCatalog(writer.URI().Path(), a.catalog); err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
	d.SetFileName("catalog.json")
	d.Show()
}
