// RadiaPlan: Radiator Sizing Configurator
//
// A cross-platform desktop application for sizing hydronic radiators
// room by room: heat-load calculation, catalog matching, element counts,
// and niche clearance checks, with PDF, label, and Excel export.
//
// Build:
//   go build -o radiaplan ./cmd/radiaplan
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o radiaplan.exe ./cmd/radiaplan
//   GOOS=darwin  GOARCH=amd64 go build -o radiaplan-darwin ./cmd/radiaplan
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/RadiaPlan/internal/project"
	"github.com/piwi3910/RadiaPlan/internal/ui"
)

func main() {
	application := app.NewWithID("com.piwi3910.radiaplan")
	window := application.NewWindow("RadiaPlan — Radiator Sizing Configurator")

	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err == nil {
		application.Settings().SetTheme(ui.NewRadiaPlanThemeWithVariant(ui.ThemeVariantFromName(config.Theme)))
	} else {
		application.Settings().SetTheme(ui.NewRadiaPlanTheme())
	}

	appUI := ui.NewApp(window)
	appUI.SetupMenus() // Setup the native menu bar
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1000, 700))
	window.CenterOnScreen()
	window.ShowAndRun()
}
