// Package ui provides the RadiaPlan application UI components.
//
// This file defines a custom compact Fyne theme for a professional, dense layout.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// RadiaPlanTheme wraps the default Fyne theme with compact sizing overrides
// for a professional, information-dense installer layout.
type RadiaPlanTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
}

// NewRadiaPlanTheme creates a new RadiaPlanTheme with the system default variant.
func NewRadiaPlanTheme() *RadiaPlanTheme {
	return &RadiaPlanTheme{
		base:    theme.DefaultTheme(),
		variant: 0, // system default
	}
}

// NewRadiaPlanThemeWithVariant creates a RadiaPlanTheme with a specific light/dark variant.
func NewRadiaPlanThemeWithVariant(variant fyne.ThemeVariant) *RadiaPlanTheme {
	return &RadiaPlanTheme{
		base:    theme.DefaultTheme(),
		variant: variant,
	}
}

// SetVariant updates the theme variant (light/dark/system).
func (t *RadiaPlanTheme) SetVariant(variant fyne.ThemeVariant) {
	t.variant = variant
}

// Color delegates to the base theme with the stored variant.
func (t *RadiaPlanTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return t.base.Color(name, t.variant)
}

// Font delegates to the base theme.
func (t *RadiaPlanTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *RadiaPlanTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides for a dense, professional layout.
func (t *RadiaPlanTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 9
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 16
	default:
		return t.base.Size(name)
	}
}

// ThemeVariantFromName maps the persisted config value to a Fyne variant.
// Unknown values fall back to the system default.
func ThemeVariantFromName(name string) fyne.ThemeVariant {
	switch name {
	case "light":
		return theme.VariantLight
	case "dark":
		return theme.VariantDark
	default:
		return 0
	}
}
