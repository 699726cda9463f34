package model

// Series identifies which radiator catalog a room is sized against:
// one of the fixed built-in series, or the user-maintained custom catalog.
type Series string

const (
	SeriesTubular3 Series = "tubular3" // 3-column tubular steel
	SeriesTubular4 Series = "tubular4" // 4-column tubular steel
	SeriesAluminum Series = "aluminum" // die-cast aluminum
	SeriesCustom   Series = "custom"   // user catalog
)

// DisplayName returns the human-readable series name.
func (s Series) DisplayName() string {
	switch s {
	case SeriesTubular3:
		return "Tubular 3-column"
	case SeriesTubular4:
		return "Tubular 4-column"
	case SeriesAluminum:
		return "Aluminum"
	case SeriesCustom:
		return "Custom catalog"
	default:
		return string(s)
	}
}

// AllSeries lists every selectable series in display order.
func AllSeries() []Series {
	return []Series{SeriesTubular3, SeriesTubular4, SeriesAluminum, SeriesCustom}
}

// SeriesFromDisplayName maps a display name back to its Series. Unknown
// names fall back to the default series.
func SeriesFromDisplayName(name string) Series {
	for _, s := range AllSeries() {
		if s.DisplayName() == name {
			return s
		}
	}
	return SeriesTubular3
}

// builtin constructs a built-in catalog entry. Built-in entries carry no ID:
// they are never merged or deduplicated.
func builtin(series Series, brand, label string, height, interaxis, watts float64) RadiatorModel {
	return RadiatorModel{
		Label:     label,
		Height:    height,
		Interaxis: interaxis,
		Watts:     watts,
		Brand:     brand,
		Series:    series,
	}
}

// Built-in catalogs. Labels are the nominal interaxis in mm; wattage is per
// element at the reference delta-T of 50 K. Entries are ordered by
// interaxis; catalog order is part of the matching contract (ties go to the
// earlier entry).
var builtinCatalogs = map[Series][]RadiatorModel{
	SeriesTubular3: {
		builtin(SeriesTubular3, "Column T3", "200", 265, 200, 46),
		builtin(SeriesTubular3, "Column T3", "350", 415, 350, 59),
		builtin(SeriesTubular3, "Column T3", "500", 565, 500, 71),
		builtin(SeriesTubular3, "Column T3", "600", 665, 600, 81),
		builtin(SeriesTubular3, "Column T3", "700", 765, 700, 91),
		builtin(SeriesTubular3, "Column T3", "800", 865, 800, 101),
		builtin(SeriesTubular3, "Column T3", "900", 965, 900, 111),
		builtin(SeriesTubular3, "Column T3", "1000", 1065, 1000, 120),
	},
	SeriesTubular4: {
		builtin(SeriesTubular4, "Column T4", "200", 265, 200, 61),
		builtin(SeriesTubular4, "Column T4", "350", 415, 350, 78),
		builtin(SeriesTubular4, "Column T4", "500", 565, 500, 94),
		builtin(SeriesTubular4, "Column T4", "600", 665, 600, 107),
		builtin(SeriesTubular4, "Column T4", "700", 765, 700, 120),
		builtin(SeriesTubular4, "Column T4", "800", 865, 800, 134),
		builtin(SeriesTubular4, "Column T4", "900", 965, 900, 147),
		builtin(SeriesTubular4, "Column T4", "1000", 1065, 1000, 159),
	},
	SeriesAluminum: {
		builtin(SeriesAluminum, "AluTherm", "350", 430, 350, 105),
		builtin(SeriesAluminum, "AluTherm", "500", 580, 500, 136),
		builtin(SeriesAluminum, "AluTherm", "600", 680, 600, 157),
		builtin(SeriesAluminum, "AluTherm", "700", 780, 700, 177),
		builtin(SeriesAluminum, "AluTherm", "800", 880, 800, 198),
	},
}

// BuiltinCatalog returns a copy of the built-in catalog for a series, or
// nil for SeriesCustom and unknown series. Callers get a copy so built-in
// data can never be mutated.
func BuiltinCatalog(series Series) []RadiatorModel {
	src, ok := builtinCatalogs[series]
	if !ok {
		return nil
	}
	cp := make([]RadiatorModel, len(src))
	copy(cp, src)
	return cp
}

// CatalogFor selects the active catalog for a room: the built-in table for
// fixed series, or the supplied user catalog for SeriesCustom. The result
// may be empty; the engine degrades to a placeholder model in that case.
func CatalogFor(series Series, custom []RadiatorModel) []RadiatorModel {
	if series == SeriesCustom {
		return custom
	}
	return BuiltinCatalog(series)
}
