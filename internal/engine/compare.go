package engine

import "github.com/piwi3910/RadiaPlan/internal/model"

// SeriesComparison holds the sizing outcome of one catalog series for a
// given room, for side-by-side what-if display.
type SeriesComparison struct {
	Series model.Series
	Result model.SizingResult
}

// CompareSeries sizes the same room against every selectable series so the
// installer can see how element count, footprint, and clearance change with
// the catalog choice. The custom series is included only when the user
// catalog has entries. Manual element overrides are ignored: a comparison
// is only meaningful on computed counts.
func CompareSeries(room model.RoomSpec, customCatalog []model.RadiatorModel, settings model.GlobalSettings) []SeriesComparison {
	results := make([]SeriesComparison, 0, len(model.AllSeries()))

	for _, series := range model.AllSeries() {
		if series == model.SeriesCustom && len(customCatalog) == 0 {
			continue
		}

		variant := room.WithSeries(series)
		catalog := model.CatalogFor(series, customCatalog)
		results = append(results, SeriesComparison{
			Series: series,
			Result: SizeRoom(variant, catalog, settings),
		})
	}

	return results
}

// BestSeries returns the comparison with the smallest occupied width that
// has no clearance issue, or the fewest elements when nothing fits. Returns
// false when there is nothing to compare.
func BestSeries(comparisons []SeriesComparison) (SeriesComparison, bool) {
	if len(comparisons) == 0 {
		return SeriesComparison{}, false
	}

	best := comparisons[0]
	for _, c := range comparisons[1:] {
		if betterFit(c, best) {
			best = c
		}
	}
	return best, true
}

// betterFit prefers fitting configurations over non-fitting ones, then the
// narrower footprint.
func betterFit(a, b SeriesComparison) bool {
	if a.Result.HasClearanceIssue != b.Result.HasClearanceIssue {
		return !a.Result.HasClearanceIssue
	}
	return a.Result.TotalOccupiedWidth < b.Result.TotalOccupiedWidth
}
