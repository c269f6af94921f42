package kancolle

import (
	"reflect"

	"github.com/warp/expedition-engine/generic"
)

// Presets is generic.GroupByCost over the bundled catalog, precomputed.
// TestPresets_MatchGrouping recomputes it; update both when catalog.yaml
// changes its cost percents.
var Presets = []generic.CostGroup{
	{FuelPercent: 50, AmmoPercent: 0, Expeditions: ids(2, 4, 5, 7, 9, 11, 12, 14, 31)},
	{FuelPercent: 80, AmmoPercent: 80, Expeditions: ids(23, 26, 27, 28, 35, 36, 37, 38)},
	{FuelPercent: 50, AmmoPercent: 40, Expeditions: ids(13, 15, 16, 19, 20)},
	{FuelPercent: 80, AmmoPercent: 70, Expeditions: ids(21, 22, 40)},
	{FuelPercent: 50, AmmoPercent: 80, Expeditions: ids(25, 33, 34)},
	{FuelPercent: 50, AmmoPercent: 20, Expeditions: ids(8, 18)},
	{FuelPercent: 30, AmmoPercent: 20, Expeditions: ids(3, 6)},
	{FuelPercent: 30, AmmoPercent: 0, Expeditions: ids(1, 10)},
	{FuelPercent: 90, AmmoPercent: 90, Expeditions: ids(39)},
	{FuelPercent: 90, AmmoPercent: 70, Expeditions: ids(30)},
	{FuelPercent: 90, AmmoPercent: 60, Expeditions: ids(24)},
	{FuelPercent: 90, AmmoPercent: 40, Expeditions: ids(29)},
	{FuelPercent: 90, AmmoPercent: 30, Expeditions: ids(32)},
	{FuelPercent: 30, AmmoPercent: 40, Expeditions: ids(17)},
}

// PresetsFor returns the cached table when data is the bundled catalog and
// recomputes it otherwise.
func PresetsFor(data Data) ([]generic.CostGroup, error) {
	if bundled, err := DefaultData(); err == nil && reflect.DeepEqual(bundled, data) {
		return Presets, nil
	}
	cat, err := NewCatalog(data)
	if err != nil {
		return nil, err
	}
	return generic.GroupByCost(cat.All()), nil
}

func ids(xs ...int) []generic.ExpeditionID {
	out := make([]generic.ExpeditionID, len(xs))
	for i, x := range xs {
		out[i] = generic.ExpeditionID(x)
	}
	return out
}
