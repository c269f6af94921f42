package generic

import (
	"errors"

	"github.com/shopspring/decimal"
)

// MaxFleetSize is the number of slots in a fleet.
const MaxFleetSize = 6

// CostCell is the cost of a fleet made of Count ships of one type.
// Available is false when the cost model has no data for that fleet.
type CostCell struct {
	Count     int
	Available bool
	Cost      Cost
}

// CostTableRow holds the cells for one ship type, Count 1..MaxFleetSize.
type CostTableRow struct {
	ShipType ShipTypeInfo
	Cells    []CostCell
}

// CostModelTable tabulates the resupply cost of homogeneous fleets at the
// given whole percents (clamped to 0..100). Presets from GroupByCost set
// both percents at once.
func CostModelTable(model CostModel, types []ShipTypeInfo, fuelPercent, ammoPercent int) ([]CostTableRow, error) {
	fp := decimal.NewFromInt(int64(clampInt(fuelPercent, 0, 100))).Div(hundred)
	ap := decimal.NewFromInt(int64(clampInt(ammoPercent, 0, 100))).Div(hundred)

	rows := make([]CostTableRow, 0, len(types))
	for _, info := range types {
		row := CostTableRow{ShipType: info, Cells: make([]CostCell, 0, MaxFleetSize)}
		for n := 1; n <= MaxFleetSize; n++ {
			compo := make(Composition, n)
			for i := range compo {
				compo[i] = info.Type
			}
			cell := CostCell{Count: n}
			slots, err := model.MaxCost(compo)
			switch {
			case err == nil:
				cell.Available = true
				cell.Cost = ScaleSlots(slots, fp, ap)
			case errors.Is(err, ErrCostUnavailable):
			default:
				return nil, err
			}
			row.Cells = append(row.Cells, cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
