package kancolle

import (
	"fmt"

	"github.com/warp/expedition-engine/generic"
)

// CostModel answers max resupply costs from the per-ship-type table.
type CostModel struct {
	ships map[generic.ShipType]ShipCostData
}

func NewCostModel(data Data) *CostModel {
	m := &CostModel{ships: make(map[generic.ShipType]ShipCostData, len(data.ShipTypes))}
	for _, st := range data.ShipTypes {
		m.ships[st.Type] = st
	}
	return m
}

// MaxCost returns one entry per slot. A ship type without data, or more
// ships of a type than its MaxCount, is reported as ErrCostUnavailable.
func (m *CostModel) MaxCost(c generic.Composition) ([]generic.Cost, error) {
	slots := make([]generic.Cost, 0, len(c))
	for _, t := range c {
		st, ok := m.ships[t]
		if !ok {
			return nil, fmt.Errorf("no data for ship type %s: %w", t, generic.ErrCostUnavailable)
		}
		if n := c.Count(t); n > st.MaxCount {
			return nil, fmt.Errorf("no data for %d x %s: %w", n, t, generic.ErrCostUnavailable)
		}
		slots = append(slots, generic.Cost{Fuel: st.Fuel, Ammo: st.Ammo})
	}
	return slots, nil
}
