package kancolle

import (
	"fmt"

	"github.com/warp/expedition-engine/generic"
)

// Compositions resolves fleets from each expedition's minimum composition.
// Escort slots are filled with the wildcard ship type until the fleet holds
// escortCount ships; a minimum fleet that is already that large is unchanged.
type Compositions struct {
	minimum map[generic.ExpeditionID]generic.Composition
}

// NewCompositions indexes the minimum fleets of data. Data is assumed valid.
func NewCompositions(data Data) *Compositions {
	c := &Compositions{minimum: make(map[generic.ExpeditionID]generic.Composition, len(data.Expeditions))}
	for _, e := range data.Expeditions {
		c.minimum[generic.ExpeditionID(e.ID)] = append(generic.Composition(nil), e.Composition...)
	}
	return c
}

// Minimum returns a copy of the minimum fleet for id.
func (c *Compositions) Minimum(id generic.ExpeditionID) (generic.Composition, bool) {
	m, ok := c.minimum[id]
	if !ok {
		return nil, false
	}
	return append(generic.Composition(nil), m...), true
}

func (c *Compositions) Resolve(id generic.ExpeditionID, wildcard generic.Wildcard, escortCount int) (generic.Composition, error) {
	fleet, ok := c.Minimum(id)
	if !ok {
		return nil, fmt.Errorf("expedition %d: %w", id, generic.ErrUnknownExpedition)
	}
	st, pad, err := wildcard.ShipType()
	if err != nil {
		return nil, err
	}
	if !pad {
		return fleet, nil
	}
	for len(fleet) < min(escortCount, generic.MaxFleetSize) {
		fleet = append(fleet, st)
	}
	return fleet, nil
}
