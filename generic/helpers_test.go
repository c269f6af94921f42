package generic_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/warp/expedition-engine/generic"
)

// =============================================================================
// STUB ORACLES
// =============================================================================

type stubCatalog map[generic.ExpeditionID]generic.ExpeditionInfo

func (s stubCatalog) Info(id generic.ExpeditionID) (generic.ExpeditionInfo, bool) {
	info, ok := s[id]
	return info, ok
}

func (s stubCatalog) All() []generic.ExpeditionInfo {
	out := make([]generic.ExpeditionInfo, 0, len(s))
	for _, info := range s {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type resolveCall struct {
	id       generic.ExpeditionID
	wildcard generic.Wildcard
	escorts  int
}

// stubResolver returns a fixed fleet per expedition and records its calls.
type stubResolver struct {
	fleets map[generic.ExpeditionID]generic.Composition
	err    error
	calls  []resolveCall
}

func (s *stubResolver) Resolve(id generic.ExpeditionID, w generic.Wildcard, escorts int) (generic.Composition, error) {
	s.calls = append(s.calls, resolveCall{id: id, wildcard: w, escorts: escorts})
	if s.err != nil {
		return nil, s.err
	}
	return s.fleets[id], nil
}

// stubCostModel knows a per-ship cost and a per-type limit.
type stubCostModel struct {
	perShip map[generic.ShipType]generic.Cost
	limit   map[generic.ShipType]int
}

func (s stubCostModel) MaxCost(c generic.Composition) ([]generic.Cost, error) {
	var slots []generic.Cost
	for _, t := range c {
		cost, ok := s.perShip[t]
		if !ok {
			return nil, fmt.Errorf("%s: %w", t, generic.ErrCostUnavailable)
		}
		if lim, ok := s.limit[t]; ok && c.Count(t) > lim {
			return nil, fmt.Errorf("%d x %s: %w", c.Count(t), t, generic.ErrCostUnavailable)
		}
		slots = append(slots, cost)
	}
	return slots, nil
}

func newStubModel() stubCostModel {
	return stubCostModel{
		perShip: map[generic.ShipType]generic.Cost{
			"DD":     {Fuel: 15, Ammo: 20},
			"CL":     {Fuel: 25, Ammo: 25},
			"SSLike": {Fuel: 10, Ammo: 20},
			"CT":     {Fuel: 35, Ammo: 20},
		},
		limit: map[generic.ShipType]int{"CT": 1},
	}
}

// fullCatalog has one entry per id. Odd ids cost 50% fuel only; even ids
// cost 80% of both.
func fullCatalog() stubCatalog {
	cat := stubCatalog{}
	for _, id := range generic.AllExpeditionIDs() {
		info := generic.ExpeditionInfo{
			ID:        id,
			Time:      60,
			BaseYield: generic.Yield{Fuel: 100, Ammo: 50, Steel: 20, Bauxite: 10},
		}
		if id%2 == 1 {
			info.FuelCostPercent = 0.5
		} else {
			info.FuelCostPercent, info.AmmoCostPercent = 0.8, 0.8
		}
		cat[id] = info
	}
	return cat
}

func fullResolver() *stubResolver {
	r := &stubResolver{fleets: map[generic.ExpeditionID]generic.Composition{}}
	for _, id := range generic.AllExpeditionIDs() {
		r.fleets[id] = generic.Composition{"CL", "DD", "DD"}
	}
	return r
}

func newTestDeriver() *generic.Deriver {
	return generic.NewDeriver(fullCatalog(), fullResolver(), newStubModel())
}

// =============================================================================
// ASSERTIONS
// =============================================================================

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	w := decimal.RequireFromString(want)
	assert.Truef(t, w.Equal(got), "expected %s, got %s", w, got)
}
