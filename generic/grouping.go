/*
grouping.go - Cost profile grouping for the preset picker

PURPOSE:
  Partitions all expeditions by their (rounded) fuel/ammo cost percentages.
  Each group becomes one preset in the cost model section: picking it sets
  both percentage sliders at once.

ALGORITHM:
  1. Round each percent to an integer: round(raw * 100)
  2. Sort ascending by (fuel+ammo, fuel, ammo, id) - a total order
  3. Walk once, coalescing ADJACENT entries with the same (fuel, ammo)
  4. Stable sort groups by member count desc, then by fuel+ammo desc

  Step 2 guarantees equal profiles are adjacent, so step 3 is linear.
  Step 4 surfaces the most broadly applicable presets first.

DETERMINISM:
  The output depends on catalog data alone. kancolle.Presets caches the
  table and a regression test recomputes it.
*/
package generic

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// CostGroup is one preset: a cost profile and every expedition sharing it.
type CostGroup struct {
	FuelPercent int
	AmmoPercent int
	Expeditions []ExpeditionID // ascending
}

// Total is the combined percentage used for ordering.
func (g CostGroup) Total() int { return g.FuelPercent + g.AmmoPercent }

// Description renders the preset label, e.g.
// "50% Fuel, 0% Ammo, Expeditions: 2,4,5".
func (g CostGroup) Description() string {
	ids := make([]string, len(g.Expeditions))
	for i, id := range g.Expeditions {
		ids[i] = id.String()
	}
	noun := "Expedition"
	if len(g.Expeditions) > 1 {
		noun = "Expeditions"
	}
	return fmt.Sprintf("%d%% Fuel, %d%% Ammo, %s: %s",
		g.FuelPercent, g.AmmoPercent, noun, strings.Join(ids, ","))
}

// RoundPercent converts a 0.0..1.0 fraction to a whole percent.
func RoundPercent(p float64) int {
	return int(decimal.NewFromFloat(p).Mul(hundred).Round(0).IntPart())
}

type costProfile struct {
	id   ExpeditionID
	fuel int
	ammo int
}

// GroupByCost builds the preset groups from catalog entries.
func GroupByCost(infos []ExpeditionInfo) []CostGroup {
	profiles := make([]costProfile, len(infos))
	for i, info := range infos {
		profiles[i] = costProfile{
			id:   info.ID,
			fuel: RoundPercent(info.FuelCostPercent),
			ammo: RoundPercent(info.AmmoCostPercent),
		}
	}

	sort.Slice(profiles, func(i, j int) bool {
		a, b := profiles[i], profiles[j]
		if at, bt := a.fuel+a.ammo, b.fuel+b.ammo; at != bt {
			return at < bt
		}
		if a.fuel != b.fuel {
			return a.fuel < b.fuel
		}
		if a.ammo != b.ammo {
			return a.ammo < b.ammo
		}
		return a.id < b.id
	})

	var groups []CostGroup
	for _, p := range profiles {
		n := len(groups)
		if n > 0 && groups[n-1].FuelPercent == p.fuel && groups[n-1].AmmoPercent == p.ammo {
			groups[n-1].Expeditions = append(groups[n-1].Expeditions, p.id)
			continue
		}
		groups = append(groups, CostGroup{
			FuelPercent: p.fuel,
			AmmoPercent: p.ammo,
			Expeditions: []ExpeditionID{p.id},
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if li, lj := len(groups[i].Expeditions), len(groups[j].Expeditions); li != lj {
			return li > lj
		}
		return groups[i].Total() > groups[j].Total()
	})
	return groups
}
