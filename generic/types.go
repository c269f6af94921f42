/*
Package generic provides the core expedition economics engine.

PURPOSE:
  This package contains the catalog-agnostic types and algorithms that turn
  a per-expedition configuration into concrete numbers: an income multiplier,
  a resupply cost, and basic/gross/net income figures. It knows nothing about
  the actual catalog contents; those are supplied through the Catalog,
  CompositionResolver and CostModel interfaces (see derive.go).

KEY CONCEPTS IN THIS FILE (types.go):
  - ExpeditionID: Catalog identifier, 1..40
  - Resource: One of fuel, ammo, steel, bauxite
  - Cost: Resupply cost of a run (fuel + ammo only)
  - Yield: Base income of a run (all four resources)
  - ExpeditionInfo: Read-only catalog entry
  - ShipType / Composition: Fleet description handed to the cost model

DESIGN PRINCIPLES:
  1. Purity: Derivations are plain functions of their inputs
  2. Precision: Scaling and flooring go through decimal.Decimal
  3. Type Safety: Config variants are sealed interfaces (config.go)
  4. Loud failure: Invalid modes and unknown variants are errors, never defaults

USAGE:
  deriver := generic.Deriver{Catalog: cat, Compositions: res, CostModel: model}
  cost, err := deriver.ResolveCost(cfg.Cost, 2)
  income, err := generic.ComputeIncome(generic.IncomeInput{...})

SEE ALSO:
  - config.go: Modifier and cost config variants
  - derive.go: Multiplier and cost resolution
  - income.go: Income/denomination calculator
  - grouping.go: Cost profile grouping for presets
*/
package generic

import "fmt"

// =============================================================================
// IDENTIFIERS
// =============================================================================

// ExpeditionID identifies a fixed catalog entry.
type ExpeditionID int

const (
	MinExpeditionID ExpeditionID = 1
	MaxExpeditionID ExpeditionID = 40
)

// Valid reports whether the id is inside the catalog range.
func (id ExpeditionID) Valid() bool { return id >= MinExpeditionID && id <= MaxExpeditionID }

func (id ExpeditionID) String() string { return fmt.Sprintf("%d", int(id)) }

// AllExpeditionIDs returns 1..40 in ascending order.
func AllExpeditionIDs() []ExpeditionID {
	ids := make([]ExpeditionID, 0, int(MaxExpeditionID))
	for id := MinExpeditionID; id <= MaxExpeditionID; id++ {
		ids = append(ids, id)
	}
	return ids
}

// =============================================================================
// RESOURCES
// =============================================================================

type Resource string

const (
	ResourceFuel    Resource = "fuel"
	ResourceAmmo    Resource = "ammo"
	ResourceSteel   Resource = "steel"
	ResourceBauxite Resource = "bauxite"
)

// Resources lists all resources in display order.
var Resources = []Resource{ResourceFuel, ResourceAmmo, ResourceSteel, ResourceBauxite}

// Cost is a resupply cost. Only fuel and ammo are ever consumed.
type Cost struct {
	Fuel int
	Ammo int
}

func (c Cost) Add(o Cost) Cost { return Cost{Fuel: c.Fuel + o.Fuel, Ammo: c.Ammo + o.Ammo} }

// Of returns the cost component for r and whether r has one.
func (c Cost) Of(r Resource) (int, bool) {
	switch r {
	case ResourceFuel:
		return c.Fuel, true
	case ResourceAmmo:
		return c.Ammo, true
	default:
		return 0, false
	}
}

// Yield is the base income of a single run.
type Yield struct {
	Fuel    int
	Ammo    int
	Steel   int
	Bauxite int
}

func (y Yield) Of(r Resource) int {
	switch r {
	case ResourceFuel:
		return y.Fuel
	case ResourceAmmo:
		return y.Ammo
	case ResourceSteel:
		return y.Steel
	case ResourceBauxite:
		return y.Bauxite
	default:
		return 0
	}
}

// =============================================================================
// CATALOG ENTRY
// =============================================================================

// ExpeditionInfo is the read-only catalog data for one expedition.
type ExpeditionInfo struct {
	ID        ExpeditionID
	Time      int // round trip, minutes
	BaseYield Yield

	// Fraction of each ship's max fuel/ammo spent per run, 0.0..1.0.
	FuelCostPercent float64
	AmmoCostPercent float64
}

// =============================================================================
// FLEET COMPOSITION
// =============================================================================

// ShipType is a ship class as understood by the cost model (see shiptype.go).
type ShipType string

// Composition is a concrete fleet, one entry per filled slot.
type Composition []ShipType

// Count returns how many slots hold ship type t.
func (c Composition) Count(t ShipType) int {
	n := 0
	for _, s := range c {
		if s == t {
			n++
		}
	}
	return n
}
