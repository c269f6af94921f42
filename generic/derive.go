/*
derive.go - Derivation engine: configs to concrete numbers

PURPOSE:
  Converts a ModifierConfig into a multiplier and a CostConfig into a
  concrete {fuel, ammo} resupply cost. Cost resolution delegates to two
  injected collaborators so the engine stays testable with stub oracles.

COLLABORATORS:
  Catalog:             Read-only expedition data (time, yields, cost percents)
  CompositionResolver: Expedition + wildcard + escort count -> fleet
  CostModel:           Fleet -> max {fuel, ammo} per filled slot

COST RESOLUTION:
  1. Resolve the fleet. WildcardNone forces the escort count to 0.
  2. Ask the cost model for each slot's max cost. ErrCostUnavailable is
     propagated as *CostUnavailableError, never replaced by zero.
  3. Scale each slot by the expedition's fuel/ammo percent and floor it.
  4. Sum fuel and ammo over all slots independently.

  Flooring happens per slot BEFORE summing. Summing first and flooring once
  gives different totals.

PRECISION:
  Percents and multipliers are applied through decimal.Decimal so that
  0.8 x 15 floors to 12 and 1.5 x 1.2 is exactly 1.8.

SEE ALSO:
  - config.go: Config variants
  - income.go: Consumes Multiplier and ResolveCost results
  - kancolle/: Concrete Catalog, CompositionResolver and CostModel
*/
package generic

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// =============================================================================
// COLLABORATORS
// =============================================================================

// Catalog provides read-only expedition data.
type Catalog interface {
	// Info returns the entry for id, or ok=false if the catalog has none.
	Info(id ExpeditionID) (ExpeditionInfo, bool)

	// All returns every entry, ordered by id.
	All() []ExpeditionInfo
}

// CompositionResolver turns an expedition and an escort request into a fleet.
// Implementations must be deterministic and must not mutate catalog state.
type CompositionResolver interface {
	// Resolve returns the concrete fleet for id. With WildcardNone,
	// escortCount is always 0 and no slots are padded.
	Resolve(id ExpeditionID, wildcard Wildcard, escortCount int) (Composition, error)
}

// CostModel computes the maximum resupply cost of a fleet.
type CostModel interface {
	// MaxCost returns one entry per filled slot, or an error wrapping
	// ErrCostUnavailable when it has no data for the composition.
	MaxCost(c Composition) ([]Cost, error)
}

// =============================================================================
// MULTIPLIER
// =============================================================================

var (
	one               = decimal.NewFromInt(1)
	hundred           = decimal.NewFromInt(100)
	greatSuccessBonus = decimal.RequireFromString("1.5")
	daihatsuBonus     = decimal.RequireFromString("0.05")
)

// Multiplier returns the income multiplier of a modifier config.
// Standard: (greatSuccess ? 1.5 : 1.0) * (1 + 0.05*daihatsu).
// Custom: the value unchanged. No rounding is applied.
func Multiplier(m ModifierConfig) (decimal.Decimal, error) {
	switch x := m.(type) {
	case StandardModifier:
		base := one
		if x.GreatSuccess {
			base = greatSuccessBonus
		}
		return base.Mul(one.Add(daihatsuBonus.Mul(decimal.NewFromInt(int64(x.Daihatsu))))), nil
	case CustomModifier:
		if math.IsNaN(x.Value) || math.IsInf(x.Value, 0) {
			return decimal.Zero, fmt.Errorf("custom multiplier %v: %w", x.Value, ErrInvalidMultiplier)
		}
		return decimal.NewFromFloat(x.Value), nil
	default:
		return decimal.Zero, fmt.Errorf("modifier %T: %w", m, ErrUnknownVariant)
	}
}

// GainPercent renders a multiplier as a signed gain, e.g. 1.8 -> 80.
func GainPercent(m decimal.Decimal) decimal.Decimal {
	return m.Sub(one).Mul(hundred)
}

// =============================================================================
// COST RESOLUTION
// =============================================================================

// Deriver resolves cost configs against the injected collaborators.
type Deriver struct {
	Catalog      Catalog
	Compositions CompositionResolver
	CostModel    CostModel
}

// NewDeriver creates a deriver.
func NewDeriver(catalog Catalog, compositions CompositionResolver, model CostModel) *Deriver {
	return &Deriver{Catalog: catalog, Compositions: compositions, CostModel: model}
}

// ResolveCost returns the concrete {fuel, ammo} cost of cfg for expedition id.
func (d *Deriver) ResolveCost(cfg CostConfig, id ExpeditionID) (Cost, error) {
	switch c := cfg.(type) {
	case CustomCost:
		return Cost{Fuel: c.Fuel, Ammo: c.Ammo}, nil
	case CompositionCost:
		return d.compositionCost(c, id)
	default:
		return Cost{}, fmt.Errorf("cost %T: %w", cfg, ErrUnknownVariant)
	}
}

func (d *Deriver) compositionCost(c CompositionCost, id ExpeditionID) (Cost, error) {
	if !id.Valid() {
		return Cost{}, fmt.Errorf("expedition %d: %w", id, ErrInvalidExpeditionID)
	}
	info, ok := d.Catalog.Info(id)
	if !ok {
		return Cost{}, fmt.Errorf("expedition %d: %w", id, ErrUnknownExpedition)
	}
	if _, _, err := c.Wildcard.ShipType(); err != nil {
		return Cost{}, fmt.Errorf("wildcard %q: %w", c.Wildcard, err)
	}

	escorts := c.EscortCount
	if c.Wildcard == WildcardNone {
		escorts = 0
	}

	compo, err := d.Compositions.Resolve(id, c.Wildcard, escorts)
	if err != nil {
		return Cost{}, fmt.Errorf("resolve composition for expedition %d: %w", id, err)
	}

	slots, err := d.CostModel.MaxCost(compo)
	if err != nil {
		if errors.Is(err, ErrCostUnavailable) {
			return Cost{}, &CostUnavailableError{ExpeditionID: id, Composition: compo, Err: err}
		}
		return Cost{}, fmt.Errorf("cost model for expedition %d: %w", id, err)
	}

	return ScaleSlots(slots,
		decimal.NewFromFloat(info.FuelCostPercent),
		decimal.NewFromFloat(info.AmmoCostPercent)), nil
}

// ScaleSlots floors each slot's scaled fuel and ammo, then sums the slots.
func ScaleSlots(slots []Cost, fuelPercent, ammoPercent decimal.Decimal) Cost {
	var total Cost
	for _, s := range slots {
		total = total.Add(Cost{
			Fuel: int(fuelPercent.Mul(decimal.NewFromInt(int64(s.Fuel))).Floor().IntPart()),
			Ammo: int(ammoPercent.Mul(decimal.NewFromInt(int64(s.Ammo))).Floor().IntPart()),
		})
	}
	return total
}
