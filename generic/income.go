package generic

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// VIEW MODES
// =============================================================================

// IncomeMode selects which income figure is shown.
type IncomeMode string

const (
	IncomeBasic IncomeMode = "basic" // base yield, no modifier
	IncomeGross IncomeMode = "gross" // floor(base * multiplier)
	IncomeNet   IncomeMode = "net"   // gross minus resupply cost
)

// DenomMode selects whether figures are per run or per unit of time.
type DenomMode string

const (
	DenomTotal  DenomMode = "total"
	DenomHourly DenomMode = "hourly"
)

// ParseIncomeMode accepts only the documented income modes.
func ParseIncomeMode(s string) (IncomeMode, error) {
	switch m := IncomeMode(s); m {
	case IncomeBasic, IncomeGross, IncomeNet:
		return m, nil
	default:
		return "", &InvalidModeError{Kind: "income", Value: s}
	}
}

// ParseDenomMode accepts only the documented denomination modes.
func ParseDenomMode(s string) (DenomMode, error) {
	switch m := DenomMode(s); m {
	case DenomTotal, DenomHourly:
		return m, nil
	default:
		return "", &InvalidModeError{Kind: "denomination", Value: s}
	}
}

// =============================================================================
// INCOME CALCULATOR
// =============================================================================

// IncomeInput bundles everything ComputeIncome needs.
type IncomeInput struct {
	Multiplier decimal.Decimal
	Cost       Cost
	Base       Yield
	Time       int // minutes
	Income     IncomeMode
	Denom      DenomMode
}

// Income holds the final figure per resource.
// Total figures are integral; hourly figures are real-valued.
type Income struct {
	Fuel    decimal.Decimal
	Ammo    decimal.Decimal
	Steel   decimal.Decimal
	Bauxite decimal.Decimal
}

// Of returns the figure for r.
func (in Income) Of(r Resource) decimal.Decimal {
	switch r {
	case ResourceFuel:
		return in.Fuel
	case ResourceAmmo:
		return in.Ammo
	case ResourceSteel:
		return in.Steel
	case ResourceBauxite:
		return in.Bauxite
	default:
		return decimal.Zero
	}
}

// ComputeIncome combines multiplier, cost and base yield under the given modes.
//
// For each resource r:
//
//	gross    = floor(base[r] * multiplier)
//	net      = gross - cost[r]   (fuel and ammo only; otherwise gross)
//	selected = base | gross | net
//	result   = selected | selected / time
//
// It is pure: the same input always yields the same output.
func ComputeIncome(in IncomeInput) (Income, error) {
	if _, err := ParseIncomeMode(string(in.Income)); err != nil {
		return Income{}, err
	}
	if _, err := ParseDenomMode(string(in.Denom)); err != nil {
		return Income{}, err
	}
	if in.Denom == DenomHourly && in.Time <= 0 {
		return Income{}, fmt.Errorf("time %d: %w", in.Time, ErrInvalidTime)
	}

	values := make(map[Resource]decimal.Decimal, len(Resources))
	for _, r := range Resources {
		values[r] = resourceIncome(in, r)
	}
	return Income{
		Fuel:    values[ResourceFuel],
		Ammo:    values[ResourceAmmo],
		Steel:   values[ResourceSteel],
		Bauxite: values[ResourceBauxite],
	}, nil
}

func resourceIncome(in IncomeInput, r Resource) decimal.Decimal {
	basic := decimal.NewFromInt(int64(in.Base.Of(r)))
	gross := basic.Mul(in.Multiplier).Floor()
	net := gross
	if c, ok := in.Cost.Of(r); ok {
		net = gross.Sub(decimal.NewFromInt(int64(c)))
	}

	var selected decimal.Decimal
	switch in.Income {
	case IncomeBasic:
		selected = basic
	case IncomeGross:
		selected = gross
	default:
		selected = net
	}

	if in.Denom == DenomTotal {
		return selected
	}
	return selected.Div(decimal.NewFromInt(int64(in.Time)))
}
