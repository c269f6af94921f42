package generic

import "math"

// Bounds applied to user input. Out-of-range values are clamped, not rejected,
// and the clamped config is handed back so the caller can show what was stored.
const (
	DefaultCustomMultiplier = 1.0 // stands in for NaN and unparsable input
	MinCustomMultiplier     = 0.5
	MaxCustomMultiplier     = 4.0 // practical range is 1.0..1.95, kept permissive on purpose
	MinCustomAmount         = 0
	MaxCustomAmount         = 1000
	MinDaihatsu             = 0
	MaxDaihatsu             = 4
	MaxEscortCount          = 6
)

// NormalizeModifier clamps a modifier config into its documented bounds.
func NormalizeModifier(m ModifierConfig) (ModifierConfig, error) {
	switch x := m.(type) {
	case StandardModifier:
		x.Daihatsu = clampInt(x.Daihatsu, MinDaihatsu, MaxDaihatsu)
		return x, nil
	case CustomModifier:
		if math.IsNaN(x.Value) {
			x.Value = DefaultCustomMultiplier
		}
		x.Value = clampFloat(x.Value, MinCustomMultiplier, MaxCustomMultiplier)
		return x, nil
	default:
		return nil, ErrUnknownVariant
	}
}

// NormalizeCost clamps a cost config into its documented bounds.
// A composition cost without wildcard always carries EscortCount 0.
func NormalizeCost(c CostConfig) (CostConfig, error) {
	switch x := c.(type) {
	case CompositionCost:
		if _, _, err := x.Wildcard.ShipType(); err != nil {
			return nil, err
		}
		if x.Wildcard == WildcardNone {
			x.EscortCount = 0
		} else {
			x.EscortCount = clampInt(x.EscortCount, 0, MaxEscortCount)
		}
		return x, nil
	case CustomCost:
		x.Fuel = clampInt(x.Fuel, MinCustomAmount, MaxCustomAmount)
		x.Ammo = clampInt(x.Ammo, MinCustomAmount, MaxCustomAmount)
		return x, nil
	default:
		return nil, ErrUnknownVariant
	}
}

// NormalizeConfig clamps both halves of a config.
func NormalizeConfig(cfg ExpeditionConfig) (ExpeditionConfig, error) {
	mod, err := NormalizeModifier(cfg.Modifier)
	if err != nil {
		return ExpeditionConfig{}, err
	}
	cost, err := NormalizeCost(cfg.Cost)
	if err != nil {
		return ExpeditionConfig{}, err
	}
	return ExpeditionConfig{Modifier: mod, Cost: cost}, nil
}

func clampInt(v, lo, hi int) int {
	return max(min(v, hi), lo)
}

func clampFloat(v, lo, hi float64) float64 {
	return max(min(v, hi), lo)
}
