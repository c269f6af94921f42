package generic

import "github.com/shopspring/decimal"

// SuggestStandardModifier guesses the standard form closest to a custom
// multiplier, so the editor can prefill the other variant.
// Great success is assumed from 1.5 up; the rest is read as daihatsu bonus.
func SuggestStandardModifier(c CustomModifier) StandardModifier {
	v := decimal.NewFromFloat(c.Value)
	gs := v.GreaterThanOrEqual(greatSuccessBonus)
	if gs {
		v = v.Div(greatSuccessBonus)
	}
	dht := int(v.Sub(one).Div(daihatsuBonus).Floor().IntPart())
	return StandardModifier{
		GreatSuccess: gs,
		Daihatsu:     clampInt(dht, MinDaihatsu, MaxDaihatsu),
	}
}

// SuggestCompositionCost guesses a composition cost for a custom cost.
// The cost itself says nothing useful, so the guess follows the modifier:
// great success intended means a full fleet of DD escorts, otherwise none.
func SuggestCompositionCost(m ModifierConfig) CompositionCost {
	if IntendsGreatSuccess(m) {
		return CompositionCost{Wildcard: WildcardDD, EscortCount: MaxEscortCount}
	}
	return CompositionCost{Wildcard: WildcardNone, EscortCount: 0}
}

// IntendsGreatSuccess reads great success intent from either modifier variant.
func IntendsGreatSuccess(m ModifierConfig) bool {
	switch x := m.(type) {
	case StandardModifier:
		return x.GreatSuccess
	case CustomModifier:
		return decimal.NewFromFloat(x.Value).GreaterThanOrEqual(greatSuccessBonus)
	default:
		return false
	}
}
