/*
config.go - Expedition configuration variants

PURPOSE:
  A caller holds one ExpeditionConfig per expedition. Each config is made of
  two tagged unions:

  Income modifier (ModifierConfig):
    StandardModifier: user intent - great success wanted? how many daihatsu?
    CustomModifier:   a direct multiplier, all bonuses already folded in
                      (4 daihatsu + great success = 1.8)

  Resupply cost (CostConfig):
    CompositionCost:  derive the cost from the fleet composition, optionally
                      padded with wildcard ships to raise great success odds
    CustomCost:       a direct fuel/ammo override

SUM TYPES:
  Both unions are sealed interfaces: only the variants in this file can
  implement them. Every consumer switches over the variants explicitly, so
  adding a variant means touching derive.go, normalize.go, suggest.go,
  the equality functions below, the JSON codec and the random generator.

  Variants are values. A pointer such as &StandardModifier{} still
  satisfies the interfaces but is an unknown variant everywhere: the
  equality functions return false for it and every other consumer returns
  ErrUnknownVariant, so Session.Commit and Session.Load never store one.

EQUALITY:
  Equality is used to detect no-op edits. It compares only the fields of
  the active variant, and different variants are never equal even when
  they would derive the same numbers (Standard{gs, 4} vs Custom{1.8}).

SEE ALSO:
  - derive.go: Turns configs into numbers
  - normalize.go: Clamps user input into documented bounds
  - factory/config.go: JSON representation
*/
package generic

// =============================================================================
// INCOME MODIFIER
// =============================================================================

type ModifierKind string

const (
	ModifierStandard ModifierKind = "normal"
	ModifierCustom   ModifierKind = "custom"
)

// ModifierConfig is either a StandardModifier or a CustomModifier value.
type ModifierConfig interface {
	Kind() ModifierKind
	isModifier()
}

// StandardModifier describes user intent.
type StandardModifier struct {
	GreatSuccess bool
	Daihatsu     int // 0..4
}

// CustomModifier is a direct multiplier override, usually 1.0..2.0.
type CustomModifier struct {
	Value float64
}

func (StandardModifier) Kind() ModifierKind { return ModifierStandard }
func (CustomModifier) Kind() ModifierKind   { return ModifierCustom }
func (StandardModifier) isModifier()        {}
func (CustomModifier) isModifier()          {}

// =============================================================================
// RESUPPLY COST
// =============================================================================

type CostKind string

const (
	CostComposition CostKind = "costmodel"
	CostCustom      CostKind = "custom"
)

// Wildcard is the ship class used to fill extra escort slots.
type Wildcard string

const (
	WildcardNone Wildcard = "None"
	WildcardDD   Wildcard = "DD"
	WildcardSS   Wildcard = "SS"
)

// ShipType maps a wildcard to the ship type it fills slots with.
// WildcardNone has no ship type and reports ok=false.
func (w Wildcard) ShipType() (ShipType, bool, error) {
	switch w {
	case WildcardNone:
		return "", false, nil
	case WildcardDD:
		return ShipDD, true, nil
	case WildcardSS:
		return ShipSSLike, true, nil
	default:
		return "", false, ErrInvalidWildcard
	}
}

// CostConfig is either a CompositionCost or a CustomCost value.
type CostConfig interface {
	Kind() CostKind
	isCost()
}

// CompositionCost derives the cost from the expedition's fleet.
// With WildcardNone, EscortCount must be 0; otherwise it is expected in 4..6.
type CompositionCost struct {
	Wildcard    Wildcard
	EscortCount int
}

// CustomCost is a direct resource cost override.
type CustomCost struct {
	Fuel int
	Ammo int
}

func (CompositionCost) Kind() CostKind { return CostComposition }
func (CustomCost) Kind() CostKind      { return CostCustom }
func (CompositionCost) isCost()        {}
func (CustomCost) isCost()             {}

// =============================================================================
// EXPEDITION CONFIG
// =============================================================================

// ExpeditionConfig is the full per-expedition configuration.
// It is never partially updated: a commit replaces it wholesale.
type ExpeditionConfig struct {
	Modifier ModifierConfig
	Cost     CostConfig
}

// DefaultConfig is no great success, no daihatsu, minimum fleet.
func DefaultConfig() ExpeditionConfig {
	return ExpeditionConfig{
		Modifier: StandardModifier{GreatSuccess: false, Daihatsu: 0},
		Cost:     CompositionCost{Wildcard: WildcardNone, EscortCount: 0},
	}
}

// =============================================================================
// EQUALITY
// =============================================================================

// EqualModifier compares the active variant's fields only. Unknown variants,
// pointers and nil included, are never equal to anything.
func EqualModifier(a, b ModifierConfig) bool {
	switch x := a.(type) {
	case StandardModifier:
		y, ok := b.(StandardModifier)
		return ok && x.GreatSuccess == y.GreatSuccess && x.Daihatsu == y.Daihatsu
	case CustomModifier:
		y, ok := b.(CustomModifier)
		return ok && x.Value == y.Value
	default:
		return false
	}
}

// EqualCost compares the active variant's fields only.
func EqualCost(a, b CostConfig) bool {
	switch x := a.(type) {
	case CompositionCost:
		y, ok := b.(CompositionCost)
		return ok && x.Wildcard == y.Wildcard && x.EscortCount == y.EscortCount
	case CustomCost:
		y, ok := b.(CustomCost)
		return ok && x.Fuel == y.Fuel && x.Ammo == y.Ammo
	default:
		return false
	}
}

// EqualConfig is true when both modifier and cost are equal.
func EqualConfig(a, b ExpeditionConfig) bool {
	return EqualModifier(a.Modifier, b.Modifier) && EqualCost(a.Cost, b.Cost)
}
