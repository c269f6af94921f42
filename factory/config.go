/*
Package factory provides JSON to Go expedition config conversion.

PURPOSE:
  Converts the JSON form of an expedition config, as sent by the table
  front-end, into generic.ExpeditionConfig and back. Both halves of the
  config are tagged unions; the "type" field selects the variant.

JSON SCHEMA:
  {
    "modifier": {"type": "normal", "gs": true, "daihatsu": 4}
             |  {"type": "custom", "value": 1.8},
    "cost":     {"type": "costmodel", "wildcard": "DD", "count": 6}
             |  {"type": "custom", "fuel": 30, "ammo": 20}
  }

  wildcard is "None", "DD" or "SS". An empty wildcard reads as "None".
  Fields of the inactive variant are ignored on input and omitted on output.

RAW INPUT:
  Editors may send custom values as free text ("text", "fuel_text",
  "ammo_text"), which take precedence over the numeric fields.
  ParseCustomMultiplier and ParseCustomAmount turn that text into clamped
  numbers: unparsable multipliers become 1.0 and unparsable amounts become 0.

USAGE:
  cfg, err := factory.ParseConfig([]byte(body))
  out, err := factory.ToJSON(cfg)

SEE ALSO:
  - generic/config.go: Config variants
  - generic/normalize.go: Bounds applied after parsing
  - api/handlers.go: PUT /api/expeditions/{id}/config
*/
package factory

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/warp/expedition-engine/generic"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// ConfigJSON is the JSON representation of an expedition config.
type ConfigJSON struct {
	Modifier ModifierJSON `json:"modifier"`
	Cost     CostJSON     `json:"cost"`
}

// ModifierJSON represents either modifier variant.
type ModifierJSON struct {
	Type         string   `json:"type"` // normal, custom
	GreatSuccess bool     `json:"gs,omitempty"`
	Daihatsu     int      `json:"daihatsu,omitempty"`
	Value        *float64 `json:"value,omitempty"`
	Text         string   `json:"text,omitempty"` // raw editor input, wins over value
}

// CostJSON represents either cost variant.
type CostJSON struct {
	Type     string `json:"type"`               // costmodel, custom
	Wildcard string `json:"wildcard,omitempty"` // None, DD, SS
	Count    int    `json:"count,omitempty"`
	Fuel     int    `json:"fuel,omitempty"`
	Ammo     int    `json:"ammo,omitempty"`
	FuelText string `json:"fuel_text,omitempty"`
	AmmoText string `json:"ammo_text,omitempty"`
}

// =============================================================================
// PARSING
// =============================================================================

// ParseConfig decodes a JSON config. The result is not clamped; callers
// commit it through generic.Session, which normalizes.
func ParseConfig(data []byte) (generic.ExpeditionConfig, error) {
	var cj ConfigJSON
	if err := json.Unmarshal(data, &cj); err != nil {
		return generic.ExpeditionConfig{}, fmt.Errorf("invalid config JSON: %w", err)
	}
	return FromJSON(cj)
}

// FromJSON converts the JSON schema types to a config.
func FromJSON(cj ConfigJSON) (generic.ExpeditionConfig, error) {
	mod, err := parseModifier(cj.Modifier)
	if err != nil {
		return generic.ExpeditionConfig{}, err
	}
	cost, err := parseCost(cj.Cost)
	if err != nil {
		return generic.ExpeditionConfig{}, err
	}
	return generic.ExpeditionConfig{Modifier: mod, Cost: cost}, nil
}

func parseModifier(mj ModifierJSON) (generic.ModifierConfig, error) {
	switch generic.ModifierKind(mj.Type) {
	case generic.ModifierStandard:
		return generic.StandardModifier{GreatSuccess: mj.GreatSuccess, Daihatsu: mj.Daihatsu}, nil
	case generic.ModifierCustom:
		if mj.Text != "" {
			return generic.CustomModifier{Value: ParseCustomMultiplier(mj.Text)}, nil
		}
		if mj.Value == nil {
			return nil, fmt.Errorf("custom modifier requires value: %w", generic.ErrUnknownVariant)
		}
		return generic.CustomModifier{Value: *mj.Value}, nil
	default:
		return nil, fmt.Errorf("modifier type %q: %w", mj.Type, generic.ErrUnknownVariant)
	}
}

func parseCost(cj CostJSON) (generic.CostConfig, error) {
	switch generic.CostKind(cj.Type) {
	case generic.CostComposition:
		w := generic.Wildcard(cj.Wildcard)
		if w == "" {
			w = generic.WildcardNone
		}
		if _, _, err := w.ShipType(); err != nil {
			return nil, fmt.Errorf("wildcard %q: %w", cj.Wildcard, err)
		}
		return generic.CompositionCost{Wildcard: w, EscortCount: cj.Count}, nil
	case generic.CostCustom:
		c := generic.CustomCost{Fuel: cj.Fuel, Ammo: cj.Ammo}
		if cj.FuelText != "" {
			c.Fuel = ParseCustomAmount(cj.FuelText)
		}
		if cj.AmmoText != "" {
			c.Ammo = ParseCustomAmount(cj.AmmoText)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("cost type %q: %w", cj.Type, generic.ErrUnknownVariant)
	}
}

// =============================================================================
// SERIALIZATION
// =============================================================================

// ToJSON converts a config to its JSON schema types.
func ToJSON(cfg generic.ExpeditionConfig) (ConfigJSON, error) {
	var out ConfigJSON

	switch m := cfg.Modifier.(type) {
	case generic.StandardModifier:
		out.Modifier = ModifierJSON{Type: string(generic.ModifierStandard), GreatSuccess: m.GreatSuccess, Daihatsu: m.Daihatsu}
	case generic.CustomModifier:
		v := m.Value
		out.Modifier = ModifierJSON{Type: string(generic.ModifierCustom), Value: &v}
	default:
		return ConfigJSON{}, fmt.Errorf("modifier %T: %w", cfg.Modifier, generic.ErrUnknownVariant)
	}

	switch c := cfg.Cost.(type) {
	case generic.CompositionCost:
		out.Cost = CostJSON{Type: string(generic.CostComposition), Wildcard: string(c.Wildcard), Count: c.EscortCount}
	case generic.CustomCost:
		out.Cost = CostJSON{Type: string(generic.CostCustom), Fuel: c.Fuel, Ammo: c.Ammo}
	default:
		return ConfigJSON{}, fmt.Errorf("cost %T: %w", cfg.Cost, generic.ErrUnknownVariant)
	}

	return out, nil
}

// =============================================================================
// RAW INPUT
// =============================================================================

// ParseCustomMultiplier reads a custom multiplier typed by the user.
// Unparsable or zero input falls back to 1.0; the result is clamped.
func ParseCustomMultiplier(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v == 0 || math.IsNaN(v) {
		v = generic.DefaultCustomMultiplier
	}
	return max(min(v, generic.MaxCustomMultiplier), generic.MinCustomMultiplier)
}

// ParseCustomAmount reads a custom fuel or ammo amount typed by the user.
// Fractions are truncated, unparsable input falls back to 0 and the result
// is clamped.
func ParseCustomAmount(raw string) int {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) {
		return generic.MinCustomAmount
	}
	v = max(min(math.Trunc(v), generic.MaxCustomAmount), generic.MinCustomAmount)
	return int(v)
}
