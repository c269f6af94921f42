package generic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/expedition-engine/generic"
)

func TestNormalizeCost_ClampsCustomAmounts(t *testing.T) {
	// GIVEN: A custom cost of -5 fuel and 2000 ammo
	// WHEN: Normalizing
	// THEN: Values are clamped to 0 and 1000
	got, err := generic.NormalizeCost(generic.CustomCost{Fuel: -5, Ammo: 2000})
	require.NoError(t, err)
	assert.Equal(t, generic.CustomCost{Fuel: 0, Ammo: 1000}, got)
}

func TestNormalizeCost_Composition(t *testing.T) {
	tests := []struct {
		name string
		in   generic.CompositionCost
		want generic.CompositionCost
	}{
		{"no wildcard drops escorts", generic.CompositionCost{Wildcard: generic.WildcardNone, EscortCount: 5}, generic.CompositionCost{Wildcard: generic.WildcardNone}},
		{"too many escorts", generic.CompositionCost{Wildcard: generic.WildcardDD, EscortCount: 9}, generic.CompositionCost{Wildcard: generic.WildcardDD, EscortCount: 6}},
		{"negative escorts", generic.CompositionCost{Wildcard: generic.WildcardSS, EscortCount: -1}, generic.CompositionCost{Wildcard: generic.WildcardSS}},
		{"in range", generic.CompositionCost{Wildcard: generic.WildcardSS, EscortCount: 4}, generic.CompositionCost{Wildcard: generic.WildcardSS, EscortCount: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := generic.NormalizeCost(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := generic.NormalizeCost(generic.CompositionCost{Wildcard: "CV"})
	assert.ErrorIs(t, err, generic.ErrInvalidWildcard)
}

func TestNormalizeModifier(t *testing.T) {
	got, err := generic.NormalizeModifier(generic.CustomModifier{Value: 0.1})
	require.NoError(t, err)
	assert.Equal(t, generic.CustomModifier{Value: 0.5}, got)

	got, err = generic.NormalizeModifier(generic.CustomModifier{Value: 9})
	require.NoError(t, err)
	assert.Equal(t, generic.CustomModifier{Value: 4}, got)

	got, err = generic.NormalizeModifier(generic.StandardModifier{GreatSuccess: true, Daihatsu: 7})
	require.NoError(t, err)
	assert.Equal(t, generic.StandardModifier{GreatSuccess: true, Daihatsu: 4}, got)

	got, err = generic.NormalizeModifier(generic.StandardModifier{Daihatsu: -2})
	require.NoError(t, err)
	assert.Equal(t, generic.StandardModifier{}, got)
}

func TestNormalizeConfig_UnknownVariant(t *testing.T) {
	_, err := generic.NormalizeConfig(generic.ExpeditionConfig{Cost: generic.CustomCost{}})
	assert.ErrorIs(t, err, generic.ErrUnknownVariant)

	_, err = generic.NormalizeConfig(generic.ExpeditionConfig{Modifier: generic.CustomModifier{Value: 1}})
	assert.ErrorIs(t, err, generic.ErrUnknownVariant)
}

func TestNormalizeModifier_NaNFallsBackToOne(t *testing.T) {
	// GIVEN: A custom multiplier that is not a number
	// WHEN: Normalizing
	// THEN: It becomes 1.0, and infinities clamp to the bounds
	got, err := generic.NormalizeModifier(generic.CustomModifier{Value: math.NaN()})
	require.NoError(t, err)
	assert.Equal(t, generic.CustomModifier{Value: 1.0}, got)

	got, err = generic.NormalizeModifier(generic.CustomModifier{Value: math.Inf(1)})
	require.NoError(t, err)
	assert.Equal(t, generic.CustomModifier{Value: 4}, got)

	got, err = generic.NormalizeModifier(generic.CustomModifier{Value: math.Inf(-1)})
	require.NoError(t, err)
	assert.Equal(t, generic.CustomModifier{Value: 0.5}, got)
}

func TestNormalizeConfig_PointerVariantsAreUnknown(t *testing.T) {
	_, err := generic.NormalizeConfig(generic.ExpeditionConfig{
		Modifier: &generic.StandardModifier{},
		Cost:     generic.CustomCost{},
	})
	assert.ErrorIs(t, err, generic.ErrUnknownVariant)

	_, err = generic.NormalizeConfig(generic.ExpeditionConfig{
		Modifier: generic.StandardModifier{},
		Cost:     &generic.CustomCost{},
	})
	assert.ErrorIs(t, err, generic.ErrUnknownVariant)
}
