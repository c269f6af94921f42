package generic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warp/expedition-engine/generic"
)

func TestSuggestStandardModifier(t *testing.T) {
	tests := []struct {
		value float64
		want  generic.StandardModifier
	}{
		{1.8, generic.StandardModifier{GreatSuccess: true, Daihatsu: 4}},
		{1.5, generic.StandardModifier{GreatSuccess: true, Daihatsu: 0}},
		{1.2, generic.StandardModifier{GreatSuccess: false, Daihatsu: 4}},
		{1.1, generic.StandardModifier{GreatSuccess: false, Daihatsu: 2}},
		{1.0, generic.StandardModifier{}},
		{1.95, generic.StandardModifier{GreatSuccess: true, Daihatsu: 4}},
		{0.8, generic.StandardModifier{}},
	}
	for _, tt := range tests {
		got := generic.SuggestStandardModifier(generic.CustomModifier{Value: tt.value})
		assert.Equal(t, tt.want, got, "value %v", tt.value)
	}
}

func TestSuggestCompositionCost(t *testing.T) {
	assert.Equal(t,
		generic.CompositionCost{Wildcard: generic.WildcardDD, EscortCount: 6},
		generic.SuggestCompositionCost(generic.StandardModifier{GreatSuccess: true}))
	assert.Equal(t,
		generic.CompositionCost{Wildcard: generic.WildcardDD, EscortCount: 6},
		generic.SuggestCompositionCost(generic.CustomModifier{Value: 1.65}))
	assert.Equal(t,
		generic.CompositionCost{Wildcard: generic.WildcardNone},
		generic.SuggestCompositionCost(generic.CustomModifier{Value: 1.2}))
}
