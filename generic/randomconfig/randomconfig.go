/*
Package randomconfig generates pseudo-random expedition configurations.

PURPOSE:
  Test and demo data only. Production code paths must not depend on it:
  the output is arbitrary and is never persisted.

DISTRIBUTIONS (each choice independent and uniform):
  modifier variant:  Standard | Custom
    Standard:        greatSuccess coin flip, daihatsu 0..4
    Custom:          value in [1.0, 1.8)
  cost variant:      Composition | Custom
    Composition:     wildcard None | DD | SS; escort 4..6, forced to 0 for None
    Custom:          fuel 10..500, ammo 10..500

USAGE:
  configs := randomconfig.New(42).Generate()   // same seed, same configs
*/
package randomconfig

import (
	"math/rand/v2"

	"github.com/warp/expedition-engine/generic"
)

// Generator produces configs from a seeded PCG source.
type Generator struct {
	r *rand.Rand
}

// New creates a generator. The same seed always yields the same sequence.
func New(seed uint64) *Generator {
	return &Generator{r: rand.New(rand.NewPCG(seed, 0))}
}

// Generate returns one config for every expedition id 1..40.
func (g *Generator) Generate() map[generic.ExpeditionID]generic.ExpeditionConfig {
	configs := make(map[generic.ExpeditionID]generic.ExpeditionConfig, int(generic.MaxExpeditionID))
	for _, id := range generic.AllExpeditionIDs() {
		configs[id] = g.Config()
	}
	return configs
}

// Config returns a single random config.
func (g *Generator) Config() generic.ExpeditionConfig {
	var cfg generic.ExpeditionConfig
	if g.coinFlip() {
		cfg.Modifier = g.standardModifier()
	} else {
		cfg.Modifier = g.customModifier()
	}
	if g.coinFlip() {
		cfg.Cost = g.compositionCost()
	} else {
		cfg.Cost = g.customCost()
	}
	return cfg
}

func (g *Generator) standardModifier() generic.StandardModifier {
	return generic.StandardModifier{
		GreatSuccess: g.coinFlip(),
		Daihatsu:     g.intRange(0, 4),
	}
}

func (g *Generator) customModifier() generic.CustomModifier {
	return generic.CustomModifier{Value: 1.0 + g.r.Float64()*0.8}
}

var wildcards = []generic.Wildcard{generic.WildcardNone, generic.WildcardDD, generic.WildcardSS}

func (g *Generator) compositionCost() generic.CompositionCost {
	c := generic.CompositionCost{
		Wildcard:    wildcards[g.r.IntN(len(wildcards))],
		EscortCount: g.intRange(4, 6),
	}
	if c.Wildcard == generic.WildcardNone {
		c.EscortCount = 0
	}
	return c
}

func (g *Generator) customCost() generic.CustomCost {
	return generic.CustomCost{
		Fuel: g.intRange(10, 500),
		Ammo: g.intRange(10, 500),
	}
}

func (g *Generator) coinFlip() bool { return g.r.IntN(2) == 1 }

// intRange returns a uniform int in [lo, hi].
func (g *Generator) intRange(lo, hi int) int { return lo + g.r.IntN(hi-lo+1) }
