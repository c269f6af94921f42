/*
catalog.go - Expedition catalog data and its loader

PURPOSE:
  Holds the static per-expedition data (time, base yield, cost percents,
  minimum fleet) and the per-ship-type max resupply costs. The data ships
  with the binary as catalog.yaml and can be overridden by a YAML file or
  read back from the sqlite catalog repository.

FORMAT:
  version: "1"
  ship_types:
    - {type: DD, fuel: 15, ammo: 20, max_count: 6}
  expeditions:
    - id: 1
      time: 15
      yield: {fuel: 0, ammo: 30, steel: 0, bauxite: 0}
      fuel_cost: 0.3
      ammo_cost: 0
      composition: [DD, DD]

VALIDATION:
  Validate() rejects a catalog that does not cover every id exactly once,
  has non-positive times, percents outside 0..1, negative numbers, or
  ship types that are not registered (see shiptypes.go).

USAGE:
  data, err := kancolle.DefaultData()
  cat, err := kancolle.NewCatalog(data)
  deriver, err := kancolle.NewDeriver(data)

SEE ALSO:
  - compositions.go: Resolver built from the same data
  - costmodel.go: Cost model built from the same data
  - store/sqlite: Persists Data between runs
*/
package kancolle

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/warp/expedition-engine/generic"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// ErrInvalidCatalog is returned by Validate and the constructors.
var ErrInvalidCatalog = errors.New("invalid expedition catalog")

// =============================================================================
// RAW DATA
// =============================================================================

// Data is the serialized catalog.
type Data struct {
	Version     string           `yaml:"version"`
	ShipTypes   []ShipCostData   `yaml:"ship_types"`
	Expeditions []ExpeditionData `yaml:"expeditions"`
}

// ShipCostData is the max resupply cost of one ship of a type.
// MaxCount is the largest number of ships of the type the model covers.
type ShipCostData struct {
	Type     generic.ShipType `yaml:"type"`
	Fuel     int              `yaml:"fuel"`
	Ammo     int              `yaml:"ammo"`
	MaxCount int              `yaml:"max_count"`
}

type YieldData struct {
	Fuel    int `yaml:"fuel"`
	Ammo    int `yaml:"ammo"`
	Steel   int `yaml:"steel"`
	Bauxite int `yaml:"bauxite"`
}

type ExpeditionData struct {
	ID          int                `yaml:"id"`
	Time        int                `yaml:"time"`
	Yield       YieldData          `yaml:"yield"`
	FuelCost    float64            `yaml:"fuel_cost"`
	AmmoCost    float64            `yaml:"ammo_cost"`
	Composition []generic.ShipType `yaml:"composition"`
}

// Info converts the raw entry to the engine's catalog entry.
func (e ExpeditionData) Info() generic.ExpeditionInfo {
	return generic.ExpeditionInfo{
		ID:   generic.ExpeditionID(e.ID),
		Time: e.Time,
		BaseYield: generic.Yield{
			Fuel:    e.Yield.Fuel,
			Ammo:    e.Yield.Ammo,
			Steel:   e.Yield.Steel,
			Bauxite: e.Yield.Bauxite,
		},
		FuelCostPercent: e.FuelCost,
		AmmoCostPercent: e.AmmoCost,
	}
}

// =============================================================================
// LOADING
// =============================================================================

// Load decodes and validates a YAML catalog.
func Load(r io.Reader) (Data, error) {
	var data Data
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil {
		return Data{}, fmt.Errorf("decode catalog: %w", err)
	}
	if err := data.Validate(); err != nil {
		return Data{}, err
	}
	return data, nil
}

// LoadFile reads a YAML catalog from disk.
func LoadFile(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	return Load(f)
}

// DefaultData returns the catalog bundled with the binary.
func DefaultData() (Data, error) {
	return Load(bytes.NewReader(defaultCatalog))
}

// Validate checks the catalog for completeness and sane values.
func (d Data) Validate() error {
	costs := make(map[generic.ShipType]bool, len(d.ShipTypes))
	for _, st := range d.ShipTypes {
		if _, ok := generic.LookupShipType(st.Type); !ok {
			return fmt.Errorf("%w: unknown ship type %q", ErrInvalidCatalog, st.Type)
		}
		if costs[st.Type] {
			return fmt.Errorf("%w: duplicate ship type %q", ErrInvalidCatalog, st.Type)
		}
		if st.Fuel < 0 || st.Ammo < 0 || st.MaxCount < 0 {
			return fmt.Errorf("%w: negative value for ship type %q", ErrInvalidCatalog, st.Type)
		}
		costs[st.Type] = true
	}

	seen := make(map[generic.ExpeditionID]bool, len(d.Expeditions))
	for _, e := range d.Expeditions {
		id := generic.ExpeditionID(e.ID)
		if !id.Valid() {
			return fmt.Errorf("%w: expedition %d: %w", ErrInvalidCatalog, e.ID, generic.ErrInvalidExpeditionID)
		}
		if seen[id] {
			return fmt.Errorf("%w: duplicate expedition %d", ErrInvalidCatalog, e.ID)
		}
		seen[id] = true
		if e.Time <= 0 {
			return fmt.Errorf("%w: expedition %d: %w", ErrInvalidCatalog, e.ID, generic.ErrInvalidTime)
		}
		if e.FuelCost < 0 || e.FuelCost > 1 || e.AmmoCost < 0 || e.AmmoCost > 1 {
			return fmt.Errorf("%w: expedition %d: cost percent outside 0..1", ErrInvalidCatalog, e.ID)
		}
		y := e.Yield
		if y.Fuel < 0 || y.Ammo < 0 || y.Steel < 0 || y.Bauxite < 0 {
			return fmt.Errorf("%w: expedition %d: negative yield", ErrInvalidCatalog, e.ID)
		}
		if len(e.Composition) > generic.MaxFleetSize {
			return fmt.Errorf("%w: expedition %d: more than %d ships", ErrInvalidCatalog, e.ID, generic.MaxFleetSize)
		}
		for _, st := range e.Composition {
			if _, ok := generic.LookupShipType(st); !ok {
				return fmt.Errorf("%w: expedition %d: unknown ship type %q", ErrInvalidCatalog, e.ID, st)
			}
		}
	}
	for _, id := range generic.AllExpeditionIDs() {
		if !seen[id] {
			return fmt.Errorf("%w: expedition %d missing", ErrInvalidCatalog, id)
		}
	}
	return nil
}

// =============================================================================
// CATALOG
// =============================================================================

// Catalog implements generic.Catalog over validated Data.
type Catalog struct {
	infos map[generic.ExpeditionID]generic.ExpeditionInfo
	all   []generic.ExpeditionInfo
}

// NewCatalog validates data and builds a read-only catalog.
func NewCatalog(data Data) (*Catalog, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	c := &Catalog{infos: make(map[generic.ExpeditionID]generic.ExpeditionInfo, len(data.Expeditions))}
	for _, e := range data.Expeditions {
		info := e.Info()
		c.infos[info.ID] = info
		c.all = append(c.all, info)
	}
	sort.Slice(c.all, func(i, j int) bool { return c.all[i].ID < c.all[j].ID })
	return c, nil
}

func (c *Catalog) Info(id generic.ExpeditionID) (generic.ExpeditionInfo, bool) {
	info, ok := c.infos[id]
	return info, ok
}

// All returns a copy of every entry, ordered by id.
func (c *Catalog) All() []generic.ExpeditionInfo {
	out := make([]generic.ExpeditionInfo, len(c.all))
	copy(out, c.all)
	return out
}

// NewDeriver wires a generic.Deriver to the catalog, resolver and cost
// model built from data.
func NewDeriver(data Data) (*generic.Deriver, error) {
	cat, err := NewCatalog(data)
	if err != nil {
		return nil, err
	}
	return generic.NewDeriver(cat, NewCompositions(data), NewCostModel(data)), nil
}
