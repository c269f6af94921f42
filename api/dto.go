/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's types from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

NUMBERS:
  Multipliers and income figures are decimal.Decimal and serialize as JSON
  strings ("1.8", "-8", "0.5833333333333333") so no precision is lost.

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/config.go: ConfigJSON type
*/
package api

import (
	"github.com/shopspring/decimal"

	"github.com/warp/expedition-engine/factory"
	"github.com/warp/expedition-engine/generic"
)

// =============================================================================
// CATALOG
// =============================================================================

type YieldDTO struct {
	Fuel    int `json:"fuel"`
	Ammo    int `json:"ammo"`
	Steel   int `json:"steel"`
	Bauxite int `json:"bauxite"`
}

// ExpeditionDTO is one read-only catalog entry.
type ExpeditionDTO struct {
	ID          int      `json:"id"`
	Time        int      `json:"time"`
	Yield       YieldDTO `json:"yield"`
	FuelPercent int      `json:"fuel_cost_percent"`
	AmmoPercent int      `json:"ammo_cost_percent"`
	Composition []string `json:"composition"`
}

// =============================================================================
// CONFIG
// =============================================================================

// ConfigResponse is the config of one expedition plus editor prefill for
// the variants not currently selected.
type ConfigResponse struct {
	ID                int                  `json:"id"`
	Config            factory.ConfigJSON   `json:"config"`
	Multiplier        decimal.Decimal      `json:"multiplier"`
	GainPercent       decimal.Decimal      `json:"gain_percent"`
	SuggestedModifier factory.ModifierJSON `json:"suggested_modifier"`
	SuggestedCost     *factory.CostJSON    `json:"suggested_cost,omitempty"`

	// Set when the current composition has no cost data; SuggestedCost is
	// then absent rather than zero.
	CostUnavailable bool   `json:"cost_unavailable,omitempty"`
	Error           string `json:"error,omitempty"`
}

// CommitResponse echoes the stored (clamped) config.
type CommitResponse struct {
	ID      int                `json:"id"`
	Config  factory.ConfigJSON `json:"config"`
	Changed bool               `json:"changed"`
}

// =============================================================================
// TABLE
// =============================================================================

type CostDTO struct {
	Fuel int `json:"fuel"`
	Ammo int `json:"ammo"`
}

type IncomeDTO struct {
	Fuel    decimal.Decimal `json:"fuel"`
	Ammo    decimal.Decimal `json:"ammo"`
	Steel   decimal.Decimal `json:"steel"`
	Bauxite decimal.Decimal `json:"bauxite"`
}

// TableRowDTO is one derived row. When Unavailable is set, Cost and Income
// are omitted and Error says why.
type TableRowDTO struct {
	ID          int                `json:"id"`
	Time        int                `json:"time"`
	Config      factory.ConfigJSON `json:"config"`
	Multiplier  decimal.Decimal    `json:"multiplier"`
	GainPercent decimal.Decimal    `json:"gain_percent"`
	Cost        *CostDTO           `json:"cost,omitempty"`
	Income      *IncomeDTO         `json:"income,omitempty"`
	Unavailable bool               `json:"unavailable,omitempty"`
	Error       string             `json:"error,omitempty"`
}

type TableResponse struct {
	Income string        `json:"income"`
	Denom  string        `json:"denom"`
	Rows   []TableRowDTO `json:"rows"`
}

// =============================================================================
// PRESETS AND COST MODEL
// =============================================================================

type PresetDTO struct {
	Index       int    `json:"index"`
	FuelPercent int    `json:"fuel_percent"`
	AmmoPercent int    `json:"ammo_percent"`
	Expeditions []int  `json:"expeditions"`
	Description string `json:"description"`
}

// CostCellDTO is one cost model table cell; Fuel and Ammo are omitted
// when the cell is not available.
type CostCellDTO struct {
	Count     int  `json:"count"`
	Available bool `json:"available"`
	Fuel      *int `json:"fuel,omitempty"`
	Ammo      *int `json:"ammo,omitempty"`
}

type CostModelRowDTO struct {
	ShipType string        `json:"ship_type"`
	Label    string        `json:"label"`
	Members  string        `json:"members,omitempty"`
	Cells    []CostCellDTO `json:"cells"`
}

type CostModelResponse struct {
	FuelPercent int               `json:"fuel_percent"`
	AmmoPercent int               `json:"ammo_percent"`
	Rows        []CostModelRowDTO `json:"rows"`
}

// =============================================================================
// SCENARIOS
// =============================================================================

type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RandomScenarioRequest seeds the random scenario. A missing seed picks one.
type RandomScenarioRequest struct {
	Seed *uint64 `json:"seed,omitempty"`
}

type ScenarioLoadedResponse struct {
	Status   string  `json:"status"`
	Scenario string  `json:"scenario"`
	Seed     *uint64 `json:"seed,omitempty"`
}

// =============================================================================
// ERRORS
// =============================================================================

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toExpeditionDTO(info generic.ExpeditionInfo, fleet generic.Composition) ExpeditionDTO {
	compo := make([]string, len(fleet))
	for i, st := range fleet {
		compo[i] = string(st)
	}
	return ExpeditionDTO{
		ID:   int(info.ID),
		Time: info.Time,
		Yield: YieldDTO{
			Fuel:    info.BaseYield.Fuel,
			Ammo:    info.BaseYield.Ammo,
			Steel:   info.BaseYield.Steel,
			Bauxite: info.BaseYield.Bauxite,
		},
		FuelPercent: generic.RoundPercent(info.FuelCostPercent),
		AmmoPercent: generic.RoundPercent(info.AmmoCostPercent),
		Composition: compo,
	}
}

func toIncomeDTO(in generic.Income) *IncomeDTO {
	return &IncomeDTO{Fuel: in.Fuel, Ammo: in.Ammo, Steel: in.Steel, Bauxite: in.Bauxite}
}

func toPresetDTOs(groups []generic.CostGroup) []PresetDTO {
	out := make([]PresetDTO, len(groups))
	for i, g := range groups {
		ids := make([]int, len(g.Expeditions))
		for j, id := range g.Expeditions {
			ids[j] = int(id)
		}
		out[i] = PresetDTO{
			Index:       i,
			FuelPercent: g.FuelPercent,
			AmmoPercent: g.AmmoPercent,
			Expeditions: ids,
			Description: g.Description(),
		}
	}
	return out
}

func toCostModelRowDTOs(rows []generic.CostTableRow) []CostModelRowDTO {
	out := make([]CostModelRowDTO, len(rows))
	for i, row := range rows {
		cells := make([]CostCellDTO, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = CostCellDTO{Count: cell.Count, Available: cell.Available}
			if cell.Available {
				fuel, ammo := cell.Cost.Fuel, cell.Cost.Ammo
				cells[j].Fuel, cells[j].Ammo = &fuel, &ammo
			}
		}
		out[i] = CostModelRowDTO{
			ShipType: string(row.ShipType.Type),
			Label:    row.ShipType.Label,
			Members:  row.ShipType.Members,
			Cells:    cells,
		}
	}
	return out
}
