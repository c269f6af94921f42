/*
handlers_test.go - Tests for the HTTP API

Tests for:
- Catalog, preset and cost model endpoints
- Config commit (clamping, no-op detection)
- Table derivation, including unavailable rows
- Error status mapping
*/
package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/expedition-engine/generic"
	"github.com/warp/expedition-engine/generic/store"
	"github.com/warp/expedition-engine/kancolle"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func newTestHandler(t *testing.T, data kancolle.Data, hub *Hub) (*Handler, http.Handler) {
	t.Helper()
	deriver, err := kancolle.NewDeriver(data)
	require.NoError(t, err)
	session := generic.NewSession(store.NewMemoryWithDefaults(), deriver)
	presets, err := kancolle.PresetsFor(data)
	require.NoError(t, err)
	h := NewHandler(session, presets, hub)
	return h, NewRouter(h)
}

func defaultData(t *testing.T) kancolle.Data {
	t.Helper()
	data, err := kancolle.DefaultData()
	require.NoError(t, err)
	return data
}

func do(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

// =============================================================================
// CATALOG TESTS
// =============================================================================

func TestListExpeditions(t *testing.T) {
	_, router := newTestHandler(t, defaultData(t), nil)

	rec := do(t, router, http.MethodGet, "/api/expeditions", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	exps := decode[[]ExpeditionDTO](t, rec)
	require.Len(t, exps, 40)
	assert.Equal(t, 21, exps[20].ID)
	assert.Equal(t, 80, exps[20].FuelPercent)
	assert.Equal(t, 70, exps[20].AmmoPercent)
	assert.Equal(t, []string{"CL", "DD", "DD", "DD", "DD"}, exps[20].Composition)
}

func TestListPresets(t *testing.T) {
	_, router := newTestHandler(t, defaultData(t), nil)

	presets := decode[[]PresetDTO](t, do(t, router, http.MethodGet, "/api/presets", nil))
	require.Len(t, presets, len(kancolle.Presets))
	assert.Equal(t, "50% Fuel, 0% Ammo, Expeditions: 2,4,5,7,9,11,12,14,31", presets[0].Description)
	assert.Equal(t, []int{2, 4, 5, 7, 9, 11, 12, 14, 31}, presets[0].Expeditions)
}

// =============================================================================
// CONFIG TESTS
// =============================================================================

func TestUpdateConfig_CommitAndNoOp(t *testing.T) {
	// GIVEN: Default configs
	// WHEN: Committing great success + 4 daihatsu twice
	// THEN: The first commit changes the config, the second is a no-op
	_, router := newTestHandler(t, defaultData(t), nil)
	body := map[string]any{
		"modifier": map[string]any{"type": "normal", "gs": true, "daihatsu": 4},
		"cost":     map[string]any{"type": "costmodel", "wildcard": "DD", "count": 6},
	}

	rec := do(t, router, http.MethodPut, "/api/expeditions/21/config", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, decode[CommitResponse](t, rec).Changed)

	rec = do(t, router, http.MethodPut, "/api/expeditions/21/config", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[CommitResponse](t, rec).Changed)

	cfg := decode[ConfigResponse](t, do(t, router, http.MethodGet, "/api/expeditions/21/config", nil))
	assert.Equal(t, "1.8", cfg.Multiplier.String())
	assert.Equal(t, "80", cfg.GainPercent.String())
	assert.Equal(t, "custom", cfg.SuggestedModifier.Type)
	require.NotNil(t, cfg.SuggestedModifier.Value)
	assert.Equal(t, 1.8, *cfg.SuggestedModifier.Value)
	require.NotNil(t, cfg.SuggestedCost)
	assert.Equal(t, "custom", cfg.SuggestedCost.Type)
	assert.Equal(t, 80, cfg.SuggestedCost.Fuel)
	assert.Equal(t, 87, cfg.SuggestedCost.Ammo)
}

func TestUpdateConfig_EchoesClampedValues(t *testing.T) {
	_, router := newTestHandler(t, defaultData(t), nil)
	body := map[string]any{
		"modifier": map[string]any{"type": "custom", "value": 9.5},
		"cost":     map[string]any{"type": "custom", "fuel": -5, "ammo": 2000},
	}

	resp := decode[CommitResponse](t, do(t, router, http.MethodPut, "/api/expeditions/3/config", body))
	require.NotNil(t, resp.Config.Modifier.Value)
	assert.Equal(t, 4.0, *resp.Config.Modifier.Value)
	assert.Equal(t, 0, resp.Config.Cost.Fuel)
	assert.Equal(t, 1000, resp.Config.Cost.Ammo)

	cfg := decode[ConfigResponse](t, do(t, router, http.MethodGet, "/api/expeditions/3/config", nil))
	assert.Equal(t, "normal", cfg.SuggestedModifier.Type)
	assert.True(t, cfg.SuggestedModifier.GreatSuccess)
	require.NotNil(t, cfg.SuggestedCost)
	assert.Equal(t, "costmodel", cfg.SuggestedCost.Type)
	assert.Equal(t, "DD", cfg.SuggestedCost.Wildcard)
	assert.Equal(t, 6, cfg.SuggestedCost.Count)
}

func TestConfigEndpoints_Errors(t *testing.T) {
	_, router := newTestHandler(t, defaultData(t), nil)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
	}{
		{"non numeric id", http.MethodGet, "/api/expeditions/abc/config", nil, http.StatusBadRequest},
		{"id out of range", http.MethodGet, "/api/expeditions/41/config", nil, http.StatusBadRequest},
		{"unknown wildcard", http.MethodPut, "/api/expeditions/1/config", map[string]any{
			"modifier": map[string]any{"type": "normal"},
			"cost":     map[string]any{"type": "costmodel", "wildcard": "CV", "count": 6},
		}, http.StatusBadRequest},
		{"unknown modifier type", http.MethodPut, "/api/expeditions/1/config", map[string]any{
			"modifier": map[string]any{"type": "bonus"},
			"cost":     map[string]any{"type": "custom"},
		}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.NotEmpty(t, decode[ErrorResponse](t, rec).Error)
		})
	}
}

// =============================================================================
// TABLE TESTS
// =============================================================================

func TestGetTable_DefaultConfigs(t *testing.T) {
	// GIVEN: Default configs
	// WHEN: Requesting net totals
	// THEN: Expedition 2 pays 28 fuel (4 DD at floor(7.5)) and earns 100 ammo
	_, router := newTestHandler(t, defaultData(t), nil)

	rec := do(t, router, http.MethodGet, "/api/table?income=net&denom=total", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	table := decode[TableResponse](t, rec)
	require.Len(t, table.Rows, 40)

	row := table.Rows[1]
	assert.Equal(t, 2, row.ID)
	assert.False(t, row.Unavailable)
	require.NotNil(t, row.Cost)
	assert.Equal(t, CostDTO{Fuel: 28, Ammo: 0}, *row.Cost)
	require.NotNil(t, row.Income)
	assert.Equal(t, "-28", row.Income.Fuel.String())
	assert.Equal(t, "100", row.Income.Ammo.String())
	assert.Equal(t, "30", row.Income.Steel.String())
}

func TestGetTable_Hourly(t *testing.T) {
	_, router := newTestHandler(t, defaultData(t), nil)

	table := decode[TableResponse](t, do(t, router, http.MethodGet, "/api/table?income=basic&denom=hourly", nil))
	assert.Equal(t, "hourly", table.Denom)

	// Expedition 1: 30 ammo over 15 minutes.
	assert.Equal(t, "2", table.Rows[0].Income.Ammo.String())
}

func TestGetTable_InvalidMode(t *testing.T) {
	_, router := newTestHandler(t, defaultData(t), nil)

	rec := do(t, router, http.MethodGet, "/api/table?income=profit", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/table?denom=daily", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTable_UnavailableRow(t *testing.T) {
	// GIVEN: A cost model that covers only one BBV
	// WHEN: Rendering the table
	// THEN: Expedition 19 (two BBV) is flagged unavailable with no numbers,
	//       and other rows still render
	data := defaultData(t)
	for i := range data.ShipTypes {
		if data.ShipTypes[i].Type == kancolle.ShipBBV {
			data.ShipTypes[i].MaxCount = 1
		}
	}
	_, router := newTestHandler(t, data, nil)

	rec := do(t, router, http.MethodGet, "/api/table", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	table := decode[TableResponse](t, rec)

	row := table.Rows[18]
	assert.Equal(t, 19, row.ID)
	assert.True(t, row.Unavailable)
	assert.Nil(t, row.Cost)
	assert.Nil(t, row.Income)
	assert.NotEmpty(t, row.Error)

	assert.False(t, table.Rows[0].Unavailable)
}

func TestGetConfig_UnavailableCostHasNoSuggestion(t *testing.T) {
	// GIVEN: A cost model that covers only one BBV
	// WHEN: Opening the editor for expedition 19 (two BBV)
	// THEN: No custom cost is suggested and the response says why
	data := defaultData(t)
	for i := range data.ShipTypes {
		if data.ShipTypes[i].Type == kancolle.ShipBBV {
			data.ShipTypes[i].MaxCount = 1
		}
	}
	_, router := newTestHandler(t, data, nil)

	rec := do(t, router, http.MethodGet, "/api/expeditions/19/config", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "suggested_cost")

	cfg := decode[ConfigResponse](t, rec)
	assert.True(t, cfg.CostUnavailable)
	assert.NotEmpty(t, cfg.Error)
	assert.Nil(t, cfg.SuggestedCost)
	assert.Equal(t, "custom", cfg.SuggestedModifier.Type)

	// A custom cost needs no cost model, so expedition 19 can still be edited
	body := map[string]any{
		"modifier": map[string]any{"type": "normal"},
		"cost":     map[string]any{"type": "custom", "fuel": 40, "ammo": 40},
	}
	require.Equal(t, http.StatusOK, do(t, router, http.MethodPut, "/api/expeditions/19/config", body).Code)
	cfg = decode[ConfigResponse](t, do(t, router, http.MethodGet, "/api/expeditions/19/config", nil))
	assert.False(t, cfg.CostUnavailable)
	require.NotNil(t, cfg.SuggestedCost)
	assert.Equal(t, "costmodel", cfg.SuggestedCost.Type)
}

// =============================================================================
// COST MODEL TESTS
// =============================================================================

func TestGetCostModel_Preset(t *testing.T) {
	_, router := newTestHandler(t, defaultData(t), nil)

	rec := do(t, router, http.MethodGet, "/api/cost-model?preset=0", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[CostModelResponse](t, rec)

	assert.Equal(t, 50, resp.FuelPercent)
	assert.Equal(t, 0, resp.AmmoPercent)
	require.Len(t, resp.Rows, 9)

	dd := resp.Rows[0]
	assert.Equal(t, "DD", dd.Label)
	require.NotNil(t, dd.Cells[0].Fuel)
	assert.Equal(t, 7, *dd.Cells[0].Fuel)
	assert.Equal(t, 42, *dd.Cells[5].Fuel)

	bbv := resp.Rows[5]
	assert.Equal(t, "BBV", bbv.ShipType)
	assert.True(t, bbv.Cells[1].Available)
	assert.False(t, bbv.Cells[2].Available)
	assert.Nil(t, bbv.Cells[2].Fuel)
}

func TestGetCostModel_Sliders(t *testing.T) {
	_, router := newTestHandler(t, defaultData(t), nil)

	resp := decode[CostModelResponse](t, do(t, router, http.MethodGet, "/api/cost-model", nil))
	assert.Equal(t, DefaultSliderPercent, resp.FuelPercent)

	resp = decode[CostModelResponse](t, do(t, router, http.MethodGet, "/api/cost-model?fuel=250&ammo=30", nil))
	assert.Equal(t, 100, resp.FuelPercent)
	assert.Equal(t, 30, resp.AmmoPercent)

	assert.Equal(t, http.StatusBadRequest, do(t, router, http.MethodGet, "/api/cost-model?preset=99", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, router, http.MethodGet, "/api/cost-model?fuel=lots", nil).Code)
}

// =============================================================================
// ERROR MAPPING TESTS
// =============================================================================

func TestWriteDomainError(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{generic.ErrInvalidMode, http.StatusBadRequest},
		{generic.ErrUnknownExpedition, http.StatusNotFound},
		{&generic.CostUnavailableError{ExpeditionID: 1}, http.StatusUnprocessableEntity},
		{assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		writeDomainError(rec, tt.err)
		assert.Equal(t, tt.status, rec.Code, tt.err.Error())
	}
}
