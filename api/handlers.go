/*
handlers.go - HTTP API handlers for the expedition table

PURPOSE:
  Exposes the expedition economics engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to generic.Session.

ENDPOINTS:
  Catalog:
    GET    /api/expeditions              List catalog entries
    GET    /api/presets                  Cost profile groups

  Config:
    GET    /api/expeditions/{id}/config  Config + editor suggestions
    PUT    /api/expeditions/{id}/config  Commit a config (clamped, echoed)

  Views:
    GET    /api/table?income=&denom=     Derived rows for every expedition
    GET    /api/cost-model?fuel=&ammo=   Cost model table (or ?preset=N)

  Scenarios (scenarios.go):
    GET    /api/scenarios                List demo scenarios
    GET    /api/scenarios/current        Last loaded scenario
    POST   /api/scenarios/random         Load seeded random configs
    POST   /api/scenarios/default        Reset every config to default

  Live updates (hub.go):
    GET    /api/ws                       WebSocket event stream

ARCHITECTURE:
  Handler struct holds all dependencies:
  - Session: Config mapping and row derivation
  - Presets: Cost groups, cached for the bundled catalog
  - Hub: Event fan-out, may be nil

REQUEST FLOW:
  1. Parse HTTP request
  2. Validate input
  3. Call the session (commit, row derivation)
  4. Serialize response
  5. Publish an event when the mapping changed

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Invalid id, mode, wildcard or variant
  - 404: Unknown expedition or missing config
  - 422: Cost cannot be computed for the expedition's composition
  - 500: Internal errors

  In the table view an unavailable cost is NOT a request error: the row is
  flagged "unavailable" and carries no numbers.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/warp/expedition-engine/factory"
	"github.com/warp/expedition-engine/generic"
)

// DefaultSliderPercent is the cost model slider position when none is given.
const DefaultSliderPercent = 80

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Session *generic.Session
	Presets []generic.CostGroup
	Hub     *Hub

	// Track currently loaded scenario
	mu              sync.RWMutex
	currentScenario string
}

// NewHandler creates a new handler. hub may be nil.
func NewHandler(session *generic.Session, presets []generic.CostGroup, hub *Hub) *Handler {
	return &Handler{Session: session, Presets: presets, Hub: hub}
}

// =============================================================================
// CATALOG ENDPOINTS
// =============================================================================

// ListExpeditions returns every catalog entry with its minimum fleet.
func (h *Handler) ListExpeditions(w http.ResponseWriter, r *http.Request) {
	d := h.Session.Deriver
	infos := d.Catalog.All()
	out := make([]ExpeditionDTO, 0, len(infos))
	for _, info := range infos {
		fleet, err := d.Compositions.Resolve(info.ID, generic.WildcardNone, 0)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		out = append(out, toExpeditionDTO(info, fleet))
	}
	writeJSON(w, http.StatusOK, out)
}

// ListPresets returns the cost profile groups.
func (h *Handler) ListPresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toPresetDTOs(h.Presets))
}

// =============================================================================
// CONFIG ENDPOINTS
// =============================================================================

// GetConfig returns one expedition's config and editor suggestions.
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	id, ok := parseExpeditionID(w, r)
	if !ok {
		return
	}

	cfg, err := h.Session.Config(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	resp, err := h.toConfigResponse(id, cfg)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// UpdateConfig commits a new config for one expedition.
func (h *Handler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	id, ok := parseExpeditionID(w, r)
	if !ok {
		return
	}

	var req factory.ConfigJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	cfg, err := factory.FromJSON(req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	stored, changed, err := h.Session.Commit(r.Context(), id, cfg)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	cj, err := factory.ToJSON(stored)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := CommitResponse{ID: int(id), Config: cj, Changed: changed}
	if changed {
		h.Hub.Publish(EventConfigCommitted, resp)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) toConfigResponse(id generic.ExpeditionID, cfg generic.ExpeditionConfig) (ConfigResponse, error) {
	cj, err := factory.ToJSON(cfg)
	if err != nil {
		return ConfigResponse{}, err
	}
	m, err := generic.Multiplier(cfg.Modifier)
	if err != nil {
		return ConfigResponse{}, err
	}

	resp := ConfigResponse{
		ID:          int(id),
		Config:      cj,
		Multiplier:  m,
		GainPercent: generic.GainPercent(m),
	}

	// Prefill the variant that is not selected.
	var alt generic.ExpeditionConfig
	switch mod := cfg.Modifier.(type) {
	case generic.CustomModifier:
		alt.Modifier = generic.SuggestStandardModifier(mod)
	default:
		alt.Modifier = generic.CustomModifier{Value: m.InexactFloat64()}
	}
	if _, ok := cfg.Cost.(generic.CustomCost); ok {
		alt.Cost = generic.SuggestCompositionCost(cfg.Modifier)
	} else {
		cost, err := h.Session.Deriver.ResolveCost(cfg.Cost, id)
		switch {
		case err == nil:
			alt.Cost = generic.CustomCost{Fuel: cost.Fuel, Ammo: cost.Ammo}
		case generic.IsUnavailable(err):
			resp.CostUnavailable = true
			resp.Error = err.Error()
		default:
			return ConfigResponse{}, err
		}
	}

	modJSON, err := factory.ToJSON(generic.ExpeditionConfig{Modifier: alt.Modifier, Cost: cfg.Cost})
	if err != nil {
		return ConfigResponse{}, err
	}
	resp.SuggestedModifier = modJSON.Modifier
	if alt.Cost != nil {
		costJSON, err := factory.ToJSON(generic.ExpeditionConfig{Modifier: alt.Modifier, Cost: alt.Cost})
		if err != nil {
			return ConfigResponse{}, err
		}
		resp.SuggestedCost = &costJSON.Cost
	}
	return resp, nil
}

// =============================================================================
// VIEW ENDPOINTS
// =============================================================================

// GetTable derives one row per expedition under the requested modes.
// Modes default to net income per run.
func (h *Handler) GetTable(w http.ResponseWriter, r *http.Request) {
	income, err := generic.ParseIncomeMode(queryOr(r, "income", string(generic.IncomeNet)))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	denom, err := generic.ParseDenomMode(queryOr(r, "denom", string(generic.DenomTotal)))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	ctx := r.Context()
	ids := generic.AllExpeditionIDs()
	rows := make([]TableRowDTO, 0, len(ids))
	for _, id := range ids {
		row, err := h.Session.Row(ctx, id, income, denom)
		if err != nil && !generic.IsUnavailable(err) {
			writeDomainError(w, err)
			return
		}

		cj, cerr := factory.ToJSON(row.Config)
		if cerr != nil {
			writeDomainError(w, cerr)
			return
		}
		dto := TableRowDTO{
			ID:          int(id),
			Time:        row.Info.Time,
			Config:      cj,
			Multiplier:  row.Multiplier,
			GainPercent: generic.GainPercent(row.Multiplier),
		}
		if err != nil {
			dto.Unavailable = true
			dto.Error = err.Error()
		} else {
			dto.Cost = &CostDTO{Fuel: row.Cost.Fuel, Ammo: row.Cost.Ammo}
			dto.Income = toIncomeDTO(row.Income)
		}
		rows = append(rows, dto)
	}

	writeJSON(w, http.StatusOK, TableResponse{Income: string(income), Denom: string(denom), Rows: rows})
}

// GetCostModel tabulates homogeneous fleet costs at the slider percents,
// or at a preset's percents when ?preset=N is given.
func (h *Handler) GetCostModel(w http.ResponseWriter, r *http.Request) {
	fuel, ammo := DefaultSliderPercent, DefaultSliderPercent

	if p := r.URL.Query().Get("preset"); p != "" {
		idx, err := strconv.Atoi(p)
		if err != nil || idx < 0 || idx >= len(h.Presets) {
			writeError(w, http.StatusBadRequest, "Invalid preset", fmt.Errorf("preset %q: want 0..%d", p, len(h.Presets)-1))
			return
		}
		fuel, ammo = h.Presets[idx].FuelPercent, h.Presets[idx].AmmoPercent
	} else {
		var err error
		if fuel, err = queryInt(r, "fuel", fuel); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid fuel percent", err)
			return
		}
		if ammo, err = queryInt(r, "ammo", ammo); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid ammo percent", err)
			return
		}
	}
	fuel, ammo = max(min(fuel, 100), 0), max(min(ammo, 100), 0)

	rows, err := generic.CostModelTable(h.Session.Deriver.CostModel, generic.ListShipTypes(), fuel, ammo)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CostModelResponse{
		FuelPercent: fuel,
		AmmoPercent: ammo,
		Rows:        toCostModelRowDTOs(rows),
	})
}

// =============================================================================
// HELPERS
// =============================================================================

func parseExpeditionID(w http.ResponseWriter, r *http.Request) (generic.ExpeditionID, bool) {
	raw := chi.URLParam(r, "id")
	n, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid expedition id", err)
		return 0, false
	}
	id := generic.ExpeditionID(n)
	if !id.Valid() {
		writeError(w, http.StatusBadRequest, "Invalid expedition id", fmt.Errorf("expedition %d: %w", n, generic.ErrInvalidExpeditionID))
		return 0, false
	}
	return id, true
}

func queryOr(r *http.Request, key, fallback string) string {
	if v := r.URL.Query().Get(key); v != "" {
		return v
	}
	return fallback
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeDomainError maps engine errors to HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case generic.IsClientError(err):
		writeError(w, http.StatusBadRequest, "Invalid request", err)
	case generic.IsNotFound(err):
		writeError(w, http.StatusNotFound, "Not found", err)
	case generic.IsUnavailable(err):
		writeError(w, http.StatusUnprocessableEntity, "Cannot compute cost", err)
	default:
		writeError(w, http.StatusInternalServerError, "Internal error", err)
	}
}
