/*
scenarios.go - Demo scenario loaders

PURPOSE:
  Replaces the whole configuration mapping with demo data, so the table can
  be exercised without editing 40 expeditions by hand.

AVAILABLE SCENARIOS:
  default: every expedition back to generic.DefaultConfig
  random:  seeded pseudo-random configs (generic/randomconfig)

USAGE VIA API:
  POST /api/scenarios/random   {"seed": 42}
  POST /api/scenarios/default

  The response echoes the seed actually used, so a random scenario can be
  reproduced later.

NOTE:
  Loading a scenario discards every edit made so far and publishes a
  scenario_loaded event.

SEE ALSO:
  - handlers.go: Handler and error mapping
  - generic/randomconfig: Distributions
*/
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/warp/expedition-engine/generic"
	"github.com/warp/expedition-engine/generic/randomconfig"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

const (
	ScenarioDefault = "default"
	ScenarioRandom  = "random"
)

var scenarios = []ScenarioDTO{
	{
		ID:          ScenarioDefault,
		Name:        "Default",
		Description: "No great success, no daihatsu, minimum fleet for every expedition",
	},
	{
		ID:          ScenarioRandom,
		Name:        "Random",
		Description: "Random modifier and cost variants per expedition, reproducible by seed",
	},
}

// ListScenarios returns available scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// GetCurrentScenario returns the last loaded scenario, if any.
func (h *Handler) GetCurrentScenario(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	current := h.currentScenario
	h.mu.RUnlock()

	for _, s := range scenarios {
		if s.ID == current {
			writeJSON(w, http.StatusOK, s)
			return
		}
	}
	writeJSON(w, http.StatusOK, nil)
}

// LoadRandomScenario replaces every config with seeded random ones.
func (h *Handler) LoadRandomScenario(w http.ResponseWriter, r *http.Request) {
	var req RandomScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	seed := uint64(time.Now().UnixNano())
	if req.Seed != nil {
		seed = *req.Seed
	}

	configs := randomconfig.New(seed).Generate()
	h.loadScenario(w, r, ScenarioRandom, configs, &seed)
}

// LoadDefaultScenario resets every config to the default.
func (h *Handler) LoadDefaultScenario(w http.ResponseWriter, r *http.Request) {
	configs := make(map[generic.ExpeditionID]generic.ExpeditionConfig)
	for _, id := range generic.AllExpeditionIDs() {
		configs[id] = generic.DefaultConfig()
	}
	h.loadScenario(w, r, ScenarioDefault, configs, nil)
}

func (h *Handler) loadScenario(w http.ResponseWriter, r *http.Request, name string, configs map[generic.ExpeditionID]generic.ExpeditionConfig, seed *uint64) {
	resp, err := h.applyScenario(r.Context(), name, configs, seed)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// LoadRandom applies the random scenario for seed outside of a request,
// e.g. at startup.
func (h *Handler) LoadRandom(ctx context.Context, seed uint64) error {
	_, err := h.applyScenario(ctx, ScenarioRandom, randomconfig.New(seed).Generate(), &seed)
	return err
}

func (h *Handler) applyScenario(ctx context.Context, name string, configs map[generic.ExpeditionID]generic.ExpeditionConfig, seed *uint64) (ScenarioLoadedResponse, error) {
	if err := h.Session.Load(ctx, configs); err != nil {
		return ScenarioLoadedResponse{}, err
	}

	h.mu.Lock()
	h.currentScenario = name
	h.mu.Unlock()

	resp := ScenarioLoadedResponse{Status: "loaded", Scenario: name, Seed: seed}
	h.Hub.Publish(EventScenarioLoaded, resp)
	return resp, nil
}
