/*
session.go - Configuration mapping plus derived table rows

PURPOSE:
  The Session is what a caller talks to: it holds the config mapping
  (through a ConfigStore), commits edits, and derives one table row per
  expedition on every view refresh.

COMMIT FLOW:
  1. Validate the expedition id
  2. Clamp the new config into documented bounds (normalize.go)
  3. Compare with the stored config; equal means a no-op edit
  4. Otherwise replace the stored config wholesale

  The clamped config is always returned so displayed state matches
  stored state. Commits are serialized by the session.

ROW DERIVATION:
  Row() computes multiplier, cost and income for one expedition. An
  unresolvable cost is returned as an error together with the partial row
  (config and multiplier filled in); callers must render "cannot compute"
  instead of a number.

SEE ALSO:
  - store.go: ConfigStore interface
  - derive.go, income.go: The derivations used by Row()
*/
package generic

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SESSION
// =============================================================================

type Session struct {
	Store   ConfigStore
	Deriver *Deriver

	commitMu sync.Mutex
}

func NewSession(store ConfigStore, deriver *Deriver) *Session {
	return &Session{Store: store, Deriver: deriver}
}

// Config returns the stored config for id.
func (s *Session) Config(ctx context.Context, id ExpeditionID) (ExpeditionConfig, error) {
	if !id.Valid() {
		return ExpeditionConfig{}, fmt.Errorf("expedition %d: %w", id, ErrInvalidExpeditionID)
	}
	return s.Store.Get(ctx, id)
}

// Commit installs cfg for id. It returns the clamped config and whether
// anything changed.
func (s *Session) Commit(ctx context.Context, id ExpeditionID, cfg ExpeditionConfig) (ExpeditionConfig, bool, error) {
	if !id.Valid() {
		return ExpeditionConfig{}, false, fmt.Errorf("expedition %d: %w", id, ErrInvalidExpeditionID)
	}
	normalized, err := NormalizeConfig(cfg)
	if err != nil {
		return ExpeditionConfig{}, false, fmt.Errorf("expedition %d: %w", id, err)
	}

	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	current, err := s.Store.Get(ctx, id)
	switch {
	case err == nil:
		if EqualConfig(current, normalized) {
			return normalized, false, nil
		}
	case errors.Is(err, ErrConfigNotFound):
	default:
		return ExpeditionConfig{}, false, err
	}

	if err := s.Store.Replace(ctx, id, normalized); err != nil {
		return ExpeditionConfig{}, false, err
	}
	return normalized, true, nil
}

// Load replaces the whole mapping, clamping every config first.
// Every id in 1..40 must be present.
func (s *Session) Load(ctx context.Context, configs map[ExpeditionID]ExpeditionConfig) error {
	next := make(map[ExpeditionID]ExpeditionConfig, len(configs))
	for _, id := range AllExpeditionIDs() {
		cfg, ok := configs[id]
		if !ok {
			return fmt.Errorf("expedition %d: %w", id, ErrConfigNotFound)
		}
		normalized, err := NormalizeConfig(cfg)
		if err != nil {
			return fmt.Errorf("expedition %d: %w", id, err)
		}
		next[id] = normalized
	}

	s.commitMu.Lock()
	defer s.commitMu.Unlock()
	return s.Store.ReplaceAll(ctx, next)
}

// =============================================================================
// ROWS
// =============================================================================

// Row is the derived view of one expedition.
type Row struct {
	Info       ExpeditionInfo
	Config     ExpeditionConfig
	Multiplier decimal.Decimal
	Cost       Cost
	Income     Income
}

// Row derives the view of expedition id under the given modes.
func (s *Session) Row(ctx context.Context, id ExpeditionID, income IncomeMode, denom DenomMode) (Row, error) {
	cfg, err := s.Config(ctx, id)
	if err != nil {
		return Row{}, err
	}
	info, ok := s.Deriver.Catalog.Info(id)
	if !ok {
		return Row{}, fmt.Errorf("expedition %d: %w", id, ErrUnknownExpedition)
	}

	row := Row{Info: info, Config: cfg}
	row.Multiplier, err = Multiplier(cfg.Modifier)
	if err != nil {
		return row, err
	}
	row.Cost, err = s.Deriver.ResolveCost(cfg.Cost, id)
	if err != nil {
		return row, err
	}
	row.Income, err = ComputeIncome(IncomeInput{
		Multiplier: row.Multiplier,
		Cost:       row.Cost,
		Base:       info.BaseYield,
		Time:       info.Time,
		Income:     income,
		Denom:      denom,
	})
	if err != nil {
		return row, err
	}
	return row, nil
}
