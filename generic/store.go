/*
store.go - Holder interface for the per-session configuration mapping

PURPOSE:
  Defines where the session keeps its ExpeditionConfig per expedition.
  Configuration is session state only; nothing here is persisted.

REPLACE-ONLY CONTRACT:
  Configs are never partially mutated:
  - Replace(): swap one expedition's config wholesale
  - ReplaceAll(): swap the whole mapping (scenario load)
  - NO field-level update methods exist

IMPLEMENTATIONS:
  - generic/store/memory.go: In-memory mapping guarded by a RWMutex

SEE ALSO:
  - session.go: Commit logic on top of ConfigStore
*/
package generic

import "context"

// ConfigStore holds one ExpeditionConfig per expedition.
type ConfigStore interface {
	// Get returns the config for id, or ErrConfigNotFound.
	Get(ctx context.Context, id ExpeditionID) (ExpeditionConfig, error)

	// All returns a copy of the whole mapping.
	All(ctx context.Context) (map[ExpeditionID]ExpeditionConfig, error)

	// Replace installs cfg for id, discarding the old config.
	Replace(ctx context.Context, id ExpeditionID, cfg ExpeditionConfig) error

	// ReplaceAll swaps the whole mapping atomically.
	ReplaceAll(ctx context.Context, configs map[ExpeditionID]ExpeditionConfig) error
}
