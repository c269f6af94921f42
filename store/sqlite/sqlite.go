/*
Package sqlite provides a SQLite-backed expedition catalog repository.

PURPOSE:
  Persists the read-only expedition catalog (kancolle.Data) so a server can
  start from a curated database instead of the YAML bundled with the binary.
  Per-session expedition configs are NOT stored here; they live in
  generic/store.Memory for the lifetime of the process.

KEY TABLES:
  catalog_meta:            Catalog version and load time
  ship_costs:              Max resupply cost per ship type, in table order
  expeditions:             Time, base yield and cost percents per expedition
  expedition_compositions: Minimum fleet, one row per slot

PRECISION:
  Cost percents are stored as decimal strings ("0.8"), never as REAL, so
  they round-trip to the exact value that was loaded.

REPLACE-ONLY:
  SaveCatalog swaps the whole catalog in one transaction. There are no
  per-row update methods.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging):
  - Multiple readers don't block
  - Single writer at a time

USAGE:
  store, err := sqlite.New("./expeditions.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  empty, _ := store.IsEmpty(ctx)
  if empty {
      data, _ := kancolle.DefaultData()
      store.SaveCatalog(ctx, data)
  }
  data, err := store.LoadCatalog(ctx)

MIGRATION:
  Schema is auto-migrated on New().

SEE ALSO:
  - kancolle/catalog.go: Data type and validation
  - cmd/server/main.go: Seeds the database on first start
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/warp/expedition-engine/generic"
	"github.com/warp/expedition-engine/kancolle"
)

// ErrEmptyCatalog is returned by LoadCatalog before any SaveCatalog.
var ErrEmptyCatalog = errors.New("no catalog stored")

// Store is the catalog repository.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection: ":memory:" databases are per connection.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS catalog_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS ship_costs (
		ship_type TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		fuel INTEGER NOT NULL CHECK (fuel >= 0),
		ammo INTEGER NOT NULL CHECK (ammo >= 0),
		max_count INTEGER NOT NULL CHECK (max_count >= 0)
	);

	CREATE TABLE IF NOT EXISTS expeditions (
		id INTEGER PRIMARY KEY CHECK (id BETWEEN 1 AND 40),
		time_minutes INTEGER NOT NULL CHECK (time_minutes > 0),
		fuel_yield INTEGER NOT NULL,
		ammo_yield INTEGER NOT NULL,
		steel_yield INTEGER NOT NULL,
		bauxite_yield INTEGER NOT NULL,
		fuel_cost TEXT NOT NULL,
		ammo_cost TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS expedition_compositions (
		expedition_id INTEGER NOT NULL REFERENCES expeditions(id) ON DELETE CASCADE,
		slot INTEGER NOT NULL CHECK (slot BETWEEN 0 AND 5),
		ship_type TEXT NOT NULL,
		PRIMARY KEY (expedition_id, slot)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// CATALOG
// =============================================================================

// SaveCatalog validates data and replaces the stored catalog with it.
func (s *Store) SaveCatalog(ctx context.Context, data kancolle.Data) error {
	if err := data.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer sqlTx.Rollback()

	for _, table := range []string{"expedition_compositions", "expeditions", "ship_costs", "catalog_meta"} {
		if _, err := sqlTx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for i, st := range data.ShipTypes {
		_, err := sqlTx.ExecContext(ctx,
			"INSERT INTO ship_costs (ship_type, position, fuel, ammo, max_count) VALUES (?, ?, ?, ?, ?)",
			string(st.Type), i, st.Fuel, st.Ammo, st.MaxCount,
		)
		if err != nil {
			return fmt.Errorf("insert ship type %s: %w", st.Type, err)
		}
	}

	for _, e := range data.Expeditions {
		_, err := sqlTx.ExecContext(ctx, `
			INSERT INTO expeditions (id, time_minutes, fuel_yield, ammo_yield, steel_yield, bauxite_yield, fuel_cost, ammo_cost)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.Time, e.Yield.Fuel, e.Yield.Ammo, e.Yield.Steel, e.Yield.Bauxite,
			decimal.NewFromFloat(e.FuelCost).String(), decimal.NewFromFloat(e.AmmoCost).String(),
		)
		if err != nil {
			return fmt.Errorf("insert expedition %d: %w", e.ID, err)
		}
		for slot, st := range e.Composition {
			_, err := sqlTx.ExecContext(ctx,
				"INSERT INTO expedition_compositions (expedition_id, slot, ship_type) VALUES (?, ?, ?)",
				e.ID, slot, string(st),
			)
			if err != nil {
				return fmt.Errorf("insert composition for expedition %d: %w", e.ID, err)
			}
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for k, v := range map[string]string{"version": data.Version, "loaded_at": now} {
		if _, err := sqlTx.ExecContext(ctx, "INSERT INTO catalog_meta (key, value) VALUES (?, ?)", k, v); err != nil {
			return err
		}
	}

	return sqlTx.Commit()
}

// LoadCatalog reads the stored catalog back and validates it.
func (s *Store) LoadCatalog(ctx context.Context) (kancolle.Data, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var data kancolle.Data
	err := s.db.QueryRowContext(ctx, "SELECT value FROM catalog_meta WHERE key = 'version'").Scan(&data.Version)
	if err == sql.ErrNoRows {
		return kancolle.Data{}, ErrEmptyCatalog
	}
	if err != nil {
		return kancolle.Data{}, err
	}

	if data.ShipTypes, err = s.loadShipCosts(ctx); err != nil {
		return kancolle.Data{}, err
	}
	if data.Expeditions, err = s.loadExpeditions(ctx); err != nil {
		return kancolle.Data{}, err
	}
	compositions, err := s.loadCompositions(ctx)
	if err != nil {
		return kancolle.Data{}, err
	}
	for i := range data.Expeditions {
		data.Expeditions[i].Composition = compositions[data.Expeditions[i].ID]
	}

	if err := data.Validate(); err != nil {
		return kancolle.Data{}, err
	}
	return data, nil
}

func (s *Store) loadShipCosts(ctx context.Context) ([]kancolle.ShipCostData, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT ship_type, fuel, ammo, max_count FROM ship_costs ORDER BY position",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ships []kancolle.ShipCostData
	for rows.Next() {
		var st kancolle.ShipCostData
		var shipType string
		if err := rows.Scan(&shipType, &st.Fuel, &st.Ammo, &st.MaxCount); err != nil {
			return nil, err
		}
		st.Type = generic.ShipType(shipType)
		ships = append(ships, st)
	}
	return ships, rows.Err()
}

func (s *Store) loadExpeditions(ctx context.Context) ([]kancolle.ExpeditionData, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, time_minutes, fuel_yield, ammo_yield, steel_yield, bauxite_yield, fuel_cost, ammo_cost
		FROM expeditions
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expeditions []kancolle.ExpeditionData
	for rows.Next() {
		var e kancolle.ExpeditionData
		var fuelCost, ammoCost string
		if err := rows.Scan(&e.ID, &e.Time, &e.Yield.Fuel, &e.Yield.Ammo, &e.Yield.Steel, &e.Yield.Bauxite, &fuelCost, &ammoCost); err != nil {
			return nil, err
		}
		if e.FuelCost, err = parsePercent(fuelCost); err != nil {
			return nil, fmt.Errorf("expedition %d fuel cost: %w", e.ID, err)
		}
		if e.AmmoCost, err = parsePercent(ammoCost); err != nil {
			return nil, fmt.Errorf("expedition %d ammo cost: %w", e.ID, err)
		}
		expeditions = append(expeditions, e)
	}
	return expeditions, rows.Err()
}

func (s *Store) loadCompositions(ctx context.Context) (map[int][]generic.ShipType, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT expedition_id, ship_type FROM expedition_compositions ORDER BY expedition_id, slot",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int][]generic.ShipType)
	for rows.Next() {
		var id int
		var shipType string
		if err := rows.Scan(&id, &shipType); err != nil {
			return nil, err
		}
		out[id] = append(out[id], generic.ShipType(shipType))
	}
	return out, rows.Err()
}

func parsePercent(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}

// =============================================================================
// UTILITIES
// =============================================================================

// IsEmpty reports whether no catalog has been saved yet.
func (s *Store) IsEmpty(ctx context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM expeditions").Scan(&n); err != nil {
		return false, err
	}
	return n == 0, nil
}

// LoadedAt returns when the stored catalog was saved.
func (s *Store) LoadedAt(ctx context.Context) (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var v string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM catalog_meta WHERE key = 'loaded_at'").Scan(&v)
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, v)
}

// Reset clears all data (for testing/demo).
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables := []string{"expedition_compositions", "expeditions", "ship_costs", "catalog_meta"}
	for _, table := range tables {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}
	return nil
}
