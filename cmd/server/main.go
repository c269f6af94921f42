/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the expedition economics server.
  Handles configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Open the SQLite catalog store, seeding it when empty or when -catalog
     is given
  3. Build the deriver, presets and in-memory config session
  4. Optionally load a seeded random scenario
  5. Start the websocket hub and the HTTP router
  6. Serve with graceful shutdown

COMMAND-LINE FLAGS:
  -port     HTTP server port (default: 8080)
  -db       SQLite database path (default: expeditions.db)
            Use ":memory:" for an in-memory database
  -catalog  YAML catalog file replacing the stored catalog
  -seed     Load the random scenario with this seed on start
            (default: -1, every expedition starts at the default config)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close websocket clients
  4. Close database connection

EXAMPLES:
  # Run with the bundled catalog
  ./server

  # Replace the stored catalog with a custom one
  ./server -catalog="./data/catalog.yaml"

  # Reproducible demo table
  ./server -db=":memory:" -seed=42

SEE ALSO:
  - api/server.go: Router configuration
  - kancolle/catalog.go: Catalog format
  - store/sqlite/sqlite.go: Catalog persistence
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warp/expedition-engine/api"
	"github.com/warp/expedition-engine/generic"
	"github.com/warp/expedition-engine/generic/store"
	"github.com/warp/expedition-engine/kancolle"
	"github.com/warp/expedition-engine/store/sqlite"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "expeditions.db", "SQLite database path")
	catalogPath := flag.String("catalog", "", "YAML catalog replacing the stored one")
	seed := flag.Int64("seed", -1, "load the random scenario with this seed on start")
	flag.Parse()

	// Initialize catalog store
	db, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	data, err := loadCatalog(context.Background(), db, *catalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	deriver, err := kancolle.NewDeriver(data)
	if err != nil {
		log.Fatalf("Failed to build deriver: %v", err)
	}
	presets, err := kancolle.PresetsFor(data)
	if err != nil {
		log.Fatalf("Failed to build presets: %v", err)
	}

	// Configs live in memory only; the catalog is the persisted part.
	session := generic.NewSession(store.NewMemoryWithDefaults(), deriver)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	hub := api.NewHub()
	go hub.Run(ctx)

	handler := api.NewHandler(session, presets, hub)
	if *seed >= 0 {
		if err := handler.LoadRandom(ctx, uint64(*seed)); err != nil {
			log.Fatalf("Failed to load random scenario: %v", err)
		}
		log.Printf("Loaded random scenario (seed %d)", *seed)
	}

	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost:%d", *port)
		log.Printf("API available at http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	stop()

	log.Println("Server stopped")
}

// loadCatalog seeds the store from path (or the bundled catalog when the
// store is empty) and returns what the store holds afterwards.
func loadCatalog(ctx context.Context, db *sqlite.Store, path string) (kancolle.Data, error) {
	var seedData *kancolle.Data
	switch {
	case path != "":
		data, err := kancolle.LoadFile(path)
		if err != nil {
			return kancolle.Data{}, err
		}
		seedData = &data
	default:
		empty, err := db.IsEmpty(ctx)
		if err != nil {
			return kancolle.Data{}, err
		}
		if empty {
			data, err := kancolle.DefaultData()
			if err != nil {
				return kancolle.Data{}, err
			}
			seedData = &data
		}
	}

	if seedData != nil {
		if err := db.SaveCatalog(ctx, *seedData); err != nil {
			return kancolle.Data{}, err
		}
		log.Printf("Catalog stored (%d expeditions, %d ship types)", len(seedData.Expeditions), len(seedData.ShipTypes))
	}

	if at, err := db.LoadedAt(ctx); err == nil {
		log.Printf("Using catalog stored at %s", at.Format(time.RFC3339))
	}
	return db.LoadCatalog(ctx)
}
