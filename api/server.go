/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the table front-end

ROUTE GROUPS:
  /api/expeditions/*    Catalog and per-expedition config
  /api/table            Derived rows
  /api/presets          Cost groups
  /api/cost-model       Cost model table
  /api/scenarios/*      Demo scenarios
  /api/ws               Live updates

SECURITY NOTE:
  No authentication middleware. All endpoints are public; the server is
  meant to run next to a single user's browser.

SEE ALSO:
  - handlers.go: Handler implementations
  - hub.go: WebSocket hub
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/expeditions", func(r chi.Router) {
			r.Get("/", h.ListExpeditions)
			r.Get("/{id}/config", h.GetConfig)
			r.Put("/{id}/config", h.UpdateConfig)
		})

		r.Get("/table", h.GetTable)
		r.Get("/presets", h.ListPresets)
		r.Get("/cost-model", h.GetCostModel)

		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Get("/current", h.GetCurrentScenario)
			r.Post("/random", h.LoadRandomScenario)
			r.Post("/default", h.LoadDefaultScenario)
		})

		if h.Hub != nil {
			r.Get("/ws", h.Hub.ServeWs)
		}
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Expedition Engine</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Expedition Engine API</h1>
<ul>
<li><a href="/api/expeditions">/api/expeditions</a> - Catalog</li>
<li><a href="/api/table?income=net&denom=hourly">/api/table</a> - Income table</li>
<li><a href="/api/presets">/api/presets</a> - Cost presets</li>
<li><a href="/api/cost-model">/api/cost-model</a> - Cost model table</li>
<li><a href="/api/scenarios">/api/scenarios</a> - Demo scenarios</li>
</ul>
</body>
</html>`))
	})

	return r
}
