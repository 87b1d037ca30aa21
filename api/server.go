/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the calculator frontend

ROUTE GROUPS:
  /api/incentives/*     Calculation and plan
  /api/scenarios/*      Demo scenarios
  /api/health           Liveness
  /metrics              Prometheus (when enabled)
  /                     Endpoint index

SECURITY NOTE:
  No authentication middleware. The calculator holds no data and every
  endpoint is a pure function of its input.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/incentive/serve.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterOptions configures the router.
type RouterOptions struct {
	AllowedOrigins []string
	MetricsEnabled bool
}

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Route("/incentives", func(r chi.Router) {
			r.Post("/calculate", h.Calculate)
			r.Get("/plan", h.GetPlan)
		})

		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Post("/{id}/run", h.RunScenario)
		})
	})

	if opts.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Sales Incentive Calculator</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Sales Incentive Calculator API</h1>
<h2>API Endpoints</h2>
<ul>
<li>POST /api/incentives/calculate - Calculate a payout</li>
<li><a href="/api/incentives/plan">/api/incentives/plan</a> - Targets and tier tables</li>
<li><a href="/api/scenarios">/api/scenarios</a> - Demo scenarios</li>
</ul>
</body>
</html>`))
	})

	return r
}
