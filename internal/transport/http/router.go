package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"compliance-advisor/internal/platform/metrics"
	"compliance-advisor/pkg/platform/httputil"
	"compliance-advisor/pkg/platform/middleware/request"
)

// Registrar is implemented by every bounded-context handler.
type Registrar interface {
	Register(r chi.Router)
}

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Deps collects what the router needs. Cache and RulesConfigured only
// feed /health; a nil Cache means Redis is not in use.
type Deps struct {
	Logger          *slog.Logger
	Metrics         *metrics.Metrics
	Handlers        []Registrar
	Cache           HealthChecker
	RulesConfigured bool
}

// HealthResponse is the /health payload.
type HealthResponse struct {
	Status          string `json:"status"`
	Cache           string `json:"cache"`
	RulesConfigured bool   `json:"rules_source_configured"`
}

const healthTimeout = 2 * time.Second

// NewRouter wires middleware, the versioned API and operational endpoints.
// Handlers hold no business logic; they delegate to their services.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(request.RequestID)
	r.Use(request.RequestTime)
	r.Use(request.ClientMetadata)
	r.Use(middleware.Recoverer)
	if deps.Logger != nil {
		r.Use(request.AccessLog(deps.Logger))
	}
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
	}

	r.Get("/health", healthHandler(deps))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(api chi.Router) {
		for _, h := range deps.Handlers {
			h.Register(api)
		}
	})
	return r
}

func healthHandler(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{Status: "ok", Cache: "memory", RulesConfigured: deps.RulesConfigured}
		status := http.StatusOK
		if deps.Cache != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
			defer cancel()
			resp.Cache = "redis"
			if err := deps.Cache.Health(ctx); err != nil {
				if deps.Logger != nil {
					deps.Logger.WarnContext(ctx, "cache health check failed", "error", err)
				}
				resp.Status = "degraded"
				status = http.StatusServiceUnavailable
			}
		}
		httputil.WriteJSON(w, status, resp)
	}
}
