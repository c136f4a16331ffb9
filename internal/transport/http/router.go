// Package httptransport assembles the application router. It owns the shared
// middleware chain; the per-domain handlers only contribute routes.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"talentmap/internal/platform/metrics"
	"talentmap/internal/platform/middleware"
	"talentmap/pkg/platform/httputil"
)

// Registrar is implemented by the domain handlers.
type Registrar interface {
	Register(chi.Router)
}

// AdminRegistrar marks handlers with routes that must sit behind required
// authentication.
type AdminRegistrar interface {
	RegisterAdmin(chi.Router)
}

// HealthCheck names one dependency probe for the health endpoint.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// NewRouter builds the chi router with the full middleware chain. Identity
// resolution is optional on public routes; the services decide what each
// identity may do. Admin route groups additionally require a valid token at
// the edge.
func NewRouter(logger *slog.Logger, m *metrics.Metrics, validator middleware.TokenValidator, checks []HealthCheck, handlers ...Registrar) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(15 * time.Second))
	r.Use(middleware.ContentTypeJSON)
	if m != nil {
		r.Use(middleware.Latency(m))
	}
	r.Use(middleware.OptionalAuth(validator, logger))

	r.Get("/healthz", handleHealth(checks))

	for _, h := range handlers {
		h.Register(r)
		if admin, ok := h.(AdminRegistrar); ok {
			r.Group(func(gr chi.Router) {
				gr.Use(middleware.RequireAuth(validator, logger))
				admin.RegisterAdmin(gr)
			})
		}
	}
	return r
}

func handleHealth(checks []HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		results := make(map[string]string, len(checks))
		for _, c := range checks {
			if err := c.Check(ctx); err != nil {
				results[c.Name] = "unavailable"
				status = http.StatusServiceUnavailable
				continue
			}
			results[c.Name] = "ok"
		}

		body := map[string]any{"status": "ok", "checks": results}
		if status != http.StatusOK {
			body["status"] = "degraded"
		}
		httputil.WriteJSON(w, status, body)
	}
}
