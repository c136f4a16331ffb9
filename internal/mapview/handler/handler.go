// Package handler exposes the map aggregation endpoint. Read-only and public:
// no authorization beyond what the engine's projection already enforces.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"talentmap/internal/mapview"
	"talentmap/internal/platform/metrics"
	"talentmap/pkg/platform/httputil"
	"talentmap/pkg/requestcontext"
)

// Service defines the map view operation the handler depends on.
type Service interface {
	MapView(ctx context.Context) (*mapview.MapView, error)
}

type Handler struct {
	logger  *slog.Logger
	maps    Service
	metrics *metrics.Metrics
}

func New(maps Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{logger: logger, maps: maps, metrics: m}
}

// Register adds the map route. The router owns the shared middleware chain.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/map", h.handleMapView)
}

func (h *Handler) handleMapView(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	view, err := h.maps.MapView(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build map view",
			"error", err.Error(),
			"request_id", requestcontext.RequestID(ctx),
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}
