// Package handler exposes the profile lifecycle and the admin verification
// workflow over HTTP. Handlers stay thin: decode, resolve identity from the
// request context, delegate, serialize.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"talentmap/internal/identity"
	"talentmap/internal/platform/metrics"
	"talentmap/internal/profile/models"
	dErrors "talentmap/pkg/domain-errors"
	"talentmap/pkg/platform/httputil"
	"talentmap/pkg/requestcontext"
)

// Service defines the profile operations the handler depends on.
type Service interface {
	Create(ctx context.Context, ident *identity.Identity, req models.CreateProfileRequest) (*models.Profile, error)
	Get(ctx context.Context, id string) (*models.Profile, error)
	List(ctx context.Context) ([]*models.Profile, error)
	Update(ctx context.Context, ident *identity.Identity, id string, upd models.UpdateProfileRequest) (*models.Profile, error)
	Delete(ctx context.Context, ident *identity.Identity, id string) error
	SetVerified(ctx context.Context, ident *identity.Identity, id string, verified bool) (*models.Profile, error)
}

// Handler handles profile and admin verification endpoints.
type Handler struct {
	logger   *slog.Logger
	profiles Service
	metrics  *metrics.Metrics
}

func New(profiles Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		logger:   logger,
		profiles: profiles,
		metrics:  m,
	}
}

// Register adds the profile routes. Reads are public; mutations resolve the
// identity from the request context and let the service decide, so the
// authorization rules live in exactly one place. The router owns the shared
// middleware chain.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/profiles", h.handleList)
	r.Post("/api/profiles", h.handleCreate)
	r.Get("/api/profiles/{id}", h.handleGet)
	r.Put("/api/profiles/{id}", h.handleUpdate)
	r.Delete("/api/profiles/{id}", h.handleDelete)
}

// RegisterAdmin adds the verification route. The router mounts this group
// behind required authentication; the service still checks the admin role.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Post("/api/admin/verify", h.handleVerify)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profiles.List(r.Context())
	if err != nil {
		h.logError(r.Context(), "failed to list profiles", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, profiles)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	profile, err := h.profiles.Create(ctx, requestcontext.Identity(ctx), req)
	if err != nil {
		h.logError(ctx, "failed to create profile", err)
		httputil.WriteError(w, err)
		return
	}

	if h.metrics != nil {
		h.metrics.ProfilesCreated.Inc()
	}
	httputil.WriteJSON(w, http.StatusCreated, profile)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profiles.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Decoding into the allow-list struct is the sanitization step: fields
	// like verified or ownerId in the payload have nowhere to land.
	var upd models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	profile, err := h.profiles.Update(ctx, requestcontext.Identity(ctx), chi.URLParam(r, "id"), upd)
	if err != nil {
		h.logError(ctx, "failed to update profile", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.profiles.Delete(ctx, requestcontext.Identity(ctx), chi.URLParam(r, "id")); err != nil {
		h.logError(ctx, "failed to delete profile", err)
		httputil.WriteError(w, err)
		return
	}

	if h.metrics != nil {
		h.metrics.ProfilesDeleted.Inc()
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": "profile deleted"})
}

type verifyRequest struct {
	ProfileID string `json:"profileId"`
	Verified  bool   `json:"verified"`
}

func (h *Handler) handleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.ProfileID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "profileId is required"))
		return
	}

	profile, err := h.profiles.SetVerified(ctx, requestcontext.Identity(ctx), req.ProfileID, req.Verified)
	if err != nil {
		h.logError(ctx, "failed to set verified flag", err)
		httputil.WriteError(w, err)
		return
	}

	if h.metrics != nil {
		h.metrics.ProfilesVerified.Inc()
	}
	httputil.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) logError(ctx context.Context, msg string, err error) {
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, msg,
			"error", err.Error(),
			"request_id", requestcontext.RequestID(ctx),
		)
		return
	}
	h.logger.WarnContext(ctx, msg,
		"error", err.Error(),
		"request_id", requestcontext.RequestID(ctx),
	)
}
