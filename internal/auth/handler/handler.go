// Package handler exposes registration and login endpoints.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"talentmap/internal/auth/models"
	"talentmap/internal/platform/metrics"
	dErrors "talentmap/pkg/domain-errors"
	"talentmap/pkg/platform/httputil"
	"talentmap/pkg/requestcontext"
)

// Service defines the authentication operations the handler depends on.
type Service interface {
	Register(ctx context.Context, email, password, name string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
}

type Handler struct {
	logger  *slog.Logger
	auth    Service
	metrics *metrics.Metrics
}

func New(auth Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{logger: logger, auth: auth, metrics: m}
}

// Register adds the authentication routes. The router owns the shared
// middleware chain.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/register", h.handleRegister)
	r.Post("/api/login", h.handleLogin)
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	user, err := h.auth.Register(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		h.logger.WarnContext(ctx, "registration failed",
			"error", err.Error(),
			"request_id", requestcontext.RequestID(ctx),
		)
		httputil.WriteError(w, err)
		return
	}

	if h.metrics != nil {
		h.metrics.UsersRegistered.Inc()
	}
	httputil.WriteJSON(w, http.StatusCreated, map[string]string{
		"message": "user created",
		"userId":  user.ID.Hex(),
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	token, user, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "login failed",
			"request_id", requestcontext.RequestID(ctx),
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, loginResponse{Token: token, User: user})
}
