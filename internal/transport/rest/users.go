package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/docugallery/gallery-backend/internal/domain"
)

// adminUserService defines the minimal interface needed by UserHandler.
type adminUserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	ApproveUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	RejectUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error)
}

// UserHandler serves admin user management endpoints.
type UserHandler struct {
	svc adminUserService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc adminUserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

// List handles GET /admin/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": out})
}

// Approve handles POST /admin/users/{id}/approve.
func (h *UserHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.svc.ApproveUser)
}

// Reject handles POST /admin/users/{id}/reject.
func (h *UserHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.svc.RejectUser)
}

func (h *UserHandler) setStatus(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) (*domain.User, error)) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	u, err := op(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(*u))
}

type setRoleRequest struct {
	Role string `json:"role"`
}

// SetRole handles PUT /admin/users/{id}/role.
func (h *UserHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req setRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.svc.SetRole(r.Context(), id, domain.UserRole(req.Role))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(*u))
}
