package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/docugallery/gallery-backend/internal/domain"
	projectsvc "github.com/docugallery/gallery-backend/internal/service/project"
)

// projectService defines the minimal interface needed by ProjectHandler.
type projectService interface {
	CreateProject(ctx context.Context, input projectsvc.CreateProjectInput) (*domain.Project, error)
	UpdateProject(ctx context.Context, input projectsvc.UpdateProjectInput) (*domain.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	ListProjects(ctx context.Context, input projectsvc.ListProjectsInput) ([]domain.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
	RepairThumbnails(ctx context.Context) (projectsvc.RepairResult, error)
}

// ProjectHandler serves catalog project endpoints.
type ProjectHandler struct {
	svc projectService
	log *slog.Logger
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(svc projectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, log: logger.With("handler", "project")}
}

type projectRequest struct {
	Title             string `json:"title"`
	Date              string `json:"date"`
	Location          string `json:"location"`
	Category          string `json:"category"`
	Link              string `json:"link"`
	ThumbnailMode     string `json:"thumbnailMode"`
	ThumbnailOverride string `json:"thumbnailOverride"`
	Visibility        string `json:"visibility"`
}

type projectPatchRequest struct {
	Title             *string `json:"title"`
	Date              *string `json:"date"`
	Location          *string `json:"location"`
	Category          *string `json:"category"`
	Link              *string `json:"link"`
	ThumbnailMode     *string `json:"thumbnailMode"`
	ThumbnailOverride *string `json:"thumbnailOverride"`
	Visibility        *string `json:"visibility"`
}

type projectResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Date          string    `json:"date,omitempty"`
	Location      string    `json:"location,omitempty"`
	Category      string    `json:"category,omitempty"`
	Provider      string    `json:"provider"`
	ResourceID    string    `json:"resourceId"`
	ThumbnailURL  string    `json:"thumbnailUrl"`
	ThumbnailMode string    `json:"thumbnailMode"`
	Visibility    string    `json:"visibility"`
	IsPrivate     bool      `json:"isPrivate"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toProjectResponse(p domain.Project) projectResponse {
	return projectResponse{
		ID:            p.ID.String(),
		Title:         p.Title,
		Date:          p.Date,
		Location:      p.Location,
		Category:      p.Category,
		Provider:      p.Provider.String(),
		ResourceID:    p.ResourceID,
		ThumbnailURL:  p.ThumbnailURL,
		ThumbnailMode: p.ThumbnailMode.String(),
		Visibility:    p.Visibility.String(),
		IsPrivate:     p.LegacyIsPrivate,
		Status:        p.Status.String(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// List handles GET /projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := projectsvc.ListProjectsInput{
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	}
	if v := q.Get("category"); v != "" {
		input.Category = &v
	}
	if v := q.Get("search"); v != "" {
		input.Search = &v
	}
	if v := q.Get("limit"); v != "" {
		input.Limit, _ = strconv.Atoi(v)
	}
	if v := q.Get("offset"); v != "" {
		input.Offset, _ = strconv.Atoi(v)
	}

	items, err := h.svc.ListProjects(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]projectResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toProjectResponse(p))
	}
	writeJSON(w, http.StatusOK, map[string]any{"projects": out})
}

// Get handles GET /projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	p, err := h.svc.GetProject(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(*p))
}

// Create handles POST /projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.svc.CreateProject(r.Context(), projectsvc.CreateProjectInput{
		Title:             req.Title,
		Date:              req.Date,
		Location:          req.Location,
		Category:          req.Category,
		Link:              req.Link,
		ThumbnailMode:     domain.ThumbnailMode(req.ThumbnailMode),
		ThumbnailOverride: req.ThumbnailOverride,
		Visibility:        domain.Visibility(req.Visibility),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProjectResponse(*p))
}

// Update handles PATCH /projects/{id}.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var req projectPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := projectsvc.UpdateProjectInput{
		ProjectID: id,
		Title:     req.Title,
		Date:      req.Date,
		Location:  req.Location,
		Category:  req.Category,
		Link:      req.Link,
	}
	if req.ThumbnailMode != nil {
		mode := domain.ThumbnailMode(*req.ThumbnailMode)
		input.ThumbnailMode = &mode
	}
	if req.ThumbnailOverride != nil {
		input.ThumbnailOverride = req.ThumbnailOverride
	}
	if req.Visibility != nil {
		v := domain.Visibility(*req.Visibility)
		input.Visibility = &v
	}

	p, err := h.svc.UpdateProject(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(*p))
}

// Delete handles DELETE /projects/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	if err := h.svc.DeleteProject(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// RepairThumbnails handles POST /admin/projects/repair-thumbnails.
func (h *ProjectHandler) RepairThumbnails(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.RepairThumbnails(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{
		"scanned":  result.Scanned,
		"repaired": result.Repaired,
		"failed":   result.Failed,
	})
}
