package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/docugallery/gallery-backend/internal/access"
	"github.com/docugallery/gallery-backend/internal/domain"
	"github.com/docugallery/gallery-backend/internal/link"
	"github.com/docugallery/gallery-backend/pkg/ctxutil"
)

// CreateProject classifies the source link, resolves a thumbnail and stores
// a new catalog project. Admin only.
func (s *Service) CreateProject(ctx context.Context, input CreateProjectInput) (*domain.Project, error) {
	caller := ctxutil.CallerFromCtx(ctx)
	if !caller.Authenticated {
		return nil, domain.ErrUnauthorized
	}
	if !caller.IsAdmin {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	lnk := link.Classify(input.Link)

	mode := input.ThumbnailMode
	if mode == "" {
		mode = domain.ThumbnailModeAuto
	}

	thumbURL := s.resolver.Resolve(ctx, lnk, mode, strings.TrimSpace(input.ThumbnailOverride))

	p := domain.Project{
		ID:            uuid.New(),
		Title:         strings.TrimSpace(input.Title),
		Date:          strings.TrimSpace(input.Date),
		Location:      strings.TrimSpace(input.Location),
		Category:      strings.TrimSpace(input.Category),
		Provider:      lnk.Provider,
		ResourceID:    lnk.ResourceID,
		ThumbnailURL:  thumbURL,
		ThumbnailMode: mode,
		Status:        domain.SyncStatusSynced,
	}

	visibility := input.Visibility
	if visibility == "" {
		visibility = domain.VisibilityPublic
	}
	access.SetVisibility(&p, visibility)

	created, err := s.projects.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.log.InfoContext(ctx, "project created",
		slog.String("project_id", created.ID.String()),
		slog.String("provider", created.Provider.String()),
		slog.String("visibility", created.Visibility.String()),
	)

	sanitized := access.Sanitize(*created, caller)
	return &sanitized, nil
}
