package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/docugallery/gallery-backend/internal/access"
	"github.com/docugallery/gallery-backend/internal/domain"
	"github.com/docugallery/gallery-backend/internal/link"
	"github.com/docugallery/gallery-backend/pkg/ctxutil"
)

// UpdateProject applies a partial update. The thumbnail is re-resolved only
// when one of its inputs (link, mode, override) actually changed. Admin only.
func (s *Service) UpdateProject(ctx context.Context, input UpdateProjectInput) (*domain.Project, error) {
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

	existing, err := s.projects.GetByID(ctx, input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	updated := *existing

	if v := trimOrNil(input.Title); v != nil {
		updated.Title = *v
	}
	if input.Date != nil {
		updated.Date = strings.TrimSpace(*input.Date)
	}
	if input.Location != nil {
		updated.Location = strings.TrimSpace(*input.Location)
	}
	if input.Category != nil {
		updated.Category = strings.TrimSpace(*input.Category)
	}

	linkChanged := false
	if input.Link != nil {
		lnk := link.Classify(*input.Link)
		linkChanged = lnk.Provider != updated.Provider || lnk.ResourceID != updated.ResourceID
		updated.Provider = lnk.Provider
		updated.ResourceID = lnk.ResourceID
	}

	modeChanged := false
	if input.ThumbnailMode != nil && *input.ThumbnailMode != updated.ThumbnailMode {
		updated.ThumbnailMode = *input.ThumbnailMode
		modeChanged = true
	}

	override := ""
	overrideChanged := false
	if input.ThumbnailOverride != nil {
		override = strings.TrimSpace(*input.ThumbnailOverride)
		overrideChanged = true
	}

	// Override-based thumbnails do not depend on the source link, so a link
	// change alone only re-resolves in auto mode.
	resolve := overrideChanged || modeChanged ||
		(linkChanged && updated.ThumbnailMode == domain.ThumbnailModeAuto)

	if resolve {
		updated.ThumbnailURL = s.resolver.Resolve(ctx,
			link.Link{Provider: updated.Provider, ResourceID: updated.ResourceID},
			updated.ThumbnailMode,
			override,
		)
	}

	if input.Visibility != nil {
		access.SetVisibility(&updated, *input.Visibility)
	}

	result, err := s.projects.Update(ctx, updated)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	s.log.InfoContext(ctx, "project updated",
		slog.String("project_id", result.ID.String()),
		slog.Bool("thumbnail_resolved", resolve),
	)

	sanitized := access.Sanitize(*result, caller)
	return &sanitized, nil
}
