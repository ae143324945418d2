package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docugallery/gallery-backend/internal/access"
	"github.com/docugallery/gallery-backend/internal/domain"
	"github.com/docugallery/gallery-backend/internal/thumbnail"
	"github.com/docugallery/gallery-backend/pkg/ctxutil"
)

// GetProject returns a single project, repaired and sanitized for the caller.
// Records restricted to admins are reported as not found to everyone else.
func (s *Service) GetProject(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	caller := ctxutil.CallerFromCtx(ctx)

	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	effective := access.Migrate(*p)

	if effective.Visibility == domain.VisibilityAdminOnly && !caller.IsAdmin {
		return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}

	// Backfill the tier of legacy records, but only on privileged reads.
	// A failed backfill is retried on the next admin read.
	if caller.IsAdmin && access.NeedsMigration(*p) {
		if err := s.projects.SetVisibility(ctx, p.ID, effective.Visibility, effective.LegacyIsPrivate); err != nil {
			s.log.WarnContext(ctx, "visibility backfill failed",
				slog.String("project_id", p.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	effective.ThumbnailURL = thumbnail.Repair(effective.ThumbnailURL)

	sanitized := access.Sanitize(effective, caller)
	return &sanitized, nil
}
