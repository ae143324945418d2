package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docugallery/gallery-backend/internal/domain"
	"github.com/docugallery/gallery-backend/pkg/ctxutil"
)

// DeleteProject removes a project from the catalog. Admin only.
func (s *Service) DeleteProject(ctx context.Context, id uuid.UUID) error {
	caller := ctxutil.CallerFromCtx(ctx)
	if !caller.Authenticated {
		return domain.ErrUnauthorized
	}
	if !caller.IsAdmin {
		return domain.ErrForbidden
	}

	if id == uuid.Nil {
		return domain.NewValidationError("project_id", "required")
	}

	if err := s.projects.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	s.log.InfoContext(ctx, "project deleted", slog.String("project_id", id.String()))
	return nil
}
