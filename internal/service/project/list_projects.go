package project

import (
	"context"
	"fmt"

	"github.com/docugallery/gallery-backend/internal/access"
	"github.com/docugallery/gallery-backend/internal/domain"
	"github.com/docugallery/gallery-backend/internal/thumbnail"
	"github.com/docugallery/gallery-backend/pkg/ctxutil"
)

// ListProjects returns catalog projects admitted for the caller's tiers,
// each repaired and sanitized.
func (s *Service) ListProjects(ctx context.Context, input ListProjectsInput) ([]domain.Project, error) {
	caller := ctxutil.CallerFromCtx(ctx)

	filter := domain.ProjectFilter{
		Tiers:     access.TiersFor(caller),
		Category:  trimOrNil(input.Category),
		Search:    trimOrNil(input.Search),
		SortBy:    input.SortBy,
		SortOrder: input.SortOrder,
		Limit:     input.Limit,
		Offset:    input.Offset,
	}

	items, err := s.projects.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	out := make([]domain.Project, 0, len(items))
	for _, p := range items {
		effective := access.Migrate(p)
		effective.ThumbnailURL = thumbnail.Repair(effective.ThumbnailURL)
		out = append(out, access.Sanitize(effective, caller))
	}

	return out, nil
}
