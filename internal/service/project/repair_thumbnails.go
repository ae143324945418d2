package project

import (
	"context"
	"log/slog"

	"github.com/docugallery/gallery-backend/internal/domain"
	"github.com/docugallery/gallery-backend/internal/thumbnail"
	"github.com/docugallery/gallery-backend/pkg/ctxutil"
)

const sweepPageSize = 200

// RepairResult holds the outcome of a bulk thumbnail repair sweep.
type RepairResult struct {
	Scanned  int
	Repaired int
	Failed   int
}

// RepairThumbnails sweeps the whole catalog and rewrites every thumbnail
// URL that the repairer can normalize. Records are processed independently:
// a failed write is counted and the sweep moves on. Admin only.
func (s *Service) RepairThumbnails(ctx context.Context) (RepairResult, error) {
	caller := ctxutil.CallerFromCtx(ctx)
	if !caller.Authenticated {
		return RepairResult{}, domain.ErrUnauthorized
	}
	if !caller.IsAdmin {
		return RepairResult{}, domain.ErrForbidden
	}

	var result RepairResult

	for offset := 0; ; offset += sweepPageSize {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		page, err := s.projects.List(ctx, domain.ProjectFilter{
			SortBy:    "created_at",
			SortOrder: "ASC",
			Limit:     sweepPageSize,
			Offset:    offset,
		})
		if err != nil {
			return result, err
		}

		for _, p := range page {
			result.Scanned++

			fixed := thumbnail.Repair(p.ThumbnailURL)
			if fixed == p.ThumbnailURL {
				continue
			}

			if err := s.projects.UpdateThumbnail(ctx, p.ID, fixed); err != nil {
				result.Failed++
				s.log.WarnContext(ctx, "thumbnail repair write failed",
					slog.String("project_id", p.ID.String()),
					slog.String("error", err.Error()),
				)
				continue
			}
			result.Repaired++
		}

		if len(page) < sweepPageSize {
			break
		}
	}

	s.log.InfoContext(ctx, "thumbnail sweep finished",
		slog.Int("scanned", result.Scanned),
		slog.Int("repaired", result.Repaired),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}
