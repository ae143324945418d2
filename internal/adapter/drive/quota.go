package drive

import (
	"context"
	"log/slog"

	"github.com/docugallery/gallery-backend/internal/domain"
)

type quotaCounter interface {
	Increment(ctx context.Context) (exceeded bool, err error)
}

type folderLister interface {
	ListFolderImages(ctx context.Context, folderID string) ([]domain.ImageCandidate, error)
}

// CountingLister wraps a folder lister and records every API call against
// the daily quota. Quota is bookkeeping only: a counting failure or an
// exceeded limit is logged and the listing still goes through.
type CountingLister struct {
	lister  folderLister
	counter quotaCounter
	log     *slog.Logger
}

func NewCountingLister(log *slog.Logger, lister folderLister, counter quotaCounter) *CountingLister {
	return &CountingLister{
		lister:  lister,
		counter: counter,
		log:     log.With("component", "drive_quota"),
	}
}

func (l *CountingLister) ListFolderImages(ctx context.Context, folderID string) ([]domain.ImageCandidate, error) {
	exceeded, err := l.counter.Increment(ctx)
	if err != nil {
		l.log.WarnContext(ctx, "quota counting failed", slog.String("error", err.Error()))
	} else if exceeded {
		l.log.WarnContext(ctx, "daily quota exceeded", slog.String("folder_id", folderID))
	}

	return l.lister.ListFolderImages(ctx, folderID)
}
