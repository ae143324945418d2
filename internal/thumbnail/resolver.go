package thumbnail

import (
	"context"
	"log/slog"
	"time"

	"github.com/docugallery/gallery-backend/internal/domain"
	"github.com/docugallery/gallery-backend/internal/link"
)

// Lister is the remote image-listing collaborator: given a Drive folder ID it
// returns up to 50 image entries ordered newest-first, or a single error
// outcome on any failure (auth, quota, not-found).
type Lister interface {
	ListFolderImages(ctx context.Context, folderID string) ([]domain.ImageCandidate, error)
}

// Resolver produces a best-effort thumbnail URL for a classified link.
type Resolver struct {
	log         *slog.Logger
	lister      Lister
	listTimeout time.Duration
}

// NewResolver creates a Resolver. lister may be nil when no listing capability
// is configured; auto mode then degrades straight to the placeholder.
func NewResolver(logger *slog.Logger, lister Lister, listTimeout time.Duration) *Resolver {
	if listTimeout <= 0 {
		listTimeout = 10 * time.Second
	}
	return &Resolver{
		log:         logger.With("component", "thumbnail_resolver"),
		lister:      lister,
		listTimeout: listTimeout,
	}
}

// Resolve maps a classified link and a thumbnail mode to a single image URL.
//
// custom: the override is itself link-classified; a Drive file ID becomes the
// canonical direct-image URL, anything else is returned unchanged.
// uploaded / pickedFromFolder: the override is already a terminal image URL.
// auto + facebook: empty string; the UI substitutes a provider icon.
// auto + drive: remote listing, best-image pick, direct-image URL; any listing
// failure or empty result falls back to the fixed placeholder.
//
// Resolve never returns an error: all remote failures are absorbed into the
// placeholder fallback and nothing is retried here.
func (r *Resolver) Resolve(ctx context.Context, l link.Link, mode domain.ThumbnailMode, override string) string {
	switch mode {
	case domain.ThumbnailModeCustom:
		return resolveCustom(override)

	case domain.ThumbnailModeUploaded, domain.ThumbnailModePickedFromFolder:
		return override

	case domain.ThumbnailModeAuto:
		if l.Provider == domain.ProviderFacebook {
			return ""
		}
		return r.resolveAuto(ctx, l.ResourceID)

	default:
		return link.PlaceholderThumbnailURL
	}
}

// resolveCustom converts a pasted Drive file link to the direct-image form and
// leaves every other override untouched.
func resolveCustom(override string) string {
	if override == "" {
		return ""
	}

	classified := link.Classify(override)
	if classified.Provider == domain.ProviderDrive && classified.IsCanonicalID() {
		return link.DirectImageURL(classified.ResourceID)
	}

	return override
}

// resolveAuto lists the folder and picks the best image. Every failure path
// lands on the placeholder; none is surfaced to the caller.
func (r *Resolver) resolveAuto(ctx context.Context, folderID string) string {
	if r.lister == nil {
		return link.PlaceholderThumbnailURL
	}

	ctx, cancel := context.WithTimeout(ctx, r.listTimeout)
	defer cancel()

	images, err := r.lister.ListFolderImages(ctx, folderID)
	if err != nil {
		r.log.WarnContext(ctx, "folder listing failed, using placeholder",
			slog.String("folder_id", folderID),
			slog.String("error", err.Error()),
		)
		return link.PlaceholderThumbnailURL
	}
	if len(images) == 0 {
		return link.PlaceholderThumbnailURL
	}

	best := Pick(images)
	return link.DirectImageURL(best.ID)
}
