package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project is a catalog entry pointing at externally hosted content:
// a Google Drive folder or a Facebook post/video. The media itself is never
// stored here, only the resource identifier and a resolved preview image.
type Project struct {
	ID       uuid.UUID
	Title    string
	Date     string // free-form, not guaranteed ISO
	Location string
	Category string

	// Provider is derived from the raw link at write time.
	Provider Provider
	// ResourceID is a Drive file/folder ID, or the verbatim Facebook URL
	// when Provider is facebook. Facebook links are opaque tokens and are
	// never decomposed.
	ResourceID string

	ThumbnailURL  string
	ThumbnailMode ThumbnailMode

	// Visibility is the authoritative access tier. The zero value means the
	// record predates the tier model and has not been migrated yet.
	Visibility Visibility
	// LegacyIsPrivate mirrors Visibility != public. It is kept on the wire
	// for callers that never migrated and must stay in sync after every
	// mutation.
	LegacyIsPrivate bool

	Status SyncStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ImageCandidate is one entry from a remote folder listing, as returned by
// the image-listing collaborator. Width, Height and SizeBytes are only
// populated when the provider reports them.
type ImageCandidate struct {
	ID        string
	Name      string
	Width     int
	Height    int
	SizeBytes int64
}

// HasResolution reports whether both dimensions are known.
func (c ImageCandidate) HasResolution() bool {
	return c.Width > 0 && c.Height > 0
}

// HasSize reports whether the file size is known.
func (c ImageCandidate) HasSize() bool {
	return c.SizeBytes > 0
}
