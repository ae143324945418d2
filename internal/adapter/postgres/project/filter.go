package project

import "github.com/docugallery/gallery-backend/internal/domain"

// Filter defines parameters for listing catalog projects.
type Filter struct {
	// Tiers restricts results to the given visibility tiers. nil means
	// unrestricted (privileged caller). Legacy rows whose tier was never
	// migrated are admitted by any restriction: they can only migrate to
	// public or private, both of which every caller may list.
	Tiers []domain.Visibility

	// Category filters by exact category. nil or empty means no filter.
	Category *string

	// Search performs ILIKE '%...%' on title and location.
	Search *string

	// SortBy determines the sort column: "date", "title", "created_at",
	// "updated_at". Default: "created_at".
	SortBy string

	// SortOrder: "ASC" or "DESC". Default: "DESC".
	SortOrder string

	// Limit is the maximum number of projects to return. Default: 50, max: 200.
	Limit int

	// Offset is the number of projects to skip.
	Offset int
}

// fromDomain copies the service-level filter into the adapter's own type.
func fromDomain(f domain.ProjectFilter) Filter {
	return Filter{
		Tiers:     f.Tiers,
		Category:  f.Category,
		Search:    f.Search,
		SortBy:    f.SortBy,
		SortOrder: f.SortOrder,
		Limit:     f.Limit,
		Offset:    f.Offset,
	}
}

const (
	defaultLimit = 50
	maxLimit     = 200

	sortByTitle     = "title"
	sortByDate      = "date"
	sortByCreatedAt = "created_at"
	sortByUpdatedAt = "updated_at"

	sortOrderASC  = "ASC"
	sortOrderDESC = "DESC"
)

// normalize applies defaults and clamps values.
func (f *Filter) normalize() {
	switch f.SortBy {
	case sortByTitle, sortByDate, sortByCreatedAt, sortByUpdatedAt:
		// valid
	default:
		f.SortBy = sortByCreatedAt
	}

	switch f.SortOrder {
	case sortOrderASC, sortOrderDESC:
		// valid
	default:
		f.SortOrder = sortOrderDESC
	}

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}

	if f.Offset < 0 {
		f.Offset = 0
	}
}
