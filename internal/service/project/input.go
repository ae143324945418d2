package project

import (
	"strings"

	"github.com/google/uuid"

	"github.com/docugallery/gallery-backend/internal/domain"
)

// CreateProjectInput holds the parameters for creating a project.
type CreateProjectInput struct {
	Title    string
	Date     string
	Location string
	Category string

	// Link is the source link or raw resource ID (Drive or Facebook).
	Link string

	// ThumbnailMode defaults to auto when empty.
	ThumbnailMode domain.ThumbnailMode

	// ThumbnailOverride is the admin-supplied thumbnail, required for every
	// mode except auto.
	ThumbnailOverride string

	// Visibility defaults to public when empty.
	Visibility domain.Visibility
}

// Validate checks all fields and collects all errors.
func (i CreateProjectInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}

	if strings.TrimSpace(i.Link) == "" {
		errs = append(errs, domain.FieldError{Field: "link", Message: "required"})
	}

	if len(i.Location) > 200 {
		errs = append(errs, domain.FieldError{Field: "location", Message: "max 200 characters"})
	}
	if len(i.Category) > 100 {
		errs = append(errs, domain.FieldError{Field: "category", Message: "max 100 characters"})
	}
	if len(i.Date) > 50 {
		errs = append(errs, domain.FieldError{Field: "date", Message: "max 50 characters"})
	}

	mode := i.ThumbnailMode
	if mode == "" {
		mode = domain.ThumbnailModeAuto
	}
	if !mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "thumbnail_mode", Message: "invalid mode"})
	} else if mode != domain.ThumbnailModeAuto && strings.TrimSpace(i.ThumbnailOverride) == "" {
		errs = append(errs, domain.FieldError{Field: "thumbnail_override", Message: "required for mode " + mode.String()})
	}

	if i.Visibility != "" && !i.Visibility.IsValid() {
		errs = append(errs, domain.FieldError{Field: "visibility", Message: "invalid tier"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProjectInput holds the parameters for updating a project.
// nil pointers leave the corresponding field unchanged.
type UpdateProjectInput struct {
	ProjectID uuid.UUID

	Title    *string
	Date     *string
	Location *string
	Category *string

	Link              *string
	ThumbnailMode     *domain.ThumbnailMode
	ThumbnailOverride *string

	Visibility *domain.Visibility
}

// Validate checks all fields and collects all errors.
func (i UpdateProjectInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}

	if i.Title == nil && i.Date == nil && i.Location == nil && i.Category == nil &&
		i.Link == nil && i.ThumbnailMode == nil && i.ThumbnailOverride == nil && i.Visibility == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}

	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		if len(title) > 200 {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
		}
	}

	if i.Link != nil && strings.TrimSpace(*i.Link) == "" {
		errs = append(errs, domain.FieldError{Field: "link", Message: "required"})
	}

	if i.ThumbnailMode != nil {
		if !i.ThumbnailMode.IsValid() {
			errs = append(errs, domain.FieldError{Field: "thumbnail_mode", Message: "invalid mode"})
		} else if *i.ThumbnailMode != domain.ThumbnailModeAuto &&
			(i.ThumbnailOverride == nil || strings.TrimSpace(*i.ThumbnailOverride) == "") {
			errs = append(errs, domain.FieldError{Field: "thumbnail_override", Message: "required for mode " + i.ThumbnailMode.String()})
		}
	}

	if i.Visibility != nil && !i.Visibility.IsValid() {
		errs = append(errs, domain.FieldError{Field: "visibility", Message: "invalid tier"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListProjectsInput holds listing parameters. Visibility admission is
// derived from the caller, never from the input.
type ListProjectsInput struct {
	Category  *string
	Search    *string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}
