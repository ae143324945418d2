package project

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/docugallery/gallery-backend/internal/domain"
	"github.com/docugallery/gallery-backend/internal/link"
)

type projectRepo interface {
	Create(ctx context.Context, p domain.Project) (*domain.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	Update(ctx context.Context, p domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f domain.ProjectFilter) ([]domain.Project, error)
	SetVisibility(ctx context.Context, id uuid.UUID, v domain.Visibility, legacyIsPrivate bool) error
	UpdateThumbnail(ctx context.Context, id uuid.UUID, url string) error
}

type thumbnailResolver interface {
	Resolve(ctx context.Context, l link.Link, mode domain.ThumbnailMode, override string) string
}

// Service provides catalog project operations.
type Service struct {
	projects projectRepo
	resolver thumbnailResolver
	log      *slog.Logger
}

// NewService creates a new Project service.
func NewService(
	log *slog.Logger,
	projects projectRepo,
	resolver thumbnailResolver,
) *Service {
	return &Service{
		projects: projects,
		resolver: resolver,
		log:      log.With("service", "project"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
