package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docugallery/gallery-backend/internal/domain"
)

type userRepo interface {
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.UserStatus) (*domain.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type tokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID, role domain.UserRole) (string, error)
}

// Service provides account registration, login and admin user management.
type Service struct {
	users  userRepo
	tokens tokenIssuer
	log    *slog.Logger
}

// NewService creates a new User service.
func NewService(
	log *slog.Logger,
	users userRepo,
	tokens tokenIssuer,
) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		log:    log.With("service", "user"),
	}
}

// GetUser loads a user by ID. Used by the auth middleware to build the
// caller identity, so it performs no authorization checks of its own.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}
