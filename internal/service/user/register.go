package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/docugallery/gallery-backend/internal/auth"
	"github.com/docugallery/gallery-backend/internal/domain"
)

// Register creates a new account in pending status. A pending account can
// log in but sees only public content until an admin approves it.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.users.Create(ctx, domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Role:         domain.UserRoleUser,
		Status:       domain.UserStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", created.ID.String()),
		slog.String("email", email),
	)

	return created, nil
}
