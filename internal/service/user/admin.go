package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docugallery/gallery-backend/internal/domain"
	"github.com/docugallery/gallery-backend/pkg/ctxutil"
)

func requireAdmin(ctx context.Context) error {
	caller := ctxutil.CallerFromCtx(ctx)
	if !caller.Authenticated {
		return domain.ErrUnauthorized
	}
	if !caller.IsAdmin {
		return domain.ErrForbidden
	}
	return nil
}

// ListUsers returns all accounts. Admin only.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	return s.users.List(ctx)
}

// ApproveUser moves an account to approved status. Admin only.
func (s *Service) ApproveUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.setStatus(ctx, id, domain.UserStatusApproved)
}

// RejectUser moves an account to rejected status. Admin only.
func (s *Service) RejectUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.setStatus(ctx, id, domain.UserStatusRejected)
}

func (s *Service) setStatus(ctx context.Context, id uuid.UUID, status domain.UserStatus) (*domain.User, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}

	u, err := s.users.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	s.log.InfoContext(ctx, "user status changed",
		slog.String("user_id", id.String()),
		slog.String("status", status.String()),
	)

	return u, nil
}

// SetRole changes an account's role. Admin only; admins cannot demote
// themselves.
func (s *Service) SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}
	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "invalid role")
	}

	caller := ctxutil.CallerFromCtx(ctx)
	if caller.UserID == id && role != domain.UserRoleAdmin {
		return nil, domain.NewValidationError("role", "cannot demote yourself")
	}

	u, err := s.users.UpdateRole(ctx, id, role)
	if err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}

	s.log.InfoContext(ctx, "user role changed",
		slog.String("user_id", id.String()),
		slog.String("role", role.String()),
	)

	return u, nil
}
