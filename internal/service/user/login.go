package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/docugallery/gallery-backend/internal/auth"
	"github.com/docugallery/gallery-backend/internal/domain"
)

// LoginResult holds the outcome of a successful login.
type LoginResult struct {
	User        domain.User
	AccessToken string
}

// Login verifies credentials and issues an access token. Pending accounts
// may log in (their access is gated per request); rejected accounts may not.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Same error as a bad password, so emails cannot be probed.
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if !auth.CheckPassword(u.PasswordHash, input.Password) {
		return nil, domain.ErrUnauthorized
	}

	if u.Status == domain.UserStatusRejected {
		return nil, domain.ErrForbidden
	}

	token, err := s.tokens.GenerateAccessToken(u.ID, u.Role)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", u.ID.String()),
		slog.String("status", u.Status.String()),
	)

	return &LoginResult{User: *u, AccessToken: token}, nil
}
