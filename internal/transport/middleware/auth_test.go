package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/docugallery/gallery-backend/internal/domain"
	"github.com/docugallery/gallery-backend/pkg/ctxutil"
)

type tokenValidatorStub struct {
	userID uuid.UUID
	role   domain.UserRole
	err    error
}

func (s *tokenValidatorStub) ValidateAccessToken(token string) (uuid.UUID, domain.UserRole, error) {
	return s.userID, s.role, s.err
}

type userLoaderStub struct {
	user *domain.User
	err  error
}

func (s *userLoaderStub) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.user, s.err
}

func TestAuth_ValidToken_SetsCaller(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	validator := &tokenValidatorStub{userID: userID, role: domain.UserRoleAdmin}
	loader := &userLoaderStub{user: &domain.User{
		ID:     userID,
		Role:   domain.UserRoleAdmin,
		Status: domain.UserStatusApproved,
	}}

	var got domain.Caller
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = ctxutil.CallerFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	Auth(validator, loader)(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if got.UserID != userID || !got.Authenticated || !got.Approved || !got.IsAdmin {
		t.Errorf("caller: got %+v", got)
	}
}

func TestAuth_PendingUser_AuthenticatedButNotApproved(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	validator := &tokenValidatorStub{userID: userID, role: domain.UserRoleUser}
	loader := &userLoaderStub{user: &domain.User{
		ID:     userID,
		Role:   domain.UserRoleUser,
		Status: domain.UserStatusPending,
	}}

	var got domain.Caller
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = ctxutil.CallerFromCtx(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer valid-token")

	Auth(validator, loader)(handler).ServeHTTP(httptest.NewRecorder(), req)

	if !got.Authenticated {
		t.Error("pending user must be authenticated")
	}
	if got.Approved {
		t.Error("pending user must not be approved")
	}
}

func TestAuth_NoToken_ProceedsAsGuest(t *testing.T) {
	t.Parallel()

	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if c := ctxutil.CallerFromCtx(r.Context()); c.Authenticated {
			t.Errorf("expected guest caller, got %+v", c)
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	Auth(&tokenValidatorStub{}, &userLoaderStub{})(handler).ServeHTTP(rec, req)

	if !called {
		t.Fatal("handler must run for anonymous requests")
	}
}

func TestAuth_InvalidToken_Unauthorized(t *testing.T) {
	t.Parallel()

	validator := &tokenValidatorStub{err: errors.New("bad signature")}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for invalid tokens")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer forged")
	rec := httptest.NewRecorder()

	Auth(validator, &userLoaderStub{})(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", rec.Code)
	}
}

func TestAuth_DeletedUser_Unauthorized(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	validator := &tokenValidatorStub{userID: userID}
	loader := &userLoaderStub{err: fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run when the user no longer exists")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer stale")
	rec := httptest.NewRecorder()

	Auth(validator, loader)(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", rec.Code)
	}
}

func TestAuth_MalformedAuthorizationHeader_TreatedAsGuest(t *testing.T) {
	t.Parallel()

	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	Auth(&tokenValidatorStub{}, &userLoaderStub{})(handler).ServeHTTP(httptest.NewRecorder(), req)

	if !called {
		t.Fatal("non-bearer auth headers must fall through as guest")
	}
}
