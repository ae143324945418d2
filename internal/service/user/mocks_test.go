package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/docugallery/gallery-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc       func(ctx context.Context, u domain.User) (*domain.User, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc   func(ctx context.Context, email string) (*domain.User, error)
	UpdateStatusFunc func(ctx context.Context, id uuid.UUID, status domain.UserStatus) (*domain.User, error)
	UpdateRoleFunc   func(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error)
	ListFunc         func(ctx context.Context) ([]domain.User, error)

	calls struct {
		Create       []struct{ U domain.User }
		GetByID      []struct{ ID uuid.UUID }
		GetByEmail   []struct{ Email string }
		UpdateStatus []struct {
			ID     uuid.UUID
			Status domain.UserStatus
		}
		UpdateRole []struct {
			ID   uuid.UUID
			Role domain.UserRole
		}
		List []struct{}
	}
	mu sync.Mutex
}

func (mock *userRepoMock) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	mock.mu.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ U domain.User }{U: u})
	mock.mu.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *userRepoMock) CreateCalls() []struct{ U domain.User } {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.Create
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	mock.mu.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.mu.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.GetByID
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	mock.mu.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, struct{ Email string }{Email: email})
	mock.mu.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct{ Email string } {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.GetByEmail
}

func (mock *userRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.UserStatus) (*domain.User, error) {
	if mock.UpdateStatusFunc == nil {
		panic("userRepoMock.UpdateStatusFunc: method is nil but userRepo.UpdateStatus was just called")
	}
	mock.mu.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, struct {
		ID     uuid.UUID
		Status domain.UserStatus
	}{ID: id, Status: status})
	mock.mu.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status)
}

func (mock *userRepoMock) UpdateStatusCalls() []struct {
	ID     uuid.UUID
	Status domain.UserStatus
} {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.UpdateStatus
}

func (mock *userRepoMock) UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error) {
	if mock.UpdateRoleFunc == nil {
		panic("userRepoMock.UpdateRoleFunc: method is nil but userRepo.UpdateRole was just called")
	}
	mock.mu.Lock()
	mock.calls.UpdateRole = append(mock.calls.UpdateRole, struct {
		ID   uuid.UUID
		Role domain.UserRole
	}{ID: id, Role: role})
	mock.mu.Unlock()
	return mock.UpdateRoleFunc(ctx, id, role)
}

func (mock *userRepoMock) UpdateRoleCalls() []struct {
	ID   uuid.UUID
	Role domain.UserRole
} {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.UpdateRole
}

func (mock *userRepoMock) List(ctx context.Context) ([]domain.User, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	mock.mu.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.mu.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *userRepoMock) ListCalls() []struct{} {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.List
}

var _ tokenIssuer = &tokenIssuerMock{}

type tokenIssuerMock struct {
	GenerateAccessTokenFunc func(userID uuid.UUID, role domain.UserRole) (string, error)

	calls struct {
		GenerateAccessToken []struct {
			UserID uuid.UUID
			Role   domain.UserRole
		}
	}
	mu sync.Mutex
}

func (mock *tokenIssuerMock) GenerateAccessToken(userID uuid.UUID, role domain.UserRole) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("tokenIssuerMock.GenerateAccessTokenFunc: method is nil but tokenIssuer.GenerateAccessToken was just called")
	}
	mock.mu.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, struct {
		UserID uuid.UUID
		Role   domain.UserRole
	}{UserID: userID, Role: role})
	mock.mu.Unlock()
	return mock.GenerateAccessTokenFunc(userID, role)
}

func (mock *tokenIssuerMock) GenerateAccessTokenCalls() []struct {
	UserID uuid.UUID
	Role   domain.UserRole
} {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.GenerateAccessToken
}
