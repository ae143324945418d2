package project

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/docugallery/gallery-backend/internal/domain"
	"github.com/docugallery/gallery-backend/internal/link"
)

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	CreateFunc          func(ctx context.Context, p domain.Project) (*domain.Project, error)
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	UpdateFunc          func(ctx context.Context, p domain.Project) (*domain.Project, error)
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
	ListFunc            func(ctx context.Context, f domain.ProjectFilter) ([]domain.Project, error)
	SetVisibilityFunc   func(ctx context.Context, id uuid.UUID, v domain.Visibility, legacyIsPrivate bool) error
	UpdateThumbnailFunc func(ctx context.Context, id uuid.UUID, url string) error

	calls struct {
		Create        []struct{ P domain.Project }
		GetByID       []struct{ ID uuid.UUID }
		Update        []struct{ P domain.Project }
		Delete        []struct{ ID uuid.UUID }
		List          []struct{ F domain.ProjectFilter }
		SetVisibility []struct {
			ID              uuid.UUID
			V               domain.Visibility
			LegacyIsPrivate bool
		}
		UpdateThumbnail []struct {
			ID  uuid.UUID
			URL string
		}
	}
	mu sync.Mutex
}

func (mock *projectRepoMock) Create(ctx context.Context, p domain.Project) (*domain.Project, error) {
	if mock.CreateFunc == nil {
		panic("projectRepoMock.CreateFunc: method is nil but projectRepo.Create was just called")
	}
	mock.mu.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ P domain.Project }{P: p})
	mock.mu.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *projectRepoMock) CreateCalls() []struct{ P domain.Project } {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.Create
}

func (mock *projectRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if mock.GetByIDFunc == nil {
		panic("projectRepoMock.GetByIDFunc: method is nil but projectRepo.GetByID was just called")
	}
	mock.mu.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.mu.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *projectRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.GetByID
}

func (mock *projectRepoMock) Update(ctx context.Context, p domain.Project) (*domain.Project, error) {
	if mock.UpdateFunc == nil {
		panic("projectRepoMock.UpdateFunc: method is nil but projectRepo.Update was just called")
	}
	mock.mu.Lock()
	mock.calls.Update = append(mock.calls.Update, struct{ P domain.Project }{P: p})
	mock.mu.Unlock()
	return mock.UpdateFunc(ctx, p)
}

func (mock *projectRepoMock) UpdateCalls() []struct{ P domain.Project } {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.Update
}

func (mock *projectRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("projectRepoMock.DeleteFunc: method is nil but projectRepo.Delete was just called")
	}
	mock.mu.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{ID: id})
	mock.mu.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *projectRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.Delete
}

func (mock *projectRepoMock) List(ctx context.Context, f domain.ProjectFilter) ([]domain.Project, error) {
	if mock.ListFunc == nil {
		panic("projectRepoMock.ListFunc: method is nil but projectRepo.List was just called")
	}
	mock.mu.Lock()
	mock.calls.List = append(mock.calls.List, struct{ F domain.ProjectFilter }{F: f})
	mock.mu.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *projectRepoMock) ListCalls() []struct{ F domain.ProjectFilter } {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.List
}

func (mock *projectRepoMock) SetVisibility(ctx context.Context, id uuid.UUID, v domain.Visibility, legacyIsPrivate bool) error {
	if mock.SetVisibilityFunc == nil {
		panic("projectRepoMock.SetVisibilityFunc: method is nil but projectRepo.SetVisibility was just called")
	}
	mock.mu.Lock()
	mock.calls.SetVisibility = append(mock.calls.SetVisibility, struct {
		ID              uuid.UUID
		V               domain.Visibility
		LegacyIsPrivate bool
	}{ID: id, V: v, LegacyIsPrivate: legacyIsPrivate})
	mock.mu.Unlock()
	return mock.SetVisibilityFunc(ctx, id, v, legacyIsPrivate)
}

func (mock *projectRepoMock) SetVisibilityCalls() []struct {
	ID              uuid.UUID
	V               domain.Visibility
	LegacyIsPrivate bool
} {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.SetVisibility
}

func (mock *projectRepoMock) UpdateThumbnail(ctx context.Context, id uuid.UUID, url string) error {
	if mock.UpdateThumbnailFunc == nil {
		panic("projectRepoMock.UpdateThumbnailFunc: method is nil but projectRepo.UpdateThumbnail was just called")
	}
	mock.mu.Lock()
	mock.calls.UpdateThumbnail = append(mock.calls.UpdateThumbnail, struct {
		ID  uuid.UUID
		URL string
	}{ID: id, URL: url})
	mock.mu.Unlock()
	return mock.UpdateThumbnailFunc(ctx, id, url)
}

func (mock *projectRepoMock) UpdateThumbnailCalls() []struct {
	ID  uuid.UUID
	URL string
} {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.UpdateThumbnail
}

var _ thumbnailResolver = &thumbnailResolverMock{}

type thumbnailResolverMock struct {
	ResolveFunc func(ctx context.Context, l link.Link, mode domain.ThumbnailMode, override string) string

	calls struct {
		Resolve []struct {
			L        link.Link
			Mode     domain.ThumbnailMode
			Override string
		}
	}
	mu sync.Mutex
}

func (mock *thumbnailResolverMock) Resolve(ctx context.Context, l link.Link, mode domain.ThumbnailMode, override string) string {
	if mock.ResolveFunc == nil {
		panic("thumbnailResolverMock.ResolveFunc: method is nil but thumbnailResolver.Resolve was just called")
	}
	mock.mu.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, struct {
		L        link.Link
		Mode     domain.ThumbnailMode
		Override string
	}{L: l, Mode: mode, Override: override})
	mock.mu.Unlock()
	return mock.ResolveFunc(ctx, l, mode, override)
}

func (mock *thumbnailResolverMock) ResolveCalls() []struct {
	L        link.Link
	Mode     domain.ThumbnailMode
	Override string
} {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.Resolve
}
