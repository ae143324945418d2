package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/docugallery/gallery-backend/internal/adapter/postgres"
	"github.com/docugallery/gallery-backend/internal/domain"
)

// Repo provides access to the users table.
type Repo struct {
	db postgres.Querier
}

func NewRepo(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const userColumns = `id, email, password_hash, role, status, created_at, updated_at`

const createUserQuery = `
INSERT INTO users (id, email, password_hash, role, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + userColumns

func (r *Repo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	db := postgres.QuerierFromCtx(ctx, r.db)

	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	row := db.QueryRow(ctx, createUserQuery,
		u.ID,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.Status,
		u.CreatedAt,
		u.UpdatedAt,
	)

	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}
	return created, nil
}

const getUserByIDQuery = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	db := postgres.QuerierFromCtx(ctx, r.db)

	row := db.QueryRow(ctx, getUserByIDQuery, id)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}
	return u, nil
}

const getUserByEmailQuery = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1`

func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	db := postgres.QuerierFromCtx(ctx, r.db)

	row := db.QueryRow(ctx, getUserByEmailQuery, email)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

const updateUserStatusQuery = `
UPDATE users
SET status = $2,
	updated_at = $3
WHERE id = $1
RETURNING ` + userColumns

func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.UserStatus) (*domain.User, error) {
	db := postgres.QuerierFromCtx(ctx, r.db)

	row := db.QueryRow(ctx, updateUserStatusQuery, id, status, time.Now().UTC())

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}
	return u, nil
}

const updateUserRoleQuery = `
UPDATE users
SET role = $2,
	updated_at = $3
WHERE id = $1
RETURNING ` + userColumns

func (r *Repo) UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error) {
	db := postgres.QuerierFromCtx(ctx, r.db)

	row := db.QueryRow(ctx, updateUserRoleQuery, id, role, time.Now().UTC())

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}
	return u, nil
}

const listUsersQuery = `
SELECT ` + userColumns + `
FROM users
ORDER BY created_at DESC`

func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	db := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := db.Query(ctx, listUsersQuery)
	if err != nil {
		return nil, postgres.MapError(err, "user", "")
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "user", "")
	}

	return users, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User

	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Status,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &u, nil
}
